package scene_test

import (
	"testing"

	"github.com/go-theft-auto/dockspace/scene"
)

func TestRenderTargetSyncSize(t *testing.T) {
	rt := scene.NewRenderTarget(1.0)

	if !rt.SyncSize(800, 600) {
		t.Fatal("first sync should report a change")
	}
	w, h := rt.Size()
	if w != 800 || h != 600 {
		t.Errorf("size = %dx%d, want 800x600", w, h)
	}

	gen := rt.Generation()
	if rt.SyncSize(800, 600) {
		t.Error("identical sync should report no change")
	}
	if rt.Generation() != gen {
		t.Error("identical sync should not bump the generation")
	}

	if !rt.SyncSize(640, 480) {
		t.Error("new size should report a change")
	}
	if rt.Generation() != gen+1 {
		t.Errorf("generation = %d, want %d", rt.Generation(), gen+1)
	}
}

func TestRenderTargetAppliesScale(t *testing.T) {
	rt := scene.NewRenderTarget(2.0)
	rt.SyncSize(800, 600)

	w, h := rt.Size()
	if w != 1600 || h != 1200 {
		t.Errorf("size = %dx%d, want 1600x1200 at scale 2", w, h)
	}
}

func TestRenderTargetFloorsFractionalPixels(t *testing.T) {
	rt := scene.NewRenderTarget(1.5)
	rt.SyncSize(333, 201)

	// 333*1.5 = 499.5, 201*1.5 = 301.5
	w, h := rt.Size()
	if w != 499 || h != 301 {
		t.Errorf("size = %dx%d, want 499x301", w, h)
	}
}

func TestRenderTargetMinimumOnePixel(t *testing.T) {
	rt := scene.NewRenderTarget(1.0)
	rt.SyncSize(0, -5)

	w, h := rt.Size()
	if w != 1 || h != 1 {
		t.Errorf("size = %dx%d, want the 1x1 floor", w, h)
	}
}

func TestRenderTargetRejectsBadScale(t *testing.T) {
	rt := scene.NewRenderTarget(0)
	if rt.Scale() != 1 {
		t.Errorf("scale = %v, want fallback to 1", rt.Scale())
	}

	rt = scene.NewRenderTarget(-2)
	if rt.Scale() != 1 {
		t.Errorf("scale = %v, want fallback to 1", rt.Scale())
	}
}

func TestRenderTargetStartsEmpty(t *testing.T) {
	rt := scene.NewRenderTarget(1.0)
	w, h := rt.Size()
	if w != 0 || h != 0 {
		t.Errorf("size = %dx%d before any sync, want 0x0", w, h)
	}
}
