package scene

import "github.com/chewxy/math32"

// RenderTarget tracks the pixel dimensions of the off-screen texture
// the camera renders into. The dimensions follow the on-screen size of
// the panel displaying the texture: the viewport tab reports its
// available size once per frame and SyncSize decides whether the
// backing storage must be reallocated.
//
// The type holds no GL handles. The GL side (glrender.Viewport)
// watches the generation counter and recreates its storage when it
// changes, keeping the texture handle itself stable.
type RenderTarget struct {
	width  int
	height int
	scale  float32

	generation uint64
}

// NewRenderTarget creates a target with the given point-to-pixel
// scale. Scale values of zero or below fall back to 1.
func NewRenderTarget(scale float32) *RenderTarget {
	if scale <= 0 {
		scale = 1
	}
	return &RenderTarget{scale: scale}
}

// Size returns the current pixel dimensions. Both are zero until the
// first SyncSize call.
func (rt *RenderTarget) Size() (width, height int) {
	return rt.width, rt.height
}

// Scale returns the configured point-to-pixel factor.
func (rt *RenderTarget) Scale() float32 {
	return rt.scale
}

// Generation increments on every reallocation. Consumers holding
// per-size resources compare it against the value they last saw.
func (rt *RenderTarget) Generation() uint64 {
	return rt.generation
}

// SyncSize converts an observed panel size in points to whole pixels
// (scaled, floored, at least 1x1) and records it. It reports whether
// the backing storage must be reallocated; repeated calls with the
// same observed size are no-ops.
func (rt *RenderTarget) SyncSize(availW, availH float32) bool {
	w := int(math32.Floor(availW * rt.scale))
	h := int(math32.Floor(availH * rt.scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	if w == rt.width && h == rt.height {
		return false
	}

	rt.width = w
	rt.height = h
	rt.generation++
	return true
}
