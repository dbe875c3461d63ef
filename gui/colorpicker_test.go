package gui_test

import (
	"testing"

	"github.com/go-theft-auto/dockspace/gui"
)

func TestColorEdit3NoInput(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)

	rgb := [3]float32{0.2, 0.4, 0.6}
	if ctx.ColorEdit3("color", &rgb) {
		t.Error("no input should mean no change")
	}
	if rgb != [3]float32{0.2, 0.4, 0.6} {
		t.Errorf("values changed without input: %v", rgb)
	}

	_ = ui.End()
}

func TestColorEdit3DragSetsChannel(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()

	// With no enclosing layout the track spans the display width minus
	// the readout: 800 - len("R 0.00")*12 - 3*4 = 716. The track starts
	// at x=0, so the midpoint is 358.
	input.SetMousePos(358, 6)
	input.SetMouseButton(gui.MouseButtonLeft, true)

	rgb := [3]float32{0, 0, 0}
	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	changed := ctx.ColorEdit3("", &rgb)
	_ = ui.End()

	if !changed {
		t.Fatal("press on the red track should report a change")
	}
	if rgb[0] != 0.5 {
		t.Errorf("red = %v, want 0.5", rgb[0])
	}
	if rgb[1] != 0 || rgb[2] != 0 {
		t.Errorf("other channels moved: %v", rgb)
	}
}

func TestColorEdit3DragFollowsMouseAcrossFrames(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()

	rgb := [3]float32{0, 0, 0}
	frame := func() bool {
		ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
		changed := ctx.ColorEdit3("", &rgb)
		_ = ui.End()
		return changed
	}

	// Grab the red track at its midpoint.
	input.SetMousePos(358, 6)
	input.SetMouseButton(gui.MouseButtonLeft, true)
	frame()

	// Keep holding and drag past the track's right edge; the value
	// clamps to 1 even though the mouse left the rect.
	input.Reset()
	input.SetMousePos(900, 200)
	if !frame() {
		t.Fatal("held drag should keep changing the value")
	}
	if rgb[0] != 1 {
		t.Errorf("red = %v, want clamp to 1", rgb[0])
	}

	// Release ends the drag; further mouse movement changes nothing.
	input.Reset()
	input.SetMouseButton(gui.MouseButtonLeft, false)
	frame()

	input.Reset()
	input.SetMousePos(100, 6)
	if frame() {
		t.Error("drag should end on release")
	}
}

func TestColorEdit3NilPointer(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)

	if ctx.ColorEdit3("color", nil) {
		t.Error("nil slice should be a no-op")
	}

	_ = ui.End()
}

func TestRound01(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{1, 1},
		{0.5, 128.0 / 255},
		{-1, 0},
		{2, 1},
	}
	for _, tt := range tests {
		if got := gui.Round01(tt.in); got != tt.want {
			t.Errorf("Round01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
