package gui

import (
	"fmt"

	"github.com/chewxy/math32"
)

// ColorEdit3 draws an RGB color editor: one horizontal slider per
// channel plus a preview swatch. Returns true when any channel
// changed this frame. Values are clamped to [0,1] by the sliders
// themselves; callers can write the result back without validation.
func (ctx *Context) ColorEdit3(label string, rgb *[3]float32) bool {
	if rgb == nil {
		return false
	}

	id := ctx.StableID("coloredit:" + label)
	state := GetState(ctx, id, ColorEditState{})
	changed := false

	if label != "" {
		ctx.Text(label)
	}

	names := [3]string{"R", "G", "B"}
	for ch := 0; ch < 3; ch++ {
		if ctx.colorChannelSlider(id, &state, ch, names[ch], &rgb[ch]) {
			changed = true
		}
	}

	// Preview swatch under the sliders.
	pos := ctx.ItemPos()
	w := ctx.sliderWidth()
	h := ctx.lineHeight()
	ctx.DrawList.AddRect(pos.X, pos.Y, w, h, RGBAf(rgb[0], rgb[1], rgb[2], 1))
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, w, h, ctx.style.PanelBorderColor, ctx.style.BorderSize)
	ctx.advanceCursor(Vec2{X: w, Y: h})

	SetState(ctx, id, state)
	return changed
}

// sliderWidth returns the track width for color sliders: the available
// layout width minus room for the channel label and value readout.
func (ctx *Context) sliderWidth() float32 {
	w := ctx.currentLayoutWidth() - ctx.MeasureText("R 0.00").X - ctx.style.ItemSpacing*3
	return maxf(w, 60)
}

// colorChannelSlider draws one draggable channel track.
// Dragging claims the context's active widget so the grab keeps
// following the mouse outside the track rect.
func (ctx *Context) colorChannelSlider(base ID, state *ColorEditState, channel int, name string, value *float32) bool {
	pos := ctx.ItemPos()
	chID := base + ID(channel) + 1

	trackW := ctx.sliderWidth()
	h := ctx.lineHeight()
	rect := Rect{X: pos.X, Y: pos.Y, W: trackW, H: h}

	if ctx.isHovered(chID, rect) {
		ctx.WantCaptureMouse = true
		if ctx.Input.MouseClicked(MouseButtonLeft) {
			ctx.SetActive(chID)
			state.Dragging = true
			state.Channel = channel
		}
	}

	dragging := ctx.IsActive(chID) && state.Dragging && state.Channel == channel
	changed := false
	if dragging && ctx.Input != nil {
		if ctx.Input.MouseDown(MouseButtonLeft) {
			v := clampf((ctx.Input.MouseX-rect.X)/rect.W, 0, 1)
			if v != *value {
				*value = v
				changed = true
			}
		} else {
			state.Dragging = false
		}
	}

	// Track, fill, grab
	fill := clampf(*value, 0, 1)
	ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, ctx.style.SliderTrackColor)
	ctx.DrawList.AddRect(rect.X, rect.Y, rect.W*fill, rect.H, ctx.style.SliderFillColor)
	grabX := rect.X + rect.W*fill - 2
	grabX = clampf(grabX, rect.X, rect.X+rect.W-4)
	ctx.DrawList.AddRect(grabX, rect.Y, 4, rect.H, ctx.style.SliderGrabColor)

	// Channel label and value readout to the right of the track.
	readout := fmt.Sprintf("%s %.2f", name, *value)
	ctx.addText(rect.X+rect.W+ctx.style.ItemSpacing, pos.Y, readout, ctx.style.TextColor)

	ctx.advanceCursor(Vec2{X: trackW + ctx.style.ItemSpacing + ctx.MeasureText(readout).X, Y: h})

	return changed
}

// Round01 quantizes a [0,1] channel to 8-bit precision.
// Handy for tests comparing colors that went through a packed uint32.
func Round01(v float32) float32 {
	return math32.Round(clampf(v, 0, 1)*255) / 255
}
