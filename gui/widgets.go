package gui

// Text draws text at the current cursor position.
func (ctx *Context) Text(text string) {
	pos := ctx.ItemPos()
	ctx.addText(pos.X, pos.Y, text, ctx.style.TextColor)
	ctx.advanceCursor(ctx.MeasureText(text))
}

// TextColored draws text with a specific color.
func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.ItemPos()
	ctx.addText(pos.X, pos.Y, text, color)
	ctx.advanceCursor(ctx.MeasureText(text))
}

// TextDisabled draws text with the disabled color.
func (ctx *Context) TextDisabled(text string) {
	pos := ctx.ItemPos()
	ctx.addText(pos.X, pos.Y, text, ctx.style.TextDisabledColor)
	ctx.advanceCursor(ctx.MeasureText(text))
}

// Button draws a button and returns true if clicked.
func (ctx *Context) Button(label string) bool {
	pos := ctx.ItemPos()
	id := ctx.GetID(label)

	textSize := ctx.MeasureText(label)
	size := Vec2{
		X: textSize.X + ctx.style.ButtonPadding*2,
		Y: textSize.Y + ctx.style.ButtonPadding*2,
	}

	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	bgColor := ctx.style.ButtonColor
	if ctx.isHovered(id, rect) {
		bgColor = ctx.style.ButtonHoveredColor
		ctx.WantCaptureMouse = true
	}
	if ctx.isPressed(id, rect) {
		bgColor = ctx.style.ButtonActiveColor
	}

	ctx.DrawList.AddRect(pos.X, pos.Y, size.X, size.Y, bgColor)

	// Center the label
	textX := pos.X + (size.X-textSize.X)/2
	textY := pos.Y + (size.Y-textSize.Y)/2
	ctx.addText(textX, textY, label, ctx.style.TextColor)

	clicked := ctx.isClicked(id, rect)
	ctx.advanceCursor(size)

	return clicked
}

// Selectable draws a selectable list item.
// Returns true if clicked.
func (ctx *Context) Selectable(label string, selected bool) bool {
	pos := ctx.ItemPos()
	id := ctx.GetID(label)

	textSize := ctx.MeasureText(label)
	w := textSize.X + ctx.style.ItemSpacing*2
	h := ctx.lineHeight()

	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	if selected {
		ctx.DrawList.AddRect(pos.X, pos.Y, w, h, ctx.style.SelectedBgColor)
	} else if ctx.isHovered(id, rect) {
		ctx.DrawList.AddRect(pos.X, pos.Y, w, h, ctx.style.HoveredBgColor)
		ctx.WantCaptureMouse = true
	}

	ctx.addText(pos.X+ctx.style.ItemSpacing, pos.Y, label, ctx.style.TextColor)

	clicked := ctx.isClicked(id, rect)
	ctx.advanceCursor(Vec2{X: w, Y: h})

	return clicked
}

// Separator draws a horizontal separator line.
func (ctx *Context) Separator() {
	pos := ctx.ItemPos()
	w := ctx.currentLayoutWidth()
	ctx.DrawList.AddLine(pos.X, pos.Y+2, pos.X+w, pos.Y+2, ctx.style.SeparatorColor, 1)
	ctx.advanceCursor(Vec2{X: w, Y: 4})
}

// Spacing adds vertical space.
func (ctx *Context) Spacing(pixels float32) {
	ctx.advanceCursor(Vec2{X: 0, Y: pixels})
}

// Image draws a textured quad of the given size at the cursor.
// The texture must be registered with the renderer if it carries full
// RGBA color (see the backend's RegisterRGBATexture).
func (ctx *Context) Image(textureID uint32, size Vec2) {
	ctx.ImageUV(textureID, size, Vec2{0, 0}, Vec2{1, 1})
}

// ImageUV draws a textured quad with explicit UV corners.
// Framebuffer textures are stored bottom-up by OpenGL; pass
// uv0={0,1}, uv1={1,0} to display them upright.
func (ctx *Context) ImageUV(textureID uint32, size Vec2, uv0, uv1 Vec2) {
	pos := ctx.ItemPos()
	ctx.DrawList.AddImage(textureID, pos.X, pos.Y, size.X, size.Y, uv0, uv1, ColorWhite)
	ctx.advanceCursor(size)
}
