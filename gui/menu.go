package gui

// Menu bar widgets. The bar itself is drawn into the main draw list;
// open dropdowns render into the foreground draw list so they appear
// above dock content drawn later in the frame.

// menuBarPadding is the vertical padding inside the main menu bar.
const menuBarPadding float32 = 4

// MenuBarHeight returns the height the main menu bar occupies.
// Dock areas are laid out below this line.
func (ctx *Context) MenuBarHeight() float32 {
	return ctx.lineHeight() + menuBarPadding*2
}

// MainMenuBar draws a full-width menu bar at the top of the display.
//
// Usage:
//
//	ctx.MainMenuBar()(func() {
//	    ctx.Menu("Windows")(func() {
//	        if ctx.MenuItem("Viewport", open) { ... }
//	    })
//	})
func (ctx *Context) MainMenuBar() func(func()) {
	return func(contents func()) {
		h := ctx.MenuBarHeight()
		ctx.DrawList.AddRect(0, 0, ctx.DisplaySize.X, h, ctx.style.MenuBarBgColor)

		if ctx.isHovered(0, Rect{X: 0, Y: 0, W: ctx.DisplaySize.X, H: h}) {
			ctx.WantCaptureMouse = true
		}

		saved := ctx.cursor
		ctx.SetCursorPos(SpaceMD, menuBarPadding)
		ctx.pushLayoutWith(&Layout{Type: LayoutHorizontal, Gap: SpaceMD, Width: ctx.DisplaySize.X, Height: h})

		contents()

		ctx.popLayout()
		ctx.cursor = saved
	}
}

// Menu draws a named dropdown inside the main menu bar.
// Clicking the label toggles the dropdown; clicking anywhere else
// closes it. Items render through the contents closure only while the
// dropdown is open.
func (ctx *Context) Menu(label string) func(func()) {
	return func(contents func()) {
		pos := ctx.ItemPos()
		id := ctx.StableID("menu:" + label)
		state := GetState(ctx, id, MenuState{})

		textSize := ctx.MeasureText(label)
		size := Vec2{X: textSize.X + ctx.style.TabPadding*2, Y: ctx.MenuBarHeight() - menuBarPadding*2}
		rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

		bg := ColorTransparent
		if state.Open {
			bg = ctx.style.ButtonActiveColor
		} else if ctx.isHovered(id, rect) {
			bg = ctx.style.ButtonHoveredColor
		}
		ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, bg)
		ctx.addText(pos.X+ctx.style.TabPadding, pos.Y+(size.Y-textSize.Y)/2, label, ctx.style.TextColor)

		// Dropdown rectangle from the previous frame's content size.
		dropdown := Rect{
			X: rect.X,
			Y: rect.Y + rect.H + menuBarPadding,
			W: state.ContentW + SpaceMD*2,
			H: state.ContentH + SpaceMD*2,
		}

		if ctx.isClicked(id, rect) {
			state.Open = !state.Open
		} else if state.Open && ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) &&
			!dropdown.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY}) {
			state.Open = false
		}

		if state.Open {
			ctx.WantCaptureMouse = ctx.WantCaptureMouse ||
				ctx.isHovered(id, dropdown)

			fg := ctx.ForegroundDrawList
			fg.AddRect(dropdown.X, dropdown.Y, dropdown.W, dropdown.H, ctx.style.DropdownBgColor)
			fg.AddRectOutline(dropdown.X, dropdown.Y, dropdown.W, dropdown.H, ctx.style.PanelBorderColor, ctx.style.BorderSize)

			// Render items into the foreground list with a fresh layout.
			savedDL := ctx.DrawList
			savedCursor := ctx.cursor
			ctx.DrawList = fg
			ctx.SetCursorPos(dropdown.X+SpaceMD, dropdown.Y+SpaceMD)
			ctx.pushLayoutWith(&Layout{Type: LayoutVertical, Gap: SpaceSM})
			ctx.menuCloseRequested = false

			contents()

			bounds := ctx.popLayout()
			ctx.DrawList = savedDL
			ctx.cursor = savedCursor

			// Cache the measured size for next frame's background.
			state.ContentW = bounds.W
			state.ContentH = bounds.H

			if ctx.menuCloseRequested {
				state.Open = false
			}
		}

		SetState(ctx, id, state)
		ctx.advanceCursor(size)
	}
}

// MenuItem draws one row inside an open dropdown and returns true when
// clicked. A checked item shows a checkmark box; clicking an item
// closes the enclosing menu.
func (ctx *Context) MenuItem(label string, checked bool) bool {
	pos := ctx.ItemPos()
	id := ctx.GetID("menuitem:" + label)

	box := "[ ] "
	if checked {
		box = "[x] "
	}

	textSize := ctx.MeasureText(box + label)
	w := maxf(textSize.X+ctx.style.ItemSpacing*2, ctx.currentLayoutWidth())
	h := ctx.lineHeight()
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	if ctx.isHovered(id, rect) {
		ctx.DrawList.AddRect(pos.X, pos.Y, w, h, ctx.style.HoveredBgColor)
		ctx.WantCaptureMouse = true
	}

	boxColor := ctx.style.TextDisabledColor
	if checked {
		boxColor = ctx.style.CheckmarkColor
	}
	ctx.addText(pos.X+ctx.style.ItemSpacing, pos.Y, box, boxColor)
	ctx.addText(pos.X+ctx.style.ItemSpacing+ctx.MeasureText(box).X, pos.Y, label, ctx.style.TextColor)

	clicked := ctx.isClicked(id, rect)
	if clicked {
		ctx.menuCloseRequested = true
	}
	ctx.advanceCursor(Vec2{X: textSize.X + ctx.style.ItemSpacing*2, Y: h})

	return clicked
}
