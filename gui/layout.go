package gui

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // Items stack vertically (default)
	LayoutHorizontal                   // Items stack horizontally
)

// Layout tracks the current layout state.
type Layout struct {
	Type LayoutType

	// Position tracking
	StartX, StartY float32

	// Sizing
	Width, Height       float32 // Available size
	MaxWidth, MaxHeight float32 // Accumulated content size

	// Spacing
	Gap      float32 // Space between children
	Padding  float32 // Inner padding
	PaddingX float32 // Horizontal padding override
	PaddingY float32 // Vertical padding override

	// State
	ItemCount int // For gap calculation
}

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets spacing between children.
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// Padding sets inner padding.
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// PaddingXY sets horizontal and vertical padding separately.
func PaddingXY(x, y float32) LayoutOption {
	return func(l *Layout) {
		l.PaddingX = x
		l.PaddingY = y
	}
}

// Width sets a fixed width for the layout.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

// Height sets a fixed height for the layout.
func Height(h float32) LayoutOption {
	return func(l *Layout) { l.Height = h }
}

// pushLayoutWith fills in position defaults and pushes a layout.
func (ctx *Context) pushLayoutWith(layout *Layout) {
	layout.StartX = ctx.cursor.X
	layout.StartY = ctx.cursor.Y
	if layout.Width == 0 {
		layout.Width = ctx.currentLayoutWidth()
	}
	if layout.Height == 0 {
		layout.Height = ctx.currentLayoutHeight()
	}
	ctx.layoutStack = append(ctx.layoutStack, layout)
}

// popLayout removes and returns the current layout's content bounds.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}

	layout := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]

	bounds := Rect{
		X: layout.StartX,
		Y: layout.StartY,
		W: layout.MaxWidth,
		H: layout.MaxHeight,
	}

	// Treat the popped layout as a single item in the parent.
	if len(ctx.layoutStack) > 0 {
		parent := ctx.layoutStack[len(ctx.layoutStack)-1]

		if parent.ItemCount > 0 {
			gap := parent.Gap
			if gap == 0 {
				gap = ctx.style.ItemSpacing
			}
			if parent.Type == LayoutVertical {
				ctx.cursor.Y += gap
			} else {
				ctx.cursor.X += gap
			}
		}

		if parent.Type == LayoutVertical {
			ctx.cursor.X = parent.StartX + parent.Padding + parent.PaddingX
			ctx.cursor.Y = layout.StartY + layout.MaxHeight
			parent.MaxWidth = maxf(parent.MaxWidth, layout.MaxWidth)
			parent.MaxHeight = ctx.cursor.Y - parent.StartY
		} else {
			ctx.cursor.X = layout.StartX + layout.MaxWidth
			ctx.cursor.Y = parent.StartY + parent.Padding + parent.PaddingY
			parent.MaxWidth = ctx.cursor.X - parent.StartX
			parent.MaxHeight = maxf(parent.MaxHeight, layout.MaxHeight)
		}

		parent.ItemCount++
	}

	return bounds
}

// VStack lays out children vertically.
//
// Usage:
//
//	ctx.VStack(gui.Gap(8))(func() {
//	    ctx.Text("one")
//	    ctx.Text("two")
//	})
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return ctx.stack(LayoutVertical, opts)
}

// HStack lays out children horizontally.
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return ctx.stack(LayoutHorizontal, opts)
}

func (ctx *Context) stack(typ LayoutType, opts []LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: typ, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}

		padX := layout.PaddingX
		if padX == 0 {
			padX = layout.Padding
		}
		padY := layout.PaddingY
		if padY == 0 {
			padY = layout.Padding
		}

		ctx.cursor.X += padX
		ctx.cursor.Y += padY
		ctx.pushLayoutWith(layout)

		contents()

		bounds := ctx.popLayout()
		// Padding counts toward the parent's content size.
		ctx.advanceAfterStack(bounds, padX, padY)
	}
}

// advanceAfterStack folds a finished stack's padded bounds into the
// enclosing layout cursor when the stack was the outermost one.
func (ctx *Context) advanceAfterStack(bounds Rect, padX, padY float32) {
	if len(ctx.layoutStack) > 0 {
		return // popLayout already advanced the parent
	}
	ctx.cursor.X = bounds.X - padX
	ctx.cursor.Y = bounds.Y + bounds.H + padY + ctx.style.ItemSpacing
}

// currentLayout returns the innermost layout, or nil.
func (ctx *Context) currentLayout() *Layout {
	if len(ctx.layoutStack) > 0 {
		return ctx.layoutStack[len(ctx.layoutStack)-1]
	}
	return nil
}

// currentLayoutWidth returns the available width in the current layout.
func (ctx *Context) currentLayoutWidth() float32 {
	if l := ctx.currentLayout(); l != nil {
		return l.Width
	}
	return ctx.DisplaySize.X
}

// currentLayoutHeight returns the available height in the current layout.
func (ctx *Context) currentLayoutHeight() float32 {
	if l := ctx.currentLayout(); l != nil {
		return l.Height
	}
	return ctx.DisplaySize.Y
}
