package gui

import (
	"log/slog"
	"os"
)

// guiLogLevel controls debug logging for the GUI core.
// Raise to slog.LevelDebug to trace click dispatch.
var guiLogLevel = &slog.LevelVar{}

// guiLogger is the logger for GUI context debugging.
var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))

func init() {
	guiLogLevel.Set(slog.LevelWarn)
}

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI context type.
// Using a dedicated type avoids type assertions and map lookups,
// providing better performance and type safety.
type Context struct {
	// Drawing output
	DrawList           *DrawList
	ForegroundDrawList *DrawList // For dropdown menus (drawn on top)

	// Styling
	style      Style
	styleStack []Style // For PushStyle/PopStyle

	// Layout
	cursor      Vec2
	layoutStack []*Layout

	// Input (read-only during frame)
	Input *InputState

	// Widget state (persisted between frames)
	stateStore StateStore

	// IDs
	idStack   []ID
	idCounter uint32 // Auto-increment for call-site IDs

	// Screen
	DisplaySize Vec2

	// DisplayScale converts GUI points to texture pixels for widgets
	// that hand sizes to the renderer (the dock viewport). Configured
	// explicitly by the application; never queried from the window
	// system. 1.0 means points are pixels.
	DisplayScale float32

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	// Widget being interacted with (e.g. a dragged slider channel)
	activeID ID

	// Set by MenuItem to close the enclosing dropdown this frame
	menuCloseRequested bool

	// Font texture ID (set by renderer)
	FontTextureID uint32

	// Input capture flags (output from GUI to application).
	// These tell the application whether GUI wants to consume input.
	WantCaptureMouse bool

	// Per-frame text measurement cache.
	textMeasureCache map[string]Vec2
}

// NewContext creates a new GUI context with default settings.
func NewContext() *Context {
	return &Context{
		styleStack:       make([]Style, 0, 8),
		layoutStack:      make([]*Layout, 0, 16),
		idStack:          make([]ID, 0, 32),
		textMeasureCache: make(map[string]Vec2, 64),
		DisplayScale:     1.0,
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// PushStyle temporarily overrides the style.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

// PopStyle restores the previous style.
func (ctx *Context) PopStyle() {
	n := len(ctx.styleStack)
	if n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	ctx.cursor = Vec2{0, 0}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.styleStack = ctx.styleStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.FrameCount++

	// Reset input capture flags - widgets will set these during the frame
	ctx.WantCaptureMouse = false

	// Clear text measurement cache (valid only for current frame)
	clear(ctx.textMeasureCache)

	// Drop the active widget once the mouse is released
	if ctx.Input != nil && !ctx.Input.MouseDown(MouseButtonLeft) {
		ctx.activeID = 0
	}
}

// Helper methods for widget interaction

// isHovered returns true if the widget area is under the mouse cursor.
func (ctx *Context) isHovered(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return rect.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
}

// IsHovered returns true if the widget area is under the mouse cursor (public API).
func (ctx *Context) IsHovered(id ID, rect Rect) bool {
	return ctx.isHovered(id, rect)
}

// isClicked returns true if the widget was clicked this frame.
func (ctx *Context) isClicked(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	hovered := ctx.isHovered(id, rect)
	clicked := ctx.Input.MouseClicked(MouseButtonLeft)

	if clicked && hovered {
		guiLogger.Debug("click", "id", id, "rect", rect,
			"mouse", Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
	}

	return hovered && clicked
}

// IsClicked returns true if the widget was clicked this frame (public API).
func (ctx *Context) IsClicked(id ID, rect Rect) bool {
	return ctx.isClicked(id, rect)
}

// isPressed returns true if the widget is being held down.
func (ctx *Context) isPressed(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return ctx.isHovered(id, rect) && ctx.Input.MouseDown(MouseButtonLeft)
}

// SetActive marks a widget as owning the current mouse drag.
func (ctx *Context) SetActive(id ID) {
	ctx.activeID = id
}

// IsActive returns true if the widget owns the current mouse drag.
func (ctx *Context) IsActive(id ID) bool {
	return ctx.activeID == id
}

// SetCursorPos sets the cursor position for the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the current cursor position.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// lineHeight returns the height of a single line of text.
func (ctx *Context) lineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// LineHeight returns the height of a single line of text (public API).
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeight()
}

// MeasureText returns the size of rendered text.
// The built-in font is monospace, so this is a multiplication, but the
// per-frame cache keeps the call free for repeated labels.
func (ctx *Context) MeasureText(text string) Vec2 {
	if cached, ok := ctx.textMeasureCache[text]; ok {
		return cached
	}

	charW := ctx.style.CharWidth * ctx.style.FontScale
	charH := ctx.style.CharHeight * ctx.style.FontScale
	result := Vec2{X: float32(len(text)) * charW, Y: charH}

	ctx.textMeasureCache[text] = result
	return result
}

// addText is a helper to draw text with current style.
func (ctx *Context) addText(x, y float32, text string, color uint32) {
	ctx.AddTextTo(ctx.DrawList, x, y, text, color)
}

// AddText draws text with the current style (public API).
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.AddTextTo(ctx.DrawList, x, y, text, color)
}

// AddTextTo draws text to a specific DrawList.
// Useful for drawing to the foreground/overlay layer.
func (ctx *Context) AddTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	if dl == nil {
		return
	}
	dl.SetTexture(ctx.FontTextureID)
	dl.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	dl.SetTexture(0)
}

// beginItem applies gap spacing before drawing an item.
func (ctx *Context) beginItem() {
	layout := ctx.currentLayout()
	if layout == nil {
		return
	}

	if layout.ItemCount > 0 {
		gap := layout.Gap
		if gap == 0 {
			gap = ctx.style.ItemSpacing
		}
		if layout.Type == LayoutVertical {
			ctx.cursor.Y += gap
		} else {
			ctx.cursor.X += gap
		}
	}
}

// ItemPos returns the position for the next widget with gap applied.
// This is the recommended way for widgets to get their drawing position.
func (ctx *Context) ItemPos() Vec2 {
	ctx.beginItem()
	return ctx.cursor
}

// advanceCursor moves the cursor after drawing an item.
func (ctx *Context) advanceCursor(size Vec2) {
	ctx.AdvanceCursor(size)
}

// AdvanceCursor moves the cursor after drawing an item (public API).
func (ctx *Context) AdvanceCursor(size Vec2) {
	layout := ctx.currentLayout()
	if layout == nil {
		// No layout, just advance vertically
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}

	if layout.Type == LayoutVertical {
		ctx.cursor.Y += size.Y
		layout.MaxWidth = maxf(layout.MaxWidth, ctx.cursor.X+size.X-layout.StartX)
		layout.MaxHeight = ctx.cursor.Y - layout.StartY
	} else {
		ctx.cursor.X += size.X
		layout.MaxWidth = ctx.cursor.X - layout.StartX
		layout.MaxHeight = maxf(layout.MaxHeight, ctx.cursor.Y+size.Y-layout.StartY)
	}
	layout.ItemCount++
}
