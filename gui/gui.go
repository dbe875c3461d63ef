package gui

// Renderer is the interface for rendering GUI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI manages the immediate mode UI system.
type GUI struct {
	renderer   Renderer
	stateStore StateStore
	style      Style
	ctx        *Context
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the GUI style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// WithStateStore sets a custom state store.
func WithStateStore(store StateStore) GUIOption {
	return func(g *GUI) { g.stateStore = store }
}

// WithDisplayScale sets the point-to-pixel factor handed to widgets
// that size textures (the dock viewport). Defaults to 1.0.
func WithDisplayScale(scale float32) GUIOption {
	return func(g *GUI) {
		if scale > 0 {
			g.ctx.DisplayScale = scale
		}
	}
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer:   renderer,
		stateStore: make(MapStateStore),
		style:      DefaultStyle(),
		ctx:        NewContext(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Begin starts a new frame and returns the GUI context.
// Call this at the start of each frame before drawing any UI.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx

	// Acquire draw lists from the pool
	ctx.DrawList = AcquireDrawList()
	ctx.ForegroundDrawList = AcquireDrawList() // For dropdown menus (drawn on top)

	// Set frame state
	ctx.Input = input
	ctx.stateStore = g.stateStore
	ctx.SetStyle(g.style)
	ctx.FontTextureID = g.renderer.FontTextureID()

	// Reset per-frame state
	ctx.Reset(displaySize, deltaTime)

	return ctx
}

// End finishes the frame and renders the UI.
// Call this after all UI drawing is complete.
func (g *GUI) End() error {
	if g.ctx.DrawList == nil {
		return nil
	}

	// Render main draw list
	err := g.renderer.Render(g.ctx.DrawList)
	if err != nil {
		return err
	}

	// Render foreground draw list (dropdowns) on top
	if g.ctx.ForegroundDrawList != nil && len(g.ctx.ForegroundDrawList.CmdBuffer) > 0 {
		err = g.renderer.Render(g.ctx.ForegroundDrawList)
	}

	// Release draw lists back to pool
	ReleaseDrawList(g.ctx.DrawList)
	g.ctx.DrawList = nil
	if g.ctx.ForegroundDrawList != nil {
		ReleaseDrawList(g.ctx.ForegroundDrawList)
		g.ctx.ForegroundDrawList = nil
	}

	return err
}

// Context returns the current GUI context.
// Only valid between Begin() and End() calls.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Style returns the current GUI style.
func (g *GUI) Style() Style {
	return g.style
}

// SetStyle sets the GUI style.
func (g *GUI) SetStyle(style Style) {
	g.style = style
}

// Resize notifies the GUI of a display size change.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}
