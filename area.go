package dockspace

import "github.com/go-theft-auto/dockspace/gui"

// TabViewer supplies the per-tab rendering behavior. Render must be
// total: it is called with whatever tab the tree holds, including names
// the viewer has never seen.
type TabViewer interface {
	// Title returns the text shown on the tab's button.
	Title(tab Tab) string

	// Render draws the tab's content into the given rectangle. The
	// context cursor is already placed at the rectangle's top left.
	Render(ctx *gui.Context, tab Tab, content gui.Rect)
}

// LabelViewer is the fallback viewer: every tab shows its own name.
type LabelViewer struct{}

func (LabelViewer) Title(tab Tab) string { return tab.Name }

func (LabelViewer) Render(ctx *gui.Context, tab Tab, content gui.Rect) {
	ctx.Text(tab.Name)
}

// borderThickness is the width of the line drawn between split regions.
const borderThickness float32 = 2

// DockArea draws a docking tree each frame: one tab bar per leaf, the
// active tab's content clipped to the leaf rectangle, and borders along
// the splits. Clicking a tab selects it and focuses its leaf; the
// optional close button removes the tab through Tree.Remove, so leaves
// collapse by the tree's normal rule.
type DockArea struct {
	Tree   *Tree
	Viewer TabViewer

	// ShowClose adds a close button to every tab.
	ShowClose bool
}

// NewDockArea pairs a tree with a viewer. A nil viewer falls back to
// LabelViewer.
func NewDockArea(tree *Tree, viewer TabViewer) *DockArea {
	if viewer == nil {
		viewer = LabelViewer{}
	}
	return &DockArea{Tree: tree, Viewer: viewer}
}

// Show runs the full layout pass for one frame: assigns rectangles,
// draws every leaf, applies at most one close request, then draws the
// split borders.
func (d *DockArea) Show(ctx *gui.Context, rect gui.Rect) {
	if d.Tree == nil {
		return
	}
	d.Tree.Layout(rect)

	// A single click can close at most one tab; the removal is applied
	// after the visit so the leaf iteration never sees a mutated tree.
	var pendingClose *Location

	leafIndex := 0
	d.Tree.Leaves(func(leaf *Node) {
		ctx.PushIDInt(leafIndex)
		d.showLeaf(ctx, leaf, &pendingClose)
		ctx.PopID()
		leafIndex++
	})

	if pendingClose != nil {
		d.Tree.Remove(*pendingClose)
	}

	d.drawBorders(ctx, d.Tree.Root())
}

// tabBarHeight returns the configured tab strip height, deriving one
// from the line height when the style leaves it at zero.
func tabBarHeight(ctx *gui.Context) float32 {
	if h := ctx.Style().TabBarHeight; h > 0 {
		return h
	}
	return ctx.LineHeight() + gui.SpaceSM*2
}

func (d *DockArea) showLeaf(ctx *gui.Context, leaf *Node, pending **Location) {
	style := ctx.Style()
	r := leaf.Rect
	barH := tabBarHeight(ctx)

	dl := ctx.DrawList
	dl.PushClipRect(r.X, r.Y, r.X+r.W, r.Y+r.H)
	defer dl.PopClipRect()

	dl.AddRect(r.X, r.Y, r.W, barH, style.TabBarBgColor)

	focused := d.Tree.Focused() == leaf
	if leaf.Active >= len(leaf.Tabs) {
		leaf.Active = 0
	}

	x := r.X
	for i := range leaf.Tabs {
		tab := leaf.Tabs[i]
		title := d.Viewer.Title(tab)
		textSize := ctx.MeasureText(title)

		w := textSize.X + style.TabPadding*2
		closeW := float32(0)
		if d.ShowClose {
			closeW = ctx.MeasureText("x").X + style.TabPadding
			w += closeW
		}
		tabRect := gui.Rect{X: x, Y: r.Y, W: w, H: barH}
		id := ctx.GetID("tab:" + title)

		hovered := ctx.IsHovered(id, tabRect)
		if hovered {
			ctx.WantCaptureMouse = true
		}

		bg := style.TabColor
		switch {
		case i == leaf.Active && focused:
			bg = style.TabFocusedColor
		case i == leaf.Active:
			bg = style.TabActiveColor
		case hovered:
			bg = style.TabHoveredColor
		}
		dl.AddRect(tabRect.X, tabRect.Y, tabRect.W, tabRect.H, bg)

		textY := r.Y + (barH-textSize.Y)/2
		ctx.AddText(x+style.TabPadding, textY, title, style.TextColor)

		closed := false
		if d.ShowClose {
			closeRect := gui.Rect{X: x + w - closeW, Y: r.Y, W: closeW, H: barH}
			ctx.AddText(closeRect.X, textY, "x", style.CloseButtonColor)
			if ctx.IsClicked(ctx.GetID("close:"+title), closeRect) {
				loc := Location{Leaf: leaf, Index: i}
				*pending = &loc
				closed = true
			}
		}
		if !closed && ctx.IsClicked(id, tabRect) {
			leaf.Active = i
			d.Tree.SetFocused(leaf)
		}

		x += w + gui.SpaceXS
	}

	content := gui.Rect{X: r.X, Y: r.Y + barH, W: r.W, H: r.H - barH}
	dl.AddRect(content.X, content.Y, content.W, content.H, style.DockContentColor)

	// Clicking into the content area also focuses the leaf.
	if ctx.Input != nil && ctx.Input.MouseClicked(gui.MouseButtonLeft) &&
		content.Contains(gui.Vec2{X: ctx.Input.MouseX, Y: ctx.Input.MouseY}) {
		d.Tree.SetFocused(leaf)
	}

	if len(leaf.Tabs) == 0 {
		return
	}

	pad := style.PanelPadding
	inner := content.Inset(pad)

	dl.PushClipRect(content.X, content.Y, content.X+content.W, content.Y+content.H)
	saved := ctx.GetCursorPos()
	ctx.SetCursorPos(inner.X, inner.Y)

	d.Viewer.Render(ctx, leaf.Tabs[leaf.Active], inner)

	ctx.SetCursorPos(saved.X, saved.Y)
	dl.PopClipRect()
}

// drawBorders draws a line along each split boundary.
func (d *DockArea) drawBorders(ctx *gui.Context, n *Node) {
	if n == nil || n.IsLeaf() {
		return
	}

	color := ctx.Style().DockBorderColor
	first := n.First.Rect
	if n.Dir == SplitHorizontal {
		x := first.X + first.W
		ctx.DrawList.AddLine(x, n.Rect.Y, x, n.Rect.Y+n.Rect.H, color, borderThickness)
	} else {
		y := first.Y + first.H
		ctx.DrawList.AddLine(n.Rect.X, y, n.Rect.X+n.Rect.W, y, color, borderThickness)
	}

	d.drawBorders(ctx, n.First)
	d.drawBorders(ctx, n.Second)
}
