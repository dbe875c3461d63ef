package dockspace_test

import (
	"testing"

	"github.com/go-theft-auto/dockspace"
	"github.com/go-theft-auto/dockspace/gui"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
}

func (m *mockRenderer) Render(dl *gui.DrawList) error {
	m.renderCalls++
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

// recordingViewer records every tab it is asked to render.
type recordingViewer struct {
	rendered []dockspace.Tab
	rects    []gui.Rect
}

func (v *recordingViewer) Title(tab dockspace.Tab) string { return tab.Name }

func (v *recordingViewer) Render(ctx *gui.Context, tab dockspace.Tab, content gui.Rect) {
	v.rendered = append(v.rendered, tab)
	v.rects = append(v.rects, content)
}

func TestDockAreaRendersActiveTabPerLeaf(t *testing.T) {
	tree := dockspace.NewTree(dockspace.NewTab("a"), dockspace.NewTab("b"))
	nodes := tree.SplitRight(tree.Root(), 0.5, dockspace.NewTab("c"))
	tree.SplitBelow(nodes[1], 0.5, dockspace.NewTab("d"))

	viewer := &recordingViewer{}
	area := dockspace.NewDockArea(tree, viewer)

	ui := gui.New(&mockRenderer{})
	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)

	area.Show(ctx, gui.Rect{W: 800, H: 600})

	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}

	// Three leaves, one active tab each.
	if len(viewer.rendered) != 3 {
		t.Fatalf("expected 3 rendered tabs, got %d", len(viewer.rendered))
	}
	names := map[string]bool{}
	for _, tab := range viewer.rendered {
		names[tab.Name] = true
	}
	for _, want := range []string{"a", "c", "d"} {
		if !names[want] {
			t.Errorf("active tab %q was not rendered", want)
		}
	}

	for _, r := range viewer.rects {
		if r.W <= 0 || r.H <= 0 {
			t.Errorf("content rect has no area: %+v", r)
		}
	}
}

func TestDockAreaContentClickFocusesLeaf(t *testing.T) {
	tree := dockspace.NewTree(dockspace.NewTab("left"))
	nodes := tree.SplitRight(tree.Root(), 0.5, dockspace.NewTab("right"))

	area := dockspace.NewDockArea(tree, nil)
	ui := gui.New(&mockRenderer{})

	input := gui.NewInputState()
	input.SetMousePos(600, 300) // inside the right leaf's content
	input.SetMouseButton(gui.MouseButtonLeft, true)

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	area.Show(ctx, gui.Rect{W: 800, H: 600})
	_ = ui.End()

	if tree.Focused() != nodes[1] {
		t.Error("clicking into a leaf's content should focus it")
	}
}

func TestDockAreaCloseButtonRemovesTab(t *testing.T) {
	tree := dockspace.NewTree(dockspace.NewTab("a"))
	area := dockspace.NewDockArea(tree, nil)
	area.ShowClose = true

	ui := gui.New(&mockRenderer{})

	// Tab button: text (1 char * 12px) + padding 8*2 = 28 wide, then a
	// close region of "x" width (12) + padding 8. Click inside the
	// close region.
	input := gui.NewInputState()
	input.SetMousePos(38, 10)
	input.SetMouseButton(gui.MouseButtonLeft, true)

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	area.Show(ctx, gui.Rect{W: 800, H: 600})
	_ = ui.End()

	if _, ok := tree.Find("a"); ok {
		t.Error("clicking the close button should remove the tab")
	}
}

func TestDockAreaEmptyLeafRenders(t *testing.T) {
	tree := dockspace.NewTree()
	viewer := &recordingViewer{}
	area := dockspace.NewDockArea(tree, viewer)

	ui := gui.New(&mockRenderer{})
	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)
	area.Show(ctx, gui.Rect{W: 800, H: 600})
	_ = ui.End()

	if len(viewer.rendered) != 0 {
		t.Error("an empty leaf has no active tab to render")
	}
}

func TestLabelViewerIsTotal(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)

	viewer := dockspace.LabelViewer{}
	for _, name := range []string{"Viewport", "Scene Control", "Tab 1", "never seen", ""} {
		viewer.Render(ctx, dockspace.NewTab(name), gui.Rect{W: 100, H: 100})
	}

	_ = ui.End()
}
