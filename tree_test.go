package dockspace_test

import (
	"testing"

	"github.com/go-theft-auto/dockspace"
	"github.com/go-theft-auto/dockspace/gui"
)

func TestNewTabKinds(t *testing.T) {
	tests := []struct {
		name string
		kind dockspace.TabKind
	}{
		{"Viewport", dockspace.KindViewport},
		{"Scene Control", dockspace.KindSceneControl},
		{"Tab 1", dockspace.KindGeneric},
		{"", dockspace.KindGeneric},
		{"viewport", dockspace.KindGeneric}, // case sensitive
	}

	for _, tt := range tests {
		tab := dockspace.NewTab(tt.name)
		if tab.Kind != tt.kind {
			t.Errorf("NewTab(%q).Kind = %v, want %v", tt.name, tab.Kind, tt.kind)
		}
		if tab.Name != tt.name {
			t.Errorf("NewTab(%q).Name = %q", tt.name, tab.Name)
		}
	}
}

func TestFindInsertRemoveRoundTrip(t *testing.T) {
	tree := dockspace.NewTree(dockspace.NewTab("a"))

	if _, ok := tree.Find("b"); ok {
		t.Fatal("Find should miss before insert")
	}

	tree.Insert(dockspace.NewTab("b"))
	loc, ok := tree.Find("b")
	if !ok {
		t.Fatal("Find should hit immediately after insert")
	}

	tree.Remove(loc)
	if _, ok := tree.Find("b"); ok {
		t.Fatal("Find should miss immediately after remove")
	}
}

func TestFindReturnsFirstMatch(t *testing.T) {
	tree := dockspace.NewTree(dockspace.NewTab("dup"), dockspace.NewTab("dup"))

	loc, ok := tree.Find("dup")
	if !ok {
		t.Fatal("expected a match")
	}
	if loc.Index != 0 {
		t.Errorf("expected the first slot, got index %d", loc.Index)
	}
}

func TestRemoveLastTabKeepsRootLeaf(t *testing.T) {
	tree := dockspace.NewTree(dockspace.NewTab("only"))

	loc, _ := tree.Find("only")
	tree.Remove(loc)

	root := tree.Root()
	if !root.IsLeaf() {
		t.Fatal("root should stay a leaf")
	}
	if len(root.Tabs) != 0 {
		t.Fatalf("root should be empty, has %d tabs", len(root.Tabs))
	}

	// The empty root still accepts inserts.
	tree.Insert(dockspace.NewTab("again"))
	if _, ok := tree.Find("again"); !ok {
		t.Fatal("insert into empty root failed")
	}
}

func TestEmptyLeafCollapses(t *testing.T) {
	tree := dockspace.NewTree(dockspace.NewTab("main"))
	tree.SplitRight(tree.Root(), 0.5, dockspace.NewTab("side"))

	if tree.Root().IsLeaf() {
		t.Fatal("root should be a split after SplitRight")
	}

	loc, _ := tree.Find("side")
	tree.Remove(loc)

	if !tree.Root().IsLeaf() {
		t.Fatal("removing the side leaf's last tab should collapse the split")
	}
	if _, ok := tree.Find("main"); !ok {
		t.Fatal("surviving tab lost in collapse")
	}
}

func TestCollapsePromotesSubtree(t *testing.T) {
	tree := dockspace.NewTree(dockspace.NewTab("a"))
	nodes := tree.SplitRight(tree.Root(), 0.5, dockspace.NewTab("b"))
	tree.SplitBelow(nodes[1], 0.5, dockspace.NewTab("c"))

	// Removing "a" collapses the root split; the b/c split becomes root.
	loc, _ := tree.Find("a")
	tree.Remove(loc)

	if tree.Root().IsLeaf() {
		t.Fatal("root should be the promoted b/c split")
	}
	for _, name := range []string{"b", "c"} {
		if _, ok := tree.Find(name); !ok {
			t.Errorf("tab %q lost in collapse", name)
		}
	}
}

func TestInsertTargetsFocusedLeaf(t *testing.T) {
	tree := dockspace.NewTree(dockspace.NewTab("left"))
	nodes := tree.SplitRight(tree.Root(), 0.5, dockspace.NewTab("right"))

	tree.SetFocused(nodes[1])
	tree.Insert(dockspace.NewTab("new"))

	loc, ok := tree.Find("new")
	if !ok {
		t.Fatal("inserted tab not found")
	}
	if loc.Leaf != nodes[1] {
		t.Error("insert should land in the focused leaf")
	}
	if loc.Leaf.Active != loc.Index {
		t.Error("inserted tab should become the leaf's active tab")
	}
}

func TestSetFocusedIgnoresSplitNodes(t *testing.T) {
	tree := dockspace.NewTree(dockspace.NewTab("a"))
	tree.SplitRight(tree.Root(), 0.5, dockspace.NewTab("b"))

	before := tree.Focused()
	tree.SetFocused(tree.Root()) // root is a split now
	if tree.Focused() != before {
		t.Error("focusing a split node should be ignored")
	}
}

func TestToggleRoundTrip(t *testing.T) {
	tree := dockspace.NewTree(
		dockspace.NewTab("Viewport"),
		dockspace.NewTab("Tab 1"),
	)
	nodes := tree.SplitRight(tree.Root(), 0.3,
		dockspace.NewTab("Scene Control"),
		dockspace.NewTab("Tab 2"),
	)
	tree.SplitBelow(nodes[1], 0.5, dockspace.NewTab("Tab 3"))

	if present := tree.Toggle(dockspace.NewTab("Tab 2")); present {
		t.Fatal("toggle of a present tab should remove it")
	}
	if _, ok := tree.Find("Tab 2"); ok {
		t.Fatal("Tab 2 should be gone after toggle off")
	}

	if present := tree.Toggle(dockspace.NewTab("Tab 2")); !present {
		t.Fatal("toggle of an absent tab should insert it")
	}
	if _, ok := tree.Find("Tab 2"); !ok {
		t.Fatal("Tab 2 should be back after toggle on")
	}
}

func TestSplitReturnsOldAndNew(t *testing.T) {
	tree := dockspace.NewTree(dockspace.NewTab("tab1"), dockspace.NewTab("tab2"))
	nodes := tree.SplitLeft(tree.Root(), 0.3, dockspace.NewTab("tab3"))

	if nodes[0] == nil || nodes[1] == nil {
		t.Fatal("split should return both children")
	}
	if len(nodes[0].Tabs) != 2 || nodes[0].Tabs[0].Name != "tab1" {
		t.Error("old contents should move into the first returned node")
	}
	if len(nodes[1].Tabs) != 1 || nodes[1].Tabs[0].Name != "tab3" {
		t.Error("new tabs should move into the second returned node")
	}
}

func TestSplitRejectsBadFraction(t *testing.T) {
	tree := dockspace.NewTree(dockspace.NewTab("a"))

	for _, f := range []float32{0, 1, -0.5, 2} {
		tree.SplitRight(tree.Root(), f, dockspace.NewTab("b"))
		if !tree.Root().IsLeaf() {
			t.Fatalf("fraction %v should leave the tree unchanged", f)
		}
	}
}

func TestLeavesVisitOrder(t *testing.T) {
	tree := dockspace.NewTree(dockspace.NewTab("tab1"), dockspace.NewTab("tab2"))
	nodes := tree.SplitLeft(tree.Root(), 0.3, dockspace.NewTab("tab3"))
	tree.SplitBelow(nodes[0], 0.7, dockspace.NewTab("tab4"))
	tree.SplitBelow(nodes[1], 0.5, dockspace.NewTab("tab5"))

	var names []string
	tree.Leaves(func(leaf *dockspace.Node) {
		for _, tab := range leaf.Tabs {
			names = append(names, tab.Name)
		}
	})

	if len(names) != 5 {
		t.Fatalf("expected 5 tabs across leaves, got %d: %v", len(names), names)
	}
	// The new-left child comes first, then its below-split, then the
	// original side and its below-split.
	want := []string{"tab3", "tab5", "tab1", "tab2", "tab4"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("visit order = %v, want %v", names, want)
		}
	}
}

func TestLayoutPartitionsRect(t *testing.T) {
	tree := dockspace.NewTree(dockspace.NewTab("a"))
	nodes := tree.SplitRight(tree.Root(), 0.25, dockspace.NewTab("b"))
	tree.SplitBelow(nodes[1], 0.5, dockspace.NewTab("c"))

	full := gui.Rect{X: 0, Y: 20, W: 800, H: 580}
	tree.Layout(full)

	var area float32
	tree.Leaves(func(leaf *dockspace.Node) {
		r := leaf.Rect
		if r.W <= 0 || r.H <= 0 {
			t.Errorf("leaf rect has no area: %+v", r)
		}
		if r.X < full.X || r.Y < full.Y ||
			r.X+r.W > full.X+full.W+0.01 || r.Y+r.H > full.Y+full.H+0.01 {
			t.Errorf("leaf rect outside dock rect: %+v", r)
		}
		area += r.W * r.H
	})

	if total := full.W * full.H; area < total-1 || area > total+1 {
		t.Errorf("leaf areas sum to %v, want %v", area, total)
	}

	// The fraction is the left (old) child's share: the old node keeps
	// 25% of the width, the new right side gets the rest.
	if w := nodes[0].Rect.W; w != 200 {
		t.Errorf("old node width = %v, want 200", w)
	}
	if w := nodes[1].Rect.W; w != 600 {
		t.Errorf("new node width = %v, want 600", w)
	}
}

func TestLayoutFiveTabExample(t *testing.T) {
	// The startup layout of the docking example: split left 0.3, then
	// both sides split below (0.7 on the old side, 0.5 on the new one).
	tree := dockspace.NewTree(dockspace.NewTab("tab1"), dockspace.NewTab("tab2"))
	nodes := tree.SplitLeft(tree.Root(), 0.3, dockspace.NewTab("tab3"))
	tree.SplitBelow(nodes[0], 0.7, dockspace.NewTab("tab4"))
	tree.SplitBelow(nodes[1], 0.5, dockspace.NewTab("tab5"))

	tree.Layout(gui.Rect{W: 1000, H: 1000})

	rects := map[string]gui.Rect{}
	tree.Leaves(func(leaf *dockspace.Node) {
		for _, tab := range leaf.Tabs {
			rects[tab.Name] = leaf.Rect
		}
	})

	want := map[string]gui.Rect{
		"tab1": {X: 300, Y: 0, W: 700, H: 700},
		"tab2": {X: 300, Y: 0, W: 700, H: 700},
		"tab3": {X: 0, Y: 0, W: 300, H: 500},
		"tab4": {X: 300, Y: 700, W: 700, H: 300},
		"tab5": {X: 0, Y: 500, W: 300, H: 500},
	}
	near := func(a, b float32) bool {
		d := a - b
		return d > -0.01 && d < 0.01
	}
	for name, w := range want {
		got := rects[name]
		if !near(got.X, w.X) || !near(got.Y, w.Y) || !near(got.W, w.W) || !near(got.H, w.H) {
			t.Errorf("%s pane = %+v, want %+v", name, got, w)
		}
	}
}
