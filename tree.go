package dockspace

import "github.com/go-theft-auto/dockspace/gui"

// SplitDir is the axis a split node divides along.
type SplitDir int

const (
	SplitHorizontal SplitDir = iota // children side by side
	SplitVertical                   // children stacked
)

// Node is one node of the docking tree: either a leaf holding an
// ordered run of tabs, or a split with exactly two children.
type Node struct {
	// Leaf fields
	Tabs   []Tab
	Active int // index of the leaf's selected tab

	// Split fields
	Dir      SplitDir
	Fraction float32 // share of the axis given to First, in (0,1)
	First    *Node
	Second   *Node

	// Rect is assigned by Tree.Layout each frame.
	Rect gui.Rect

	parent *Node
}

// IsLeaf reports whether the node holds tabs rather than children.
func (n *Node) IsLeaf() bool { return n.First == nil }

// Location identifies one tab slot in the tree. Valid until the next
// mutation of the tree.
type Location struct {
	Leaf  *Node
	Index int
}

// Tree is a binary split tree of tab leaves. The tree always keeps at
// least its root leaf, even after every tab has been removed. The zero
// value is not usable; construct with NewTree.
type Tree struct {
	root    *Node
	focused *Node
}

// NewTree builds a tree consisting of a single root leaf holding the
// given tabs. The root leaf starts focused.
func NewTree(tabs ...Tab) *Tree {
	root := &Node{Tabs: append([]Tab(nil), tabs...)}
	return &Tree{root: root, focused: root}
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node { return t.root }

// Focused returns the leaf that receives blind inserts.
func (t *Tree) Focused() *Node { return t.focused }

// SetFocused marks a leaf as the insertion target. Non-leaf nodes are
// ignored.
func (t *Tree) SetFocused(n *Node) {
	if n != nil && n.IsLeaf() {
		t.focused = n
	}
}

// Find returns the location of the first tab with the given name in
// leaf visit order. Absence is the normal "not present" case, not an
// error.
func (t *Tree) Find(name string) (Location, bool) {
	var loc Location
	found := false
	t.Leaves(func(leaf *Node) {
		if found {
			return
		}
		for i := range leaf.Tabs {
			if leaf.Tabs[i].Name == name {
				loc = Location{Leaf: leaf, Index: i}
				found = true
				return
			}
		}
	})
	return loc, found
}

// Remove deletes the tab at loc. A leaf left empty collapses into its
// sibling: the parent split is replaced by the sibling subtree. The
// root leaf never collapses.
func (t *Tree) Remove(loc Location) {
	leaf := loc.Leaf
	if leaf == nil || !leaf.IsLeaf() || loc.Index < 0 || loc.Index >= len(leaf.Tabs) {
		return
	}

	leaf.Tabs = append(leaf.Tabs[:loc.Index], leaf.Tabs[loc.Index+1:]...)
	if leaf.Active >= len(leaf.Tabs) && leaf.Active > 0 {
		leaf.Active = len(leaf.Tabs) - 1
	}

	if len(leaf.Tabs) == 0 && leaf != t.root {
		t.collapse(leaf)
	}
}

// collapse removes an empty leaf, promoting its sibling into the
// parent's place.
func (t *Tree) collapse(leaf *Node) {
	parent := leaf.parent
	if parent == nil {
		return
	}

	sibling := parent.First
	if sibling == leaf {
		sibling = parent.Second
	}

	grand := parent.parent
	sibling.parent = grand
	if grand == nil {
		t.root = sibling
	} else if grand.First == parent {
		grand.First = sibling
	} else {
		grand.Second = sibling
	}

	if t.focused == leaf {
		t.focused = firstLeaf(sibling)
	}
}

func firstLeaf(n *Node) *Node {
	for !n.IsLeaf() {
		n = n.First
	}
	return n
}

// Insert appends a tab to the focused leaf, or to the first leaf when
// nothing is focused, and makes it that leaf's active tab.
func (t *Tree) Insert(tab Tab) {
	leaf := t.focused
	if leaf == nil || !leaf.IsLeaf() {
		leaf = firstLeaf(t.root)
	}
	leaf.Tabs = append(leaf.Tabs, tab)
	leaf.Active = len(leaf.Tabs) - 1
}

// Toggle removes the named tab when present and inserts it otherwise.
// It reports whether the tab is present afterwards.
func (t *Tree) Toggle(tab Tab) bool {
	if loc, ok := t.Find(tab.Name); ok {
		t.Remove(loc)
		return false
	}
	t.Insert(tab)
	return true
}

// SplitLeft divides node, moving tabs into a new child on the left.
// fraction is the share of the width given to the left (new) child.
// Returns the old and new nodes in that order.
func (t *Tree) SplitLeft(node *Node, fraction float32, tabs ...Tab) [2]*Node {
	return t.split(node, SplitHorizontal, true, fraction, tabs)
}

// SplitRight divides node, moving tabs into a new child on the right.
// fraction is the share of the width kept by the left (old) child.
func (t *Tree) SplitRight(node *Node, fraction float32, tabs ...Tab) [2]*Node {
	return t.split(node, SplitHorizontal, false, fraction, tabs)
}

// SplitAbove divides node, moving tabs into a new child on top.
// fraction is the share of the height given to the top (new) child.
func (t *Tree) SplitAbove(node *Node, fraction float32, tabs ...Tab) [2]*Node {
	return t.split(node, SplitVertical, true, fraction, tabs)
}

// SplitBelow divides node, moving tabs into a new child underneath.
// fraction is the share of the height kept by the top (old) child.
func (t *Tree) SplitBelow(node *Node, fraction float32, tabs ...Tab) [2]*Node {
	return t.split(node, SplitVertical, false, fraction, tabs)
}

// split turns node into a split: its current contents move into one
// child, tabs fill the other. fraction is always the first (left or
// top) child's share of the axis, whichever child that is. It must lie
// in (0,1); out-of-range values leave the tree unchanged.
func (t *Tree) split(node *Node, dir SplitDir, newFirst bool, fraction float32, tabs []Tab) [2]*Node {
	if node == nil || fraction <= 0 || fraction >= 1 {
		return [2]*Node{node, nil}
	}

	old := &Node{
		Tabs:     node.Tabs,
		Active:   node.Active,
		Dir:      node.Dir,
		Fraction: node.Fraction,
		First:    node.First,
		Second:   node.Second,
		parent:   node,
	}
	if old.First != nil {
		old.First.parent = old
		old.Second.parent = old
	}
	fresh := &Node{Tabs: append([]Tab(nil), tabs...), parent: node}

	node.Tabs = nil
	node.Active = 0
	node.Dir = dir
	if newFirst {
		node.First, node.Second = fresh, old
	} else {
		node.First, node.Second = old, fresh
	}
	node.Fraction = fraction

	// A split node can no longer hold focus.
	if t.focused == node {
		t.focused = firstLeaf(old)
	}

	return [2]*Node{old, fresh}
}

// Leaves visits every leaf depth first, first child before second.
// The visit order defines Find's "first match".
func (t *Tree) Leaves(fn func(*Node)) {
	visitLeaves(t.root, fn)
}

func visitLeaves(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		fn(n)
		return
	}
	visitLeaves(n.First, fn)
	visitLeaves(n.Second, fn)
}

// Layout assigns on-screen rectangles to every node. A split gives
// Fraction of its axis to the first child and the rest to the second;
// leaf rectangles partition the input exactly.
func (t *Tree) Layout(rect gui.Rect) {
	layoutNode(t.root, rect)
}

func layoutNode(n *Node, rect gui.Rect) {
	if n == nil {
		return
	}
	n.Rect = rect
	if n.IsLeaf() {
		return
	}

	if n.Dir == SplitHorizontal {
		w := rect.W * n.Fraction
		layoutNode(n.First, gui.Rect{X: rect.X, Y: rect.Y, W: w, H: rect.H})
		layoutNode(n.Second, gui.Rect{X: rect.X + w, Y: rect.Y, W: rect.W - w, H: rect.H})
	} else {
		h := rect.H * n.Fraction
		layoutNode(n.First, gui.Rect{X: rect.X, Y: rect.Y, W: rect.W, H: h})
		layoutNode(n.Second, gui.Rect{X: rect.X, Y: rect.Y + h, W: rect.W, H: rect.H - h})
	}
}
