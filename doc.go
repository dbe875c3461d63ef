// Package dockspace implements a dockable tab layout for immediate-mode
// GUIs: a binary split tree of tab leaves plus the per-frame pass that
// draws tab bars, routes clicks, and renders the selected tab of every
// leaf through a TabViewer.
//
// The tree is plain mutable state driven by the frame loop:
//
//	tree := dockspace.NewTree(dockspace.NewTab("Viewport"), dockspace.NewTab("Tab 1"))
//	nodes := tree.SplitRight(tree.Root(), 0.7, dockspace.NewTab("Scene Control"))
//	tree.SplitBelow(nodes[1], 0.5, dockspace.NewTab("Tab 2"))
//
//	area := dockspace.NewDockArea(tree, viewer)
//	// each frame, after gui.Begin:
//	area.Show(ctx, gui.Rect{X: 0, Y: ctx.MenuBarHeight(), W: w, H: h})
//
// All mutation happens on the frame goroutine; nothing here is safe for
// concurrent use.
package dockspace
