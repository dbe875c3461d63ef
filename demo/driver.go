package demo

import (
	"github.com/go-theft-auto/dockspace"
	"github.com/go-theft-auto/dockspace/gui"
	"github.com/go-theft-auto/dockspace/scene"
)

// Driver runs the fixed per-frame order: menu bar toggles, the dock
// layout pass, then the scene step. All three complete within the
// frame; tab presence changes take effect in the same layout pass that
// follows the click.
type Driver struct {
	Tree  *dockspace.Tree
	Area  *dockspace.DockArea
	Scene *scene.Scene

	// Toggles lists the tab names offered in the Windows menu, in
	// display order.
	Toggles []string
}

// NewDriver assembles a driver around an existing tree. Tabs get close
// buttons so the menu and the tab bar both route through Tree.Remove.
func NewDriver(tree *dockspace.Tree, viewer dockspace.TabViewer, s *scene.Scene, toggles []string) *Driver {
	area := dockspace.NewDockArea(tree, viewer)
	area.ShowClose = true
	return &Driver{Tree: tree, Area: area, Scene: s, Toggles: toggles}
}

// Frame executes one frame. dt is the elapsed frame time in seconds;
// the cube advances by its fixed rates times dt regardless of GUI
// interaction.
func (d *Driver) Frame(ctx *gui.Context, dt float32) {
	ctx.MainMenuBar()(func() {
		ctx.Menu("Windows")(func() {
			for _, name := range d.Toggles {
				_, present := d.Tree.Find(name)
				if ctx.MenuItem(name, present) {
					d.Tree.Toggle(dockspace.NewTab(name))
				}
			}
		})
	})

	top := ctx.MenuBarHeight()
	d.Area.Show(ctx, gui.Rect{
		X: 0,
		Y: top,
		W: ctx.DisplaySize.X,
		H: ctx.DisplaySize.Y - top,
	})

	if d.Scene != nil {
		d.Scene.Step(dt)
	}
}
