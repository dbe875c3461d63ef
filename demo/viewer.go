// Package demo wires the docking layout, the scene and the GUI into
// the per-frame driver the example programs run.
package demo

import (
	"fmt"

	"github.com/go-theft-auto/dockspace"
	"github.com/go-theft-auto/dockspace/gui"
	"github.com/go-theft-auto/dockspace/scene"
)

// ViewportTexture supplies the texture handle the viewport tab
// displays. glrender.Viewport implements it; tests use stubs.
type ViewportTexture interface {
	TextureID() uint32
}

// SceneTabs renders the demo's tabs: the live viewport, the scene
// control panel, and a plain label for everything else. Dispatch is on
// the tab's kind, decided once at insertion; any name never seen
// before falls through to the label branch, so rendering is total.
type SceneTabs struct {
	Scene   *scene.Scene
	Target  *scene.RenderTarget
	Texture ViewportTexture
}

func (v *SceneTabs) Title(tab dockspace.Tab) string {
	return tab.Name
}

func (v *SceneTabs) Render(ctx *gui.Context, tab dockspace.Tab, content gui.Rect) {
	switch tab.Kind {
	case dockspace.KindViewport:
		v.renderViewport(ctx, content)
	case dockspace.KindSceneControl:
		v.renderSceneControl(ctx, content)
	default:
		// Same fallback as dockspace.LabelViewer: the tab's own name.
		ctx.Text(tab.Name)
	}
}

// renderViewport sizes the render target to the panel and shows its
// texture. The target applies its own point-to-pixel scale.
func (v *SceneTabs) renderViewport(ctx *gui.Context, content gui.Rect) {
	if v.Target == nil {
		ctx.TextDisabled("no render target")
		return
	}

	v.Target.SyncSize(content.W, content.H)

	var texID uint32
	if v.Texture != nil {
		texID = v.Texture.TextureID()
	}
	if texID == 0 {
		ctx.TextDisabled("viewport not ready")
		return
	}

	// Framebuffer textures are stored bottom-up; flip V to show the
	// scene upright.
	ctx.ImageUV(texID, gui.Vec2{X: content.W, Y: content.H},
		gui.Vec2{X: 0, Y: 1}, gui.Vec2{X: 1, Y: 0})
}

// renderSceneControl edits the cube material in place. Changes apply
// the same frame; the color control clamps to [0,1] itself.
func (v *SceneTabs) renderSceneControl(ctx *gui.Context, content gui.Rect) {
	if v.Scene == nil {
		ctx.TextDisabled("no scene")
		return
	}

	ctx.VStack(gui.Width(content.W), gui.Gap(gui.SpaceSM))(func() {
		ctx.Text("Cube material")
		ctx.ColorEdit3("color", &v.Scene.Cube.Color)
		ctx.Separator()
		ctx.TextDisabled(fmt.Sprintf("rotation %.2f / %.2f",
			v.Scene.Cube.AngleX, v.Scene.Cube.AngleY))
	})
}
