// Command viewport is the full demo: a docking layout hosting a live
// render-to-texture view of a rotating cube plus a scene-control panel
// that edits the cube's material color. A Windows menu toggles every
// tab on and off.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/viewport/
//
// An optional dockspace.yaml next to the working directory configures
// the window size, vsync, display scale and viewport clear color.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/dockspace"
	"github.com/go-theft-auto/dockspace/demo"
	"github.com/go-theft-auto/dockspace/gui"
	"github.com/go-theft-auto/dockspace/gui/backend/opengl"
	"github.com/go-theft-auto/dockspace/scene"
	"github.com/go-theft-auto/dockspace/scene/glrender"
)

const (
	windowTitle = "dockspace viewport example"
	configPath  = "dockspace.yaml"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLayout builds the startup tree: the viewport on the left, the
// scene control and spare tabs on the right.
func newLayout() *dockspace.Tree {
	tree := dockspace.NewTree(
		dockspace.NewTab(dockspace.NameViewport),
		dockspace.NewTab("Tab 1"),
	)
	nodes := tree.SplitRight(tree.Root(), 0.7,
		dockspace.NewTab(dockspace.NameSceneControl),
		dockspace.NewTab("Tab 2"),
	)
	tree.SplitBelow(nodes[1], 0.5, dockspace.NewTab("Tab 3"))
	return tree
}

func run() error {
	cfg, err := demo.LoadConfig(configPath)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	guiRenderer, err := opengl.NewRenderer(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer guiRenderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)
	ui := gui.New(guiRenderer, gui.WithDisplayScale(cfg.DisplayScale))

	// Scene side: state, render target, GL storage, cube pipeline.
	world := scene.NewScene()
	target := scene.NewRenderTarget(cfg.DisplayScale)
	viewport := glrender.NewViewport(target)
	defer viewport.Delete()

	cubeRenderer, err := glrender.NewRenderer()
	if err != nil {
		return fmt.Errorf("scene renderer: %w", err)
	}
	defer cubeRenderer.Delete()

	viewer := &demo.SceneTabs{Scene: world, Target: target, Texture: viewport}
	driver := demo.NewDriver(newLayout(), viewer, world, []string{
		dockspace.NameViewport,
		dockspace.NameSceneControl,
		"Tab 1",
		"Tab 2",
		"Tab 3",
	})

	lastTime := glfw.GetTime()
	registeredTex := uint32(0)

	for !window.ShouldClose() {
		glfw.PollEvents()
		inputAdapter.Update()

		now := glfw.GetTime()
		dt := float32(now - lastTime)
		lastTime = now

		// Rasterize the scene into the render target first; the GUI
		// pass that follows samples the finished texture.
		if w, h := target.Size(); w > 0 && h > 0 {
			viewport.Bind(cfg.ClearColor)
			cubeRenderer.Draw(world, float32(w)/float32(h))
			viewport.Unbind()

			if tex := viewport.TextureID(); tex != registeredTex {
				if registeredTex != 0 {
					guiRenderer.UnregisterRGBATexture(registeredTex)
				}
				guiRenderer.RegisterRGBATexture(tex)
				registeredTex = tex
			}
		}

		w, h := window.GetFramebufferSize()
		guiRenderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := gui.Vec2{X: float32(w), Y: float32(h)}
		ctx := ui.Begin(inputAdapter.Input(), displaySize, dt)

		driver.Frame(ctx, dt)

		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
