// Command docking shows a static five-tab split layout: a root leaf
// split left at 0.3, with both sides split again below. Every tab is a
// generic label; there is no menu and no 3D viewport.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/docking/
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/dockspace"
	"github.com/go-theft-auto/dockspace/gui"
	"github.com/go-theft-auto/dockspace/gui/backend/opengl"
)

const (
	windowWidth  = 1024
	windowHeight = 768
	windowTitle  = "dockspace docking example"
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

func newLayout() *dockspace.Tree {
	tree := dockspace.NewTree(dockspace.NewTab("tab1"), dockspace.NewTab("tab2"))
	nodes := tree.SplitLeft(tree.Root(), 0.3, dockspace.NewTab("tab3"))
	tree.SplitBelow(nodes[0], 0.7, dockspace.NewTab("tab4"))
	tree.SplitBelow(nodes[1], 0.5, dockspace.NewTab("tab5"))
	return tree
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)
	ui := gui.New(renderer)

	area := dockspace.NewDockArea(newLayout(), nil)

	for !window.ShouldClose() {
		glfw.PollEvents()
		inputAdapter.Update()

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := gui.Vec2{X: float32(w), Y: float32(h)}
		ctx := ui.Begin(inputAdapter.Input(), displaySize, 1.0/60.0)

		area.Show(ctx, gui.Rect{W: displaySize.X, H: displaySize.Y})

		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
