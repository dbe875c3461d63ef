// Package glrender is the OpenGL side of the scene package: it owns
// the render-to-texture framebuffer the camera draws into and the cube
// pipeline that fills it each frame.
package glrender

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/dockspace/scene"
)

// Viewport owns the GL storage behind a scene.RenderTarget: a
// framebuffer with one color texture and a depth-stencil renderbuffer.
// The color texture handle is generated once and stays stable across
// reallocation; a resize replaces the storage, not the identity, so
// the GUI can keep displaying the same texture ID.
type Viewport struct {
	target *scene.RenderTarget

	inited        bool
	generation    uint64
	width, height int32

	fbo uint32
	tex uint32
	rbo uint32
}

// NewViewport wires a viewport to the render target whose size it
// follows. No GL resources are created until the first Bind.
func NewViewport(target *scene.RenderTarget) *Viewport {
	return &Viewport{target: target}
}

// TextureID returns the color texture handle for GUI display. Zero
// until the first Bind.
func (v *Viewport) TextureID() uint32 {
	return v.tex
}

// Size returns the current storage dimensions in pixels.
func (v *Viewport) Size() (width, height int32) {
	return v.width, v.height
}

// Bind makes the framebuffer current at the render target's size,
// reallocating storage when the target's generation moved, and clears
// color and depth. Call Unbind before the GUI pass.
func (v *Viewport) Bind(clear [4]float32) {
	v.sync()

	gl.BindFramebuffer(gl.FRAMEBUFFER, v.fbo)
	gl.Viewport(0, 0, v.width, v.height)
	gl.ClearColor(clear[0], clear[1], clear[2], clear[3])
	gl.ClearDepth(1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Unbind restores the default framebuffer.
func (v *Viewport) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// sync (re)creates the attachment storage at the target's current
// pixel size. An incomplete framebuffer means the setup is broken
// beyond recovery, so it panics.
func (v *Viewport) sync() {
	gen := v.target.Generation()
	if v.inited && gen == v.generation {
		return
	}

	w, h := v.target.Size()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	if !v.inited {
		gl.GenFramebuffers(1, &v.fbo)
		gl.GenTextures(1, &v.tex)
		gl.GenRenderbuffers(1, &v.rbo)
		v.inited = true
	}

	gl.BindTexture(gl.TEXTURE_2D, v.tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.BindRenderbuffer(gl.RENDERBUFFER, v.rbo)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, int32(w), int32(h))
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	gl.BindFramebuffer(gl.FRAMEBUFFER, v.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, v.tex, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, v.rbo)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		panic(fmt.Sprintf("glrender: incomplete framebuffer: 0x%x", status))
	}

	v.generation = gen
	v.width, v.height = int32(w), int32(h)
}

// Delete releases the framebuffer, texture and renderbuffer.
func (v *Viewport) Delete() {
	if !v.inited {
		return
	}
	v.inited = false

	gl.DeleteTextures(1, &v.tex)
	gl.DeleteFramebuffers(1, &v.fbo)
	gl.DeleteRenderbuffers(1, &v.rbo)
	v.tex, v.fbo, v.rbo = 0, 0, 0
}
