// Package opengl provides an OpenGL 4.1 backend for the gui package:
// a draw-list renderer with scissor clipping and per-command texture
// binding, plus a GLFW input adapter.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/dockspace/gui"
)

// Renderer implements gui rendering using OpenGL.
type Renderer struct {
	shader       uint32
	vao, vbo     uint32
	ebo          uint32
	fontTex      uint32
	projLoc      int32
	texLoc       int32
	useTexLoc    int32
	isRGBATexLoc int32 // Uniform for RGBA vs alpha-only texture mode
	width        int
	height       int

	// Track which textures are RGBA (vs alpha-only)
	rgbaTextures map[uint32]bool
}

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// Fragment shader source.
// Two texture modes:
// - Alpha-only (R channel): the built-in bitmap font
// - RGBA: full-color textures such as the dock viewport's render target
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D tex;
uniform bool useTexture;
uniform bool isRGBATexture;

void main() {
    if (useTexture) {
        vec4 texColor = texture(tex, TexCoord);
        if (isRGBATexture) {
            FragColor = texColor * Color;
        } else {
            FragColor = vec4(Color.rgb, Color.a * texColor.r);
        }
    } else {
        FragColor = Color;
    }
}
` + "\x00"

// NewRenderer creates a new OpenGL GUI renderer.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:        width,
		height:       height,
		rgbaTextures: make(map[uint32]bool),
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("tex\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))
	r.isRGBATexLoc = gl.GetUniformLocation(r.shader, gl.Str("isRGBATexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Vertex layout: Pos (2 floats) + TexCoord (2 floats) + Color (1 uint32)
	stride := int32(unsafe.Sizeof(gui.Vertex{}))

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(gui.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(gui.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	r.fontTex = createFontTexture()

	return r, nil
}

// FontTextureID returns the OpenGL texture ID for the font atlas.
func (r *Renderer) FontTextureID() uint32 {
	return r.fontTex
}

// RegisterRGBATexture marks a texture as RGBA (vs alpha-only).
// RGBA textures use all four channels for color, while alpha-only
// textures use just the R channel (tinted by vertex color). Render
// targets displayed through gui.Image must be registered here.
func (r *Renderer) RegisterRGBATexture(textureID uint32) {
	r.rgbaTextures[textureID] = true
}

// UnregisterRGBATexture removes a texture from the RGBA tracking.
func (r *Renderer) UnregisterRGBATexture(textureID uint32) {
	delete(r.rgbaTextures, textureID)
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render draws the GUI DrawList.
func (r *Renderer) Render(dl *gui.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}

	dl.Finalize()

	// Save GL state
	var lastProgram int32
	var lastBlendSrc, lastBlendDst int32
	var lastScissorBox [4]int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &lastScissorBox[0])
	blendEnabled := gl.IsEnabled(gl.BLEND)
	depthEnabled := gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled := gl.IsEnabled(gl.CULL_FACE)
	scissorEnabled := gl.IsEnabled(gl.SCISSOR_TEST)

	// Setup render state
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)

	// Orthographic projection, y down to match GUI coordinates
	proj := mgl32.Ortho(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(gui.Vertex{})),
		gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2,
		gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}

		// Clip rectangle in OpenGL coordinates (Y flipped)
		clipX := int32(cmd.ClipRect[0])
		clipY := int32(float32(r.height) - cmd.ClipRect[3])
		clipW := int32(cmd.ClipRect[2] - cmd.ClipRect[0])
		clipH := int32(cmd.ClipRect[3] - cmd.ClipRect[1])

		if clipX < 0 {
			clipW += clipX
			clipX = 0
		}
		if clipY < 0 {
			clipH += clipY
			clipY = 0
		}
		if clipW <= 0 || clipH <= 0 {
			continue
		}

		gl.Scissor(clipX, clipY, clipW, clipH)

		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.Uniform1i(r.useTexLoc, 1)
			if r.rgbaTextures[cmd.TextureID] {
				gl.Uniform1i(r.isRGBATexLoc, 1)
			} else {
				gl.Uniform1i(r.isRGBATexLoc, 0)
			}
		} else {
			gl.Uniform1i(r.useTexLoc, 0)
			gl.Uniform1i(r.isRGBATexLoc, 0)
		}

		gl.DrawElementsBaseVertexWithOffset(
			gl.TRIANGLES,
			int32(cmd.ElemCount),
			gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2,
			int32(cmd.VertexOffset),
		)
	}

	// Restore GL state
	gl.UseProgram(uint32(lastProgram))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))

	setEnabled(gl.BLEND, blendEnabled)
	setEnabled(gl.DEPTH_TEST, depthEnabled)
	setEnabled(gl.CULL_FACE, cullEnabled)
	setEnabled(gl.SCISSOR_TEST, scissorEnabled)
	gl.Scissor(lastScissorBox[0], lastScissorBox[1], lastScissorBox[2], lastScissorBox[3])

	gl.BindVertexArray(0)

	return nil
}

func setEnabled(cap uint32, enabled bool) {
	if enabled {
		gl.Enable(cap)
	} else {
		gl.Disable(cap)
	}
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment shader: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &infoLog[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(infoLog))
	}

	// Shaders are linked into the program now
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(shaderType uint32, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &infoLog[0])
		return 0, fmt.Errorf("compilation failed: %s", string(infoLog))
	}
	return shader, nil
}
