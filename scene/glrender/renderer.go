package glrender

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"

	"github.com/go-theft-auto/dockspace/scene"
)

const cubeVertexShader = `
#version 410 core
in vec3 aPosition;
in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 WorldPos;
out vec3 Normal;

void main() {
    vec4 world = uModel * vec4(aPosition, 1.0);
    WorldPos = world.xyz;
    Normal = mat3(uModel) * aNormal;
    gl_Position = uProjection * uView * world;
}
`

const cubeFragmentShader = `
#version 410 core
in vec3 WorldPos;
in vec3 Normal;

uniform vec3 uColor;
uniform vec3 uLightPos;
uniform vec3 uLightColor;

out vec4 FragColor;

void main() {
    vec3 n = normalize(Normal);
    vec3 l = normalize(uLightPos - WorldPos);
    float diff = max(dot(n, l), 0.0);
    vec3 lit = uColor * (0.2 + diff * uLightColor);
    FragColor = vec4(lit, 1.0);
}
`

// Renderer draws a Scene's cube into the bound framebuffer. The mesh
// is uploaded once at construction; per-frame work is uniform updates
// and a single indexed draw.
type Renderer struct {
	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32

	uModel      int32
	uView       int32
	uProjection int32
	uColor      int32
	uLightPos   int32
	uLightColor int32

	indexCount int32
}

// NewRenderer compiles the cube pipeline and uploads the cube mesh.
// Shader failures are setup faults surfaced to the caller.
func NewRenderer() (*Renderer, error) {
	program, err := loadProgram(cubeVertexShader, cubeFragmentShader)
	if err != nil {
		return nil, errors.Wrap(err, "cube program")
	}

	r := &Renderer{
		program:    program,
		indexCount: int32(len(scene.CubeIndices)),
	}

	r.uModel = gl.GetUniformLocation(program, gl.Str("uModel\x00"))
	r.uView = gl.GetUniformLocation(program, gl.Str("uView\x00"))
	r.uProjection = gl.GetUniformLocation(program, gl.Str("uProjection\x00"))
	r.uColor = gl.GetUniformLocation(program, gl.Str("uColor\x00"))
	r.uLightPos = gl.GetUniformLocation(program, gl.Str("uLightPos\x00"))
	r.uLightColor = gl.GetUniformLocation(program, gl.Str("uLightColor\x00"))

	aPosition := uint32(gl.GetAttribLocation(program, gl.Str("aPosition\x00")))
	aNormal := uint32(gl.GetAttribLocation(program, gl.Str("aNormal\x00")))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(scene.CubeVertices)*4, gl.Ptr(scene.CubeVertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(scene.CubeIndices)*2, gl.Ptr(scene.CubeIndices), gl.STATIC_DRAW)

	// Interleaved position + normal, 6 floats per vertex.
	gl.VertexAttribPointerWithOffset(aPosition, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(aPosition)
	gl.VertexAttribPointerWithOffset(aNormal, 3, gl.FLOAT, false, 6*4, 3*4)
	gl.EnableVertexAttribArray(aNormal)

	gl.BindVertexArray(0)

	return r, nil
}

// Draw renders the scene into the currently bound framebuffer with
// depth testing, then restores state for the GUI pass.
func (r *Renderer) Draw(s *scene.Scene, aspect float32) {
	depthWas := gl.IsEnabled(gl.DEPTH_TEST)
	gl.Enable(gl.DEPTH_TEST)

	gl.UseProgram(r.program)

	model := s.Cube.Model()
	view := s.Camera.View()
	proj := s.Camera.Projection(aspect)

	gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
	gl.UniformMatrix4fv(r.uView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.uProjection, 1, false, &proj[0])
	gl.Uniform3f(r.uColor, s.Cube.Color[0], s.Cube.Color[1], s.Cube.Color[2])
	gl.Uniform3f(r.uLightPos, s.Light.Position.X(), s.Light.Position.Y(), s.Light.Position.Z())
	gl.Uniform3f(r.uLightColor, s.Light.Color.X(), s.Light.Color.Y(), s.Light.Color.Z())

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)

	gl.UseProgram(0)
	if !depthWas {
		gl.Disable(gl.DEPTH_TEST)
	}
}

// Delete releases the pipeline and mesh buffers.
func (r *Renderer) Delete() {
	gl.DeleteBuffers(1, &r.ebo)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
}

func loadProgram(vertexText, fragmentText string) (uint32, error) {
	vs, err := loadShader(gl.VERTEX_SHADER, vertexText)
	if err != nil {
		return 0, errors.Wrap(err, "vertex shader")
	}

	fs, err := loadShader(gl.FRAGMENT_SHADER, fragmentText)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, errors.Wrap(err, "fragment shader")
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var isLinked int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &isLinked)
	if isLinked == gl.FALSE {
		var logSize int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logSize)
		buf := make([]uint8, logSize+1)
		gl.GetProgramInfoLog(program, int32(len(buf)), &logSize, &buf[0])
		gl.DeleteProgram(program)
		return 0, errors.Errorf("failed to link program: %q", string(buf[:logSize]))
	}

	return program, nil
}

func loadShader(xtype uint32, text string) (uint32, error) {
	shader := gl.CreateShader(xtype)
	csource, free := gl.Strs(text + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var success int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &success)
	if success == gl.FALSE {
		var logSize int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logSize)
		buf := make([]uint8, logSize+1)
		gl.GetShaderInfoLog(shader, int32(len(buf)), &logSize, &buf[0])
		gl.DeleteShader(shader)
		return 0, errors.Errorf("failed to compile shader: %q", string(buf[:logSize]))
	}

	return shader, nil
}
