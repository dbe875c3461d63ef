// Package scene owns the 3D side of the demo: the rotating cube, a
// fixed camera, a point light, and the render-target size tracking.
// Everything here is free of GL calls so the frame logic can be tested
// without a context; the glrender subpackage reacts to this state.
package scene

import "github.com/go-gl/mathgl/mgl32"

// Cube is the scene's single entity: a unit cube with a material color
// and two independently rotating axes.
type Cube struct {
	Position mgl32.Vec3

	// Accumulated rotation in radians.
	AngleX, AngleY float32

	// Angular velocity in radians per second.
	RateX, RateY float32

	// Material color, RGB in [0,1]. Written by the scene-control panel.
	Color [3]float32
}

// Step advances both rotation axes by dt seconds. The accumulated
// angle after any sequence of steps equals rate times total elapsed
// time, regardless of how the time was sliced.
func (c *Cube) Step(dt float32) {
	c.AngleX += c.RateX * dt
	c.AngleY += c.RateY * dt
}

// Model returns the cube's model matrix: rotation about X, then Y,
// then translation.
func (c *Cube) Model() mgl32.Mat4 {
	rot := mgl32.HomogRotate3DY(c.AngleY).Mul4(mgl32.HomogRotate3DX(c.AngleX))
	return mgl32.Translate3D(c.Position.X(), c.Position.Y(), c.Position.Z()).Mul4(rot)
}

// Camera is a fixed-pose perspective camera.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	FOV  float32 // vertical field of view, radians
	Near float32
	Far  float32
}

// View returns the camera's view matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// Projection returns the perspective projection for the given aspect
// ratio (width over height).
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// PointLight is a single positional light.
type PointLight struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// Scene holds exactly one cube, one camera and one light. The frame
// driver expects this arrangement; a missing or duplicated entity is a
// setup fault, which the fixed struct shape rules out.
type Scene struct {
	Cube   Cube
	Camera Camera
	Light  PointLight
}

// Step advances the scene's animated state by dt seconds. Currently
// that is just the cube's rotation.
func (s *Scene) Step(dt float32) {
	s.Cube.Step(dt)
}

// NewScene builds the demo arrangement: a white-ish cube at the
// origin, the camera looking down at it from the front, and a warm
// light up to the right.
func NewScene() *Scene {
	return &Scene{
		Cube: Cube{
			Position: mgl32.Vec3{0, 0, 0},
			RateX:    1.0,
			RateY:    0.7,
			Color:    [3]float32{0.8, 0.7, 0.6},
		},
		Camera: Camera{
			Eye:    mgl32.Vec3{0, 1.5, 4},
			Target: mgl32.Vec3{0, 0, 0},
			Up:     mgl32.Vec3{0, 1, 0},
			FOV:    mgl32.DegToRad(45),
			Near:   0.1,
			Far:    100,
		},
		Light: PointLight{
			Position: mgl32.Vec3{3, 4, 5},
			Color:    mgl32.Vec3{1, 0.95, 0.9},
		},
	}
}
