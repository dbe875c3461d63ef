package scene_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/dockspace/scene"
)

func TestStepAdvancesAngles(t *testing.T) {
	s := scene.NewScene()

	x0, y0 := s.Cube.AngleX, s.Cube.AngleY
	s.Cube.Step(0.5)

	wantX := x0 + s.Cube.RateX*0.5
	wantY := y0 + s.Cube.RateY*0.5
	if s.Cube.AngleX != wantX {
		t.Errorf("AngleX = %v, want %v", s.Cube.AngleX, wantX)
	}
	if s.Cube.AngleY != wantY {
		t.Errorf("AngleY = %v, want %v", s.Cube.AngleY, wantY)
	}
}

func TestStepPartitionsEvenly(t *testing.T) {
	// Many small steps accumulate to the same rotation as one big step,
	// within float error.
	a := scene.NewScene().Cube
	b := scene.NewScene().Cube

	const total = 2.0
	const n = 100
	for i := 0; i < n; i++ {
		a.Step(total / n)
	}
	b.Step(total)

	if d := math32.Abs(a.AngleX - b.AngleX); d > 1e-4 {
		t.Errorf("AngleX differs by %v after partitioned stepping", d)
	}
	if d := math32.Abs(a.AngleY - b.AngleY); d > 1e-4 {
		t.Errorf("AngleY differs by %v after partitioned stepping", d)
	}
}

func TestSceneStepAdvancesCube(t *testing.T) {
	s := scene.NewScene()
	s.Step(0.25)

	if s.Cube.AngleX != s.Cube.RateX*0.25 {
		t.Errorf("AngleX = %v after Scene.Step, want %v", s.Cube.AngleX, s.Cube.RateX*0.25)
	}
	if s.Cube.AngleY != s.Cube.RateY*0.25 {
		t.Errorf("AngleY = %v after Scene.Step, want %v", s.Cube.AngleY, s.Cube.RateY*0.25)
	}
}

func TestZeroStepIsIdentity(t *testing.T) {
	s := scene.NewScene()
	before := s.Cube
	s.Cube.Step(0)
	if s.Cube != before {
		t.Error("Step(0) should not move the cube")
	}
}

func TestCubeModelAppliesTranslation(t *testing.T) {
	c := scene.Cube{Position: mgl32.Vec3{1, 2, 3}}

	// With zero rotation the model matrix is a pure translation.
	origin := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, c.Model())
	if !origin.ApproxEqualThreshold(mgl32.Vec3{1, 2, 3}, 1e-6) {
		t.Errorf("origin maps to %v, want the cube position", origin)
	}
}

func TestCubeModelRotationPreservesLength(t *testing.T) {
	c := scene.Cube{AngleX: 0.7, AngleY: 1.3}

	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, c.Model())
	if d := math32.Abs(p.Len() - 1); d > 1e-5 {
		t.Errorf("rotation changed vector length by %v", d)
	}
}

func TestCameraLooksAtTarget(t *testing.T) {
	s := scene.NewScene()

	// The target maps onto the view-space -Z axis.
	viewTarget := mgl32.TransformCoordinate(s.Camera.Target, s.Camera.View())
	if math32.Abs(viewTarget.X()) > 1e-5 || math32.Abs(viewTarget.Y()) > 1e-5 {
		t.Errorf("target not centered in view space: %v", viewTarget)
	}
	if viewTarget.Z() >= 0 {
		t.Errorf("target should be in front of the camera, z = %v", viewTarget.Z())
	}
}

func TestCameraProjectionUsesAspect(t *testing.T) {
	s := scene.NewScene()

	wide := s.Camera.Projection(2.0)
	square := s.Camera.Projection(1.0)

	// Horizontal scale halves when the viewport is twice as wide.
	if d := math32.Abs(wide.At(0, 0)*2 - square.At(0, 0)); d > 1e-5 {
		t.Errorf("projection X scale does not track aspect, diff %v", d)
	}
}

func TestCubeGeometry(t *testing.T) {
	// 24 vertices (4 per face), 6 floats each, 36 indices.
	if len(scene.CubeVertices) != 24*6 {
		t.Errorf("CubeVertices has %d floats, want %d", len(scene.CubeVertices), 24*6)
	}
	if len(scene.CubeIndices) != 36 {
		t.Errorf("CubeIndices has %d entries, want 36", len(scene.CubeIndices))
	}

	for i, idx := range scene.CubeIndices {
		if int(idx) >= 24 {
			t.Fatalf("index %d out of range: %d", i, idx)
		}
	}

	// Normals are unit length.
	for v := 0; v < 24; v++ {
		nx := scene.CubeVertices[v*6+3]
		ny := scene.CubeVertices[v*6+4]
		nz := scene.CubeVertices[v*6+5]
		if d := math32.Abs(nx*nx+ny*ny+nz*nz - 1); d > 1e-5 {
			t.Errorf("vertex %d normal is not unit length", v)
		}
	}
}
