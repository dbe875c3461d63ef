package scene

// CubeVertices is the unit cube mesh, interleaved as position (xyz)
// followed by normal (xyz), four vertices per face.
var CubeVertices = []float32{
	// front (+z)
	-0.5, -0.5, 0.5, 0, 0, 1,
	0.5, -0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, 0.5, 0.5, 0, 0, 1,
	// back (-z)
	0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, 0.5, -0.5, 0, 0, -1,
	0.5, 0.5, -0.5, 0, 0, -1,
	// right (+x)
	0.5, -0.5, 0.5, 1, 0, 0,
	0.5, -0.5, -0.5, 1, 0, 0,
	0.5, 0.5, -0.5, 1, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0,
	// left (-x)
	-0.5, -0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, -0.5, -1, 0, 0,
	// top (+y)
	-0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, -0.5, 0, 1, 0,
	// bottom (-y)
	-0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, 0.5, 0, -1, 0,
}

// CubeIndices indexes CubeVertices as 12 triangles.
var CubeIndices = []uint16{
	0, 1, 2, 0, 2, 3, // front
	4, 5, 6, 4, 6, 7, // back
	8, 9, 10, 8, 10, 11, // right
	12, 13, 14, 12, 14, 15, // left
	16, 17, 18, 16, 18, 19, // top
	20, 21, 22, 20, 22, 23, // bottom
}
