package model

// cubeIndices lists two counter-clockwise triangles per face, wound outwards, over the
// corners produced by BuildCube.
var cubeIndices = []uint32{
	4, 5, 6, 4, 6, 7, // +Z
	1, 0, 3, 1, 3, 2, // -Z
	5, 1, 2, 5, 2, 6, // +X
	0, 4, 7, 0, 7, 3, // -X
	7, 6, 2, 7, 2, 3, // +Y
	0, 1, 5, 0, 5, 4, // -Y
}

// BuildCube returns the eight corners and 36 triangle indices of an axis-aligned cube
// centred on the model origin.
//
// Parameters:
//   - size: edge length
//
// Returns:
//   - []GPUVertex: the cube corners
//   - []uint32: triangle list indices
func BuildCube(size float32) ([]GPUVertex, []uint32) {
	h := size / 2
	vertices := []GPUVertex{
		{Position: [3]float32{-h, -h, -h}},
		{Position: [3]float32{h, -h, -h}},
		{Position: [3]float32{h, h, -h}},
		{Position: [3]float32{-h, h, -h}},
		{Position: [3]float32{-h, -h, h}},
		{Position: [3]float32{h, -h, h}},
		{Position: [3]float32{h, h, h}},
		{Position: [3]float32{-h, h, h}},
	}
	indices := make([]uint32, len(cubeIndices))
	copy(indices, cubeIndices)
	return vertices, indices
}
