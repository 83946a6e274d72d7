package model

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCube(t *testing.T) {
	vertices, indices := BuildCube(1)

	require.Len(t, vertices, 8)
	require.Len(t, indices, 36)
	for _, v := range vertices {
		for _, c := range v.Position {
			assert.InDelta(t, 0.5, math32.Abs(c), 1e-6)
		}
	}
	for _, i := range indices {
		assert.Less(t, i, uint32(len(vertices)))
	}
}

func TestBuildCubeWindsOutwards(t *testing.T) {
	vertices, indices := BuildCube(2)

	for tri := 0; tri < len(indices); tri += 3 {
		a := mgl32.Vec3(vertices[indices[tri]].Position)
		b := mgl32.Vec3(vertices[indices[tri+1]].Position)
		c := mgl32.Vec3(vertices[indices[tri+2]].Position)

		normal := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3.0)
		assert.Greater(t, normal.Dot(centroid), float32(0), "triangle %d", tri/3)
	}
}

func TestBuildCubeReturnsFreshIndices(t *testing.T) {
	_, a := BuildCube(1)
	a[0] = 99
	_, b := BuildCube(1)
	assert.Equal(t, uint32(4), b[0])
}

func TestNewModel(t *testing.T) {
	vertices, indices := BuildCube(1)
	m := NewModel(WithName("cube"), WithMesh(vertices, indices))

	assert.Equal(t, "cube", m.Name())
	assert.Equal(t, 36, m.IndexCount())
	assert.Len(t, m.VertexData(), 8*12)
	assert.Len(t, m.IndexData(), 36*4)
	assert.Equal(t, "cube_mesh", m.MeshProvider().Label())
	assert.Equal(t, mgl32.Ident4(), m.ModelMatrix())
}

func TestModelMatrix(t *testing.T) {
	m := NewModel(WithPosition(1, 2, 3), WithScale(2, 2, 2))

	got := m.ModelMatrix().Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	assert.Equal(t, mgl32.Vec4{3, 4, 5, 1}, got)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, m.Position())
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, m.Scale())
}

func TestGPUVertex(t *testing.T) {
	v := GPUVertex{Position: [3]float32{1, 2, 3}}
	assert.Equal(t, 12, v.Size())

	layout := VertexLayout()
	assert.Equal(t, uint64(12), layout.ArrayStride)
	require.Len(t, layout.Attributes, 1)
	assert.Equal(t, uint32(0), layout.Attributes[0].ShaderLocation)
}
