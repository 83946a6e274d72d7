package model

import (
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/common"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/renderer/bind_group_provider"
	"github.com/go-gl/mathgl/mgl32"
)

// model is the implementation of the Model interface.
type model struct {
	name         string
	vertices     []GPUVertex
	indices      []uint32
	position     mgl32.Vec3
	scale        mgl32.Vec3
	meshProvider bind_group_provider.BindGroupProvider
}

// Model defines the interface for a static indexed mesh placed in the world.
// A Model holds CPU-side geometry ready for upload and a BindGroupProvider that
// receives the GPU vertex and index buffers once the Renderer initializes them.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Vertices returns the CPU-side vertex list.
	//
	// Returns:
	//   - []GPUVertex: the vertices
	Vertices() []GPUVertex

	// VertexData returns the raw vertex bytes for GPU upload.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the raw index bytes for GPU upload.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// IndexCount returns the number of indices in the model's mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// MeshProvider retrieves the BindGroupProvider holding GPU mesh resources.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider
	MeshProvider() bind_group_provider.BindGroupProvider

	// Position returns the world-space translation of the model.
	//
	// Returns:
	//   - mgl32.Vec3: the translation
	Position() mgl32.Vec3

	// Scale returns the per-axis scale of the model.
	//
	// Returns:
	//   - mgl32.Vec3: the scale
	Scale() mgl32.Vec3

	// ModelMatrix returns the model-to-world transform (translation * scale).
	//
	// Returns:
	//   - mgl32.Mat4: the column-major model matrix
	ModelMatrix() mgl32.Mat4
}

var _ Model = &model{}

// NewModel creates a new Model configured with the provided options.
// The model sits at the origin with unit scale unless overridden.
//
// Parameters:
//   - options: variadic list of ModelBuilderOption functions to configure the model
//
// Returns:
//   - Model: a new Model instance
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{
		scale: mgl32.Vec3{1, 1, 1},
	}
	for _, opt := range options {
		opt(m)
	}
	m.meshProvider = bind_group_provider.NewBindGroupProvider(m.name + "_mesh")
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Vertices() []GPUVertex {
	return m.vertices
}

func (m *model) VertexData() []byte {
	return common.SliceToBytes(m.vertices)
}

func (m *model) IndexData() []byte {
	return common.SliceToBytes(m.indices)
}

func (m *model) IndexCount() int {
	return len(m.indices)
}

func (m *model) MeshProvider() bind_group_provider.BindGroupProvider {
	return m.meshProvider
}

func (m *model) Position() mgl32.Vec3 {
	return m.position
}

func (m *model) Scale() mgl32.Vec3 {
	return m.scale
}

func (m *model) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(m.position.Elem()).
		Mul4(mgl32.Scale3D(m.scale.Elem()))
}
