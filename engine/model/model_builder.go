package model

import "github.com/go-gl/mathgl/mgl32"

// ModelBuilderOption is a function that configures a model instance during construction.
type ModelBuilderOption func(*model)

// WithName sets the model identifier, also used to label its GPU resources.
//
// Parameters:
//   - name: the identifier for the model
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithMesh sets the model geometry.
//
// Parameters:
//   - vertices: the vertex list
//   - indices: triangle list indices into vertices
//
// Returns:
//   - ModelBuilderOption: a function that applies the mesh option to a model
func WithMesh(vertices []GPUVertex, indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.vertices = vertices
		m.indices = indices
	}
}

// WithPosition sets the world-space translation of the model.
//
// Parameters:
//   - x, y, z: translation components
//
// Returns:
//   - ModelBuilderOption: a function that applies the position option to a model
func WithPosition(x, y, z float32) ModelBuilderOption {
	return func(m *model) {
		m.position = mgl32.Vec3{x, y, z}
	}
}

// WithScale sets the per-axis scale of the model.
//
// Parameters:
//   - x, y, z: scale components
//
// Returns:
//   - ModelBuilderOption: a function that applies the scale option to a model
func WithScale(x, y, z float32) ModelBuilderOption {
	return func(m *model) {
		m.scale = mgl32.Vec3{x, y, z}
	}
}
