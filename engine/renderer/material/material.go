package material

import (
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/common"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/renderer/bind_group_provider"
	"github.com/go-gl/mathgl/mgl32"
)

// material is the implementation of the Material interface.
type material struct {
	name              string
	color             common.Color
	pipelineKey       string
	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Material defines the interface for an unlit, single-color surface. Lighting never
// affects it: every fragment of a mesh drawn with it takes exactly Color.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Color retrieves the RGBA surface color.
	//
	// Returns:
	//   - common.Color: the surface color
	Color() common.Color

	// PipelineKey retrieves the key identifying the render pipeline this material uses.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// BindGroupProvider retrieves the provider holding the mesh uniform bind group.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// Uniform packs the model matrix and the material color into the per-draw uniform.
	//
	// Parameters:
	//   - modelMatrix: the model-to-world transform of the mesh being drawn
	//
	// Returns:
	//   - GPUMeshUniform: the uniform ready for Marshal
	Uniform(modelMatrix mgl32.Mat4) GPUMeshUniform

	// SetColor replaces the surface color. Takes effect on the next uniform upload.
	//
	// Parameters:
	//   - color: the new surface color
	SetColor(color common.Color)
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
// Without options the material is opaque white and draws with FlatPipelineKey.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		color:       common.Color{R: 1, G: 1, B: 1, A: 1},
		pipelineKey: FlatPipelineKey,
	}
	for _, opt := range options {
		opt(m)
	}
	m.bindGroupProvider = bind_group_provider.NewBindGroupProvider(m.name + "_material")
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Color() common.Color {
	return m.color
}

func (m *material) PipelineKey() string {
	return m.pipelineKey
}

func (m *material) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return m.bindGroupProvider
}

func (m *material) Uniform(modelMatrix mgl32.Mat4) GPUMeshUniform {
	return GPUMeshUniform{
		Model: modelMatrix,
		Color: m.color.Vec4(),
	}
}

func (m *material) SetColor(color common.Color) {
	m.color = color
}
