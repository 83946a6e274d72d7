package material

import (
	_ "embed"
	"fmt"

	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/camera"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/model"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/renderer/pipeline"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// FlatPipelineKey is the cache key of the unlit single-color pipeline.
const FlatPipelineKey = "flat"

// Bind group indices used by the flat pipeline.
const (
	CameraGroup = 0
	MeshGroup   = 1
)

//go:embed assets/flat_vertex.wgsl
var flatVertexSource string

//go:embed assets/flat_fragment.wgsl
var flatFragmentSource string

// NewFlatPipeline builds the unlit pipeline: the camera uniform at group 0, the mesh uniform at
// group 1 and vertex positions at location 0. The pipeline still has to be registered with the
// Renderer before it can draw.
//
// Returns:
//   - pipeline.Pipeline: the unregistered pipeline
//   - error: an error if a shader source fails to pre-process
func NewFlatPipeline() (pipeline.Pipeline, error) {
	includes := []shader.ShaderBuilderOption{
		shader.WithInclude("camera", camera.GPUCameraUniformSource),
		shader.WithInclude("mesh", GPUMeshUniformSource),
		shader.WithInclude("vertex", model.GPUVertexSource),
	}

	vs, err := shader.NewShader(FlatPipelineKey+"_vertex", shader.ShaderTypeVertex, flatVertexSource,
		append(includes,
			shader.WithBindGroupLayout(CameraGroup, camera.UniformLayout()),
			shader.WithBindGroupLayout(MeshGroup, MeshUniformLayout()),
			shader.WithVertexLayouts(model.VertexLayout()),
		)...,
	)
	if err != nil {
		return nil, fmt.Errorf("flat pipeline: %w", err)
	}

	fs, err := shader.NewShader(FlatPipelineKey+"_fragment", shader.ShaderTypeFragment, flatFragmentSource,
		append(includes,
			shader.WithBindGroupLayout(MeshGroup, MeshUniformLayout()),
		)...,
	)
	if err != nil {
		return nil, fmt.Errorf("flat pipeline: %w", err)
	}

	return pipeline.NewPipeline(FlatPipelineKey,
		pipeline.WithVertexShader(vs),
		pipeline.WithFragmentShader(fs),
		pipeline.WithTopology(wgpu.PrimitiveTopologyTriangleList),
		pipeline.WithFrontFace(wgpu.FrontFaceCCW),
		// Both windings render so the cube stays solid from any orbit angle.
		pipeline.WithCullMode(wgpu.CullModeNone),
		pipeline.WithDepthTestEnabled(true),
		pipeline.WithDepthWriteEnabled(true),
		pipeline.WithBlendEnabled(false),
	), nil
}
