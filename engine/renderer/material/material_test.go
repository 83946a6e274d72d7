package material

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/HUDEVBR/JOGO-DO-SIMCITY/common"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial(WithName("cube"))

	assert.Equal(t, "cube", m.Name())
	assert.Equal(t, common.Color{R: 1, G: 1, B: 1, A: 1}, m.Color())
	assert.Equal(t, FlatPipelineKey, m.PipelineKey())
	assert.Equal(t, "cube_material", m.BindGroupProvider().Label())
}

func TestMaterialUniform(t *testing.T) {
	red := common.ColorFromHex(0xff0000)
	m := NewMaterial(WithColor(red))
	model := mgl32.Translate3D(1, 2, 3)

	u := m.Uniform(model)
	assert.Equal(t, [16]float32(model), u.Model)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, u.Color)

	buf := u.Marshal()
	require.Len(t, buf, 80)
	assert.Equal(t, float32(3), math.Float32frombits(binary.LittleEndian.Uint32(buf[56:])))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[64:])))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[76:])))

	m.SetColor(common.ColorFromHex(0x00ff00))
	assert.Equal(t, [4]float32{0, 1, 0, 1}, m.Uniform(model).Color)
}

func TestMeshUniformLayout(t *testing.T) {
	layout := MeshUniformLayout()
	require.Len(t, layout.Entries, 1)
	assert.Equal(t, uint64(80), layout.Entries[0].Buffer.MinBindingSize)
	assert.Equal(t, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, layout.Entries[0].Visibility)
}

func TestNewFlatPipeline(t *testing.T) {
	p, err := NewFlatPipeline()
	require.NoError(t, err)
	assert.Equal(t, FlatPipelineKey, p.PipelineKey())

	vs := p.Shader(shader.ShaderTypeVertex)
	require.NotNil(t, vs)
	assert.Contains(t, vs.Source(), "struct CameraUniform")
	assert.Contains(t, vs.Source(), "struct MeshUniform")
	assert.Contains(t, vs.Source(), "struct VertexInput")
	assert.NotContains(t, vs.Source(), "//@include")
	assert.Len(t, vs.VertexLayouts(), 1)
	assert.Len(t, vs.BindGroupLayoutDescriptors(), 2)

	fs := p.Shader(shader.ShaderTypeFragment)
	require.NotNil(t, fs)
	assert.Contains(t, fs.Source(), "struct MeshUniform")
	assert.Equal(t, wgpu.ShaderStageFragment, fs.BindGroupLayoutDescriptor(MeshGroup).Entries[0].Visibility)
}

func TestFlatPipelineRasterState(t *testing.T) {
	p, err := NewFlatPipeline()
	require.NoError(t, err)

	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.True(t, p.DepthTestEnabled())
	assert.True(t, p.DepthWriteEnabled())
	assert.False(t, p.BlendEnabled())
}
