package renderer

import (
	"errors"
	"testing"

	"github.com/HUDEVBR/JOGO-DO-SIMCITY/common"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/renderer/bind_group_provider"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	configured  [][2]int
	presentMode *PresentMode
	clearColor  *common.Color
	registered  []string
	registerErr error
	draws       []string
	writes      int
	calls       []string
	released    bool
}

var _ RendererBackend = &fakeBackend{}

func (f *fakeBackend) ConfigureSurface(width, height int) {
	f.configured = append(f.configured, [2]int{width, height})
}

func (f *fakeBackend) SetPresentMode(mode PresentMode) { f.presentMode = &mode }

func (f *fakeBackend) SetClearColor(color common.Color) { f.clearColor = &color }

func (f *fakeBackend) RegisterRenderPipeline(p pipeline.Pipeline) error {
	if f.registerErr != nil {
		return f.registerErr
	}
	f.registered = append(f.registered, p.PipelineKey())
	return nil
}

func (f *fakeBackend) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	provider.SetIndexCount(indexCount)
	return nil
}

func (f *fakeBackend) InitBindGroup(bind_group_provider.BindGroupProvider, wgpu.BindGroupLayoutDescriptor) error {
	return nil
}

func (f *fakeBackend) WriteBuffers(writes []bind_group_provider.BufferWrite) { f.writes += len(writes) }

func (f *fakeBackend) BeginFrame() error {
	f.calls = append(f.calls, "begin")
	return nil
}

func (f *fakeBackend) DrawCall(p pipeline.Pipeline, _ bind_group_provider.BindGroupProvider, _ uint32, _ []bind_group_provider.BindGroupProvider) {
	f.draws = append(f.draws, p.PipelineKey())
	f.calls = append(f.calls, "draw")
}

func (f *fakeBackend) EndFrame() { f.calls = append(f.calls, "end") }

func (f *fakeBackend) Present() { f.calls = append(f.calls, "present") }

func (f *fakeBackend) Release() { f.released = true }

func newTestRenderer(options ...RendererBuilderOption) (*renderer, *fakeBackend) {
	r := newRenderer(BackendTypeWGPU, options...)
	fb := &fakeBackend{}
	r.backend = fb
	return r, fb
}

func TestConfigureAppliesPendingOptions(t *testing.T) {
	r, fb := newTestRenderer(
		WithPresentMode(PresentModeVSync),
		WithClearColor(common.ColorFromHex(0x777777)),
		WithMSAA(MSAAOff),
		WithForceSoftwareRenderer(true),
	)
	r.configure(800, 600)

	require.NotNil(t, fb.presentMode)
	assert.Equal(t, PresentModeVSync, *fb.presentMode)
	require.NotNil(t, fb.clearColor)
	assert.Equal(t, common.ColorFromHex(0x777777), *fb.clearColor)
	assert.Equal(t, [][2]int{{800, 600}}, fb.configured)
	assert.Equal(t, MSAAOff, r.sampleCount())
	assert.True(t, r.forceFallbackAdapter)
}

func TestConfigureDefaults(t *testing.T) {
	r, fb := newTestRenderer()
	r.configure(640, 480)

	assert.Nil(t, fb.presentMode)
	assert.Nil(t, fb.clearColor)
	assert.Equal(t, MSAA4x, r.sampleCount())
	assert.Equal(t, [][2]int{{640, 480}}, fb.configured)
}

func TestRegisterPipelinesSkipsDuplicates(t *testing.T) {
	r, fb := newTestRenderer()

	p := pipeline.NewPipeline("flat")
	require.NoError(t, r.RegisterPipelines(p, pipeline.NewPipeline("flat")))
	require.NoError(t, r.RegisterPipelines(p))

	assert.Equal(t, []string{"flat"}, fb.registered)
	assert.Same(t, p, r.Pipeline("flat"))
	assert.Nil(t, r.Pipeline("missing"))
}

func TestRegisterPipelinesWrapsError(t *testing.T) {
	r, fb := newTestRenderer()
	boom := errors.New("boom")
	fb.registerErr = boom

	err := r.RegisterPipelines(pipeline.NewPipeline("flat"))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `"flat"`)
	assert.Nil(t, r.Pipeline("flat"))
}

func TestDrawCallRequiresRegisteredPipeline(t *testing.T) {
	r, fb := newTestRenderer()
	mesh := bind_group_provider.NewBindGroupProvider("mesh")

	err := r.DrawCall("flat", mesh, 1, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Empty(t, fb.draws)

	require.NoError(t, r.RegisterPipelines(pipeline.NewPipeline("flat")))
	require.NoError(t, r.BeginFrame())
	require.NoError(t, r.DrawCall("flat", mesh, 1, nil))
	r.EndFrame()
	r.Present()

	assert.Equal(t, []string{"begin", "draw", "end", "present"}, fb.calls)
}

func TestPassThroughCalls(t *testing.T) {
	r, fb := newTestRenderer()
	mesh := bind_group_provider.NewBindGroupProvider("mesh")

	require.NoError(t, r.InitMeshBuffers(mesh, []byte{1}, []byte{2}, 36))
	assert.Equal(t, 36, mesh.IndexCount())

	r.WriteBuffers([]bind_group_provider.BufferWrite{{Provider: mesh}, {Provider: mesh}})
	assert.Equal(t, 2, fb.writes)

	red := common.ColorFromHex(0xff0000)
	r.SetClearColor(red)
	assert.Equal(t, red, *fb.clearColor)

	require.NoError(t, r.RegisterPipelines(pipeline.NewPipeline("flat")))
	r.Release()
	assert.True(t, fb.released)
	assert.Nil(t, r.Pipeline("flat"))
}

func TestPickSurfaceFormat(t *testing.T) {
	assert.Equal(t, wgpu.TextureFormatBGRA8Unorm, pickSurfaceFormat([]wgpu.TextureFormat{
		wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatBGRA8Unorm,
	}))
	assert.Equal(t, wgpu.TextureFormatRGBA8Unorm, pickSurfaceFormat([]wgpu.TextureFormat{
		wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatRGBA8Unorm,
	}))
	assert.Equal(t, wgpu.TextureFormatRGBA16Float, pickSurfaceFormat([]wgpu.TextureFormat{
		wgpu.TextureFormatRGBA16Float,
	}))
	assert.Equal(t, wgpu.TextureFormatBGRA8Unorm, pickSurfaceFormat(nil))
}

func TestToWGPUColor(t *testing.T) {
	c := toWGPUColor(common.Color{R: 1, G: 0.5, B: 0, A: 1})
	assert.Equal(t, wgpu.Color{R: 1, G: 0.5, B: 0, A: 1}, c)
}

func TestMergeBindGroupLayouts(t *testing.T) {
	uniform := func(binding uint32, vis wgpu.ShaderStage) wgpu.BindGroupLayoutEntry {
		return wgpu.BindGroupLayoutEntry{
			Binding:    binding,
			Visibility: vis,
			Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform},
		}
	}
	vertex := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {Label: "camera", Entries: []wgpu.BindGroupLayoutEntry{uniform(0, wgpu.ShaderStageVertex)}},
		1: {Label: "mesh", Entries: []wgpu.BindGroupLayoutEntry{uniform(0, wgpu.ShaderStageVertex)}},
	}
	fragment := map[int]wgpu.BindGroupLayoutDescriptor{
		1: {Label: "mesh", Entries: []wgpu.BindGroupLayoutEntry{
			uniform(1, wgpu.ShaderStageFragment),
			uniform(0, wgpu.ShaderStageFragment),
		}},
	}

	merged := mergeBindGroupLayouts(vertex, fragment)
	require.Len(t, merged, 2)

	assert.Equal(t, vertex[0], merged[0])

	mesh := merged[1]
	assert.Equal(t, "mesh", mesh.Label)
	require.Len(t, mesh.Entries, 2)
	assert.Equal(t, uint32(0), mesh.Entries[0].Binding)
	assert.Equal(t, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, mesh.Entries[0].Visibility)
	assert.Equal(t, uint32(1), mesh.Entries[1].Binding)
	assert.Equal(t, wgpu.ShaderStageFragment, mesh.Entries[1].Visibility)
}
