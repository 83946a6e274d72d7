package scene

import (
	"errors"
	"testing"

	"github.com/HUDEVBR/JOGO-DO-SIMCITY/common"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/camera"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/renderer"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/renderer/bind_group_provider"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/renderer/material"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/renderer/pipeline"
	"github.com/chewxy/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	pipelines   map[string]pipeline.Pipeline
	bindGroups  []string
	meshIndices int
	clearColor  common.Color
	writes      []bind_group_provider.BufferWrite
	draws       int
	drawGroups  []string
	frames      []string
	beginErr    error
	initErr     error
	released    bool
}

var _ renderer.Renderer = &fakeRenderer{}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{pipelines: make(map[string]pipeline.Pipeline)}
}

func (f *fakeRenderer) Pipeline(key string) pipeline.Pipeline { return f.pipelines[key] }

func (f *fakeRenderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	for _, p := range pipelines {
		f.pipelines[p.PipelineKey()] = p
	}
	return nil
}

func (f *fakeRenderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, _, _ []byte, indexCount int) error {
	f.meshIndices = indexCount
	provider.SetIndexCount(indexCount)
	return nil
}

func (f *fakeRenderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, _ wgpu.BindGroupLayoutDescriptor) error {
	if f.initErr != nil {
		return f.initErr
	}
	f.bindGroups = append(f.bindGroups, provider.Label())
	return nil
}

func (f *fakeRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	f.writes = append(f.writes[:0], writes...)
}

func (f *fakeRenderer) BeginFrame() error {
	if f.beginErr != nil {
		return f.beginErr
	}
	f.frames = append(f.frames, "begin")
	return nil
}

func (f *fakeRenderer) DrawCall(key string, _ bind_group_provider.BindGroupProvider, _ uint32, groups []bind_group_provider.BindGroupProvider) error {
	if _, ok := f.pipelines[key]; !ok {
		return errors.New("missing pipeline")
	}
	f.draws++
	f.drawGroups = f.drawGroups[:0]
	for _, g := range groups {
		f.drawGroups = append(f.drawGroups, g.Label())
	}
	f.frames = append(f.frames, "draw")
	return nil
}

func (f *fakeRenderer) EndFrame() { f.frames = append(f.frames, "end") }

func (f *fakeRenderer) Present() { f.frames = append(f.frames, "present") }

func (f *fakeRenderer) SetClearColor(color common.Color) { f.clearColor = color }

func (f *fakeRenderer) Release() { f.released = true }

type fakeLoop struct {
	callback func(deltaTime float32)
	sets     int
}

func (l *fakeLoop) SetAnimationLoop(callback func(deltaTime float32)) {
	l.callback = callback
	l.sets++
}

// tick runs one host frame.
func (l *fakeLoop) tick() {
	if l.callback != nil {
		l.callback(1.0 / 60)
	}
}

type fakeInput struct {
	down func(common.MouseButton, float32, float32)
	up   func(common.MouseButton, float32, float32)
	move func(float32, float32)
}

func (i *fakeInput) SetMouseDownCallback(cb func(common.MouseButton, float32, float32)) { i.down = cb }
func (i *fakeInput) SetMouseUpCallback(cb func(common.MouseButton, float32, float32))   { i.up = cb }
func (i *fakeInput) SetMouseMoveCallback(cb func(float32, float32))                     { i.move = cb }

func newTestScene(t *testing.T, options ...SceneBuilderOption) (Scene, *fakeRenderer, *fakeLoop) {
	t.Helper()
	r := newFakeRenderer()
	loop := &fakeLoop{}
	cam := camera.NewCamera(camera.WithAspect(16.0 / 9.0))
	s, err := NewScene("demo", cam, r, loop, options...)
	require.NoError(t, err)
	return s, r, loop
}

func TestNewSceneDefaults(t *testing.T) {
	s, r, loop := newTestScene(t)

	assert.Equal(t, "demo", s.Name())
	assert.False(t, s.Running())
	assert.Nil(t, loop.callback)
	require.NotNil(t, s.Controller())
	assert.Equal(t, float32(4), s.Controller().Radius())

	assert.Equal(t, common.ColorFromHex(0x777777), s.Background())
	assert.Equal(t, common.ColorFromHex(0x777777), r.clearColor)
	assert.Equal(t, common.ColorFromHex(0xff0000), s.Material().Color())

	assert.NotNil(t, r.Pipeline(material.FlatPipelineKey))
	assert.Equal(t, 36, r.meshIndices)
	assert.Equal(t, []string{s.Camera().BindGroupProvider().Label(), "demo_cube_material"}, r.bindGroups)
	assert.Len(t, s.Cube().Vertices(), 8)
}

func TestNewSceneOptions(t *testing.T) {
	blue := common.ColorFromHex(0x0000ff)
	s, r, _ := newTestScene(t,
		WithBackground(common.ColorFromHex(0x000000)),
		WithCubeColor(blue),
		WithCubeSize(2),
	)

	assert.Equal(t, common.ColorFromHex(0x000000), r.clearColor)
	assert.Equal(t, blue, s.Material().Color())
	for _, v := range s.Cube().Vertices() {
		assert.Equal(t, float32(1), math32.Abs(v.Position[0]))
	}
}

func TestNewSceneKeepsExistingController(t *testing.T) {
	oc := camera.NewOrbitController(camera.WithRadius(7))
	cam := camera.NewCamera(camera.WithController(oc))
	s, err := NewScene("demo", cam, newFakeRenderer(), &fakeLoop{})
	require.NoError(t, err)
	assert.Same(t, oc, s.Controller())
}

func TestNewSceneDefaultName(t *testing.T) {
	r := newFakeRenderer()
	s, err := NewScene("", camera.NewCamera(), r, &fakeLoop{})
	require.NoError(t, err)

	assert.Equal(t, DefaultName, s.Name())
	assert.Equal(t, "scene_cube", s.Cube().Name())
	assert.Contains(t, r.bindGroups, "scene_cube_material")
}

func TestNewSceneErrors(t *testing.T) {
	cam := camera.NewCamera()

	_, err := NewScene("demo", nil, newFakeRenderer(), &fakeLoop{})
	assert.Error(t, err)
	_, err = NewScene("demo", cam, nil, &fakeLoop{})
	assert.Error(t, err)
	_, err = NewScene("demo", cam, newFakeRenderer(), nil)
	assert.Error(t, err)

	boom := errors.New("out of memory")
	r := newFakeRenderer()
	r.initErr = boom
	_, err = NewScene("demo", cam, r, &fakeLoop{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `scene "demo"`)
}

func TestStartInstallsDrawCallback(t *testing.T) {
	s, r, loop := newTestScene(t)

	s.Start()
	assert.True(t, s.Running())
	require.NotNil(t, loop.callback)

	loop.tick()
	assert.Equal(t, []string{"begin", "draw", "end", "present"}, r.frames)
	assert.Equal(t, uint64(1), s.FrameCount())
	assert.Equal(t, []string{s.Camera().BindGroupProvider().Label(), "demo_cube_material"}, r.drawGroups)

	require.Len(t, r.writes, 2)
	assert.Len(t, r.writes[0].Data, 80)
	assert.Len(t, r.writes[1].Data, 80)
}

func TestStartStopAreIdempotent(t *testing.T) {
	s, _, loop := newTestScene(t)

	s.Start()
	s.Start()
	assert.Equal(t, 1, loop.sets)

	s.Stop()
	s.Stop()
	assert.Equal(t, 2, loop.sets)
	assert.False(t, s.Running())
	assert.Nil(t, loop.callback)
}

func TestStopThenStartResumes(t *testing.T) {
	s, r, loop := newTestScene(t)
	ctrl := s.Controller()

	s.Start()
	loop.tick()
	s.Stop()
	loop.tick()
	assert.Equal(t, 1, r.draws)

	s.Start()
	loop.tick()
	loop.tick()
	assert.Equal(t, 3, r.draws)
	assert.Same(t, ctrl, s.Controller())
	assert.Equal(t, uint64(3), s.FrameCount())
}

func TestDrawSkipsFrameOnError(t *testing.T) {
	s, r, loop := newTestScene(t)
	r.beginErr = errors.New("surface lost")

	s.Start()
	assert.NotPanics(t, loop.tick)
	assert.Equal(t, 0, r.draws)
	assert.Equal(t, uint64(0), s.FrameCount())

	r.beginErr = nil
	loop.tick()
	assert.Equal(t, uint64(1), s.FrameCount())
}

func TestDrawDoesNotMoveTheCube(t *testing.T) {
	s, _, loop := newTestScene(t)
	before := s.Cube().ModelMatrix()
	pose := s.Controller().Pose()

	s.Start()
	for range 5 {
		loop.tick()
	}

	assert.Equal(t, before, s.Cube().ModelMatrix())
	assert.Equal(t, pose, s.Controller().Pose())
}

func TestDrawUsesCurrentPose(t *testing.T) {
	s, r, loop := newTestScene(t)
	s.Start()

	s.PointerMove(0, 0)
	s.PointerDown(common.MouseButtonSecondary)
	s.PointerMove(0, 50)
	loop.tick()

	assert.InDelta(t, 5, s.Controller().Radius(), 1e-5)
	u := s.Camera().Uniform()
	assert.Equal(t, u.Marshal(), r.writes[0].Data)
}

func TestPointerRouting(t *testing.T) {
	s, _, _ := newTestScene(t)
	ctrl := s.Controller()

	s.PointerDown(common.MouseButtonPrimary)
	assert.True(t, ctrl.ButtonHeld(common.MouseButtonPrimary))

	s.PointerMove(10, 20)
	x, y := ctrl.LastPointer()
	assert.Equal(t, float32(10), x)
	assert.Equal(t, float32(20), y)
	assert.InDelta(t, -5, ctrl.Azimuth(), 1e-5)

	s.PointerUp(common.MouseButtonPrimary)
	assert.False(t, ctrl.ButtonHeld(common.MouseButtonPrimary))
}

func TestBindInput(t *testing.T) {
	s, _, _ := newTestScene(t)
	ctrl := s.Controller()
	in := &fakeInput{}
	s.BindInput(in)

	in.move(100, 100)
	in.down(common.MouseButtonMiddle, 100, 100)
	assert.True(t, ctrl.ButtonHeld(common.MouseButtonMiddle))

	in.move(110, 120)
	assert.InDelta(t, -0.1, ctrl.Origin().X(), 1e-5)
	assert.InDelta(t, -0.2, ctrl.Origin().Z(), 1e-5)

	in.up(common.MouseButtonMiddle, 110, 120)
	assert.False(t, ctrl.ButtonHeld(common.MouseButtonMiddle))
}

func TestRelease(t *testing.T) {
	s, _, loop := newTestScene(t)
	s.Start()
	s.Release()

	assert.False(t, s.Running())
	assert.Nil(t, loop.callback)
	assert.Equal(t, 0, s.Cube().MeshProvider().IndexCount())
}
