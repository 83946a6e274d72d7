package scene

import (
	"errors"
	"fmt"

	"github.com/HUDEVBR/JOGO-DO-SIMCITY/common"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/camera"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/model"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/renderer"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/renderer/bind_group_provider"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/renderer/material"
)

// Defaults for the demonstration scene.
const (
	DefaultName       = "scene"
	DefaultBackground = 0x777777
	DefaultCubeColor  = 0xff0000
	DefaultCubeSize   = 1
)

// FrameLoop is the host's per-frame callback facility. The callback runs once per
// frame at the host's native cadence; a nil callback stops the invocations.
type FrameLoop interface {
	SetAnimationLoop(callback func(deltaTime float32))
}

// InputSource delivers raw pointer events, typically a window.Window.
type InputSource interface {
	SetMouseDownCallback(callback func(button common.MouseButton, x, y float32))
	SetMouseUpCallback(callback func(button common.MouseButton, x, y float32))
	SetMouseMoveCallback(callback func(x, y float32))
}

// Scene owns the demonstration cube, the camera that looks at it and the render
// loop that draws it. Pointer events are forwarded verbatim to the camera's
// OrbitController. Not safe for concurrent use; the host serializes input and frames.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Controller returns the orbit controller driving the camera.
	Controller() camera.OrbitController

	// Cube returns the static demonstration mesh.
	Cube() model.Model

	// Material returns the flat color material the cube is drawn with.
	Material() material.Material

	// Background returns the clear color.
	Background() common.Color

	// Start begins invoking the draw callback on every host frame. Calling Start
	// while running has no effect.
	Start()

	// Stop removes the draw callback. Calling Stop while stopped has no effect.
	// A later Start resumes drawing with the same controller and GPU resources.
	Stop()

	// Running reports whether the draw callback is installed.
	Running() bool

	// FrameCount returns the number of frames drawn since construction.
	FrameCount() uint64

	// PointerDown forwards a button press to the controller.
	//
	// Parameters:
	//   - button: the pressed button
	PointerDown(button common.MouseButton)

	// PointerUp forwards a button release to the controller.
	//
	// Parameters:
	//   - button: the released button
	PointerUp(button common.MouseButton)

	// PointerMove forwards a pointer position to the controller.
	//
	// Parameters:
	//   - x, y: pointer position in screen coordinates
	PointerMove(x, y float32)

	// BindInput subscribes the pointer handlers to an input source. Events are forwarded
	// unfiltered; the press position is not used because the cursor callback already reported it.
	//
	// Parameters:
	//   - src: the input source to listen to
	BindInput(src InputSource)

	// Release stops the scene and frees the GPU resources it created.
	Release()
}

type scene struct {
	name string

	cam  camera.Camera
	r    renderer.Renderer
	loop FrameLoop

	cube model.Model
	mat  material.Material

	background common.Color
	cubeColor  common.Color
	cubeSize   float32

	running bool
	frames  uint64

	// Reused every frame to avoid per-frame allocations.
	writePool      []bind_group_provider.BufferWrite
	bindGroupsPool []bind_group_provider.BindGroupProvider
}

var _ Scene = &scene{}

// NewScene creates the demonstration scene: one cube at the origin drawn with the flat
// pipeline, viewed by cam. The camera gets a default OrbitController when it has none.
// GPU resources are created immediately; the scene does not draw until Start.
//
// Parameters:
//   - name: the name of the scene, used to label GPU resources; empty selects DefaultName
//   - cam: the camera to render through (must not be nil)
//   - r: the renderer to draw with (must not be nil)
//   - loop: the host frame loop that drives drawing (must not be nil)
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
//   - error: an error if a dependency is missing or GPU resource creation fails
func NewScene(name string, cam camera.Camera, r renderer.Renderer, loop FrameLoop, options ...SceneBuilderOption) (Scene, error) {
	if cam == nil {
		return nil, errors.New("scene: camera is required")
	}
	if r == nil {
		return nil, errors.New("scene: renderer is required")
	}
	if loop == nil {
		return nil, errors.New("scene: frame loop is required")
	}

	name = common.Coalesce(name, DefaultName)
	s := &scene{
		name:           name,
		cam:            cam,
		r:              r,
		loop:           loop,
		background:     common.ColorFromHex(DefaultBackground),
		cubeColor:      common.ColorFromHex(DefaultCubeColor),
		cubeSize:       DefaultCubeSize,
		writePool:      make([]bind_group_provider.BufferWrite, 0, 2),
		bindGroupsPool: make([]bind_group_provider.BindGroupProvider, 0, 2),
	}
	for _, option := range options {
		option(s)
	}

	if cam.Controller() == nil {
		cam.SetController(camera.NewOrbitController())
		cam.Update()
	}

	vertices, indices := model.BuildCube(s.cubeSize)
	s.cube = model.NewModel(
		model.WithName(name+"_cube"),
		model.WithMesh(vertices, indices),
	)
	s.mat = material.NewMaterial(
		material.WithName(name+"_cube"),
		material.WithColor(s.cubeColor),
	)

	if err := s.initGPU(); err != nil {
		return nil, fmt.Errorf("scene %q: %w", name, err)
	}

	common.Logger().Info("scene created", "name", name, "cube_size", s.cubeSize)
	return s, nil
}

// initGPU registers the flat pipeline and creates the mesh, camera and material resources.
func (s *scene) initGPU() error {
	p, err := material.NewFlatPipeline()
	if err != nil {
		return fmt.Errorf("failed to build flat pipeline: %w", err)
	}
	if err := s.r.RegisterPipelines(p); err != nil {
		return err
	}

	if err := s.r.InitMeshBuffers(s.cube.MeshProvider(), s.cube.VertexData(), s.cube.IndexData(), s.cube.IndexCount()); err != nil {
		return fmt.Errorf("failed to init cube mesh buffers: %w", err)
	}
	if err := s.r.InitBindGroup(s.cam.BindGroupProvider(), camera.UniformLayout()); err != nil {
		return fmt.Errorf("failed to init camera bind group: %w", err)
	}
	if err := s.r.InitBindGroup(s.mat.BindGroupProvider(), material.MeshUniformLayout()); err != nil {
		return fmt.Errorf("failed to init material bind group: %w", err)
	}

	s.r.SetClearColor(s.background)
	return nil
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) Controller() camera.OrbitController {
	return s.cam.Controller()
}

func (s *scene) Cube() model.Model {
	return s.cube
}

func (s *scene) Material() material.Material {
	return s.mat
}

func (s *scene) Background() common.Color {
	return s.background
}

func (s *scene) Start() {
	if s.running {
		return
	}
	s.running = true
	s.loop.SetAnimationLoop(s.frame)
	common.Logger().Info("scene started", "name", s.name)
}

func (s *scene) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.loop.SetAnimationLoop(nil)
	common.Logger().Info("scene stopped", "name", s.name, "frames", s.frames)
}

func (s *scene) Running() bool {
	return s.running
}

func (s *scene) FrameCount() uint64 {
	return s.frames
}

func (s *scene) frame(float32) {
	if err := s.draw(); err != nil {
		common.Logger().Warn("frame skipped", "scene", s.name, "error", err)
	}
}

// draw renders the cube from the controller's current pose. It mutates nothing but GPU buffers.
func (s *scene) draw() error {
	s.cam.Update()

	camUniform := s.cam.Uniform()
	meshUniform := s.mat.Uniform(s.cube.ModelMatrix())

	s.writePool = append(s.writePool[:0],
		bind_group_provider.BufferWrite{
			Provider: s.cam.BindGroupProvider(),
			Binding:  0,
			Data:     camUniform.Marshal(),
		},
		bind_group_provider.BufferWrite{
			Provider: s.mat.BindGroupProvider(),
			Binding:  0,
			Data:     meshUniform.Marshal(),
		},
	)
	s.r.WriteBuffers(s.writePool)

	if err := s.r.BeginFrame(); err != nil {
		return fmt.Errorf("failed to begin frame: %w", err)
	}

	// Slice index is the bind group index.
	s.bindGroupsPool = s.bindGroupsPool[:0]
	s.bindGroupsPool = append(s.bindGroupsPool, s.cam.BindGroupProvider(), s.mat.BindGroupProvider())
	drawErr := s.r.DrawCall(s.mat.PipelineKey(), s.cube.MeshProvider(), 1, s.bindGroupsPool)

	// The pass is always closed and presented so the surface image is released.
	s.r.EndFrame()
	s.r.Present()
	if drawErr != nil {
		return drawErr
	}

	s.frames++
	return nil
}

func (s *scene) PointerDown(button common.MouseButton) {
	s.cam.Controller().PointerDown(button)
}

func (s *scene) PointerUp(button common.MouseButton) {
	s.cam.Controller().PointerUp(button)
}

func (s *scene) PointerMove(x, y float32) {
	s.cam.Controller().PointerMove(x, y)
}

func (s *scene) BindInput(src InputSource) {
	src.SetMouseDownCallback(func(button common.MouseButton, _, _ float32) {
		s.PointerDown(button)
	})
	src.SetMouseUpCallback(func(button common.MouseButton, _, _ float32) {
		s.PointerUp(button)
	})
	src.SetMouseMoveCallback(s.PointerMove)
}

func (s *scene) Release() {
	s.Stop()
	s.cube.MeshProvider().Release()
	s.cam.BindGroupProvider().Release()
	s.mat.BindGroupProvider().Release()
}
