package engine

import (
	"sync"
	"time"

	"github.com/HUDEVBR/JOGO-DO-SIMCITY/common"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/profiler"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/scene"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/window"
)

// engine implements the Engine interface.
// Everything runs on the window thread: the window's message loop polls input
// and then calls frame, so pointer events and drawing never overlap.
type engine struct {
	window window.Window
	scene  scene.Scene

	running  bool
	quitOnce sync.Once

	profiler         *profiler.Profiler
	profilingEnabled bool

	animationLoop    func(deltaTime float32)
	lastFrame        time.Time
	renderFrameLimit time.Duration // minimum frame duration; 0 = native cadence

	now   func() time.Time
	sleep func(time.Duration)
}

// Engine is the main entry point for the engine.
// It owns the window and turns its message loop into a per-frame animation loop.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// SetAnimationLoop registers the function called once per frame, after input has been
	// processed. Passing nil stops the calls.
	//
	// Parameters:
	//   - callback: function receiving the time since the previous frame in seconds
	SetAnimationLoop(callback func(deltaTime float32))

	// SetScene attaches the scene the engine controls. The scene's pointer handlers are
	// bound to the window and the Space key toggles it between started and stopped.
	//
	// Parameters:
	//   - s: the scene to attach
	SetScene(s scene.Scene)

	// Scene returns the attached scene, or nil.
	Scene() scene.Scene

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// ProfilingEnabled reports whether profiling output is enabled.
	ProfilingEnabled() bool

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to run at the window's native cadence (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Running reports whether Run is processing window messages.
	Running() bool

	// Run processes window messages and frames until the window closes. It leaves the
	// native window alive so GPU resources bound to its surface can be released before Quit.
	Run()

	// Quit destroys the window. Called during Run it ends the message loop; called after
	// Run it completes teardown.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}
var _ scene.FrameLoop = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// When no window is supplied via WithWindow a default one is created.
//
// Parameters:
//   - options: functional options for engine configuration (window, profiling, frame limit)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		profiler: profiler.NewProfiler(time.Second),
		now:      time.Now,
		sleep:    time.Sleep,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		e.window = window.NewWindow()
	}
	e.window.SetUpdateCallback(e.frame)
	e.window.SetKeyDownCallback(e.keyDown)

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) SetAnimationLoop(callback func(deltaTime float32)) {
	e.animationLoop = callback
}

func (e *engine) SetScene(s scene.Scene) {
	e.scene = s
	if s != nil {
		s.BindInput(e.window)
	}
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Running() bool {
	return e.running
}

func (e *engine) Run() {
	e.running = true
	e.lastFrame = e.now()
	e.profiler.Reset()
	common.Logger().Info("engine running", "title", e.window.Title())

	e.window.ProcessMessages()

	e.running = false
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		if err := e.window.Close(); err != nil {
			common.Logger().Warn("failed to close window", "error", err)
		}
		common.Logger().Info("engine stopped")
	})
}

// frame runs one host frame: it honors the frame limit, then calls the animation loop.
func (e *engine) frame() {
	now := e.now()
	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - now.Sub(e.lastFrame); remaining > 0 {
			e.sleep(remaining)
			now = e.now()
		}
	}
	dt := float32(now.Sub(e.lastFrame).Seconds())
	e.lastFrame = now

	if e.animationLoop != nil {
		e.animationLoop(dt)
	}

	if e.profilingEnabled {
		e.profiler.Tick()
	}
}

func (e *engine) keyDown(keyCode uint32) {
	if keyCode != common.KeySpace || e.scene == nil {
		return
	}
	if e.scene.Running() {
		e.scene.Stop()
	} else {
		e.scene.Start()
	}
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
	e.profiler.Reset()
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) ProfilingEnabled() bool {
	return e.profilingEnabled
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit = frameDuration(fps)
}

// frameDuration converts a frame rate to the minimum frame duration; non-positive rates mean no limit.
func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
