// Command orbitview opens a window showing a single cube that can be orbited with
// the mouse: left drag rotates, middle drag pans and right drag zooms. Space pauses
// and resumes drawing; Escape quits.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/HUDEVBR/JOGO-DO-SIMCITY/common"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/config"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/camera"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/renderer"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/scene"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/window"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "orbitview:", err)
		os.Exit(2)
	}

	level, _ := cfg.LogLevel()
	common.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(cfg); err != nil {
		common.Logger().Error("orbitview failed", "error", err)
		os.Exit(1)
	}
}

// parseFlags builds the configuration: defaults, then the --config file, then explicit flags.
func parseFlags(args []string, output io.Writer) (config.Config, error) {
	fs := pflag.NewFlagSet("orbitview", pflag.ContinueOnError)
	fs.SetOutput(output)

	def := config.Default()
	configPath := fs.String("config", "", "path to a .toml, .yaml or .yml config file")
	title := fs.String("title", def.Window.Title, "window title")
	width := fs.Int("width", def.Window.Width, "window width in pixels")
	height := fs.Int("height", def.Window.Height, "window height in pixels")
	logLevel := fs.String("log-level", def.Log.Level, "log level: debug, info, warn or error")
	profile := fs.Bool("profile", def.Renderer.Profile, "log frame rate and memory statistics every second")
	vsync := fs.Bool("vsync", def.Renderer.VSync, "wait for vertical blank when presenting")

	if err := fs.Parse(args); err != nil {
		return def, err
	}

	cfg := def
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}

	if fs.Changed("title") {
		cfg.Window.Title = *title
	}
	if fs.Changed("width") {
		cfg.Window.Width = *width
	}
	if fs.Changed("height") {
		cfg.Window.Height = *height
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = *logLevel
	}
	if fs.Changed("profile") {
		cfg.Renderer.Profile = *profile
	}
	if fs.Changed("vsync") {
		cfg.Renderer.VSync = *vsync
	}

	return cfg, cfg.Validate()
}

// presentMode maps the vsync setting to a renderer present mode.
func presentMode(vsync bool) renderer.PresentMode {
	if vsync {
		return renderer.PresentModeVSync
	}
	return renderer.PresentModeUncapped
}

// controllerOptions converts the camera settings to orbit controller options.
func controllerOptions(c config.CameraConfig) []camera.OrbitControllerOption {
	return []camera.OrbitControllerOption{
		camera.WithRadius(c.Radius),
		camera.WithAzimuth(c.Azimuth),
		camera.WithElevation(c.Elevation),
		camera.WithRadiusBounds(c.MinRadius, c.MaxRadius),
		camera.WithElevationBounds(c.MinElevation, c.MaxElevation),
		camera.WithRotationSensitivity(c.RotationSensitivity),
		camera.WithPanSensitivity(c.PanSensitivity),
		camera.WithZoomSensitivity(c.ZoomSensitivity),
	}
}

func run(cfg config.Config) error {
	background, cubeColor, err := cfg.Colors()
	if err != nil {
		return err
	}

	// ── Engine + Window ─────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithProfiling(cfg.Renderer.Profile),
		engine.WithRenderFrameLimit(cfg.Renderer.FrameLimit),
		engine.WithWindow(window.NewWindow(
			window.WithTitle(cfg.Window.Title),
			window.WithWidth(cfg.Window.Width),
			window.WithHeight(cfg.Window.Height),
		)),
	)
	// Runs last: the scene and renderer release their GPU objects while the surface's window exists.
	defer eng.Quit()

	// ── Renderer ────────────────────────────────────────────────────────
	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		eng.Window(),
		renderer.WithPresentMode(presentMode(cfg.Renderer.VSync)),
		renderer.WithMSAA(renderer.MSAASampleCount(cfg.Renderer.MSAA)),
		renderer.WithForceSoftwareRenderer(cfg.Renderer.Software),
		renderer.WithClearColor(background),
	)
	defer r.Release()

	// ── Camera ──────────────────────────────────────────────────────────
	w, h := eng.Window().Width(), eng.Window().Height()
	cam := camera.NewCamera(
		camera.WithFov(cfg.Camera.Fov),
		camera.WithAspect(float32(w)/float32(max(h, 1))),
		camera.WithNear(cfg.Camera.Near),
		camera.WithFar(cfg.Camera.Far),
		camera.WithController(camera.NewOrbitController(controllerOptions(cfg.Camera)...)),
	)

	// ── Scene ───────────────────────────────────────────────────────────
	sc, err := scene.NewScene("orbitview", cam, r, eng,
		scene.WithBackground(background),
		scene.WithCubeColor(cubeColor),
		scene.WithCubeSize(cfg.Scene.CubeSize),
	)
	if err != nil {
		return err
	}
	defer sc.Release()

	eng.SetScene(sc)
	sc.Start()

	eng.Run()
	return nil
}
