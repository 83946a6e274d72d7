// Package config holds the application settings: built-in defaults, optionally
// overridden by a TOML or YAML file and then by command line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/HUDEVBR/JOGO-DO-SIMCITY/common"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/camera"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/scene"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig is returned when a setting is out of range.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnsupportedFormat is returned for config files that are neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// Config is the complete application configuration.
type Config struct {
	Window   WindowConfig   `toml:"window" yaml:"window"`
	Renderer RendererConfig `toml:"renderer" yaml:"renderer"`
	Camera   CameraConfig   `toml:"camera" yaml:"camera"`
	Scene    SceneConfig    `toml:"scene" yaml:"scene"`
	Log      LogConfig      `toml:"log" yaml:"log"`
}

// WindowConfig configures the fixed-size window.
type WindowConfig struct {
	Title  string `toml:"title" yaml:"title"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
}

// RendererConfig configures presentation and frame pacing.
type RendererConfig struct {
	VSync      bool    `toml:"vsync" yaml:"vsync"`
	MSAA       uint32  `toml:"msaa" yaml:"msaa"` // 1 or 4
	Software   bool    `toml:"software" yaml:"software"`
	FrameLimit float64 `toml:"frame_limit" yaml:"frame_limit"` // 0 = native cadence
	Profile    bool    `toml:"profile" yaml:"profile"`
}

// CameraConfig configures the perspective projection and the orbit controller.
// Angles are in degrees.
type CameraConfig struct {
	Fov  float32 `toml:"fov" yaml:"fov"`
	Near float32 `toml:"near" yaml:"near"`
	Far  float32 `toml:"far" yaml:"far"`

	Radius    float32 `toml:"radius" yaml:"radius"`
	Azimuth   float32 `toml:"azimuth" yaml:"azimuth"`
	Elevation float32 `toml:"elevation" yaml:"elevation"`

	MinRadius    float32 `toml:"min_radius" yaml:"min_radius"`
	MaxRadius    float32 `toml:"max_radius" yaml:"max_radius"`
	MinElevation float32 `toml:"min_elevation" yaml:"min_elevation"`
	MaxElevation float32 `toml:"max_elevation" yaml:"max_elevation"`

	RotationSensitivity float32 `toml:"rotation_sensitivity" yaml:"rotation_sensitivity"`
	PanSensitivity      float32 `toml:"pan_sensitivity" yaml:"pan_sensitivity"`
	ZoomSensitivity     float32 `toml:"zoom_sensitivity" yaml:"zoom_sensitivity"`
}

// SceneConfig configures the demonstration scene. Colors are hex strings such as "#ff0000".
type SceneConfig struct {
	Background string  `toml:"background" yaml:"background"`
	CubeColor  string  `toml:"cube_color" yaml:"cube_color"`
	CubeSize   float32 `toml:"cube_size" yaml:"cube_size"`
}

// LogConfig configures the slog handler installed by the entrypoint.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"` // debug, info, warn or error
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "orbitview",
			Width:  1280,
			Height: 720,
		},
		Renderer: RendererConfig{
			VSync: true,
			MSAA:  4,
		},
		Camera: CameraConfig{
			Fov:  camera.DefaultFov,
			Near: camera.DefaultNear,
			Far:  camera.DefaultFar,

			Radius: camera.DefaultRadius,

			MinRadius:    camera.DefaultMinRadius,
			MaxRadius:    camera.DefaultMaxRadius,
			MinElevation: camera.DefaultMinElevation,
			MaxElevation: camera.DefaultMaxElevation,

			RotationSensitivity: camera.DefaultRotationSensitivity,
			PanSensitivity:      camera.DefaultPanSensitivity,
			ZoomSensitivity:     camera.DefaultZoomSensitivity,
		},
		Scene: SceneConfig{
			Background: fmt.Sprintf("#%06x", scene.DefaultBackground),
			CubeColor:  fmt.Sprintf("#%06x", scene.DefaultCubeColor),
			CubeSize:   scene.DefaultCubeSize,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML (.toml) or YAML (.yaml, .yml) file over the defaults and validates the result.
// Keys missing from the file keep their default values; unknown keys are rejected.
//
// Parameters:
//   - path: the config file path
//
// Returns:
//   - Config: the merged configuration
//   - error: a read, decode or validation error
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document leaves the defaults in place.
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every out-of-range setting, each wrapped with ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		invalid("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Renderer.MSAA != 1 && c.Renderer.MSAA != 4 {
		invalid("msaa must be 1 or 4, got %d", c.Renderer.MSAA)
	}
	if c.Renderer.FrameLimit < 0 {
		invalid("frame_limit must not be negative, got %g", c.Renderer.FrameLimit)
	}

	cam := c.Camera
	if cam.Fov <= 0 || cam.Fov >= 180 {
		invalid("fov must be in (0, 180), got %g", cam.Fov)
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		invalid("clip planes must satisfy 0 < near < far, got near=%g far=%g", cam.Near, cam.Far)
	}
	if cam.MinRadius <= 0 || cam.MinRadius > cam.MaxRadius {
		invalid("radius bounds must satisfy 0 < min <= max, got [%g, %g]", cam.MinRadius, cam.MaxRadius)
	}
	if cam.MinElevation > cam.MaxElevation {
		invalid("elevation bounds must satisfy min <= max, got [%g, %g]", cam.MinElevation, cam.MaxElevation)
	}
	if cam.Radius <= 0 {
		invalid("radius must be positive, got %g", cam.Radius)
	}

	if _, err := common.ParseColor(c.Scene.Background); err != nil {
		invalid("background: %v", err)
	}
	if _, err := common.ParseColor(c.Scene.CubeColor); err != nil {
		invalid("cube_color: %v", err)
	}
	if c.Scene.CubeSize <= 0 {
		invalid("cube_size must be positive, got %g", c.Scene.CubeSize)
	}

	if _, err := c.LogLevel(); err != nil {
		invalid("log level: %v", err)
	}

	return errors.Join(errs...)
}

// LogLevel parses the configured log level.
func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.Log.Level))
	return level, err
}

// Colors parses the background and cube colors.
//
// Returns:
//   - background: the clear color
//   - cube: the cube color
//   - err: a parse error
func (c Config) Colors() (background, cube common.Color, err error) {
	if background, err = common.ParseColor(c.Scene.Background); err != nil {
		return background, cube, err
	}
	cube, err = common.ParseColor(c.Scene.CubeColor)
	return background, cube, err
}
