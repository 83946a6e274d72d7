package scene

import "github.com/HUDEVBR/JOGO-DO-SIMCITY/common"

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithBackground sets the color the frame is cleared to.
//
// Parameters:
//   - color: the background color
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBackground(color common.Color) SceneBuilderOption {
	return func(s *scene) {
		s.background = color
	}
}

// WithCubeColor sets the flat color of the cube.
//
// Parameters:
//   - color: the cube color
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCubeColor(color common.Color) SceneBuilderOption {
	return func(s *scene) {
		s.cubeColor = color
	}
}

// WithCubeSize sets the cube's edge length.
//
// Parameters:
//   - size: edge length in world units
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCubeSize(size float32) SceneBuilderOption {
	return func(s *scene) {
		s.cubeSize = size
	}
}
