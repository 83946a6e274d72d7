package shader

import "github.com/cogentcore/webgpu/wgpu"

// ShaderBuilderOption is a functional option used to configure a Shader during construction.
type ShaderBuilderOption func(*shader)

// WithEntryPoint overrides the entry point name. Defaults to DefaultEntryPoint.
//
// Parameters:
//   - name: the WGSL function name of the stage entry point
//
// Returns:
//   - ShaderBuilderOption: a function that sets the entry point
func WithEntryPoint(name string) ShaderBuilderOption {
	return func(s *shader) {
		s.entryPoint = name
	}
}

// WithBindGroupLayout declares the layout of a bind group used by this shader.
// Entry visibility is overwritten with the shader's stage.
//
// Parameters:
//   - group: the @group index in the WGSL source
//   - desc: the layout descriptor for the group
//
// Returns:
//   - ShaderBuilderOption: a function that registers the bind group layout
func WithBindGroupLayout(group int, desc wgpu.BindGroupLayoutDescriptor) ShaderBuilderOption {
	return func(s *shader) {
		s.bindGroupLayoutDescriptors[group] = desc
	}
}

// WithVertexLayouts sets the vertex buffer layouts consumed by a vertex shader, in slot order.
// Ignored for fragment shaders.
//
// Parameters:
//   - layouts: the vertex buffer layouts
//
// Returns:
//   - ShaderBuilderOption: a function that sets the vertex layouts
func WithVertexLayouts(layouts ...wgpu.VertexBufferLayout) ShaderBuilderOption {
	return func(s *shader) {
		s.vertexLayouts = layouts
	}
}

// WithInclude registers a WGSL snippet that replaces `//@include <name>` lines in the source.
//
// Parameters:
//   - name: the include name referenced by the directive
//   - source: the WGSL text injected in place of the directive
//
// Returns:
//   - ShaderBuilderOption: a function that registers the include
func WithInclude(name, source string) ShaderBuilderOption {
	return func(s *shader) {
		s.includes[name] = source
	}
}
