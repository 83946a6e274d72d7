package material

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// GPUMeshUniformSource is the canonical WGSL definition of the MeshUniform struct.
// Matches GPUMeshUniform layout exactly (80 bytes).
//
//go:embed assets/mesh_uniform.wgsl
var GPUMeshUniformSource string

// GPUMeshUniform is the per-draw uniform for the flat pipeline: the model matrix and the
// unlit surface color. Matches the WGSL MeshUniform struct layout exactly (see GPUMeshUniformSource).
// Size: 80 bytes.
type GPUMeshUniform struct {
	Model [16]float32 // offset  0: model-to-world matrix (mat4x4<f32>)
	Color [4]float32  // offset 64: RGBA surface color (vec4<f32>)
}

// Size returns the size of the GPUMeshUniform struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes (80)
func (g *GPUMeshUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMeshUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 80-byte buffer ready for GPU upload
func (g *GPUMeshUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i, v := range g.Model {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	for i, v := range g.Color {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(v))
	}
	return buf
}

// MeshUniformLayout returns the bind group layout for the mesh uniform. The buffer is read by
// both stages of the flat pipeline.
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the mesh bind group layout
func MeshUniformLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Mesh Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
			Buffer: wgpu.BufferBindingLayout{
				Type:           wgpu.BufferBindingTypeUniform,
				MinBindingSize: uint64((&GPUMeshUniform{}).Size()),
			},
		}},
	}
}
