package fog

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// GPUFogSource is the WGSL program for the fog volume: an instanced vertex stage and a
// fragment stage evaluating the same density model as VolumetricFog.Density.
//
//go:embed assets/fog.wgsl
var GPUFogSource string

// Entry points in GPUFogSource.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// GPUFogUniform is the GPU-aligned representation of the FogParams uniform.
// Size: 48 bytes (std140 aligned, vec3 packed with the following scalar).
type GPUFogUniform struct {
	Color               [3]float32 // offset  0
	Density             float32    // offset 12
	Height              float32    // offset 16
	Radius              float32    // offset 20
	NoiseScale          float32    // offset 24
	NoiseStrength       float32    // offset 28
	NoiseAnimationSpeed float32    // offset 32
	Time                float32    // offset 36
	_                   [2]float32 // offset 40: padding to 16-byte multiple
}

// Size returns the size of the GPUFogUniform struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes
func (g *GPUFogUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the uniform into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload
func (g *GPUFogUniform) Marshal() []byte {
	buf := make([]byte, 48)
	fields := [...]float32{
		g.Color[0], g.Color[1], g.Color[2], g.Density,
		g.Height, g.Radius, g.NoiseScale, g.NoiseStrength,
		g.NoiseAnimationSpeed, g.Time,
	}
	for i, f := range fields {
		binary.LittleEndian.PutUint32(buf[i*4:(i+1)*4], math.Float32bits(f))
	}
	return buf
}

// GPUFogInstance is one column-major model matrix, fed to the vertex stage as four vec4 attributes.
// Size: 64 bytes.
type GPUFogInstance struct {
	Model [16]float32
}

// VertexLayout returns the per-vertex buffer layout: one vec3 position at location 0.
//
// Returns:
//   - wgpu.VertexBufferLayout: the mesh buffer layout
func VertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 12,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		},
	}
}

// InstanceLayout returns the per-instance buffer layout: the model matrix columns at locations 1-4.
//
// Returns:
//   - wgpu.VertexBufferLayout: the instance buffer layout
func InstanceLayout() wgpu.VertexBufferLayout {
	attrs := make([]wgpu.VertexAttribute, 4)
	for i := range attrs {
		attrs[i] = wgpu.VertexAttribute{
			Format:         wgpu.VertexFormatFloat32x4,
			Offset:         uint64(i * 16),
			ShaderLocation: uint32(i + 1),
		}
	}
	return wgpu.VertexBufferLayout{
		ArrayStride: 64,
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes:  attrs,
	}
}

// ShaderModule returns the descriptor used to compile GPUFogSource.
//
// Returns:
//   - *wgpu.ShaderModuleDescriptor: the shader module descriptor
func ShaderModule() *wgpu.ShaderModuleDescriptor {
	return &wgpu.ShaderModuleDescriptor{
		Label:          "volumetric_fog",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: GPUFogSource},
	}
}
