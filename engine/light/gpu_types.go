package light

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// LightingBinding is the uniform block binding slot the Lighting block occupies
// in the lit fragment program. Hosts must bind the marshaled GPULighting buffer
// at this slot.
const LightingBinding = 5

// GPULightingSource is the canonical GLSL definition of the Lighting uniform block.
// Matches GPULighting layout exactly (16 bytes, std140 aligned).
//
//go:embed assets/lighting.glsl
var GPULightingSource string

// GPULighting is the GPU-aligned representation of the Lighting uniform block.
// Matches the GLSL Lighting block layout exactly (see GPULightingSource).
// Size: 16 bytes (std140 aligned).
//
// Under std140 a vec3 occupies a full 16-byte slot, so the light position is
// followed by one float of padding that the host-side buffer must include.
type GPULighting struct {
	LightPosition [3]float32 // offset  0: world-space light position (vec3)
	_pad          float32    // offset 12: std140 padding to 16 bytes
}

// Size returns the size of the GPULighting struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (16)
func (g *GPULighting) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULighting struct into a byte buffer suitable for GPU
// uniform upload. The trailing std140 padding float is written as zero.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload
func (g *GPULighting) Marshal() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.LightPosition[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.LightPosition[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.LightPosition[2]))
	binary.LittleEndian.PutUint32(buf[12:16], 0) // padding
	return buf
}

// Unmarshal deserializes a marshaled Lighting uniform buffer back into the
// struct. Used when reconstructing shading parameters from staged host bindings.
//
// Parameters:
//   - buf: a buffer of at least 16 bytes in the marshaled layout
//
// Returns:
//   - error: an error if the buffer is shorter than the block
func (g *GPULighting) Unmarshal(buf []byte) error {
	if len(buf) < g.Size() {
		return fmt.Errorf("lighting uniform buffer is %d bytes, want %d", len(buf), g.Size())
	}
	g.LightPosition[0] = math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4]))
	g.LightPosition[1] = math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8]))
	g.LightPosition[2] = math.Float32frombits(binary.LittleEndian.Uint32(buf[8:12]))
	return nil
}

// ToGPULighting converts a Light interface value into the GPU-aligned
// GPULighting struct suitable for writing into the Lighting uniform buffer.
//
// Parameters:
//   - l: the Light to convert
//
// Returns:
//   - GPULighting: the GPU-aligned representation
func ToGPULighting(l Light) GPULighting {
	return GPULighting{
		LightPosition: l.Position(),
	}
}
