package material

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// MaterialBinding is the uniform block binding slot the Material block occupies
// in both fragment programs. Hosts must bind the marshaled GPUMaterialFactors
// buffer at this slot.
const MaterialBinding = 4

// GPUMaterialFactorsSource is the canonical GLSL definition of the Material uniform block.
// Matches GPUMaterialFactors layout exactly (16 bytes, std140 aligned).
//
//go:embed assets/material.glsl
var GPUMaterialFactorsSource string

// GPUMaterialFactors is the GPU-aligned representation of the Material uniform block.
// Matches the GLSL Material block layout exactly (see GPUMaterialFactorsSource).
// Size: 16 bytes (one vec4, std140 aligned).
type GPUMaterialFactors struct {
	BaseColorFactor [4]float32 // offset 0: RGBA base color factor (16 bytes)
}

// Size returns the size of the GPUMaterialFactors struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (16)
func (g *GPUMaterialFactors) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMaterialFactors struct into a byte buffer suitable
// for GPU uniform upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload
func (g *GPUMaterialFactors) Marshal() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.BaseColorFactor[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.BaseColorFactor[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.BaseColorFactor[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.BaseColorFactor[3]))
	return buf
}

// Unmarshal deserializes a marshaled Material uniform buffer back into the
// struct. Used when reconstructing shading parameters from staged host bindings.
//
// Parameters:
//   - buf: a buffer of at least 16 bytes in the marshaled layout
//
// Returns:
//   - error: an error if the buffer is shorter than the block
func (g *GPUMaterialFactors) Unmarshal(buf []byte) error {
	if len(buf) < g.Size() {
		return fmt.Errorf("material uniform buffer is %d bytes, want %d", len(buf), g.Size())
	}
	for i := range 4 {
		g.BaseColorFactor[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4 : (i+1)*4]))
	}
	return nil
}

// ToGPUMaterialFactors converts a Material interface value into the GPU-aligned
// GPUMaterialFactors struct suitable for writing into the Material uniform buffer.
//
// Parameters:
//   - m: the Material to convert
//
// Returns:
//   - GPUMaterialFactors: the GPU-aligned representation
func ToGPUMaterialFactors(m Material) GPUMaterialFactors {
	return GPUMaterialFactors{
		BaseColorFactor: m.BaseColorFactor(),
	}
}
