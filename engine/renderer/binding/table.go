// package binding provides the host-side binding table: the uniform buffers
// and texture a host stages before issuing a draw with one of the shader
// programs. Staged uniform buffers hold the exact bytes a GPU host would
// upload, so validating and reading them back exercises the same std140
// contract the GLSL sources declare.
package binding

import (
	"fmt"
	"sort"

	"github.com/shadeworks/fragpass-go/engine/light"
	"github.com/shadeworks/fragpass-go/engine/renderer/material"
	"github.com/shadeworks/fragpass-go/engine/renderer/shader"
	"github.com/shadeworks/fragpass-go/engine/renderer/texture"
)

// table is the implementation of the Table interface.
type table struct {
	uniformBuffers map[int][]byte
	textures       map[int]*texture.Texture2D
}

// Table defines the interface for the externally bound state visible to a
// fragment program during a draw: std140 uniform buffers keyed by binding slot
// and 2D textures keyed by texture unit. All staged data is read-only to the
// shading stage, matching the uniform block contract.
type Table interface {
	// SetUniformBuffer stages a marshaled uniform buffer at a binding slot,
	// replacing any previous buffer at that slot.
	//
	// Parameters:
	//   - binding: the uniform block binding slot
	//   - data: the marshaled std140 buffer bytes
	SetUniformBuffer(binding int, data []byte)

	// UniformBuffer retrieves the buffer staged at a binding slot.
	//
	// Parameters:
	//   - binding: the uniform block binding slot
	//
	// Returns:
	//   - []byte: the staged buffer bytes
	//   - bool: true if a buffer is staged at the slot
	UniformBuffer(binding int) ([]byte, bool)

	// SetTexture stages a texture at a texture unit, replacing any previous
	// texture at that unit.
	//
	// Parameters:
	//   - unit: the texture unit index
	//   - tex: the texture to bind
	SetTexture(unit int, tex *texture.Texture2D)

	// Texture retrieves the texture staged at a texture unit.
	//
	// Parameters:
	//   - unit: the texture unit index
	//
	// Returns:
	//   - *texture.Texture2D: the staged texture
	//   - bool: true if a texture is staged at the unit
	Texture(unit int) (*texture.Texture2D, bool)

	// Bindings retrieves the slots holding staged uniform buffers in ascending order.
	//
	// Returns:
	//   - []int: the occupied binding slots
	Bindings() []int

	// StageMaterial marshals a material's factors into the Material uniform
	// slot (binding 4).
	//
	// Parameters:
	//   - m: the material to stage
	StageMaterial(m material.Material)

	// StageLighting marshals a light's position into the Lighting uniform
	// slot (binding 5). A disabled light is not staged: any buffer already
	// at the slot is removed, so Validate rejects the lit program until the
	// light is re-enabled and staged again.
	//
	// Parameters:
	//   - l: the light to stage
	StageLighting(l light.Light)

	// Validate checks the staged state against a program's binding contract:
	// every std140 uniform block the program declares must have a staged
	// buffer of exactly the block's std140 size, and a program declaring
	// sampler uniforms must have at least one staged texture.
	//
	// Parameters:
	//   - p: the program whose contract to check
	//
	// Returns:
	//   - error: an error describing the first unsatisfied binding, or nil
	Validate(p shader.Program) error
}

var _ Table = &table{}

// NewTable creates an empty binding table.
//
// Returns:
//   - Table: a new Table instance
func NewTable() Table {
	return &table{
		uniformBuffers: make(map[int][]byte),
		textures:       make(map[int]*texture.Texture2D),
	}
}

func (t *table) SetUniformBuffer(binding int, data []byte) {
	t.uniformBuffers[binding] = data
}

func (t *table) UniformBuffer(binding int) ([]byte, bool) {
	buf, ok := t.uniformBuffers[binding]
	return buf, ok
}

func (t *table) SetTexture(unit int, tex *texture.Texture2D) {
	t.textures[unit] = tex
}

func (t *table) Texture(unit int) (*texture.Texture2D, bool) {
	tex, ok := t.textures[unit]
	return tex, ok
}

func (t *table) Bindings() []int {
	bindings := make([]int, 0, len(t.uniformBuffers))
	for b := range t.uniformBuffers {
		bindings = append(bindings, b)
	}
	sort.Ints(bindings)
	return bindings
}

func (t *table) StageMaterial(m material.Material) {
	gpu := material.ToGPUMaterialFactors(m)
	t.SetUniformBuffer(material.MaterialBinding, gpu.Marshal())
}

func (t *table) StageLighting(l light.Light) {
	if !l.Enabled() {
		delete(t.uniformBuffers, light.LightingBinding)
		return
	}
	gpu := light.ToGPULighting(l)
	t.SetUniformBuffer(light.LightingBinding, gpu.Marshal())
}

func (t *table) Validate(p shader.Program) error {
	for _, binding := range sortedBlockBindings(p) {
		block := p.UniformBlocks()[binding]
		want, ok := block.Std140Size()
		if !ok {
			return fmt.Errorf("program %s: block %s at binding %d contains a type std140 sizing does not cover", p.Key(), block.Name, binding)
		}
		buf, staged := t.uniformBuffers[binding]
		if !staged {
			return fmt.Errorf("program %s: no uniform buffer staged at binding %d for block %s", p.Key(), binding, block.Name)
		}
		if len(buf) != want {
			return fmt.Errorf("program %s: buffer at binding %d is %d bytes, block %s requires %d", p.Key(), binding, len(buf), block.Name, want)
		}
	}

	if len(p.Samplers()) > 0 && len(t.textures) == 0 {
		return fmt.Errorf("program %s: declares sampler %s but no texture is staged", p.Key(), p.Samplers()[0].Name)
	}

	return nil
}

// sortedBlockBindings returns the program's uniform block binding slots in
// ascending order so validation errors are deterministic.
func sortedBlockBindings(p shader.Program) []int {
	blocks := p.UniformBlocks()
	bindings := make([]int, 0, len(blocks))
	for b := range blocks {
		bindings = append(bindings, b)
	}
	sort.Ints(bindings)
	return bindings
}
