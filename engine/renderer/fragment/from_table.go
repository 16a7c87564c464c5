package fragment

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/shadeworks/fragpass-go/engine/light"
	"github.com/shadeworks/fragpass-go/engine/renderer/binding"
	"github.com/shadeworks/fragpass-go/engine/renderer/material"
)

// UnlitColorFromTable builds the unlit color program from a host binding
// table, unmarshaling the Material uniform buffer staged at binding 4. This is
// the same byte round trip a GPU host performs: the factor travels as a
// marshaled std140 buffer, not as Go values.
//
// Parameters:
//   - t: the binding table holding staged uniform buffers
//
// Returns:
//   - *UnlitColorShader: the program instance
//   - error: an error if the Material buffer is missing or malformed
func UnlitColorFromTable(t binding.Table) (*UnlitColorShader, error) {
	factors, err := materialFromTable(t)
	if err != nil {
		return nil, err
	}
	return NewUnlitColorShader(mgl32.Vec4(factors.BaseColorFactor)), nil
}

// TexturedLitFromTable builds the textured lit program from a host binding
// table: the Material buffer at binding 4, the Lighting buffer at binding 5,
// and the texture staged at the given unit.
//
// Parameters:
//   - t: the binding table holding staged uniform buffers and textures
//   - unit: the texture unit the host bound the base color texture at
//
// Returns:
//   - *TexturedLitShader: the program instance
//   - error: an error if a required binding is missing or malformed
func TexturedLitFromTable(t binding.Table, unit int) (*TexturedLitShader, error) {
	factors, err := materialFromTable(t)
	if err != nil {
		return nil, err
	}

	buf, ok := t.UniformBuffer(light.LightingBinding)
	if !ok {
		return nil, fmt.Errorf("no Lighting uniform buffer staged at binding %d", light.LightingBinding)
	}
	var lighting light.GPULighting
	if err := lighting.Unmarshal(buf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Lighting buffer: %w", err)
	}

	tex, ok := t.Texture(unit)
	if !ok {
		return nil, fmt.Errorf("no texture staged at unit %d", unit)
	}

	return NewTexturedLitShader(
		mgl32.Vec4(factors.BaseColorFactor),
		mgl32.Vec3(lighting.LightPosition),
		tex,
	), nil
}

// materialFromTable unmarshals the Material uniform buffer staged at binding 4.
func materialFromTable(t binding.Table) (material.GPUMaterialFactors, error) {
	var factors material.GPUMaterialFactors
	buf, ok := t.UniformBuffer(material.MaterialBinding)
	if !ok {
		return factors, fmt.Errorf("no Material uniform buffer staged at binding %d", material.MaterialBinding)
	}
	if err := factors.Unmarshal(buf); err != nil {
		return factors, fmt.Errorf("failed to unmarshal Material buffer: %w", err)
	}
	return factors, nil
}
