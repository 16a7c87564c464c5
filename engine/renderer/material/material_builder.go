package material

import (
	"github.com/shadeworks/fragpass-go/common"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithBaseColorFactor is an option builder that sets the RGBA base color factor of the material.
//
// Parameters:
//   - factor: the base color factor as RGBA float32 values
//
// Returns:
//   - MaterialBuilderOption: a function that applies the base color factor option to a material
func WithBaseColorFactor(factor [4]float32) MaterialBuilderOption {
	return func(m *material) {
		m.baseColorFactor = factor
	}
}

// WithBaseColorTexture is an option builder that sets the base color texture reference.
//
// Parameters:
//   - tex: the imported texture data for the base color map
//
// Returns:
//   - MaterialBuilderOption: a function that applies the base color texture option to a material
func WithBaseColorTexture(tex *common.ImportedTexture) MaterialBuilderOption {
	return func(m *material) {
		m.baseColorTexture = tex
	}
}

// WithProgramKey is an option builder that sets the shader program key for the material.
//
// Parameters:
//   - key: the program key to associate with the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the program key option to a material
func WithProgramKey(key string) MaterialBuilderOption {
	return func(m *material) {
		m.programKey = key
	}
}
