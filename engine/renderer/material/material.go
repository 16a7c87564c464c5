package material

import (
	"github.com/shadeworks/fragpass-go/common"
)

// material is the implementation of the Material interface.
type material struct {
	name             string
	baseColorFactor  [4]float32
	baseColorTexture *common.ImportedTexture
	programKey       string
}

// Material defines the interface for a render material feeding the fragment
// programs: an RGBA base color factor, an optional base color texture, and the
// key of the shader program the material draws with.
//
// Surface properties (name, base color factor, texture) are set at load time
// and are read-only through this interface. The program key is mutable so it
// can be assigned after construction, once the host decides which program
// variant the material renders with (unlit color when no texture is present,
// textured lit otherwise).
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// BaseColorFactor retrieves the RGBA base color factor of the material.
	// For the unlit program this is emitted unchanged as the fragment color;
	// for the lit program it modulates the sampled texture color.
	//
	// Returns:
	//   - [4]float32: the base color factor as RGBA values
	BaseColorFactor() [4]float32

	// BaseColorTexture retrieves the base color texture data reference, or nil if none is set.
	//
	// Returns:
	//   - *common.ImportedTexture: the base color texture, or nil
	BaseColorTexture() *common.ImportedTexture

	// ProgramKey retrieves the key identifying the shader program this material draws with.
	//
	// Returns:
	//   - string: the program key
	ProgramKey() string

	// SetProgramKey sets the shader program key for this material.
	//
	// Parameters:
	//   - key: the program key to associate with this material
	SetProgramKey(key string)
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
// The base color factor defaults to opaque white.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		baseColorFactor: [4]float32{1, 1, 1, 1},
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) BaseColorFactor() [4]float32 {
	return m.baseColorFactor
}

func (m *material) BaseColorTexture() *common.ImportedTexture {
	return m.baseColorTexture
}

func (m *material) ProgramKey() string {
	return m.programKey
}

func (m *material) SetProgramKey(key string) {
	m.programKey = key
}
