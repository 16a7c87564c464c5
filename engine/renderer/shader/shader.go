package shader

import (
	"fmt"
)

// ShaderType identifies which pipeline stage a shader source targets.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex shader type, producing the interface block
	// the fragment stage consumes.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment shader type, evaluated once per
	// fragment against externally bound uniform and texture state.
	ShaderTypeFragment
)

// shader is the implementation of the Shader interface.
// It holds the GLSL source together with the interface metadata parsed from it.
type shader struct {
	key           string
	source        string
	shaderType    ShaderType
	version       int
	uniformBlocks map[int]UniformBlock
	samplers      []SamplerDecl
	inBlock       *InterfaceBlock
	outBlock      *InterfaceBlock
}

// Shader defines the interface for a parsed GLSL shader stage. It exposes the
// shader's unique key, source code, and the parsed interface metadata (std140
// uniform blocks, sampler uniforms, stage in/out interface blocks) needed for
// program linkage validation and host-side binding checks.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for caching and lookups.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the GLSL shader source code.
	//
	// Returns:
	//   - string: the GLSL source code of the shader
	Source() string

	// ShaderType returns the pipeline stage this shader targets.
	//
	// Returns:
	//   - ShaderType: ShaderTypeVertex or ShaderTypeFragment
	ShaderType() ShaderType

	// Version returns the GLSL #version number declared by the source.
	//
	// Returns:
	//   - int: the version number (e.g. 460)
	Version() int

	// UniformBlock retrieves the std140 uniform block declared at a binding slot.
	//
	// Parameters:
	//   - binding: the binding slot to look up
	//
	// Returns:
	//   - UniformBlock: the block declared at the slot
	//   - bool: true if the shader declares a block at the slot
	UniformBlock(binding int) (UniformBlock, bool)

	// UniformBlocks retrieves all std140 uniform blocks parsed from the source.
	//
	// Returns:
	//   - map[int]UniformBlock: blocks keyed by binding slot
	UniformBlocks() map[int]UniformBlock

	// Samplers retrieves the opaque sampler uniforms parsed from the source.
	//
	// Returns:
	//   - []SamplerDecl: sampler declarations in source order
	Samplers() []SamplerDecl

	// InBlock retrieves the stage's input interface block, or nil if the stage
	// declares none (vertex stages consume plain attributes, not blocks).
	//
	// Returns:
	//   - *InterfaceBlock: the input interface block, or nil
	InBlock() *InterfaceBlock

	// OutBlock retrieves the stage's output interface block, or nil if the
	// stage declares none (fragment stages write a plain color output).
	//
	// Returns:
	//   - *InterfaceBlock: the output interface block, or nil
	OutBlock() *InterfaceBlock
}

var _ Shader = &shader{}

// NewShader creates a new Shader instance by parsing the provided GLSL source.
// Panics when the source is empty or has no void main() entry point; a shader
// without an entry point is a programming error, not a runtime condition.
//
// Parameters:
//   - key: a unique identifier for the shader, used for caching and lookups
//   - shaderType: the pipeline stage the source targets
//   - source: the GLSL source code
//
// Returns:
//   - Shader: a new Shader instance with parsed interface metadata
func NewShader(key string, shaderType ShaderType, source string) Shader {
	if source == "" {
		panic(fmt.Sprintf("shader: %s must have GLSL source provided", key))
	}
	if !hasMain(source) {
		panic(fmt.Sprintf("shader: %s has no void main() entry point", key))
	}
	s := &shader{
		key:        key,
		source:     source,
		shaderType: shaderType,
		version:    parseVersion(source),
	}
	s.uniformBlocks = parseUniformBlocks(source)
	s.samplers = parseSamplers(source)
	s.inBlock, s.outBlock = parseInterfaceBlocks(source)
	return s
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}

func (s *shader) Version() int {
	return s.version
}

func (s *shader) UniformBlock(binding int) (UniformBlock, bool) {
	b, ok := s.uniformBlocks[binding]
	return b, ok
}

func (s *shader) UniformBlocks() map[int]UniformBlock {
	return s.uniformBlocks
}

func (s *shader) Samplers() []SamplerDecl {
	return s.samplers
}

func (s *shader) InBlock() *InterfaceBlock {
	return s.inBlock
}

func (s *shader) OutBlock() *InterfaceBlock {
	return s.outBlock
}
