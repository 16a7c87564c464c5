package shader

import (
	"fmt"
)

// program is the implementation of the Program interface.
type program struct {
	key      string
	vertex   Shader
	fragment Shader
}

// Program pairs a vertex and fragment shader into one drawable program variant
// and exposes the combined binding contract a host must satisfy before a draw:
// the std140 uniform blocks of both stages and the fragment stage's sampler
// uniforms.
//
// Program construction validates the stage interface the way a GL link step
// would: the vertex stage's out block must match the fragment stage's in block
// by block name and member list.
type Program interface {
	// Key retrieves the unique identifier for this program.
	//
	// Returns:
	//   - string: the program's unique key
	Key() string

	// Vertex retrieves the program's vertex shader.
	//
	// Returns:
	//   - Shader: the vertex stage
	Vertex() Shader

	// Fragment retrieves the program's fragment shader.
	//
	// Returns:
	//   - Shader: the fragment stage
	Fragment() Shader

	// UniformBlocks retrieves the std140 uniform blocks of both stages merged
	// by binding slot.
	//
	// Returns:
	//   - map[int]UniformBlock: blocks keyed by binding slot
	UniformBlocks() map[int]UniformBlock

	// Samplers retrieves the fragment stage's opaque sampler uniforms.
	//
	// Returns:
	//   - []SamplerDecl: sampler declarations in source order
	Samplers() []SamplerDecl
}

var _ Program = &program{}

// NewProgram creates a Program from a vertex and fragment shader pair,
// validating stage types, the vertex→fragment interface block, and that the
// two stages do not declare conflicting uniform blocks at the same binding slot.
//
// Parameters:
//   - key: a unique identifier for the program
//   - vertex: the vertex stage shader
//   - fragment: the fragment stage shader
//
// Returns:
//   - Program: the linked program pair
//   - error: an error if the stages cannot form a valid program
func NewProgram(key string, vertex, fragment Shader) (Program, error) {
	if vertex == nil || fragment == nil {
		return nil, fmt.Errorf("program %s: both stages are required", key)
	}
	if vertex.ShaderType() != ShaderTypeVertex {
		return nil, fmt.Errorf("program %s: shader %s is not a vertex shader", key, vertex.Key())
	}
	if fragment.ShaderType() != ShaderTypeFragment {
		return nil, fmt.Errorf("program %s: shader %s is not a fragment shader", key, fragment.Key())
	}

	vsOut := vertex.OutBlock()
	fsIn := fragment.InBlock()
	switch {
	case vsOut == nil && fsIn == nil:
		// Nothing to match.
	case vsOut == nil:
		return nil, fmt.Errorf("program %s: fragment stage consumes interface block %s but vertex stage declares none", key, fsIn.BlockName)
	case fsIn == nil:
		return nil, fmt.Errorf("program %s: vertex stage produces interface block %s but fragment stage consumes none", key, vsOut.BlockName)
	case !vsOut.Matches(*fsIn):
		return nil, fmt.Errorf("program %s: interface block mismatch between stages (%s -> %s)", key, vsOut.BlockName, fsIn.BlockName)
	}

	for binding, vb := range vertex.UniformBlocks() {
		if fb, ok := fragment.UniformBlocks()[binding]; ok && fb.Name != vb.Name {
			return nil, fmt.Errorf("program %s: binding %d declared as block %s in vertex stage and %s in fragment stage", key, binding, vb.Name, fb.Name)
		}
	}

	return &program{
		key:      key,
		vertex:   vertex,
		fragment: fragment,
	}, nil
}

func (p *program) Key() string {
	return p.key
}

func (p *program) Vertex() Shader {
	return p.vertex
}

func (p *program) Fragment() Shader {
	return p.fragment
}

func (p *program) UniformBlocks() map[int]UniformBlock {
	merged := make(map[int]UniformBlock)
	for binding, b := range p.vertex.UniformBlocks() {
		merged[binding] = b
	}
	for binding, b := range p.fragment.UniformBlocks() {
		merged[binding] = b
	}
	return merged
}

func (p *program) Samplers() []SamplerDecl {
	return p.fragment.Samplers()
}
