package shader

import (
	_ "embed"
)

// Program keys for the two shipped variants.
const (
	// ProgramKeyUnlitColor identifies the unlit color program: the material's
	// base color factor is emitted unchanged as the fragment color.
	ProgramKeyUnlitColor = "unlit_color"

	// ProgramKeyTexturedLit identifies the textured lit program: the sampled
	// base color texture modulated by the material factor, shaded with one
	// ambient + diffuse point-light term.
	ProgramKeyTexturedLit = "textured_lit"
)

// UnlitColorVertexSource is the vertex stage of the unlit color program.
//
//go:embed assets/unlit_color.vert
var UnlitColorVertexSource string

// UnlitColorFragmentSource is the fragment stage of the unlit color program.
// Reads the Material block (binding 4) and writes its factor unchanged.
//
//go:embed assets/unlit_color.frag
var UnlitColorFragmentSource string

// TexturedLitVertexSource is the vertex stage of the textured lit program.
//
//go:embed assets/textured_lit.vert
var TexturedLitVertexSource string

// TexturedLitFragmentSource is the fragment stage of the textured lit program.
// Reads the Material block (binding 4), the Lighting block (binding 5), and
// one bound 2D sampler.
//
//go:embed assets/textured_lit.frag
var TexturedLitFragmentSource string

// NewUnlitColorProgram builds the unlit color program variant from the
// embedded sources. The sources are fixed assets of this module, so a failure
// to link them is a programming error and panics.
//
// Returns:
//   - Program: the unlit color program
func NewUnlitColorProgram() Program {
	p, err := NewProgram(
		ProgramKeyUnlitColor,
		NewShader(ProgramKeyUnlitColor+".vert", ShaderTypeVertex, UnlitColorVertexSource),
		NewShader(ProgramKeyUnlitColor+".frag", ShaderTypeFragment, UnlitColorFragmentSource),
	)
	if err != nil {
		panic(err)
	}
	return p
}

// NewTexturedLitProgram builds the textured lit program variant from the
// embedded sources. The sources are fixed assets of this module, so a failure
// to link them is a programming error and panics.
//
// Returns:
//   - Program: the textured lit program
func NewTexturedLitProgram() Program {
	p, err := NewProgram(
		ProgramKeyTexturedLit,
		NewShader(ProgramKeyTexturedLit+".vert", ShaderTypeVertex, TexturedLitVertexSource),
		NewShader(ProgramKeyTexturedLit+".frag", ShaderTypeFragment, TexturedLitFragmentSource),
	)
	if err != nil {
		panic(err)
	}
	return p
}
