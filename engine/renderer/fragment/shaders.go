package fragment

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/shadeworks/fragpass-go/engine/renderer/texture"
)

// AmbientFactor is the fixed scale of the ambient contribution in the textured
// lit program. It applies to all four channels of the combined surface color,
// alpha included.
const AmbientFactor = 0.4

// FragmentShader is a fragment program evaluated once per invocation. The
// shading stage imposes no ordering between invocations; implementations must
// be safe to call concurrently on the same receiver.
type FragmentShader interface {
	// Fragment evaluates the program for one fragment.
	//
	// Parameters:
	//   - v: the interpolated varyings for this invocation
	//
	// Returns:
	//   - mgl32.Vec4: the RGBA color written to the color target, unclamped
	Fragment(v Varyings) mgl32.Vec4
}

// UnlitColorShader emits the material's base color factor unchanged for every
// fragment. No inputs besides the factor are read; out-of-range components
// pass straight through, any clamping is the output-merge stage's business.
type UnlitColorShader struct {
	// BaseColorFactor is the RGBA factor from the Material uniform block.
	BaseColorFactor mgl32.Vec4
}

var _ FragmentShader = &UnlitColorShader{}

// NewUnlitColorShader creates the unlit color program with the given material factor.
//
// Parameters:
//   - factor: the RGBA base color factor
//
// Returns:
//   - *UnlitColorShader: the program instance
func NewUnlitColorShader(factor mgl32.Vec4) *UnlitColorShader {
	return &UnlitColorShader{BaseColorFactor: factor}
}

func (s *UnlitColorShader) Fragment(v Varyings) mgl32.Vec4 {
	return s.BaseColorFactor
}

// TexturedLitShader shades a fragment with one ambient + diffuse term from a
// single infinite-range point light:
//
//	base    = texture(uv) * baseColorFactor
//	ambient = 0.4 * base
//	diffuse = vec4(max(dot(normalize(normal), normalize(lightPos - worldPos)), 0) * base.rgb, 1)
//	out     = ambient + diffuse
//
// The ambient term scales alpha by 0.4 and the diffuse term then pins alpha to
// 1.0 before the sum, so a fully opaque surface comes out with alpha 1.4.
// That looks like an accident of the arithmetic, but hosts blend against the
// value as emitted, so it is reproduced rather than corrected. The sum is not
// clamped to [0, 1].
//
// Degenerate geometry is not guarded: a zero-length normal, or a light sitting
// exactly at the fragment position, normalizes a zero vector and produces NaN
// components, the same way the arithmetic behaves on a GPU.
type TexturedLitShader struct {
	// BaseColorFactor is the RGBA factor from the Material uniform block.
	BaseColorFactor mgl32.Vec4

	// LightPosition is the world-space light position from the Lighting uniform block.
	LightPosition mgl32.Vec3

	// Texture is the bound base color texture.
	Texture *texture.Texture2D
}

var _ FragmentShader = &TexturedLitShader{}

// NewTexturedLitShader creates the textured lit program.
//
// Parameters:
//   - factor: the RGBA base color factor
//   - lightPos: the world-space light position
//   - tex: the bound base color texture
//
// Returns:
//   - *TexturedLitShader: the program instance
func NewTexturedLitShader(factor mgl32.Vec4, lightPos mgl32.Vec3, tex *texture.Texture2D) *TexturedLitShader {
	return &TexturedLitShader{
		BaseColorFactor: factor,
		LightPosition:   lightPos,
		Texture:         tex,
	}
}

func (s *TexturedLitShader) Fragment(v Varyings) mgl32.Vec4 {
	sampled := s.Texture.Sample(v.TexCoords.X(), v.TexCoords.Y())
	base := mulComponents(sampled, s.BaseColorFactor)

	// Alpha is scaled along with the color channels here.
	ambient := base.Mul(AmbientFactor)

	lightDir := s.LightPosition.Sub(v.WorldPos).Normalize()
	normal := v.Normal.Normalize()
	diff := max(normal.Dot(lightDir), 0)
	diffuse := mgl32.Vec4{base.X() * diff, base.Y() * diff, base.Z() * diff, 1.0}

	return ambient.Add(diffuse)
}

// mulComponents multiplies two vectors component-wise.
func mulComponents(a, b mgl32.Vec4) mgl32.Vec4 {
	return mgl32.Vec4{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z(), a.W() * b.W()}
}
