// package fragment evaluates the two fragment programs on the CPU: the unlit
// color program and the single-point-light textured lit program. Each
// invocation is a pure function of its interpolated varyings and externally
// bound uniform and texture state; invocations share no mutable state and may
// run in any order or in parallel.
package fragment

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Varyings is the vertex-stage output interface consumed by a fragment
// invocation: the values the rasterizer interpolates across a primitive.
// The unlit color program ignores all of them; the textured lit program reads
// all three.
type Varyings struct {
	// TexCoords are the interpolated 2D texture coordinates.
	TexCoords mgl32.Vec2

	// Normal is the interpolated surface normal. Not guaranteed unit-length
	// after interpolation; shading renormalizes it.
	Normal mgl32.Vec3

	// WorldPos is the interpolated world-space fragment position.
	WorldPos mgl32.Vec3
}
