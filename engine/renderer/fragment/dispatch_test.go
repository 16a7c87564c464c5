package fragment

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/shadeworks/fragpass-go/engine/renderer/texture"
)

// gradientVaryings tilts the normal across the target so every fragment gets
// a different diffuse intensity.
func gradientVaryings(width, height int) VaryingsFunc {
	return func(x, y int) Varyings {
		u := (float32(x) + 0.5) / float32(width)
		v := (float32(y) + 0.5) / float32(height)
		return Varyings{
			TexCoords: mgl32.Vec2{u, v},
			Normal:    mgl32.Vec3{u - 0.5, v - 0.5, 1},
			WorldPos:  mgl32.Vec3{u, v, 0},
		}
	}
}

func TestDispatchParallelMatchesSerial(t *testing.T) {
	const width, height = 64, 48

	shader := NewTexturedLitShader(
		mgl32.Vec4{1, 0.8, 0.6, 1},
		mgl32.Vec3{0.5, 0.5, 2},
		texture.NewSolid(mgl32.Vec4{1, 1, 1, 1}),
	)
	varyings := gradientVaryings(width, height)

	serial, err := NewFramebuffer(width, height)
	if err != nil {
		t.Fatalf("failed to create framebuffer: %v", err)
	}
	parallel, err := NewFramebuffer(width, height)
	if err != nil {
		t.Fatalf("failed to create framebuffer: %v", err)
	}

	NewDispatcher(WithWorkers(1)).Dispatch(serial, shader, varyings)
	NewDispatcher(WithWorkers(4)).Dispatch(parallel, shader, varyings)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if serial.At(x, y) != parallel.At(x, y) {
				t.Fatalf("pixel (%d, %d) differs: serial %v, parallel %v", x, y, serial.At(x, y), parallel.At(x, y))
			}
		}
	}
}

func TestDispatchFragmentIndependence(t *testing.T) {
	const width, height = 8, 8

	fb, err := NewFramebuffer(width, height)
	if err != nil {
		t.Fatalf("failed to create framebuffer: %v", err)
	}

	// Each fragment's output depends only on its own varyings: re-evaluating
	// any single fragment in isolation must reproduce the dispatched value.
	shader := NewTexturedLitShader(
		mgl32.Vec4{1, 1, 1, 1},
		mgl32.Vec3{0, 0, 3},
		texture.NewSolid(mgl32.Vec4{0.5, 0.5, 0.5, 1}),
	)
	varyings := gradientVaryings(width, height)

	NewDispatcher(WithWorkers(3)).Dispatch(fb, shader, varyings)

	for _, p := range [][2]int{{0, 0}, {7, 0}, {3, 4}, {7, 7}} {
		want := shader.Fragment(varyings(p[0], p[1]))
		if got := fb.At(p[0], p[1]); got != want {
			t.Errorf("pixel %v = %v, want the isolated evaluation %v", p, got, want)
		}
	}
}

func TestDispatchUnlitFillsTarget(t *testing.T) {
	fb, err := NewFramebuffer(16, 16)
	if err != nil {
		t.Fatalf("failed to create framebuffer: %v", err)
	}

	factor := mgl32.Vec4{0.1, 0.2, 0.3, 0.4}
	NewDispatcher().Dispatch(fb, NewUnlitColorShader(factor), func(x, y int) Varyings {
		return Varyings{}
	})

	for i, pixel := range fb.Pixels() {
		if pixel != factor {
			t.Fatalf("pixel %d = %v, want %v everywhere", i, pixel, factor)
		}
	}
}

func TestFramebufferBytes(t *testing.T) {
	fb, err := NewFramebuffer(2, 1)
	if err != nil {
		t.Fatalf("failed to create framebuffer: %v", err)
	}
	fb.Set(0, 0, mgl32.Vec4{1, 2, 3, 4})

	raw := fb.Bytes()
	if len(raw) != 2*16 {
		t.Errorf("byte view is %d bytes, want 32 (two RGBA float pixels)", len(raw))
	}

	if _, err := NewFramebuffer(0, 4); err == nil {
		t.Error("zero-width framebuffer should fail")
	}
}
