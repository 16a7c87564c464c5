package light

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/shadeworks/fragpass-go/common"
)

func TestGPULightingSize(t *testing.T) {
	g := GPULighting{}
	if g.Size() != 16 {
		t.Errorf("GPULighting size = %d, want 16 (std140 vec3 occupies a full 16-byte slot)", g.Size())
	}
}

func TestGPULightingMarshalLayout(t *testing.T) {
	g := GPULighting{LightPosition: [3]float32{1.5, -2.0, 3.25}}
	buf := g.Marshal()

	if len(buf) != 16 {
		t.Fatalf("marshaled buffer is %d bytes, want 16", len(buf))
	}

	for i, want := range g.LightPosition {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4 : (i+1)*4]))
		if got != want {
			t.Errorf("component %d = %v, want %v", i, got, want)
		}
	}

	// The std140 padding float must be present and zeroed.
	if pad := binary.LittleEndian.Uint32(buf[12:16]); pad != 0 {
		t.Errorf("padding bytes 12..16 = 0x%X, want zero", pad)
	}
}

func TestGPULightingMarshalMatchesNativeLayout(t *testing.T) {
	// The Go struct layout must coincide with the marshaled std140 layout on
	// little-endian hosts, otherwise the padding field is misplaced.
	g := GPULighting{LightPosition: [3]float32{4, 5, 6}}
	native := common.StructToBytes(&g)
	marshaled := g.Marshal()

	if len(native) != len(marshaled) {
		t.Fatalf("native layout is %d bytes, marshaled is %d", len(native), len(marshaled))
	}
	for i := range native {
		if native[i] != marshaled[i] {
			t.Errorf("byte %d differs: native 0x%X, marshaled 0x%X", i, native[i], marshaled[i])
		}
	}
}

func TestGPULightingUnmarshalRoundTrip(t *testing.T) {
	in := GPULighting{LightPosition: [3]float32{-7, 0.5, 12}}

	var out GPULighting
	if err := out.Unmarshal(in.Marshal()); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if out.LightPosition != in.LightPosition {
		t.Errorf("round trip position = %v, want %v", out.LightPosition, in.LightPosition)
	}

	if err := out.Unmarshal(make([]byte, 8)); err == nil {
		t.Error("unmarshal of a short buffer should fail")
	}
}

func TestToGPULighting(t *testing.T) {
	l := NewLight(WithName("key"), WithPosition(1, 2, 3))
	g := ToGPULighting(l)
	if g.LightPosition != [3]float32{1, 2, 3} {
		t.Errorf("position = %v, want (1, 2, 3)", g.LightPosition)
	}
}

func TestLightBuilderDefaults(t *testing.T) {
	l := NewLight()
	if !l.Enabled() {
		t.Error("lights should default to enabled")
	}
	if l.Position() != [3]float32{0, 0, 0} {
		t.Errorf("default position = %v, want origin", l.Position())
	}

	l.SetPosition(9, 8, 7)
	if l.Position() != [3]float32{9, 8, 7} {
		t.Errorf("position after SetPosition = %v, want (9, 8, 7)", l.Position())
	}
	l.SetEnabled(false)
	if l.Enabled() {
		t.Error("light should be disabled after SetEnabled(false)")
	}
}
