package shader

import (
	"reflect"
	"testing"

	"github.com/shadeworks/fragpass-go/engine/light"
	"github.com/shadeworks/fragpass-go/engine/renderer/material"
)

// The light and material packages each embed a canonical GLSL declaration of
// their uniform block alongside the Go struct that marshals it. These tests
// pin all three views of the contract together: the canonical source, the
// block declared in the shipped fragment sources, and the Go struct's size.

func TestCanonicalMaterialBlock(t *testing.T) {
	canonical, ok := parseUniformBlocks(material.GPUMaterialFactorsSource)[material.MaterialBinding]
	if !ok {
		t.Fatalf("canonical material source declares no block at binding %d", material.MaterialBinding)
	}

	for _, source := range []string{UnlitColorFragmentSource, TexturedLitFragmentSource} {
		shipped, ok := parseUniformBlocks(source)[material.MaterialBinding]
		if !ok {
			t.Fatalf("fragment source declares no block at binding %d", material.MaterialBinding)
		}
		if canonical.Name != shipped.Name {
			t.Errorf("block name = %q, fragment source declares %q", canonical.Name, shipped.Name)
		}
		if !reflect.DeepEqual(canonical.Members, shipped.Members) {
			t.Errorf("block members = %v, fragment source declares %v", canonical.Members, shipped.Members)
		}
	}

	size, ok := canonical.Std140Size()
	if !ok {
		t.Fatal("canonical Material block contains a type std140 sizing does not cover")
	}
	if want := (&material.GPUMaterialFactors{}).Size(); size != want {
		t.Errorf("canonical Material block is %d bytes under std140, struct is %d", size, want)
	}
}

func TestCanonicalLightingBlock(t *testing.T) {
	canonical, ok := parseUniformBlocks(light.GPULightingSource)[light.LightingBinding]
	if !ok {
		t.Fatalf("canonical lighting source declares no block at binding %d", light.LightingBinding)
	}

	shipped, ok := parseUniformBlocks(TexturedLitFragmentSource)[light.LightingBinding]
	if !ok {
		t.Fatalf("lit fragment source declares no block at binding %d", light.LightingBinding)
	}
	if canonical.Name != shipped.Name {
		t.Errorf("block name = %q, fragment source declares %q", canonical.Name, shipped.Name)
	}
	if !reflect.DeepEqual(canonical.Members, shipped.Members) {
		t.Errorf("block members = %v, fragment source declares %v", canonical.Members, shipped.Members)
	}

	size, ok := canonical.Std140Size()
	if !ok {
		t.Fatal("canonical Lighting block contains a type std140 sizing does not cover")
	}
	if want := (&light.GPULighting{}).Size(); size != want {
		t.Errorf("canonical Lighting block is %d bytes under std140, struct is %d", size, want)
	}
}
