package shader

import (
	"testing"
)

func TestParseUnlitColorFragment(t *testing.T) {
	s := NewShader("unlit_color.frag", ShaderTypeFragment, UnlitColorFragmentSource)

	if s.Version() != 460 {
		t.Errorf("version = %d, want 460", s.Version())
	}

	block, ok := s.UniformBlock(4)
	if !ok {
		t.Fatal("no uniform block parsed at binding 4")
	}
	if block.Name != "Material" {
		t.Errorf("block name = %q, want %q", block.Name, "Material")
	}
	if len(block.Members) != 1 || block.Members[0] != (BlockMember{Name: "baseColorFactor", Type: "vec4"}) {
		t.Errorf("block members = %v, want one vec4 baseColorFactor", block.Members)
	}

	if got := len(s.Samplers()); got != 0 {
		t.Errorf("unlit fragment declares %d samplers, want 0", got)
	}

	in := s.InBlock()
	if in == nil {
		t.Fatal("no input interface block parsed")
	}
	if in.BlockName != "VsOut" || in.InstanceName != "vsOut" {
		t.Errorf("input block = %s/%s, want VsOut/vsOut", in.BlockName, in.InstanceName)
	}
	if len(in.Members) != 1 || in.Members[0].Name != "texCoords" {
		t.Errorf("input block members = %v, want only texCoords", in.Members)
	}

	// "out vec4 fragColor;" is a plain output, not an interface block.
	if s.OutBlock() != nil {
		t.Errorf("fragment stage parsed an output interface block: %+v", s.OutBlock())
	}
}

func TestParseTexturedLitFragment(t *testing.T) {
	s := NewShader("textured_lit.frag", ShaderTypeFragment, TexturedLitFragmentSource)

	material, ok := s.UniformBlock(4)
	if !ok || material.Name != "Material" {
		t.Errorf("binding 4 = %+v (ok=%v), want Material block", material, ok)
	}
	lighting, ok := s.UniformBlock(5)
	if !ok || lighting.Name != "Lighting" {
		t.Fatalf("binding 5 = %+v (ok=%v), want Lighting block", lighting, ok)
	}
	if len(lighting.Members) != 1 || lighting.Members[0] != (BlockMember{Name: "lightPos", Type: "vec3"}) {
		t.Errorf("Lighting members = %v, want one vec3 lightPos", lighting.Members)
	}

	samplers := s.Samplers()
	if len(samplers) != 1 {
		t.Fatalf("parsed %d samplers, want 1", len(samplers))
	}
	if samplers[0] != (SamplerDecl{Name: "baseColorTexture", Type: "sampler2D"}) {
		t.Errorf("sampler = %+v, want sampler2D baseColorTexture", samplers[0])
	}

	in := s.InBlock()
	if in == nil {
		t.Fatal("no input interface block parsed")
	}
	wantMembers := []BlockMember{
		{Name: "texCoords", Type: "vec2"},
		{Name: "normal", Type: "vec3"},
		{Name: "worldPos", Type: "vec3"},
	}
	if len(in.Members) != len(wantMembers) {
		t.Fatalf("input block has %d members, want %d", len(in.Members), len(wantMembers))
	}
	for i, want := range wantMembers {
		if in.Members[i] != want {
			t.Errorf("input member %d = %+v, want %+v", i, in.Members[i], want)
		}
	}
}

func TestParseVertexStages(t *testing.T) {
	unlit := NewShader("unlit_color.vert", ShaderTypeVertex, UnlitColorVertexSource)
	lit := NewShader("textured_lit.vert", ShaderTypeVertex, TexturedLitVertexSource)

	// Plain mat4 uniforms are not std140 blocks and must not be picked up.
	if got := len(unlit.UniformBlocks()); got != 0 {
		t.Errorf("unlit vertex stage parsed %d uniform blocks, want 0", got)
	}

	out := lit.OutBlock()
	if out == nil {
		t.Fatal("textured lit vertex stage has no output interface block")
	}
	if out.BlockName != "VsOut" || len(out.Members) != 3 {
		t.Errorf("output block = %s with %d members, want VsOut with 3", out.BlockName, len(out.Members))
	}
	if lit.InBlock() != nil {
		t.Errorf("vertex attributes were parsed as an input interface block: %+v", lit.InBlock())
	}
}

func TestStd140Sizes(t *testing.T) {
	tests := []struct {
		name    string
		members []BlockMember
		want    int
	}{
		{"one vec4", []BlockMember{{"baseColorFactor", "vec4"}}, 16},
		{"one vec3 pads to 16", []BlockMember{{"lightPos", "vec3"}}, 16},
		{"vec3 then float packs", []BlockMember{{"pos", "vec3"}, {"intensity", "float"}}, 16},
		{"float then vec3 aligns", []BlockMember{{"intensity", "float"}, {"pos", "vec3"}}, 32},
		{"mat4", []BlockMember{{"mvp", "mat4"}}, 64},
	}

	for _, tc := range tests {
		block := UniformBlock{Name: "T", Members: tc.members}
		got, ok := block.Std140Size()
		if !ok {
			t.Errorf("%s: sizing failed", tc.name)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: size = %d, want %d", tc.name, got, tc.want)
		}
	}

	unknown := UniformBlock{Name: "T", Members: []BlockMember{{"x", "dmat3"}}}
	if _, ok := unknown.Std140Size(); ok {
		t.Error("sizing an unknown type should report failure")
	}
}

func TestNewShaderPanics(t *testing.T) {
	assertPanics := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected a panic", name)
			}
		}()
		fn()
	}

	assertPanics("empty source", func() {
		NewShader("empty", ShaderTypeFragment, "")
	})
	assertPanics("missing entry point", func() {
		NewShader("no_main", ShaderTypeFragment, "#version 460 core\nout vec4 fragColor;\n")
	})
}
