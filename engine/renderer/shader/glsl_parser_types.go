package shader

// std140FieldInfo describes the std140 base alignment and byte size of a GLSL
// type appearing inside a uniform block.
type std140FieldInfo struct {
	align int
	size  int
}

// glslStd140Map maps the GLSL types these programs use to their std140 base
// alignment and size. Note that vec3 aligns to 16 bytes but occupies only 12,
// which is where the Lighting block's trailing padding float comes from.
var glslStd140Map = map[string]std140FieldInfo{
	"float": {4, 4},
	"int":   {4, 4},
	"uint":  {4, 4},
	"bool":  {4, 4},
	"vec2":  {8, 8},
	"vec3":  {16, 12},
	"vec4":  {16, 16},
	"mat4":  {16, 64},
}

// BlockMember is one field of a uniform or interface block.
type BlockMember struct {
	// Name is the member identifier as written in the source.
	Name string

	// Type is the GLSL type name (e.g. "vec4", "vec3", "vec2").
	Type string
}

// UniformBlock describes one std140 uniform block declaration recovered from
// GLSL source, e.g.:
//
//	layout (std140, binding = 4) uniform Material { vec4 baseColorFactor; };
type UniformBlock struct {
	// Name is the block name (e.g. "Material", "Lighting").
	Name string

	// Binding is the binding slot from the layout qualifier.
	Binding int

	// Members are the block's fields in declaration order.
	Members []BlockMember
}

// Std140Size computes the byte size of the block under std140 layout rules,
// rounded up to 16 bytes. This is the exact size of the buffer a host must
// bind at the block's slot.
//
// Returns:
//   - int: the std140 size of the block in bytes
//   - bool: false if the block contains a type the layout table does not cover
func (b UniformBlock) Std140Size() (int, bool) {
	offset := 0
	for _, m := range b.Members {
		info, ok := glslStd140Map[m.Type]
		if !ok {
			return 0, false
		}
		offset = alignUp(offset, info.align)
		offset += info.size
	}
	return alignUp(offset, 16), true
}

// SamplerDecl describes one opaque sampler uniform recovered from GLSL source,
// e.g. "uniform sampler2D baseColorTexture;". Samplers have no binding slot in
// these programs; the host binds the texture at a unit of its choosing.
type SamplerDecl struct {
	// Name is the sampler variable name.
	Name string

	// Type is the sampler type (e.g. "sampler2D").
	Type string
}

// InterfaceBlock describes a stage in/out interface block, e.g.:
//
//	out VsOut { vec2 texCoords; vec3 normal; vec3 worldPos; } vsOut;
//
// The vertex stage's out block and the fragment stage's in block must match
// by block name and member list for the program to link.
type InterfaceBlock struct {
	// BlockName is the interface block's type name (e.g. "VsOut").
	BlockName string

	// InstanceName is the optional instance name following the closing brace.
	InstanceName string

	// Members are the block's fields in declaration order.
	Members []BlockMember
}

// Matches reports whether two interface blocks describe the same stage
// interface: same block name and identical member names and types in order.
// Instance names are allowed to differ, mirroring GLSL linkage rules.
//
// Parameters:
//   - other: the interface block to compare against
//
// Returns:
//   - bool: true when the blocks form a valid stage interface pair
func (b InterfaceBlock) Matches(other InterfaceBlock) bool {
	if b.BlockName != other.BlockName || len(b.Members) != len(other.Members) {
		return false
	}
	for i, m := range b.Members {
		if m != other.Members[i] {
			return false
		}
	}
	return true
}

// alignUp rounds n up to the next multiple of align.
func alignUp(n, align int) int {
	return (n + align - 1) / align * align
}
