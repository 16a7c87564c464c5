package shader

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// versionRegex matches the #version directive and captures the number
	versionRegex = regexp.MustCompile(`#version\s+(\d+)`)

	// uniformBlockRegex matches std140 uniform block declarations and captures
	// binding, block name, and body
	uniformBlockRegex = regexp.MustCompile(`layout\s*\(\s*std140\s*,\s*binding\s*=\s*(\d+)\s*\)\s*uniform\s+(\w+)\s*\{([^}]*)\}`)

	// samplerRegex matches opaque sampler uniform declarations and captures type and name
	samplerRegex = regexp.MustCompile(`uniform\s+(sampler\w+)\s+(\w+)\s*;`)

	// interfaceBlockRegex matches stage in/out interface blocks and captures
	// direction, block name, body, and optional instance name
	interfaceBlockRegex = regexp.MustCompile(`\b(in|out)\s+(\w+)\s*\{([^}]*)\}\s*(\w*)\s*;`)

	// blockMemberRegex matches one "type name;" field inside a block body
	blockMemberRegex = regexp.MustCompile(`(\w+)\s+(\w+)\s*;`)

	// mainRegex matches the mandatory entry point
	mainRegex = regexp.MustCompile(`void\s+main\s*\(`)
)

// parseVersion extracts the #version directive's number from GLSL source.
// Returns 0 when the directive is missing.
//
// Parameters:
//   - source: the raw GLSL source code string
//
// Returns:
//   - int: the GLSL version number, or 0 if not declared
func parseVersion(source string) int {
	m := versionRegex.FindStringSubmatch(source)
	if m == nil {
		return 0
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return v
}

// parseBlockMembers extracts the ordered field list from a block body.
//
// Parameters:
//   - body: the text between the block's braces
//
// Returns:
//   - []BlockMember: the fields in declaration order
func parseBlockMembers(body string) []BlockMember {
	var members []BlockMember
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		m := blockMemberRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		members = append(members, BlockMember{Name: m[2], Type: m[1]})
	}
	return members
}

// parseUniformBlocks extracts all std140 uniform block declarations from GLSL
// source, keyed by binding slot.
//
// Parameters:
//   - source: the raw GLSL source code string
//
// Returns:
//   - map[int]UniformBlock: blocks keyed by binding slot
func parseUniformBlocks(source string) map[int]UniformBlock {
	blocks := make(map[int]UniformBlock)
	for _, m := range uniformBlockRegex.FindAllStringSubmatch(source, -1) {
		binding, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		blocks[binding] = UniformBlock{
			Name:    m[2],
			Binding: binding,
			Members: parseBlockMembers(m[3]),
		}
	}
	return blocks
}

// parseSamplers extracts all opaque sampler uniform declarations from GLSL source.
//
// Parameters:
//   - source: the raw GLSL source code string
//
// Returns:
//   - []SamplerDecl: the sampler declarations in source order
func parseSamplers(source string) []SamplerDecl {
	var samplers []SamplerDecl
	for _, m := range samplerRegex.FindAllStringSubmatch(source, -1) {
		samplers = append(samplers, SamplerDecl{Name: m[2], Type: m[1]})
	}
	return samplers
}

// parseInterfaceBlocks extracts the stage's in and out interface blocks from
// GLSL source. Plain in/out variables (vertex attributes, the fragment color
// output) have no braces and are not interface blocks.
//
// Parameters:
//   - source: the raw GLSL source code string
//
// Returns:
//   - *InterfaceBlock: the stage's in block, or nil
//   - *InterfaceBlock: the stage's out block, or nil
func parseInterfaceBlocks(source string) (in, out *InterfaceBlock) {
	for _, m := range interfaceBlockRegex.FindAllStringSubmatch(source, -1) {
		block := &InterfaceBlock{
			BlockName:    m[2],
			InstanceName: m[4],
			Members:      parseBlockMembers(m[3]),
		}
		switch m[1] {
		case "in":
			in = block
		case "out":
			out = block
		}
	}
	return in, out
}

// hasMain reports whether the source declares the mandatory void main() entry point.
//
// Parameters:
//   - source: the raw GLSL source code string
//
// Returns:
//   - bool: true when an entry point is present
func hasMain(source string) bool {
	return mainRegex.MatchString(source)
}
