// Package shaders provides the embedded GLSL sources for the logo program.
package shaders

import _ "embed"

// LogoVertexShader transforms mesh positions by the model matrix.
//
//go:embed logo.vert
var LogoVertexShader string

// LogoFragmentShader outputs the interpolated vertex color.
//
//go:embed logo.frag
var LogoFragmentShader string

// Names shared by the logo shaders and the code binding them.
const (
	AttrPosition  = "aVertexPosition"
	AttrColor     = "aVertexColor"
	UniformMatrix = "uMVMatrix"
)
