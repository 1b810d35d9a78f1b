package visualizer

import (
	"errors"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// compileShader compiles one stage and returns the driver's info log as the
// error on failure.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, errors.New(strings.TrimSpace(strings.TrimRight(log, "\x00")))
	}
	return shader, nil
}

// newProgram compiles both stages and links the quad program.
func newProgram(vertSource, fragSource string) (uint32, error) {
	vert, err := compileShader(vertSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, &Error{Op: "compile vertex shader", Kind: ErrShaderCompile, Err: err}
	}
	frag, err := compileShader(fragSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return 0, &Error{Op: "compile fragment shader", Kind: ErrShaderCompile, Err: err}
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, &Error{
			Op:   "link program",
			Kind: ErrShaderCompile,
			Err:  errors.New(strings.TrimSpace(strings.TrimRight(log, "\x00"))),
		}
	}
	return program, nil
}
