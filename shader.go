package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	spriteVertexShaderSource = `
		#version 410
		in vec2 pos;
		uniform mat4 projection;
		uniform float pointSize;
		void main() {
			gl_Position = projection * vec4(pos, 0.0, 1.0);
			gl_PointSize = pointSize;
		}
	` + "\x00"

	spriteFragmentShaderSource = `
		#version 410
		uniform sampler2D sprite;
		out vec4 frag_colour;
		void main() {
			frag_colour = texture(sprite, gl_PointCoord);
		}
	` + "\x00"

	overlayVertexShaderSource = `
		#version 410
		in vec2 vp;
		in vec2 uv;
		uniform mat4 projection;
		out vec2 frag_uv;
		void main() {
			frag_uv = uv;
			gl_Position = projection * vec4(vp, 0.0, 1.0);
		}
	` + "\x00"

	overlayFragmentShaderSource = `
		#version 410
		in vec2 frag_uv;
		uniform sampler2D overlay;
		out vec4 frag_colour;
		void main() {
			frag_colour = texture(overlay, frag_uv);
		}
	` + "\x00"
)

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
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

		return 0, fmt.Errorf("failed to compile %v: %v", source, log)
	}

	return shader, nil
}
