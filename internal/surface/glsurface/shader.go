package glsurface

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const vertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;

uniform mat4 uMVP;
uniform mat4 uModelView;

out vec3 vNormal;

void main() {
    vNormal = mat3(uModelView) * aNormal;
    gl_Position = uMVP * vec4(aPos, 1.0);
}
`

const fragmentShader = `#version 410 core
in vec3 vNormal;

uniform vec4 uColor;
uniform bool uLit;
uniform vec3 uLightDir;
uniform float uAmbient;
uniform float uDiffuse;

out vec4 FragColor;

void main() {
    vec3 c = uColor.rgb;
    if (uLit) {
        float k = uAmbient;
        // Degenerate triangles carry a zero normal.
        if (length(vNormal) > 0.0) {
            k = min(1.0, k + uDiffuse * abs(dot(normalize(vNormal), uLightDir)));
        }
        c *= k;
    }
    FragColor = vec4(c, uColor.a);
}
`

// compileProgram compiles vertex and fragment shaders and links them into a program.
func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", string(log))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, string(log))
	}

	return shader, nil
}

// uniforms holds the locations used by the surface program.
type uniforms struct {
	mvp, modelView   int32
	color, lit       int32
	lightDir         int32
	ambient, diffuse int32
}

func lookupUniforms(program uint32) (uniforms, error) {
	var u uniforms
	for name, dst := range map[string]*int32{
		"uMVP":       &u.mvp,
		"uModelView": &u.modelView,
		"uColor":     &u.color,
		"uLit":       &u.lit,
		"uLightDir":  &u.lightDir,
		"uAmbient":   &u.ambient,
		"uDiffuse":   &u.diffuse,
	} {
		loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
		if loc < 0 {
			return u, fmt.Errorf("uniform %q not found in program %d", name, program)
		}
		*dst = loc
	}
	return u, nil
}
