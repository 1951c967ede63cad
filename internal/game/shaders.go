package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Quad vertex shader: textured, tinted quads. World sprites pass the camera
// scroll as uOrigin and the viewport as uResolution; screen text passes zero
// and the framebuffer size.
const quadVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uOrigin;
uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 ndc = ((aPos - uOrigin) / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// Quad fragment shader: atlas sampling with colour tint.
const quadFragSrc = `#version 410 core

uniform sampler2D uTex;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    vec4 t = texture(uTex, vUV);
    float a = t.a * vColor.a;
    if (a < 0.01) discard;
    FragColor = vec4(t.rgb * vColor.rgb, a);
}
` + "\x00"

// Post vertex shader: full-screen unit quad.
const postVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos; // 0..1 quad vertex

out vec2 vUV;

void main() {
    vUV = aPos;
    gl_Position = vec4(aPos * 2.0 - 1.0, 0.0, 1.0);
}
` + "\x00"

// Post fragment shader: one pass of the filter chain. uSize is the viewport
// in game pixels so every effect scales with the window.
const postFragSrc = `#version 410 core

uniform sampler2D uTex;
uniform int uMode;     // 0 copy, 1 pixelate, 2 barrel, 3 blur
uniform float uAmount;
uniform vec2 uSize;

in vec2 vUV;
out vec4 FragColor;

vec4 pixelate(vec2 uv) {
    vec2 cell = vec2(floor(2.0 + uAmount)) / uSize;
    return texture(uTex, (floor(uv / cell) + 0.5) * cell);
}

vec4 barrel(vec2 uv) {
    vec2 xy = uv * 2.0 - 1.0;
    float r = length(xy);
    if (r < 1.0) {
        float theta = atan(xy.y, xy.x);
        r = pow(r, uAmount);
        uv = (vec2(cos(theta), sin(theta)) * r + 1.0) * 0.5;
    }
    return texture(uTex, uv);
}

vec4 blur(vec2 uv) {
    vec2 d = uAmount / uSize;
    vec4 sum = texture(uTex, uv) * 0.25;
    sum += (texture(uTex, uv + vec2(d.x, 0.0)) +
            texture(uTex, uv - vec2(d.x, 0.0)) +
            texture(uTex, uv + vec2(0.0, d.y)) +
            texture(uTex, uv - vec2(0.0, d.y))) * 0.125;
    sum += (texture(uTex, uv + d) +
            texture(uTex, uv - d) +
            texture(uTex, uv + vec2(d.x, -d.y)) +
            texture(uTex, uv + vec2(-d.x, d.y))) * 0.0625;
    return sum;
}

void main() {
    if (uMode == 1) {
        FragColor = pixelate(vUV);
    } else if (uMode == 2) {
        FragColor = barrel(vUV);
    } else if (uMode == 3) {
        FragColor = blur(vUV);
    } else {
        FragColor = texture(uTex, vUV);
    }
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
