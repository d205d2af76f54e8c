package scene

// Globe shader: Lambert term against the sun position blends the night side
// into the day side, which draws the terminator without any textures.
const globeVertexShader = `
#version 410 core

layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uViewProj;

out vec3 vNormal;
out vec3 vWorldPos;

void main() {
	vec4 world = uModel * vec4(aPosition, 1.0);
	vWorldPos = world.xyz;
	vNormal = mat3(uModel) * aNormal;
	gl_Position = uViewProj * world;
}
`

const globeFragmentShader = `
#version 410 core

in vec3 vNormal;
in vec3 vWorldPos;

uniform vec3 uLightPos;
uniform vec3 uDayColor;
uniform vec3 uNightColor;
uniform int uLit;

out vec4 fragColor;

void main() {
	if (uLit == 0) {
		fragColor = vec4(uDayColor, 1.0);
		return;
	}
	vec3 n = normalize(vNormal);
	vec3 l = normalize(uLightPos - vWorldPos);
	float day = smoothstep(-0.05, 0.15, dot(n, l));
	fragColor = vec4(mix(uNightColor, uDayColor, day), 1.0);
}
`
