package renderer

// GLSL sources for the three surface types. The ocean vertex shader carries
// the same Gerstner sum the CPU sampler evaluates, term for term, so buoyancy
// queries land on the rendered surface.

const maxShaderWaves = 16

var oceanVertexShaderSource = `#version 330 core

layout(location = 0) in vec3 inPosition; // Flat grid position
layout(location = 1) in vec2 inTexCoord;

uniform mat4 model;
uniform mat4 viewProjection;
uniform float time;

// Gerstner wave parameters
uniform int waveCount;
uniform vec2 waveDirections[16];
uniform float waveAmplitudes[16];
uniform float waveFrequencies[16];
uniform float wavePhases[16];
uniform float waveSteepness[16];

out vec2 fragTexCoord;
out vec3 fragNormal;
out vec3 fragPosition;

void main() {
    vec3 position = inPosition;
    vec3 displacement = vec3(0.0);
    vec3 tangent = vec3(1.0, 0.0, 0.0);
    vec3 binormal = vec3(0.0, 0.0, 1.0);

    for (int i = 0; i < waveCount; i++) {
        vec2 d = waveDirections[i];
        float a = waveAmplitudes[i];
        float f = waveFrequencies[i];

        float c = sqrt(9.81 / f);
        float theta = dot(d, inPosition.xz) * f + time * c + wavePhases[i];
        float s = sin(theta);
        float co = cos(theta);
        float q = waveSteepness[i] / (f * a * float(waveCount));

        displacement.x += q * a * d.x * co;
        displacement.y += a * s;
        displacement.z += q * a * d.y * co;

        tangent += vec3(-d.x * d.x * q * a * f * s, d.x * a * f * co, -d.x * d.y * q * a * f * s);
        binormal += vec3(-d.x * d.y * q * a * f * s, d.y * a * f * co, -d.y * d.y * q * a * f * s);
    }

    position += displacement;

    fragPosition = vec3(model * vec4(position, 1.0));
    fragNormal = normalize(mat3(model) * normalize(cross(binormal, tangent)));
    fragTexCoord = inTexCoord;

    gl_Position = viewProjection * vec4(fragPosition, 1.0);
}
` + "\x00"

var oceanFragmentShaderSource = `#version 330 core

in vec2 fragTexCoord;
in vec3 fragNormal;
in vec3 fragPosition;

uniform vec3 lightDirection;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform vec3 viewPos;
uniform vec3 deepColor;
uniform vec3 shallowColor;
uniform vec3 skyColor;

out vec4 FragColor;

void main() {
    vec3 norm = normalize(fragNormal);
    vec3 lightDir = normalize(-lightDirection);
    vec3 viewDir = normalize(viewPos - fragPosition);

    float diff = max(dot(norm, lightDir), 0.0);
    vec3 reflectDir = reflect(-lightDir, norm);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), 64.0);

    // Blend water color by wave height and add a Fresnel sky reflection.
    float heightBlend = clamp(fragPosition.y * 0.25 + 0.5, 0.0, 1.0);
    vec3 waterColor = mix(deepColor, shallowColor, heightBlend);
    float fresnel = pow(1.0 - max(dot(viewDir, norm), 0.0), 3.0);

    vec3 color = waterColor * (0.15 + diff * lightIntensity) * lightColor;
    color += spec * lightColor * lightIntensity;
    color = mix(color, skyColor, fresnel * 0.6);

    FragColor = vec4(color, 1.0);
}
` + "\x00"

var spectralVertexShaderSource = `#version 330 core

layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec2 inTexCoord;

uniform mat4 model;
uniform mat4 viewProjection;
uniform sampler2D heightMap;       // R32F
uniform sampler2D displacementMap; // RG32F
uniform bool choppinessEnabled;

out vec2 fragTexCoord;
out vec3 fragPosition;

void main() {
    vec3 position = inPosition;
    position.y += texture(heightMap, inTexCoord).r;
    if (choppinessEnabled) {
        vec2 d = texture(displacementMap, inTexCoord).rg;
        position.x += d.x;
        position.z += d.y;
    }

    fragPosition = vec3(model * vec4(position, 1.0));
    fragTexCoord = inTexCoord;

    gl_Position = viewProjection * vec4(fragPosition, 1.0);
}
` + "\x00"

var spectralFragmentShaderSource = `#version 330 core

in vec2 fragTexCoord;
in vec3 fragPosition;

uniform sampler2D normalMap; // RGB32F
uniform sampler2D foamMap;   // R32F
uniform vec3 lightDirection;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform vec3 viewPos;
uniform vec3 deepColor;
uniform vec3 skyColor;

out vec4 FragColor;

void main() {
    vec3 norm = normalize(texture(normalMap, fragTexCoord).rgb);
    vec3 lightDir = normalize(-lightDirection);
    vec3 viewDir = normalize(viewPos - fragPosition);

    float diff = max(dot(norm, lightDir), 0.0);
    vec3 reflectDir = reflect(-lightDir, norm);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), 64.0);
    float fresnel = pow(1.0 - max(dot(viewDir, norm), 0.0), 3.0);

    vec3 color = deepColor * (0.15 + diff * lightIntensity) * lightColor;
    color += spec * lightColor * lightIntensity;
    color = mix(color, skyColor, fresnel * 0.6);

    // Folded crests whiten with foam.
    float foam = clamp(texture(foamMap, fragTexCoord).r, 0.0, 1.0);
    color = mix(color, vec3(1.0), foam);

    FragColor = vec4(color, 1.0);
}
` + "\x00"

var skyVertexShaderSource = `#version 330 core

layout(location = 0) in vec3 inPosition;

uniform mat4 view;       // translation stripped by the caller
uniform mat4 projection;

out vec3 fragDirection;

void main() {
    fragDirection = inPosition;
    vec4 pos = projection * view * vec4(inPosition, 1.0);
    gl_Position = pos.xyww; // always at the far plane
}
` + "\x00"

var skyFragmentShaderSource = `#version 330 core

in vec3 fragDirection;

uniform sampler2D weatherMap; // coverage, type, density
uniform float time;
uniform float cloudCoverage;
uniform vec3 windDirection;
uniform float cloudSpeed;
uniform vec3 lightDirection;
uniform vec3 lightColor;
uniform vec3 skyColor;
uniform vec3 horizonColor;

out vec4 FragColor;

void main() {
    vec3 dir = normalize(fragDirection);

    // Gradient sky, clouds only above the horizon.
    float horizon = clamp(dir.y, 0.0, 1.0);
    vec3 sky = mix(horizonColor, skyColor, pow(horizon, 0.5));

    if (dir.y > 0.02) {
        // Project the view ray onto the cloud plane and scroll with the wind.
        vec2 uv = dir.xz / (dir.y + 0.1);
        uv = uv * 0.25 + windDirection.xz * time * cloudSpeed * 0.002;
        float coverage = texture(weatherMap, fract(uv)).r;
        float cloud = smoothstep(1.0 - cloudCoverage, 1.0, coverage);

        float lit = max(dot(vec3(0.0, 1.0, 0.0), -lightDirection), 0.3);
        vec3 cloudColor = lightColor * lit;
        sky = mix(sky, cloudColor, cloud * smoothstep(0.02, 0.2, dir.y));
    }

    FragColor = vec4(sky, 1.0);
}
` + "\x00"

func InitOceanShader() Shader {
	return Shader{
		vertexSource:   oceanVertexShaderSource,
		fragmentSource: oceanFragmentShaderSource,
	}
}

func InitSpectralShader() Shader {
	return Shader{
		vertexSource:   spectralVertexShaderSource,
		fragmentSource: spectralFragmentShaderSource,
	}
}

func InitSkyShader() Shader {
	return Shader{
		vertexSource:   skyVertexShaderSource,
		fragmentSource: skyFragmentShaderSource,
	}
}
