package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// UniformCache caches uniform locations so the per-frame uniform uploads
// skip the repeated gl.GetUniformLocation round trips. The ocean shader
// uploads five arrays plus time every frame, which makes this worthwhile.
type UniformCache struct {
	locations map[string]int32
	program   uint32
}

// NewUniformCache creates a new uniform cache for a shader program.
func NewUniformCache(program uint32) *UniformCache {
	return &UniformCache{
		locations: make(map[string]int32),
		program:   program,
	}
}

// GetLocation returns the cached uniform location or fetches and caches it.
// Missing uniforms cache as -1, so optimized-out uniforms cost one lookup.
func (uc *UniformCache) GetLocation(name string) int32 {
	if loc, exists := uc.locations[name]; exists {
		return loc
	}

	loc := gl.GetUniformLocation(uc.program, gl.Str(name+"\x00"))
	uc.locations[name] = loc
	return loc
}

func (uc *UniformCache) SetFloat(name string, value float32) {
	loc := uc.GetLocation(name)
	if loc != -1 {
		gl.Uniform1f(loc, value)
	}
}

func (uc *UniformCache) SetVec2(name string, x, y float32) {
	loc := uc.GetLocation(name)
	if loc != -1 {
		gl.Uniform2f(loc, x, y)
	}
}

func (uc *UniformCache) SetVec3(name string, x, y, z float32) {
	loc := uc.GetLocation(name)
	if loc != -1 {
		gl.Uniform3f(loc, x, y, z)
	}
}

func (uc *UniformCache) SetInt(name string, value int32) {
	loc := uc.GetLocation(name)
	if loc != -1 {
		gl.Uniform1i(loc, value)
	}
}

func (uc *UniformCache) SetMat4(name string, value mgl32.Mat4) {
	loc := uc.GetLocation(name)
	if loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &value[0])
	}
}

// SetFloatArray uploads a float array uniform such as waveAmplitudes[N].
func (uc *UniformCache) SetFloatArray(name string, values []float32) {
	loc := uc.GetLocation(name)
	if loc != -1 && len(values) > 0 {
		gl.Uniform1fv(loc, int32(len(values)), &values[0])
	}
}

// SetVec2Array uploads a vec2 array uniform from a flat xyxy... slice.
func (uc *UniformCache) SetVec2Array(name string, values []float32) {
	loc := uc.GetLocation(name)
	if loc != -1 && len(values) > 0 {
		gl.Uniform2fv(loc, int32(len(values)/2), &values[0])
	}
}

// Clear clears the cache. Call when the shader program is recompiled.
func (uc *UniformCache) Clear() {
	uc.locations = make(map[string]int32)
}
