package renderer

import (
	"fmt"

	"Tidal3D/internal/logger"
	"Tidal3D/internal/ocean"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Debug draws everything in wireframe when set before Init.
var Debug = false

// OceanRenderer draws a Gerstner ocean: the grid is uploaded once and stays
// flat on the GPU, displacement happens in the vertex shader from the wave
// uniforms. The wave math lives in the ocean package; this type owns only GL
// state.
type OceanRenderer struct {
	shader     Shader
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	Model        mgl32.Mat4
	DeepColor    mgl32.Vec3
	ShallowColor mgl32.Vec3
	SkyColor     mgl32.Vec3
}

func NewOceanRenderer() *OceanRenderer {
	return &OceanRenderer{
		Model:        mgl32.Ident4(),
		DeepColor:    mgl32.Vec3{0.0, 0.15, 0.35},
		ShallowColor: mgl32.Vec3{0.1, 0.45, 0.55},
		SkyColor:     mgl32.Vec3{0.5, 0.7, 1.0},
	}
}

// Init compiles the ocean shader and uploads the static grid.
func (rend *OceanRenderer) Init(mesh *ocean.GridMesh) error {
	rend.shader = InitOceanShader()
	if err := rend.shader.Compile(); err != nil {
		return err
	}
	rend.uploadGrid(mesh)

	logger.Log.Info("Ocean renderer initialized",
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()))
	return nil
}

// SetMesh replaces the grid buffers after a resolution or size change.
func (rend *OceanRenderer) SetMesh(mesh *ocean.GridMesh) {
	rend.destroyBuffers()
	rend.uploadGrid(mesh)
}

func (rend *OceanRenderer) uploadGrid(mesh *ocean.GridMesh) {
	data := mesh.Interleaved()

	gl.GenVertexArrays(1, &rend.vao)
	gl.BindVertexArray(rend.vao)

	gl.GenBuffers(1, &rend.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, rend.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenBuffers(1, &rend.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, rend.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	// Position + UV, 5 floats per vertex.
	stride := int32(5 * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	rend.indexCount = int32(len(mesh.Indices))
}

// Render draws one frame from the flattened wave uniforms.
func (rend *OceanRenderer) Render(camera *Camera, light *Light, uniforms ocean.WaveUniforms) error {
	if int(uniforms.Count) > maxShaderWaves {
		return fmt.Errorf("wave count %d exceeds the shader limit %d", uniforms.Count, maxShaderWaves)
	}

	rend.shader.Use()

	viewProjection := camera.GetViewProjection()
	rend.shader.SetMat4("viewProjection", viewProjection)
	rend.shader.SetMat4("model", rend.Model)
	rend.shader.SetFloat("time", uniforms.Time)

	rend.shader.SetInt("waveCount", uniforms.Count)
	rend.shader.SetVec2Array("waveDirections", uniforms.Directions)
	rend.shader.SetFloatArray("waveAmplitudes", uniforms.Amplitudes)
	rend.shader.SetFloatArray("waveFrequencies", uniforms.Frequencies)
	rend.shader.SetFloatArray("wavePhases", uniforms.Phases)
	rend.shader.SetFloatArray("waveSteepness", uniforms.Steepness)

	setLightUniforms(&rend.shader, light)
	rend.shader.SetVec3("viewPos", camera.Position)
	rend.shader.SetVec3("deepColor", rend.DeepColor)
	rend.shader.SetVec3("shallowColor", rend.ShallowColor)
	rend.shader.SetVec3("skyColor", rend.SkyColor)

	gl.BindVertexArray(rend.vao)
	gl.DrawElements(gl.TRIANGLES, rend.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	return nil
}

func (rend *OceanRenderer) destroyBuffers() {
	if rend.vao != 0 {
		gl.DeleteVertexArrays(1, &rend.vao)
		gl.DeleteBuffers(1, &rend.vbo)
		gl.DeleteBuffers(1, &rend.ebo)
		rend.vao, rend.vbo, rend.ebo = 0, 0, 0
	}
}

func (rend *OceanRenderer) Cleanup() {
	rend.destroyBuffers()
	rend.shader.Delete()
}

// setLightUniforms uploads the light for both ocean shaders. Point and spot
// lights approximate a direction from their position, since an ocean surface
// far larger than the light distance sees it as directional anyway.
func setLightUniforms(shader *Shader, light *Light) {
	if light == nil {
		return
	}
	dir := light.Direction
	if light.Kind == PointLight {
		dir = light.Position.Mul(-1)
	}
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	shader.SetVec3("lightDirection", dir)
	shader.SetVec3("lightColor", light.Color)
	shader.SetFloat("lightIntensity", light.Intensity)
}

// SpectralOceanRenderer draws the FFT ocean: the grid stays static while the
// per-frame height, displacement, normal and foam fields stream into
// textures the shaders sample.
type SpectralOceanRenderer struct {
	shader     Shader
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	heightTex       uint32
	displacementTex uint32
	normalTex       uint32
	foamTex         uint32
	fieldSize       int32

	// scratch for packing the split displacement and normal fields
	rgScratch  []float32
	rgbScratch []float32

	Model     mgl32.Mat4
	DeepColor mgl32.Vec3
	SkyColor  mgl32.Vec3
}

func NewSpectralOceanRenderer() *SpectralOceanRenderer {
	return &SpectralOceanRenderer{
		Model:     mgl32.Ident4(),
		DeepColor: mgl32.Vec3{0.0, 0.15, 0.35},
		SkyColor:  mgl32.Vec3{0.5, 0.7, 1.0},
	}
}

// Init compiles the shader, uploads the grid and allocates the field
// textures at the ocean's resolution.
func (rend *SpectralOceanRenderer) Init(mesh *ocean.GridMesh, n int) error {
	rend.shader = InitSpectralShader()
	if err := rend.shader.Compile(); err != nil {
		return err
	}

	data := mesh.Interleaved()

	gl.GenVertexArrays(1, &rend.vao)
	gl.BindVertexArray(rend.vao)

	gl.GenBuffers(1, &rend.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, rend.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenBuffers(1, &rend.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, rend.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	stride := int32(5 * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	rend.indexCount = int32(len(mesh.Indices))

	rend.fieldSize = int32(n)
	rend.rgScratch = make([]float32, n*n*2)
	rend.rgbScratch = make([]float32, n*n*3)

	rend.heightTex = newFieldTexture(gl.R32F, rend.fieldSize)
	rend.displacementTex = newFieldTexture(gl.RG32F, rend.fieldSize)
	rend.normalTex = newFieldTexture(gl.RGB32F, rend.fieldSize)
	rend.foamTex = newFieldTexture(gl.R32F, rend.fieldSize)

	logger.Log.Info("Spectral ocean renderer initialized",
		zap.Int("fieldSize", n),
		zap.Int("triangles", len(mesh.Indices)/3))
	return nil
}

func newFieldTexture(internalFormat int32, size int32) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	var format uint32
	switch internalFormat {
	case gl.RG32F:
		format = gl.RG
	case gl.RGB32F:
		format = gl.RGB
	default:
		format = gl.RED
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, size, size, 0, format, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	return tex
}

// UploadFields streams the current spatial fields into the GPU textures.
// Call once per frame after the ocean's Update.
func (rend *SpectralOceanRenderer) UploadFields(fields *ocean.Fields) {
	size := rend.fieldSize

	gl.BindTexture(gl.TEXTURE_2D, rend.heightTex)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, size, size, gl.RED, gl.FLOAT, gl.Ptr(fields.Height))

	for i := range fields.DisplacementX {
		rend.rgScratch[i*2] = fields.DisplacementX[i]
		rend.rgScratch[i*2+1] = fields.DisplacementZ[i]
	}
	gl.BindTexture(gl.TEXTURE_2D, rend.displacementTex)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, size, size, gl.RG, gl.FLOAT, gl.Ptr(rend.rgScratch))

	for i, n := range fields.Normals {
		rend.rgbScratch[i*3] = n.X()
		rend.rgbScratch[i*3+1] = n.Y()
		rend.rgbScratch[i*3+2] = n.Z()
	}
	gl.BindTexture(gl.TEXTURE_2D, rend.normalTex)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, size, size, gl.RGB, gl.FLOAT, gl.Ptr(rend.rgbScratch))

	gl.BindTexture(gl.TEXTURE_2D, rend.foamTex)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, size, size, gl.RED, gl.FLOAT, gl.Ptr(fields.Foam))
}

// Render draws one frame from the previously uploaded fields.
func (rend *SpectralOceanRenderer) Render(camera *Camera, light *Light, choppiness bool) {
	rend.shader.Use()

	rend.shader.SetMat4("viewProjection", camera.GetViewProjection())
	rend.shader.SetMat4("model", rend.Model)

	choppy := int32(0)
	if choppiness {
		choppy = 1
	}
	rend.shader.SetInt("choppinessEnabled", choppy)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, rend.heightTex)
	rend.shader.SetInt("heightMap", 0)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, rend.displacementTex)
	rend.shader.SetInt("displacementMap", 1)
	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, rend.normalTex)
	rend.shader.SetInt("normalMap", 2)
	gl.ActiveTexture(gl.TEXTURE3)
	gl.BindTexture(gl.TEXTURE_2D, rend.foamTex)
	rend.shader.SetInt("foamMap", 3)

	setLightUniforms(&rend.shader, light)
	rend.shader.SetVec3("viewPos", camera.Position)
	rend.shader.SetVec3("deepColor", rend.DeepColor)
	rend.shader.SetVec3("skyColor", rend.SkyColor)

	gl.BindVertexArray(rend.vao)
	gl.DrawElements(gl.TRIANGLES, rend.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.ActiveTexture(gl.TEXTURE0)
}

func (rend *SpectralOceanRenderer) Cleanup() {
	if rend.vao != 0 {
		gl.DeleteVertexArrays(1, &rend.vao)
		gl.DeleteBuffers(1, &rend.vbo)
		gl.DeleteBuffers(1, &rend.ebo)
	}
	for _, tex := range []uint32{rend.heightTex, rend.displacementTex, rend.normalTex, rend.foamTex} {
		if tex != 0 {
			gl.DeleteTextures(1, &tex)
		}
	}
	rend.shader.Delete()
}
