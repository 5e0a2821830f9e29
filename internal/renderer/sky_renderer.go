package renderer

import (
	"Tidal3D/internal/logger"
	"Tidal3D/internal/sky"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const weatherTextureSize = 256

// SkyRenderer draws the cloud dome behind everything else: a unit cube
// rendered at the far plane with the view translation stripped, shaded from
// the cloud layer's baked weather texture.
type SkyRenderer struct {
	shader     Shader
	vao        uint32
	vbo        uint32
	weatherTex uint32

	SkyColor     mgl32.Vec3
	HorizonColor mgl32.Vec3
}

func NewSkyRenderer() *SkyRenderer {
	return &SkyRenderer{
		SkyColor:     mgl32.Vec3{0.35, 0.55, 0.9},
		HorizonColor: mgl32.Vec3{0.75, 0.82, 0.9},
	}
}

// Init compiles the sky shader, uploads the dome geometry and bakes the
// layer's weather texture.
func (rend *SkyRenderer) Init(layer *sky.CloudLayer) error {
	rend.shader = InitSkyShader()
	if err := rend.shader.Compile(); err != nil {
		return err
	}

	vertices := sky.SkyboxVertices()

	gl.GenVertexArrays(1, &rend.vao)
	gl.BindVertexArray(rend.vao)

	gl.GenBuffers(1, &rend.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, rend.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	gl.GenTextures(1, &rend.weatherTex)
	gl.BindTexture(gl.TEXTURE_2D, rend.weatherTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, weatherTextureSize, weatherTextureSize, 0,
		gl.RGB, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)

	rend.UpdateWeather(layer)

	logger.Log.Info("Sky renderer initialized")
	return nil
}

// UpdateWeather rebakes the weather texture. Cheap enough for occasional
// weather changes, not meant for every frame.
func (rend *SkyRenderer) UpdateWeather(layer *sky.CloudLayer) {
	data := layer.WeatherField(weatherTextureSize)
	gl.BindTexture(gl.TEXTURE_2D, rend.weatherTex)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, weatherTextureSize, weatherTextureSize,
		gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(data))
}

// Render draws the dome. Depth writes stay off so the ocean always paints
// over the sky.
func (rend *SkyRenderer) Render(camera *Camera, light *Light, layer *sky.CloudLayer) {
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)

	rend.shader.Use()
	rend.shader.SetMat4("view", camera.GetSkyViewMatrix())
	rend.shader.SetMat4("projection", camera.GetProjectionMatrix())

	cfg := layer.Config()
	rend.shader.SetFloat("time", layer.Time())
	rend.shader.SetFloat("cloudCoverage", cfg.CloudCoverage)
	rend.shader.SetVec3("windDirection", cfg.WindDirection)
	rend.shader.SetFloat("cloudSpeed", cfg.CloudSpeed)

	if light != nil {
		rend.shader.SetVec3("lightDirection", light.Direction)
		rend.shader.SetVec3("lightColor", light.Color)
	}
	rend.shader.SetVec3("skyColor", rend.SkyColor)
	rend.shader.SetVec3("horizonColor", rend.HorizonColor)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, rend.weatherTex)
	rend.shader.SetInt("weatherMap", 0)

	gl.BindVertexArray(rend.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
}

func (rend *SkyRenderer) Cleanup() {
	if rend.vao != 0 {
		gl.DeleteVertexArrays(1, &rend.vao)
		gl.DeleteBuffers(1, &rend.vbo)
	}
	if rend.weatherTex != 0 {
		gl.DeleteTextures(1, &rend.weatherTex)
	}
	rend.shader.Delete()
}
