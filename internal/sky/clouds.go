// Package sky models a procedural cloud layer above the ocean: a band of
// noise-driven density that drifts with the wind, plus the weather state
// that shapes it. The renderer reads density and weather fields from here;
// this package owns no GPU resources.
package sky

import (
	"Tidal3D/internal/logger"

	perlin "github.com/aquilax/go-perlin"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// CloudConfig describes the shape and motion of the cloud layer.
type CloudConfig struct {
	CloudHeight    float32 // base altitude of the layer in meters
	CloudThickness float32
	CloudCoverage  float32 // fraction of sky covered, 0..1
	CloudDensity   float32
	CloudScale     float32 // world-to-noise scale of formations
	CloudSpeed     float32
	WindDirection  mgl32.Vec3
	Octaves        int
}

// WeatherData is the atmospheric state feeding the cloud layer.
type WeatherData struct {
	Humidity      float32
	Temperature   float32 // Celsius
	Pressure      float32 // hPa
	WindVelocity  mgl32.Vec3
	Turbulence    float32
	Precipitation float32
}

// CloudLayer animates a cloud density field over time. Density is sampled
// on the CPU for gameplay queries and baked into a weather texture for the
// sky shader.
type CloudLayer struct {
	cfg     CloudConfig
	weather WeatherData
	noise   *perlin.Perlin
	time    float32
}

// NewCloudLayer builds a layer with a seeded noise source, so the same seed
// reproduces the same sky.
func NewCloudLayer(cfg CloudConfig, seed int64) *CloudLayer {
	if cfg.Octaves <= 0 {
		cfg.Octaves = 4
	}
	layer := &CloudLayer{
		cfg:     cfg,
		weather: ClearWeather(),
		noise:   perlin.NewPerlin(2, 2, 3, seed),
	}

	logger.Log.Info("Cloud layer created",
		zap.Float32("height", cfg.CloudHeight),
		zap.Float32("coverage", cfg.CloudCoverage),
		zap.Int("octaves", cfg.Octaves))

	return layer
}

// Config returns the current cloud configuration.
func (c *CloudLayer) Config() CloudConfig {
	return c.cfg
}

// Weather returns the current weather state.
func (c *CloudLayer) Weather() WeatherData {
	return c.weather
}

// Time returns the accumulated animation time.
func (c *CloudLayer) Time() float32 {
	return c.time
}

// SetConfig replaces the cloud configuration without touching the weather.
func (c *CloudLayer) SetConfig(cfg CloudConfig) {
	if cfg.Octaves <= 0 {
		cfg.Octaves = 4
	}
	c.cfg = cfg
}

// SetWeather replaces the weather state and derives the dependent cloud
// parameters: humidity drives coverage, the wind drives drift.
func (c *CloudLayer) SetWeather(w WeatherData) {
	c.weather = w
	c.cfg.CloudCoverage = mgl32.Clamp(w.Humidity, 0, 1)
	if w.WindVelocity.Len() > 0 {
		c.cfg.WindDirection = w.WindVelocity.Normalize()
	}
	c.cfg.CloudSpeed = w.WindVelocity.Len() * 0.1
}

// SetCloudiness is the one-knob weather control: 0 is a clear sky, 1 is
// overcast.
func (c *CloudLayer) SetCloudiness(cloudiness float32) {
	c.cfg.CloudCoverage = mgl32.Clamp(cloudiness, 0, 1)
	c.cfg.CloudDensity = 0.5 + c.cfg.CloudCoverage*0.5
}

// Update advances the animation clock and lets the weather wander: the wind
// meanders slowly and turbulence breathes with a long period.
func (c *CloudLayer) Update(deltaTime float32) {
	c.time += deltaTime

	drift := mgl32.Vec3{
		math32.Sin(c.time * 0.1),
		0,
		math32.Cos(c.time * 0.15),
	}.Mul(0.1)
	c.weather.WindVelocity = c.weather.WindVelocity.Add(drift)
	c.weather.Turbulence = 0.3 + 0.2*math32.Sin(c.time*0.05)
}

// fbm accumulates octaves of seeded noise, halving amplitude and doubling
// frequency per octave. The result is kept in [0,1).
func (c *CloudLayer) fbm(p mgl32.Vec3, octaves int) float32 {
	value := float32(0)
	amplitude := float32(0.5)
	frequency := float32(1)

	for i := 0; i < octaves; i++ {
		n := c.noise.Noise3D(
			float64(p.X()*frequency),
			float64(p.Y()*frequency),
			float64(p.Z()*frequency))
		value += amplitude * float32(n+1) * 0.5
		amplitude *= 0.5
		frequency *= 2
	}
	return value
}

// SampleDensity returns the cloud density at a world position. Outside the
// cloud band it is exactly zero; inside it is the coverage-thresholded noise
// scaled by the configured density.
func (c *CloudLayer) SampleDensity(worldPos mgl32.Vec3) float32 {
	halfThickness := c.cfg.CloudThickness * 0.5
	if worldPos.Y() < c.cfg.CloudHeight-halfThickness ||
		worldPos.Y() > c.cfg.CloudHeight+halfThickness {
		return 0
	}

	samplePos := worldPos.Mul(c.cfg.CloudScale).
		Add(c.cfg.WindDirection.Mul(c.time * c.cfg.CloudSpeed))
	noise := c.fbm(samplePos, c.cfg.Octaves)

	return mgl32.Clamp(noise-(1-c.cfg.CloudCoverage), 0, 1) * c.cfg.CloudDensity
}

// SampleVelocity returns the local air velocity: the mean wind plus a
// turbulent wobble that varies with position and time.
func (c *CloudLayer) SampleVelocity(worldPos mgl32.Vec3) mgl32.Vec3 {
	turb := c.weather.Turbulence
	return c.weather.WindVelocity.Add(mgl32.Vec3{
		math32.Sin(worldPos.X()*0.01+c.time*0.1) * turb,
		math32.Cos(worldPos.Y()*0.01+c.time*0.15) * turb * 0.5,
		math32.Sin(worldPos.Z()*0.01+c.time*0.12) * turb,
	})
}

// IsPointInClouds reports whether a position sits inside visible cloud.
func (c *CloudLayer) IsPointInClouds(worldPos mgl32.Vec3) bool {
	return c.SampleDensity(worldPos) > 0.1
}

// WeatherField bakes the large-scale weather patterns into a size*size RGB
// byte image: coverage, cloud type and density in the three channels. The
// renderer uploads it as the sky shader's weather texture.
func (c *CloudLayer) WeatherField(size int) []uint8 {
	data := make([]uint8, size*size*3)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx := float32(x) / float32(size)
			fy := float32(y) / float32(size)

			coverage := c.fbm(mgl32.Vec3{fx * 4, fy * 4, 0}, 3)
			cloudType := c.fbm(mgl32.Vec3{fx * 2, fy * 2, 1}, 2)
			density := c.fbm(mgl32.Vec3{fx * 8, fy * 8, 2}, 4)

			idx := (y*size + x) * 3
			data[idx] = uint8(mgl32.Clamp(coverage, 0, 1) * 255)
			data[idx+1] = uint8(mgl32.Clamp(cloudType, 0, 1) * 255)
			data[idx+2] = uint8(mgl32.Clamp(density, 0, 1) * 255)
		}
	}
	return data
}

// SkyboxVertices returns the 36 positions of a unit cube, wound for
// rendering from the inside.
func SkyboxVertices() []float32 {
	return []float32{
		-1, -1, -1, 1, -1, -1, 1, 1, -1,
		1, 1, -1, -1, 1, -1, -1, -1, -1,

		-1, -1, 1, 1, -1, 1, 1, 1, 1,
		1, 1, 1, -1, 1, 1, -1, -1, 1,

		-1, 1, 1, -1, 1, -1, -1, -1, -1,
		-1, -1, -1, -1, -1, 1, -1, 1, 1,

		1, 1, 1, 1, 1, -1, 1, -1, -1,
		1, -1, -1, 1, -1, 1, 1, 1, 1,

		-1, -1, -1, 1, -1, -1, 1, -1, 1,
		1, -1, 1, -1, -1, 1, -1, -1, -1,

		-1, 1, -1, 1, 1, -1, 1, 1, 1,
		1, 1, 1, -1, 1, 1, -1, 1, -1,
	}
}
