package ocean

import "github.com/go-gl/mathgl/mgl32"

// Named ocean conditions for the demo. Plain value constructors; callers
// tweak the returned struct before passing it to Initialize.

// DefaultConfig is the stock Gerstner ocean: a 256x256 grid over a square
// kilometer with six wind-biased waves.
func DefaultConfig() Config {
	return Config{
		Resolution:    256,
		Size:          1000,
		WindDirection: mgl32.Vec2{1, 0.5},
		WindSpeed:     25,
		WaveAmplitude: 2.0,
		WaveFrequency: 0.02,
		NumWaves:      6,
	}
}

// CalmOcean is a light breeze over long, low swells.
func CalmOcean() Config {
	cfg := DefaultConfig()
	cfg.WindSpeed = 5
	cfg.WaveAmplitude = 0.3
	cfg.WaveFrequency = 0.05
	cfg.NumWaves = 3
	return cfg
}

// RoughSea is a strong wind with tall, long-period waves.
func RoughSea() Config {
	cfg := DefaultConfig()
	cfg.WindSpeed = 35
	cfg.WaveAmplitude = 3.0
	cfg.WaveFrequency = 0.015
	cfg.NumWaves = 8
	return cfg
}

// StormyOcean is a full gale.
func StormyOcean() Config {
	cfg := DefaultConfig()
	cfg.WindSpeed = 50
	cfg.WaveAmplitude = 5.0
	cfg.WaveFrequency = 0.01
	cfg.NumWaves = 10
	return cfg
}

// TropicalOcean is a moderate trade wind.
func TropicalOcean() Config {
	cfg := DefaultConfig()
	cfg.WindSpeed = 15
	cfg.WaveAmplitude = 1.0
	cfg.WaveFrequency = 0.03
	cfg.NumWaves = 5
	return cfg
}

// ArcticOcean is a cold steady wind over a heavy sea.
func ArcticOcean() Config {
	cfg := DefaultConfig()
	cfg.WindSpeed = 25
	cfg.WaveAmplitude = 1.5
	cfg.WaveFrequency = 0.025
	cfg.NumWaves = 6
	return cfg
}

// CustomOcean derives frequency and wave count from a wind speed, for
// callers that only know the weather.
func CustomOcean(windSpeed float32, windDirection mgl32.Vec2, waveHeight float32) Config {
	cfg := DefaultConfig()
	cfg.WindSpeed = windSpeed
	cfg.WindDirection = windDirection
	cfg.WaveAmplitude = waveHeight

	switch {
	case windSpeed < 10:
		cfg.WaveFrequency = 0.05
		cfg.NumWaves = 3
	case windSpeed < 30:
		cfg.WaveFrequency = 0.02
		cfg.NumWaves = 6
	default:
		cfg.WaveFrequency = 0.01
		cfg.NumWaves = 8
	}

	return cfg
}

// Spectral parameter presets, from calmest to heaviest weather.

// CalmSeaParams is a nearly flat sea.
func CalmSeaParams() SpectralParams {
	p := DefaultSpectralParams()
	p.A = 0.0001
	p.WindSpeed = mgl32.Vec2{15, 15}
	p.WindDirection = mgl32.Vec2{1, 0}
	p.Lambda = -0.5
	return p
}

// RoughSeaParams is a working sea with visible chop.
func RoughSeaParams() SpectralParams {
	p := DefaultSpectralParams()
	p.A = 0.001
	p.WindSpeed = mgl32.Vec2{35, 35}
	p.WindDirection = mgl32.Vec2{1, 0.5}
	p.Lambda = -1.0
	return p
}

// StormySeaParams is a violent sea with sharp folded crests.
func StormySeaParams() SpectralParams {
	p := DefaultSpectralParams()
	p.A = 0.005
	p.WindSpeed = mgl32.Vec2{60, 60}
	p.WindDirection = mgl32.Vec2{1, 1}
	p.Lambda = -1.5
	return p
}

// TropicalSeaParams is long rolling swell.
func TropicalSeaParams() SpectralParams {
	p := DefaultSpectralParams()
	p.A = 0.0005
	p.WindSpeed = mgl32.Vec2{25, 25}
	p.WindDirection = mgl32.Vec2{1, 0.2}
	p.Lambda = -0.8
	return p
}

// Spectral grid detail presets.

// HighDetailConfig trades frame time for a 1024 grid over 2 km.
func HighDetailConfig() SpectralConfig {
	cfg := DefaultSpectralConfig()
	cfg.N = 1024
	cfg.OceanSize = 2000
	return cfg
}

// MediumDetailConfig is the default 512 grid.
func MediumDetailConfig() SpectralConfig {
	return DefaultSpectralConfig()
}

// LowDetailConfig drops choppiness and foam for weaker machines.
func LowDetailConfig() SpectralConfig {
	cfg := DefaultSpectralConfig()
	cfg.N = 256
	cfg.OceanSize = 500
	cfg.EnableChoppiness = false
	cfg.EnableFoam = false
	return cfg
}

// PerformanceConfig is the cheapest usable sea.
func PerformanceConfig() SpectralConfig {
	cfg := LowDetailConfig()
	cfg.N = 128
	return cfg
}
