package sky

import "github.com/go-gl/mathgl/mgl32"

// Named sky and weather conditions, from fair weather to a full storm.

// DefaultCloudConfig is a partly covered mid-altitude layer.
func DefaultCloudConfig() CloudConfig {
	return CloudConfig{
		CloudHeight:    1500,
		CloudThickness: 800,
		CloudCoverage:  0.45,
		CloudDensity:   1.0,
		CloudScale:     0.0008,
		CloudSpeed:     2.0,
		WindDirection:  mgl32.Vec3{1, 0, 0.5},
		Octaves:        4,
	}
}

// ClearSky is a few thin wisps.
func ClearSky() CloudConfig {
	cfg := DefaultCloudConfig()
	cfg.CloudCoverage = 0.1
	cfg.CloudDensity = 0.3
	return cfg
}

// PartlyCloudy is scattered fair-weather cumulus.
func PartlyCloudy() CloudConfig {
	cfg := DefaultCloudConfig()
	cfg.CloudCoverage = 0.4
	cfg.CloudDensity = 0.6
	cfg.CloudScale = 0.001
	return cfg
}

// Overcast is a thick unbroken deck.
func Overcast() CloudConfig {
	cfg := DefaultCloudConfig()
	cfg.CloudCoverage = 0.8
	cfg.CloudDensity = 0.9
	cfg.CloudThickness = 1200
	return cfg
}

// StormyClouds is a fast, heavy storm front.
func StormyClouds() CloudConfig {
	cfg := DefaultCloudConfig()
	cfg.CloudCoverage = 0.9
	cfg.CloudDensity = 1.2
	cfg.CloudThickness = 1500
	cfg.CloudSpeed = 8.0
	cfg.WindDirection = mgl32.Vec3{1, 0.2, 0.5}
	return cfg
}

// HighAltitudeClouds is thin cirrus at eight kilometers.
func HighAltitudeClouds() CloudConfig {
	cfg := DefaultCloudConfig()
	cfg.CloudHeight = 8000
	cfg.CloudThickness = 400
	cfg.CloudCoverage = 0.3
	cfg.CloudDensity = 0.4
	cfg.CloudScale = 0.0005
	return cfg
}

// ClearWeather is a light steady breeze.
func ClearWeather() WeatherData {
	return WeatherData{
		Humidity:     0.3,
		Temperature:  25,
		Pressure:     1013.25,
		WindVelocity: mgl32.Vec3{3, 0, 1},
		Turbulence:   0.1,
	}
}

// RainyWeather is humid with moderate rain.
func RainyWeather() WeatherData {
	return WeatherData{
		Humidity:      0.9,
		Temperature:   15,
		Pressure:      1013.25,
		WindVelocity:  mgl32.Vec3{8, -1, 3},
		Turbulence:    0.6,
		Precipitation: 0.7,
	}
}

// StormyWeather is a low-pressure system with driving rain.
func StormyWeather() WeatherData {
	return WeatherData{
		Humidity:      0.95,
		Temperature:   12,
		Pressure:      990,
		WindVelocity:  mgl32.Vec3{15, -2, 8},
		Turbulence:    0.9,
		Precipitation: 0.9,
	}
}

// WindyWeather is a dry blustery day.
func WindyWeather() WeatherData {
	return WeatherData{
		Humidity:     0.5,
		Temperature:  18,
		Pressure:     1013.25,
		WindVelocity: mgl32.Vec3{12, 1, 6},
		Turbulence:   0.7,
	}
}
