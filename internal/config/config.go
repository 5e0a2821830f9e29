// Package config loads the demo's YAML configuration and maps it onto the
// ocean, sky and logging settings.
package config

import (
	"fmt"
	"os"

	"Tidal3D/internal/ocean"
	"Tidal3D/internal/sky"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type OceanConfig struct {
	// Mode selects the simulation: "gerstner" or "spectral".
	Mode string `yaml:"mode"`
	// Preset names a sea state; explicit fields below override it.
	Preset        string     `yaml:"preset"`
	WindSpeed     float32    `yaml:"windSpeed,omitempty"`
	WindDirection [2]float32 `yaml:"windDirection,omitempty"`
	WaveAmplitude float32    `yaml:"waveAmplitude,omitempty"`
}

type SpectralSettings struct {
	// Detail selects a grid preset: "high", "medium", "low" or "performance".
	Detail string `yaml:"detail"`
	Seed   int64  `yaml:"seed"`
}

type SkyConfig struct {
	// Condition: "clear", "partly_cloudy", "overcast" or "stormy".
	Condition string `yaml:"condition"`
	Seed      int64  `yaml:"seed"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type Config struct {
	Window   WindowConfig     `yaml:"window"`
	Ocean    OceanConfig      `yaml:"ocean"`
	Spectral SpectralSettings `yaml:"spectral"`
	Sky      SkyConfig        `yaml:"sky"`
	Logging  LoggingConfig    `yaml:"logging"`
}

// Default returns the stock configuration: a Gerstner sea under a partly
// cloudy sky.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Tidal3D",
		},
		Ocean: OceanConfig{
			Mode:   "gerstner",
			Preset: "default",
		},
		Spectral: SpectralSettings{
			Detail: "medium",
			Seed:   42,
		},
		Sky: SkyConfig{
			Condition: "partly_cloudy",
			Seed:      42,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML file over the defaults, so a partial file only overrides
// what it names. A missing file returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects unknown mode, preset and condition names early, before
// they turn into a confusingly default-looking sea.
func (c Config) Validate() error {
	switch c.Ocean.Mode {
	case "gerstner", "spectral":
	default:
		return fmt.Errorf("unknown ocean mode %q", c.Ocean.Mode)
	}

	switch c.Ocean.Preset {
	case "default", "calm", "rough", "stormy", "tropical", "arctic":
	default:
		return fmt.Errorf("unknown ocean preset %q", c.Ocean.Preset)
	}

	switch c.Spectral.Detail {
	case "high", "medium", "low", "performance":
	default:
		return fmt.Errorf("unknown spectral detail %q", c.Spectral.Detail)
	}

	switch c.Sky.Condition {
	case "clear", "partly_cloudy", "overcast", "stormy":
	default:
		return fmt.Errorf("unknown sky condition %q", c.Sky.Condition)
	}
	return nil
}

// GerstnerConfig resolves the named preset plus overrides into an ocean
// configuration.
func (c Config) GerstnerConfig() ocean.Config {
	var cfg ocean.Config
	switch c.Ocean.Preset {
	case "calm":
		cfg = ocean.CalmOcean()
	case "rough":
		cfg = ocean.RoughSea()
	case "stormy":
		cfg = ocean.StormyOcean()
	case "tropical":
		cfg = ocean.TropicalOcean()
	case "arctic":
		cfg = ocean.ArcticOcean()
	default:
		cfg = ocean.DefaultConfig()
	}

	if c.Ocean.WindSpeed > 0 {
		cfg.WindSpeed = c.Ocean.WindSpeed
	}
	if c.Ocean.WindDirection != [2]float32{} {
		cfg.WindDirection = mgl32.Vec2{c.Ocean.WindDirection[0], c.Ocean.WindDirection[1]}
	}
	if c.Ocean.WaveAmplitude > 0 {
		cfg.WaveAmplitude = c.Ocean.WaveAmplitude
	}
	return cfg
}

// SpectralConfig resolves the detail and sea-state presets for the spectral
// ocean.
func (c Config) SpectralConfig() (ocean.SpectralConfig, ocean.SpectralParams) {
	var cfg ocean.SpectralConfig
	switch c.Spectral.Detail {
	case "high":
		cfg = ocean.HighDetailConfig()
	case "low":
		cfg = ocean.LowDetailConfig()
	case "performance":
		cfg = ocean.PerformanceConfig()
	default:
		cfg = ocean.MediumDetailConfig()
	}

	var params ocean.SpectralParams
	switch c.Ocean.Preset {
	case "calm":
		params = ocean.CalmSeaParams()
	case "rough":
		params = ocean.RoughSeaParams()
	case "stormy":
		params = ocean.StormySeaParams()
	case "tropical":
		params = ocean.TropicalSeaParams()
	default:
		params = ocean.DefaultSpectralParams()
	}
	params.Seed = c.Spectral.Seed

	if c.Ocean.WindSpeed > 0 {
		params.WindSpeed = mgl32.Vec2{c.Ocean.WindSpeed, c.Ocean.WindSpeed}
	}
	if c.Ocean.WindDirection != [2]float32{} {
		params.WindDirection = mgl32.Vec2{c.Ocean.WindDirection[0], c.Ocean.WindDirection[1]}
	}
	return cfg, params
}

// CloudConfig resolves the sky condition into a cloud configuration and its
// matching weather.
func (c Config) CloudConfig() (sky.CloudConfig, sky.WeatherData) {
	switch c.Sky.Condition {
	case "clear":
		return sky.ClearSky(), sky.ClearWeather()
	case "overcast":
		return sky.Overcast(), sky.WindyWeather()
	case "stormy":
		return sky.StormyClouds(), sky.StormyWeather()
	default:
		return sky.PartlyCloudy(), sky.ClearWeather()
	}
}
