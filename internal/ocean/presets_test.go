package ocean

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestGerstnerPresetsInitialize(t *testing.T) {
	presets := map[string]Config{
		"default":  DefaultConfig(),
		"calm":     CalmOcean(),
		"rough":    RoughSea(),
		"stormy":   StormyOcean(),
		"tropical": TropicalOcean(),
		"arctic":   ArcticOcean(),
	}

	for name, cfg := range presets {
		var o GerstnerOcean
		if err := o.Initialize(cfg); err != nil {
			t.Errorf("Preset %q failed to initialize: %v", name, err)
		}
	}
}

func TestCustomOceanWindBranches(t *testing.T) {
	cases := []struct {
		windSpeed float32
		wantWaves int
	}{
		{5, 3},
		{9.9, 3},
		{10, 6},
		{29.9, 6},
		{30, 8},
		{80, 8},
	}
	for _, c := range cases {
		cfg := CustomOcean(c.windSpeed, mgl32.Vec2{1, 0}, 2.0)
		if cfg.NumWaves != c.wantWaves {
			t.Errorf("Wind %g: got %d waves, want %d", c.windSpeed, cfg.NumWaves, c.wantWaves)
		}
		if cfg.WindSpeed != c.windSpeed {
			t.Errorf("Wind %g not carried into the config", c.windSpeed)
		}
	}
}

func TestSpectralParamPresetsAreUsable(t *testing.T) {
	presets := map[string]SpectralParams{
		"calm":     CalmSeaParams(),
		"rough":    RoughSeaParams(),
		"stormy":   StormySeaParams(),
		"tropical": TropicalSeaParams(),
	}

	for name, p := range presets {
		if p.Gravity <= 0 {
			t.Errorf("Preset %q has non-positive gravity", name)
		}
		if p.A <= 0 {
			t.Errorf("Preset %q has non-positive amplitude factor", name)
		}
		if p.Lambda >= 0 {
			t.Errorf("Preset %q has non-negative lambda; choppiness pulls crests inward", name)
		}
	}
}

func TestDetailConfigsArePowerOfTwo(t *testing.T) {
	configs := map[string]SpectralConfig{
		"high":        HighDetailConfig(),
		"medium":      MediumDetailConfig(),
		"low":         LowDetailConfig(),
		"performance": PerformanceConfig(),
	}

	for name, cfg := range configs {
		if !isPowerOfTwo(cfg.N) {
			t.Errorf("Detail preset %q has non-power-of-two resolution %d", name, cfg.N)
		}
		if cfg.OceanSize <= 0 {
			t.Errorf("Detail preset %q has non-positive size", name)
		}
	}
}
