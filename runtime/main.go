package main

import (
	"flag"
	"fmt"
	"os"

	"Tidal3D/internal/behaviour"
	"Tidal3D/internal/config"
	"Tidal3D/internal/engine"
	"Tidal3D/internal/logger"
	"Tidal3D/internal/ocean"
	"Tidal3D/internal/sky"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "tidal3d.yaml", "path to the YAML configuration")
	mode := flag.String("mode", "", "override the ocean mode: gerstner or spectral")
	preset := flag.String("preset", "", "override the sea state preset")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *mode != "" {
		cfg.Ocean.Mode = *mode
	}
	if *preset != "" {
		cfg.Ocean.Preset = *preset
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.File)
	defer logger.Sync()

	eng := engine.New()
	eng.Width = int32(cfg.Window.Width)
	eng.Height = int32(cfg.Window.Height)
	eng.Title = cfg.Window.Title

	switch cfg.Ocean.Mode {
	case "spectral":
		eng.Mode = engine.SpectralMode
		spectralCfg, params := cfg.SpectralConfig()
		eng.Spectral = &ocean.SpectralOcean{}
		if err := eng.Spectral.Initialize(spectralCfg, params); err != nil {
			logger.Log.Fatal("Spectral ocean initialization failed", zap.Error(err))
		}
	default:
		eng.Mode = engine.GerstnerMode
		eng.Gerstner = &ocean.GerstnerOcean{}
		if err := eng.Gerstner.Initialize(cfg.GerstnerConfig()); err != nil {
			logger.Log.Fatal("Ocean initialization failed", zap.Error(err))
		}
	}

	cloudCfg, weather := cfg.CloudConfig()
	eng.Clouds = sky.NewCloudLayer(cloudCfg, cfg.Sky.Seed)
	eng.Clouds.SetWeather(weather)

	// Slowly roll the weather toward a storm and back, to show off the
	// transition blending.
	behaviour.GlobalBehaviourManager.Add(newWeatherCycle(eng.Clouds))

	if err := eng.Run(-1, -1); err != nil {
		logger.Log.Fatal("Engine terminated", zap.Error(err))
	}
}

// weatherCycle drifts the cloud layer between fair weather and a storm on a
// long loop.
type weatherCycle struct {
	clouds     *sky.CloudLayer
	transition sky.WeatherTransition
	toStorm    bool
	holdTime   float32
}

func newWeatherCycle(clouds *sky.CloudLayer) *weatherCycle {
	return &weatherCycle{clouds: clouds}
}

func (w *weatherCycle) Start() {
	w.holdTime = 30
}

func (w *weatherCycle) Update(deltaTime float32) {
	if w.transition.Active() {
		cfg, running := w.transition.Update(deltaTime)
		w.clouds.SetConfig(cfg)
		if !running {
			w.holdTime = 45
		}
		return
	}

	w.holdTime -= deltaTime
	if w.holdTime > 0 {
		return
	}

	from := w.clouds.Config()
	if w.toStorm {
		w.transition.Start(from, sky.PartlyCloudy(), 20)
	} else {
		w.transition.Start(from, sky.StormyClouds(), 20)
	}
	w.toStorm = !w.toStorm
}
