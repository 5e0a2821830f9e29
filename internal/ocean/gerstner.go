package ocean

import (
	"fmt"

	"Tidal3D/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// normalEpsilon is the finite-difference step for normal sampling, in world
// units.
const normalEpsilon = 0.1

// Config describes a Gerstner ocean. It is consumed as an immutable snapshot
// at Initialize/SetConfig time and never mutated in place during a frame.
type Config struct {
	Resolution int     // grid quads per side
	Size       float32 // world units per side

	WindDirection mgl32.Vec2
	WindSpeed     float32
	WaveAmplitude float32
	WaveFrequency float32
	NumWaves      int
}

// GerstnerOcean owns a wave set and a static grid mesh. The mesh carries no
// heights; displacement is evaluated analytically, per vertex in the shader
// and per query on the CPU, from the same formula.
type GerstnerOcean struct {
	cfg         Config
	mesh        *GridMesh
	waves       WaveSet
	time        float32
	initialized bool
}

// Initialize builds the grid mesh and derives the wave set. On failure the
// ocean stays in its previous state.
func (o *GerstnerOcean) Initialize(cfg Config) error {
	if cfg.NumWaves <= 0 {
		return fmt.Errorf("wave count must be positive, got %d", cfg.NumWaves)
	}
	mesh, err := BuildGrid(cfg.Resolution, cfg.Size)
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.mesh = mesh
	o.waves = GenerateWaveSet(cfg.WindDirection, cfg.WaveFrequency, cfg.WaveAmplitude, cfg.NumWaves)
	o.time = 0
	o.initialized = true

	logger.Log.Info("Gerstner ocean initialized",
		zap.Int("resolution", cfg.Resolution),
		zap.Float32("size", cfg.Size),
		zap.Int("waves", cfg.NumWaves),
		zap.Int("vertices", mesh.VertexCount()))

	return nil
}

// IsInitialized reports whether Initialize has succeeded.
func (o *GerstnerOcean) IsInitialized() bool {
	return o.initialized
}

// Update advances the internal clock. The accumulator grows monotonically;
// there is no clamping.
func (o *GerstnerOcean) Update(deltaTime float32) {
	if !o.initialized {
		return
	}
	o.time += deltaTime
}

// Time returns the current time accumulator.
func (o *GerstnerOcean) Time() float32 {
	return o.time
}

// SetConfig replaces the configuration. The wave set is always regenerated;
// the grid topology is rebuilt only when resolution or size change.
func (o *GerstnerOcean) SetConfig(cfg Config) error {
	if !o.initialized {
		return o.Initialize(cfg)
	}
	if cfg.NumWaves <= 0 {
		return fmt.Errorf("wave count must be positive, got %d", cfg.NumWaves)
	}
	if cfg.Resolution != o.cfg.Resolution || cfg.Size != o.cfg.Size {
		mesh, err := BuildGrid(cfg.Resolution, cfg.Size)
		if err != nil {
			return err
		}
		o.mesh = mesh
	}
	o.cfg = cfg
	o.waves = GenerateWaveSet(cfg.WindDirection, cfg.WaveFrequency, cfg.WaveAmplitude, cfg.NumWaves)
	return nil
}

// Config returns the current configuration snapshot.
func (o *GerstnerOcean) Config() Config {
	return o.cfg
}

// Mesh returns the static grid topology. Callers must not mutate it.
func (o *GerstnerOcean) Mesh() *GridMesh {
	return o.mesh
}

// Waves returns the current wave set. Callers must not mutate it.
func (o *GerstnerOcean) Waves() WaveSet {
	return o.waves
}

// SampleHeight returns the surface height at a world XZ position at the
// current time.
func (o *GerstnerOcean) SampleHeight(x, z float32) float32 {
	return o.SampleHeightAt(x, z, o.time)
}

// SampleHeightAt returns the surface height at an explicit time.
func (o *GerstnerOcean) SampleHeightAt(x, z, t float32) float32 {
	return WaveHeight(mgl32.Vec2{x, z}, o.waves, t)
}

// SampleNormal returns the surface normal at a world XZ position at the
// current time, via finite differences of the height field.
func (o *GerstnerOcean) SampleNormal(x, z float32) mgl32.Vec3 {
	return o.SampleNormalAt(x, z, o.time)
}

// SampleNormalAt returns the finite-difference surface normal at an explicit
// time.
func (o *GerstnerOcean) SampleNormalAt(x, z, t float32) mgl32.Vec3 {
	h0 := o.SampleHeightAt(x, z, t)
	hx := o.SampleHeightAt(x+normalEpsilon, z, t)
	hz := o.SampleHeightAt(x, z+normalEpsilon, t)

	tangentX := mgl32.Vec3{normalEpsilon, hx - h0, 0}.Normalize()
	tangentZ := mgl32.Vec3{0, hz - h0, normalEpsilon}.Normalize()

	return tangentZ.Cross(tangentX).Normalize()
}

// WaveUniforms is the per-frame uniform block the GPU-side evaluator needs
// to reproduce the CPU formula.
type WaveUniforms struct {
	Count       int32
	Directions  []float32 // 2 floats per wave
	Amplitudes  []float32
	Frequencies []float32
	Phases      []float32
	Steepness   []float32
	Time        float32
}

// Uniforms flattens the wave set for shader upload.
func (o *GerstnerOcean) Uniforms() WaveUniforms {
	u := WaveUniforms{
		Count:       int32(len(o.waves)),
		Directions:  make([]float32, len(o.waves)*2),
		Amplitudes:  make([]float32, len(o.waves)),
		Frequencies: make([]float32, len(o.waves)),
		Phases:      make([]float32, len(o.waves)),
		Steepness:   make([]float32, len(o.waves)),
		Time:        o.time,
	}
	for i, w := range o.waves {
		u.Directions[i*2] = w.Direction.X()
		u.Directions[i*2+1] = w.Direction.Y()
		u.Amplitudes[i] = w.Amplitude
		u.Frequencies[i] = w.Frequency
		u.Phases[i] = w.Phase
		u.Steepness[i] = w.Steepness
	}
	return u
}
