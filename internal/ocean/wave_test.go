package ocean

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// shaderGerstner mirrors the ocean vertex shader's displacement loop,
// deliberately written against the flattened uniform block rather than
// sharing code with EvaluateWaves. It is the reference for the CPU/GPU
// consistency contract.
func shaderGerstner(x, z float32, u WaveUniforms) mgl32.Vec3 {
	var disp mgl32.Vec3
	count := float32(u.Count)
	for i := 0; i < int(u.Count); i++ {
		dx := u.Directions[i*2]
		dz := u.Directions[i*2+1]
		f := u.Frequencies[i]
		a := u.Amplitudes[i]

		c := float32(math.Sqrt(float64(9.81 / f)))
		theta := (dx*x+dz*z)*f + u.Time*c + u.Phases[i]
		sin := float32(math.Sin(float64(theta)))
		cos := float32(math.Cos(float64(theta)))
		q := u.Steepness[i] / (f * a * count)

		disp[0] += q * a * dx * cos
		disp[1] += a * sin
		disp[2] += q * a * dz * cos
	}
	return disp
}

func TestCPUAndGPUPathsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 20; trial++ {
		windAngle := rng.Float64() * 2 * math.Pi
		wind := mgl32.Vec2{float32(math.Cos(windAngle)), float32(math.Sin(windAngle))}
		baseFreq := 0.02 + rng.Float32()*0.03
		baseAmp := 0.2 + rng.Float32()*1.8
		count := 1 + rng.Intn(8)

		waves := GenerateWaveSet(wind, baseFreq, baseAmp, count)
		var o GerstnerOcean
		o.waves = waves
		o.time = rng.Float32() * 2
		u := o.Uniforms()

		for sample := 0; sample < 10; sample++ {
			x := rng.Float32()*200 - 100
			z := rng.Float32()*200 - 100

			cpu, _, _ := EvaluateWaves(mgl32.Vec2{x, z}, waves, o.time)
			gpu := shaderGerstner(x, z, u)

			for axis := 0; axis < 3; axis++ {
				diff := math.Abs(float64(cpu[axis] - gpu[axis]))
				if diff > 1e-4 {
					t.Fatalf("trial %d sample %d axis %d: cpu=%g gpu=%g diff=%g",
						trial, sample, axis, cpu[axis], gpu[axis], diff)
				}
			}
		}
	}
}

func TestWaveSetSteepnessBound(t *testing.T) {
	configs := []Config{CalmOcean(), RoughSea(), StormyOcean(), TropicalOcean(), ArcticOcean(), DefaultConfig()}

	for _, cfg := range configs {
		waves := GenerateWaveSet(cfg.WindDirection, cfg.WaveFrequency, cfg.WaveAmplitude, cfg.NumWaves)
		if len(waves) != cfg.NumWaves {
			t.Fatalf("Expected %d waves, got %d", cfg.NumWaves, len(waves))
		}
		k := float32(len(waves))
		for i, w := range waves {
			if w.Steepness < 0 || w.Steepness > 1 {
				t.Errorf("wave %d: steepness %g outside [0,1]", i, w.Steepness)
			}
			bound := 1/w.Frequency + 1e-4
			if w.Steepness*w.Amplitude*k > bound {
				t.Errorf("wave %d: steepness*amplitude*count = %g exceeds 1/frequency = %g",
					i, w.Steepness*w.Amplitude*k, bound)
			}
			if math.Abs(float64(w.Direction.Len()-1)) > 1e-5 {
				t.Errorf("wave %d: direction not normalized, |d| = %g", i, w.Direction.Len())
			}
		}
	}
}

func TestWaveSetDeterminism(t *testing.T) {
	a := GenerateWaveSet(mgl32.Vec2{1, 0.5}, 0.02, 2.0, 6)
	b := GenerateWaveSet(mgl32.Vec2{1, 0.5}, 0.02, 2.0, 6)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("wave %d differs between identical generations: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestWaveSetAmplitudeBudget(t *testing.T) {
	waves := GenerateWaveSet(mgl32.Vec2{1, 0}, 0.02, 2.0, 6)

	sum := float32(0)
	for _, w := range waves {
		sum += w.Amplitude
	}
	if math.Abs(float64(sum-2.0)) > 1e-5 {
		t.Errorf("Amplitudes should sum to the configured amplitude, got %g", sum)
	}

	for i := 1; i < len(waves); i++ {
		if waves[i].Amplitude >= waves[i-1].Amplitude {
			t.Errorf("Amplitudes should decrease, wave %d: %g >= %g", i, waves[i].Amplitude, waves[i-1].Amplitude)
		}
		if waves[i].Frequency <= waves[i-1].Frequency {
			t.Errorf("Frequencies should increase, wave %d: %g <= %g", i, waves[i].Frequency, waves[i-1].Frequency)
		}
	}
}

func TestEvaluateWavesEmptySet(t *testing.T) {
	disp, tangent, binormal := EvaluateWaves(mgl32.Vec2{3, 4}, nil, 1.0)

	if disp != (mgl32.Vec3{}) {
		t.Errorf("Empty wave set should give zero displacement, got %v", disp)
	}
	normal := SurfaceNormal(tangent, binormal)
	if normal != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Empty wave set should give the up normal, got %v", normal)
	}
}

func TestSingleWaveAtOrigin(t *testing.T) {
	var o GerstnerOcean
	cfg := DefaultConfig()
	cfg.WindDirection = mgl32.Vec2{1, 0}
	cfg.WaveAmplitude = 1.0
	cfg.WaveFrequency = 0.02
	cfg.NumWaves = 1
	if err := o.Initialize(cfg); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	// At the origin at t=0 the phase term is all that survives:
	// dot(d,(0,0))*f = 0 and t*c = 0, so height = A*sin(phase).
	w := o.Waves()[0]
	want := w.Amplitude * float32(math.Sin(float64(w.Phase)))
	got := o.SampleHeightAt(0, 0, 0)
	if math.Abs(float64(got-want)) > 1e-6 {
		t.Errorf("SampleHeight(0,0,0) = %g, want %g", got, want)
	}
}

func TestCalmSeaStaysWithinAmplitude(t *testing.T) {
	var o GerstnerOcean
	cfg := CalmOcean()
	if err := o.Initialize(cfg); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	maxHeight := float32(0)
	for ti := 0; ti < 20; ti++ {
		tm := float32(ti) * 0.7
		for xi := -20; xi <= 20; xi++ {
			for zi := -20; zi <= 20; zi++ {
				h := o.SampleHeightAt(float32(xi)*7.3, float32(zi)*7.3, tm)
				if h < 0 {
					h = -h
				}
				if h > maxHeight {
					maxHeight = h
				}
			}
		}
	}

	if maxHeight > cfg.WaveAmplitude+1e-3 {
		t.Errorf("Calm sea reached height %g, above the configured amplitude %g", maxHeight, cfg.WaveAmplitude)
	}
}

func TestHeightGrowsWithAmplitude(t *testing.T) {
	sample := func(amplitude float32) float32 {
		var o GerstnerOcean
		cfg := StormyOcean()
		cfg.WaveAmplitude = amplitude
		if err := o.Initialize(cfg); err != nil {
			t.Fatalf("Initialize failed: %v", err)
		}
		max := float32(0)
		for xi := 0; xi < 40; xi++ {
			h := o.SampleHeightAt(float32(xi)*13.7, float32(xi)*5.1, 3.0)
			if h < 0 {
				h = -h
			}
			if h > max {
				max = h
			}
		}
		return max
	}

	prev := float32(0)
	for _, amplitude := range []float32{1, 2, 4, 8} {
		max := sample(amplitude)
		if max <= prev {
			t.Errorf("Max height %g at amplitude %g not above %g", max, amplitude, prev)
		}
		prev = max
	}
}
