package ocean

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestInitializeRejectsBadConfig(t *testing.T) {
	var o GerstnerOcean

	cfg := DefaultConfig()
	cfg.NumWaves = 0
	if err := o.Initialize(cfg); err == nil {
		t.Error("Expected error for zero wave count")
	}
	if o.IsInitialized() {
		t.Error("Failed Initialize must not mark the ocean initialized")
	}

	cfg = DefaultConfig()
	cfg.Resolution = -1
	if err := o.Initialize(cfg); err == nil {
		t.Error("Expected error for negative resolution")
	}
}

func TestInitializeKeepsPreviousStateOnFailure(t *testing.T) {
	var o GerstnerOcean
	good := CalmOcean()
	if err := o.Initialize(good); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	o.Update(3.5)
	mesh := o.Mesh()

	bad := good
	bad.Size = 0
	if err := o.Initialize(bad); err == nil {
		t.Fatal("Expected error for zero size")
	}

	if o.Config() != good {
		t.Error("Config changed after failed Initialize")
	}
	if o.Mesh() != mesh {
		t.Error("Mesh changed after failed Initialize")
	}
	if o.Time() != 3.5 {
		t.Errorf("Time changed after failed Initialize: %g", o.Time())
	}
}

func TestUpdateAccumulatesTime(t *testing.T) {
	var o GerstnerOcean

	// Before Initialize, Update is a no-op.
	o.Update(1.0)
	if o.Time() != 0 {
		t.Errorf("Time advanced before Initialize: %g", o.Time())
	}

	if err := o.Initialize(DefaultConfig()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	prev := o.Time()
	for i := 0; i < 10; i++ {
		o.Update(0.016)
		if o.Time() <= prev {
			t.Fatalf("Time must grow monotonically: %g after %g", o.Time(), prev)
		}
		prev = o.Time()
	}
}

func TestSetConfigReusesGridWhenTopologyUnchanged(t *testing.T) {
	var o GerstnerOcean
	cfg := DefaultConfig()
	if err := o.Initialize(cfg); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	mesh := o.Mesh()

	cfg.WaveAmplitude = 4.0
	cfg.NumWaves = 9
	if err := o.SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig failed: %v", err)
	}
	if o.Mesh() != mesh {
		t.Error("Grid rebuilt although resolution and size did not change")
	}
	if len(o.Waves()) != 9 {
		t.Errorf("Wave set not regenerated, got %d waves", len(o.Waves()))
	}

	cfg.Resolution = 128
	if err := o.SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig failed: %v", err)
	}
	if o.Mesh() == mesh {
		t.Error("Grid not rebuilt after resolution change")
	}
}

func TestSetConfigInitializesFirstUse(t *testing.T) {
	var o GerstnerOcean
	if err := o.SetConfig(CalmOcean()); err != nil {
		t.Fatalf("SetConfig on a fresh ocean failed: %v", err)
	}
	if !o.IsInitialized() {
		t.Error("SetConfig on a fresh ocean should initialize it")
	}
}

func TestUniformsMatchWaveSet(t *testing.T) {
	var o GerstnerOcean
	if err := o.Initialize(DefaultConfig()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	o.Update(1.25)

	u := o.Uniforms()
	waves := o.Waves()
	if int(u.Count) != len(waves) {
		t.Fatalf("Uniform count %d, wave set has %d", u.Count, len(waves))
	}
	if len(u.Directions) != len(waves)*2 {
		t.Fatalf("Expected %d direction floats, got %d", len(waves)*2, len(u.Directions))
	}
	if u.Time != o.Time() {
		t.Errorf("Uniform time %g, ocean time %g", u.Time, o.Time())
	}
	for i, w := range waves {
		if u.Directions[i*2] != w.Direction.X() || u.Directions[i*2+1] != w.Direction.Y() {
			t.Errorf("wave %d: direction mismatch in uniforms", i)
		}
		if u.Amplitudes[i] != w.Amplitude || u.Frequencies[i] != w.Frequency {
			t.Errorf("wave %d: amplitude/frequency mismatch in uniforms", i)
		}
		if u.Phases[i] != w.Phase || u.Steepness[i] != w.Steepness {
			t.Errorf("wave %d: phase/steepness mismatch in uniforms", i)
		}
	}
}

func TestSampleNormalIsUnitAndUpward(t *testing.T) {
	var o GerstnerOcean
	if err := o.Initialize(RoughSea()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	o.Update(2.0)

	for xi := -5; xi <= 5; xi++ {
		for zi := -5; zi <= 5; zi++ {
			n := o.SampleNormal(float32(xi)*37.0, float32(zi)*37.0)
			if math.Abs(float64(n.Len()-1)) > 1e-5 {
				t.Fatalf("Normal at (%d,%d) not unit length: |n| = %g", xi, zi, n.Len())
			}
			if n.Y() <= 0 {
				t.Fatalf("Normal at (%d,%d) points downward: %v", xi, zi, n)
			}
		}
	}
}

func TestAnalyticNormalAgreesWithFiniteDifference(t *testing.T) {
	waves := GenerateWaveSet(mgl32.Vec2{1, 0.3}, 0.03, 0.5, 4)

	for i := 0; i < 10; i++ {
		p := mgl32.Vec2{float32(i) * 11.3, float32(i) * -7.9}
		_, tangent, binormal := EvaluateWaves(p, waves, 1.5)
		analytic := SurfaceNormal(tangent, binormal)

		var o GerstnerOcean
		o.waves = waves
		fd := o.SampleNormalAt(p.X(), p.Y(), 1.5)

		if analytic.Dot(fd) < 0.99 {
			t.Errorf("Normals disagree at %v: analytic %v, finite-difference %v", p, analytic, fd)
		}
	}
}
