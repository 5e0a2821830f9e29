package ocean

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func smallSpectralConfig() SpectralConfig {
	cfg := DefaultSpectralConfig()
	cfg.N = 64
	cfg.OceanSize = 250
	return cfg
}

func TestSpectralInitializeRequiresPowerOfTwo(t *testing.T) {
	var o SpectralOcean
	params := DefaultSpectralParams()

	for _, n := range []int{100, 300, 513, 0, -64} {
		cfg := smallSpectralConfig()
		cfg.N = n
		if err := o.Initialize(cfg, params); err == nil {
			t.Errorf("Expected error for resolution %d", n)
		}
		if o.IsInitialized() {
			t.Fatalf("Failed Initialize with N=%d must not mark the ocean initialized", n)
		}
	}

	for _, n := range []int{64, 128} {
		cfg := smallSpectralConfig()
		cfg.N = n
		if err := o.Initialize(cfg, params); err != nil {
			t.Errorf("Initialize with N=%d failed: %v", n, err)
		}
	}
}

func TestSpectralInitializeValidatesParams(t *testing.T) {
	var o SpectralOcean

	cfg := smallSpectralConfig()
	cfg.OceanSize = 0
	if err := o.Initialize(cfg, DefaultSpectralParams()); err == nil {
		t.Error("Expected error for zero ocean size")
	}

	params := DefaultSpectralParams()
	params.Gravity = 0
	if err := o.Initialize(smallSpectralConfig(), params); err == nil {
		t.Error("Expected error for zero gravity")
	}
	params.Gravity = -9.81
	if err := o.Initialize(smallSpectralConfig(), params); err == nil {
		t.Error("Expected error for negative gravity")
	}
}

func TestPhillipsZeroAtDC(t *testing.T) {
	p := DefaultSpectralParams()
	if got := PhillipsSpectrum(mgl32.Vec2{0, 0}, p); got != 0 {
		t.Errorf("Phillips at the zero wavevector = %g, want exactly 0", got)
	}
	if got := PhillipsSpectrum(mgl32.Vec2{1e-9, 0}, p); got != 0 {
		t.Errorf("Phillips just inside the DC cutoff = %g, want 0", got)
	}
}

func TestPhillipsFavorsWindDirection(t *testing.T) {
	p := DefaultSpectralParams()
	p.WindDirection = mgl32.Vec2{1, 0}

	along := PhillipsSpectrum(mgl32.Vec2{0.1, 0}, p)
	across := PhillipsSpectrum(mgl32.Vec2{0, 0.1}, p)

	if along <= 0 {
		t.Fatalf("Downwind power should be positive, got %g", along)
	}
	if across >= along {
		t.Errorf("Crosswind power %g not below downwind power %g", across, along)
	}
}

func TestSpectralDeterminismAcrossSeeds(t *testing.T) {
	var a, b SpectralOcean
	cfg := smallSpectralConfig()
	params := DefaultSpectralParams()

	if err := a.Initialize(cfg, params); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if err := b.Initialize(cfg, params); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	for i := range a.fields.Height {
		if a.fields.Height[i] != b.fields.Height[i] {
			t.Fatal("Same seed must give identical height fields")
		}
	}

	params.Seed = 1337
	var c SpectralOcean
	if err := c.Initialize(cfg, params); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	same := true
	for i := range a.fields.Height {
		if a.fields.Height[i] != c.fields.Height[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Different seeds produced identical height fields")
	}
}

func TestSpectralHeightFieldIsReal(t *testing.T) {
	var o SpectralOcean
	if err := o.Initialize(smallSpectralConfig(), DefaultSpectralParams()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	o.Update(1.7)

	// The conjugate-mirror evolution keeps h(k,t) Hermitian, so the inverse
	// transform should be real up to floating-point residue.
	maxReal := 0.0
	maxImag := 0.0
	for _, v := range o.hk {
		if r := math.Abs(real(v)); r > maxReal {
			maxReal = r
		}
		if im := math.Abs(imag(v)); im > maxImag {
			maxImag = im
		}
	}
	if maxImag > 1e-9+1e-6*maxReal {
		t.Errorf("Imaginary residue %g too large against peak height %g", maxImag, maxReal)
	}
}

func TestSpectralDisplacementClampedToCell(t *testing.T) {
	var o SpectralOcean
	cfg := smallSpectralConfig()
	params := StormySeaParams()
	if err := o.Initialize(cfg, params); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	o.Update(2.3)

	cell := cfg.OceanSize / float32(cfg.N)
	f := o.CurrentFields()
	for i := range f.DisplacementX {
		if dx := f.DisplacementX[i]; dx < -cell || dx > cell {
			t.Fatalf("DisplacementX[%d] = %g exceeds the cell size %g", i, dx, cell)
		}
		if dz := f.DisplacementZ[i]; dz < -cell || dz > cell {
			t.Fatalf("DisplacementZ[%d] = %g exceeds the cell size %g", i, dz, cell)
		}
	}
}

func TestSpectralFoamNonNegative(t *testing.T) {
	var o SpectralOcean
	if err := o.Initialize(smallSpectralConfig(), StormySeaParams()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	o.Update(3.1)

	for i, foam := range o.CurrentFields().Foam {
		if foam < 0 {
			t.Fatalf("Foam[%d] = %g, must be non-negative", i, foam)
		}
	}
}

func TestSpectralFoamDisabled(t *testing.T) {
	var o SpectralOcean
	cfg := smallSpectralConfig()
	cfg.EnableFoam = false
	if err := o.Initialize(cfg, StormySeaParams()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	o.Update(1.0)

	for i, foam := range o.CurrentFields().Foam {
		if foam != 0 {
			t.Fatalf("Foam[%d] = %g with foam disabled", i, foam)
		}
	}
}

func TestSpectralChoppinessDisabled(t *testing.T) {
	var o SpectralOcean
	cfg := smallSpectralConfig()
	cfg.EnableChoppiness = false
	if err := o.Initialize(cfg, DefaultSpectralParams()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	o.Update(1.0)

	f := o.CurrentFields()
	for i := range f.DisplacementX {
		if f.DisplacementX[i] != 0 || f.DisplacementZ[i] != 0 {
			t.Fatal("Displacement fields must stay zero when choppiness is off")
		}
	}
	if d := o.SampleDisplacement(10, 20); d != (mgl32.Vec2{}) {
		t.Errorf("SampleDisplacement = %v with choppiness off", d)
	}
}

func TestSampleBilinearHitsGridPoints(t *testing.T) {
	var o SpectralOcean
	cfg := smallSpectralConfig()
	if err := o.Initialize(cfg, DefaultSpectralParams()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	n := cfg.N
	f := o.CurrentFields()
	for _, gp := range [][2]int{{0, 0}, {7, 3}, {n / 2, n / 2}, {n - 1, n - 1}} {
		k, m := gp[0], gp[1]
		x := (float32(k)/float32(n) - 0.5) * cfg.OceanSize
		z := (float32(m)/float32(n) - 0.5) * cfg.OceanSize

		want := f.Height[m*n+k]
		got := o.SampleHeight(x, z)
		if math.Abs(float64(got-want)) > 1e-4 {
			t.Errorf("SampleHeight at grid point (%d,%d) = %g, want %g", k, m, got, want)
		}
	}
}

func TestSampleNormalUnitLength(t *testing.T) {
	var o SpectralOcean
	if err := o.Initialize(smallSpectralConfig(), RoughSeaParams()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	o.Update(0.9)

	for i := 0; i < 20; i++ {
		x := float32(i)*17.1 - 100
		z := float32(i)*-9.7 + 50
		n := o.SampleNormal(x, z)
		if math.Abs(float64(n.Len()-1)) > 1e-5 {
			t.Fatalf("Normal at (%g,%g) not unit length: %g", x, z, n.Len())
		}
	}
}

func TestSpectralSetParamsRegenerates(t *testing.T) {
	var o SpectralOcean
	if err := o.Initialize(smallSpectralConfig(), CalmSeaParams()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	before := make([]float32, len(o.fields.Height))
	copy(before, o.fields.Height)

	if err := o.SetParams(StormySeaParams()); err != nil {
		t.Fatalf("SetParams failed: %v", err)
	}
	same := true
	for i := range before {
		if before[i] != o.fields.Height[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("SetParams with a different sea state left the fields unchanged")
	}

	bad := StormySeaParams()
	bad.Gravity = 0
	if err := o.SetParams(bad); err == nil {
		t.Error("Expected error for zero gravity")
	}
}

func TestSpectralTimeScale(t *testing.T) {
	var o SpectralOcean
	cfg := smallSpectralConfig()
	cfg.TimeScale = 2.5
	if err := o.Initialize(cfg, DefaultSpectralParams()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	o.Update(1.0)
	if got := o.Time(); got != 2.5 {
		t.Errorf("Time after Update(1.0) with scale 2.5 = %g, want 2.5", got)
	}
	o.Update(0.5)
	if got := o.Time(); got != 3.75 {
		t.Errorf("Time after further Update(0.5) = %g, want 3.75", got)
	}
}

func TestSpectralMeshMatchesFieldDimension(t *testing.T) {
	var o SpectralOcean
	cfg := smallSpectralConfig()
	if err := o.Initialize(cfg, DefaultSpectralParams()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	// One vertex per field sample: an (N-1)-quad grid has N^2 vertices.
	if got := o.Mesh().VertexCount(); got != cfg.N*cfg.N {
		t.Errorf("Mesh has %d vertices, want %d", got, cfg.N*cfg.N)
	}
}
