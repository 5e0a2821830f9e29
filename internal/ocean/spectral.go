package ocean

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"Tidal3D/internal/logger"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// SpectralConfig describes the spectral ocean grid. N must be a power of two
// because the field synthesis runs through a radix-2 FFT.
type SpectralConfig struct {
	N                int     // grid resolution per side
	OceanSize        float32 // physical size in meters
	TimeScale        float32
	EnableChoppiness bool
	EnableFoam       bool
	FoamThreshold    float32
}

// DefaultSpectralConfig returns the stock medium-detail configuration.
func DefaultSpectralConfig() SpectralConfig {
	return SpectralConfig{
		N:                512,
		OceanSize:        1000,
		TimeScale:        1.0,
		EnableChoppiness: true,
		EnableFoam:       true,
		FoamThreshold:    0.8,
	}
}

// Fields exposes the per-frame spatial fields the renderer uploads as
// textures, each N*N row-major.
type Fields struct {
	N             int
	Height        []float32
	DisplacementX []float32
	DisplacementZ []float32
	Normals       []mgl32.Vec3
	Foam          []float32
}

// SpectralOcean synthesizes a statistically realistic sea surface from a
// wind-driven Phillips spectrum: an initial frequency-domain spectrum h0(k)
// is generated once, evolved in time with the deep-water dispersion
// relation, and inverse-transformed every frame into height, horizontal
// displacement, normal and foam fields.
type SpectralOcean struct {
	cfg    SpectralConfig
	params SpectralParams

	mesh *GridMesh
	h0   []complex128

	fields Fields

	// frequency-domain scratch, reused across frames
	hk, dxK, dzK, sxK, szK []complex128

	time        float32
	initialized bool
}

// Initialize validates the configuration, draws the initial spectrum and
// produces the t=0 fields. A non-power-of-two resolution is a hard error;
// on any failure the ocean keeps its previous state.
func (o *SpectralOcean) Initialize(cfg SpectralConfig, params SpectralParams) error {
	if !isPowerOfTwo(cfg.N) {
		return fmt.Errorf("spectral ocean resolution must be a power of two, got %d", cfg.N)
	}
	if cfg.OceanSize <= 0 {
		return fmt.Errorf("ocean size must be positive, got %g", cfg.OceanSize)
	}
	if params.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %g", params.Gravity)
	}

	mesh, err := BuildGrid(cfg.N-1, cfg.OceanSize)
	if err != nil {
		return err
	}

	n := cfg.N
	o.cfg = cfg
	o.params = params
	o.mesh = mesh
	o.h0 = make([]complex128, n*n)
	o.hk = make([]complex128, n*n)
	o.dxK = make([]complex128, n*n)
	o.dzK = make([]complex128, n*n)
	o.sxK = make([]complex128, n*n)
	o.szK = make([]complex128, n*n)
	o.fields = Fields{
		N:             n,
		Height:        make([]float32, n*n),
		DisplacementX: make([]float32, n*n),
		DisplacementZ: make([]float32, n*n),
		Normals:       make([]mgl32.Vec3, n*n),
		Foam:          make([]float32, n*n),
	}
	o.time = 0
	o.initialized = true

	o.generateInitialSpectrum()
	o.regenerate(0)

	logger.Log.Info("Spectral ocean initialized",
		zap.Int("resolution", n),
		zap.Float32("size", cfg.OceanSize),
		zap.Bool("choppiness", cfg.EnableChoppiness),
		zap.Bool("foam", cfg.EnableFoam))

	return nil
}

// IsInitialized reports whether Initialize has succeeded.
func (o *SpectralOcean) IsInitialized() bool {
	return o.initialized
}

// Config returns the current configuration snapshot.
func (o *SpectralOcean) Config() SpectralConfig {
	return o.cfg
}

// Params returns the current wave parameter snapshot.
func (o *SpectralOcean) Params() SpectralParams {
	return o.params
}

// Mesh returns the static grid topology. Callers must not mutate it.
func (o *SpectralOcean) Mesh() *GridMesh {
	return o.mesh
}

// CurrentFields returns the fields for the current time. The slices are
// owned by the ocean and rewritten on the next Update.
func (o *SpectralOcean) CurrentFields() *Fields {
	return &o.fields
}

// Time returns the current (scaled) time accumulator.
func (o *SpectralOcean) Time() float32 {
	return o.time
}

// SetParams replaces the wave parameters and regenerates the spectrum and
// fields whole-sale, so a query never observes a half-updated sea.
func (o *SpectralOcean) SetParams(params SpectralParams) error {
	if params.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %g", params.Gravity)
	}
	o.params = params
	if o.initialized {
		o.generateInitialSpectrum()
		o.regenerate(o.time)
	}
	return nil
}

// Update advances time and resynthesizes the spatial fields.
func (o *SpectralOcean) Update(deltaTime float32) {
	if !o.initialized {
		return
	}
	o.time += deltaTime * o.cfg.TimeScale
	o.regenerate(o.time)
}

// waveVector maps grid indices to the discrete wavevector
// k = 2*pi*(index - N/2) / oceanSize.
func (o *SpectralOcean) waveVector(n, m int) mgl32.Vec2 {
	twoPi := 2 * math32.Pi
	return mgl32.Vec2{
		twoPi * float32(n-o.cfg.N/2) / o.cfg.OceanSize,
		twoPi * float32(m-o.cfg.N/2) / o.cfg.OceanSize,
	}
}

// generateInitialSpectrum draws h0(k) for every grid cell: one complex
// Gaussian sample scaled by sqrt(Phillips(k)/2). The DC cell is zeroed.
func (o *SpectralOcean) generateInitialSpectrum() {
	n := o.cfg.N
	rng := rand.New(rand.NewSource(o.params.Seed))

	for m := 0; m < n; m++ {
		for k := 0; k < n; k++ {
			wv := o.waveVector(k, m)
			if wv.Len() < zeroWavevector {
				o.h0[m*n+k] = 0
				continue
			}
			phillips := PhillipsSpectrum(wv, o.params)
			scale := math.Sqrt(float64(phillips) * 0.5)
			o.h0[m*n+k] = complex(rng.NormFloat64()*scale, rng.NormFloat64()*scale)
		}
	}
}

// regenerate evolves the spectrum to time t and inverse-transforms it into
// the spatial fields.
func (o *SpectralOcean) regenerate(t float32) {
	n := o.cfg.N
	gravity := float64(o.params.Gravity)

	for m := 0; m < n; m++ {
		for k := 0; k < n; k++ {
			idx := m*n + k
			wv := o.waveVector(k, m)
			kLen := float64(wv.Len())

			// h(k,t) = h0(k) e^{iwt} + conj(h0(-k)) e^{-iwt} keeps the
			// inverse-transformed height field real without storing a
			// symmetric array.
			omega := math.Sqrt(gravity * kLen)
			s, c := math.Sincos(omega * float64(t))
			forward := complex(c, s)
			conjIdx := ((n-m)%n)*n + (n-k)%n
			h := o.h0[idx]*forward + cmplx.Conj(o.h0[conjIdx])*complex(c, -s)
			o.hk[idx] = h

			if kLen > float64(zeroWavevector) {
				kx := float64(wv.X()) / kLen
				kz := float64(wv.Y()) / kLen
				o.dxK[idx] = h * complex(0, -kx)
				o.dzK[idx] = h * complex(0, -kz)
			} else {
				o.dxK[idx] = 0
				o.dzK[idx] = 0
			}

			// Slope spectrum for analytic normals.
			o.sxK[idx] = h * complex(0, float64(wv.X()))
			o.szK[idx] = h * complex(0, float64(wv.Y()))
		}
	}

	inverseFFT2D(o.hk, n)
	inverseFFT2D(o.sxK, n)
	inverseFFT2D(o.szK, n)
	if o.cfg.EnableChoppiness {
		inverseFFT2D(o.dxK, n)
		inverseFFT2D(o.dzK, n)
	}

	// Displacement is clamped to one grid cell so choppiness can never fold
	// the mesh back over itself.
	cell := o.cfg.OceanSize / float32(n)
	lambda := o.params.Lambda

	for m := 0; m < n; m++ {
		for k := 0; k < n; k++ {
			idx := m*n + k
			sign := float32(1)
			if (m+k)&1 == 1 {
				sign = -1
			}

			o.fields.Height[idx] = float32(real(o.hk[idx])) * sign

			if o.cfg.EnableChoppiness {
				dx := float32(real(o.dxK[idx])) * sign * lambda
				dz := float32(real(o.dzK[idx])) * sign * lambda
				o.fields.DisplacementX[idx] = mgl32.Clamp(dx, -cell, cell)
				o.fields.DisplacementZ[idx] = mgl32.Clamp(dz, -cell, cell)
			} else {
				o.fields.DisplacementX[idx] = 0
				o.fields.DisplacementZ[idx] = 0
			}

			sx := float32(real(o.sxK[idx])) * sign
			sz := float32(real(o.szK[idx])) * sign
			o.fields.Normals[idx] = mgl32.Vec3{-sx, 1, -sz}.Normalize()
		}
	}

	o.updateFoam(cell)
}

// updateFoam derives foam intensity from the Jacobian of the horizontal
// displacement map: where the map compresses space below the threshold,
// crests are folding and foam appears.
func (o *SpectralOcean) updateFoam(cell float32) {
	n := o.cfg.N
	if !o.cfg.EnableFoam {
		for i := range o.fields.Foam {
			o.fields.Foam[i] = 0
		}
		return
	}

	inv2 := 1 / (2 * cell)
	for m := 0; m < n; m++ {
		for k := 0; k < n; k++ {
			// The sea is periodic, so central differences wrap.
			left := m*n + (k-1+n)%n
			right := m*n + (k+1)%n
			up := ((m-1+n)%n)*n + k
			down := ((m+1)%n)*n + k

			jxx := 1 + (o.fields.DisplacementX[right]-o.fields.DisplacementX[left])*inv2
			jzz := 1 + (o.fields.DisplacementZ[down]-o.fields.DisplacementZ[up])*inv2
			jxz := (o.fields.DisplacementX[down] - o.fields.DisplacementX[up]) * inv2
			jzx := (o.fields.DisplacementZ[right] - o.fields.DisplacementZ[left]) * inv2

			jacobian := jxx*jzz - jxz*jzx
			o.fields.Foam[m*n+k] = math32.Max(0, o.cfg.FoamThreshold-jacobian)
		}
	}
}

// sampleBilinear interpolates a scalar field at world XZ coordinates. The
// field tiles, so coordinates wrap.
func (o *SpectralOcean) sampleBilinear(field []float32, x, z float32) float32 {
	n := o.cfg.N
	u := (x/o.cfg.OceanSize + 0.5) * float32(n)
	v := (z/o.cfg.OceanSize + 0.5) * float32(n)

	x0 := int(math32.Floor(u))
	z0 := int(math32.Floor(v))
	fx := u - float32(x0)
	fz := v - float32(z0)

	x0 = ((x0 % n) + n) % n
	z0 = ((z0 % n) + n) % n
	x1 := (x0 + 1) % n
	z1 := (z0 + 1) % n

	h00 := field[z0*n+x0]
	h10 := field[z0*n+x1]
	h01 := field[z1*n+x0]
	h11 := field[z1*n+x1]

	top := h00 + (h10-h00)*fx
	bottom := h01 + (h11-h01)*fx
	return top + (bottom-top)*fz
}

// SampleHeight returns the bilinearly interpolated surface height at a
// world XZ position for the current fields.
func (o *SpectralOcean) SampleHeight(x, z float32) float32 {
	if !o.initialized {
		return 0
	}
	return o.sampleBilinear(o.fields.Height, x, z)
}

// SampleDisplacement returns the interpolated horizontal displacement at a
// world XZ position.
func (o *SpectralOcean) SampleDisplacement(x, z float32) mgl32.Vec2 {
	if !o.initialized || !o.cfg.EnableChoppiness {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{
		o.sampleBilinear(o.fields.DisplacementX, x, z),
		o.sampleBilinear(o.fields.DisplacementZ, x, z),
	}
}

// SampleNormal returns the interpolated surface normal at a world XZ
// position.
func (o *SpectralOcean) SampleNormal(x, z float32) mgl32.Vec3 {
	if !o.initialized {
		return mgl32.Vec3{0, 1, 0}
	}

	n := o.cfg.N
	u := (x/o.cfg.OceanSize + 0.5) * float32(n)
	v := (z/o.cfg.OceanSize + 0.5) * float32(n)

	x0 := int(math32.Floor(u))
	z0 := int(math32.Floor(v))
	fx := u - float32(x0)
	fz := v - float32(z0)

	x0 = ((x0 % n) + n) % n
	z0 = ((z0 % n) + n) % n
	x1 := (x0 + 1) % n
	z1 := (z0 + 1) % n

	top := o.fields.Normals[z0*n+x0].Mul(1 - fx).Add(o.fields.Normals[z0*n+x1].Mul(fx))
	bottom := o.fields.Normals[z1*n+x0].Mul(1 - fx).Add(o.fields.Normals[z1*n+x1].Mul(fx))
	return top.Mul(1 - fz).Add(bottom.Mul(fz)).Normalize()
}

// SampleFoam returns the interpolated foam intensity at a world XZ position.
func (o *SpectralOcean) SampleFoam(x, z float32) float32 {
	if !o.initialized {
		return 0
	}
	return o.sampleBilinear(o.fields.Foam, x, z)
}
