package ocean

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// zeroWavevector is the cutoff below which a wavevector is treated as the
// degenerate DC term.
const zeroWavevector = 1e-6

// SpectralParams are the Tessendorf wave parameters driving the Phillips
// spectrum. Immutable snapshot; replacing them regenerates the whole
// spectrum.
type SpectralParams struct {
	A             float32    // global amplitude scaling factor
	WindSpeed     mgl32.Vec2 // wind speed in m/s
	WindDirection mgl32.Vec2
	Lambda        float32 // choppiness scale for horizontal displacement
	Damping       float32 // suppresses capillary-scale waves
	Gravity       float32
	Seed          int64 // Gaussian noise seed; fixed seed gives a fixed sea
}

// DefaultSpectralParams mirrors the stock parameter set for a moderately
// windy open sea.
func DefaultSpectralParams() SpectralParams {
	return SpectralParams{
		A:             0.0001,
		WindSpeed:     mgl32.Vec2{32, 32},
		WindDirection: mgl32.Vec2{1, 1},
		Lambda:        -1.0,
		Damping:       0.001,
		Gravity:       Gravity,
		Seed:          42,
	}
}

// PhillipsSpectrum evaluates the Phillips model at a wavevector. The DC term
// has no physical meaning and returns exactly zero; the directional factor
// (k.w)^2 suppresses waves traveling against the wind.
func PhillipsSpectrum(k mgl32.Vec2, p SpectralParams) float32 {
	kLen := k.Len()
	if kLen < zeroWavevector {
		return 0
	}

	kLen2 := kLen * kLen
	kLen4 := kLen2 * kLen2

	wind := p.WindDirection
	if wind.Len() < zeroWavevector {
		wind = mgl32.Vec2{1, 0}
	}
	kDotWind := k.Mul(1 / kLen).Dot(wind.Normalize())

	// Largest-wave length scale from the wind speed.
	l := p.WindSpeed.Len() * p.WindSpeed.Len() / p.Gravity
	damping := math32.Exp(-kLen2 * p.Damping * p.Damping)

	return p.A * math32.Exp(-1.0/(kLen2*l*l)) / kLen4 * kDotWind * kDotWind * damping
}

// DispersionRelation returns the deep-water temporal frequency for a
// wavevector.
func DispersionRelation(k mgl32.Vec2, gravity float32) float32 {
	return math32.Sqrt(gravity * k.Len())
}
