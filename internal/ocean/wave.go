// Package ocean models an animated ocean surface two ways: a Gerstner wave
// superposition evaluated analytically per point, and a Tessendorf-style
// spectral surface synthesized from a Phillips spectrum with an inverse FFT.
// The package only produces data (meshes, height/normal/displacement fields,
// shader uniform values); it holds no GPU resources.
package ocean

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Gravity is the gravitational constant used by the deep-water dispersion
// relation, in m/s^2.
const Gravity = 9.81

// Wave is a single traveling wave of the Gerstner superposition.
type Wave struct {
	Direction mgl32.Vec2 // unit travel direction in the XZ plane
	Amplitude float32
	Frequency float32 // spatial frequency in rad per world unit
	Phase     float32
	Steepness float32 // crest sharpness Q in [0,1]
}

// WaveSet is an ordered sequence of waves. It is regenerated as a whole when
// the wind or wave-count configuration changes and is immutable in between.
type WaveSet []Wave

// GenerateWaveSet derives a deterministic wave set from wind and base wave
// parameters. Each successive wave gets a higher frequency, a lower
// amplitude and a phase offset, with its direction biased toward the wind.
// Amplitudes are rescaled so they sum to baseAmplitude, which keeps the
// summed surface height within the configured amplitude.
func GenerateWaveSet(windDirection mgl32.Vec2, baseFrequency, baseAmplitude float32, count int) WaveSet {
	if count <= 0 {
		return nil
	}

	wind := windDirection
	if wind.Len() < 1e-6 {
		wind = mgl32.Vec2{1, 0}
	}
	wind = wind.Normalize()

	waves := make(WaveSet, 0, count)
	ampSum := float32(0)
	for i := 0; i < count; i++ {
		angle := float32(i) * 0.785398 // 45 degrees
		dir := mgl32.Vec2{math32.Cos(angle), math32.Sin(angle)}
		// Bias toward the wind direction.
		dir = dir.Mul(0.3).Add(wind.Mul(0.7)).Normalize()

		w := Wave{
			Direction: dir,
			Frequency: baseFrequency * (1.0 + float32(i)*0.3),
			Amplitude: baseAmplitude / (1.0 + float32(i)*0.5),
			Phase:     float32(i) * 1.57079, // 90 degrees
		}
		ampSum += w.Amplitude
		waves = append(waves, w)
	}

	// Rescale so the amplitudes sum to baseAmplitude, then pick each wave's
	// steepness at the self-intersection bound Q*A*count <= 1/frequency.
	scale := baseAmplitude / ampSum
	for i := range waves {
		waves[i].Amplitude *= scale
		q := 0.8 / (waves[i].Frequency * waves[i].Amplitude * float32(count))
		waves[i].Steepness = mgl32.Clamp(q, 0, 1)
	}

	return waves
}

// EvaluateWaves evaluates the Gerstner superposition at a world-space XZ
// position and time. It returns the summed displacement along with the
// accumulated tangent and binormal of the displaced surface; the surface
// normal is cross(binormal, tangent), normalized once after the sum.
//
// The ocean vertex shader evaluates this exact formula per vertex; the two
// must stay numerically equivalent for the same inputs.
func EvaluateWaves(position mgl32.Vec2, waves WaveSet, t float32) (displacement, tangent, binormal mgl32.Vec3) {
	tangent = mgl32.Vec3{1, 0, 0}
	binormal = mgl32.Vec3{0, 0, 1}

	count := float32(len(waves))
	if count == 0 {
		return
	}

	for _, w := range waves {
		if w.Frequency <= 0 {
			continue
		}
		c := math32.Sqrt(Gravity / w.Frequency)
		d := w.Direction
		theta := d.Dot(position)*w.Frequency + t*c + w.Phase
		sin, cos := math32.Sincos(theta)

		// Rescale the nominal steepness so the sum over all waves stays
		// within the loop-back bound.
		q := float32(0)
		if fa := w.Frequency * w.Amplitude; fa > 0 {
			q = w.Steepness / (fa * count)
		}

		displacement[0] += q * w.Amplitude * d.X() * cos
		displacement[1] += w.Amplitude * sin
		displacement[2] += q * w.Amplitude * d.Y() * cos

		fa := w.Frequency * w.Amplitude
		tangent[0] += -q * d.X() * d.X() * fa * sin
		tangent[1] += d.X() * fa * cos
		tangent[2] += -q * d.X() * d.Y() * fa * sin

		binormal[0] += -q * d.X() * d.Y() * fa * sin
		binormal[1] += d.Y() * fa * cos
		binormal[2] += -q * d.Y() * d.Y() * fa * sin
	}

	return
}

// WaveHeight sums only the vertical component of the superposition. It is
// what buoyancy probes want and is cheaper than a full evaluation.
func WaveHeight(position mgl32.Vec2, waves WaveSet, t float32) float32 {
	height := float32(0)
	for _, w := range waves {
		if w.Frequency <= 0 {
			continue
		}
		c := math32.Sqrt(Gravity / w.Frequency)
		theta := w.Direction.Dot(position)*w.Frequency + t*c + w.Phase
		height += w.Amplitude * math32.Sin(theta)
	}
	return height
}

// SurfaceNormal derives the unit surface normal from an accumulated
// tangent/binormal pair.
func SurfaceNormal(tangent, binormal mgl32.Vec3) mgl32.Vec3 {
	return binormal.Cross(tangent).Normalize()
}
