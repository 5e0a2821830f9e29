package sky

import "github.com/go-gl/mathgl/mgl32"

// WeatherTransition blends one cloud configuration into another over a
// fixed duration with a smoothstep ease.
type WeatherTransition struct {
	start    CloudConfig
	target   CloudConfig
	duration float32
	elapsed  float32
	active   bool
}

// Start begins a transition. A non-positive duration snaps to the target on
// the next Update.
func (t *WeatherTransition) Start(from, to CloudConfig, duration float32) {
	t.start = from
	t.target = to
	t.duration = duration
	t.elapsed = 0
	t.active = true
}

// Active reports whether a transition is in progress.
func (t *WeatherTransition) Active() bool {
	return t.active
}

// Progress returns the raw completion fraction, 1 when idle.
func (t *WeatherTransition) Progress() float32 {
	if !t.active {
		return 1
	}
	return mgl32.Clamp(t.elapsed/t.duration, 0, 1)
}

// Update advances the transition and returns the interpolated configuration
// plus whether the transition is still running. Once finished it returns the
// target exactly.
func (t *WeatherTransition) Update(deltaTime float32) (CloudConfig, bool) {
	if !t.active {
		return t.target, false
	}

	t.elapsed += deltaTime
	if t.duration <= 0 || t.elapsed >= t.duration {
		t.active = false
		return t.target, false
	}

	s := mgl32.Clamp(t.elapsed/t.duration, 0, 1)
	s = s * s * (3 - 2*s)

	mix := func(a, b float32) float32 { return a + (b-a)*s }
	cfg := CloudConfig{
		CloudHeight:    mix(t.start.CloudHeight, t.target.CloudHeight),
		CloudThickness: mix(t.start.CloudThickness, t.target.CloudThickness),
		CloudCoverage:  mix(t.start.CloudCoverage, t.target.CloudCoverage),
		CloudDensity:   mix(t.start.CloudDensity, t.target.CloudDensity),
		CloudScale:     mix(t.start.CloudScale, t.target.CloudScale),
		CloudSpeed:     mix(t.start.CloudSpeed, t.target.CloudSpeed),
		WindDirection: mgl32.Vec3{
			mix(t.start.WindDirection.X(), t.target.WindDirection.X()),
			mix(t.start.WindDirection.Y(), t.target.WindDirection.Y()),
			mix(t.start.WindDirection.Z(), t.target.WindDirection.Z()),
		},
		Octaves: t.target.Octaves,
	}
	return cfg, true
}
