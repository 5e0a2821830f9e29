package renderer

import "github.com/go-gl/mathgl/mgl32"

// LightKind selects how a light's geometry is interpreted.
type LightKind int

const (
	DirectionalLight LightKind = iota
	PointLight
	SpotLight
)

func (k LightKind) String() string {
	switch k {
	case DirectionalLight:
		return "directional"
	case PointLight:
		return "point"
	case SpotLight:
		return "spot"
	default:
		return "unknown"
	}
}

// Light is a single scene light. Direction is used by directional and spot
// lights, Position by point and spot lights; the unused field is ignored for
// the other kinds.
type Light struct {
	Kind      LightKind
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
	// Spot parameters, cosine of the cone half-angles.
	InnerCutoff float32
	OuterCutoff float32
}

// Sun is the default light of the ocean demo: low afternoon sun from the
// west.
func Sun() *Light {
	return &Light{
		Kind:      DirectionalLight,
		Direction: mgl32.Vec3{-0.4, -0.6, -0.2}.Normalize(),
		Color:     mgl32.Vec3{1.0, 0.95, 0.85},
		Intensity: 1.2,
	}
}
