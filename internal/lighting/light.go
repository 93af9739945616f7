// Package lighting describes scene lights and bakes them into spherical
// harmonics environments.
package lighting

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	gmath "github.com/Faultbox/midgard-sh/pkg/math"
	"github.com/Faultbox/midgard-sh/pkg/sh"
)

// Kind selects how a light is projected.
type Kind string

// Light kinds.
const (
	Directional Kind = "directional"
	Sphere      Kind = "sphere"
	Cone        Kind = "cone"
	Hemisphere  Kind = "hemisphere"
)

var (
	// ErrUnknownKind is returned for a light whose kind is not one of the constants above.
	ErrUnknownKind = errors.New("lighting: unknown light kind")
	// ErrNoDirection is returned for a directional, cone or hemisphere light
	// with a zero direction and no sun angles.
	ErrNoDirection = errors.New("lighting: light has no direction")
)

// Sun places a light by longitude and latitude in degrees. See SunDirection.
type Sun struct {
	Longitude float64 `yaml:"longitude"`
	Latitude  float64 `yaml:"latitude"`
}

// Light is one light source as written in a scene file.
type Light struct {
	Name string `yaml:"name,omitempty"`
	Kind Kind   `yaml:"kind"`

	// Direction points towards the light (directional, cone, hemisphere top).
	// It need not be normalized. Sun takes precedence when set.
	Direction gmath.Vec3 `yaml:"direction,omitempty"`
	Sun       *Sun       `yaml:"sun,omitempty"`

	// Position of a sphere light relative to the receiver.
	Position gmath.Vec3 `yaml:"position,omitempty"`
	Radius   float32    `yaml:"radius,omitempty"`

	// Angle is the cone half-angle in degrees.
	Angle float32 `yaml:"angle,omitempty"`

	Color     [3]float32 `yaml:"color"`
	Bottom    [3]float32 `yaml:"bottom,omitempty"` // hemisphere lower color
	Intensity float32    `yaml:"intensity,omitempty"`
}

// String returns the name, or the kind for unnamed lights.
func (l Light) String() string {
	if l.Name != "" {
		return l.Name
	}
	return string(l.Kind)
}

func (l Light) direction() (r3.Vec, error) {
	if l.Sun != nil {
		return SunDirection(l.Sun.Longitude, l.Sun.Latitude), nil
	}
	if l.Direction.IsZero() {
		return r3.Vec{}, ErrNoDirection
	}
	return l.Direction.Normalize().R3(), nil
}

// scale returns the intensity multiplier; zero means 1.
func (l Light) scale() float64 {
	if l.Intensity == 0 {
		return 1
	}
	return float64(l.Intensity)
}

func toColor(c [3]float32, k float64) sh.Color {
	return sh.Color{R: float64(c[0]) * k, G: float64(c[1]) * k, B: float64(c[2]) * k}
}

// Project writes the light's SH coefficients into r, g and b. g and b may be
// nil to skip those channels.
func (l Light) Project(order int, r, g, b []float64) error {
	if err := l.project(order, r, g, b); err != nil {
		return fmt.Errorf("light %q: %w", l, err)
	}
	return nil
}

func (l Light) project(order int, r, g, b []float64) error {
	color := toColor(l.Color, l.scale())

	switch l.Kind {
	case Sphere:
		return sh.EvalSphericalLight(order, l.Position.R3(), float64(l.Radius), color, r, g, b)
	case Directional, Cone, Hemisphere:
	default:
		return fmt.Errorf("%q: %w", l.Kind, ErrUnknownKind)
	}

	dir, err := l.direction()
	if err != nil {
		return err
	}
	switch l.Kind {
	case Cone:
		return sh.EvalConeLight(order, dir, float64(gmath.Radians(l.Angle)), color, r, g, b)
	case Hemisphere:
		return sh.EvalHemisphereLight(order, dir, color, toColor(l.Bottom, l.scale()), r, g, b)
	default:
		return sh.EvalDirectionalLight(order, dir, color, r, g, b)
	}
}
