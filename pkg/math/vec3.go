// Package math provides the float32 vector, matrix and quaternion types used
// to describe scenes, and their conversion into the float64 types consumed by
// the spherical harmonics engine.
package math

import (
	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a 3D vector. It decodes from YAML as {x, y, z}.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// IsZero reports whether all components are zero.
func (v Vec3) IsZero() bool {
	return v == Vec3{}
}

// R3 widens v to a gonum vector.
func (v Vec3) R3() r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}
