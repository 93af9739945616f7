package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	gmath "github.com/Faultbox/midgard-sh/pkg/math"
)

var errZeroVector = errors.New("zero-length vector")

// parseFloats parses a comma separated list such as "0.28,-0.1,0.5".
func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("empty list")
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseVec3 parses "x,y,z".
func parseVec3(s string) (gmath.Vec3, error) {
	v, err := parseFloats(s)
	if err != nil {
		return gmath.Vec3{}, err
	}
	if len(v) != 3 {
		return gmath.Vec3{}, fmt.Errorf("want 3 components, got %d", len(v))
	}
	return gmath.Vec3{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])}, nil
}

// parseDir parses "x,y,z" into a unit vector in float64.
func parseDir(s string) (r3.Vec, error) {
	v, err := parseFloats(s)
	if err != nil {
		return r3.Vec{}, err
	}
	if len(v) != 3 {
		return r3.Vec{}, fmt.Errorf("want 3 components, got %d", len(v))
	}
	d := r3.Vec{X: v[0], Y: v[1], Z: v[2]}
	if r3.Norm(d) == 0 {
		return r3.Vec{}, errZeroVector
	}
	return r3.Unit(d), nil
}

// parseColor parses "r,g,b", or a single value used for all three channels.
func parseColor(s string) ([3]float32, error) {
	v, err := parseFloats(s)
	if err != nil {
		return [3]float32{}, err
	}
	switch len(v) {
	case 1:
		c := float32(v[0])
		return [3]float32{c, c, c}, nil
	case 3:
		return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}, nil
	default:
		return [3]float32{}, fmt.Errorf("want 1 or 3 components, got %d", len(v))
	}
}
