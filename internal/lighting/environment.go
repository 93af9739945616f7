package lighting

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/midgard-sh/pkg/sh"
)

// MaxLights is the maximum number of lights an Environment accepts.
const MaxLights = 32

// ErrTooManyLights is returned when adding a light to a full Environment.
var ErrTooManyLights = errors.New("lighting: too many lights")

// Environment accumulates the radiance of a list of lights as one SH vector
// per color channel. It is not safe for concurrent use.
type Environment struct {
	Order   int
	Lights  []Light
	R, G, B []float64

	scratch [3][]float64
}

// NewEnvironment creates an empty environment of the given band order.
func NewEnvironment(order int) (*Environment, error) {
	if order < sh.MinOrder || order > sh.MaxOrder {
		return nil, fmt.Errorf("environment order %d: %w", order, sh.ErrInvalidOrder)
	}
	n := sh.NumCoeffs(order)
	e := &Environment{
		Order:  order,
		Lights: make([]Light, 0, MaxLights),
		R:      make([]float64, n),
		G:      make([]float64, n),
		B:      make([]float64, n),
	}
	for i := range e.scratch {
		e.scratch[i] = make([]float64, n)
	}
	return e, nil
}

// Clear removes all lights and zeroes the coefficients.
func (e *Environment) Clear() {
	e.Lights = e.Lights[:0]
	clear(e.R)
	clear(e.G)
	clear(e.B)
}

// AddLight projects l and adds it to the environment. On error the
// environment is unchanged.
func (e *Environment) AddLight(l Light) error {
	if len(e.Lights) >= MaxLights {
		return fmt.Errorf("light %q: %w", l, ErrTooManyLights)
	}
	s := e.scratch
	if err := l.Project(e.Order, s[0], s[1], s[2]); err != nil {
		return err
	}
	for i, ch := range e.channels() {
		if err := sh.Add(ch, e.Order, ch, s[i]); err != nil {
			return err
		}
	}
	e.Lights = append(e.Lights, l)
	return nil
}

// SetLights replaces all lights. It stops at the first light that fails,
// leaving the ones before it in place.
func (e *Environment) SetLights(lights []Light) error {
	e.Clear()
	for _, l := range lights {
		if err := e.AddLight(l); err != nil {
			return err
		}
	}
	return nil
}

func (e *Environment) channels() [3][]float64 {
	return [3][]float64{e.R, e.G, e.B}
}

// Radiance returns the incoming radiance from direction dir.
func (e *Environment) Radiance(dir r3.Vec) (sh.Color, error) {
	return e.eval(dir, false)
}

// Diffuse returns the exit radiance of a white Lambertian surface whose
// normal is dir, lit by the environment.
func (e *Environment) Diffuse(dir r3.Vec) (sh.Color, error) {
	return e.eval(dir, true)
}

func (e *Environment) eval(dir r3.Vec, lambert bool) (sh.Color, error) {
	var out [3]float64
	for i, ch := range e.channels() {
		if lambert {
			if err := sh.ConvolveLambert(e.scratch[i], e.Order, ch); err != nil {
				return sh.Color{}, err
			}
			ch = e.scratch[i]
		}
		v, err := sh.Eval(e.Order, ch, dir)
		if err != nil {
			return sh.Color{}, err
		}
		out[i] = v
	}
	return sh.Color{R: out[0], G: out[1], B: out[2]}, nil
}

// Rotate turns the whole environment by the rotation matrix m.
func (e *Environment) Rotate(m sh.Matrix3) error {
	for _, ch := range e.channels() {
		if err := sh.Rotate(e.scratch[0], e.Order, m, ch); err != nil {
			return err
		}
		copy(ch, e.scratch[0])
	}
	return nil
}

// Occlude multiplies every channel by a visibility function given in the
// same order, such as a baked ambient occlusion lobe.
func (e *Environment) Occlude(visibility []float64) error {
	for _, ch := range e.channels() {
		if err := sh.Multiply(e.scratch[0], e.Order, ch, visibility); err != nil {
			return err
		}
		copy(ch, e.scratch[0])
	}
	return nil
}
