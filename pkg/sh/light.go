package sh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// coneDirectionalAngle is the cone angle below which a cone light is
	// evaluated as a directional light.
	coneDirectionalAngle = 1e-4
	// maxConeAngle is pi with a little slack for callers passing math.Pi
	// computed in lower precision.
	maxConeAngle = math.Pi * 1.00001
)

// bandNorm is sqrt(4*pi/(2l+1)), which turns zonal coefficients about the Z
// axis into the coefficients of the same lobe pointing along a direction when
// multiplied with the basis evaluated there.
var bandNorm = [MaxOrder]float64{
	3.544907701811032,
	2.046653415892977,
	1.5853309190424043,
	1.3398491713813576,
	1.1816359006036774,
	1.0688298875771143,
}

// cosWeightedIntegral returns the sum over bands of A_l*(2l+1)/(4*pi), the
// value of the clamped cosine lobe convolved with a delta at its own axis.
// Band 3 and 5 contribute zero.
func cosWeightedIntegral(order int) float64 {
	w := 0.25 + 0.5
	if order > 2 {
		w += 5.0 / 16.0
	}
	if order > 4 {
		w -= 3.0 / 32.0
	}
	return w
}

// CapIntegral writes into dst[0:order] the zonal coefficients of the function
// that is 1 inside the spherical cap around +Z with half-angle angle and 0
// outside.
func CapIntegral(dst []float64, order int, angle float64) error {
	if err := checkOrder(order); err != nil {
		return err
	}
	if len(dst) < order {
		return fmt.Errorf("cap integral needs %d values, got %d: %w", order, len(dst), ErrShortBuffer)
	}
	computeCapInt(dst, order, angle)
	return nil
}

// computeCapInt evaluates sqrt(pi*(2l+1)) times the integral of P_l from
// cos(angle) to 1.
func computeCapInt(dst []float64, order int, angle float64) {
	c := math.Cos(angle)
	c2 := c * c

	dst[0] = 1.772453850905516 * (1 - c)
	dst[1] = 1.5349900619197328 * (1 - c2)
	if order == 2 {
		return
	}
	dst[2] = 1.9816636488030055 * c * (1 - c2)
	if order == 3 {
		return
	}
	dst[3] = 4.689472099834751 * ((-0.625*c2+0.75)*c2 - 0.125)
	if order == 4 {
		return
	}
	dst[4] = -5.317361552716548 * c * ((0.875*c2-1.25)*c2 + 0.375)
	if order == 5 {
		return
	}
	dst[5] = 5.878564381674129 * (0.0625 - ((1.3125*c2-2.1875)*c2+0.9375)*c2)
}

// channel pairs a coefficient output with its color component; a nil
// buffer means the caller does not want that channel.
type channel struct {
	out   []float64
	value float64
}

func colorChannels(color Color, r, g, b []float64) []channel {
	chans := []channel{{r, color.R}}
	if g != nil {
		chans = append(chans, channel{g, color.G})
	}
	if b != nil {
		chans = append(chans, channel{b, color.B})
	}
	return chans
}

func checkChannels(order int, chans []channel) error {
	bufs := make([][]float64, len(chans))
	for i, ch := range chans {
		bufs[i] = ch.out
	}
	return checkBuffers(order, bufs...)
}

// EvalDirectionalLight projects a directional light arriving from dir into
// r, g and b. The intensity is normalized so that a white Lambertian surface
// facing dir reflects exactly color after ConvolveLambert. g and b may be nil.
func EvalDirectionalLight(order int, dir r3.Vec, color Color, r, g, b []float64) error {
	chans := colorChannels(color, r, g, b)
	if err := checkChannels(order, chans); err != nil {
		return err
	}
	evalDirectional(order, dir, chans)
	return nil
}

func evalDirectional(order int, dir r3.Vec, chans []channel) {
	var basis [MaxCoeffs]float64
	evalBasis(basis[:], order, dir.X, dir.Y, dir.Z)
	norm := math.Pi / cosWeightedIntegral(order)
	n := order * order
	for _, ch := range chans {
		k := norm * ch.value
		for i := 0; i < n; i++ {
			ch.out[i] = basis[i] * k
		}
	}
}

// evalCap projects a cap of constant radiance around dir.
func evalCap(order int, dir r3.Vec, angle float64, chans []channel) {
	var basis [MaxCoeffs]float64
	var zonal [MaxOrder]float64
	evalBasis(basis[:], order, dir.X, dir.Y, dir.Z)
	computeCapInt(zonal[:], order, angle)
	for l := 0; l < order; l++ {
		band := zonal[l] * bandNorm[l]
		for _, ch := range chans {
			k := band * ch.value
			for i := l * l; i < (l+1)*(l+1); i++ {
				ch.out[i] = basis[i] * k
			}
		}
	}
}

// EvalSphericalLight projects a sphere of constant radiance color, centered
// at pos relative to the receiver, into r, g and b. A receiver inside the
// sphere sees a hemisphere of light around the direction to the center.
// There is no intensity normalization. g and b may be nil.
func EvalSphericalLight(order int, pos r3.Vec, radius float64, color Color, r, g, b []float64) error {
	if radius < 0 {
		return fmt.Errorf("radius %g: %w", radius, ErrInvalidRadius)
	}
	chans := colorChannels(color, r, g, b)
	if err := checkChannels(order, chans); err != nil {
		return err
	}

	dist := r3.Norm(pos)
	dir := r3.Vec{Z: 1}
	if dist > 0 {
		dir = r3.Scale(1/dist, pos)
	}
	angle := math.Pi / 2
	if dist > radius {
		angle = math.Asin(radius / dist)
	}
	evalCap(order, dir, angle, chans)
	return nil
}

// EvalConeLight projects a cone of constant radiance color around dir with the
// given half-angle in radians into r, g and b. It matches EvalSphericalLight
// for a sphere subtending the same angle. Angles below 1e-4 are evaluated as
// EvalDirectionalLight. g and b may be nil.
func EvalConeLight(order int, dir r3.Vec, angle float64, color Color, r, g, b []float64) error {
	if angle < 0 || angle > maxConeAngle {
		return fmt.Errorf("cone angle %g: %w", angle, ErrInvalidAngle)
	}
	chans := colorChannels(color, r, g, b)
	if err := checkChannels(order, chans); err != nil {
		return err
	}

	if angle < coneDirectionalAngle {
		evalDirectional(order, dir, chans)
		return nil
	}
	evalCap(order, dir, angle, chans)
	return nil
}

// EvalHemisphereLight projects a light that is top in the hemisphere around
// dir and bottom in the opposite one. Only bands 0 and 1 are kept; higher
// bands are written as zero. Per channel, bottom and top are read from the
// matching Color field. g and b may be nil.
func EvalHemisphereLight(order int, dir r3.Vec, top, bottom Color, r, g, b []float64) error {
	avg := Color{R: (top.R + bottom.R) / 2, G: (top.G + bottom.G) / 2, B: (top.B + bottom.B) / 2}
	diff := Color{R: top.R - bottom.R, G: top.G - bottom.G, B: top.B - bottom.B}
	avgChans := colorChannels(avg, r, g, b)
	if err := checkChannels(order, avgChans); err != nil {
		return err
	}
	diffChans := colorChannels(diff, r, g, b)

	var basis [4]float64
	evalBasis(basis[:], MinOrder, dir.X, dir.Y, dir.Z)
	n := order * order
	for i, ch := range avgChans {
		ch.out[0] = 3.544907701811032 * ch.value
		d := math.Pi * diffChans[i].value
		ch.out[1] = basis[1] * d
		ch.out[2] = basis[2] * d
		ch.out[3] = basis[3] * d
		for j := 4; j < n; j++ {
			ch.out[j] = 0
		}
	}
	return nil
}
