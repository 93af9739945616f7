package sh

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Add stores a + b in dst. dst may alias a or b.
func Add(dst []float64, order int, a, b []float64) error {
	if err := checkBuffers(order, dst, a, b); err != nil {
		return err
	}
	n := order * order
	floats.AddTo(dst[:n], a[:n], b[:n])
	return nil
}

// Scale stores k * a in dst. dst may alias a.
func Scale(dst []float64, order int, a []float64, k float64) error {
	if err := checkBuffers(order, dst, a); err != nil {
		return err
	}
	n := order * order
	floats.ScaleTo(dst[:n], k, a[:n])
	return nil
}

// Dot returns the inner product of a and b, which is the integral over the
// sphere of the product of the two functions.
func Dot(order int, a, b []float64) (float64, error) {
	if err := checkBuffers(order, a, b); err != nil {
		return 0, err
	}
	n := order * order
	return floats.Dot(a[:n], b[:n]), nil
}

// Eval returns the value of the function encoded by coeffs in direction dir.
func Eval(order int, coeffs []float64, dir r3.Vec) (float64, error) {
	if err := checkBuffers(order, coeffs); err != nil {
		return 0, err
	}
	var basis [MaxCoeffs]float64
	evalBasis(basis[:], order, dir.X, dir.Y, dir.Z)
	n := order * order
	return floats.Dot(coeffs[:n], basis[:n]), nil
}

// lambertBand holds the clamped cosine kernel A_l divided by pi for l = 0..5.
var lambertBand = [MaxOrder]float64{1, 2.0 / 3.0, 0.25, 0, -1.0 / 24.0, 0}

// ConvolveLambert convolves src with the clamped cosine lobe and divides by
// pi, turning incident radiance into the exit radiance of a white Lambertian
// surface. dst may alias src.
func ConvolveLambert(dst []float64, order int, src []float64) error {
	if err := checkBuffers(order, dst, src); err != nil {
		return err
	}
	for l := 0; l < order; l++ {
		k := lambertBand[l]
		for i := l * l; i < (l+1)*(l+1); i++ {
			dst[i] = src[i] * k
		}
	}
	return nil
}
