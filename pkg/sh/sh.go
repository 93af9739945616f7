// Package sh implements the real orthonormal spherical harmonics basis and the
// algebra used to light with it: evaluation, rotation, products and projection
// of analytic light sources.
//
// A coefficient vector of band order n holds n*n values, band l occupying
// indices l*l .. l*l+2l ordered by m = -l..l. Vectors carry no order tag, so
// every function takes the order explicitly; buffers longer than order*order
// are accepted and only their prefix is used.
//
// All functions are pure and safe for concurrent use as long as each call is
// given its own output storage.
package sh

import (
	"fmt"
	"unsafe"
)

const (
	// MinOrder is the smallest supported band order (bands 0 and 1).
	MinOrder = 2
	// MaxOrder is the largest supported band order (bands 0 through 5).
	MaxOrder = 6
	// MaxCoeffs is the coefficient count of a MaxOrder vector.
	MaxCoeffs = MaxOrder * MaxOrder
)

// Matrix3 is a 3x3 matrix read as At(row, col).
// *r3.Mat and gonum's mat.Dense satisfy it.
type Matrix3 interface {
	At(i, j int) float64
}

// Color is a linear RGB intensity.
type Color struct {
	R, G, B float64
}

// NumCoeffs returns the coefficient count for a band order.
func NumCoeffs(order int) int {
	return order * order
}

// Index returns the position of coefficient (l, m) in a vector.
func Index(l, m int) int {
	return l*l + l + m
}

func checkOrder(order int) error {
	if order < MinOrder || order > MaxOrder {
		return fmt.Errorf("order %d not in [%d, %d]: %w", order, MinOrder, MaxOrder, ErrInvalidOrder)
	}
	return nil
}

// checkBuffers validates the order and that every buffer holds order*order values.
func checkBuffers(order int, bufs ...[]float64) error {
	if err := checkOrder(order); err != nil {
		return err
	}
	n := order * order
	for i, b := range bufs {
		if len(b) < n {
			return fmt.Errorf("buffer %d has %d coefficients, order %d needs %d: %w", i, len(b), order, n, ErrShortBuffer)
		}
	}
	return nil
}

// overlaps reports whether the first n elements of a and b share memory.
func overlaps(a, b []float64, n int) bool {
	if n == 0 || len(a) == 0 || len(b) == 0 {
		return false
	}
	const size = unsafe.Sizeof(float64(0))
	a0 := uintptr(unsafe.Pointer(&a[0]))
	b0 := uintptr(unsafe.Pointer(&b[0]))
	a1 := a0 + uintptr(n)*size
	b1 := b0 + uintptr(n)*size
	return a0 < b1 && b0 < a1
}
