package sh

// gauntTerm is one nonzero triple integral c = ∫ Y_k Y_i Y_j over the sphere.
type gauntTerm struct {
	k, i, j uint8
	c       float64
}

// Multiply stores in dst the projection of the pointwise product of f and g
// onto the basis of the same order. The exact product of two order-n
// functions needs order 2n-1, so higher bands are dropped: the operation is
// commutative but not associative. dst must not overlap f or g.
func Multiply(dst []float64, order int, f, g []float64) error {
	if err := checkBuffers(order, dst, f, g); err != nil {
		return err
	}
	n := order * order
	if overlaps(dst, f, n) || overlaps(dst, g, n) {
		return ErrAliasing
	}

	var y [MaxCoeffs]float64
	switch order {
	case 2:
		multiply(y[:], gaunt2[:], f, g)
	case 3:
		multiply(y[:], gaunt3[:], f, g)
	case 4:
		multiply(y[:], gaunt4[:], f, g)
	case 5:
		multiply(y[:], gaunt5[:], f, g)
	case 6:
		multiply(y[:], gaunt6[:], f, g)
	}
	copy(dst[:n], y[:n])
	return nil
}

// multiply accumulates a product table. The off-diagonal sum f_i*g_j + f_j*g_i
// is symmetric in f and g, so swapping the operands gives bit-identical output.
// The float64 conversions keep the compiler from fusing one side into an FMA.
func multiply(y []float64, table []gauntTerm, f, g []float64) {
	for _, t := range table {
		if t.i == t.j {
			y[t.k] += t.c * (f[t.i] * g[t.i])
		} else {
			y[t.k] += t.c * (float64(f[t.i]*g[t.j]) + float64(f[t.j]*g[t.i]))
		}
	}
}
