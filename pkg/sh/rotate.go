package sh

import "math"

// poleTolerance is the smallest sin(beta) for which the Z-Y-Z angles are read
// from the third column; below it the rotation is treated as a pure Z turn.
const poleTolerance = 1e-4

const (
	sqrt3     = 1.7320508075688772
	sqrt3Half = 0.8660254037844386
)

// Rotate stores in dst the coefficients of src rotated by the rotation
// matrix m: if src encodes f then dst encodes g(d) = f(mᵀd), so a lobe
// pointing along d ends up pointing along m*d. m must be orthonormal with
// determinant +1; that is not checked. dst must not overlap src.
func Rotate(dst []float64, order int, m Matrix3, src []float64) error {
	if err := checkBuffers(order, dst, src); err != nil {
		return err
	}
	if overlaps(dst, src, order*order) {
		return ErrAliasing
	}

	var r [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m.At(i, j)
		}
	}

	dst[0] = src[0]
	rotateBand1(dst, &r, src)
	if order > 2 {
		rotateBand2(dst, &r, src)
	}
	if order > 3 {
		e := eulerZYZ(&r)
		alpha := newAngleMultiples(e.ca, e.sa, order)
		beta := newAngleMultiples(e.cb, e.sb, order)
		gamma := newAngleMultiples(e.cg, e.sg, order)
		for l := 3; l < order; l++ {
			rotateBandZYZ(dst, l, &alpha, &beta, &gamma, src)
		}
	}
	return nil
}

// rotateBand1 treats band 1 as the vector (-c[3], -c[1], c[2]) and multiplies
// it by r.
func rotateBand1(dst []float64, r *[3][3]float64, src []float64) {
	sm, s0, sp := src[1], src[2], src[3]
	dst[1] = r[1][1]*sm - r[1][2]*s0 + r[1][0]*sp
	dst[2] = -r[2][1]*sm + r[2][2]*s0 - r[2][0]*sp
	dst[3] = r[0][1]*sm - r[0][2]*s0 + r[0][0]*sp
}

// rotateBand2 applies the closed-form 5x5 band 2 matrix. The entries are the
// traceless quadratic forms of the basis conjugated by r, simplified with the
// orthonormality of its rows and columns.
func rotateBand2(dst []float64, r *[3][3]float64, src []float64) {
	r00, r01, r02 := r[0][0], r[0][1], r[0][2]
	r10, r11, r12 := r[1][0], r[1][1], r[1][2]
	r20, r21, r22 := r[2][0], r[2][1], r[2][2]

	var d [5][5]float64

	d[0][0] = r00*r11 + r01*r10
	d[0][1] = -(r01*r12 + r02*r11)
	d[0][2] = sqrt3 * r02 * r12
	d[0][3] = -(r00*r12 + r02*r10)
	d[0][4] = r00*r10 - r01*r11

	d[1][0] = -(r10*r21 + r11*r20)
	d[1][1] = r11*r22 + r12*r21
	d[1][2] = -sqrt3 * r12 * r22
	d[1][3] = r10*r22 + r12*r20
	d[1][4] = r11*r21 - r10*r20

	d[2][0] = sqrt3 * r20 * r21
	d[2][1] = -sqrt3 * r21 * r22
	d[2][2] = 1.5*r22*r22 - 0.5
	d[2][3] = -sqrt3 * r20 * r22
	d[2][4] = sqrt3Half * (r20*r20 - r21*r21)

	d[3][0] = -(r00*r21 + r01*r20)
	d[3][1] = r01*r22 + r02*r21
	d[3][2] = -sqrt3 * r02 * r22
	d[3][3] = r00*r22 + r02*r20
	d[3][4] = r01*r21 - r00*r20

	d[4][0] = r00*r01 - r10*r11
	d[4][1] = r11*r12 - r01*r02
	d[4][2] = sqrt3Half * (r02*r02 - r12*r12)
	d[4][3] = r10*r12 - r00*r02
	d[4][4] = 0.5 * (r00*r00 - r01*r01 - r10*r10 + r11*r11)

	in := src[4:9]
	for i := 0; i < 5; i++ {
		dst[4+i] = d[i][0]*in[0] + d[i][1]*in[1] + d[i][2]*in[2] + d[i][3]*in[3] + d[i][4]*in[4]
	}
}

// zyz holds the cosines and sines of the Euler angles of r = Rz(a)*Ry(b)*Rz(g).
type zyz struct {
	ca, sa float64
	cb, sb float64
	cg, sg float64
}

// eulerZYZ reads the angles off the third row and column of r. When the third
// column is within poleTolerance of a pole, beta snaps to 0 or pi, gamma to 0,
// and alpha comes from the upper-left block.
func eulerZYZ(r *[3][3]float64) zyz {
	sb := math.Hypot(r[0][2], r[1][2])
	if sb >= poleTolerance {
		return zyz{
			ca: r[0][2] / sb, sa: r[1][2] / sb,
			cb: r[2][2], sb: sb,
			cg: -r[2][0] / sb, sg: r[2][1] / sb,
		}
	}

	e := zyz{cb: 1, cg: 1}
	c, s := r[0][0], r[1][0]
	if r[2][2] < 0 {
		// Ry(pi) negates x, so the block reads (-cos a, -sin a).
		e.cb = -1
		c, s = -c, -s
	}
	if n := math.Hypot(c, s); n > 0 {
		e.ca, e.sa = c/n, s/n
	} else {
		e.ca = 1
	}
	return e
}

// angleMultiples memoizes cos(k*theta) and sin(k*theta) for k < MaxOrder.
type angleMultiples struct {
	c, s [MaxOrder]float64
}

// newAngleMultiples expands cos/sin of theta to the first order multiples
// with the Chebyshev recurrence x((k+1)t) = 2cos(t)x(kt) - x((k-1)t).
func newAngleMultiples(c, s float64, order int) angleMultiples {
	var am angleMultiples
	am.c[0], am.s[0] = 1, 0
	am.c[1], am.s[1] = c, s
	for k := 1; k+1 < order; k++ {
		am.c[k+1] = 2*c*am.c[k] - am.c[k-1]
		am.s[k+1] = 2*c*am.s[k] - am.s[k-1]
	}
	return am
}

// rotateBandZ rotates the 2l+1 coefficients of one band about Z. Position
// l+m holds m; each (m, -m) pair turns by m times the angle.
func rotateBandZ(out []float64, l int, am *angleMultiples, in []float64) {
	out[l] = in[l]
	for m := 1; m <= l; m++ {
		p, q := l+m, l-m
		c, s := am.c[m], am.s[m]
		out[p] = c*in[p] - s*in[q]
		out[q] = s*in[p] + c*in[q]
	}
}

// applyBandMatrix multiplies in by the n x n row-major matrix mat (or its
// transpose) into out.
func applyBandMatrix(out []float64, mat []float64, n int, in []float64, transpose bool) {
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			if transpose {
				sum += mat[j*n+i] * in[j]
			} else {
				sum += mat[i*n+j] * in[j]
			}
		}
		out[i] = sum
	}
}

// rotateBandZYZ rotates band l as Rz(alpha) * Ry(beta) * Rz(gamma) with the Y
// turn computed as X90ᵀ * Rz(beta) * X90.
func rotateBandZYZ(dst []float64, l int, alpha, beta, gamma *angleMultiples, src []float64) {
	n := 2*l + 1
	off := l * l
	x90 := rotX90[l]

	var a, b [2*MaxOrder - 1]float64
	rotateBandZ(a[:n], l, gamma, src[off:off+n])
	applyBandMatrix(b[:n], x90, n, a[:n], false)
	rotateBandZ(a[:n], l, beta, b[:n])
	applyBandMatrix(b[:n], x90, n, a[:n], true)
	rotateBandZ(dst[off:off+n], l, alpha, b[:n])
}

// RotateZ rotates src about the Z axis by angle radians (counterclockwise
// seen from +Z), matching Rotate with the corresponding matrix. dst must not
// overlap src.
func RotateZ(dst []float64, order int, angle float64, src []float64) error {
	if err := checkBuffers(order, dst, src); err != nil {
		return err
	}
	if overlaps(dst, src, order*order) {
		return ErrAliasing
	}

	am := newAngleMultiples(math.Cos(angle), math.Sin(angle), order)
	dst[0] = src[0]
	for l := 1; l < order; l++ {
		off := l * l
		n := 2*l + 1
		rotateBandZ(dst[off:off+n], l, &am, src[off:off+n])
	}
	return nil
}
