package math

import (
	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 [16]float32

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// RotateX returns a rotation matrix around the X axis.
// angle is in radians.
func RotateX(angle float32) Mat4 {
	s, c := math32.Sincos(angle)

	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a rotation matrix around the Y axis.
// angle is in radians.
func RotateY(angle float32) Mat4 {
	s, c := math32.Sincos(angle)

	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a rotation matrix around the Z axis.
// angle is in radians.
func RotateZ(angle float32) Mat4 {
	s, c := math32.Sincos(angle)

	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotateEuler returns Rz(z) * Ry(y) * Rx(x): a vector is turned about X
// first and about Z last. Angles are in radians.
func RotateEuler(x, y, z float32) Mat4 {
	return RotateZ(z).Mul(RotateY(y)).Mul(RotateX(x))
}

// RotateAxis creates a rotation matrix around an arbitrary axis.
// axis should be normalized, angle is in radians.
func RotateAxis(axis Vec3, angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	t := 1 - c

	x, y, z := axis.X, axis.Y, axis.Z

	return Mat4{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// Rotation returns the upper-left 3x3 block as a row-major float64 matrix,
// ready to pass to sh.Rotate.
func (m Mat4) Rotation() *r3.Mat {
	return r3.NewMat([]float64{
		float64(m[0]), float64(m[4]), float64(m[8]),
		float64(m[1]), float64(m[5]), float64(m[9]),
		float64(m[2]), float64(m[6]), float64(m[10]),
	})
}
