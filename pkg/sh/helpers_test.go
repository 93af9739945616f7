package sh

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/spatial/r3"
)

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func maxDiff(a, b []float64) float64 {
	var m float64
	for i := range a {
		if d := abs(a[i] - b[i]); d > m {
			m = d
		}
	}
	return m
}

// randomDir returns a uniformly distributed unit vector.
func randomDir(rng *rand.Rand) r3.Vec {
	z := 1.0 - 2.0*rng.Float64()
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * rng.Float64()
	return r3.Vec{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: z}
}

func randomRotation(rng *rand.Rand) r3.Rotation {
	return r3.NewRotation(2*math.Pi*rng.Float64(), randomDir(rng))
}

// rotationMatrix builds the matrix whose columns are the rotated basis vectors.
func rotationMatrix(rots ...r3.Rotation) *r3.Mat {
	apply := func(v r3.Vec) r3.Vec {
		for _, rot := range rots {
			v = rot.Rotate(v)
		}
		return v
	}
	ex := apply(r3.Vec{X: 1})
	ey := apply(r3.Vec{Y: 1})
	ez := apply(r3.Vec{Z: 1})
	return r3.NewMat([]float64{
		ex.X, ey.X, ez.X,
		ex.Y, ey.Y, ez.Y,
		ex.Z, ey.Z, ez.Z,
	})
}

func randomCoeffs(rng *rand.Rand, order int) []float64 {
	v := make([]float64, order*order)
	for i := range v {
		v[i] = 2*rng.Float64() - 1
	}
	return v
}

type quadPoint struct {
	dir    r3.Vec
	weight float64
}

// sphereQuadrature is a Gauss-Legendre rule in z times a uniform rule in phi,
// exact for polynomials of degree below min(2*nz, nphi).
func sphereQuadrature(nz, nphi int) []quadPoint {
	zs := make([]float64, nz)
	ws := make([]float64, nz)
	quad.Legendre{}.FixedLocations(zs, ws, -1, 1)

	pts := make([]quadPoint, 0, nz*nphi)
	for i, z := range zs {
		r := math.Sqrt(math.Max(0, 1-z*z))
		for k := 0; k < nphi; k++ {
			phi := 2 * math.Pi * (float64(k) + 0.5) / float64(nphi)
			pts = append(pts, quadPoint{
				dir:    r3.Vec{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: z},
				weight: ws[i] * 2 * math.Pi / float64(nphi),
			})
		}
	}
	return pts
}
