package sh

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestEvalDirectionKnownValues(t *testing.T) {
	tests := []struct {
		name string
		dir  r3.Vec
		want map[int]float64
	}{
		{
			name: "up Z",
			dir:  r3.Vec{Z: 1},
			want: map[int]float64{
				0: 0.282094791, 1: 0, 2: 0.488602512, 3: 0,
				6: 0.630783131, 12: 0.746352665, 20: 0.846284375, 30: 0.935602580,
			},
		},
		{
			name: "along Y",
			dir:  r3.Vec{Y: 1},
			want: map[int]float64{
				0: 0.282094791, 1: -0.488602512, 2: 0, 3: 0,
				4: 0, 6: -0.315391565, 8: -0.546274215,
			},
		},
		{
			name: "along X",
			dir:  r3.Vec{X: 1},
			want: map[int]float64{
				1: 0, 3: -0.488602512, 8: 0.546274215, 15: -0.590043590,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]float64, MaxCoeffs)
			if err := EvalDirection(got, MaxOrder, tt.dir); err != nil {
				t.Fatalf("EvalDirection: %v", err)
			}
			for i, want := range tt.want {
				if abs(got[i]-want) > 1e-6*math.Max(1, abs(want)) {
					t.Errorf("coefficient %d = %.9f, want %.9f", i, got[i], want)
				}
			}
		})
	}
}

func TestEvalDirectionPrefix(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	dir := randomDir(rng)
	full := make([]float64, MaxCoeffs)
	if err := EvalDirection(full, MaxOrder, dir); err != nil {
		t.Fatal(err)
	}

	for order := MinOrder; order < MaxOrder; order++ {
		got := make([]float64, MaxCoeffs)
		for i := range got {
			got[i] = 99
		}
		if err := EvalDirection(got, order, dir); err != nil {
			t.Fatalf("order %d: %v", order, err)
		}
		n := order * order
		for i := 0; i < n; i++ {
			if got[i] != full[i] {
				t.Errorf("order %d coefficient %d = %v, want %v", order, i, got[i], full[i])
			}
		}
		for i := n; i < MaxCoeffs; i++ {
			if got[i] != 99 {
				t.Errorf("order %d wrote past its coefficients at %d", order, i)
			}
		}
	}
}

func TestBasisOrthonormal(t *testing.T) {
	pts := sphereQuadrature(12, 24)
	var y [MaxCoeffs]float64
	var gram [MaxCoeffs][MaxCoeffs]float64
	for _, p := range pts {
		evalBasis(y[:], MaxOrder, p.dir.X, p.dir.Y, p.dir.Z)
		for i := 0; i < MaxCoeffs; i++ {
			for j := 0; j < MaxCoeffs; j++ {
				gram[i][j] += p.weight * y[i] * y[j]
			}
		}
	}

	for i := 0; i < MaxCoeffs; i++ {
		for j := 0; j < MaxCoeffs; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if abs(gram[i][j]-want) > 1e-12 {
				t.Errorf("<Y%d, Y%d> = %g, want %g", i, j, gram[i][j], want)
			}
		}
	}
}

func TestBasisNormalizationMonteCarlo(t *testing.T) {
	const samples = 20000
	rng := rand.New(rand.NewSource(7))

	for order := MinOrder; order <= MaxOrder; order++ {
		n := order * order
		y := make([]float64, n)
		sums := make([]float64, n)
		for s := 0; s < samples; s++ {
			dir := randomDir(rng)
			if err := EvalDirection(y, order, dir); err != nil {
				t.Fatal(err)
			}
			// Addition theorem: each band's Y^2 sums to (2l+1)/(4pi), order^2/(4pi) in total.
			d, err := Dot(order, y, y)
			if err != nil {
				t.Fatal(err)
			}
			if want := float64(n) / (4 * math.Pi); abs(d-want) > 1e-9 {
				t.Fatalf("order %d: |Y(d)|^2 = %v, want %v", order, d, want)
			}
			for i := range y {
				sums[i] += y[i] * y[i]
			}
		}
		for i, s := range sums {
			norm := 4 * math.Pi * s / samples
			if abs(norm-1) > 0.05 {
				t.Errorf("order %d: Monte-Carlo norm of Y%d = %.4f, want ~1", order, i, norm)
			}
		}
	}
}

func TestEvalDirectionErrors(t *testing.T) {
	dir := r3.Vec{Z: 1}
	for _, order := range []int{-1, 0, 1, 7, 10} {
		dst := make([]float64, 100)
		if err := EvalDirection(dst, order, dir); !errors.Is(err, ErrInvalidOrder) {
			t.Errorf("order %d: expected ErrInvalidOrder, got %v", order, err)
		}
		for i, v := range dst {
			if v != 0 {
				t.Fatalf("order %d: wrote %v at %d on error", order, v, i)
			}
		}
	}

	if err := EvalDirection(make([]float64, 8), 3, dir); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("expected ErrShortBuffer, got %v", err)
	}
}

func TestEval(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	dir := randomDir(rng)
	coeffs := make([]float64, 16)
	if err := EvalDirection(coeffs, 4, dir); err != nil {
		t.Fatal(err)
	}

	// A basis vector evaluated at its own direction gives sum Y^2 = n/(4pi).
	got, err := Eval(4, coeffs, dir)
	if err != nil {
		t.Fatal(err)
	}
	if want := 16 / (4 * math.Pi); abs(got-want) > 1e-12 {
		t.Errorf("Eval = %v, want %v", got, want)
	}
}
