package sh

import (
	"errors"
	"math/rand"
	"testing"
)

// constantOne encodes the function that is 1 everywhere.
func constantOne(order int) []float64 {
	v := make([]float64, order*order)
	v[0] = 3.544907701811032
	return v
}

func TestMultiplyCommutative(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for order := MinOrder; order <= MaxOrder; order++ {
		for trial := 0; trial < 20; trial++ {
			f := randomCoeffs(rng, order)
			g := randomCoeffs(rng, order)
			fg := make([]float64, order*order)
			gf := make([]float64, order*order)
			if err := Multiply(fg, order, f, g); err != nil {
				t.Fatal(err)
			}
			if err := Multiply(gf, order, g, f); err != nil {
				t.Fatal(err)
			}
			for i := range fg {
				if fg[i] != gf[i] {
					t.Fatalf("order %d: f*g[%d] = %v, g*f[%d] = %v", order, i, fg[i], i, gf[i])
				}
			}
		}
	}
}

func TestMultiplyByOne(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for order := MinOrder; order <= MaxOrder; order++ {
		g := randomCoeffs(rng, order)
		got := make([]float64, order*order)
		if err := Multiply(got, order, constantOne(order), g); err != nil {
			t.Fatal(err)
		}
		if d := maxDiff(got, g); d > 1e-12 {
			t.Errorf("order %d: 1*g differs from g by %g", order, d)
		}
	}
}

func TestMultiplyMatchesQuadrature(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	pts := sphereQuadrature(10, 32)

	for order := MinOrder; order <= MaxOrder; order++ {
		n := order * order
		f := randomCoeffs(rng, order)
		g := randomCoeffs(rng, order)

		got := make([]float64, n)
		if err := Multiply(got, order, f, g); err != nil {
			t.Fatal(err)
		}

		want := make([]float64, n)
		y := make([]float64, n)
		for _, p := range pts {
			evalBasis(y, order, p.dir.X, p.dir.Y, p.dir.Z)
			var fv, gv float64
			for i := 0; i < n; i++ {
				fv += f[i] * y[i]
				gv += g[i] * y[i]
			}
			w := p.weight * fv * gv
			for k := 0; k < n; k++ {
				want[k] += w * y[k]
			}
		}

		if d := maxDiff(got, want); d > 1e-10 {
			t.Errorf("order %d: product differs from projected pointwise product by %g", order, d)
		}
	}
}

func TestMultiplyNotAssociative(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	const order = 3
	f := randomCoeffs(rng, order)
	g := randomCoeffs(rng, order)
	h := randomCoeffs(rng, order)

	fg := make([]float64, 9)
	gh := make([]float64, 9)
	left := make([]float64, 9)
	right := make([]float64, 9)
	for _, step := range []struct {
		dst, a, b []float64
	}{
		{fg, f, g}, {left, fg, h}, {gh, g, h}, {right, f, gh},
	} {
		if err := Multiply(step.dst, order, step.a, step.b); err != nil {
			t.Fatal(err)
		}
	}

	if d := maxDiff(left, right); d < 1e-6 {
		t.Errorf("(f*g)*h and f*(g*h) agree to %g; truncation should make them differ", d)
	}
}

func TestMultiplyErrors(t *testing.T) {
	f := make([]float64, 16)
	g := make([]float64, 16)
	for i := range f {
		f[i] = 1
		g[i] = 2
	}

	if err := Multiply(f, 4, f, g); !errors.Is(err, ErrAliasing) {
		t.Errorf("dst == f: expected ErrAliasing, got %v", err)
	}
	if err := Multiply(g[1:], 3, f, g); !errors.Is(err, ErrAliasing) {
		t.Errorf("dst overlapping g: expected ErrAliasing, got %v", err)
	}
	for i := range g {
		if g[i] != 2 {
			t.Fatalf("g modified on error at %d: %v", i, g[i])
		}
	}

	dst := make([]float64, 49)
	if err := Multiply(dst, 7, f, g); !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("expected ErrInvalidOrder, got %v", err)
	}
	if err := Multiply(dst, 4, f[:9], g); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("expected ErrShortBuffer, got %v", err)
	}

	// Separate halves of one array do not overlap.
	buf := make([]float64, 32)
	copy(buf, f)
	if err := Multiply(buf[16:], 4, buf[:16], g); err != nil {
		t.Errorf("disjoint halves: unexpected error %v", err)
	}
}
