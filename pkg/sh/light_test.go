package sh

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/spatial/r3"
)

var white = Color{R: 1, G: 1, B: 1}

func TestDirectionalLightKnownValues(t *testing.T) {
	r := make([]float64, 4)
	if err := EvalDirectionalLight(2, r3.Vec{Y: 1}, white, r, nil, nil); err != nil {
		t.Fatal(err)
	}
	want := []float64{1.1816359006036772, -2.046653415892977, 0, 0}
	if d := maxDiff(r, want); d > 1e-12 {
		t.Errorf("got %v, want %v", r, want)
	}
}

func TestDirectionalLightReflectsColor(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	color := Color{R: 0.9, G: 0.5, B: 0.25}

	for order := MinOrder; order <= MaxOrder; order++ {
		n := order * order
		dir := randomDir(rng)
		r, g, b := make([]float64, n), make([]float64, n), make([]float64, n)
		if err := EvalDirectionalLight(order, dir, color, r, g, b); err != nil {
			t.Fatal(err)
		}

		for _, tc := range []struct {
			coeffs []float64
			want   float64
		}{{r, color.R}, {g, color.G}, {b, color.B}} {
			if err := ConvolveLambert(tc.coeffs, order, tc.coeffs); err != nil {
				t.Fatal(err)
			}
			got, err := Eval(order, tc.coeffs, dir)
			if err != nil {
				t.Fatal(err)
			}
			if abs(got-tc.want) > 1e-12 {
				t.Errorf("order %d: exit radiance %v, want %v", order, got, tc.want)
			}
		}
	}
}

func TestLightNilChannels(t *testing.T) {
	r := make([]float64, 9)
	g := make([]float64, 9)
	if err := EvalConeLight(3, r3.Vec{Z: 1}, 0.3, Color{R: 1, G: 2}, r, g, nil); err != nil {
		t.Fatal(err)
	}
	for i := range r {
		if abs(g[i]-2*r[i]) > 1e-15 {
			t.Errorf("coefficient %d: green %v is not twice red %v", i, g[i], r[i])
		}
	}
}

func TestConeLightDegeneratesToDirectional(t *testing.T) {
	rng := rand.New(rand.NewSource(32))
	for order := MinOrder; order <= MaxOrder; order++ {
		n := order * order
		dir := randomDir(rng)
		directional := make([]float64, n)
		if err := EvalDirectionalLight(order, dir, white, directional, nil, nil); err != nil {
			t.Fatal(err)
		}

		tiny := make([]float64, n)
		if err := EvalConeLight(order, dir, 5e-5, white, tiny, nil, nil); err != nil {
			t.Fatal(err)
		}
		if d := maxDiff(tiny, directional); d != 0 {
			t.Errorf("order %d: cone below threshold differs from directional by %g", order, d)
		}
	}
}

func TestConeLightMatchesSphere(t *testing.T) {
	rng := rand.New(rand.NewSource(34))
	for order := MinOrder; order <= MaxOrder; order++ {
		n := order * order
		for _, angle := range []float64{1e-3, 0.5, 1.2, math.Pi / 2} {
			dir := randomDir(rng)
			cone := make([]float64, n)
			if err := EvalConeLight(order, dir, angle, white, cone, nil, nil); err != nil {
				t.Fatal(err)
			}

			// A unit sphere at distance 1/sin(a) subtends a cap of half-angle a.
			sphere := make([]float64, n)
			pos := r3.Scale(1/math.Sin(angle), dir)
			if err := EvalSphericalLight(order, pos, 1, white, sphere, nil, nil); err != nil {
				t.Fatal(err)
			}
			if d := maxDiff(cone, sphere); d > 1e-12 {
				t.Errorf("order %d angle %v: cone differs from sphere by %g", order, angle, d)
			}
		}
	}

	r := make([]float64, 9)
	if err := EvalConeLight(3, r3.Vec{Z: 1}, math.Pi, white, r, nil, nil); err != nil {
		t.Fatal(err)
	}
	if want := 3.544907701811032; abs(r[0]-want) > 1e-12 {
		t.Errorf("full sphere cone c0 = %v, want %v", r[0], want)
	}
}

func TestSphericalLight(t *testing.T) {
	t.Run("receiver inside", func(t *testing.T) {
		r := make([]float64, 4)
		if err := EvalSphericalLight(2, r3.Vec{X: 0.1}, 1, white, r, nil, nil); err != nil {
			t.Fatal(err)
		}
		if want := math.Sqrt(math.Pi); abs(r[0]-want) > 1e-12 {
			t.Errorf("c0 = %v, want %v", r[0], want)
		}
	})

	t.Run("far away", func(t *testing.T) {
		r := make([]float64, 9)
		if err := EvalSphericalLight(3, r3.Vec{Z: 10}, 1, white, r, nil, nil); err != nil {
			t.Fatal(err)
		}
		want := 0.28209479177387814 * 2 * math.Pi * (1 - math.Sqrt(0.99))
		if abs(r[0]-want) > 1e-12 {
			t.Errorf("c0 = %v, want %v", r[0], want)
		}
		// Symmetric about Z, so only m = 0 survives.
		for _, i := range []int{1, 3, 4, 5, 7, 8} {
			if abs(r[i]) > 1e-15 {
				t.Errorf("coefficient %d = %v, want 0", i, r[i])
			}
		}
	})

	t.Run("centered on receiver", func(t *testing.T) {
		r := make([]float64, 4)
		if err := EvalSphericalLight(2, r3.Vec{}, 0.5, white, r, nil, nil); err != nil {
			t.Fatal(err)
		}
		if r[2] <= 0 {
			t.Errorf("expected the lit hemisphere to face +Z, got %v", r)
		}
	})
}

func TestHemisphereLight(t *testing.T) {
	const order = 4
	r := make([]float64, 16)
	for i := range r {
		r[i] = 42
	}
	if err := EvalHemisphereLight(order, r3.Vec{Z: 1}, white, Color{}, r, nil, nil); err != nil {
		t.Fatal(err)
	}
	if want := 1.7724538509055159; abs(r[0]-want) > 1e-12 {
		t.Errorf("c0 = %v, want %v", r[0], want)
	}
	for i := 4; i < 16; i++ {
		if r[i] != 0 {
			t.Errorf("coefficient %d = %v, want 0", i, r[i])
		}
	}

	// Bands 0 and 1 of a lit hemisphere match a sphere surrounding the receiver.
	rng := rand.New(rand.NewSource(33))
	dir := randomDir(rng)
	hemi := make([]float64, 16)
	sphere := make([]float64, 16)
	if err := EvalHemisphereLight(order, dir, white, Color{}, hemi, nil, nil); err != nil {
		t.Fatal(err)
	}
	if err := EvalSphericalLight(order, r3.Scale(0.5, dir), 1, white, sphere, nil, nil); err != nil {
		t.Fatal(err)
	}
	if d := maxDiff(hemi[:4], sphere[:4]); d > 1e-12 {
		t.Errorf("hemisphere bands 0-1 differ from enclosing sphere by %g", d)
	}
}

func TestCapIntegral(t *testing.T) {
	for _, angle := range []float64{0.1, 0.7, math.Pi / 2, 2.5} {
		got := make([]float64, MaxOrder)
		if err := CapIntegral(got, MaxOrder, angle); err != nil {
			t.Fatal(err)
		}
		for l := 0; l < MaxOrder; l++ {
			zonal := func(z float64) float64 {
				var y [MaxCoeffs]float64
				evalBasis(y[:], MaxOrder, math.Sqrt(1-z*z), 0, z)
				return 2 * math.Pi * y[Index(l, 0)]
			}
			want := quad.Fixed(zonal, math.Cos(angle), 1, 12, quad.Legendre{}, 0)
			if abs(got[l]-want) > 1e-12 {
				t.Errorf("angle %v band %d = %v, want %v", angle, l, got[l], want)
			}
		}
	}

	full := make([]float64, MaxOrder)
	if err := CapIntegral(full, MaxOrder, math.Pi); err != nil {
		t.Fatal(err)
	}
	want := []float64{3.544907701811032, 0, 0, 0, 0, 0}
	if d := maxDiff(full, want); d > 1e-12 {
		t.Errorf("full sphere = %v, want %v", full, want)
	}
}

func TestLightErrors(t *testing.T) {
	buf := make([]float64, 36)
	short := make([]float64, 8)
	dir := r3.Vec{Z: 1}

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"negative radius", func() error { return EvalSphericalLight(3, dir, -1, white, buf, nil, nil) }, ErrInvalidRadius},
		{"negative angle", func() error { return EvalConeLight(3, dir, -0.1, white, buf, nil, nil) }, ErrInvalidAngle},
		{"angle past pi", func() error { return EvalConeLight(3, dir, 3.2, white, buf, nil, nil) }, ErrInvalidAngle},
		{"order", func() error { return EvalDirectionalLight(7, dir, white, buf, nil, nil) }, ErrInvalidOrder},
		{"short green", func() error { return EvalHemisphereLight(3, dir, white, white, buf, short, nil) }, ErrShortBuffer},
		{"nil red", func() error { return EvalDirectionalLight(2, dir, white, nil, buf, buf) }, ErrShortBuffer},
		{"cap order", func() error { return CapIntegral(buf, 1, 0.5) }, ErrInvalidOrder},
		{"cap short", func() error { return CapIntegral(buf[:3], 4, 0.5) }, ErrShortBuffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buffer written on error at %d", i)
		}
	}

	if err := EvalConeLight(3, dir, math.Pi, white, buf, nil, nil); err != nil {
		t.Errorf("cone angle pi: unexpected error %v", err)
	}
}
