package lighting

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	gmath "github.com/Faultbox/midgard-sh/pkg/math"
	"github.com/Faultbox/midgard-sh/pkg/sh"
)

func newEnv(t *testing.T, order int) *Environment {
	t.Helper()
	e, err := NewEnvironment(order)
	if err != nil {
		t.Fatalf("NewEnvironment: %v", err)
	}
	return e
}

func colorNear(a, b sh.Color, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol && math.Abs(a.G-b.G) <= tol && math.Abs(a.B-b.B) <= tol
}

func TestNewEnvironment(t *testing.T) {
	e := newEnv(t, 4)
	if len(e.R) != 16 || len(e.G) != 16 || len(e.B) != 16 {
		t.Errorf("channel lengths = %d, %d, %d, want 16", len(e.R), len(e.G), len(e.B))
	}

	for _, order := range []int{1, 7} {
		if _, err := NewEnvironment(order); !errors.Is(err, sh.ErrInvalidOrder) {
			t.Errorf("order %d: expected ErrInvalidOrder, got %v", order, err)
		}
	}
}

func TestEnvironmentSumsLights(t *testing.T) {
	const order = 3
	a := Light{Kind: Directional, Direction: gmath.Vec3{X: 1}, Color: [3]float32{1, 0, 0}}
	b := Light{Kind: Sphere, Position: gmath.Vec3{Z: 3}, Radius: 1, Color: [3]float32{0, 1, 0.5}}

	e := newEnv(t, order)
	if err := e.SetLights([]Light{a, b}); err != nil {
		t.Fatalf("SetLights: %v", err)
	}
	if len(e.Lights) != 2 {
		t.Fatalf("got %d lights, want 2", len(e.Lights))
	}

	ar, ag, ab := make([]float64, 9), make([]float64, 9), make([]float64, 9)
	br, bg, bb := make([]float64, 9), make([]float64, 9), make([]float64, 9)
	if err := a.Project(order, ar, ag, ab); err != nil {
		t.Fatal(err)
	}
	if err := b.Project(order, br, bg, bb); err != nil {
		t.Fatal(err)
	}
	floats.Add(ar, br)
	floats.Add(ag, bg)
	floats.Add(ab, bb)

	if !floats.EqualApprox(e.R, ar, 1e-12) || !floats.EqualApprox(e.G, ag, 1e-12) || !floats.EqualApprox(e.B, ab, 1e-12) {
		t.Errorf("environment is not the sum of its lights")
	}

	e.Clear()
	if len(e.Lights) != 0 || floats.Max(e.R) != 0 || floats.Min(e.R) != 0 {
		t.Errorf("Clear left %d lights, R = %v", len(e.Lights), e.R)
	}
}

func TestEnvironmentDiffuse(t *testing.T) {
	e := newEnv(t, 5)
	sun := Light{Kind: Directional, Sun: &Sun{Longitude: 30, Latitude: 60}, Color: [3]float32{1, 0.5, 0.25}}
	if err := e.AddLight(sun); err != nil {
		t.Fatal(err)
	}

	got, err := e.Diffuse(SunDirection(30, 60))
	if err != nil {
		t.Fatal(err)
	}
	if want := (sh.Color{R: 1, G: 0.5, B: 0.25}); !colorNear(got, want, 1e-6) {
		t.Errorf("Diffuse facing the sun = %+v, want %+v", got, want)
	}

	// The lobe of a directional light peaks at its direction.
	peak, err := e.Radiance(SunDirection(30, 60))
	if err != nil {
		t.Fatal(err)
	}
	away, err := e.Radiance(r3.Scale(-1, SunDirection(30, 60)))
	if err != nil {
		t.Fatal(err)
	}
	if peak.R <= away.R {
		t.Errorf("radiance towards the sun %v not above radiance away %v", peak.R, away.R)
	}
}

func TestEnvironmentRotate(t *testing.T) {
	e := newEnv(t, 6)
	if err := e.AddLight(Light{Kind: Cone, Direction: gmath.Vec3{Z: 1}, Angle: 20, Color: [3]float32{1, 1, 1}}); err != nil {
		t.Fatal(err)
	}
	before, err := e.Diffuse(r3.Vec{Z: 1})
	if err != nil {
		t.Fatal(err)
	}

	// Rx(90) turns +Z into -Y.
	if err := e.Rotate(gmath.RotateX(math.Pi / 2).Rotation()); err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	after, err := e.Diffuse(r3.Vec{Y: -1})
	if err != nil {
		t.Fatal(err)
	}
	if !colorNear(before, after, 1e-5) {
		t.Errorf("diffuse at rotated normal = %+v, want %+v", after, before)
	}
}

func TestEnvironmentOcclude(t *testing.T) {
	e := newEnv(t, 3)
	if err := e.AddLight(Light{Kind: Hemisphere, Direction: gmath.Vec3{Y: 1}, Color: [3]float32{1, 1, 1}}); err != nil {
		t.Fatal(err)
	}
	want := append([]float64(nil), e.R...)

	// The constant function 1 leaves the environment as it is.
	one := make([]float64, 9)
	one[0] = 2 * math.Sqrt(math.Pi)
	if err := e.Occlude(one); err != nil {
		t.Fatal(err)
	}
	if !floats.EqualApprox(e.R, want, 1e-12) {
		t.Errorf("occluding by 1 changed R from %v to %v", want, e.R)
	}

	// Zero visibility blacks everything out.
	if err := e.Occlude(make([]float64, 9)); err != nil {
		t.Fatal(err)
	}
	if floats.Norm(e.G, 2) != 0 {
		t.Errorf("occluding by 0 left G = %v", e.G)
	}

	if err := e.Occlude(make([]float64, 4)); !errors.Is(err, sh.ErrShortBuffer) {
		t.Errorf("expected ErrShortBuffer, got %v", err)
	}
}

func TestEnvironmentLimits(t *testing.T) {
	e := newEnv(t, 2)
	l := Light{Kind: Directional, Direction: gmath.Vec3{Z: 1}, Color: [3]float32{0.1, 0.1, 0.1}}
	for i := 0; i < MaxLights; i++ {
		if err := e.AddLight(l); err != nil {
			t.Fatalf("light %d: %v", i, err)
		}
	}
	if err := e.AddLight(l); !errors.Is(err, ErrTooManyLights) {
		t.Errorf("expected ErrTooManyLights, got %v", err)
	}

	bad := Light{Kind: "laser"}
	err := e.SetLights([]Light{l, bad, l})
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
	if len(e.Lights) != 1 {
		t.Errorf("SetLights kept %d lights, want the 1 before the failure", len(e.Lights))
	}
}
