package lighting

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	gmath "github.com/Faultbox/midgard-sh/pkg/math"
	"github.com/Faultbox/midgard-sh/pkg/sh"
)

func TestLightProject(t *testing.T) {
	const order = 3
	white := sh.Color{R: 1, G: 1, B: 1}

	tests := []struct {
		name  string
		light Light
		want  func(r []float64) error
	}{
		{
			name:  "directional normalizes",
			light: Light{Kind: Directional, Direction: gmath.Vec3{Y: 2}, Color: [3]float32{1, 1, 1}},
			want: func(r []float64) error {
				return sh.EvalDirectionalLight(order, r3.Vec{Y: 1}, white, r, nil, nil)
			},
		},
		{
			name:  "intensity scales",
			light: Light{Kind: Directional, Direction: gmath.Vec3{Z: 1}, Color: [3]float32{1, 1, 1}, Intensity: 2},
			want: func(r []float64) error {
				return sh.EvalDirectionalLight(order, r3.Vec{Z: 1}, sh.Color{R: 2}, r, nil, nil)
			},
		},
		{
			name:  "sun wins over direction",
			light: Light{Kind: Directional, Direction: gmath.Vec3{X: 1}, Sun: &Sun{Latitude: 90}, Color: [3]float32{1, 1, 1}},
			want: func(r []float64) error {
				return sh.EvalDirectionalLight(order, r3.Vec{Y: 1}, white, r, nil, nil)
			},
		},
		{
			name:  "sphere",
			light: Light{Kind: Sphere, Position: gmath.Vec3{X: 4}, Radius: 1, Color: [3]float32{1, 1, 1}},
			want: func(r []float64) error {
				return sh.EvalSphericalLight(order, r3.Vec{X: 4}, 1, white, r, nil, nil)
			},
		},
		{
			name:  "cone in degrees",
			light: Light{Kind: Cone, Direction: gmath.Vec3{Z: 1}, Angle: 30, Color: [3]float32{1, 1, 1}},
			want: func(r []float64) error {
				return sh.EvalConeLight(order, r3.Vec{Z: 1}, float64(gmath.Radians(30)), white, r, nil, nil)
			},
		},
		{
			name:  "hemisphere",
			light: Light{Kind: Hemisphere, Direction: gmath.Vec3{Y: 1}, Color: [3]float32{1, 1, 1}, Bottom: [3]float32{0.5, 0.5, 0.5}},
			want: func(r []float64) error {
				return sh.EvalHemisphereLight(order, r3.Vec{Y: 1}, white, sh.Color{R: 0.5}, r, nil, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]float64, 9)
			if err := tt.light.Project(order, got, nil, nil); err != nil {
				t.Fatalf("Project: %v", err)
			}
			want := make([]float64, 9)
			if err := tt.want(want); err != nil {
				t.Fatal(err)
			}
			if !floats.EqualApprox(got, want, 1e-6) {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestLightProjectErrors(t *testing.T) {
	r := make([]float64, 9)

	tests := []struct {
		name  string
		light Light
		want  error
	}{
		{"unknown kind", Light{Kind: "laser"}, ErrUnknownKind},
		{"no direction", Light{Kind: Cone, Angle: 10}, ErrNoDirection},
		{"negative radius", Light{Kind: Sphere, Radius: -1}, sh.ErrInvalidRadius},
		{"cone too wide", Light{Kind: Cone, Direction: gmath.Vec3{Z: 1}, Angle: 200}, sh.ErrInvalidAngle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.light.Project(3, r, nil, nil); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLightYAML(t *testing.T) {
	doc := `
- name: sun
  kind: directional
  sun: {longitude: 90, latitude: 30}
  color: [1, 0.9, 0.8]
- kind: sphere
  position: {x: 0, y: 5, z: 0}
  radius: 2
  color: [0.2, 0.2, 1]
  intensity: 3
`
	var lights []Light
	if err := yaml.Unmarshal([]byte(doc), &lights); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(lights) != 2 {
		t.Fatalf("decoded %d lights, want 2", len(lights))
	}

	sun := lights[0]
	if sun.String() != "sun" || sun.Kind != Directional || sun.Sun == nil || sun.Sun.Latitude != 30 {
		t.Errorf("sun decoded as %+v", sun)
	}
	if sun.Color != [3]float32{1, 0.9, 0.8} {
		t.Errorf("sun color = %v", sun.Color)
	}

	sphere := lights[1]
	if sphere.String() != "sphere" || sphere.Position != (gmath.Vec3{Y: 5}) || sphere.Radius != 2 || sphere.Intensity != 3 {
		t.Errorf("sphere decoded as %+v", sphere)
	}
}
