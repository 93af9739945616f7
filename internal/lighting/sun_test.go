package lighting

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float64
		want     r3.Vec
	}{
		{"zenith", 0, 90, r3.Vec{Y: 1}},
		{"south horizon", 0, 0, r3.Vec{Z: 1}},
		{"east horizon", 90, 0, r3.Vec{X: 1}},
		{"west at 45", 270, 45, r3.Vec{X: -math.Sqrt2 / 2, Y: math.Sqrt2 / 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.lon, tt.lat)
			if d := r3.Norm(r3.Sub(got, tt.want)); d > 1e-12 {
				t.Errorf("SunDirection(%v, %v) = %v, want %v", tt.lon, tt.lat, got, tt.want)
			}
			if l := r3.Norm(got); math.Abs(l-1) > 1e-12 {
				t.Errorf("length = %v, want 1", l)
			}
		})
	}
}
