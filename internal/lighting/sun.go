package lighting

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SunDirection converts longitude/latitude angles in degrees to a unit vector
// pointing towards the sun. Longitude is rotation around the Y axis (0-360),
// latitude is elevation from the horizon (0-90).
func SunDirection(longitude, latitude float64) r3.Vec {
	lonRad := longitude * math.Pi / 180.0
	latRad := latitude * math.Pi / 180.0

	// Spherical to Cartesian conversion, Y up
	return r3.Vec{
		X: math.Cos(latRad) * math.Sin(lonRad),
		Y: math.Sin(latRad),
		Z: math.Cos(latRad) * math.Cos(lonRad),
	}
}
