// Entries are the band matrices of a 90 degree rotation about X, derived in
// exact arithmetic as square roots of rationals and rounded to float64. Rotations
// built from them are checked against the basis in rotate_test.go.

package sh

// rotX90 holds, for bands 3 to 5, the row-major (2l+1)x(2l+1) matrix that
// rotates a band by +90 degrees about the X axis. Conjugating a Z rotation
// with it yields a Y rotation.
var rotX90 = [MaxOrder][]float64{
	3: {
		0, 0, 0, -0.7905694150420949, 0, 0.6123724356957945, 0,
		0, -1, 0, 0, 0, 0, 0,
		0, 0, 0, -0.6123724356957945, 0, -0.7905694150420949, 0,
		0.7905694150420949, 0, 0.6123724356957945, 0, 0, 0, 0,
		0, 0, 0, 0, -0.25, 0, -0.9682458365518543,
		-0.6123724356957945, 0, 0.7905694150420949, 0, 0, 0, 0,
		0, 0, 0, 0, -0.9682458365518543, 0, 0.25,
	},
	4: {
		0, 0, 0, 0, 0, -0.9354143466934853, 0, 0.3535533905932738, 0,
		0, -0.75, 0, 0.6614378277661477, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, -0.3535533905932738, 0, -0.9354143466934853, 0,
		0, 0.6614378277661477, 0, 0.75, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0.375, 0, 0.5590169943749475, 0, 0.739509972887452,
		0.9354143466934853, 0, 0.3535533905932738, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0.5590169943749475, 0, 0.5, 0, -0.6614378277661477,
		-0.3535533905932738, 0, 0.9354143466934853, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0.739509972887452, 0, -0.6614378277661477, 0, 0.125,
	},
	5: {
		0, 0, 0, 0, 0, 0.701560760020114, 0, -0.6846531968814576, 0, 0.19764235376052372, 0,
		0, -0.5, 0, 0.8660254037844386, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0.5229125165837972, 0, 0.30618621784789724, 0, -0.795495128834866, 0,
		0, 0.8660254037844386, 0, 0.5, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0.4841229182759271, 0, 0.6614378277661477, 0, 0.57282196186948, 0,
		-0.701560760020114, 0, -0.5229125165837972, 0, -0.4841229182759271, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0.125, 0, 0.4050462936504913, 0, 0.9057110466368399,
		0.6846531968814576, 0, -0.30618621784789724, 0, -0.6614378277661477, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0.4050462936504913, 0, 0.8125, 0, -0.4192627457812106,
		-0.19764235376052372, 0, 0.795495128834866, 0, -0.57282196186948, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0.9057110466368399, 0, -0.4192627457812106, 0, 0.0625,
	},
}
