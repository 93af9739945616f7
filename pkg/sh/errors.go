package sh

import "errors"

var (
	// ErrInvalidOrder is returned for a band order outside [MinOrder, MaxOrder].
	ErrInvalidOrder = errors.New("sh: invalid order")
	// ErrInvalidRadius is returned for a negative spherical light radius.
	ErrInvalidRadius = errors.New("sh: invalid radius")
	// ErrInvalidAngle is returned for a cone angle outside [0, pi].
	ErrInvalidAngle = errors.New("sh: invalid angle")
	// ErrAliasing is returned when an output buffer overlaps an input that
	// must stay intact while the output is written.
	ErrAliasing = errors.New("sh: output aliases input")
	// ErrShortBuffer is returned when a buffer holds fewer than order*order values.
	ErrShortBuffer = errors.New("sh: buffer too short")
)
