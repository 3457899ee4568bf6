package geom

import "errors"

var (
	// ErrInvalidGeometry is returned for outlines that cannot produce a
	// separating axis: fewer than 3 points, a zero-length edge, a non-positive
	// box size or non-finite coordinates.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrOutOfRangeTransform is returned when a transform or a point resolved
	// through it is NaN or infinite.
	ErrOutOfRangeTransform = errors.New("out of range transform")
)
