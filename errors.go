package polylabel

import "errors"

// Errors returned by [Polygon.Validate], [NewSearch], and [Label]. They are
// wrapped with the offending ring's position; use [errors.Is] to test for
// them.
var (
	// ErrEmptyGeometry is returned when the exterior ring has fewer than three
	// distinct vertices, or when the polygon encloses no area.
	ErrEmptyGeometry = errors.New("polylabel: polygon has no area")
	// ErrMalformedRing is returned for rings that aren't closed, have fewer
	// than four points, or contain non-finite coordinates.
	ErrMalformedRing = errors.New("polylabel: malformed ring")
	// ErrInvalidTolerance is returned for tolerances that are not finite or
	// not greater than machine epsilon.
	ErrInvalidTolerance = errors.New("polylabel: invalid tolerance")
)
