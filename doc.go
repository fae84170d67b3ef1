// Package polylabel finds the pole of inaccessibility of a polygon: the point
// inside it that is furthest away from its boundary. That point is the best
// place to put a label for an irregularly shaped polygon, such as a country or
// a lake, because the label will clear every edge by the greatest possible
// margin. Unlike the centroid, it is always inside the polygon, even for
// concave polygons and polygons with holes.
//
// # Algorithm
//
// [Label] runs a branch-and-bound search over square cells, starting with one
// square covering the polygon. For every cell we compute the signed distance
// between its center and the polygon's boundary (see
// [Polygon.SignedDistance]) and an upper bound on the distance achievable
// anywhere inside it. Cells are processed in order of that bound; promising
// cells are split into four quadrants, and the search stops once no pending
// cell can beat the best known point by more than the caller's tolerance.
//
// The result is thus within tolerance of the true maximum distance, but not
// necessarily the exact optimum.
//
// # Geometry
//
// A [Polygon] consists of an exterior [Ring] and any number of interior rings
// (holes). Rings are closed: their first and last [Point] must be equal.
// Polygons must be simple. Self-intersecting rings and overlapping holes are
// not detected and produce meaningless results.
//
// # Errors
//
// Inputs are validated before the search starts. Errors wrap one of
// [ErrEmptyGeometry], [ErrMalformedRing], and [ErrInvalidTolerance], which
// call for different remedies: skip the polygon, fix the data, or fix the
// caller.
//
// # Literature
//
//   - [A new algorithm for finding a visual center of a polygon] by Vladimir Agafonkin
//   - [Point in polygon]
//
// [A new algorithm for finding a visual center of a polygon]: https://blog.mapbox.com/a-new-algorithm-for-finding-a-visual-center-of-a-polygon-7c77e6492fbc
// [Point in polygon]: https://en.wikipedia.org/wiki/Point_in_polygon
package polylabel
