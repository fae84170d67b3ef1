package polylabel

import "math"

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// (A * B) * v == A * (B * v).
//
// Transforming a polygon before labelling it is useful when its coordinates
// don't have the same scale on both axes, such as longitudes and latitudes
// away from the equator. Rotations, translations, and uniform scalings
// preserve the label: labelling a transformed polygon yields the transformed
// label, up to rounding and the choice of starting cell. Other transforms
// change which point is furthest from the boundary.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing a rotation by th radians.
// A positive angle rotates the positive x direction into positive y.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout creates an affine transform representing a rotation of th radians
// about center.
func RotateAbout(th float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c).Mul(Rotate(th)).Mul(Translate(c.Negate()))
}

// Equirectangular returns the transform that scales longitudes by the cosine
// of the latitude lat, in degrees, so that distances near that latitude are
// roughly the same in both directions.
func Equirectangular(lat float64) Affine {
	return Scale(math.Cos(lat*math.Pi/180), 1)
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// Transform applies aff to pt.
func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Transform returns a copy of r with aff applied to every point.
func (r Ring) Transform(aff Affine) Ring {
	if r == nil {
		return nil
	}
	out := make(Ring, len(r))
	for i, pt := range r {
		out[i] = pt.Transform(aff)
	}
	return out
}

// Transform returns a copy of p with aff applied to every ring.
func (p Polygon) Transform(aff Affine) Polygon {
	out := Polygon{Exterior: p.Exterior.Transform(aff)}
	if p.Interiors != nil {
		out.Interiors = make([]Ring, len(p.Interiors))
		for i, hole := range p.Interiors {
			out.Interiors[i] = hole.Transform(aff)
		}
	}
	return out
}
