package polylabel

import (
	"iter"
	"math"
)

// Ring is a closed sequence of vertices describing one boundary loop of a
// polygon. The first and last points must be equal. Orientation doesn't
// matter.
type Ring []Point

// Lines returns the ring's edges, in order.
func (r Ring) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(r); i++ {
			if !yield(Line{r[i-1], r[i]}) {
				return
			}
		}
	}
}

// IsClosed reports whether the ring's first and last points are equal.
func (r Ring) IsClosed() bool {
	return len(r) > 0 && r[0] == r[len(r)-1]
}

// distinct returns the number of distinct vertices in r, counting at most
// limit of them.
func (r Ring) distinct(limit int) int {
	seen := make([]Point, 0, limit)
outer:
	for _, pt := range r {
		for _, s := range seen {
			if s == pt {
				continue outer
			}
		}
		seen = append(seen, pt)
		if len(seen) == limit {
			break
		}
	}
	return len(seen)
}

// validate checks the ring's structure. It returns ErrEmptyGeometry for rings
// with fewer than three distinct vertices and ErrMalformedRing for everything
// else that is wrong with it.
func (r Ring) validate() error {
	for _, pt := range r {
		if !pt.IsFinite() {
			return ErrMalformedRing
		}
	}
	if r.distinct(3) < 3 {
		return ErrEmptyGeometry
	}
	if len(r) < 4 || !r.IsClosed() {
		return ErrMalformedRing
	}
	return nil
}

// Contains reports whether pt lies inside the ring, using the even-odd rule.
// Points exactly on an edge may be reported either way.
func (r Ring) Contains(pt Point) bool {
	inside := false
	for l := range r.Lines() {
		if l.crossesRay(pt) {
			inside = !inside
		}
	}
	return inside
}

// DistanceSquared returns the squared distance between pt and the nearest
// edge of the ring.
func (r Ring) DistanceSquared(pt Point) float64 {
	best := math.Inf(1)
	for l := range r.Lines() {
		best = min(best, l.DistanceSquared(pt))
	}
	return best
}

// SignedArea returns the ring's area. It is positive for counter-clockwise
// rings in a y-up coordinate system and negative for clockwise ones.
func (r Ring) SignedArea() float64 {
	if len(r) == 0 {
		return 0
	}
	origin := r[0]
	var area float64
	for l := range r.Lines() {
		area += l.P0.Sub(origin).Cross(l.P1.Sub(origin))
	}
	return area / 2
}

// Area returns the absolute area enclosed by the ring.
func (r Ring) Area() float64 {
	return math.Abs(r.SignedArea())
}

// centroidArea returns the ring's centroid and signed area. The centroid is
// NaN if the area is zero.
func (r Ring) centroidArea() (Point, float64) {
	if len(r) == 0 {
		return Pt(math.NaN(), math.NaN()), 0
	}
	// Relative to the first vertex, like SignedArea.
	origin := r[0]
	var area, cx, cy float64
	for l := range r.Lines() {
		a, b := l.P0.Sub(origin), l.P1.Sub(origin)
		f := a.Cross(b)
		area += f
		cx += (a.X + b.X) * f
		cy += (a.Y + b.Y) * f
	}
	return Pt(cx/(3*area)+origin.X, cy/(3*area)+origin.Y), area / 2
}

// Centroid returns the ring's area centroid.
func (r Ring) Centroid() Point {
	c, _ := r.centroidArea()
	return c
}

func (r Ring) BoundingBox() Rect {
	if len(r) == 0 {
		return Rect{}
	}
	bbox := emptyRect()
	for _, pt := range r {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}
