package polylabel

import (
	"fmt"
	"math"
)

// Polygon is a filled region bounded by one exterior ring, with zero or more
// interior rings cutting holes into it.
//
// Holes are assumed to lie within the exterior and not to overlap each other.
// Neither condition is checked.
type Polygon struct {
	Exterior  Ring
	Interiors []Ring
}

func NewPolygon(exterior Ring, interiors ...Ring) Polygon {
	return Polygon{
		Exterior:  exterior,
		Interiors: interiors,
	}
}

// Validate reports whether p is well-formed enough to be searched. The returned
// error wraps [ErrEmptyGeometry] or [ErrMalformedRing].
func (p Polygon) Validate() error {
	if len(p.Exterior) == 0 {
		return fmt.Errorf("exterior ring: %w", ErrEmptyGeometry)
	}
	if err := p.Exterior.validate(); err != nil {
		return fmt.Errorf("exterior ring: %w", err)
	}
	for i, hole := range p.Interiors {
		if err := hole.validate(); err != nil {
			// A degenerate hole doesn't make the polygon empty, it makes the
			// hole nonsense.
			return fmt.Errorf("interior ring %d: %w", i, ErrMalformedRing)
		}
	}
	if !(p.Area() > 0) {
		return ErrEmptyGeometry
	}
	return nil
}

// Contains reports whether pt lies in the filled region of p, that is inside
// the exterior ring and outside of every hole.
func (p Polygon) Contains(pt Point) bool {
	if !p.Exterior.Contains(pt) {
		return false
	}
	for _, hole := range p.Interiors {
		if hole.Contains(pt) {
			return false
		}
	}
	return true
}

// SignedDistance returns the distance between pt and the nearest edge of any
// of p's rings. The result is positive if pt lies in the filled region of p,
// negative if it lies outside of it or in a hole, and zero if pt is on an
// edge.
func (p Polygon) SignedDistance(pt Point) float64 {
	dSq := p.Exterior.DistanceSquared(pt)
	for _, hole := range p.Interiors {
		dSq = min(dSq, hole.DistanceSquared(pt))
	}
	d := math.Sqrt(dSq)
	if d == 0 {
		return 0
	}
	if p.Contains(pt) {
		return d
	}
	return -d
}

// Area returns the area of the filled region, i.e. the exterior's area minus
// the area of all holes.
func (p Polygon) Area() float64 {
	area := p.Exterior.Area()
	for _, hole := range p.Interiors {
		area -= hole.Area()
	}
	return area
}

// Centroid returns the area centroid of the filled region. The result is NaN
// for polygons without area.
func (p Polygon) Centroid() Point {
	c, a := p.Exterior.centroidArea()
	a = math.Abs(a)
	x, y, total := c.X*a, c.Y*a, a
	for _, hole := range p.Interiors {
		hc, ha := hole.centroidArea()
		ha = math.Abs(ha)
		if ha == 0 {
			continue
		}
		x -= hc.X * ha
		y -= hc.Y * ha
		total -= ha
	}
	return Pt(x/total, y/total)
}

// BoundingBox returns the bounding box of the exterior ring.
func (p Polygon) BoundingBox() Rect {
	return p.Exterior.BoundingBox()
}
