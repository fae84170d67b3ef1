package polylabel

import (
	"fmt"
	"math"
)

// Cell is a square region of the plane that the search considers as a
// candidate for containing the pole of inaccessibility.
type Cell struct {
	// Center is the center of the square.
	Center Point
	// HalfSize is half the length of the square's sides.
	HalfSize float64
	// Distance is the signed distance between Center and the polygon's
	// boundary.
	Distance float64
	// MaxBound is an upper bound on the signed distance of any point inside
	// the cell. No point in the square is further than HalfSize·√2 from the
	// center, and the distance to the boundary changes at most as fast as the
	// point moves.
	MaxBound float64
}

func newCell(center Point, halfSize float64, p *Polygon) Cell {
	d := p.SignedDistance(center)
	return Cell{
		Center:   center,
		HalfSize: halfSize,
		Distance: d,
		MaxBound: d + halfSize*math.Sqrt2,
	}
}

func (c Cell) String() string {
	return fmt.Sprintf("cell %v ±%g (d=%g, max=%g)", c.Center, c.HalfSize, c.Distance, c.MaxBound)
}

// Bounds returns the square covered by the cell.
func (c Cell) Bounds() Rect {
	return NewRectFromCenter(c.Center, c.HalfSize)
}

// Subdivide splits the cell into four quadrants of half its size and
// computes their distances to p. The quadrants are returned in the order
// (−x, −y), (+x, −y), (−x, +y), (+x, +y).
func (c Cell) Subdivide(p *Polygon) [4]Cell {
	h := c.HalfSize / 2
	return [4]Cell{
		newCell(c.Center.Translate(Vec(-h, -h)), h, p),
		newCell(c.Center.Translate(Vec(h, -h)), h, p),
		newCell(c.Center.Translate(Vec(-h, h)), h, p),
		newCell(c.Center.Translate(Vec(h, h)), h, p),
	}
}
