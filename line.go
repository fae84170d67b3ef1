package polylabel

// Line represents a line segment. Rings are made of lines between consecutive
// vertices.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance between pt and the point on l closest
// to it, as well as that point's parameter t ∈ [0, 1].
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.DistanceSquared(l.P0), 0.0
	} else if dotp >= dSquared {
		return pt.DistanceSquared(l.P1), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.DistanceSquared(l.Eval(t))
		return dist, t
	}
}

// DistanceSquared returns the squared distance between pt and the segment.
func (l Line) DistanceSquared(pt Point) float64 {
	d, _ := l.Nearest(pt)
	return d
}

// crossesRay reports whether the horizontal ray cast from pt towards +∞
// crosses l. Endpoints are treated half-open in y so that a ray passing
// through a shared vertex is counted once.
func (l Line) crossesRay(pt Point) bool {
	a, b := l.P0, l.P1
	if (a.Y > pt.Y) == (b.Y > pt.Y) {
		return false
	}
	return pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X
}
