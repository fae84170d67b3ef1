package polylabel

import (
	"fmt"
	"math"
)

// epsilon is the difference between 1 and the next representable float64.
// Tolerances at or below it would have the search subdivide cells below the
// resolution of their coordinates.
const epsilon = 0x1p-52

// Search is the state of one branch-and-bound search for the pole of
// inaccessibility of a polygon. Most users want [Label] instead, which runs a
// search to completion. Search is useful for observing the search, or for
// imposing a limit on the number of steps it may take.
//
// A Search must not be used concurrently, but any number of searches may run
// concurrently, even on the same polygon.
type Search struct {
	poly      Polygon
	tolerance float64
	queue     cellQueue
	best      Cell
	steps     int
	converged bool
}

// NewSearch validates p and tolerance and seeds a search.
//
// The search starts with a single square cell covering the exterior ring's
// bounding box. The polygon's centroid is also evaluated; if it lies deeper
// inside the polygon than the center of that square, it becomes the initial
// best candidate. This only speeds up convergence, it doesn't change the
// guarantees.
func NewSearch(p Polygon, tolerance float64) (*Search, error) {
	if !(tolerance > epsilon) || math.IsInf(tolerance, 1) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidTolerance, tolerance)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s := &Search{
		poly:      p,
		tolerance: tolerance,
	}
	bbox := p.BoundingBox()
	root := newCell(bbox.Center(), 0.5*max(bbox.Width(), bbox.Height()), &s.poly)
	s.best = root
	if c := newCell(p.Centroid(), 0, &s.poly); c.Distance > s.best.Distance {
		s.best = c
	}
	s.queue.Push(root)
	return s, nil
}

// Step processes the most promising pending cell. It returns that cell and
// true if the search continues, or false once the search has converged, in
// which case the returned cell was the last one considered and was not
// subdivided.
//
// The search has converged once no pending cell's bound exceeds the best
// distance found so far by more than the tolerance.
func (s *Search) Step() (Cell, bool) {
	if s.converged {
		return Cell{}, false
	}
	cell, ok := s.queue.Pop()
	if !ok {
		// Every pop pushes four cells, so this can't happen in practice.
		s.converged = true
		return Cell{}, false
	}
	s.steps++
	if cell.MaxBound-s.best.Distance <= s.tolerance {
		s.converged = true
		return cell, false
	}
	if cell.Distance > s.best.Distance {
		s.best = cell
	}
	for _, child := range cell.Subdivide(&s.poly) {
		s.queue.Push(child)
	}
	return cell, true
}

// Run steps the search until it converges and returns the best cell.
func (s *Search) Run() Cell {
	for {
		if _, ok := s.Step(); !ok {
			return s.best
		}
	}
}

// Best returns the best cell found so far. Its distance never decreases over
// the course of the search.
func (s *Search) Best() Cell { return s.best }

// Converged reports whether the search has finished.
func (s *Search) Converged() bool { return s.converged }

// Steps returns the number of cells popped from the queue so far.
func (s *Search) Steps() int { return s.steps }

// Pending returns the number of cells waiting to be processed.
func (s *Search) Pending() int { return s.queue.Len() }

// Bound returns an upper bound on the distance of the true pole of
// inaccessibility, given the cells processed so far. Once the search has
// converged, it returns the best distance.
func (s *Search) Bound() float64 {
	if s.converged {
		return s.best.Distance
	}
	top, ok := s.queue.Peek()
	if !ok {
		return s.best.Distance
	}
	return max(top.MaxBound, s.best.Distance)
}

// Label returns the pole of inaccessibility of p: the point inside p that is
// furthest from any of its edges, to within tolerance. It is the best place
// to put a label for the polygon.
//
// Label returns an error wrapping [ErrInvalidTolerance], [ErrEmptyGeometry],
// or [ErrMalformedRing] if the inputs can't be searched. Results are
// deterministic for identical inputs.
func Label(p Polygon, tolerance float64) (Point, error) {
	pt, _, err := LabelDistance(p, tolerance)
	return pt, err
}

// LabelDistance is like [Label] but also returns the distance between the
// returned point and the polygon's boundary.
func LabelDistance(p Polygon, tolerance float64) (Point, float64, error) {
	s, err := NewSearch(p, tolerance)
	if err != nil {
		return Point{}, 0, err
	}
	best := s.Run()
	return best.Center, best.Distance, nil
}
