package polylabel

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

func TestPolygonSignedDistance(t *testing.T) {
	f := func(pt Point, want float64) {
		t.Helper()
		if got := squareWithHole.SignedDistance(pt); got != want {
			t.Errorf("SignedDistance(%v) = %v, want %v", pt, got, want)
		}
	}
	f(Pt(30, 30), 30)
	f(Pt(90, 90), 10)
	// inside the hole
	f(Pt(70, 70), -10)
	f(Pt(70, 62), -2)
	// outside the exterior
	f(Pt(150, 50), -50)
	f(Pt(-3, -4), -5)
	// on an edge of the exterior and of the hole
	f(Pt(0, 50), 0)
	f(Pt(60, 70), 0)
}

func TestPolygonContainsHole(t *testing.T) {
	if !squareWithHole.Contains(Pt(10, 10)) {
		t.Error("polygon should contain point in its filled region")
	}
	if squareWithHole.Contains(Pt(70, 70)) {
		t.Error("polygon shouldn't contain point in its hole")
	}
	if squareWithHole.Contains(Pt(-10, 70)) {
		t.Error("polygon shouldn't contain point outside of it")
	}
}

func toOrb(p Polygon) orb.Polygon {
	conv := func(r Ring) orb.Ring {
		out := make(orb.Ring, len(r))
		for i, pt := range r {
			out[i] = orb.Point{pt.X, pt.Y}
		}
		return out
	}
	out := orb.Polygon{conv(p.Exterior)}
	for _, hole := range p.Interiors {
		out = append(out, conv(hole))
	}
	return out
}

// TestPolygonContainsOracle compares our even-odd test against orb's
// implementation on random points.
func TestPolygonContainsOracle(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, p := range []Polygon{lShape, squareWithHole, octagonWithHoles, NewPolygon(star(7, 10, 3))} {
		op := toOrb(p)
		bbox := p.BoundingBox().Inflate(1, 1)
		for range 2000 {
			pt := Pt(
				bbox.X0+rng.Float64()*bbox.Width(),
				bbox.Y0+rng.Float64()*bbox.Height(),
			)
			if p.SignedDistance(pt) == 0 {
				// orb considers boundary points to be inside
				continue
			}
			if got, want := p.Contains(pt), planar.PolygonContains(op, orb.Point{pt.X, pt.Y}); got != want {
				t.Errorf("Contains(%v) = %t, orb says %t", pt, got, want)
			}
		}
	}
}

func TestPolygonAreaCentroid(t *testing.T) {
	if a := squareWithHole.Area(); a != 9600 {
		t.Errorf("got area %v, want 9600", a)
	}
	want := Pt(472000.0/9600, 472000.0/9600)
	diff(t, want, squareWithHole.Centroid(), approx(1e-9))

	c, _ := planar.CentroidArea(toOrb(octagonWithHoles))
	diff(t, Pt(c[0], c[1]), octagonWithHoles.Centroid(), approx(1e-9))
}

func TestPolygonValidate(t *testing.T) {
	f := func(p Polygon, want error) {
		t.Helper()
		if err := p.Validate(); !errors.Is(err, want) {
			t.Errorf("got error %v, want %v", err, want)
		}
	}
	f(lShape, nil)
	f(squareWithHole, nil)
	f(octagonWithHoles, nil)

	f(Polygon{}, ErrEmptyGeometry)
	f(NewPolygon(Ring{Pt(0, 0), Pt(1, 1), Pt(0, 0)}), ErrEmptyGeometry)
	// three distinct but collinear vertices
	f(NewPolygon(Ring{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(0, 0)}), ErrEmptyGeometry)
	f(NewPolygon(Ring{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(1, 0), Pt(0, 0)}), ErrEmptyGeometry)

	f(NewPolygon(Ring{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}), ErrMalformedRing)
	f(NewPolygon(Ring{Pt(0, 0), Pt(1, 0), Pt(1, math.NaN()), Pt(0, 0)}), ErrMalformedRing)
	f(NewPolygon(
		square(0, 0, 10).Exterior,
		Ring{Pt(1, 1), Pt(2, 2), Pt(1, 1)},
	), ErrMalformedRing)
	f(NewPolygon(
		square(0, 0, 10).Exterior,
		Ring{Pt(1, 1), Pt(2, 1), Pt(2, 2)},
	), ErrMalformedRing)
	// a hole as large as the exterior leaves nothing
	f(NewPolygon(square(0, 0, 10).Exterior, square(0, 0, 10).Exterior), ErrEmptyGeometry)
}

func TestPolygonValidateMessage(t *testing.T) {
	err := NewPolygon(
		square(0, 0, 10).Exterior,
		square(1, 1, 1).Exterior,
		Ring{Pt(1, 1), Pt(2, 1), Pt(2, 2)},
	).Validate()
	if want := "interior ring 1: polylabel: malformed ring"; err == nil || err.Error() != want {
		t.Errorf("got error %q, want %q", err, want)
	}
}

// Squares far from the origin keep their area, and can be labelled.
func TestPolygonAreaFarFromOrigin(t *testing.T) {
	tests := []struct {
		offset, size float64
	}{
		{1e8, 1},
		{1e9, 4},
		{2e7, 0.01},
		{-3e12, 1000},
	}
	for _, tt := range tests {
		p := square(tt.offset, tt.offset, tt.size)
		want := tt.size * tt.size
		if a := p.Area(); math.Abs(a-want) > 1e-6*want {
			t.Errorf("offset %g, size %g: got area %g, want %g", tt.offset, tt.size, a, want)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("offset %g, size %g: %s", tt.offset, tt.size, err)
			continue
		}
		tolerance := tt.size / 100
		got, dist, err := LabelDistance(p, tolerance)
		if err != nil {
			t.Errorf("offset %g, size %g: %s", tt.offset, tt.size, err)
			continue
		}
		if math.Abs(dist-tt.size/2) > tolerance {
			t.Errorf("offset %g, size %g: label %v has distance %g, want %g", tt.offset, tt.size, got, dist, tt.size/2)
		}
	}
}
