package polylabel

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, including the fields of points and cells, with an
// absolute margin.
func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

// The polygons below are used throughout the tests.

// lShape is an L made of two 1×4 bars. Its centroid lies outside of it.
var lShape = NewPolygon(Ring{
	Pt(0, 0), Pt(4, 0), Pt(4, 1), Pt(1, 1), Pt(1, 4), Pt(0, 4), Pt(0, 0),
})

// squareWithHole is a 100×100 square with a 20×20 hole off its center.
var squareWithHole = NewPolygon(
	Ring{Pt(0, 0), Pt(100, 0), Pt(100, 100), Pt(0, 100), Pt(0, 0)},
	Ring{Pt(60, 60), Pt(60, 80), Pt(80, 80), Pt(80, 60), Pt(60, 60)},
)

// octagonWithHoles is an irregular octagon with a triangular hole covering
// its center and a second, small hole.
var octagonWithHoles = NewPolygon(
	Ring{
		Pt(4, 1), Pt(5, 2), Pt(5, 3), Pt(4, 4), Pt(3, 4),
		Pt(2, 3), Pt(2, 2), Pt(3, 1), Pt(4, 1),
	},
	Ring{Pt(3.5, 3.5), Pt(4.4, 2.0), Pt(2.6, 2.0), Pt(3.5, 3.5)},
	Ring{Pt(4.0, 3.0), Pt(4.0, 3.2), Pt(4.5, 3.2), Pt(4.0, 3.0)},
)

func square(x0, y0, size float64) Polygon {
	return NewPolygon(Ring{
		Pt(x0, y0), Pt(x0+size, y0), Pt(x0+size, y0+size), Pt(x0, y0+size), Pt(x0, y0),
	})
}

// star returns a closed star-shaped ring with n spikes, alternating between
// the outer and inner radius.
func star(n int, outer, inner float64) Ring {
	r := make(Ring, 0, 2*n+1)
	for i := range 2 * n {
		rad := outer
		if i%2 == 1 {
			rad = inner
		}
		th := float64(i) * math.Pi / float64(n)
		r = append(r, Pt(rad*math.Cos(th), rad*math.Sin(th)))
	}
	return append(r, r[0])
}
