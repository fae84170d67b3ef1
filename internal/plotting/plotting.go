// Package plotting renders a polygon, the cells a search visited, and the
// resulting label.
package plotting

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"honnef.co/go/polylabel"
)

var (
	fillColor  = color.RGBA{R: 0x9e, G: 0xc5, B: 0xe8, A: 0xff}
	cellColor  = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x80}
	labelColor = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
)

// Trace is what gets drawn.
type Trace struct {
	Title   string
	Polygon polylabel.Polygon
	// Cells are the cells the search popped, in order.
	Cells    []polylabel.Cell
	Label    polylabel.Point
	Distance float64
}

// Record runs s to completion, or for at most maxSteps steps if maxSteps is
// positive, and collects the visited cells.
func Record(p polylabel.Polygon, s *polylabel.Search, maxSteps int) Trace {
	tr := Trace{Polygon: p}
	for maxSteps <= 0 || s.Steps() < maxSteps {
		cell, ok := s.Step()
		if cell.HalfSize > 0 {
			tr.Cells = append(tr.Cells, cell)
		}
		if !ok {
			break
		}
	}
	best := s.Best()
	tr.Label, tr.Distance = best.Center, best.Distance
	return tr
}

// Size is the width and height of rendered plots.
const Size = 6 * vg.Inch

// Plot builds the plot for tr.
func Plot(tr Trace) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = tr.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	rings := make([]plotter.XYer, 0, 1+len(tr.Polygon.Interiors))
	rings = append(rings, ringXYs(tr.Polygon.Exterior))
	for _, hole := range tr.Polygon.Interiors {
		rings = append(rings, ringXYs(hole))
	}
	poly, err := plotter.NewPolygon(rings...)
	if err != nil {
		return nil, fmt.Errorf("polygon: %w", err)
	}
	poly.Color = fillColor
	p.Add(poly)

	for _, c := range tr.Cells {
		b := c.Bounds()
		outline, err := plotter.NewLine(plotter.XYs{
			{X: b.X0, Y: b.Y0}, {X: b.X1, Y: b.Y0}, {X: b.X1, Y: b.Y1}, {X: b.X0, Y: b.Y1}, {X: b.X0, Y: b.Y0},
		})
		if err != nil {
			return nil, fmt.Errorf("cell %v: %w", c, err)
		}
		outline.Color = cellColor
		outline.Width = vg.Points(0.5)
		p.Add(outline)
	}

	if tr.Distance > 0 {
		circle, err := plotter.NewLine(circleXYs(tr.Label, tr.Distance, 64))
		if err != nil {
			return nil, fmt.Errorf("clearance: %w", err)
		}
		circle.Color = labelColor
		circle.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}
		p.Add(circle)
		p.Legend.Add(fmt.Sprintf("clearance %.4g", tr.Distance), circle)
	}

	label, err := plotter.NewScatter(plotter.XYs{{X: tr.Label.X, Y: tr.Label.Y}})
	if err != nil {
		return nil, fmt.Errorf("label: %w", err)
	}
	label.Color = labelColor
	label.Shape = draw.CrossGlyph{}
	label.Radius = vg.Points(4)
	p.Add(label)
	p.Legend.Add("label", label)
	p.Legend.Top = true

	// Equal scales on both axes, so that squares look square.
	bbox := tr.Polygon.BoundingBox().Square()
	bbox = bbox.Inflate(0.05*bbox.Width(), 0.05*bbox.Height())
	p.X.Min, p.X.Max = bbox.X0, bbox.X1
	p.Y.Min, p.Y.Max = bbox.Y0, bbox.Y1
	return p, nil
}

// Render writes tr to w in the given format, such as "png" or "svg".
func Render(w io.Writer, format string, tr Trace) error {
	p, err := Plot(tr)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(Size, Size, format)
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}

// Save renders tr to path. The format follows from the file extension.
func Save(path string, tr Trace) (err error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		return fmt.Errorf("plot %s: no file extension", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Render(f, format, tr)
}

func ringXYs(r polylabel.Ring) plotter.XYs {
	xys := make(plotter.XYs, len(r))
	for i, pt := range r {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return xys
}

func circleXYs(center polylabel.Point, radius float64, n int) plotter.XYs {
	xys := make(plotter.XYs, n+1)
	for i := range xys {
		a := 2 * math.Pi * float64(i) / float64(n)
		xys[i] = plotter.XY{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	return xys
}
