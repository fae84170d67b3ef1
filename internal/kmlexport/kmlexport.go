// Package kmlexport writes labels as KML placemarks.
package kmlexport

import (
	"fmt"
	"io"

	"github.com/twpayne/go-kml"

	"honnef.co/go/polylabel"
	"honnef.co/go/polylabel/internal/features"
)

// Options control the generated document.
type Options struct {
	// Name is the document's name.
	Name string
	// Outlines adds each labelled polygon to its placemark, next to the label
	// point.
	Outlines bool
}

// Write writes a KML document with one placemark per label to w.
func Write(w io.Writer, labels []features.Label, opts Options) error {
	doc := kml.Document()
	if opts.Name != "" {
		doc.Add(kml.Name(opts.Name))
	}
	for _, l := range labels {
		doc.Add(placemark(l, opts.Outlines))
	}
	if err := kml.KML(doc).WriteIndent(w, "", "  "); err != nil {
		return fmt.Errorf("write KML: %w", err)
	}
	return nil
}

func placemark(l features.Label, outline bool) kml.Element {
	pt := kml.Point(kml.Coordinates(kml.Coordinate{Lon: l.Point.X, Lat: l.Point.Y}))
	var geom kml.Element = pt
	if outline {
		geom = kml.MultiGeometry(pt, polygon(l.Shape.Polygon))
	}
	return kml.Placemark(
		kml.Name(Name(l.Shape)),
		kml.Description(fmt.Sprintf("distance to boundary: %g", l.Distance)),
		geom,
	)
}

func polygon(p polylabel.Polygon) kml.Element {
	children := []kml.Element{kml.OuterBoundaryIs(linearRing(p.Exterior))}
	for _, hole := range p.Interiors {
		children = append(children, kml.InnerBoundaryIs(linearRing(hole)))
	}
	return kml.Polygon(children...)
}

func linearRing(r polylabel.Ring) kml.Element {
	coords := make([]kml.Coordinate, len(r))
	for i, pt := range r {
		coords[i] = kml.Coordinate{Lon: pt.X, Lat: pt.Y}
	}
	return kml.LinearRing(kml.Coordinates(coords...))
}

// Name returns a human-readable name for a shape: its "name" property if it
// has one, its feature ID otherwise, and its position in the document as a
// last resort.
func Name(s features.Shape) string {
	if name, ok := s.Properties["name"].(string); ok && name != "" {
		return name
	}
	if s.ID != nil {
		return fmt.Sprint(s.ID)
	}
	if s.Part > 0 {
		return fmt.Sprintf("feature %d.%d", s.Feature, s.Part)
	}
	return fmt.Sprintf("feature %d", s.Feature)
}
