// Package features translates between GeoJSON documents and polylabel's
// polygons and labels.
package features

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"honnef.co/go/polylabel"
)

// ErrNoPolygons is returned by Decode when a document contains nothing that
// could be labelled.
var ErrNoPolygons = errors.New("no polygons in document")

// Shape is one polygon found in a GeoJSON document, together with its origin.
type Shape struct {
	Polygon polylabel.Polygon
	// Feature is the index of the feature the polygon belongs to. It is 0 for
	// documents that consist of a single feature or bare geometry.
	Feature int
	// Part is the polygon's index in its MultiPolygon, or 0 for Polygons.
	Part int
	// ID and Properties are copied from the source feature.
	ID         any
	Properties geojson.Properties
}

// Skipped describes a feature that Decode ignored because its geometry has no
// area.
type Skipped struct {
	Feature int
	Type    string
}

// Decode parses a GeoJSON FeatureCollection, Feature, or geometry and
// returns the polygons it contains. Members of MultiPolygons and
// GeometryCollections are returned as individual shapes.
func Decode(data []byte) ([]Shape, []Skipped, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, nil, fmt.Errorf("decode GeoJSON: %w", err)
	}

	var feats []*geojson.Feature
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, nil, fmt.Errorf("decode feature collection: %w", err)
		}
		feats = fc.Features
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, nil, fmt.Errorf("decode feature: %w", err)
		}
		feats = []*geojson.Feature{f}
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, nil, fmt.Errorf("decode geometry: %w", err)
		}
		feats = []*geojson.Feature{geojson.NewFeature(g.Geometry())}
	}

	var shapes []Shape
	var skipped []Skipped
	for i, f := range feats {
		if f == nil || f.Geometry == nil {
			skipped = append(skipped, Skipped{Feature: i, Type: "null"})
			continue
		}
		polys := polygons(f.Geometry)
		if len(polys) == 0 {
			skipped = append(skipped, Skipped{Feature: i, Type: f.Geometry.GeoJSONType()})
			continue
		}
		for j, p := range polys {
			shapes = append(shapes, Shape{
				Polygon:    FromOrb(p),
				Feature:    i,
				Part:       j,
				ID:         f.ID,
				Properties: f.Properties,
			})
		}
	}
	if len(shapes) == 0 {
		return nil, skipped, ErrNoPolygons
	}
	return shapes, skipped, nil
}

// polygons flattens g into its polygons.
func polygons(g orb.Geometry) []orb.Polygon {
	switch g := g.(type) {
	case orb.Polygon:
		return []orb.Polygon{g}
	case orb.MultiPolygon:
		return g
	case orb.Collection:
		var out []orb.Polygon
		for _, member := range g {
			out = append(out, polygons(member)...)
		}
		return out
	default:
		return nil
	}
}

// FromOrb converts an orb polygon. The first ring is the exterior, all others
// are holes.
func FromOrb(p orb.Polygon) polylabel.Polygon {
	if len(p) == 0 {
		return polylabel.Polygon{}
	}
	out := polylabel.NewPolygon(fromOrbRing(p[0]))
	for _, hole := range p[1:] {
		out.Interiors = append(out.Interiors, fromOrbRing(hole))
	}
	return out
}

func fromOrbRing(r orb.Ring) polylabel.Ring {
	out := make(polylabel.Ring, len(r))
	for i, pt := range r {
		out[i] = polylabel.Pt(pt.X(), pt.Y())
	}
	return out
}

// Label is the label computed for a Shape.
type Label struct {
	Shape    Shape
	Point    polylabel.Point
	Distance float64
}

// Encode returns a FeatureCollection containing one Point feature per label.
// Each feature carries the source feature's ID and properties, plus the
// properties "polylabel:feature", "polylabel:part", and
// "polylabel:distance".
func Encode(labels []Label) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, l := range labels {
		f := geojson.NewFeature(orb.Point{l.Point.X, l.Point.Y})
		f.ID = l.Shape.ID
		if l.Shape.Properties != nil {
			f.Properties = l.Shape.Properties.Clone()
		}
		f.Properties["polylabel:feature"] = l.Shape.Feature
		f.Properties["polylabel:part"] = l.Shape.Part
		f.Properties["polylabel:distance"] = l.Distance
		fc.Append(f)
	}
	data, err := json.Marshal(fc)
	if err != nil {
		return nil, fmt.Errorf("encode labels: %w", err)
	}
	return data, nil
}
