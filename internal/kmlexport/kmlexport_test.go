package kmlexport

import (
	"bytes"
	"strings"
	"testing"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/polylabel"
	"honnef.co/go/polylabel/internal/features"
)

func lShape() polylabel.Polygon {
	return polylabel.NewPolygon(polylabel.Ring{
		polylabel.Pt(0, 0), polylabel.Pt(4, 0), polylabel.Pt(4, 1), polylabel.Pt(1, 1),
		polylabel.Pt(1, 4), polylabel.Pt(0, 4), polylabel.Pt(0, 0),
	})
}

func TestWrite(t *testing.T) {
	labels := []features.Label{
		{
			Shape:    features.Shape{Polygon: lShape(), Properties: geojson.Properties{"name": "Ell"}},
			Point:    polylabel.Pt(0.5625, 0.5625),
			Distance: 0.5625,
		},
		{
			Shape:    features.Shape{Polygon: lShape(), Feature: 3, Part: 1},
			Point:    polylabel.Pt(1.5, 2.5),
			Distance: 0.25,
		},
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, labels, Options{Name: "labels"}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<name>labels</name>")
	assert.Contains(t, out, "<name>Ell</name>")
	assert.Contains(t, out, "<name>feature 3.1</name>")
	assert.Contains(t, out, "<coordinates>0.5625,0.5625</coordinates>")
	assert.Contains(t, out, "distance to boundary: 0.25")
	assert.Equal(t, 2, strings.Count(out, "<Placemark>"))
	assert.NotContains(t, out, "<Polygon>")
}

func TestWriteOutlines(t *testing.T) {
	p := lShape()
	p.Interiors = []polylabel.Ring{{
		polylabel.Pt(0.2, 0.2), polylabel.Pt(0.4, 0.2), polylabel.Pt(0.4, 0.4), polylabel.Pt(0.2, 0.2),
	}}
	labels := []features.Label{{Shape: features.Shape{Polygon: p}, Point: polylabel.Pt(0.5, 0.5)}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, labels, Options{Outlines: true}))
	out := buf.String()
	assert.Contains(t, out, "<MultiGeometry>")
	assert.Contains(t, out, "<outerBoundaryIs>")
	assert.Equal(t, 1, strings.Count(out, "<innerBoundaryIs>"))
}

func TestName(t *testing.T) {
	assert.Equal(t, "Lake", Name(features.Shape{Properties: geojson.Properties{"name": "Lake"}, ID: 7}))
	assert.Equal(t, "7", Name(features.Shape{ID: 7}))
	assert.Equal(t, "x", Name(features.Shape{ID: "x", Properties: geojson.Properties{"name": 12}}))
	assert.Equal(t, "feature 2", Name(features.Shape{Feature: 2}))
	assert.Equal(t, "feature 2.3", Name(features.Shape{Feature: 2, Part: 3}))
}
