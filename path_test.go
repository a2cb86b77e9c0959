package geosvg

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/tdewolff/geosvg/pathdata"
	"github.com/tdewolff/test"
)

func TestParsePathSquare(t *testing.T) {
	g, err := ParsePathGeometry("M0 0L0 60L60 60L60 0L0 0")
	test.Error(t, err)
	polygon, ok := g.(orb.Polygon)
	test.That(t, ok)
	test.T(t, len(polygon), 1)
	test.T(t, polygon[0], orb.Ring{{0, 0}, {0, 60}, {60, 60}, {60, 0}, {0, 0}})
}

func TestParsePathRelative(t *testing.T) {
	g, err := ParsePathGeometry("M0 0l0 60l60 0L60 0L0 0")
	test.Error(t, err)
	polygon, ok := g.(orb.Polygon)
	test.That(t, ok)
	test.T(t, polygon[0], orb.Ring{{0, 0}, {0, 60}, {60, 60}, {60, 0}, {0, 0}})

	g, err = ParsePathGeometry("M0 0v60h60v-60h-60")
	test.Error(t, err)
	polygon, ok = g.(orb.Polygon)
	test.That(t, ok)
	test.T(t, polygon[0], orb.Ring{{0, 0}, {0, 60}, {60, 60}, {60, 0}, {0, 0}})
}

func TestParsePathRings(t *testing.T) {
	g, err := ParsePathGeometry("M0 0L0 60L60 60L60 0L0 0M10 10L40 1L40 40L10.5 40L10 10")
	test.Error(t, err)
	polygon, ok := g.(orb.Polygon)
	test.That(t, ok)
	test.T(t, len(polygon), 2)
	test.T(t, polygon[0], orb.Ring{{0, 0}, {0, 60}, {60, 60}, {60, 0}, {0, 0}})
	test.T(t, polygon[1], orb.Ring{{10, 10}, {40, 1}, {40, 40}, {10.5, 40}, {10, 10}})
}

func TestParsePathCurves(t *testing.T) {
	g, err := ParsePathGeometry("M0 0C0 30 30 40 40 40S50 60 60 60L60 0Z")
	test.Error(t, err)
	polygon, ok := g.(orb.Polygon)
	test.That(t, ok)
	ring := polygon[0]
	test.T(t, len(ring), 203) // move + two flattened curves + line + close
	test.Float(t, ring[1][0], 0.00895)
	test.Float(t, ring[1][1], 0.89401)
	test.T(t, ring[100], orb.Point{40.0, 40.0})
	// the smooth curve reflects the stored control point through (40,40)
	test.Float(t, ring[101][0], 40.29702)
	test.Float(t, ring[101][1], 40.00596)
	test.T(t, ring[200], orb.Point{60.0, 60.0})
	test.T(t, ring[201], orb.Point{60.0, 0.0})
	test.T(t, ring[202], orb.Point{0.0, 0.0})
}

func TestParsePathQuads(t *testing.T) {
	g, err := ParsePathGeometry("M0 0Q30 40 40 40T60 60L60 0Z")
	test.Error(t, err)
	polygon, ok := g.(orb.Polygon)
	test.That(t, ok)
	ring := polygon[0]
	test.T(t, len(ring), 203)
	test.Float(t, ring[1][0], 0.598)
	test.Float(t, ring[1][1], 0.796)
	test.T(t, ring[100], orb.Point{40.0, 40.0})
	test.T(t, ring[200], orb.Point{60.0, 60.0})
}

func TestParsePathKinds(t *testing.T) {
	collection, err := ParsePath("M0 0L10 0")
	test.Error(t, err)
	test.T(t, len(collection), 1)
	line, ok := collection[0].(orb.LineString)
	test.That(t, ok)
	test.T(t, line, orb.LineString{{0, 0}, {10, 0}})

	// two two-point subpaths merge into one multi line string
	collection, err = ParsePath("M0 0L10 0M20 0L30 0")
	test.Error(t, err)
	test.T(t, len(collection), 1)
	multi, ok := collection[0].(orb.MultiLineString)
	test.That(t, ok)
	test.T(t, multi, orb.MultiLineString{{{0, 0}, {10, 0}}, {{20, 0}, {30, 0}}})

	// segments before chains before polygons
	collection, err = ParsePath("M0 0L10 0M20 20L30 20L30 10M0 0L0 60L60 60L60 0L0 0")
	test.Error(t, err)
	test.T(t, len(collection), 3)
	_, ok = collection[0].(orb.LineString)
	test.That(t, ok)
	chain, ok := collection[1].(orb.LineString)
	test.That(t, ok)
	test.T(t, len(chain), 3)
	_, ok = collection[2].(orb.Polygon)
	test.That(t, ok)
}

func TestParsePathClose(t *testing.T) {
	g, err := ParsePathGeometry("M0 0L10 0L10 10Z")
	test.Error(t, err)
	polygon, ok := g.(orb.Polygon)
	test.That(t, ok)
	test.T(t, polygon[0], orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 0}})

	// closing an already closed subpath adds no duplicate point
	g, err = ParsePathGeometry("M0 0L10 0L10 10L0 0Z")
	test.Error(t, err)
	polygon, ok = g.(orb.Polygon)
	test.That(t, ok)
	test.T(t, len(polygon[0]), 4)
}

func TestParsePathSmoothStart(t *testing.T) {
	// without a stored control point the reflection collapses onto the current position
	g, err := ParsePathGeometry("M10 10S20 20 30 10")
	test.Error(t, err)
	line, ok := g.(orb.LineString)
	test.That(t, ok)
	test.T(t, len(line), 101)
	test.T(t, line[0], orb.Point{10.0, 10.0})
	test.T(t, line[100], orb.Point{30.0, 10.0})
}

func TestParsePathArc(t *testing.T) {
	// arcs are not interpreted and lose the cursor; later relative coordinates anchor at the origin
	g, err := ParsePathGeometry("M10 10A5 5 0 0 1 20 20l5 5")
	test.Error(t, err)
	line, ok := g.(orb.LineString)
	test.That(t, ok)
	test.T(t, line, orb.LineString{{10, 10}, {5, 5}})
}

func TestParsePathErrors(t *testing.T) {
	_, err := ParsePath("")
	test.That(t, errors.Is(err, ErrInvalidSVG))

	_, err = ParsePath("Z")
	test.That(t, errors.Is(err, ErrInvalidSVG))

	_, err = ParsePath("M0 0L10 x")
	test.That(t, errors.Is(err, pathdata.ErrBadNumber))

	_, err = ParsePathGeometry("M0 0L10 0M20 20L30 20L30 10")
	test.That(t, errors.Is(err, ErrCollection))
}

func TestCurveResolution(t *testing.T) {
	CurveResolution = 4
	g, err := ParsePathGeometry("M0 0Q10 10 20 0")
	CurveResolution = 100
	test.Error(t, err)
	line, ok := g.(orb.LineString)
	test.That(t, ok)
	test.T(t, line, orb.LineString{{0, 0}, {5, 3.75}, {10, 5}, {15, 3.75}, {20, 0}})
}
