package geosvg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/tdewolff/minify/v2"
)

// Precision is the number of significant digits of serialized coordinates. When zero or negative the shortest representation that parses back to the same value is used.
var Precision = 0

func num(f float64) string {
	if 0 < Precision {
		s := fmt.Sprintf("%.*g", Precision, f)
		return string(minify.Number([]byte(s), Precision))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ToSVG serializes the geometry as SVG shape elements: path for polygons, polyline for line strings, rect for bounds. Collections and multi geometries render one element per member, joined by newlines. Empty geometries and unsupported types render as the empty string.
func ToSVG(g orb.Geometry) string {
	switch g := g.(type) {
	case orb.Collection:
		elements := make([]string, 0, len(g))
		for _, member := range g {
			elements = append(elements, ToSVG(member))
		}
		return strings.Join(elements, "\n")
	case orb.MultiPolygon:
		elements := make([]string, 0, len(g))
		for _, polygon := range g {
			elements = append(elements, ToSVG(polygon))
		}
		return strings.Join(elements, "\n")
	case orb.Polygon:
		if len(g) == 0 || len(g[0]) == 0 {
			return ""
		}
		return `<path d="M` + polygonData(g) + `"/>`
	case orb.Ring:
		return ToSVG(orb.Polygon{g})
	case orb.MultiLineString:
		elements := make([]string, 0, len(g))
		for _, line := range g {
			elements = append(elements, ToSVG(line))
		}
		return strings.Join(elements, "\n")
	case orb.LineString:
		if len(g) == 0 {
			return ""
		}
		return `<polyline points="` + pointsData(g) + `"/>`
	case orb.Bound:
		return `<rect x="` + num(g.Min[0]) + `" y="` + num(g.Min[1]) + `" width="` + num(g.Max[0]-g.Min[0]) + `" height="` + num(g.Max[1]-g.Min[1]) + `"/>`
	}
	return ""
}

// ToPathData serializes the geometry as bare SVG path data, suitable for embedding in a larger path's d attribute. Every member starts with its own move command, so collection members are joined without a separator. Closure is carried by the repeated first point of each ring; no close command is written.
func ToPathData(g orb.Geometry) string {
	switch g := g.(type) {
	case orb.Collection:
		var b strings.Builder
		for _, member := range g {
			b.WriteString(ToPathData(member))
		}
		return b.String()
	case orb.MultiPolygon:
		var b strings.Builder
		for _, polygon := range g {
			b.WriteString(ToPathData(polygon))
		}
		return b.String()
	case orb.Polygon:
		if len(g) == 0 || len(g[0]) == 0 {
			return ""
		}
		return "M" + polygonData(g)
	case orb.Ring:
		return ToPathData(orb.Polygon{g})
	case orb.MultiLineString:
		var b strings.Builder
		for _, line := range g {
			b.WriteString(ToPathData(line))
		}
		return b.String()
	case orb.LineString:
		if len(g) == 0 {
			return ""
		}
		return "M" + lineData(g)
	case orb.Bound:
		return ToPathData(boundPolygon(g))
	}
	return ""
}

// polygonData renders the rings joined by the move command, the outer ring first.
func polygonData(p orb.Polygon) string {
	rings := make([]string, 0, len(p))
	for _, ring := range p {
		rings = append(rings, lineData(orb.LineString(ring)))
	}
	return strings.Join(rings, "M")
}

// lineData joins coordinates with the line command, "x y" pairs.
func lineData(line orb.LineString) string {
	coords := make([]string, 0, len(line))
	for _, point := range line {
		coords = append(coords, num(point[0])+" "+num(point[1]))
	}
	return strings.Join(coords, "L")
}

// pointsData formats coordinates for the points attribute, "x,y" pairs.
func pointsData(line orb.LineString) string {
	coords := make([]string, 0, len(line))
	for _, point := range line {
		coords = append(coords, num(point[0])+","+num(point[1]))
	}
	return strings.Join(coords, " ")
}
