// Package geosvg converts between SVG shape elements and orb geometries. It parses the path, polygon, polyline, rect and line elements into orb.Collection values, flattening curved path segments into polylines, and serializes any orb geometry back to an SVG element or to bare path data.
package geosvg

import (
	"fmt"
	"io"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/tdewolff/geosvg/pathdata"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// Parse parses a single SVG shape element into a geometry collection. It does not parse full SVG documents; the first supported element (path, polygon, polyline, rect or line) determines the result:
//
//	<path>     geometries detected per subpath
//	<polygon>  a Polygon with one ring
//	<polyline> a LineString
//	<rect>     a Polygon with one ring
//	<line>     a two-point LineString
//
// An input without any supported element returns ErrUnsupportedElement.
func Parse(svg string) (orb.Collection, error) {
	z := parse.NewInputString(svg)
	l := xml.NewLexer(z)
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return nil, l.Err()
			}
			return nil, ErrUnsupportedElement
		case xml.StartTagToken:
			attrs := map[string]string{}
			for {
				if tt, _ = l.Next(); tt != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				if 2 <= len(val) {
					val = val[1 : len(val)-1] // strip quotes
				}
				attrs[string(l.Text())] = string(val)
			}

			switch tag := string(data[1:]); tag {
			case "path":
				if d, ok := attrs["d"]; ok {
					return ParsePath(d)
				}
			case "polygon":
				if points, ok := attrs["points"]; ok {
					polygon, err := parsePolygon(points)
					if err != nil {
						return nil, err
					}
					return orb.Collection{polygon}, nil
				}
			case "polyline":
				if points, ok := attrs["points"]; ok {
					line, err := parsePolyline(points)
					if err != nil {
						return nil, err
					}
					return orb.Collection{line}, nil
				}
			case "rect":
				bound, err := parseRect(attrs)
				if err != nil {
					return nil, err
				}
				return orb.Collection{boundPolygon(bound)}, nil
			case "line":
				line, err := parseLine(attrs)
				if err != nil {
					return nil, err
				}
				return orb.Collection{line}, nil
			}
		}
	}
}

// ParseGeometry parses a single SVG shape element that resolves to a single geometry. It returns ErrCollection when the element holds several geometries; use Parse for those.
func ParseGeometry(svg string) (orb.Geometry, error) {
	collection, err := Parse(svg)
	if err != nil {
		return nil, err
	}
	if len(collection) != 1 {
		return nil, ErrCollection
	}
	return collection[0], nil
}

// parsePolygon parses the points attribute into a polygon with a single ring. The ring is taken as written and is not closed implicitly.
func parsePolygon(v string) (orb.Polygon, error) {
	points := pathdata.ParsePoints(v)
	if len(points) == 0 {
		return nil, ErrInvalidSVG
	}
	ring := make(orb.Ring, 0, len(points)/2)
	for i := 0; i+1 < len(points); i += 2 {
		ring = append(ring, orb.Point{points[i], points[i+1]})
	}
	return orb.Polygon{ring}, nil
}

func parsePolyline(v string) (orb.LineString, error) {
	points := pathdata.ParsePoints(v)
	if len(points) == 0 {
		return nil, ErrInvalidSVG
	}
	line := make(orb.LineString, 0, len(points)/2)
	for i := 0; i+1 < len(points); i += 2 {
		line = append(line, orb.Point{points[i], points[i+1]})
	}
	return line, nil
}

// parseRect requires the x, y, width and height attributes and rejects negative dimensions.
func parseRect(attrs map[string]string) (orb.Bound, error) {
	var x, y, width, height float64
	for _, attr := range []struct {
		key string
		f   *float64
	}{
		{"x", &x},
		{"y", &y},
		{"width", &width},
		{"height", &height},
	} {
		v, ok := attrs[attr.key]
		if !ok {
			return orb.Bound{}, ErrInvalidSVG
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return orb.Bound{}, fmt.Errorf("%w: %v", pathdata.ErrBadNumber, err)
		}
		*attr.f = f
	}
	if width < 0.0 || height < 0.0 {
		return orb.Bound{}, ErrInvalidSVG
	}
	return orb.Bound{Min: orb.Point{x, y}, Max: orb.Point{x + width, y + height}}, nil
}

// boundPolygon closes the bound into a ring, winding through the minimum corner first.
func boundPolygon(b orb.Bound) orb.Polygon {
	return orb.Polygon{orb.Ring{
		b.Min,
		orb.Point{b.Min[0], b.Max[1]},
		b.Max,
		orb.Point{b.Max[0], b.Min[1]},
		b.Min,
	}}
}

func parseLine(attrs map[string]string) (orb.LineString, error) {
	var x1, y1, x2, y2 float64
	for _, attr := range []struct {
		key string
		f   *float64
	}{
		{"x1", &x1},
		{"y1", &y1},
		{"x2", &x2},
		{"y2", &y2},
	} {
		v, ok := attrs[attr.key]
		if !ok {
			return nil, ErrInvalidSVG
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", pathdata.ErrBadNumber, err)
		}
		*attr.f = f
	}
	return orb.LineString{{x1, y1}, {x2, y2}}, nil
}
