package geosvg

import (
	"github.com/paulmach/orb"
	"github.com/tdewolff/geosvg/pathdata"
)

// cursor is the path interpreter state: the current position, the start of the open subpath, and the control point available for reflection by smooth curve commands.
type cursor struct {
	pos     orb.Point
	start   orb.Point
	ctrl    orb.Point
	hasCtrl bool
}

func (c cursor) at(x, y float64, abs bool) orb.Point {
	if abs {
		return orb.Point{x, y}
	}
	return orb.Point{c.pos[0] + x, c.pos[1] + y}
}

// reflection mirrors the stored control point through the current position. Without a stored control point the current position is used, collapsing the leading control handle to zero length.
func (c cursor) reflection() orb.Point {
	if !c.hasCtrl {
		return c.pos
	}
	return orb.Point{2.0*c.pos[0] - c.ctrl[0], 2.0*c.pos[1] - c.ctrl[1]}
}

// apply advances the cursor over a single command and returns the absolute points it contributes to the active subpath.
func (c cursor) apply(seg pathdata.Segment) (cursor, []orb.Point) {
	switch seg.Op {
	case pathdata.MoveTo:
		p := c.at(seg.X, seg.Y, seg.Abs)
		c.pos, c.start, c.hasCtrl = p, p, false
		return c, []orb.Point{p}
	case pathdata.LineTo:
		p := c.at(seg.X, seg.Y, seg.Abs)
		c.pos = p
		return c, []orb.Point{p}
	case pathdata.HorizontalTo:
		p := orb.Point{seg.X, c.pos[1]}
		if !seg.Abs {
			p[0] += c.pos[0]
		}
		c.pos = p
		return c, []orb.Point{p}
	case pathdata.VerticalTo:
		p := orb.Point{c.pos[0], seg.Y}
		if !seg.Abs {
			p[1] += c.pos[1]
		}
		c.pos = p
		return c, []orb.Point{p}
	case pathdata.CurveTo:
		cp1 := c.at(seg.X1, seg.Y1, seg.Abs)
		cp2 := c.at(seg.X2, seg.Y2, seg.Abs)
		end := c.at(seg.X, seg.Y, seg.Abs)
		points := append(flattenCube(c.pos, cp1, cp2, end, CurveResolution), end)
		c.pos, c.ctrl, c.hasCtrl = end, cp2, true
		return c, points
	case pathdata.SmoothCurveTo:
		cp1 := c.reflection()
		cp2 := c.at(seg.X2, seg.Y2, seg.Abs)
		end := c.at(seg.X, seg.Y, seg.Abs)
		points := append(flattenCube(c.pos, cp1, cp2, end, CurveResolution), end)
		c.pos, c.ctrl, c.hasCtrl = end, cp2, true
		return c, points
	case pathdata.QuadTo:
		cp := c.at(seg.X1, seg.Y1, seg.Abs)
		end := c.at(seg.X, seg.Y, seg.Abs)
		points := append(flattenQuad(c.pos, cp, end, CurveResolution), end)
		c.pos, c.ctrl, c.hasCtrl = end, cp, true
		return c, points
	case pathdata.SmoothQuadTo:
		cp := c.reflection()
		end := c.at(seg.X, seg.Y, seg.Abs)
		points := append(flattenQuad(c.pos, cp, end, CurveResolution), end)
		c.pos, c.ctrl, c.hasCtrl = end, cp, true
		return c, points
	case pathdata.Close:
		if c.pos.Equal(c.start) {
			return c, nil
		}
		c.pos = c.start
		return c, []orb.Point{c.start}
	}
	// Elliptical arcs are not interpreted; the cursor is lost and subsequent relative coordinates anchor at the origin.
	return cursor{}, nil
}

// ParsePath interprets SVG path data and returns the geometries its subpaths form. Curved segments are flattened at CurveResolution points. Two-point subpaths become line strings, longer open subpaths become line strings, and closed subpaths merge into a single polygon whose first ring is the outer boundary.
func ParsePath(d string) (orb.Collection, error) {
	var c cursor
	var subpaths []orb.LineString
	s := pathdata.NewScanner(d)
	for s.Scan() {
		seg := s.Segment()
		var points []orb.Point
		c, points = c.apply(seg)
		if seg.Op == pathdata.MoveTo {
			subpaths = append(subpaths, orb.LineString{})
		} else if len(subpaths) == 0 {
			if len(points) == 0 {
				continue
			}
			// drawing without a preceding move opens the subpath implicitly
			subpaths = append(subpaths, orb.LineString{})
			c.start = points[0]
		}
		n := len(subpaths) - 1
		subpaths[n] = append(subpaths[n], points...)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(subpaths) == 0 {
		return nil, ErrInvalidSVG
	}
	return assemble(subpaths), nil
}

// ParsePathGeometry interprets SVG path data that resolves to a single geometry.
func ParsePathGeometry(d string) (orb.Geometry, error) {
	collection, err := ParsePath(d)
	if err != nil {
		return nil, err
	}
	if len(collection) != 1 {
		return nil, ErrCollection
	}
	return collection[0], nil
}

// assemble partitions subpaths into two-point segments, open chains, and closed rings, and builds a collection with one entry per kind present, in that order. Subpaths shorter than two points carry no shape and are dropped.
func assemble(subpaths []orb.LineString) orb.Collection {
	var segments, chains []orb.LineString
	var rings []orb.Ring
	for _, subpath := range subpaths {
		switch {
		case len(subpath) < 2:
		case len(subpath) == 2:
			segments = append(segments, subpath)
		case !subpath[0].Equal(subpath[len(subpath)-1]):
			chains = append(chains, subpath)
		default:
			rings = append(rings, orb.Ring(subpath))
		}
	}

	collection := orb.Collection{}
	if 0 < len(segments) {
		collection = append(collection, lineGeometry(segments))
	}
	if 0 < len(chains) {
		collection = append(collection, lineGeometry(chains))
	}
	if 0 < len(rings) {
		// the first ring is the outer boundary, further rings become holes
		collection = append(collection, orb.Polygon(rings))
	}
	return collection
}

func lineGeometry(lines []orb.LineString) orb.Geometry {
	if len(lines) == 1 {
		return lines[0]
	}
	return orb.MultiLineString(lines)
}
