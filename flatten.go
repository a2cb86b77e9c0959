package geosvg

import "github.com/paulmach/orb"

// CurveResolution is the number of points at which quadratic and cubic Béziers are sampled when flattening them to line segments. The sampling is uniform in the curve parameter, not error-bounded.
var CurveResolution = 100

func lerp(a, b orb.Point, t float64) orb.Point {
	return orb.Point{a[0] + t*(b[0]-a[0]), a[1] + t*(b[1]-a[1])}
}

// quadPoint evaluates a quadratic Bézier at t by De Casteljau's algorithm.
func quadPoint(p0, p1, p2 orb.Point, t float64) orb.Point {
	return lerp(lerp(p0, p1, t), lerp(p1, p2, t), t)
}

func cubePoint(p0, p1, p2, p3 orb.Point, t float64) orb.Point {
	return quadPoint(lerp(p0, p1, t), lerp(p1, p2, t), lerp(p2, p3, t), t)
}

// flattenQuad samples the curve interior at k/n for 0 < k < n, in parametric order. The end point is appended by the caller.
func flattenQuad(p0, p1, p2 orb.Point, n int) []orb.Point {
	points := make([]orb.Point, 0, n)
	for k := 1; k < n; k++ {
		points = append(points, quadPoint(p0, p1, p2, float64(k)/float64(n)))
	}
	return points
}

func flattenCube(p0, p1, p2, p3 orb.Point, n int) []orb.Point {
	points := make([]orb.Point, 0, n)
	for k := 1; k < n; k++ {
		points = append(points, cubePoint(p0, p1, p2, p3, float64(k)/float64(n)))
	}
	return points
}
