package geom

import "math"

// SegmentIntersect computes the intersection point of two segments, if
// any, using the standard parametric line-line solution. Collinear
// overlapping segments are reported as not intersecting at a single
// point (ok=false); callers that need overlap handling (none of the
// current stages do — Planarizer treats near-collinear overlaps as a
// degenerate case resolved by snap_tolerance) must special-case that
// separately.
func SegmentIntersect(a, b Segment) (p Point, ok bool) {
	x1, y1 := a[0][0], a[0][1]
	x2, y2 := a[1][0], a[1][1]
	x3, y3 := b[0][0], b[0][1]
	x4, y4 := b[1][0], b[1][1]

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(denom) < 1e-15 {
		return Point{}, false
	}

	tNum := (x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)
	uNum := (x1-x3)*(y1-y2) - (y1-y3)*(x1-x2)
	t := tNum / denom
	u := uNum / denom

	if t < -1e-12 || t > 1+1e-12 || u < -1e-12 || u > 1+1e-12 {
		return Point{}, false
	}

	return Point{x1 + t*(x2-x1), y1 + t*(y2-y1)}, true
}

// SegmentsCross reports whether two segments intersect anywhere other
// than at a shared declared endpoint (within tol). This is the exact
// predicate the Planarizer's planarity invariant and the
// NetworkSimplifier's crossing guard both need.
func SegmentsCross(a, b Segment, tol float64) bool {
	p, ok := SegmentIntersect(a, b)
	if !ok {
		return false
	}
	// An intersection coincident with a shared endpoint is not a crossing.
	for _, ea := range a {
		for _, eb := range b {
			if Near(ea, eb, tol) && Near(p, ea, tol) {
				return false
			}
		}
	}
	return true
}

// ClipSegmentToPolygon clips segment s to the portion(s) of it lying in
// the polygon interior (outer ring minus holes). Because a segment can
// cross a concave boundary multiple times, the result is zero or more
// sub-segments.
//
// This is a hand-rolled Weiler-Atherton-flavored clip: all boundary
// crossings of s against every ring edge are collected, the crossing
// parameters are sorted along s, and each resulting sub-interval is
// kept iff its midpoint lies in the polygon interior. No retrieved
// clipping library (go-clipper/clipper2 included) exposes open-
// polyline-vs-region clipping; clipper2's boolean ops are closed-path
// only, so this primitive is implemented directly against geom's own
// point-in-polygon and segment-intersection routines.
func ClipSegmentToPolygon(s Segment, poly Polygon) []Segment {
	params := []float64{0, 1}
	for _, ring := range poly.Rings {
		n := len(ring)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			edge := Segment{ring[i], ring[j]}
			if t, ok := segmentParam(s, edge); ok {
				params = append(params, t)
			}
		}
	}
	params = sortUniqueFloats(params)

	var out []Segment
	for i := 0; i+1 < len(params); i++ {
		t0, t1 := params[i], params[i+1]
		if t1-t0 < 1e-12 {
			continue
		}
		sub := Segment{lerp(s, t0), lerp(s, t1)}
		if sub.Length() == 0 {
			continue
		}
		if MidpointInPolygon(sub, poly) {
			out = append(out, sub)
		}
	}
	return out
}

// segmentParam returns the parameter t in [0,1] along s at which s
// crosses edge, if they intersect.
func segmentParam(s, edge Segment) (float64, bool) {
	p, ok := SegmentIntersect(s, edge)
	if !ok {
		return 0, false
	}
	dx, dy := s[1][0]-s[0][0], s[1][1]-s[0][1]
	var t float64
	if math.Abs(dx) >= math.Abs(dy) {
		if dx == 0 {
			return 0, false
		}
		t = (p[0] - s[0][0]) / dx
	} else {
		if dy == 0 {
			return 0, false
		}
		t = (p[1] - s[0][1]) / dy
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t, true
}

func lerp(s Segment, t float64) Point {
	return Point{
		s[0][0] + t*(s[1][0]-s[0][0]),
		s[0][1] + t*(s[1][1]-s[0][1]),
	}
}

func sortUniqueFloats(vals []float64) []float64 {
	// Small slices (a handful of ring crossings); insertion sort keeps
	// this allocation-free and avoids pulling in sort for <20 elements.
	for i := 1; i < len(vals); i++ {
		v := vals[i]
		j := i - 1
		for j >= 0 && vals[j] > v {
			vals[j+1] = vals[j]
			j--
		}
		vals[j+1] = v
	}
	out := vals[:0:0]
	for i, v := range vals {
		if i == 0 || v-out[len(out)-1] > 1e-12 {
			out = append(out, v)
		}
	}
	return out
}
