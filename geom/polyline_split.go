package geom

// ParamAlongPolyline returns the arc-length distance from pl[0] to the
// point on pl closest to p, used by Planarizer to order multiple
// intersection points found along the same edge.
func ParamAlongPolyline(pl Polyline, p Point) float64 {
	if len(pl) < 2 {
		return 0
	}
	var acc float64
	best := acc
	bestDist := Distance(pl[0], p)
	for i := 1; i < len(pl); i++ {
		seg := Segment{pl[i-1], pl[i]}
		d := DistancePointSegment(p, seg)
		if d < bestDist {
			bestDist = d
			best = acc + projectLength(seg, p)
		}
		acc += seg.Length()
	}
	return best
}

// projectLength returns the arc-length offset, from s[0], of p's
// perpendicular projection onto segment s, clamped to [0, s.Length()].
func projectLength(s Segment, p Point) float64 {
	ax, ay := s[0][0], s[0][1]
	bx, by := s[1][0], s[1][1]
	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return 0
	}
	t := ((p[0]-ax)*dx + (p[1]-ay)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * s.Length()
}

// SplitPolylineAtLength splits pl into two polylines at arc-length
// offset length from pl[0], inserting an exact interpolated vertex at
// the cut point in both results. Used by Planarizer. ok is false if
// length falls
// outside (0, pl.Length()).
func SplitPolylineAtLength(pl Polyline, length float64) (left, right Polyline, ok bool) {
	total := pl.Length()
	if length <= 0 || length >= total || len(pl) < 2 {
		return nil, nil, false
	}
	var acc float64
	for i := 1; i < len(pl); i++ {
		seg := Segment{pl[i-1], pl[i]}
		segLen := seg.Length()
		if acc+segLen >= length {
			remaining := length - acc
			var cut Point
			if segLen == 0 {
				cut = seg[0]
			} else {
				t := remaining / segLen
				cut = Point{seg[0][0] + t*(seg[1][0]-seg[0][0]), seg[0][1] + t*(seg[1][1]-seg[0][1])}
			}
			left = append(append(Polyline{}, pl[:i]...), cut)
			right = append(Polyline{cut}, pl[i:]...)
			return left, right, true
		}
		acc += segLen
	}
	return nil, nil, false
}
