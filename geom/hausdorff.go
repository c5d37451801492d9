package geom

// HausdorffDistance returns the (symmetric) Hausdorff distance between
// two polylines: the greatest of the smallest distances between their
// point sets, approximated by sampling each polyline's own vertices
// against the other's segments (exact for polyline-vs-polyline, since
// the farthest nearest-point is always attained at a vertex of one of
// the two curves for piecewise-linear inputs).
func HausdorffDistance(a, b Polyline) float64 {
	da := directedHausdorff(a, b)
	db := directedHausdorff(b, a)
	if da > db {
		return da
	}
	return db
}

func directedHausdorff(a, b Polyline) float64 {
	var worst float64
	for _, p := range a {
		best := nearestDistanceToPolyline(p, b)
		if best > worst {
			worst = best
		}
	}
	return worst
}

func nearestDistanceToPolyline(p Point, pl Polyline) float64 {
	best := -1.0
	for i := 1; i < len(pl); i++ {
		d := DistancePointSegment(p, Segment{pl[i-1], pl[i]})
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0
	}
	return best
}
