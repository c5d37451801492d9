package geom

// DensifyRing resamples ring so consecutive points are separated by at
// most maxLen, inserting interpolated points along each original edge.
// This is the "segmentize" step spec.md §4.1 requires before Voronoi
// site extraction; it does not mutate ring.
func DensifyRing(ring Ring, maxLen float64) Ring {
	if maxLen <= 0 || len(ring) < 2 {
		return append(Ring(nil), ring...)
	}
	out := make(Ring, 0, len(ring)*2)
	n := len(ring)
	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[(i+1)%n]
		out = append(out, a)
		d := Distance(a, b)
		if d <= maxLen {
			continue
		}
		steps := int(d/maxLen) + 1
		for k := 1; k < steps; k++ {
			t := float64(k) / float64(steps)
			out = append(out, Point{
				a[0] + t*(b[0]-a[0]),
				a[1] + t*(b[1]-a[1]),
			})
		}
	}
	return out
}

// DensifyPolygon densifies every ring of poly, returning a new Polygon.
// The original (non-densified) polygon must be retained by callers that
// need true boundary distance (spec.md §4.1 step 4 measures radius
// against the original boundary, not the densified one).
func DensifyPolygon(poly Polygon, maxLen float64) Polygon {
	rings := make([]Ring, len(poly.Rings))
	for i, r := range poly.Rings {
		rings[i] = DensifyRing(r, maxLen)
	}
	return Polygon{ID: poly.ID, Rings: rings}
}

// BoundarySites returns every point of every (densified) ring as a
// Voronoi construction site, deduplicated within dedupeTol.
func BoundarySites(poly Polygon, dedupeTol float64) []Point {
	var sites []Point
	for _, ring := range poly.Rings {
		for _, p := range ring {
			dup := false
			for _, s := range sites {
				if Near(s, p, dedupeTol) {
					dup = true
					break
				}
			}
			if !dup {
				sites = append(sites, p)
			}
		}
	}
	return sites
}
