package voronoi

import "github.com/katalvlaran/centerline/geom"

// Build computes the Voronoi diagram of sites, bounded by bound, and
// returns every finite cell-boundary segment. Segments are not
// deduplicated: a shared edge between two cells appears twice (once per
// cell), which is fine for skeleton.Skeletonizer's downstream
// snap-and-assemble pass and avoids the bookkeeping cost of half-edge
// topology this pipeline has no other use for.
func Build(sites []geom.Point, bound geom.Rect) []geom.Segment {
	var segments []geom.Segment
	boundRing := rectRing(bound)

	for i, site := range sites {
		cell := boundRing
		for j, other := range sites {
			if i == j {
				continue
			}
			cell = clipHalfPlane(cell, site, other)
			if len(cell) < 3 {
				break
			}
		}
		segments = append(segments, ringToSegments(cell)...)
	}
	return segments
}

func rectRing(r geom.Rect) []geom.Point {
	return []geom.Point{
		{r.Min[0], r.Min[1]},
		{r.Max[0], r.Min[1]},
		{r.Max[0], r.Max[1]},
		{r.Min[0], r.Max[1]},
	}
}

func ringToSegments(ring []geom.Point) []geom.Segment {
	n := len(ring)
	if n < 2 {
		return nil
	}
	out := make([]geom.Segment, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if ring[i] == ring[j] {
			continue
		}
		out = append(out, geom.Segment{ring[i], ring[j]})
	}
	return out
}

// clipHalfPlane clips the convex polygon ring to the half-plane of
// points at least as close to keep as to other (the Voronoi
// perpendicular-bisector constraint), via Sutherland-Hodgman clipping
// against that one bisector line.
func clipHalfPlane(ring []geom.Point, keep, other geom.Point) []geom.Point {
	if len(ring) == 0 {
		return nil
	}
	nx, ny := other[0]-keep[0], other[1]-keep[1]
	mx, my := (keep[0]+other[0])/2, (keep[1]+other[1])/2

	side := func(p geom.Point) float64 {
		return (p[0]-mx)*nx + (p[1]-my)*ny
	}

	var out []geom.Point
	n := len(ring)
	for i := 0; i < n; i++ {
		cur := ring[i]
		next := ring[(i+1)%n]
		curSide := side(cur)
		nextSide := side(next)

		if curSide <= 0 {
			out = append(out, cur)
		}
		if (curSide <= 0) != (nextSide <= 0) {
			t := curSide / (curSide - nextSide)
			out = append(out, geom.Point{
				cur[0] + t*(next[0]-cur[0]),
				cur[1] + t*(next[1]-cur[1]),
			})
		}
	}
	return out
}
