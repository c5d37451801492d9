package geom

import (
	clipper "github.com/go-clipper/clipper2"
)

// offsetScale converts meter-unit float coordinates to Clipper2's
// Point64 integer space. Clipper2's robust intersection arithmetic
// requires integers; six decimal digits of precision (micrometers) is
// far finer than any tolerance this pipeline exposes.
const offsetScale = 1e6

// OffsetPolygon grows (delta > 0) or shrinks (delta < 0) poly's rings
// by delta meters, using Clipper2's ClipperOffset path-offsetting —
// the one operation in this package that is a clean fit for a
// closed-path boolean/offset library. skeleton.Skeletonizer uses a
// negative offset to sanity-check that a polygon is not narrower than
// boundary_near_distance before building its medial axis; the
// Skeletonizer's own polygon clipping uses geom.ClipSegmentToPolygon
// instead (see that file's doc comment for why Clipper2 does not fit
// that operation).
func OffsetPolygon(poly Polygon, delta float64) Polygon {
	if len(poly.Rings) == 0 {
		return poly
	}
	paths := make(clipper.Paths64, len(poly.Rings))
	for i, ring := range poly.Rings {
		paths[i] = ringToPath64(ring)
	}

	offset := clipper.NewClipperOffset(2.0, 0.25)
	offset.AddPaths(paths, clipper.JoinMiter, clipper.EndPolygon)
	result, err := offset.Execute(delta * offsetScale)
	if err != nil {
		return Polygon{ID: poly.ID, Rings: poly.Rings}
	}

	rings := make([]Ring, 0, len(result))
	for _, path := range result {
		rings = append(rings, path64ToRing(path))
	}
	// An empty result is a real outcome (e.g. shrinking a sliver
	// polygon past its own width collapses it entirely), so it is
	// returned as-is rather than silently substituting poly back in.
	return Polygon{ID: poly.ID, Rings: rings}
}

func ringToPath64(ring Ring) clipper.Path64 {
	path := make(clipper.Path64, len(ring))
	for i, p := range ring {
		path[i] = clipper.Point64{
			X: int64(p[0] * offsetScale),
			Y: int64(p[1] * offsetScale),
		}
	}
	return path
}

func path64ToRing(path clipper.Path64) Ring {
	ring := make(Ring, len(path))
	for i, p := range path {
		ring[i] = Point{float64(p.X) / offsetScale, float64(p.Y) / offsetScale}
	}
	return ring
}
