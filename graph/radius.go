package graph

import "github.com/katalvlaran/centerline/geom"

// RadiusSampler measures distance from a point to the nearest polygon
// boundary point. skeleton.Skeletonizer supplies one backed by a
// geom.Index; this indirection keeps graph free of a geom.Polygon
// dependency beyond geom.Point/Polyline.
type RadiusSampler func(p geom.Point) float64

// AnnotateEdgeRadius computes MinRadius/MeanRadius for an edge's
// geometry by sampling every vertex with sample, per spec.md §3's
// "radius statistics sampled along the polyline".
func AnnotateEdgeRadius(e *Edge, sample RadiusSampler) {
	if len(e.Geometry) == 0 {
		return
	}
	min := sample(e.Geometry[0])
	var sum float64
	for _, p := range e.Geometry {
		r := sample(p)
		sum += r
		if r < min {
			min = r
		}
	}
	e.MinRadius = min
	e.MeanRadius = sum / float64(len(e.Geometry))
}
