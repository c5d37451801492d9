package prune

import (
	"github.com/katalvlaran/centerline/geom"
	"github.com/katalvlaran/centerline/graph"
	"github.com/katalvlaran/centerline/pipeline"
)

// BoundaryNearPruner removes terminal edges whose entire polyline lies
// within Config.BoundaryNearDistance of the source polygon's boundary
// — spec.md §4.2's second pruner, catching stubs that point straight
// at the edge of the road surface rather than toward any real
// junction. Unlike RatioPruner this runs a single pass: a leaf exposed
// by this pass has already survived RatioPruner and is handled by the
// fixed-point loops of the later Spur pass instead.
type BoundaryNearPruner struct{}

// Name implements Pruner.
func (BoundaryNearPruner) Name() string { return "boundary_near" }

// Prune implements Pruner.
func (BoundaryNearPruner) Prune(g *graph.Graph, pc *pipeline.Context) Stats {
	var stats Stats
	band := pc.Config.BoundaryNearDistance

	for _, e := range sortEdgesByLength(terminalEdges(g)) {
		live, err := g.Edge(e.ID)
		if err != nil {
			continue
		}
		fromNode, errFrom := g.Node(live.From)
		toNode, errTo := g.Node(live.To)
		if errFrom != nil || errTo != nil {
			continue
		}
		if fromNode.Degree != 1 && toNode.Degree != 1 {
			continue
		}
		if entirePolylineWithinBoundaryBand(pc, live.Geometry, band) {
			if err := g.RemoveEdge(live.ID); err == nil {
				stats.EdgesRemoved++
			}
		}
	}
	if stats.EdgesRemoved > 0 {
		g.Refresh()
	}
	return stats
}

// entirePolylineWithinBoundaryBand reports whether every vertex of
// geometry lies within band of the polygon's boundary, per spec.md
// §4.2's "whose entire polyline lies within boundary_near_distance":
// a stub that merely touches the boundary at one end but runs deep
// into the interior at the other must survive this pruner.
func entirePolylineWithinBoundaryBand(pc *pipeline.Context, geometry geom.Polyline, band float64) bool {
	for _, p := range geometry {
		if pc.DistanceToBoundary(p) > band {
			return false
		}
	}
	return true
}
