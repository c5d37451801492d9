package simplify

import (
	"context"

	"github.com/katalvlaran/centerline/geom"
	"github.com/katalvlaran/centerline/graph"
	"github.com/katalvlaran/centerline/pipeline"
)

// toleranceFloor is spec.md §4.7's hard minimum retry tolerance,
// independent of any configured value.
const toleranceFloor = 0.05

// Simplifier implements pipeline.Stage for spec.md §4.7.
type Simplifier struct{}

// Kind implements pipeline.Stage.
func (Simplifier) Kind() pipeline.StageKind { return pipeline.KindSimplify }

type segRef struct {
	edgeID graph.EdgeID
	segIdx int
}

// Run implements pipeline.Stage.
func (Simplifier) Run(_ context.Context, pc *pipeline.Context) (*graph.Graph, error) {
	g := pc.Graph
	cfg := pc.Config

	edges := g.Edges()
	ix := geom.NewIndex()
	for _, e := range edges {
		for i := 0; i+1 < len(e.Geometry); i++ {
			ix.Insert(geom.Segment{e.Geometry[i], e.Geometry[i+1]}, segRef{edgeID: e.ID, segIdx: i})
		}
	}

	for _, e := range edges {
		tolerance := cfg.SimplifyTolerance
		var accepted geom.Polyline

		for tolerance >= toleranceFloor {
			candidate := geom.DouglasPeucker(e.Geometry, tolerance)
			if !crossesOthers(g, ix, e, candidate, cfg.SnapTolerance) {
				hd := geom.HausdorffDistance(e.Geometry, candidate)
				if hd <= cfg.SimplifyMaxHausdorff {
					accepted = candidate
					break
				}
			}
			tolerance /= 2
		}

		if accepted == nil {
			continue
		}
		if err := g.RemoveEdge(e.ID); err != nil {
			continue
		}
		newID, err := g.AddEdge(e.From, e.To, accepted, e.SourcePolygonID)
		if err != nil {
			continue
		}
		for i := 0; i+1 < len(accepted); i++ {
			ix.Insert(geom.Segment{accepted[i], accepted[i+1]}, segRef{edgeID: newID, segIdx: i})
		}
	}

	g.Refresh()
	return g, nil
}

// crossesOthers reports whether candidate (e's proposed simplified
// geometry) would cross any other edge's geometry, using the
// spatial index as a bounding-box pre-filter before the exact
// geom.SegmentsCross test (spec.md §4.7's "checked via spatial index
// lookup of candidate edges").
func crossesOthers(g *graph.Graph, ix *geom.Index, e graph.Edge, candidate geom.Polyline, tol float64) bool {
	for i := 0; i+1 < len(candidate); i++ {
		segA := geom.Segment{candidate[i], candidate[i+1]}
		radius := segA.Length()/2 + 1e-6
		mid := geom.Point{(segA[0][0] + segA[1][0]) / 2, (segA[0][1] + segA[1][1]) / 2}
		for _, c := range ix.QueryNear(mid, radius) {
			ref, ok := c.(segRef)
			if !ok || ref.edgeID == e.ID {
				continue
			}
			other, err := g.Edge(ref.edgeID)
			if err != nil || ref.segIdx+1 >= len(other.Geometry) {
				continue
			}
			segB := geom.Segment{other.Geometry[ref.segIdx], other.Geometry[ref.segIdx+1]}
			if geom.SegmentsCross(segA, segB, tol) {
				return true
			}
		}
	}
	return false
}
