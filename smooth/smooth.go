package smooth

import (
	"context"

	"github.com/katalvlaran/centerline/geom"
	"github.com/katalvlaran/centerline/graph"
	"github.com/katalvlaran/centerline/pipeline"
)

// Smoother implements pipeline.Stage for spec.md §4.5.
type Smoother struct{}

// Kind implements pipeline.Stage.
func (Smoother) Kind() pipeline.StageKind { return pipeline.KindSmooth }

// Run implements pipeline.Stage.
func (Smoother) Run(_ context.Context, pc *pipeline.Context) (*graph.Graph, error) {
	g := pc.Graph
	window := pc.Config.SmoothingWindow
	tol := pc.Config.SmoothingTolerance

	for _, e := range g.Edges() {
		geometry := e.Geometry
		changed := false

		fromNode, errFrom := g.Node(e.From)
		if errFrom == nil && fromNode.Degree >= 3 {
			if straightened, ok := straightenEnd(geometry, window, tol); ok {
				geometry = straightened
				changed = true
			}
		}

		toNode, errTo := g.Node(e.To)
		if errTo == nil && toNode.Degree >= 3 && !e.IsLoop() {
			reversed := geometry.Reversed()
			if straightened, ok := straightenEnd(reversed, window, tol); ok {
				geometry = straightened.Reversed()
				changed = true
			}
		}

		if !changed {
			continue
		}
		if err := g.RemoveEdge(e.ID); err != nil {
			continue
		}
		_, _ = g.AddEdge(e.From, e.To, geometry, e.SourcePolygonID)
	}

	g.Refresh()
	return g, nil
}

// straightenEnd examines pl's vertices near pl[0] (the junction end)
// and, if the largest K <= window whose intermediate vertices all
// deviate from the straight line pl[0]->pl[K] by less than tol exists,
// returns pl with its first K segments collapsed to one straight
// segment.
func straightenEnd(pl geom.Polyline, window int, tol float64) (geom.Polyline, bool) {
	maxK := window
	if maxK > len(pl)-1 {
		maxK = len(pl) - 1
	}
	if maxK < 2 {
		return nil, false
	}

	bestK := 0
	for k := maxK; k >= 2; k-- {
		line := geom.Segment{pl[0], pl[k]}
		ok := true
		for i := 1; i < k; i++ {
			if geom.DistancePointSegment(pl[i], line) >= tol {
				ok = false
				break
			}
		}
		if ok {
			bestK = k
			break
		}
	}
	if bestK == 0 {
		return nil, false
	}

	out := make(geom.Polyline, 0, len(pl)-bestK+1)
	out = append(out, pl[0], pl[bestK])
	out = append(out, pl[bestK+1:]...)
	return out, true
}
