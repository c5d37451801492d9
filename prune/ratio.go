package prune

import (
	"github.com/katalvlaran/centerline/graph"
	"github.com/katalvlaran/centerline/pipeline"
)

// RatioPruner removes terminal edges whose length-to-radius ratio falls
// below Config.RatioThreshold — spec.md §4.2's first pruner, catching
// the short, wide stubs Voronoi skeletonization leaves at building
// corners and driveway mouths. A removal can expose a new degree-1
// node, so the pass repeats to a fixed point (spec.md §4.2 "applied
// repeatedly until no edge qualifies").
type RatioPruner struct{}

// Name implements Pruner.
func (RatioPruner) Name() string { return "ratio" }

// Prune implements Pruner.
func (RatioPruner) Prune(g *graph.Graph, pc *pipeline.Context) Stats {
	var stats Stats
	threshold := pc.Config.RatioThreshold

	for {
		candidates := terminalEdges(g)
		if len(candidates) == 0 {
			break
		}
		removedThisPass := 0
		for _, e := range sortEdgesByLength(candidates) {
			live, err := g.Edge(e.ID)
			if err != nil {
				continue
			}
			leafRadius := leafEndRadius(g, live)
			if leafRadius <= 0 {
				continue
			}
			if live.Length/leafRadius < threshold {
				if err := g.RemoveEdge(live.ID); err == nil {
					stats.EdgesRemoved++
					removedThisPass++
				}
			}
		}
		if removedThisPass == 0 {
			break
		}
		g.Refresh()
	}
	return stats
}

// terminalEdges returns every live edge with a degree-1 endpoint,
// i.e. a leaf branch eligible for ratio/spur pruning.
func terminalEdges(g *graph.Graph) []graph.Edge {
	var out []graph.Edge
	for _, e := range g.Edges() {
		fromNode, errFrom := g.Node(e.From)
		toNode, errTo := g.Node(e.To)
		if errFrom != nil || errTo != nil {
			continue
		}
		if fromNode.Degree == 1 || toNode.Degree == 1 {
			out = append(out, e)
		}
	}
	return out
}

// leafEndRadius returns the boundary-radius sampled at whichever
// endpoint of e is the degree-1 leaf. If neither (or both) endpoints
// are degree-1, it returns the smaller of the two, matching spec.md
// §4.2's "the leaf end's radius" phrasing for the common case and
// degrading gracefully for isolated two-node components.
func leafEndRadius(g *graph.Graph, e graph.Edge) float64 {
	fromNode, errFrom := g.Node(e.From)
	toNode, errTo := g.Node(e.To)
	if errFrom != nil || errTo != nil {
		return 0
	}
	if fromNode.Degree == 1 && toNode.Degree != 1 {
		return fromNode.Radius
	}
	if toNode.Degree == 1 && fromNode.Degree != 1 {
		return toNode.Radius
	}
	if fromNode.Radius < toNode.Radius {
		return fromNode.Radius
	}
	return toNode.Radius
}
