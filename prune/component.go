package prune

import (
	"github.com/katalvlaran/centerline/graph"
	"github.com/katalvlaran/centerline/pipeline"
)

// ComponentPruner removes whole connected components whose summed edge
// length falls below Config.MinComponentLength — spec.md §4.2's third
// pruner, discarding isolated fragments that RatioPruner and
// BoundaryNearPruner left stranded with no path back to the main
// network.
type ComponentPruner struct{}

// Name implements Pruner.
func (ComponentPruner) Name() string { return "component" }

// Prune implements Pruner.
func (ComponentPruner) Prune(g *graph.Graph, pc *pipeline.Context) Stats {
	var stats Stats
	minLength := pc.Config.MinComponentLength

	for _, comp := range graph.ConnectedComponents(g) {
		if comp.TotalLength(g) >= minLength {
			continue
		}
		for _, nid := range comp.Nodes {
			_ = g.RemoveNode(nid)
		}
		stats.ComponentsRemoved++
		stats.EdgesRemoved += len(comp.Edges)
	}
	return stats
}
