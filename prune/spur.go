package prune

import (
	"github.com/katalvlaran/centerline/graph"
	"github.com/katalvlaran/centerline/pipeline"
)

// SpurPruner removes terminal edges shorter than the absolute
// Config.SpurAbsoluteLength cutoff — spec.md §4.2's fourth and final
// pruner, a backstop for short dangling stubs that survive
// RatioPruner's radius-relative test (e.g. a leaf sampled at a
// narrow throat where the ratio looks acceptable but the stub itself
// is still too short to be a real branch). Runs to a fixed point for
// the same reason RatioPruner does: removing a spur can expose a new
// degree-1 node one hop further in.
type SpurPruner struct{}

// Name implements Pruner.
func (SpurPruner) Name() string { return "spur" }

// Prune implements Pruner.
func (SpurPruner) Prune(g *graph.Graph, pc *pipeline.Context) Stats {
	var stats Stats
	cutoff := pc.Config.SpurAbsoluteLength

	for {
		removedThisPass := 0
		for _, e := range sortEdgesByLength(terminalEdges(g)) {
			live, err := g.Edge(e.ID)
			if err != nil {
				continue
			}
			if live.Length < cutoff {
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
