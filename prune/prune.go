package prune

import (
	"context"
	"sort"

	"github.com/katalvlaran/centerline/graph"
	"github.com/katalvlaran/centerline/pipeline"
)

// Stats reports what one Pruner pass removed, surfaced in logs/metrics.
type Stats struct {
	EdgesRemoved      int
	ComponentsRemoved int
}

// Pruner removes edges/components from g according to one rule of
// spec.md §4.2. Implementations must be idempotent: running Prune twice
// on the same output must remove nothing the second time (spec.md §8
// property 5).
type Pruner interface {
	Name() string
	Prune(g *graph.Graph, pc *pipeline.Context) Stats
}

// Chain runs the fixed-order pruner sequence of spec.md §4.2 and
// implements pipeline.Stage so it can sit directly in a Driver's
// PerPolygon stage list.
type Chain struct {
	pruners []Pruner
}

// DefaultChain returns the canonical order: Ratio, BoundaryNear,
// Component, Spur.
func DefaultChain() *Chain {
	return &Chain{pruners: []Pruner{
		RatioPruner{},
		BoundaryNearPruner{},
		ComponentPruner{},
		SpurPruner{},
	}}
}

// Kind implements pipeline.Stage.
func (*Chain) Kind() pipeline.StageKind { return pipeline.KindPrune }

// Run implements pipeline.Stage, applying every pruner in order against
// the Context's current graph and returning the survivor.
func (c *Chain) Run(_ context.Context, pc *pipeline.Context) (*graph.Graph, error) {
	g := pc.Graph
	for _, p := range c.pruners {
		stats := p.Prune(g, pc)
		if stats.EdgesRemoved > 0 || stats.ComponentsRemoved > 0 {
			g.Refresh()
			pc.Logger.Debug("pruner pass",
				"pruner", p.Name(),
				"edges_removed", stats.EdgesRemoved,
				"components_removed", stats.ComponentsRemoved)
		}
	}
	return g, nil
}

// sortEdgesByLength returns edges sorted ascending by Length, breaking
// ties by EdgeID for determinism — spec.md §9's resolved Open Question
// ("this spec mandates length-ascending for determinism").
func sortEdgesByLength(edges []graph.Edge) []graph.Edge {
	out := append([]graph.Edge(nil), edges...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Length != out[j].Length {
			return out[i].Length < out[j].Length
		}
		return out[i].ID < out[j].ID
	})
	return out
}
