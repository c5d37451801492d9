package forkclean

import (
	"context"
	"math"

	"github.com/katalvlaran/centerline/config"
	"github.com/katalvlaran/centerline/geom"
	"github.com/katalvlaran/centerline/graph"
	"github.com/katalvlaran/centerline/pipeline"
)

// Cleaner implements pipeline.Stage for spec.md §4.6.
type Cleaner struct{}

// Kind implements pipeline.Stage.
func (Cleaner) Kind() pipeline.StageKind { return pipeline.KindForkClean }

// chain is one leaf-to-fork walk.
type chain struct {
	leaf      graph.NodeID
	edges     []graph.EdgeID
	interior  []graph.NodeID // degree-2 nodes strictly between leaf and fork
	totalLen  float64
	fork      graph.NodeID
	reached   bool
}

// Run implements pipeline.Stage.
func (Cleaner) Run(_ context.Context, pc *pipeline.Context) (*graph.Graph, error) {
	g := pc.Graph
	cfg := pc.Config

	var leaves []graph.NodeID
	for _, n := range g.Nodes() {
		if n.Degree == 1 {
			leaves = append(leaves, n.ID)
		}
	}

	deleted := make(map[graph.NodeID]bool)
	for _, leafID := range leaves {
		if deleted[leafID] {
			continue
		}
		c := walkToFork(g, leafID, cfg.ForkWalkMaxLength)
		if !c.reached {
			continue
		}

		if len(c.interior) == 1 && bendQualifies(g, c, cfg) {
			deleteChain(g, c, deleted)
			continue
		}

		if withinBoundaryBand(g, pc, c, cfg.TerminalNearBoundary) && otherBranchesContinue(g, pc, c, cfg) {
			deleteChain(g, c, deleted)
		}
	}

	g.Refresh()
	return g, nil
}

// walkToFork follows the degree-2 chain from leaf until a node of
// degree != 2 is reached, or the walk budget is exceeded.
func walkToFork(g *graph.Graph, leaf graph.NodeID, budget float64) chain {
	c := chain{leaf: leaf}
	current := leaf
	var prevEdge graph.EdgeID = -1

	for {
		incident := g.Incident(current)
		var next graph.Edge
		found := false
		for _, e := range incident {
			if e.ID == prevEdge {
				continue
			}
			next = e
			found = true
			break
		}
		if !found {
			return c
		}
		c.edges = append(c.edges, next.ID)
		c.totalLen += next.Length
		prevEdge = next.ID
		current = next.OtherEnd(current)

		if c.totalLen > budget {
			return c
		}
		n, err := g.Node(current)
		if err != nil {
			return c
		}
		if n.Degree >= 3 {
			c.fork = current
			c.reached = true
			return c
		}
		if n.Degree == 1 {
			// Ran into another leaf (an isolated 2-node/3-node component);
			// no fork exists to clean against.
			return c
		}
		c.interior = append(c.interior, current)
	}
}

// bendQualifies implements spec.md §4.6's single-bend variant: exactly
// one interior degree-2 node, its turning angle exceeds
// bend_angle_threshold, and the chain's total length is under
// bend_max_length.
func bendQualifies(g *graph.Graph, c chain, cfg *config.Config) bool {
	if c.totalLen >= cfg.BendMaxLength {
		return false
	}
	interior := c.interior[0]
	n, err := g.Node(interior)
	if err != nil {
		return false
	}
	leafNode, err2 := g.Node(c.leaf)
	forkNode, err3 := g.Node(c.fork)
	if err2 != nil || err3 != nil {
		return false
	}
	angle := turningAngleDegrees(leafNode.Position, n.Position, forkNode.Position)
	return angle > cfg.BendAngleThreshold
}

// withinBoundaryBand reports whether every point of every traversed
// edge's geometry lies within band of its originating polygon's
// boundary.
func withinBoundaryBand(g *graph.Graph, pc *pipeline.Context, c chain, band float64) bool {
	for _, eid := range c.edges {
		e, err := g.Edge(eid)
		if err != nil {
			return false
		}
		for _, p := range e.Geometry {
			if pc.DistanceToBoundaryFor(e.SourcePolygonID, p) > band {
				return false
			}
		}
	}
	return true
}

// otherBranchesContinue reports whether the fork's two other incident
// branches (excluding the one just traversed) each extend inward for
// more than inward_continuation before hitting another fork or leaf.
func otherBranchesContinue(g *graph.Graph, pc *pipeline.Context, c chain, cfg *config.Config) bool {
	traversedEdge := c.edges[len(c.edges)-1]
	others := g.Incident(c.fork)
	count := 0
	for _, e := range others {
		if e.ID == traversedEdge {
			continue
		}
		count++
		if !branchContinuesInward(g, pc, c.fork, e, cfg.InwardContinuation) {
			return false
		}
	}
	return count >= 2
}

// branchContinuesInward walks from fork along e until a non-degree-2
// node or a walk budget equal to minLen is exceeded, returning true
// once the accumulated length clears minLen.
func branchContinuesInward(g *graph.Graph, pc *pipeline.Context, fork graph.NodeID, e graph.Edge, minLen float64) bool {
	total := e.Length
	current := e.OtherEnd(fork)
	prevEdge := e.ID
	for total < minLen {
		n, err := g.Node(current)
		if err != nil {
			return false
		}
		if n.Degree != 2 {
			break
		}
		var next graph.Edge
		found := false
		for _, ie := range g.Incident(current) {
			if ie.ID == prevEdge {
				continue
			}
			next = ie
			found = true
			break
		}
		if !found {
			break
		}
		total += next.Length
		prevEdge = next.ID
		current = next.OtherEnd(current)
	}
	return total > minLen
}

func deleteChain(g *graph.Graph, c chain, deleted map[graph.NodeID]bool) {
	for _, eid := range c.edges {
		_ = g.RemoveEdge(eid)
	}
	_ = g.RemoveNode(c.leaf)
	deleted[c.leaf] = true
	for _, nid := range c.interior {
		_ = g.RemoveNode(nid)
		deleted[nid] = true
	}
}

// turningAngleDegrees returns the angle, in degrees, between the
// incoming direction (a->b) and outgoing direction (b->c) at vertex b.
// 0 means straight through; 180 means a full reversal.
func turningAngleDegrees(a, b, c geom.Point) float64 {
	v1x, v1y := b[0]-a[0], b[1]-a[1]
	v2x, v2y := c[0]-b[0], c[1]-b[1]
	l1 := math.Hypot(v1x, v1y)
	l2 := math.Hypot(v2x, v2y)
	if l1 == 0 || l2 == 0 {
		return 0
	}
	cosA := (v1x*v2x + v1y*v2y) / (l1 * l2)
	if cosA > 1 {
		cosA = 1
	} else if cosA < -1 {
		cosA = -1
	}
	return math.Acos(cosA) * 180 / math.Pi
}
