package skeleton

import (
	"github.com/katalvlaran/centerline/geom"
	"github.com/katalvlaran/centerline/graph"
)

// assemble unifies coincident segment endpoints (within snapTol) into
// single nodes, builds an edge per segment, and annotates every node's
// radius against the original (non-densified) polygon boundary,
// per spec.md §4.1 steps 4-5.
func assemble(segments []geom.Segment, original geom.Polygon, snapTol float64) (*graph.Graph, error) {
	g := graph.New()
	boundaryIx := geom.BuildBoundaryIndex(original)
	sample := func(p geom.Point) float64 { return geom.DistanceToBoundary(p, boundaryIx, original) }

	var positions []geom.Point
	var ids []graph.NodeID

	nodeFor := func(p geom.Point) graph.NodeID {
		for i, q := range positions {
			if geom.Near(p, q, snapTol) {
				return ids[i]
			}
		}
		id := g.AddNode(p)
		positions = append(positions, p)
		ids = append(ids, id)
		return id
	}

	for _, seg := range segments {
		if seg.Length() == 0 {
			continue
		}
		fromID := nodeFor(seg[0])
		toID := nodeFor(seg[1])
		if fromID == toID {
			continue
		}
		fromNode, errFrom := g.Node(fromID)
		toNode, errTo := g.Node(toID)
		if errFrom != nil || errTo != nil {
			continue
		}
		geometry := geom.Polyline{fromNode.Position, toNode.Position}
		if _, err := g.AddEdge(fromID, toID, geometry, original.ID); err != nil {
			// Degenerate/mismatched geometry from floating point noise;
			// skip rather than fail the whole polygon.
			continue
		}
	}

	for _, id := range ids {
		n, err := g.Node(id)
		if err != nil {
			continue
		}
		r := sample(n.Position)
		_ = g.SetNodeRadius(id, r)
	}
	g.Refresh()

	for _, e := range g.Edges() {
		ee := e
		graph.AnnotateEdgeRadius(&ee, sample)
		_ = g.SetEdgeRadiusStats(ee.ID, ee.MinRadius, ee.MeanRadius)
	}

	return g, nil
}
