// File: clone.go
// Role: deep graph copies, adapted from the teacher's
// core.Clone/core.CloneEmpty/core.UnweightedView idiom (core/
// methods_clone.go, core/view.go). Stages do not copy the Graph they
// are handed: they edit it in place and return it. The pipeline driver
// copies a graph only to hand it to SnapshotSink.Write.
package graph

// Clone returns a deep copy of the graph: every node and edge,
// including tombstoned ones, so handles captured from the original
// remain meaningful against the clone. Geometry slices are copied so
// neither graph can mutate the other's polylines.
func (g *Graph) Clone() *Graph {
	out := &Graph{
		nodes:     make([]Node, len(g.nodes)),
		edges:     make([]Edge, len(g.edges)),
		adjacency: make([][]EdgeID, len(g.adjacency)),
		liveNodes: g.liveNodes,
		liveEdges: g.liveEdges,
	}
	copy(out.nodes, g.nodes)
	for i, e := range g.edges {
		ne := e
		ne.Geometry = append(ne.Geometry[:0:0], e.Geometry...)
		out.edges[i] = ne
	}
	for i, adj := range g.adjacency {
		out.adjacency[i] = append([]EdgeID(nil), adj...)
	}
	return out
}

// Snapshot is an alias for Clone used at stage boundaries where the
// intent is "freeze this graph for a SnapshotSink.Write call", not
// "give me a mutable copy to build on" — same operation, different
// reader-facing name (see pipeline.Driver).
func (g *Graph) Snapshot() *Graph {
	return g.Clone()
}
