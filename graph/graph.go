package graph

import (
	"github.com/katalvlaran/centerline/geom"
)

// Graph is the arena-indexed planar multigraph described in doc.go.
// It is always undirected and permits parallel edges and loops at
// every stage: AddEdge rejects neither, and no stage, Planarizer
// included, removes parallel edges as such.
type Graph struct {
	nodes []Node
	edges []Edge
	// adjacency[n] lists edge IDs incident to node n. AddEdge appends
	// to it; RemoveEdge leaves the removed ID in place, and Refresh
	// rebuilds every list from the live edges.
	adjacency [][]EdgeID
	liveNodes int
	liveEdges int
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{}
}

// AddNode appends a new node at pos and returns its handle.
func (g *Graph) AddNode(pos geom.Point) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{ID: id, Position: pos})
	g.adjacency = append(g.adjacency, nil)
	g.liveNodes++
	return id
}

// AddEdge appends a new edge between from and to with the given
// geometry, validating the endpoint-coincidence and minimum-length
// invariants from spec.md §3. geometry's first/last points must equal
// the from/to nodes' positions bit-exactly.
func (g *Graph) AddEdge(from, to NodeID, geometry geom.Polyline, sourcePolygonID string) (EdgeID, error) {
	if !g.nodeLive(from) || !g.nodeLive(to) {
		return 0, ErrNodeNotFound
	}
	if len(geometry) < 2 {
		return 0, ErrDegenerateGeometry
	}
	if !geom.Equal(geometry[0], g.nodes[from].Position) || !geom.Equal(geometry[len(geometry)-1], g.nodes[to].Position) {
		return 0, ErrEndpointMismatch
	}
	length := geometry.Length()
	if length <= 0 {
		return 0, ErrDegenerateGeometry
	}

	id := EdgeID(len(g.edges))
	e := Edge{
		ID:              id,
		From:            from,
		To:              to,
		Geometry:        geometry,
		Length:          length,
		SourcePolygonID: sourcePolygonID,
	}
	g.edges = append(g.edges, e)
	g.adjacency[from] = append(g.adjacency[from], id)
	if to != from {
		g.adjacency[to] = append(g.adjacency[to], id)
	}
	g.liveEdges++
	return id, nil
}

// RemoveEdge tombstones an edge. It does not touch node degree caches;
// callers must call Refresh after a batch of removals.
func (g *Graph) RemoveEdge(id EdgeID) error {
	if !g.edgeLive(id) {
		return ErrEdgeNotFound
	}
	g.edges[id].dead = true
	g.liveEdges--
	return nil
}

// RemoveNode tombstones a node and every edge incident to it. Used by
// ComponentPruner and TerminalForkCleaner when dropping whole branches.
func (g *Graph) RemoveNode(id NodeID) error {
	if !g.nodeLive(id) {
		return ErrNodeNotFound
	}
	for _, eid := range g.adjacency[id] {
		if g.edgeLive(eid) {
			_ = g.RemoveEdge(eid)
		}
	}
	g.nodes[id].dead = true
	g.liveNodes--
	return nil
}

// Node returns the node for id.
func (g *Graph) Node(id NodeID) (Node, error) {
	if !g.nodeLive(id) {
		return Node{}, ErrNodeNotFound
	}
	return g.nodes[id], nil
}

// Edge returns the edge for id.
func (g *Graph) Edge(id EdgeID) (Edge, error) {
	if !g.edgeLive(id) {
		return Edge{}, ErrEdgeNotFound
	}
	return g.edges[id], nil
}

// Nodes returns every live node, in handle order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, g.liveNodes)
	for _, n := range g.nodes {
		if !n.dead {
			out = append(out, n)
		}
	}
	return out
}

// Edges returns every live edge, in handle order (the canonical,
// deterministic iteration order every stage relies on for spec.md §8's
// pipeline-determinism property).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.liveEdges)
	for _, e := range g.edges {
		if !e.dead {
			out = append(out, e)
		}
	}
	return out
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int { return g.liveNodes }

// EdgeCount returns the number of live edges.
func (g *Graph) EdgeCount() int { return g.liveEdges }

// Incident returns the live edges touching node id.
func (g *Graph) Incident(id NodeID) []Edge {
	if !g.nodeLive(id) {
		return nil
	}
	out := make([]Edge, 0, len(g.adjacency[id]))
	for _, eid := range g.adjacency[id] {
		if g.edgeLive(eid) {
			out = append(out, g.edges[eid])
		}
	}
	return out
}

func (g *Graph) nodeLive(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes) && !g.nodes[id].dead
}

func (g *Graph) edgeLive(id EdgeID) bool {
	return id >= 0 && int(id) < len(g.edges) && !g.edges[id].dead
}

// Refresh rebuilds the adjacency lists from the current live-edge set,
// dropping removed edges, and recomputes every live node's Degree
// cache. Every stage calls this once after its mutations, before
// handing the graph to the next stage.
func (g *Graph) Refresh() {
	for i := range g.adjacency {
		g.adjacency[i] = g.adjacency[i][:0]
	}
	for _, e := range g.edges {
		if e.dead {
			continue
		}
		g.adjacency[e.From] = append(g.adjacency[e.From], e.ID)
		if e.To != e.From {
			g.adjacency[e.To] = append(g.adjacency[e.To], e.ID)
		}
	}
	for i := range g.nodes {
		if g.nodes[i].dead {
			g.nodes[i].Degree = 0
			continue
		}
		deg := 0
		for _, eid := range g.adjacency[i] {
			if g.edgeLive(eid) {
				deg++
			}
		}
		g.nodes[i].Degree = deg
	}
}
