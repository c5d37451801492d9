package merge

import (
	"context"
	"sort"

	"github.com/katalvlaran/centerline/geom"
	"github.com/katalvlaran/centerline/graph"
	"github.com/katalvlaran/centerline/pipeline"
)

// Merger implements pipeline.Stage for spec.md §4.4.
type Merger struct{}

// Kind implements pipeline.Stage.
func (Merger) Kind() pipeline.StageKind { return pipeline.KindMerge }

// Run implements pipeline.Stage.
func (Merger) Run(_ context.Context, pc *pipeline.Context) (*graph.Graph, error) {
	g := pc.Graph

	mergeClusters(g, func(e graph.Edge, from, to graph.Node) bool {
		return e.Length <= pc.Config.MergeThreshold && from.Degree >= 3 && to.Degree >= 3
	}, degreeWeightedCentroid)
	g.Refresh()

	mergeClusters(g, func(e graph.Edge, _, _ graph.Node) bool {
		return e.Length < pc.Config.MinEdgeLength
	}, unweightedCentroid)
	g.Refresh()

	return g, nil
}

// cluster is one disjoint-set group of nodes destined to collapse to a
// single node.
type cluster struct {
	root  graph.NodeID
	nodes []graph.NodeID
}

// mergeClusters finds connected components of the subgraph induced by
// edges satisfying qualifies (a disjoint-set union-find over
// candidate edges, adapted from the teacher's Kruskal union-find),
// then replaces every cluster of 2+ nodes with one node at
// centroidFn's position, reattaching external edges and deleting
// internal ones.
func mergeClusters(g *graph.Graph, qualifies func(e graph.Edge, from, to graph.Node) bool, centroidFn func(g *graph.Graph, members []graph.NodeID) geom.Point) {
	parent := make(map[graph.NodeID]graph.NodeID)
	var find func(graph.NodeID) graph.NodeID
	find = func(n graph.NodeID) graph.NodeID {
		p, ok := parent[n]
		if !ok {
			parent[n] = n
			return n
		}
		if p != n {
			parent[n] = find(p)
		}
		return parent[n]
	}
	union := func(a, b graph.NodeID) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	qualifyingEdges := make(map[graph.EdgeID]bool)
	for _, e := range g.Edges() {
		fromNode, errFrom := g.Node(e.From)
		toNode, errTo := g.Node(e.To)
		if errFrom != nil || errTo != nil || e.IsLoop() {
			continue
		}
		if qualifies(e, fromNode, toNode) {
			find(e.From)
			find(e.To)
			union(e.From, e.To)
			qualifyingEdges[e.ID] = true
		}
	}
	if len(qualifyingEdges) == 0 {
		return
	}

	groups := make(map[graph.NodeID][]graph.NodeID)
	for n := range parent {
		r := find(n)
		groups[r] = append(groups[r], n)
	}

	var clusters []cluster
	for r, members := range groups {
		if len(members) < 2 {
			continue
		}
		clusters = append(clusters, cluster{root: r, nodes: members})
	}
	if len(clusters) == 0 {
		return
	}

	// Tie-break: larger clusters first, then lower centroid x then y
	// (spec.md §4.4's determinism rule for overlapping clusters).
	centroids := make(map[graph.NodeID]geom.Point, len(clusters))
	for _, c := range clusters {
		centroids[c.root] = centroidFn(g, c.nodes)
	}
	sort.Slice(clusters, func(i, j int) bool {
		if len(clusters[i].nodes) != len(clusters[j].nodes) {
			return len(clusters[i].nodes) > len(clusters[j].nodes)
		}
		ci, cj := centroids[clusters[i].root], centroids[clusters[j].root]
		if ci[0] != cj[0] {
			return ci[0] < cj[0]
		}
		return ci[1] < cj[1]
	})

	for _, c := range clusters {
		collapseCluster(g, c.nodes, centroids[c.root])
	}
}

// collapseCluster replaces members with a single new node at centroid,
// rewriting every externally-incident edge's terminal coordinate and
// deleting every edge internal to the cluster.
func collapseCluster(g *graph.Graph, members []graph.NodeID, centroid geom.Point) {
	memberSet := make(map[graph.NodeID]bool, len(members))
	for _, m := range members {
		memberSet[m] = true
	}

	newID := g.AddNode(centroid)

	seenExternal := make(map[graph.EdgeID]bool)
	for _, m := range members {
		for _, e := range g.Incident(m) {
			if memberSet[e.From] && memberSet[e.To] {
				// Internal edge; deleted below once, regardless of which
				// member we are visiting.
				_ = g.RemoveEdge(e.ID)
				continue
			}
			if seenExternal[e.ID] {
				continue
			}
			seenExternal[e.ID] = true
			rewireExternalEdge(g, e, m, newID, centroid)
		}
	}

	for _, m := range members {
		_ = g.RemoveNode(m)
	}
}

// rewireExternalEdge replaces e's endpoint at oldNode with newNode,
// rewriting the corresponding Geometry terminal point to centroid.
func rewireExternalEdge(g *graph.Graph, e graph.Edge, oldNode, newNode graph.NodeID, centroid geom.Point) {
	_ = g.RemoveEdge(e.ID)

	geometry := append(geom.Polyline{}, e.Geometry...)
	from, to := e.From, e.To
	if from == oldNode {
		geometry[0] = centroid
		from = newNode
	}
	if to == oldNode {
		geometry[len(geometry)-1] = centroid
		to = newNode
	}
	if geometry.Length() <= 0 {
		return
	}
	_, _ = g.AddEdge(from, to, geometry, e.SourcePolygonID)
}

func degreeWeightedCentroid(g *graph.Graph, members []graph.NodeID) geom.Point {
	var sumX, sumY, sumW float64
	for _, id := range members {
		n, err := g.Node(id)
		if err != nil {
			continue
		}
		w := float64(n.Degree)
		if w <= 0 {
			w = 1
		}
		sumX += n.Position[0] * w
		sumY += n.Position[1] * w
		sumW += w
	}
	if sumW == 0 {
		return geom.Point{}
	}
	return geom.Point{sumX / sumW, sumY / sumW}
}

func unweightedCentroid(g *graph.Graph, members []graph.NodeID) geom.Point {
	var sumX, sumY float64
	n := 0
	for _, id := range members {
		node, err := g.Node(id)
		if err != nil {
			continue
		}
		sumX += node.Position[0]
		sumY += node.Position[1]
		n++
	}
	if n == 0 {
		return geom.Point{}
	}
	return geom.Point{sumX / float64(n), sumY / float64(n)}
}
