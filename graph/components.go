package graph

// Component is one connected component: the node and edge handles that
// belong to it.
type Component struct {
	Nodes []NodeID
	Edges []EdgeID
}

// TotalLength returns the summed edge length of the component.
func (c Component) TotalLength(g *Graph) float64 {
	var total float64
	for _, eid := range c.Edges {
		if e, err := g.Edge(eid); err == nil {
			total += e.Length
		}
	}
	return total
}

// ConnectedComponents partitions the graph's live nodes/edges into
// connected components via BFS, adapted from the teacher's bfs/dfs
// traversal idiom (bfs/bfs.go) generalized from a single-source walk
// to a full partition. Iteration starts from the lowest NodeID not yet
// visited, giving deterministic component ordering for spec.md §8's
// pipeline-determinism property.
func ConnectedComponents(g *Graph) []Component {
	visited := make([]bool, len(g.nodes))
	var components []Component

	for start := range g.nodes {
		if g.nodes[start].dead || visited[start] {
			continue
		}
		var comp Component
		queue := []NodeID{NodeID(start)}
		visited[start] = true
		edgeSeen := make(map[EdgeID]bool)

		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			comp.Nodes = append(comp.Nodes, n)

			for _, eid := range g.adjacency[n] {
				if !g.edgeLive(eid) {
					continue
				}
				if !edgeSeen[eid] {
					edgeSeen[eid] = true
					comp.Edges = append(comp.Edges, eid)
				}
				e := g.edges[eid]
				other := e.OtherEnd(n)
				if !visited[other] {
					visited[other] = true
					queue = append(queue, other)
				}
			}
		}
		components = append(components, comp)
	}
	return components
}
