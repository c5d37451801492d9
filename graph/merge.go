package graph

// Merge unions several independently built graphs (typically one per
// input polygon, per spec.md §5's polygon-batch parallelism) into one
// graph, renumbering handles so every NodeID/EdgeID stays unique. The
// inputs are not mutated.
//
// Merge performs no geometric deduplication: two fragments' nodes that
// happen to coincide stay distinct until Planarizer/IntersectionMerger
// run on the unioned result, exactly as spec.md §5 describes ("the
// final merged graph reflects the union of all polygon outputs").
func Merge(parts ...*Graph) *Graph {
	out := New()
	for _, part := range parts {
		if part == nil {
			continue
		}
		offset := NodeID(len(out.nodes))
		for _, n := range part.nodes {
			nn := out.AddNode(n.Position)
			out.nodes[nn].Radius = n.Radius
			if n.dead {
				out.nodes[nn].dead = true
				out.liveNodes--
			}
		}
		for _, e := range part.edges {
			if e.dead {
				continue
			}
			from := e.From + offset
			to := e.To + offset
			id, err := out.AddEdge(from, to, e.Geometry, e.SourcePolygonID)
			if err != nil {
				continue
			}
			out.edges[id].MinRadius = e.MinRadius
			out.edges[id].MeanRadius = e.MeanRadius
		}
	}
	out.Refresh()
	return out
}
