// Package merge implements spec.md §4.4's IntersectionMerger: it finds
// clusters of near-coincident high-degree nodes (staggered junctions),
// collapses each into a single node at the degree-weighted centroid,
// and then collapses any resulting sub-min_edge_length edge. Cluster
// discovery uses a disjoint-set union-find, adapted from the teacher's
// Kruskal union-find idiom (prim_kruskal/kruskal.go) generalized from
// vertex-ID strings to graph.NodeID handles.
package merge
