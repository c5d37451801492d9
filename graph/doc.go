// Package graph defines the planar geometric multigraph shared by every
// pipeline stage: Node, Edge and Graph (spec.md §3).
//
// Graph is an arena: nodes and edges live in dense, indexable slices
// and are referenced by stable integer handles (NodeID, EdgeID) rather
// than pointers or map keys, per spec.md §9's steer toward a compact
// arena for a systems-language port. Deletion tombstones a slot instead
// of compacting the arena, so a handle captured before a stage runs
// stays valid (or detectably dead) for the stage's duration. Stages
// edit the graph they are handed in place (removing and inserting
// edges) and return it; the driver stores the returned graph and does
// not copy it between stages.
//
// The package is adapted from the teacher's core.Graph: map-based
// adjacency and functional GraphOptions become fixed invariants (this
// is always an undirected multigraph; parallel edges and loops are
// never rejected), and Vertex.Metadata / Edge.Weight become the domain-specific
// Position/Radius and Geometry/Length/MinRadius/MeanRadius/
// SourcePolygonID fields spec.md §3 requires.
package graph
