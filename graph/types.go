// Package graph — types.go defines NodeID, EdgeID, Node, Edge and the
// sentinel errors every mutation method returns.
package graph

import (
	"errors"

	"github.com/katalvlaran/centerline/geom"
)

// Sentinel errors for graph operations. Callers branch with errors.Is,
// following the teacher's core/builder error discipline.
var (
	// ErrNodeNotFound indicates a NodeID does not exist (or was removed).
	ErrNodeNotFound = errors.New("graph: node not found")
	// ErrEdgeNotFound indicates an EdgeID does not exist (or was removed).
	ErrEdgeNotFound = errors.New("graph: edge not found")
	// ErrDegenerateGeometry indicates an edge's polyline has fewer than
	// two points or zero length, violating spec.md §3's minimum-length
	// invariant.
	ErrDegenerateGeometry = errors.New("graph: degenerate edge geometry")
	// ErrEndpointMismatch indicates an edge's polyline endpoints do not
	// coincide with its declared node positions (spec.md §3's
	// "endpoint coincidence" invariant).
	ErrEndpointMismatch = errors.New("graph: polyline endpoints do not match node positions")
)

// NodeID is a stable integer handle into Graph's node arena.
type NodeID int32

// EdgeID is a stable integer handle into Graph's edge arena.
type EdgeID int32

// Node is a point participating as one or more edge endpoints.
// Degree is a cache recomputed by Graph.Refresh after any batch of
// mutations and is never the source of truth for topology; Radius is
// set through Graph.SetNodeRadius and Refresh leaves it unchanged.
type Node struct {
	ID       NodeID
	Position geom.Point
	// Radius is the distance from Position to the nearest polygon
	// boundary point, computed at skeleton time (spec.md §3).
	Radius float64
	// Degree is the cached count of incident, live edges.
	Degree int
	dead   bool
}

// Edge is an undirected connection between two nodes (possibly the
// same node for a loop). Geometry's endpoints must equal the From/To
// nodes' positions (bit-exact) per spec.md §3.
type Edge struct {
	ID       EdgeID
	From, To NodeID
	Geometry geom.Polyline
	// Length is the Euclidean arc length of Geometry.
	Length float64
	// MinRadius/MeanRadius are boundary-radius statistics sampled along
	// Geometry (used by RatioPruner and diagnostics).
	MinRadius, MeanRadius float64
	// SourcePolygonID identifies the input polygon this edge originated
	// from (carried through every stage for CenterlineSink.Write).
	SourcePolygonID string
	dead            bool
}

// OtherEnd returns the node at the opposite end of the edge from n.
// If n is neither endpoint, OtherEnd returns n unchanged (callers that
// need strict validation should compare against e.From/e.To directly).
func (e Edge) OtherEnd(n NodeID) NodeID {
	if e.From == n {
		return e.To
	}
	if e.To == n {
		return e.From
	}
	return n
}

// IsLoop reports whether the edge's two endpoints are the same node.
func (e Edge) IsLoop() bool {
	return e.From == e.To
}
