package planarize

import (
	"context"
	"sort"

	"github.com/katalvlaran/centerline/geom"
	"github.com/katalvlaran/centerline/graph"
	"github.com/katalvlaran/centerline/pipeline"
)

// Planarizer implements pipeline.Stage for spec.md §4.3.
type Planarizer struct{}

// Kind implements pipeline.Stage.
func (Planarizer) Kind() pipeline.StageKind { return pipeline.KindPlanarize }

// segRef identifies one segment of one edge's polyline, used as the
// payload in the candidate-pair spatial index.
type segRef struct {
	edgeID graph.EdgeID
	segIdx int
}

// Run implements pipeline.Stage.
func (Planarizer) Run(_ context.Context, pc *pipeline.Context) (*graph.Graph, error) {
	g := pc.Graph
	snapTol := pc.Config.SnapTolerance

	edges := g.Edges()
	ix := geom.NewIndex()
	for _, e := range edges {
		for i := 0; i+1 < len(e.Geometry); i++ {
			ix.Insert(geom.Segment{e.Geometry[i], e.Geometry[i+1]}, segRef{edgeID: e.ID, segIdx: i})
		}
	}

	// splits[edgeID] collects every intersection point found along that
	// edge's own polyline, to be applied after the full scan so the
	// scan itself sees a stable edge set.
	splits := make(map[graph.EdgeID][]geom.Point)

	seenPairs := make(map[[2]graph.EdgeID]map[geom.Point]bool)
	for _, e := range edges {
		for i := 0; i+1 < len(e.Geometry); i++ {
			segA := geom.Segment{e.Geometry[i], e.Geometry[i+1]}
			bound := segBounds(segA)
			cands := ix.QueryNear(midpoint(segA), bound)
			for _, c := range cands {
				ref, ok := c.(segRef)
				if !ok || ref.edgeID == e.ID {
					continue
				}
				other, err := g.Edge(ref.edgeID)
				if err != nil || ref.segIdx+1 >= len(other.Geometry) {
					continue
				}
				segB := geom.Segment{other.Geometry[ref.segIdx], other.Geometry[ref.segIdx+1]}
				p, ok := geom.SegmentIntersect(segA, segB)
				if !ok {
					continue
				}
				if coincidesWithEndpoint(g, e, p, snapTol) && coincidesWithEndpoint(g, other, p, snapTol) {
					continue
				}
				key := pairKey(e.ID, ref.edgeID)
				if seenPairs[key] == nil {
					seenPairs[key] = make(map[geom.Point]bool)
				}
				if seenPairs[key][p] {
					continue
				}
				seenPairs[key][p] = true
				splits[e.ID] = append(splits[e.ID], p)
				splits[ref.edgeID] = append(splits[ref.edgeID], p)
			}
		}
	}

	if len(splits) == 0 {
		return g, nil
	}

	// intersectionNodes unifies split points within snap_tolerance into
	// one shared node, so two crossing edges land on the same node.
	var nodePositions []geom.Point
	var nodeIDs []graph.NodeID
	nodeFor := func(p geom.Point) graph.NodeID {
		for i, q := range nodePositions {
			if geom.Near(p, q, snapTol) {
				return nodeIDs[i]
			}
		}
		id := g.AddNode(p)
		nodePositions = append(nodePositions, p)
		nodeIDs = append(nodeIDs, id)
		return id
	}

	// Stable processing order for determinism (spec.md §8 property 6).
	var edgeIDs []graph.EdgeID
	for id := range splits {
		edgeIDs = append(edgeIDs, id)
	}
	sort.Slice(edgeIDs, func(i, j int) bool { return edgeIDs[i] < edgeIDs[j] })

	for _, eid := range edgeIDs {
		e, err := g.Edge(eid)
		if err != nil {
			continue
		}
		pts := splits[eid]
		type cut struct {
			t float64
			p geom.Point
		}
		cuts := make([]cut, 0, len(pts))
		for _, p := range pts {
			cuts = append(cuts, cut{t: geom.ParamAlongPolyline(e.Geometry, p), p: p})
		}
		sort.Slice(cuts, func(i, j int) bool { return cuts[i].t < cuts[j].t })

		remaining := e.Geometry
		offset := 0.0
		fromNode := e.From
		var segments []geom.Polyline
		var boundaryNodes []graph.NodeID
		boundaryNodes = append(boundaryNodes, fromNode)

		for _, c := range cuts {
			localT := c.t - offset
			left, right, ok := geom.SplitPolylineAtLength(remaining, localT)
			if !ok {
				continue
			}
			segments = append(segments, left)
			remaining = right
			offset = c.t
			mid := nodeFor(c.p)
			boundaryNodes = append(boundaryNodes, mid)
		}
		segments = append(segments, remaining)
		boundaryNodes = append(boundaryNodes, e.To)

		if err := g.RemoveEdge(eid); err != nil {
			continue
		}
		for i, seg := range segments {
			if seg.Length() <= 0 {
				continue
			}
			from := boundaryNodes[i]
			to := boundaryNodes[i+1]
			if from == to {
				continue
			}
			_, _ = g.AddEdge(from, to, seg, e.SourcePolygonID)
		}
	}

	g.Refresh()
	return g, nil
}

func coincidesWithEndpoint(g *graph.Graph, e graph.Edge, p geom.Point, tol float64) bool {
	fromNode, errFrom := g.Node(e.From)
	toNode, errTo := g.Node(e.To)
	if errFrom == nil && geom.Near(p, fromNode.Position, tol) {
		return true
	}
	if errTo == nil && geom.Near(p, toNode.Position, tol) {
		return true
	}
	return false
}

func midpoint(s geom.Segment) geom.Point {
	return geom.Point{(s[0][0] + s[1][0]) / 2, (s[0][1] + s[1][1]) / 2}
}

// segBounds returns a query radius generous enough to catch
// intersections anywhere along s from its midpoint.
func segBounds(s geom.Segment) float64 {
	return s.Length()/2 + 1e-6
}

func pairKey(a, b graph.EdgeID) [2]graph.EdgeID {
	if a < b {
		return [2]graph.EdgeID{a, b}
	}
	return [2]graph.EdgeID{b, a}
}
