package prune_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/centerline/config"
	"github.com/katalvlaran/centerline/geom"
	"github.com/katalvlaran/centerline/graph"
	"github.com/katalvlaran/centerline/logging"
	"github.com/katalvlaran/centerline/pipeline"
	"github.com/katalvlaran/centerline/prune"
)

// farFromBoundary is a large square far from every test fixture's
// coordinates, so BoundaryNearPruner never fires unless a test puts a
// leaf deliberately close to it.
var farFromBoundary = geom.Polygon{
	ID:    "poly-1",
	Rings: []geom.Ring{{{-1000, -1000}, {1000, -1000}, {1000, 1000}, {-1000, 1000}, {-1000, -1000}}},
}

func newContext(poly geom.Polygon, g *graph.Graph) *pipeline.Context {
	return &pipeline.Context{
		Graph:   g,
		Polygon: poly,
		Config:  config.Default(),
		Logger:  logging.Default(),
	}
}

type PruneSuite struct {
	suite.Suite
}

func TestPruneSuite(t *testing.T) {
	suite.Run(t, new(PruneSuite))
}

func (s *PruneSuite) TestRatioPrunerRemovesLowRatioLeaf() {
	g := graph.New()
	hub := g.AddNode(geom.Point{0, 0})
	a := g.AddNode(geom.Point{1, 0})
	b := g.AddNode(geom.Point{-1, 0})
	leaf := g.AddNode(geom.Point{0, 1})
	_, _ = g.AddEdge(hub, a, geom.Polyline{{0, 0}, {1, 0}}, "")
	_, _ = g.AddEdge(hub, b, geom.Polyline{{0, 0}, {-1, 0}}, "")
	stubID, _ := g.AddEdge(hub, leaf, geom.Polyline{{0, 0}, {0, 1}}, "")
	g.Refresh()

	// Leaf radius 2.0, stub length 1.0: ratio 0.5 < threshold 1.2.
	require.NoError(s.T(), g.SetNodeRadius(leaf, 2.0))
	require.NoError(s.T(), g.SetNodeRadius(hub, 2.0))

	pc := newContext(farFromBoundary, g)
	stats := prune.RatioPruner{}.Prune(g, pc)
	require.Equal(s.T(), 1, stats.EdgesRemoved)

	_, err := g.Edge(stubID)
	require.ErrorIs(s.T(), err, graph.ErrEdgeNotFound)
}

func (s *PruneSuite) TestRatioPrunerKeepsHighRatioLeaf() {
	g := graph.New()
	hub := g.AddNode(geom.Point{0, 0})
	a := g.AddNode(geom.Point{1, 0})
	leaf := g.AddNode(geom.Point{0, 10})
	_, _ = g.AddEdge(hub, a, geom.Polyline{{0, 0}, {1, 0}}, "")
	_, _ = g.AddEdge(hub, leaf, geom.Polyline{{0, 0}, {0, 10}}, "")
	g.Refresh()

	require.NoError(s.T(), g.SetNodeRadius(leaf, 1.0))
	require.NoError(s.T(), g.SetNodeRadius(hub, 1.0))

	pc := newContext(farFromBoundary, g)
	stats := prune.RatioPruner{}.Prune(g, pc)
	require.Equal(s.T(), 0, stats.EdgesRemoved)
	require.Equal(s.T(), 2, g.EdgeCount())
}

func (s *PruneSuite) TestBoundaryNearPrunerRemovesEdgeEntirelyNearBoundary() {
	square := geom.Polygon{
		ID:    "poly-1",
		Rings: []geom.Ring{{{0, 0}, {100, 0}, {100, 100}, {0, 100}, {0, 0}}},
	}
	g := graph.New()
	// hub is 0.2m from the y=100 edge, leaf is 0.05m from it: every
	// point of the hub-leaf polyline is within the default 0.3m band.
	hub := g.AddNode(geom.Point{50, 99.8})
	leaf := g.AddNode(geom.Point{50, 99.95})
	// a sits far from any boundary, so the hub-a edge is not removed.
	a := g.AddNode(geom.Point{20, 20})
	_, _ = g.AddEdge(hub, a, geom.Polyline{{50, 99.8}, {20, 20}}, "")
	edgeID, _ := g.AddEdge(hub, leaf, geom.Polyline{{50, 99.8}, {50, 99.95}}, "")
	g.Refresh()

	pc := newContext(square, g)
	stats := prune.BoundaryNearPruner{}.Prune(g, pc)
	require.Equal(s.T(), 1, stats.EdgesRemoved)

	_, err := g.Edge(edgeID)
	require.ErrorIs(s.T(), err, graph.ErrEdgeNotFound)
}

func (s *PruneSuite) TestBoundaryNearPrunerKeepsEdgeSpanningFromInteriorToNearBoundary() {
	square := geom.Polygon{
		ID:    "poly-1",
		Rings: []geom.Ring{{{0, 0}, {100, 0}, {100, 100}, {0, 100}, {0, 0}}},
	}
	g := graph.New()
	// hub is 50m from every boundary; only the leaf end is close to
	// the boundary, so the edge's entire polyline is not within band.
	hub := g.AddNode(geom.Point{50, 50})
	a := g.AddNode(geom.Point{60, 50})
	leaf := g.AddNode(geom.Point{50, 99.9})
	_, _ = g.AddEdge(hub, a, geom.Polyline{{50, 50}, {60, 50}}, "")
	edgeID, _ := g.AddEdge(hub, leaf, geom.Polyline{{50, 50}, {50, 99.9}}, "")
	g.Refresh()

	pc := newContext(square, g)
	stats := prune.BoundaryNearPruner{}.Prune(g, pc)
	require.Equal(s.T(), 0, stats.EdgesRemoved)

	_, err := g.Edge(edgeID)
	require.NoError(s.T(), err)
}

func (s *PruneSuite) TestComponentPrunerRemovesShortIsolatedComponent() {
	g := graph.New()
	a := g.AddNode(geom.Point{0, 0})
	b := g.AddNode(geom.Point{1, 0})
	_, _ = g.AddEdge(a, b, geom.Polyline{{0, 0}, {1, 0}}, "")

	c := g.AddNode(geom.Point{500, 500})
	d := g.AddNode(geom.Point{550, 500})
	_, _ = g.AddEdge(c, d, geom.Polyline{{500, 500}, {550, 500}}, "")
	g.Refresh()

	pc := newContext(farFromBoundary, g)
	stats := prune.ComponentPruner{}.Prune(g, pc)
	require.Equal(s.T(), 1, stats.ComponentsRemoved)
	require.Equal(s.T(), 2, g.NodeCount())
}

func (s *PruneSuite) TestSpurPrunerRemovesShortStub() {
	g := graph.New()
	hub := g.AddNode(geom.Point{0, 0})
	a := g.AddNode(geom.Point{10, 0})
	leaf := g.AddNode(geom.Point{0, 1})
	_, _ = g.AddEdge(hub, a, geom.Polyline{{0, 0}, {10, 0}}, "")
	stubID, _ := g.AddEdge(hub, leaf, geom.Polyline{{0, 0}, {0, 1}}, "")
	g.Refresh()

	pc := newContext(farFromBoundary, g)
	stats := prune.SpurPruner{}.Prune(g, pc)
	require.Equal(s.T(), 1, stats.EdgesRemoved)

	_, err := g.Edge(stubID)
	require.ErrorIs(s.T(), err, graph.ErrEdgeNotFound)
}

func (s *PruneSuite) TestChainRunsPrunersInOrderAndIsIdempotent() {
	g := graph.New()
	hub := g.AddNode(geom.Point{0, 0})
	a := g.AddNode(geom.Point{10, 0})
	leaf := g.AddNode(geom.Point{0, 1})
	_, _ = g.AddEdge(hub, a, geom.Polyline{{0, 0}, {10, 0}}, "")
	_, _ = g.AddEdge(hub, leaf, geom.Polyline{{0, 0}, {0, 1}}, "")
	g.Refresh()

	pc := newContext(farFromBoundary, g)
	chain := prune.DefaultChain()
	require.Equal(s.T(), pipeline.KindPrune, chain.Kind())

	out, err := chain.Run(context.Background(), pc)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, out.EdgeCount())

	// idempotent on edges: a second run removes no further edge.
	out2, err := chain.Run(context.Background(), pc)
	require.NoError(s.T(), err)
	require.Equal(s.T(), out.EdgeCount(), out2.EdgeCount())
}
