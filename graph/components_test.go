package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/centerline/geom"
	"github.com/katalvlaran/centerline/graph"
)

type ComponentsSuite struct {
	suite.Suite
	g *graph.Graph
}

func TestComponentsSuite(t *testing.T) {
	suite.Run(t, new(ComponentsSuite))
}

func (s *ComponentsSuite) SetupTest() {
	s.g = graph.New()
}

func (s *ComponentsSuite) TestSingleComponent() {
	a := s.g.AddNode(geom.Point{0, 0})
	b := s.g.AddNode(geom.Point{1, 0})
	c := s.g.AddNode(geom.Point{2, 0})
	_, _ = s.g.AddEdge(a, b, geom.Polyline{{0, 0}, {1, 0}}, "")
	_, _ = s.g.AddEdge(b, c, geom.Polyline{{1, 0}, {2, 0}}, "")

	comps := graph.ConnectedComponents(s.g)
	require.Len(s.T(), comps, 1)
	require.Len(s.T(), comps[0].Nodes, 3)
	require.Len(s.T(), comps[0].Edges, 2)
}

func (s *ComponentsSuite) TestTwoDisjointComponents() {
	a := s.g.AddNode(geom.Point{0, 0})
	b := s.g.AddNode(geom.Point{1, 0})
	_, _ = s.g.AddEdge(a, b, geom.Polyline{{0, 0}, {1, 0}}, "")

	c := s.g.AddNode(geom.Point{10, 0})
	d := s.g.AddNode(geom.Point{11, 0})
	_, _ = s.g.AddEdge(c, d, geom.Polyline{{10, 0}, {11, 0}}, "")

	comps := graph.ConnectedComponents(s.g)
	require.Len(s.T(), comps, 2)
}

func (s *ComponentsSuite) TestIsolatedNodeIsItsOwnComponent() {
	_ = s.g.AddNode(geom.Point{0, 0})
	comps := graph.ConnectedComponents(s.g)
	require.Len(s.T(), comps, 1)
	require.Empty(s.T(), comps[0].Edges)
}

func (s *ComponentsSuite) TestTotalLength() {
	a := s.g.AddNode(geom.Point{0, 0})
	b := s.g.AddNode(geom.Point{3, 4})
	c := s.g.AddNode(geom.Point{3, 4 + 6})
	_, _ = s.g.AddEdge(a, b, geom.Polyline{{0, 0}, {3, 4}}, "")
	_, _ = s.g.AddEdge(b, c, geom.Polyline{{3, 4}, {3, 10}}, "")

	comps := graph.ConnectedComponents(s.g)
	require.Len(s.T(), comps, 1)
	require.InDelta(s.T(), 11.0, comps[0].TotalLength(s.g), 1e-9)
}

func (s *ComponentsSuite) TestDeterministicOrderingByLowestNodeID() {
	a := s.g.AddNode(geom.Point{10, 0})
	b := s.g.AddNode(geom.Point{11, 0})
	_, _ = s.g.AddEdge(a, b, geom.Polyline{{10, 0}, {11, 0}}, "")
	c := s.g.AddNode(geom.Point{0, 0})
	d := s.g.AddNode(geom.Point{1, 0})
	_, _ = s.g.AddEdge(c, d, geom.Polyline{{0, 0}, {1, 0}}, "")

	comps := graph.ConnectedComponents(s.g)
	require.Len(s.T(), comps, 2)
	require.Equal(s.T(), a, comps[0].Nodes[0])
	require.Equal(s.T(), c, comps[1].Nodes[0])
}
