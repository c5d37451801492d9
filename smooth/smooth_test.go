package smooth_test

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
	"github.com/katalvlaran/centerline/smooth"
)

type SmoothSuite struct {
	suite.Suite
}

func TestSmoothSuite(t *testing.T) {
	suite.Run(t, new(SmoothSuite))
}

func newContext(g *graph.Graph) *pipeline.Context {
	return &pipeline.Context{Graph: g, Config: config.Default(), Logger: logging.Default()}
}

func (s *SmoothSuite) TestStraightensBendNearJunction() {
	g := graph.New()
	hub := g.AddNode(geom.Point{0, 0})
	branchA := g.AddNode(geom.Point{0, 5})
	branchB := g.AddNode(geom.Point{0, -5})
	far := g.AddNode(geom.Point{2, 0})

	_, _ = g.AddEdge(hub, branchA, geom.Polyline{{0, 0}, {0, 5}}, "")
	_, _ = g.AddEdge(hub, branchB, geom.Polyline{{0, 0}, {0, -5}}, "")
	mainID, _ := g.AddEdge(hub, far, geom.Polyline{{0, 0}, {1, 0.1}, {2, 0}}, "")
	g.Refresh()
	require.Equal(s.T(), 3, mustDegree(s, g, hub))

	pc := newContext(g)
	cfg := pc.Config
	cfg.SmoothingWindow = 3
	cfg.SmoothingTolerance = 0.2

	out, err := smooth.Smoother{}.Run(context.Background(), pc)
	require.NoError(s.T(), err)
	require.Equal(s.T(), pipeline.KindSmooth, smooth.Smoother{}.Kind())

	_, err = out.Edge(mainID)
	require.ErrorIs(s.T(), err, graph.ErrEdgeNotFound, "straightening replaces the edge, changing its ID")

	edges := out.Edges()
	require.Len(s.T(), edges, 3)
	for _, e := range edges {
		if e.From == hub && e.To == far || e.To == hub && e.From == far {
			require.Equal(s.T(), geom.Polyline{{0, 0}, {2, 0}}, e.Geometry)
		}
	}
}

func (s *SmoothSuite) TestLeavesDegreeTwoJunctionsUntouched() {
	g := graph.New()
	a := g.AddNode(geom.Point{0, 0})
	b := g.AddNode(geom.Point{1, 0.1})
	c := g.AddNode(geom.Point{2, 0})
	id, _ := g.AddEdge(a, b, geom.Polyline{{0, 0}, {1, 0.1}}, "")
	_, _ = g.AddEdge(b, c, geom.Polyline{{1, 0.1}, {2, 0}}, "")
	g.Refresh()

	pc := newContext(g)
	out, err := smooth.Smoother{}.Run(context.Background(), pc)
	require.NoError(s.T(), err)

	e, err := out.Edge(id)
	require.NoError(s.T(), err)
	require.Equal(s.T(), geom.Polyline{{0, 0}, {1, 0.1}}, e.Geometry)
}

func mustDegree(s *SmoothSuite, g *graph.Graph, id graph.NodeID) int {
	n, err := g.Node(id)
	require.NoError(s.T(), err)
	return n.Degree
}
