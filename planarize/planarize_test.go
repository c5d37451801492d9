package planarize_test

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
	"github.com/katalvlaran/centerline/planarize"
)

type PlanarizeSuite struct {
	suite.Suite
}

func TestPlanarizeSuite(t *testing.T) {
	suite.Run(t, new(PlanarizeSuite))
}

func (s *PlanarizeSuite) TestCrossingSegmentsAreSplitAtSharedNode() {
	g := graph.New()
	a := g.AddNode(geom.Point{0, 0})
	b := g.AddNode(geom.Point{10, 10})
	c := g.AddNode(geom.Point{0, 10})
	d := g.AddNode(geom.Point{10, 0})
	_, _ = g.AddEdge(a, b, geom.Polyline{{0, 0}, {10, 10}}, "")
	_, _ = g.AddEdge(c, d, geom.Polyline{{0, 10}, {10, 0}}, "")
	g.Refresh()
	require.Equal(s.T(), 4, g.NodeCount())
	require.Equal(s.T(), 2, g.EdgeCount())

	pc := &pipeline.Context{Graph: g, Config: config.Default(), Logger: logging.Default()}
	out, err := planarize.Planarizer{}.Run(context.Background(), pc)
	require.NoError(s.T(), err)
	require.Equal(s.T(), pipeline.KindPlanarize, planarize.Planarizer{}.Kind())

	require.Equal(s.T(), 5, out.NodeCount())
	require.Equal(s.T(), 4, out.EdgeCount())

	var crossingNode graph.Node
	for _, n := range out.Nodes() {
		if n.ID != a && n.ID != b && n.ID != c && n.ID != d {
			crossingNode = n
		}
	}
	require.InDelta(s.T(), 5.0, crossingNode.Position[0], 1e-6)
	require.InDelta(s.T(), 5.0, crossingNode.Position[1], 1e-6)
	require.Equal(s.T(), 4, crossingNode.Degree)
}

func (s *PlanarizeSuite) TestNonCrossingEdgesAreUntouched() {
	g := graph.New()
	a := g.AddNode(geom.Point{0, 0})
	b := g.AddNode(geom.Point{10, 0})
	id, _ := g.AddEdge(a, b, geom.Polyline{{0, 0}, {10, 0}}, "")
	g.Refresh()

	pc := &pipeline.Context{Graph: g, Config: config.Default(), Logger: logging.Default()}
	out, err := planarize.Planarizer{}.Run(context.Background(), pc)
	require.NoError(s.T(), err)

	_, err = out.Edge(id)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, out.NodeCount())
	require.Equal(s.T(), 1, out.EdgeCount())
}
