package forkclean_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/centerline/config"
	"github.com/katalvlaran/centerline/forkclean"
	"github.com/katalvlaran/centerline/geom"
	"github.com/katalvlaran/centerline/graph"
	"github.com/katalvlaran/centerline/logging"
	"github.com/katalvlaran/centerline/pipeline"
)

type ForkCleanSuite struct {
	suite.Suite
}

func TestForkCleanSuite(t *testing.T) {
	suite.Run(t, new(ForkCleanSuite))
}

func (s *ForkCleanSuite) TestSingleBendChainIsDeleted() {
	g := graph.New()
	fork := g.AddNode(geom.Point{0, 0})
	interior := g.AddNode(geom.Point{1, 0})
	leaf := g.AddNode(geom.Point{1, 1})
	otherA := g.AddNode(geom.Point{-10, 0})
	otherB := g.AddNode(geom.Point{0, -10})

	_, _ = g.AddEdge(fork, otherA, geom.Polyline{{0, 0}, {-10, 0}}, "")
	_, _ = g.AddEdge(fork, otherB, geom.Polyline{{0, 0}, {0, -10}}, "")
	_, _ = g.AddEdge(fork, interior, geom.Polyline{{0, 0}, {1, 0}}, "")
	_, _ = g.AddEdge(interior, leaf, geom.Polyline{{1, 0}, {1, 1}}, "")
	g.Refresh()

	pc := &pipeline.Context{Graph: g, Config: config.Default(), Logger: logging.Default()}
	out, err := forkclean.Cleaner{}.Run(context.Background(), pc)
	require.NoError(s.T(), err)
	require.Equal(s.T(), pipeline.KindForkClean, forkclean.Cleaner{}.Kind())

	_, err = out.Node(leaf)
	require.ErrorIs(s.T(), err, graph.ErrNodeNotFound)
	_, err = out.Node(interior)
	require.ErrorIs(s.T(), err, graph.ErrNodeNotFound)
	require.Equal(s.T(), 3, out.NodeCount())
	require.Equal(s.T(), 2, out.EdgeCount())
}

func (s *ForkCleanSuite) TestBoundaryHuggingChainWithContinuingBranchesIsDeleted() {
	square := geom.Polygon{
		ID:    "p1",
		Rings: []geom.Ring{{{0, 0}, {100, 0}, {100, 100}, {0, 100}, {0, 0}}},
	}
	g := graph.New()
	leaf := g.AddNode(geom.Point{0.1, 50})
	interior1 := g.AddNode(geom.Point{0.1, 52})
	interior2 := g.AddNode(geom.Point{0.1, 54})
	fork := g.AddNode(geom.Point{0.1, 56})
	otherA := g.AddNode(geom.Point{20, 56})
	otherB := g.AddNode(geom.Point{0.1, 90})

	_, _ = g.AddEdge(leaf, interior1, geom.Polyline{{0.1, 50}, {0.1, 52}}, "p1")
	_, _ = g.AddEdge(interior1, interior2, geom.Polyline{{0.1, 52}, {0.1, 54}}, "p1")
	_, _ = g.AddEdge(interior2, fork, geom.Polyline{{0.1, 54}, {0.1, 56}}, "p1")
	_, _ = g.AddEdge(fork, otherA, geom.Polyline{{0.1, 56}, {20, 56}}, "p1")
	_, _ = g.AddEdge(fork, otherB, geom.Polyline{{0.1, 56}, {0.1, 90}}, "p1")
	g.Refresh()

	pc := &pipeline.Context{Graph: g, Config: config.Default(), Logger: logging.Default(), Polygons: []geom.Polygon{square}}
	out, err := forkclean.Cleaner{}.Run(context.Background(), pc)
	require.NoError(s.T(), err)

	_, err = out.Node(leaf)
	require.ErrorIs(s.T(), err, graph.ErrNodeNotFound)
	_, err = out.Node(interior1)
	require.ErrorIs(s.T(), err, graph.ErrNodeNotFound)
	_, err = out.Node(interior2)
	require.ErrorIs(s.T(), err, graph.ErrNodeNotFound)
	require.Equal(s.T(), 3, out.NodeCount())
	require.Equal(s.T(), 2, out.EdgeCount())
}

func (s *ForkCleanSuite) TestInteriorChainFarFromBoundaryIsKept() {
	square := geom.Polygon{
		ID:    "p1",
		Rings: []geom.Ring{{{0, 0}, {100, 0}, {100, 100}, {0, 100}, {0, 0}}},
	}
	g := graph.New()
	leaf := g.AddNode(geom.Point{50, 50})
	interior1 := g.AddNode(geom.Point{50, 52})
	interior2 := g.AddNode(geom.Point{50, 54})
	fork := g.AddNode(geom.Point{50, 56})
	otherA := g.AddNode(geom.Point{70, 56})
	otherB := g.AddNode(geom.Point{50, 90})

	_, _ = g.AddEdge(leaf, interior1, geom.Polyline{{50, 50}, {50, 52}}, "p1")
	_, _ = g.AddEdge(interior1, interior2, geom.Polyline{{50, 52}, {50, 54}}, "p1")
	_, _ = g.AddEdge(interior2, fork, geom.Polyline{{50, 54}, {50, 56}}, "p1")
	_, _ = g.AddEdge(fork, otherA, geom.Polyline{{50, 56}, {70, 56}}, "p1")
	_, _ = g.AddEdge(fork, otherB, geom.Polyline{{50, 56}, {50, 90}}, "p1")
	g.Refresh()

	pc := &pipeline.Context{Graph: g, Config: config.Default(), Logger: logging.Default(), Polygons: []geom.Polygon{square}}
	out, err := forkclean.Cleaner{}.Run(context.Background(), pc)
	require.NoError(s.T(), err)

	_, err = out.Node(leaf)
	require.NoError(s.T(), err, "far from any boundary and not a single qualifying bend, the chain survives")
	require.Equal(s.T(), 6, out.NodeCount())
}
