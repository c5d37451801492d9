package merge_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/centerline/config"
	"github.com/katalvlaran/centerline/geom"
	"github.com/katalvlaran/centerline/graph"
	"github.com/katalvlaran/centerline/logging"
	"github.com/katalvlaran/centerline/merge"
	"github.com/katalvlaran/centerline/pipeline"
)

type MergeStageSuite struct {
	suite.Suite
}

func TestMergeStageSuite(t *testing.T) {
	suite.Run(t, new(MergeStageSuite))
}

func newContext(g *graph.Graph) *pipeline.Context {
	return &pipeline.Context{Graph: g, Config: config.Default(), Logger: logging.Default()}
}

// Two degree-3 intersections joined by a sub-threshold edge collapse
// into a single node, with every external branch rewired.
func (s *MergeStageSuite) TestMergeCollapsesCloseHighDegreeIntersections() {
	g := graph.New()
	n1 := g.AddNode(geom.Point{0, 0})
	n2 := g.AddNode(geom.Point{1, 0})
	a := g.AddNode(geom.Point{-10, 0})
	b := g.AddNode(geom.Point{0, 10})
	c := g.AddNode(geom.Point{11, 0})
	d := g.AddNode(geom.Point{1, -10})

	_, _ = g.AddEdge(a, n1, geom.Polyline{{-10, 0}, {0, 0}}, "")
	_, _ = g.AddEdge(b, n1, geom.Polyline{{0, 10}, {0, 0}}, "")
	_, _ = g.AddEdge(n1, n2, geom.Polyline{{0, 0}, {1, 0}}, "")
	_, _ = g.AddEdge(n2, c, geom.Polyline{{1, 0}, {11, 0}}, "")
	_, _ = g.AddEdge(n2, d, geom.Polyline{{1, 0}, {1, -10}}, "")
	g.Refresh()

	require.Equal(s.T(), 3, mustNode(s, g, n1).Degree)
	require.Equal(s.T(), 3, mustNode(s, g, n2).Degree)

	pc := newContext(g)
	out, err := merge.Merger{}.Run(context.Background(), pc)
	require.NoError(s.T(), err)
	require.Equal(s.T(), pipeline.KindMerge, merge.Merger{}.Kind())

	// n1, n2 are gone; one new merged node plus the four branch leaves.
	require.Equal(s.T(), 5, out.NodeCount())
	require.Equal(s.T(), 4, out.EdgeCount())

	_, err = out.Node(n1)
	require.ErrorIs(s.T(), err, graph.ErrNodeNotFound)
	_, err = out.Node(n2)
	require.ErrorIs(s.T(), err, graph.ErrNodeNotFound)
}

// A sub-MinEdgeLength edge between two degree-2 nodes collapses even
// though neither endpoint qualifies for the degree>=3 pass.
func (s *MergeStageSuite) TestMergeCollapsesTinyLowDegreeEdge() {
	g := graph.New()
	left := g.AddNode(geom.Point{-10, 0})
	n1 := g.AddNode(geom.Point{0, 0})
	n2 := g.AddNode(geom.Point{0.01, 0})
	right := g.AddNode(geom.Point{10, 0})

	_, _ = g.AddEdge(left, n1, geom.Polyline{{-10, 0}, {0, 0}}, "")
	_, _ = g.AddEdge(n1, n2, geom.Polyline{{0, 0}, {0.01, 0}}, "")
	_, _ = g.AddEdge(n2, right, geom.Polyline{{0.01, 0}, {10, 0}}, "")
	g.Refresh()

	pc := newContext(g)
	out, err := merge.Merger{}.Run(context.Background(), pc)
	require.NoError(s.T(), err)

	require.Equal(s.T(), 3, out.NodeCount())
	require.Equal(s.T(), 2, out.EdgeCount())
}

func (s *MergeStageSuite) TestMergeNoOpWhenNothingQualifies() {
	g := graph.New()
	a := g.AddNode(geom.Point{0, 0})
	b := g.AddNode(geom.Point{100, 0})
	_, _ = g.AddEdge(a, b, geom.Polyline{{0, 0}, {100, 0}}, "")
	g.Refresh()

	pc := newContext(g)
	out, err := merge.Merger{}.Run(context.Background(), pc)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, out.NodeCount())
	require.Equal(s.T(), 1, out.EdgeCount())
}

func mustNode(s *MergeStageSuite, g *graph.Graph, id graph.NodeID) graph.Node {
	n, err := g.Node(id)
	require.NoError(s.T(), err)
	return n
}
