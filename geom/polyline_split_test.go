package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/centerline/geom"
)

type PolylineSplitSuite struct {
	suite.Suite
}

func TestPolylineSplitSuite(t *testing.T) {
	suite.Run(t, new(PolylineSplitSuite))
}

func (s *PolylineSplitSuite) TestParamAlongPolylineStraight() {
	pl := geom.Polyline{{0, 0}, {10, 0}}
	require.InDelta(s.T(), 4.0, geom.ParamAlongPolyline(pl, geom.Point{4, 0}), 1e-9)
}

func (s *PolylineSplitSuite) TestParamAlongPolylineMultiSegment() {
	pl := geom.Polyline{{0, 0}, {5, 0}, {5, 5}}
	require.InDelta(s.T(), 7.0, geom.ParamAlongPolyline(pl, geom.Point{5, 2}), 1e-9)
}

func (s *PolylineSplitSuite) TestSplitPolylineAtLengthMidSegment() {
	pl := geom.Polyline{{0, 0}, {10, 0}}
	left, right, ok := geom.SplitPolylineAtLength(pl, 4)
	require.True(s.T(), ok)
	require.Equal(s.T(), geom.Polyline{{0, 0}, {4, 0}}, left)
	require.Equal(s.T(), geom.Polyline{{4, 0}, {10, 0}}, right)
}

func (s *PolylineSplitSuite) TestSplitPolylineAtLengthOutOfRange() {
	pl := geom.Polyline{{0, 0}, {10, 0}}
	_, _, ok := geom.SplitPolylineAtLength(pl, 0)
	require.False(s.T(), ok)
	_, _, ok = geom.SplitPolylineAtLength(pl, 10)
	require.False(s.T(), ok)
	_, _, ok = geom.SplitPolylineAtLength(pl, 15)
	require.False(s.T(), ok)
}

func (s *PolylineSplitSuite) TestSplitPolylineAtLengthAcrossVertex() {
	pl := geom.Polyline{{0, 0}, {5, 0}, {5, 5}}
	left, right, ok := geom.SplitPolylineAtLength(pl, 7)
	require.True(s.T(), ok)
	require.Equal(s.T(), geom.Polyline{{0, 0}, {5, 0}, {5, 2}}, left)
	require.Equal(s.T(), geom.Polyline{{5, 2}, {5, 5}}, right)
}
