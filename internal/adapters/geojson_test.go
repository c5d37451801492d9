package adapters_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/centerline/geom"
	"github.com/katalvlaran/centerline/graph"
	"github.com/katalvlaran/centerline/internal/adapters"
)

type GeoJSONSuite struct {
	suite.Suite
}

func TestGeoJSONSuite(t *testing.T) {
	suite.Run(t, new(GeoJSONSuite))
}

const samplePolygonFC = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"id": "block-1"},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[0,0],[10,0],[10,10],[0,10],[0,0]]]
      }
    },
    {
      "type": "Feature",
      "properties": {},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[20,20],[30,20],[30,30],[20,30],[20,20]]]
      }
    }
  ]
}`

func (s *GeoJSONSuite) TestLoadParsesIDFromPropertiesOrFallsBackToIndex() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "polys.geojson")
	require.NoError(s.T(), os.WriteFile(path, []byte(samplePolygonFC), 0o644))

	source := adapters.GeoJSONPolygonSource{Path: path}
	polys, err := source.Load(context.Background())
	require.NoError(s.T(), err)
	require.Len(s.T(), polys, 2)
	require.Equal(s.T(), "block-1", polys[0].ID)
	require.Equal(s.T(), "1", polys[1].ID)
}

func (s *GeoJSONSuite) TestLoadMissingFile() {
	source := adapters.GeoJSONPolygonSource{Path: filepath.Join(s.T().TempDir(), "missing.geojson")}
	_, err := source.Load(context.Background())
	require.Error(s.T(), err)
}

func (s *GeoJSONSuite) TestWriteProducesOneFeaturePerEdge() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "out.geojson")

	edges := []graph.Edge{
		{ID: 1, Geometry: geom.Polyline{{0, 0}, {1, 0}}, Length: 1, SourcePolygonID: "p1"},
		{ID: 2, Geometry: geom.Polyline{{1, 0}, {1, 1}}, Length: 1, SourcePolygonID: "p1"},
	}

	sink := adapters.GeoJSONCenterlineSink{Path: path}
	require.NoError(s.T(), sink.Write(context.Background(), edges))

	data, err := os.ReadFile(path)
	require.NoError(s.T(), err)
	require.Contains(s.T(), string(data), "source_polygon_id")
	require.Contains(s.T(), string(data), "LineString")
}
