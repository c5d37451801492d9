package adapters

import (
	"context"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/centerline/geom"
	"github.com/katalvlaran/centerline/graph"
)

// GeoJSONPolygonSource reads a FeatureCollection of Polygon features
// from a file, using each feature's "id" property (falling back to its
// index) as the polygon ID.
type GeoJSONPolygonSource struct {
	Path string
}

// Load implements pipeline.PolygonSource.
func (s GeoJSONPolygonSource) Load(_ context.Context) ([]geom.Polygon, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("adapters: read %s: %w", s.Path, err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("adapters: parse %s: %w", s.Path, err)
	}

	polys := make([]geom.Polygon, 0, len(fc.Features))
	for i, f := range fc.Features {
		op, ok := f.Geometry.(orb.Polygon)
		if !ok {
			continue
		}
		id := fmt.Sprintf("%d", i)
		if v, ok := f.Properties["id"].(string); ok && v != "" {
			id = v
		}
		polys = append(polys, geom.FromOrb(id, op))
	}
	return polys, nil
}

// GeoJSONCenterlineSink writes the final edges as a FeatureCollection
// of LineString features, one per edge, tagged with length and
// source_polygon_id properties.
type GeoJSONCenterlineSink struct {
	Path string
}

// Write implements pipeline.CenterlineSink.
func (s GeoJSONCenterlineSink) Write(_ context.Context, edges []graph.Edge) error {
	fc := geojson.NewFeatureCollection()
	for _, e := range edges {
		ls := make(orb.LineString, len(e.Geometry))
		copy(ls, e.Geometry)
		f := geojson.NewFeature(ls)
		f.Properties["length"] = e.Length
		f.Properties["source_polygon_id"] = e.SourcePolygonID
		fc.Append(f)
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("adapters: marshal centerline output: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("adapters: write %s: %w", s.Path, err)
	}
	return nil
}
