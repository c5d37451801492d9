package pipeline

import (
	"context"

	"github.com/katalvlaran/centerline/geom"
	"github.com/katalvlaran/centerline/graph"
)

// PolygonSource is the input boundary of spec.md §6: "PolygonSource.
// load() -> list of polygons with IDs and a coordinate reference
// system". CRS handling is the caller's responsibility; the core
// assumes a projected, meter-unit CRS (spec.md §6).
type PolygonSource interface {
	Load(ctx context.Context) ([]geom.Polygon, error)
}

// CenterlineSink is the output boundary of spec.md §6: each edge
// carries its polyline, length, and source polygon ID.
type CenterlineSink interface {
	Write(ctx context.Context, edges []graph.Edge) error
}

// SnapshotSink is invoked after Skeletonizer, Planarizer,
// TerminalForkCleaner ("Cleaned") and NetworkSimplifier ("Final") when
// Config.DebugExportIntermediate is set (spec.md §6).
type SnapshotSink interface {
	Write(ctx context.Context, stage string, g *graph.Graph) error
}

// CancelFunc is the cooperative cancellation predicate spec.md §5
// describes: the pipeline invokes it only between stages, never inside
// one. FromContext below adapts a context.Context to this shape; Driver
// builds its predicate from the run's context that way and accepts no
// other predicate.
type CancelFunc func() bool

// FromContext adapts a context.Context's cancellation into a CancelFunc.
func FromContext(ctx context.Context) CancelFunc {
	return func() bool {
		select {
		case <-ctx.Done():
			return true
		default:
			return false
		}
	}
}

// NopSnapshotSink discards every snapshot; the default when
// Config.DebugExportIntermediate is false.
type NopSnapshotSink struct{}

// Write implements SnapshotSink by doing nothing.
func (NopSnapshotSink) Write(context.Context, string, *graph.Graph) error { return nil }

// NopCenterlineSink discards output edges; useful in tests that only
// assert on the returned graph/report.
type NopCenterlineSink struct{}

// Write implements CenterlineSink by doing nothing.
func (NopCenterlineSink) Write(context.Context, []graph.Edge) error { return nil }
