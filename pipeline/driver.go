package pipeline

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/centerline/config"
	"github.com/katalvlaran/centerline/geom"
	"github.com/katalvlaran/centerline/graph"
	"github.com/katalvlaran/centerline/logging"
)

// MetricsSink receives per-stage timing. metrics.Collector satisfies
// this without pipeline importing the metrics package (which itself
// imports pipeline for StageKind).
type MetricsSink interface {
	ObserveStage(kind StageKind, seconds float64)
}

// Driver runs the fixed stage list of spec.md §2 against a Context,
// checking cancellation only at stage boundaries (spec.md §5) and
// invoking SnapshotSink after the four named stages when
// Config.DebugExportIntermediate is set.
//
// PerPolygon holds the stages run once per input polygon in isolation
// (Skeletonizer, the Pruner chain) so spec.md §5's polygon-batch
// parallelism can fan them out; Union holds the stages run once on the
// merged graph (Planarizer onward). This split mirrors the teacher's
// tsp.SolveWithMatrix "Stage 1 - validation, Stage 2 - route by
// algorithm" staged-dispatch style, generalized to a full ordered list.
type Driver struct {
	PerPolygon []Stage
	Union      []Stage
	Snapshots  SnapshotSink
	Logger     *logging.Logger
	// Metrics, if set, receives each stage's wall-clock duration.
	Metrics MetricsSink

	// LastDiagnostics holds the terminal Context.Diagnostics value
	// (a *validate.Report, left untyped here so pipeline need not
	// import validate) from the most recent RunSingle/RunBatch call.
	// Callers that need it for reporting or metrics can read it right
	// after the call returns.
	LastDiagnostics interface{}
}

// NewDriver builds a Driver with NopSnapshotSink and logging.Default(),
// for callers that only need RunSingle/RunBatch with no debug export.
func NewDriver(perPolygon, union []Stage) *Driver {
	return &Driver{
		PerPolygon: perPolygon,
		Union:      union,
		Snapshots:  NopSnapshotSink{},
		Logger:     logging.Default(),
	}
}

// RunSingle runs PerPolygon then Union against one polygon, returning
// the final graph. It is a convenience for single-polygon callers and
// for tests.
func (d *Driver) RunSingle(ctx context.Context, poly geom.Polygon, cfg *config.Config) (*graph.Graph, error) {
	pc := &Context{Polygon: poly, Graph: graph.New(), Config: cfg, Logger: d.Logger.WithPolygon(poly.ID)}
	if err := d.runStages(ctx, pc, d.PerPolygon); err != nil {
		return nil, err
	}
	pc.Polygons = []geom.Polygon{poly}
	if err := d.runStages(ctx, pc, d.Union); err != nil {
		return nil, err
	}
	d.LastDiagnostics = pc.Diagnostics
	return pc.Graph, nil
}

// RunBatch runs PerPolygon over every polygon concurrently (bounded by
// a worker pool via golang.org/x/sync/errgroup, spec.md §5's polygon-
// batch parallelism), unions the resulting fragments, then runs Union
// sequentially on the merged graph. A NumericDegenerate failure for one
// polygon yields an empty fragment for that polygon and the batch
// continues (spec.md §7); any other error aborts the whole batch.
func (d *Driver) RunBatch(ctx context.Context, polygons []geom.Polygon, cfg *config.Config) (*graph.Graph, error) {
	fragments := make([]*graph.Graph, len(polygons))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxWorkers(len(polygons)))
	for i, poly := range polygons {
		i, poly := i, poly
		g.Go(func() error {
			pc := &Context{Polygon: poly, Graph: graph.New(), Config: cfg, Logger: d.Logger.WithPolygon(poly.ID)}
			if err := d.runStages(gctx, pc, d.PerPolygon); err != nil {
				if Recoverable(err) {
					pc.Logger.Warn("polygon skipped after numeric-degenerate failure", "error", err.Error())
					fragments[i] = graph.New()
					return nil
				}
				return fmt.Errorf("polygon %s: %w", poly.ID, err)
			}
			fragments[i] = pc.Graph
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := graph.Merge(fragments...)
	pc := &Context{Graph: merged, Polygons: polygons, Config: cfg, Logger: d.Logger}
	if err := d.runStages(ctx, pc, d.Union); err != nil {
		return nil, err
	}
	d.LastDiagnostics = pc.Diagnostics
	return pc.Graph, nil
}

func (d *Driver) runStages(ctx context.Context, pc *Context, stages []Stage) error {
	for _, stage := range stages {
		if FromContext(ctx)() {
			return fmt.Errorf("%s: %w", stage.Kind(), ErrCancelled)
		}
		start := time.Now()
		next, err := stage.Run(ctx, pc)
		if d.Metrics != nil {
			d.Metrics.ObserveStage(stage.Kind(), time.Since(start).Seconds())
		}
		if err != nil {
			return fmt.Errorf("%s: %w", stage.Kind(), err)
		}
		pc.Graph = next
		if pc.Config.DebugExportIntermediate && stage.Kind().Snapshotted() {
			if err := d.Snapshots.Write(ctx, stage.Kind().String(), pc.Graph.Snapshot()); err != nil {
				pc.Logger.Warn("snapshot write failed", "stage", stage.Kind().String(), "error", err.Error())
			}
		}
	}
	return nil
}

// maxWorkers bounds the polygon-batch worker pool: no more than n
// polygons' worth of concurrency is useful, and an unbounded pool risks
// exhausting memory on very large batches.
func maxWorkers(n int) int {
	const maxPoolSize = 8
	if n < 1 {
		return 1
	}
	if n > maxPoolSize {
		return maxPoolSize
	}
	return n
}
