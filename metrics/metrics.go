package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/centerline/pipeline"
	"github.com/katalvlaran/centerline/validate"
)

const namespace = "centerline"

// Collector holds every Prometheus metric the pipeline emits.
type Collector struct {
	// StageDurationSeconds is labeled by stage (pipeline.StageKind.String()).
	StageDurationSeconds *prometheus.HistogramVec
	// EdgesPrunedTotal counts edges removed by each pruner.
	EdgesPrunedTotal *prometheus.CounterVec
	// PolygonsProcessedTotal counts polygons by outcome (ok, skipped, error).
	PolygonsProcessedTotal *prometheus.CounterVec

	ComponentCount       prometheus.Gauge
	DegreeOneCount       prometheus.Gauge
	PctEdgesNearBoundary prometheus.Gauge
}

// NewCollector registers every metric on reg and returns the Collector.
func NewCollector(reg *prometheus.Registry) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		StageDurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "stage_duration_seconds",
			Help:      "Wall-clock duration of one pipeline stage invocation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"stage"}),
		EdgesPrunedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "prune",
			Name:      "edges_removed_total",
			Help:      "Edges removed by each pruner.",
		}, []string{"pruner"}),
		PolygonsProcessedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "polygons_processed_total",
			Help:      "Polygons processed, labeled by outcome.",
		}, []string{"outcome"}),
		ComponentCount: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "diagnostics",
			Name:      "component_count",
			Help:      "Connected component count in the last validated run.",
		}),
		DegreeOneCount: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "diagnostics",
			Name:      "degree_one_node_count",
			Help:      "Degree-1 node count in the last validated run.",
		}),
		PctEdgesNearBoundary: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "diagnostics",
			Name:      "pct_edges_near_boundary",
			Help:      "Percentage of edges within 0.5m of a polygon boundary.",
		}),
	}
}

// ObserveStage records one stage invocation's duration.
func (c *Collector) ObserveStage(kind pipeline.StageKind, seconds float64) {
	c.StageDurationSeconds.WithLabelValues(kind.String()).Observe(seconds)
}

// ObservePruner increments the edges-removed counter for one pruner.
func (c *Collector) ObservePruner(name string, removed int) {
	if removed > 0 {
		c.EdgesPrunedTotal.WithLabelValues(name).Add(float64(removed))
	}
}

// ObserveReport syncs the diagnostics gauges from a validate.Report.
func (c *Collector) ObserveReport(r *validate.Report) {
	c.ComponentCount.Set(float64(r.ComponentCount))
	c.DegreeOneCount.Set(float64(r.DegreeOneCount))
	c.PctEdgesNearBoundary.Set(r.PctEdgesNearBoundary)
}
