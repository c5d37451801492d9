// Package metrics exposes pipeline execution as Prometheus collectors:
// per-stage duration histograms, edges-pruned counters, and gauges
// mirroring validate.Report's fields, grounded on the retrieved
// AleutianLocal services' StreamingMetrics construction style
// (promauto-registered vectors on a struct built once at startup),
// but built against an explicit *prometheus.Registry rather than a
// package-global singleton.
package metrics
