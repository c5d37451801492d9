// Package validate implements spec.md §4.8's ResultValidator and
// TopologyDiagnostics: read-only passes over the final graph producing
// a DiagnosticsReport (component count, degree-1 boundary-gap check,
// edge-length histogram, degree distribution, boundary-proximity
// percentage). Neither pass mutates the graph.
package validate
