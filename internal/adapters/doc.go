// Package adapters provides reference implementations of
// pipeline.PolygonSource, pipeline.CenterlineSink and
// pipeline.SnapshotSink against GeoJSON and JSON-lines files. These
// exist to prove the core's interfaces are implementable from outside
// the core; file I/O itself is explicitly out of the core's scope
// (spec.md §1).
package adapters
