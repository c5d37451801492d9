package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/centerline/geom"
	"github.com/katalvlaran/centerline/graph"
)

// JSONLinesSnapshotSink appends one JSON line per debug snapshot,
// suitable for tailing during a long batch run.
type JSONLinesSnapshotSink struct {
	Path string
}

type snapshotLine struct {
	Stage     string        `json:"stage"`
	NodeCount int           `json:"node_count"`
	EdgeCount int           `json:"edge_count"`
	Edges     []edgeSummary `json:"edges"`
}

type edgeSummary struct {
	Geometry geom.Polyline `json:"geometry"`
	Length   float64       `json:"length"`
}

// Write implements pipeline.SnapshotSink.
func (s JSONLinesSnapshotSink) Write(_ context.Context, stage string, g *graph.Graph) error {
	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("adapters: open %s: %w", s.Path, err)
	}
	defer f.Close()

	edges := g.Edges()
	summaries := make([]edgeSummary, len(edges))
	for i, e := range edges {
		summaries[i] = edgeSummary{Geometry: e.Geometry, Length: e.Length}
	}
	line := snapshotLine{Stage: stage, NodeCount: g.NodeCount(), EdgeCount: g.EdgeCount(), Edges: summaries}

	enc := json.NewEncoder(f)
	if err := enc.Encode(line); err != nil {
		return fmt.Errorf("adapters: encode snapshot %s: %w", stage, err)
	}
	return nil
}
