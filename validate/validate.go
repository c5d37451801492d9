package validate

import (
	"context"

	"github.com/google/uuid"

	"github.com/katalvlaran/centerline/geom"
	"github.com/katalvlaran/centerline/graph"
	"github.com/katalvlaran/centerline/pipeline"
)

// lengthBins are the histogram bin upper bounds spec.md §4.8 names,
// in meters; the last bin is unbounded.
var lengthBins = []float64{1, 2, 5, 10, 25, 50, 100}

// boundaryProximityBand is the fixed 0.5 m band spec.md §4.8 uses for
// the "percentage of edges within 0.5 m of a boundary" diagnostic,
// independent of Config.BoundaryNearDistance.
const boundaryProximityBand = 0.5

// Report is the DiagnosticsReport of spec.md §6.
type Report struct {
	// RunID identifies one Validator invocation, letting a log line or
	// a stored report be matched back to the run that produced it.
	RunID          string
	ComponentCount int
	DegreeOneCount int
	// BoundaryGapWarnings lists degree-1 nodes farther than
	// terminal_gap_warn from any polygon boundary.
	BoundaryGapWarnings []BoundaryGap
	// EdgeLengthHistogram maps a bin's upper bound (meters, or -1 for
	// the unbounded ">100" bin) to the count of edges in that bin.
	EdgeLengthHistogram map[float64]int
	// DegreeDistribution maps degree (1, 2, 3, 4) to node count; degree
	// >= 5 is collapsed into key 5.
	DegreeDistribution map[int]int
	// PctEdgesNearBoundary is the percentage of edges with every vertex
	// within boundaryProximityBand of their source polygon's boundary.
	PctEdgesNearBoundary float64
}

// BoundaryGap flags one degree-1 node whose distance to its polygon's
// boundary exceeds terminal_gap_warn.
type BoundaryGap struct {
	Node     graph.NodeID
	Distance float64
}

// Validator implements pipeline.Stage for spec.md §4.8. It never
// mutates the graph; Run returns pc.Graph unchanged and stores the
// computed Report on pc.Diagnostics.
type Validator struct{}

// Kind implements pipeline.Stage.
func (Validator) Kind() pipeline.StageKind { return pipeline.KindValidate }

// Run implements pipeline.Stage.
func (Validator) Run(_ context.Context, pc *pipeline.Context) (*graph.Graph, error) {
	g := pc.Graph
	report := &Report{
		RunID:               uuid.NewString(),
		EdgeLengthHistogram: make(map[float64]int),
		DegreeDistribution:  make(map[int]int),
	}

	components := graph.ConnectedComponents(g)
	report.ComponentCount = len(components)

	nodes := g.Nodes()
	for _, n := range nodes {
		bucket := n.Degree
		if bucket >= 5 {
			bucket = 5
		}
		report.DegreeDistribution[bucket]++
		if n.Degree == 1 {
			report.DegreeOneCount++
			if d := nearestPolygonDistance(pc, n.Position); d > pc.Config.TerminalGapWarn {
				report.BoundaryGapWarnings = append(report.BoundaryGapWarnings, BoundaryGap{Node: n.ID, Distance: d})
			}
		}
	}

	edges := g.Edges()
	nearBoundary := 0
	for _, e := range edges {
		report.EdgeLengthHistogram[lengthBin(e.Length)]++
		if edgeWithinBoundaryBand(pc, e, boundaryProximityBand) {
			nearBoundary++
		}
	}
	if len(edges) > 0 {
		report.PctEdgesNearBoundary = 100 * float64(nearBoundary) / float64(len(edges))
	}

	pc.Diagnostics = report
	return g, nil
}

func lengthBin(length float64) float64 {
	for _, b := range lengthBins {
		if length <= b {
			return b
		}
	}
	return -1
}

// nearestPolygonDistance resolves the right polygon boundary for p,
// using the single-Polygon Context field when set (RunSingle) and
// falling back to the closest of Polygons otherwise (RunBatch's
// Union-stage context, where node->source-polygon is ambiguous for a
// merged junction; using the closest boundary is the conservative
// choice for a gap warning).
func nearestPolygonDistance(pc *pipeline.Context, p geom.Point) float64 {
	if pc.Polygon.ID != "" {
		return pc.DistanceToBoundary(p)
	}
	best := -1.0
	for _, poly := range pc.Polygons {
		d := pc.DistanceToBoundaryFor(poly.ID, p)
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

func edgeWithinBoundaryBand(pc *pipeline.Context, e graph.Edge, band float64) bool {
	for _, p := range e.Geometry {
		var d float64
		if pc.Polygon.ID != "" {
			d = pc.DistanceToBoundary(p)
		} else {
			d = pc.DistanceToBoundaryFor(e.SourcePolygonID, p)
		}
		if d > band {
			return false
		}
	}
	return true
}
