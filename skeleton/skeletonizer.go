package skeleton

import (
	"context"
	"fmt"

	"github.com/katalvlaran/centerline/geom"
	"github.com/katalvlaran/centerline/graph"
	"github.com/katalvlaran/centerline/pipeline"
	"github.com/katalvlaran/centerline/voronoi"
)

// Skeletonizer implements pipeline.Stage for spec.md §4.1: densify the
// polygon boundary, build a Voronoi diagram over the densified
// boundary points, clip edges to the polygon interior, annotate
// endpoint radius against the original (non-densified) boundary, and
// assemble the survivors into a graph.Graph.
type Skeletonizer struct{}

// Kind implements pipeline.Stage.
func (Skeletonizer) Kind() pipeline.StageKind { return pipeline.KindSkeletonize }

// Run implements pipeline.Stage.
func (s Skeletonizer) Run(_ context.Context, pc *pipeline.Context) (*graph.Graph, error) {
	poly := pc.Polygon
	if err := geom.ValidatePolygon(poly); err != nil {
		return nil, fmt.Errorf("%w: %s", pipeline.ErrInputInvalid, err)
	}

	area := geom.Area(poly)
	if area < pc.Config.MinPolygonArea {
		pc.Warn("polygon below min_polygon_area, skipping", "polygon_id", poly.ID, "area", area)
		return graph.New(), nil
	}

	core := geom.OffsetPolygon(poly, -pc.Config.BoundaryNearDistance)
	if geom.Area(core) <= 0 {
		pc.Warn("polygon narrower than boundary_near_distance, BoundaryNearPruner may remove its whole skeleton",
			"polygon_id", poly.ID, "boundary_near_distance", pc.Config.BoundaryNearDistance)
	}

	densified := geom.DensifyPolygon(poly, pc.Config.SegmentizeMaxLength)
	sites := geom.BoundarySites(densified, pc.Config.SnapTolerance)
	if len(sites) < 3 {
		pc.Warn("too few Voronoi sites after densification", "polygon_id", poly.ID)
		return graph.New(), nil
	}

	bound := geom.RectFromPolygon(poly, pc.Config.SegmentizeMaxLength*4)
	rawEdges := voronoi.Build(sites, bound)
	if len(rawEdges) == 0 {
		return nil, fmt.Errorf("%w: empty voronoi diagram for polygon %s", pipeline.ErrNumericDegenerate, poly.ID)
	}

	var clipped []geom.Segment
	for _, e := range rawEdges {
		if e.Length() == 0 {
			continue
		}
		clipped = append(clipped, geom.ClipSegmentToPolygon(e, poly)...)
	}

	g, err := assemble(clipped, poly, pc.Config.SnapTolerance)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", pipeline.ErrInvariantViolation, err)
	}
	return g, nil
}
