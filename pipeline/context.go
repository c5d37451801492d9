package pipeline

import (
	"github.com/katalvlaran/centerline/config"
	"github.com/katalvlaran/centerline/geom"
	"github.com/katalvlaran/centerline/graph"
	"github.com/katalvlaran/centerline/logging"
)

// Context is the PipelineContext of spec.md §2/§5: the current graph,
// the originating polygon (used by later stages for boundary tests),
// and the immutable Config, plus the ambient Logger threaded through
// every stage. A Context is owned by Driver and passed by reference to
// stages, which may edit Graph in place and return it; Driver stores
// the returned graph back in Graph. Each polygon's Context has its own
// graph.
type Context struct {
	// Graph is the current graph. A stage may remove and insert its
	// edges in place and return it from Stage.Run; Driver assigns the
	// returned graph to this field and does not copy it between stages.
	Graph *graph.Graph

	// Polygon is the single source polygon this Context covers. For
	// union-stage contexts (Planarizer onward, after polygons have been
	// merged) Polygons holds every contributing polygon instead and
	// Polygon is the zero value.
	Polygon  geom.Polygon
	Polygons []geom.Polygon

	Config *config.Config
	Logger *logging.Logger

	// boundaryIndex is a lazily-built R-tree over Polygon's boundary,
	// shared by any stage in this Context that needs
	// geom.DistanceToBoundary (BoundaryNearPruner, Validator).
	boundaryIndex *geom.Index

	// byPolygonIndex lazily builds one boundary index per polygon ID,
	// for Union-stage contexts (Planarizer onward) where Polygons holds
	// every contributing polygon and an edge's correct boundary is
	// found via its SourcePolygonID.
	byPolygonIndex map[string]*geom.Index
	byPolygonGeom  map[string]geom.Polygon

	// Warnings accumulates non-fatal diagnostics (e.g. spec.md §8's
	// "boundary terminal bound" flags) surfaced in the final QA report.
	Warnings []string

	// Diagnostics is populated by validate.Validator, the terminal
	// stage, and is nil beforehand. It is declared here (rather than in
	// package validate) so Driver callers can read it off the Context
	// without importing validate just for the type.
	Diagnostics interface{}
}

// BoundaryIndex returns (building on first use) the R-tree over the
// Context's single Polygon's boundary.
func (c *Context) BoundaryIndex() *geom.Index {
	if c.boundaryIndex == nil {
		c.boundaryIndex = geom.BuildBoundaryIndex(c.Polygon)
	}
	return c.boundaryIndex
}

// DistanceToBoundary returns p's distance to Polygon's boundary.
func (c *Context) DistanceToBoundary(p geom.Point) float64 {
	return geom.DistanceToBoundary(p, c.BoundaryIndex(), c.Polygon)
}

// DistanceToBoundaryFor returns p's distance to the boundary of the
// polygon identified by polygonID, searching Polygons (the Union-stage
// set). Indices are built once per polygon ID and cached. Returns a
// large sentinel distance if polygonID is unknown, so callers that
// compare against a threshold fail open rather than panicking.
func (c *Context) DistanceToBoundaryFor(polygonID string, p geom.Point) float64 {
	if c.byPolygonIndex == nil {
		c.byPolygonIndex = make(map[string]*geom.Index, len(c.Polygons))
		c.byPolygonGeom = make(map[string]geom.Polygon, len(c.Polygons))
		for _, poly := range c.Polygons {
			c.byPolygonIndex[poly.ID] = geom.BuildBoundaryIndex(poly)
			c.byPolygonGeom[poly.ID] = poly
		}
	}
	ix, ok := c.byPolygonIndex[polygonID]
	if !ok {
		return 1e18
	}
	return geom.DistanceToBoundary(p, ix, c.byPolygonGeom[polygonID])
}

// Warn records a non-fatal diagnostic and logs it at Warn level.
func (c *Context) Warn(msg string, fields ...interface{}) {
	c.Warnings = append(c.Warnings, msg)
	if c.Logger != nil {
		c.Logger.Warn(msg, fields...)
	}
}
