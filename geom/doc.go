// Package geom provides the 2D projected-CRS geometry primitives the
// centerline pipeline is built on: points, polylines and polygons with
// holes, densification, point-in-polygon, segment intersection,
// boundary-distance queries, polygon offsetting and Hausdorff distance.
//
// Coordinates are meters in a projected CRS; geom performs no
// reprojection and every tolerance parameter is explicit (no package
// level defaults), so callers in config decide what "close enough"
// means.
//
// Types build on github.com/paulmach/orb where orb already models the
// shape (Point, Ring, Polygon); geom adds the tuned primitives orb does
// not ship: boundary distance via an R-tree index and Voronoi-edge
// clipping. DouglasPeucker delegates to orb/simplify; the Hausdorff and
// crossing guard around it is in package simplify.
package geom
