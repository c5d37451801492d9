// Package skeleton implements the Skeletonizer stage (spec.md §4.1):
// densify the polygon boundary, build a Voronoi diagram over the
// densified boundary points, clip Voronoi edges to the polygon
// interior, annotate surviving endpoints with boundary radius, and
// assemble the result into a graph.Graph.
package skeleton
