// Package simplify implements spec.md §4.7's NetworkSimplifier:
// Douglas-Peucker reduction per edge (geom.DouglasPeucker), retried at
// half tolerance down to a 0.05 m floor whenever the simplified
// polyline would cross another edge or exceed the configured Hausdorff
// bound.
package simplify
