// Package prune implements spec.md §4.2's pruner chain: RatioPruner,
// BoundaryNearPruner, ComponentPruner and SpurPruner, applied in that
// fixed order to the raw skeleton.
//
// Each pruner is a small named type satisfying Pruner, adapted from the
// teacher's builder.Constructor closure-as-strategy idiom
// (builder/api.go) but reified as named types rather than closures, so
// the fixed order spec.md §4.2 requires is a compile-time slice literal
// in Chain rather than a runtime registration order that could drift.
package prune
