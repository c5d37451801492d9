// Package engine wires the canonical stage list of spec.md §2 into a
// pipeline.Driver: Skeletonizer and the Pruner chain run per polygon,
// Planarizer onward run once on the unioned graph. This is the single
// place that imports every stage package, keeping pipeline itself free
// of a dependency on its own stage implementations.
package engine
