package engine

import (
	"github.com/katalvlaran/centerline/forkclean"
	"github.com/katalvlaran/centerline/logging"
	"github.com/katalvlaran/centerline/merge"
	"github.com/katalvlaran/centerline/pipeline"
	"github.com/katalvlaran/centerline/planarize"
	"github.com/katalvlaran/centerline/prune"
	"github.com/katalvlaran/centerline/simplify"
	"github.com/katalvlaran/centerline/skeleton"
	"github.com/katalvlaran/centerline/smooth"
	"github.com/katalvlaran/centerline/validate"
)

// NewDriver builds a pipeline.Driver running every spec.md §2 stage in
// order: Skeletonizer and the Pruner chain per polygon, then
// Planarizer, IntersectionMerger, IntersectionSmoother,
// TerminalForkCleaner, NetworkSimplifier and ResultValidator on the
// unioned graph.
func NewDriver(logger *logging.Logger) *pipeline.Driver {
	d := pipeline.NewDriver(
		[]pipeline.Stage{
			skeleton.Skeletonizer{},
			prune.DefaultChain(),
		},
		[]pipeline.Stage{
			planarize.Planarizer{},
			merge.Merger{},
			smooth.Smoother{},
			forkclean.Cleaner{},
			simplify.Simplifier{},
			validate.Validator{},
		},
	)
	if logger != nil {
		d.Logger = logger
	}
	return d
}
