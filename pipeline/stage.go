package pipeline

import (
	"context"

	"github.com/katalvlaran/centerline/graph"
)

// StageKind is the tagged-variant enumeration spec.md §9 calls for
// ("tagged-variant enumeration of stage kinds plus a driver that
// dispatches on the variant"), used for logging, metrics labels and
// SnapshotSink's stage-name argument.
type StageKind int

const (
	KindSkeletonize StageKind = iota
	KindPrune
	KindPlanarize
	KindMerge
	KindSmooth
	KindForkClean
	KindSimplify
	KindValidate
)

// String returns the canonical stage name, used as the SnapshotSink
// "stage_name" and as metric/log labels.
func (k StageKind) String() string {
	switch k {
	case KindSkeletonize:
		return "skeleton"
	case KindPrune:
		return "pruned"
	case KindPlanarize:
		return "planarized"
	case KindMerge:
		return "merged"
	case KindSmooth:
		return "smoothed"
	case KindForkClean:
		return "cleaned"
	case KindSimplify:
		return "final"
	case KindValidate:
		return "validated"
	default:
		return "unknown"
	}
}

// Snapshotted reports whether this stage's output is one of the four
// named debug snapshot points spec.md §6 lists (Skeleton, Planarized,
// Cleaned, Final).
func (k StageKind) Snapshotted() bool {
	switch k {
	case KindSkeletonize, KindPlanarize, KindForkClean, KindSimplify:
		return true
	default:
		return false
	}
}

// Stage is one pipeline transformation: it takes the current Context
// (which embeds *graph.Graph) and returns the graph that becomes the
// Context's next Graph, which may be the same graph edited in place.
// Concrete stages live in their own packages (skeleton, prune,
// planarize, merge, smooth, forkclean, simplify) to keep each
// algorithm's supporting types close to its implementation; Driver
// only depends on this interface.
type Stage interface {
	Kind() StageKind
	Run(ctx context.Context, pc *Context) (*graph.Graph, error)
}
