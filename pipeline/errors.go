// Package pipeline wires Config, the polygon set and the current graph
// into a Context, defines the Stage interface and the fixed-order
// Driver that runs spec.md §2's stage list, and classifies every error
// the core can produce into spec.md §7's five error kinds.
package pipeline

import (
	"errors"
)

// ErrorKind is spec.md §7's taxonomy: a classification, not a Go type
// hierarchy, so callers branch on Kind(err) rather than type-asserting.
type ErrorKind int

const (
	// KindUnknown is returned by Kind for errors the pipeline did not
	// originate (e.g. a caller-supplied PolygonSource's own I/O error).
	KindUnknown ErrorKind = iota
	// KindInputInvalid: malformed polygon or empty input; the pipeline aborts.
	KindInputInvalid
	// KindNumericDegenerate: Voronoi construction failed on one polygon;
	// that polygon's output is empty, the batch continues.
	KindNumericDegenerate
	// KindInvariantViolation: an internal invariant failed; fatal, indicates a bug.
	KindInvariantViolation
	// KindCancelled: the cooperative cancellation predicate fired between stages.
	KindCancelled
	// KindConfigurationInvalid: a tolerance is non-positive or violates
	// an ordering constraint; detected at pipeline start.
	KindConfigurationInvalid
)

// Sentinel errors, one per kind, for package code that has no richer
// context to attach. Wrap these with %w when context is available so
// Kind and errors.Is both keep working.
var (
	ErrInputInvalid        = errors.New("pipeline: input invalid")
	ErrNumericDegenerate   = errors.New("pipeline: numeric degenerate")
	ErrInvariantViolation  = errors.New("pipeline: invariant violation")
	ErrCancelled           = errors.New("pipeline: cancelled")
	ErrConfigurationInvalid = errors.New("pipeline: configuration invalid")
)

// Kind classifies err into spec.md §7's taxonomy by walking its error
// chain against the package sentinels above.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInputInvalid):
		return KindInputInvalid
	case errors.Is(err, ErrNumericDegenerate):
		return KindNumericDegenerate
	case errors.Is(err, ErrInvariantViolation):
		return KindInvariantViolation
	case errors.Is(err, ErrCancelled):
		return KindCancelled
	case errors.Is(err, ErrConfigurationInvalid):
		return KindConfigurationInvalid
	default:
		return KindUnknown
	}
}

// Recoverable reports whether err represents a per-polygon failure the
// batch should continue past (spec.md §7: "recoverable per-polygon
// failures never poison the batch").
func Recoverable(err error) bool {
	return Kind(err) == KindNumericDegenerate
}
