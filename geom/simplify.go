package geom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// DouglasPeucker reduces pl's vertex count with the given tolerance,
// delegating the core reduction to github.com/paulmach/orb/simplify
// (the retrieved corpus's only Douglas-Peucker implementation).
// Endpoints are always preserved, matching spec.md §4.7's hard
// constraint; the Hausdorff/crossing retry loop lives in the
// simplify package (domain-level), not here, because this function has
// no notion of sibling edges.
func DouglasPeucker(pl Polyline, tolerance float64) Polyline {
	if len(pl) < 3 {
		return append(Polyline(nil), pl...)
	}
	ls := make(orb.LineString, len(pl))
	copy(ls, pl)

	reducer := simplify.DouglasPeucker(tolerance)
	reduced := reducer.Simplify(ls).(orb.LineString)

	out := make(Polyline, len(reduced))
	copy(out, reduced)
	// Guarantee endpoint stability even if floating point simplification
	// nudged an endpoint (orb.simplify should not, but the contract in
	// spec.md §4.7 is load-bearing enough to assert explicitly).
	out[0] = pl[0]
	out[len(out)-1] = pl[len(pl)-1]
	return out
}
