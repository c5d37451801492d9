// Package planarize implements spec.md §4.3's Planarizer: it finds
// every pairwise edge-edge intersection with an R-tree pre-filter
// (geom.Index, grounded the same way skeleton's boundary lookups are),
// splits both crossing edges at the intersection, and unifies split
// points within snap_tolerance into a single shared node so the
// resulting graph satisfies the planarity invariant of spec.md §3.
package planarize
