// Package smooth implements spec.md §4.5's IntersectionSmoother:
// straightening the first few vertices of every edge approaching a
// degree-3+ junction when doing so stays within smoothing_tolerance of
// the original geometry.
package smooth
