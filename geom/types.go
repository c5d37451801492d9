package geom

import (
	"math"

	"github.com/paulmach/orb"
)

// Point is a 2D coordinate in a projected, meter-unit CRS.
// It is layout-compatible with orb.Point so conversions are free.
type Point = orb.Point

// Polyline is an ordered sequence of at least two points. The first and
// last points are its endpoints; any interior points are shape
// vertices. A Polyline with fewer than two points is never valid and
// callers must not construct one.
type Polyline []Point

// Ring is a closed sequence of points (first == last is not required;
// callers treat it as implicitly closed, matching orb.Ring semantics).
type Ring = orb.Ring

// Polygon is an outer ring plus zero or more inner rings (holes).
// Rings[0] is the outer ring; Rings[1:] are holes.
type Polygon struct {
	Rings []Ring
	// ID identifies the source polygon across the pipeline (used to
	// stamp Edge.SourcePolygonID and for diagnostics).
	ID string
}

// Outer returns the polygon's outer boundary ring.
func (p Polygon) Outer() Ring {
	if len(p.Rings) == 0 {
		return nil
	}
	return p.Rings[0]
}

// Holes returns the polygon's interior rings, if any.
func (p Polygon) Holes() []Ring {
	if len(p.Rings) <= 1 {
		return nil
	}
	return p.Rings[1:]
}

// ToOrb converts a Polygon to an orb.Polygon for interop with
// orb-based encoders (geojson) and the orb/simplify package.
func (p Polygon) ToOrb() orb.Polygon {
	out := make(orb.Polygon, len(p.Rings))
	copy(out, p.Rings)
	return out
}

// FromOrb builds a Polygon from an orb.Polygon, tagging it with id.
func FromOrb(id string, op orb.Polygon) Polygon {
	rings := make([]Ring, len(op))
	copy(rings, op)
	return Polygon{ID: id, Rings: rings}
}

// Length returns the Euclidean arc length of the polyline.
func (pl Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(pl); i++ {
		total += Distance(pl[i-1], pl[i])
	}
	return total
}

// Reversed returns a new Polyline with point order reversed. Used by
// stages that need a canonical traversal direction without mutating
// shared geometry.
func (pl Polyline) Reversed() Polyline {
	out := make(Polyline, len(pl))
	for i, p := range pl {
		out[len(pl)-1-i] = p
	}
	return out
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	return math.Hypot(dx, dy)
}

// Equal reports exact (bit-for-bit) coordinate equality, per spec.md's
// "Point: equality is exact" rule.
func Equal(a, b Point) bool {
	return a[0] == b[0] && a[1] == b[1]
}

// Near reports whether two points coincide within tol (an explicit
// proximity tolerance, typically config.Config.SnapTolerance).
func Near(a, b Point, tol float64) bool {
	return Distance(a, b) <= tol
}

// Rect is an axis-aligned bounding rectangle, used to bound Voronoi
// construction and spatial-index queries.
type Rect struct {
	Min, Max Point
}

// RectFromPolygon returns the bounding rectangle of a polygon's outer
// ring, padded by margin on every side (Voronoi cells for boundary
// sites need room to extend outward before clipping).
func RectFromPolygon(poly Polygon, margin float64) Rect {
	outer := poly.Outer()
	if len(outer) == 0 {
		return Rect{}
	}
	minX, minY := outer[0][0], outer[0][1]
	maxX, maxY := minX, minY
	for _, p := range outer {
		minX = math.Min(minX, p[0])
		minY = math.Min(minY, p[1])
		maxX = math.Max(maxX, p[0])
		maxY = math.Max(maxY, p[1])
	}
	return Rect{
		Min: Point{minX - margin, minY - margin},
		Max: Point{maxX + margin, maxY + margin},
	}
}

// Contains reports whether p lies within the rectangle (inclusive).
func (r Rect) Contains(p Point) bool {
	return p[0] >= r.Min[0] && p[0] <= r.Max[0] && p[1] >= r.Min[1] && p[1] <= r.Max[1]
}

// Segment is a two-point line segment, the unit Voronoi construction
// and clipping operate on before they are assembled into graph edges.
type Segment [2]Point

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return Distance(s[0], s[1])
}
