package geom

import (
	"github.com/dhconnelly/rtreego"
)

// indexMinChildren/indexMaxChildren tune the R-tree branching factor;
// these are the values rtreego's own examples use for point-ish
// workloads (short boundary segments, many small entries).
const (
	indexMinChildren = 25
	indexMaxChildren = 50
)

// segmentEntry adapts a Segment into rtreego.Spatial so boundary edges
// and graph edges can share one index implementation.
type segmentEntry struct {
	seg     Segment
	payload interface{}
}

func (e *segmentEntry) Bounds() *rtreego.Rect {
	minX, maxX := e.seg[0][0], e.seg[1][0]
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := e.seg[0][1], e.seg[1][1]
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	// rtreego requires strictly positive extents; pad degenerate
	// (axis-aligned) segments by an epsilon so the bounding rect is valid.
	const eps = 1e-9
	lengths := []float64{maxX - minX + eps, maxY - minY + eps}
	r, err := rtreego.NewRect(rtreego.Point{minX, minY}, lengths)
	if err != nil {
		// Only reachable for NaN/Inf coordinates, which never occur in
		// this pipeline's polygon inputs; surfacing as a zero rect keeps
		// Bounds() panic-free per the rtreego.Spatial contract.
		return &rtreego.Rect{}
	}
	return &r
}

// Index is a 2D R-tree over segments (polygon boundary edges or graph
// edge endpoints), used by distance-to-boundary queries (Skeletonizer,
// TerminalForkCleaner) and by candidate-pair pruning before exact
// intersection tests (Planarizer, NetworkSimplifier).
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex builds an empty spatial index.
func NewIndex() *Index {
	return &Index{tree: rtreego.NewTree(2, indexMinChildren, indexMaxChildren)}
}

// Insert adds a segment to the index, tagging it with an arbitrary
// payload (typically a graph.EdgeID or a polygon boundary ring index)
// that callers retrieve from query results.
func (ix *Index) Insert(seg Segment, payload interface{}) {
	ix.tree.Insert(&segmentEntry{seg: seg, payload: payload})
}

// QueryNear returns the payloads of every indexed segment whose
// bounding box lies within radius of p (a coarse pre-filter; callers
// must still compute exact distances against the returned candidates).
func (ix *Index) QueryNear(p Point, radius float64) []interface{} {
	bound, err := rtreego.NewRect(
		rtreego.Point{p[0] - radius, p[1] - radius},
		[]float64{2 * radius, 2 * radius},
	)
	if err != nil {
		return nil
	}
	results := ix.tree.SearchIntersect(&bound)
	out := make([]interface{}, 0, len(results))
	for _, r := range results {
		if se, ok := r.(*segmentEntry); ok {
			out = append(out, se.payload)
		}
	}
	return out
}

// BuildBoundaryIndex indexes every ring segment of poly, keyed by the
// segment itself (so boundary-distance callers get the geometry back
// directly without a second lookup table).
func BuildBoundaryIndex(poly Polygon) *Index {
	ix := NewIndex()
	for _, ring := range poly.Rings {
		n := len(ring)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			seg := Segment{ring[i], ring[j]}
			ix.Insert(seg, seg)
		}
	}
	return ix
}

// DistanceToBoundary returns the distance from p to the nearest point
// on poly's boundary (outer ring and holes), computed by expanding a
// query radius against the index until a stable minimum is found.
func DistanceToBoundary(p Point, ix *Index, poly Polygon) float64 {
	radius := 1.0
	const maxRadius = 1e7
	for radius < maxRadius {
		cands := ix.QueryNear(p, radius)
		if len(cands) > 0 {
			best := pointSegMinDist(p, cands)
			// The true minimum could lie just outside a too-small query
			// radius; once the found distance is comfortably inside the
			// search window, it is exact.
			if best <= radius/2 || radius >= maxRadius/2 {
				return best
			}
		}
		radius *= 2
	}
	return bruteForceBoundaryDistance(p, poly)
}

func pointSegMinDist(p Point, cands []interface{}) float64 {
	best := -1.0
	for _, c := range cands {
		seg, ok := c.(Segment)
		if !ok {
			continue
		}
		d := DistancePointSegment(p, seg)
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

func bruteForceBoundaryDistance(p Point, poly Polygon) float64 {
	best := -1.0
	for _, ring := range poly.Rings {
		n := len(ring)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			d := DistancePointSegment(p, Segment{ring[i], ring[j]})
			if best < 0 || d < best {
				best = d
			}
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// DistancePointSegment returns the shortest distance from p to segment s.
func DistancePointSegment(p Point, s Segment) float64 {
	ax, ay := s[0][0], s[0][1]
	bx, by := s[1][0], s[1][1]
	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Distance(p, s[0])
	}
	t := ((p[0]-ax)*dx + (p[1]-ay)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := Point{ax + t*dx, ay + t*dy}
	return Distance(p, proj)
}
