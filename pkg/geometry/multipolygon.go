package geometry

import (
	"encoding/json"

	geom "github.com/peterstace/simplefeatures/geom"
)

// MultiPolygon is a finite set of disjoint polygons, produced whenever a
// boolean operation yields more than one connected piece. It supports the
// same read operations as Polygon; callers that need to act on individual
// pieces enumerate Polygons().
type MultiPolygon struct {
	polys []Polygon
}

// NewMultiPolygon assembles a MultiPolygon from already-built polygons,
// dropping any empty pieces.
func NewMultiPolygon(parts ...Polygon) MultiPolygon {
	out := make([]Polygon, 0, len(parts))
	for _, p := range parts {
		if !p.IsEmpty() {
			out = append(out, p)
		}
	}
	return MultiPolygon{polys: out}
}

func newMultiPolygonFromGeom(mp geom.MultiPolygon) MultiPolygon {
	n := mp.NumPolygons()
	out := make([]Polygon, 0, n)
	for i := 0; i < n; i++ {
		poly := makeValidPolygon(mp.PolygonN(i))
		if !poly.IsEmpty() {
			out = append(out, poly)
		}
	}
	return MultiPolygon{polys: out}
}

// Polygons returns the disjoint pieces, in the kernel's enumeration
// order. Callers that need a stable order across runs must sort
// explicitly; this method makes no ordering guarantee beyond what the
// kernel returned.
func (m MultiPolygon) Polygons() []Polygon {
	out := make([]Polygon, len(m.polys))
	copy(out, m.polys)
	return out
}

// Len returns the number of disjoint pieces.
func (m MultiPolygon) Len() int { return len(m.polys) }

// IsEmpty reports whether the multipolygon has no pieces with area.
func (m MultiPolygon) IsEmpty() bool { return len(m.polys) == 0 }

// Area returns the sum of the constituent polygons' areas.
func (m MultiPolygon) Area() float64 {
	total := 0.0
	for _, p := range m.polys {
		total += p.Area()
	}
	return total
}

// Bounds returns the bounding box enclosing every piece.
func (m MultiPolygon) Bounds() Bounds {
	if len(m.polys) == 0 {
		return Bounds{}
	}
	b := m.polys[0].Bounds()
	for _, p := range m.polys[1:] {
		b = b.Union(p.Bounds())
	}
	return b
}

// Largest returns the piece with the greatest area, or Empty if the
// multipolygon has no pieces.
func (m MultiPolygon) Largest() Polygon {
	if len(m.polys) == 0 {
		return Empty
	}
	best := m.polys[0]
	for _, p := range m.polys[1:] {
		if p.Area() > best.Area() {
			best = p
		}
	}
	return best
}

// Union merges this multipolygon with a single polygon, returning the
// combined (possibly still fragmented) result. Pieces that do not touch p
// are carried through unchanged; pieces that do are merged pairwise.
func (m MultiPolygon) Union(p Polygon) MultiPolygon {
	if p.IsEmpty() {
		return m
	}
	merged := p
	untouched := make([]Polygon, 0, len(m.polys))
	for _, piece := range m.polys {
		if piece.Touches(merged, 0) {
			merged = merged.Union(piece).Largest()
		} else {
			untouched = append(untouched, piece)
		}
	}
	out := make([]Polygon, 0, len(untouched)+1)
	out = append(out, untouched...)
	out = append(out, merged)
	return MultiPolygon{polys: out}
}

// Distance returns the shortest distance from p to any piece.
func (m MultiPolygon) Distance(p Polygon) float64 {
	best := Empty.Distance(p)
	first := true
	for _, piece := range m.polys {
		d := piece.Distance(p)
		if first || d < best {
			best = d
			first = false
		}
	}
	return best
}

// Contains reports whether pt lies within any constituent polygon.
func (m MultiPolygon) Contains(pt Point) bool {
	for _, p := range m.polys {
		if p.Contains(pt) {
			return true
		}
	}
	return false
}

// MarshalJSON renders each constituent polygon as its own GeoJSON
// Polygon, in Polygons() order.
func (m MultiPolygon) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.polys)
}
