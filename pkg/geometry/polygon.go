package geometry

import (
	"fmt"
	"math"

	geom "github.com/peterstace/simplefeatures/geom"
)

// Polygon is an immutable planar region, possibly with holes. All
// transformations (Buffer, Union, Intersection, Difference) return new
// values; the receiver is never modified.
type Polygon struct {
	g     geom.Polygon
	empty bool
}

// Empty is the zero-area polygon returned by operations whose result
// vanished (e.g. a buffer by a negative distance that eats the whole
// shape). Callers must treat it as "this region disappeared", not as an
// error.
var Empty = Polygon{empty: true}

// NewPolygon builds a polygon from its exterior ring, given as points in
// either winding order. The ring is closed automatically if the caller did
// not repeat the first point. Holes may be supplied; they are passed to
// the kernel as given and are not checked to lie within the exterior.
func NewPolygon(exterior []Point, holes ...[]Point) (Polygon, error) {
	if len(exterior) < 3 {
		return Empty, fmt.Errorf("geometry: polygon exterior needs >= 3 unique vertices, got %d", len(exterior))
	}
	rings := make([]geom.LineString, 0, 1+len(holes))
	ext, err := ringFromPoints(exterior)
	if err != nil {
		return Empty, fmt.Errorf("geometry: exterior ring: %w", err)
	}
	rings = append(rings, ext)
	for i, h := range holes {
		ls, err := ringFromPoints(h)
		if err != nil {
			return Empty, fmt.Errorf("geometry: hole %d: %w", i, err)
		}
		rings = append(rings, ls)
	}
	poly := geom.NewPolygon(rings)
	return makeValidPolygon(poly), nil
}

// ringFromPoints closes the ring if necessary and builds a geom.LineString.
func ringFromPoints(pts []Point) (geom.LineString, error) {
	if len(pts) < 3 {
		return geom.LineString{}, fmt.Errorf("ring needs >= 3 unique vertices, got %d", len(pts))
	}
	closed := pts
	first, last := pts[0], pts[len(pts)-1]
	if first.X != last.X || first.Y != last.Y {
		closed = make([]Point, len(pts)+1)
		copy(closed, pts)
		closed[len(pts)] = first
	}
	flat := make([]float64, 0, len(closed)*2)
	for _, p := range closed {
		flat = append(flat, p.X, p.Y)
	}
	seq := geom.NewSequence(flat, geom.DimXY)
	return geom.NewLineString(seq), nil
}

// makeValidPolygon is the single place every call site that derives a
// Polygon from a raw geom.Polygon goes through. It maps an empty kernel
// polygon to Empty; it does not validate the geometry or repair
// self-intersections.
func makeValidPolygon(p geom.Polygon) Polygon {
	if p.IsEmpty() {
		return Empty
	}
	return Polygon{g: p}
}

// IsEmpty reports whether the polygon carries no area.
func (p Polygon) IsEmpty() bool {
	return p.empty || p.g.IsEmpty()
}

// Area returns the polygon's area in square metres.
func (p Polygon) Area() float64 {
	if p.IsEmpty() {
		return 0
	}
	return p.g.Area()
}

// Bounds returns the axis-aligned bounding box.
func (p Polygon) Bounds() Bounds {
	if p.IsEmpty() {
		return Bounds{}
	}
	env := p.g.Envelope()
	min, okMin := env.Min().XY()
	max, okMax := env.Max().XY()
	if !okMin || !okMax {
		return Bounds{}
	}
	return Bounds{MinX: min.X, MinY: min.Y, MaxX: max.X, MaxY: max.Y}
}

// Centroid returns the polygon's area centroid. Returns false if the
// polygon is empty.
func (p Polygon) Centroid() (Point, bool) {
	if p.IsEmpty() {
		return Point{}, false
	}
	c, ok := p.g.Centroid().XY()
	if !ok {
		return Point{}, false
	}
	return Point{c.X, c.Y}, true
}

// BoundaryLength returns the total length of the polygon's exterior and
// hole rings, used by the corridor/unit facade and door-width checks.
func (p Polygon) BoundaryLength() float64 {
	if p.IsEmpty() {
		return 0
	}
	return p.g.Boundary().AsGeometry().Length()
}

// Contains reports whether the point lies within the polygon (inclusive
// of the boundary).
func (p Polygon) Contains(pt Point) bool {
	if p.IsEmpty() {
		return false
	}
	xy := geom.XY{X: pt.X, Y: pt.Y}
	return pointInPolygon(p.g, xy)
}

// pointInPolygon wraps the kernel's Intersects predicate, so a point on
// the boundary counts as contained.
func pointInPolygon(poly geom.Polygon, xy geom.XY) bool {
	pt := geom.NewPoint(xy)
	ok, err := geom.Intersects(poly.AsGeometry(), pt.AsGeometry())
	if err != nil {
		return false
	}
	return ok
}

// Distance returns the shortest distance between the two polygons' areas.
// Returns 0 if they overlap.
func (p Polygon) Distance(o Polygon) float64 {
	if p.IsEmpty() || o.IsEmpty() {
		return math.Inf(1)
	}
	d, ok := geom.Distance(p.g.AsGeometry(), o.g.AsGeometry())
	if !ok {
		return math.Inf(1)
	}
	return d
}

// Touches reports whether the two polygons are within tol of each other
// (the corridor network passes 0.1 m; MultiPolygon.Union passes 0).
func (p Polygon) Touches(o Polygon, tol float64) bool {
	return p.Distance(o) <= tol
}

// Buffer grows (positive r) or shrinks (negative r) the polygon by r
// metres. A negative buffer that consumes the whole shape returns Empty;
// callers must treat that as "this region vanished", not as an error.
func (p Polygon) Buffer(r float64) Polygon {
	if p.IsEmpty() {
		return Empty
	}
	out, err := geom.Buffer(p.g.AsGeometry(), r)
	if err != nil {
		return Empty
	}
	return geometryToPolygon(out)
}

// Union returns the union of p and o as a MultiPolygon (which may hold a
// single piece if the inputs touch or overlap).
func (p Polygon) Union(o Polygon) MultiPolygon {
	if p.IsEmpty() {
		return singlePolyToMulti(o)
	}
	if o.IsEmpty() {
		return singlePolyToMulti(p)
	}
	out, err := geom.Union(p.g.AsGeometry(), o.g.AsGeometry())
	if err != nil {
		return MultiPolygon{}
	}
	return geometryToMultiPolygon(out)
}

// Intersection returns the overlapping region of p and o.
func (p Polygon) Intersection(o Polygon) MultiPolygon {
	if p.IsEmpty() || o.IsEmpty() {
		return MultiPolygon{}
	}
	out, err := geom.Intersection(p.g.AsGeometry(), o.g.AsGeometry())
	if err != nil {
		return MultiPolygon{}
	}
	return geometryToMultiPolygon(out)
}

// Difference returns p with o subtracted. May yield a MultiPolygon if the
// subtraction splits p into disjoint pieces.
func (p Polygon) Difference(o Polygon) MultiPolygon {
	if p.IsEmpty() {
		return MultiPolygon{}
	}
	if o.IsEmpty() {
		return singlePolyToMulti(p)
	}
	out, err := geom.Difference(p.g.AsGeometry(), o.g.AsGeometry())
	if err != nil {
		return MultiPolygon{}
	}
	return geometryToMultiPolygon(out)
}

func geometryToPolygon(g geom.Geometry) Polygon {
	switch g.Type() {
	case geom.TypePolygon:
		return makeValidPolygon(g.AsPolygon())
	case geom.TypeMultiPolygon:
		mp := geometryToMultiPolygon(g)
		if mp.IsEmpty() {
			return Empty
		}
		// A buffer is not expected to fragment a single convex-ish region;
		// if it did, keep the largest piece rather than silently drop area.
		return mp.Largest()
	default:
		return Empty
	}
}

func geometryToMultiPolygon(g geom.Geometry) MultiPolygon {
	switch g.Type() {
	case geom.TypePolygon:
		return singlePolyToMulti(makeValidPolygon(g.AsPolygon()))
	case geom.TypeMultiPolygon:
		return newMultiPolygonFromGeom(g.AsMultiPolygon())
	default:
		return MultiPolygon{}
	}
}

func singlePolyToMulti(p Polygon) MultiPolygon {
	if p.IsEmpty() {
		return MultiPolygon{}
	}
	return MultiPolygon{polys: []Polygon{p}}
}

// MarshalJSON renders the polygon as GeoJSON, delegating to the
// underlying kernel's own marshaler. An empty polygon marshals as a
// GeoJSON Polygon with no coordinates rather than null, so exported
// plans keep one shape per unit/core/corridor slot.
func (p Polygon) MarshalJSON() ([]byte, error) {
	if p.IsEmpty() {
		return []byte(`{"type":"Polygon","coordinates":[]}`), nil
	}
	return p.g.AsGeometry().MarshalJSON()
}
