package geometry

// SharedBoundaryLength estimates the length of wall shared between two
// disjoint-but-adjacent regions (e.g. a unit and the corridor piece it
// opens onto), used for door-width and facade-contact checks throughout
// pkg/packer and pkg/validator.
//
// The kernel does not expose a direct curve-intersection primitive, so
// this uses the standard perimeter-cancellation identity: when two
// non-overlapping regions share a boundary segment of length L, their
// individual perimeters each count that segment once, while the
// perimeter of their union counts it zero times (it becomes interior) —
// so perimeter(a) + perimeter(b) - perimeter(union) = 2L.
//
// Returns 0 if the regions are farther apart than tol or if unioning
// them does not collapse to a single piece (they don't actually touch).
func SharedBoundaryLength(a, b Polygon, tol float64) float64 {
	if a.IsEmpty() || b.IsEmpty() {
		return 0
	}
	if a.Distance(b) > tol {
		return 0
	}
	u := a.Union(b)
	if u.Len() != 1 {
		return 0
	}
	merged := u.Largest()
	shared := (a.BoundaryLength() + b.BoundaryLength() - merged.BoundaryLength()) / 2
	if shared < 0 {
		return 0
	}
	return shared
}

// defaultFacadeStrip is the buffer width used by FacadeLength's
// area-to-length conversion. Small relative to any realistic unit
// dimension, so the strip-area approximation stays accurate.
const defaultFacadeStrip = 0.1

// FacadeLength estimates the length of inner's boundary that coincides
// with outer's boundary, for the containment case (inner ⊆ outer) where
// SharedBoundaryLength's adjacency identity does not apply: a unit sits
// entirely inside usable_area, so "facade" means the portion of its
// boundary that happens to run along outer's edge, not a shared wall
// between two disjoint regions.
//
// The approximation: shrink outer inward by a thin strip; whatever part
// of inner falls in the gap between outer and the shrunk outer must lie
// within strip metres of outer's boundary. That gap has area ≈
// facadeLength * strip for a thin strip, so dividing by strip recovers
// an estimate of the length.
func FacadeLength(inner, outer Polygon) float64 {
	return facadeLengthWithStrip(inner, outer, defaultFacadeStrip)
}

func facadeLengthWithStrip(inner, outer Polygon, strip float64) float64 {
	if inner.IsEmpty() || outer.IsEmpty() {
		return 0
	}
	shrunk := outer.Buffer(-strip)
	if shrunk.IsEmpty() {
		// The whole outer region is thinner than one strip: treat all of
		// inner's boundary as facade.
		return inner.BoundaryLength()
	}
	contact := inner.Difference(shrunk)
	return contact.Area() / strip
}
