package geometry

// RectPolygon builds an axis-aligned rectangular Polygon directly from
// bounds, the construction shape core placement and corridor pattern
// emission both use throughout pkg/core and pkg/corridor.
func RectPolygon(minX, minY, maxX, maxY float64) (Polygon, error) {
	return NewPolygon(Rect(minX, minY, maxX, maxY))
}

// RectPolygonCentered builds a width x height rectangle centred on c.
func RectPolygonCentered(c Point, width, height float64) (Polygon, error) {
	return NewPolygon(RectCentered(c, width, height))
}

// Clip intersects a candidate rectangle with usable, returning the single
// largest piece (callers that need to reject multi-piece clips check
// MultiPolygon.Len() themselves via ClipMulti).
func Clip(candidate, usable Polygon) Polygon {
	return candidate.Intersection(usable).Largest()
}

// ClipMulti intersects a candidate rectangle with usable and returns the
// full (possibly fragmented) result, for callers that must reject
// candidates whose clip is not a single polygon.
func ClipMulti(candidate, usable Polygon) MultiPolygon {
	return candidate.Intersection(usable)
}
