// Package geometry is the planar geometry kernel underlying the floor plan
// generator. It wraps github.com/peterstace/simplefeatures/geom behind a
// small, immutable value API so the rest of the core never imports geom
// directly: Polygon and MultiPolygon construction, area, bounds, centroid,
// containment, distance, buffering, and the boolean operations (union,
// intersection, difference).
//
// Every operation returns a fresh value; nothing is ever mutated in place.
// A kernel error from a boolean op or buffer is reported as an empty
// result (IsEmpty()) rather than surfaced as a panic or error. No
// make-valid repair is applied: a self-intersecting result is returned as
// the kernel produced it.
package geometry
