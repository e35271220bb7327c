package core

import (
	"fmt"
	"math"

	"github.com/dshills/floorplangen/pkg/geometry"
)

// LocationHint biases where a single core is offset toward within the
// usable area. Dual and quad placements do not read it.
type LocationHint string

const (
	LocationCenter LocationHint = "center"
	LocationNorth  LocationHint = "north"
	LocationSouth  LocationHint = "south"
	LocationEast   LocationHint = "east"
	LocationWest   LocationHint = "west"
	LocationAuto   LocationHint = "auto"
)

// minAreaFraction is the fraction of the requested per-core area a
// clipped candidate must retain to be accepted.
const minAreaFraction = 0.5

// offsetFraction is the fraction of bounds width/height a single or dual
// core placement is shifted toward its hinted direction.
const offsetFraction = 0.20

// cornerOffsetFraction is the fraction of bounds width/height each quad
// core is shifted toward its corner.
const cornerOffsetFraction = 0.25

// Place positions 1, 2, or 4 service cores inside usable, each targeting
// areaPerCore square metres. Returns an empty slice (not an error) if no
// candidate placement can retain minAreaFraction of its requested area
// after clipping — callers must treat cores == nil as "abort this
// variant".
func Place(usable geometry.Polygon, count int, areaPerCore float64, hint LocationHint) ([]geometry.Polygon, error) {
	if usable.IsEmpty() {
		return nil, nil
	}
	if areaPerCore <= 0 {
		return nil, fmt.Errorf("core: areaPerCore must be > 0, got %v", areaPerCore)
	}

	switch count {
	case 1:
		return placeSingle(usable, areaPerCore, hint)
	case 2:
		return placeDual(usable, areaPerCore)
	case 4:
		return placeQuad(usable, areaPerCore)
	default:
		return nil, fmt.Errorf("core: count must be 1, 2, or 4, got %d", count)
	}
}

// dims returns a near-square footprint: width = sqrt(0.9·area), so it is
// slightly deeper than it is wide.
func dims(area float64) (width, depth float64) {
	width = math.Sqrt(area * 0.9)
	depth = area / width
	return
}

func placeSingle(usable geometry.Polygon, area float64, hint LocationHint) ([]geometry.Polygon, error) {
	b := usable.Bounds()
	centroid, ok := usable.Centroid()
	if !ok {
		return nil, nil
	}
	offset := hintOffset(hint, b)
	center := geometry.Point{X: centroid.X + offset.X, Y: centroid.Y + offset.Y}

	width, depth := dims(area)
	rect, err := geometry.RectPolygonCentered(center, width, depth)
	if err != nil {
		return nil, fmt.Errorf("core: building single core rect: %w", err)
	}
	clipped := geometry.Clip(rect, usable)
	if clipped.Area() < area*minAreaFraction {
		return nil, nil
	}
	return []geometry.Polygon{clipped}, nil
}

// hintOffset returns the (dx, dy) nudge applied to the usable area's
// centroid for a directional hint, scaled by offsetFraction of the
// bounding box extents. LocationCenter and LocationAuto apply no offset.
func hintOffset(hint LocationHint, b geometry.Bounds) geometry.Point {
	switch hint {
	case LocationNorth:
		return geometry.Point{X: 0, Y: offsetFraction * b.Height()}
	case LocationSouth:
		return geometry.Point{X: 0, Y: -offsetFraction * b.Height()}
	case LocationEast:
		return geometry.Point{X: offsetFraction * b.Width(), Y: 0}
	case LocationWest:
		return geometry.Point{X: -offsetFraction * b.Width(), Y: 0}
	default: // center, auto
		return geometry.Point{}
	}
}

// placeDual places two cores at opposite ends of the long axis: east/west
// if the bounds are wider than 1.5x their height, north/south otherwise.
func placeDual(usable geometry.Polygon, areaPerCore float64) ([]geometry.Polygon, error) {
	b := usable.Bounds()
	width, depth := dims(areaPerCore)

	var centers []geometry.Point
	if b.Width() > 1.5*b.Height() {
		centers = []geometry.Point{
			{X: b.MinX + offsetFraction*b.Width(), Y: b.Center().Y},
			{X: b.MaxX - offsetFraction*b.Width(), Y: b.Center().Y},
		}
	} else {
		centers = []geometry.Point{
			{X: b.Center().X, Y: b.MinY + offsetFraction*b.Height()},
			{X: b.Center().X, Y: b.MaxY - offsetFraction*b.Height()},
		}
	}

	return clipCandidates(usable, centers, width, depth, areaPerCore)
}

// placeQuad places one core near each corner, offset cornerOffsetFraction
// of the bounds extent on both axes.
func placeQuad(usable geometry.Polygon, areaPerCore float64) ([]geometry.Polygon, error) {
	b := usable.Bounds()
	width, depth := dims(areaPerCore)
	dx := cornerOffsetFraction * b.Width()
	dy := cornerOffsetFraction * b.Height()

	centers := []geometry.Point{
		{X: b.MinX + dx, Y: b.MinY + dy},
		{X: b.MaxX - dx, Y: b.MinY + dy},
		{X: b.MinX + dx, Y: b.MaxY - dy},
		{X: b.MaxX - dx, Y: b.MaxY - dy},
	}

	return clipCandidates(usable, centers, width, depth, areaPerCore)
}

// clipCandidates builds a rectangle at each center, clips it to usable,
// and rejects the whole placement (returning nil, nil) if any candidate
// falls below minAreaFraction of its requested area — cores must be
// disjoint and each individually viable, not a partial set.
func clipCandidates(usable geometry.Polygon, centers []geometry.Point, width, depth, areaPerCore float64) ([]geometry.Polygon, error) {
	out := make([]geometry.Polygon, 0, len(centers))
	for _, c := range centers {
		rect, err := geometry.RectPolygonCentered(c, width, depth)
		if err != nil {
			return nil, fmt.Errorf("core: building core rect: %w", err)
		}
		clipped := geometry.Clip(rect, usable)
		if clipped.Area() < areaPerCore*minAreaFraction {
			return nil, nil
		}
		out = append(out, clipped)
	}
	return out, nil
}
