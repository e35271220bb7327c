package packer

import (
	"math"
	"sort"

	"github.com/dshills/floorplangen/pkg/geometry"
	"github.com/dshills/floorplangen/pkg/rng"
	"github.com/dshills/floorplangen/pkg/unitspec"
)

// rowMinArea is the smallest strip piece worth packing into; a clip below
// this is the sliver left after a corridor runs close to the boundary.
const rowMinArea = 10.0

// rowAreaMatch is the minimum fraction of a spec's target area a clipped
// strip placement must retain to be accepted.
const rowAreaMatch = 0.6

type orientation int

const (
	orientationHorizontal orientation = iota
	orientationVertical
	orientationMixed
)

// RowPacker is the row-based ("preferred") packing algorithm: it slices
// the free area into strips running parallel to the dominant corridor
// direction, then packs each strip contiguously, largest specs first.
// Unlike RegionPacker it never fragments the free area further than the
// initial strip cut, trading a coarser end-of-row fit for placements that
// never fall below rowAreaMatch.
type RowPacker struct{}

// NewRowPacker returns a RowPacker.
func NewRowPacker() *RowPacker { return &RowPacker{} }

// Pack places specs into free, using corridors to determine strip
// direction. r is accepted for interface symmetry with RegionPacker; the
// row-based algorithm's placement order is a deterministic area sort, not
// randomised, so r is unused here.
func (rp *RowPacker) Pack(free geometry.MultiPolygon, specs []unitspec.Spec, corridors []geometry.Polygon, r *rng.RNG) Result {
	_ = r
	if free.IsEmpty() || len(specs) == 0 {
		deferred := make([]Deferred, 0, len(specs))
		for _, s := range specs {
			deferred = append(deferred, Deferred{Type: s.Type, TargetArea: s.TargetArea, Reason: "no free area to pack"})
		}
		return Result{Deferred: deferred}
	}

	avgArea := averageTargetArea(specs)
	orient := dominantOrientation(corridors)
	rows := buildRows(free, corridors, orient, avgArea)

	sorted := make([]unitspec.Spec, len(specs))
	copy(sorted, specs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].TargetArea > sorted[j].TargetArea })

	var placed []Unit
	nextID := 0
	remaining := sorted
	for _, row := range rows {
		if len(remaining) == 0 {
			break
		}
		d := rowDepth(row, orient)
		if d <= 0 {
			continue
		}
		remaining = packRow(row, d, orient, remaining, &placed, &nextID)
	}

	deferred := make([]Deferred, 0, len(remaining))
	for _, s := range remaining {
		deferred = append(deferred, Deferred{Type: s.Type, TargetArea: s.TargetArea, Reason: "row space exhausted"})
	}
	return Result{Units: placed, Deferred: deferred}
}

func averageTargetArea(specs []unitspec.Spec) float64 {
	total := 0.0
	for _, s := range specs {
		total += s.TargetArea
	}
	return total / float64(len(specs))
}

// dominantOrientation classifies the corridor network's overall direction
// so strips run parallel to it: packing perpendicular to a corridor would
// leave every unit facing a narrow end rather than the corridor's length.
func dominantOrientation(corridors []geometry.Polygon) orientation {
	var hSum, vSum float64
	for _, c := range corridors {
		b := c.Bounds()
		switch {
		case b.Width() > 1.5*b.Height():
			hSum += b.Width()
		case b.Height() > 1.5*b.Width():
			vSum += b.Height()
		}
	}
	switch {
	case hSum > 0 && hSum >= 1.3*vSum:
		return orientationHorizontal
	case vSum > 0 && vSum >= 1.3*hSum:
		return orientationVertical
	default:
		return orientationMixed
	}
}

// buildRows cuts free into strips per orient: for a horizontal corridor
// network, a row runs the full width above and below each corridor piece;
// for vertical, a column runs the full height to its left and right; for
// mixed, strips fall back to fixed-depth horizontal bands across the
// whole free bounding box.
func buildRows(free geometry.MultiPolygon, corridors []geometry.Polygon, orient orientation, avgArea float64) []geometry.Polygon {
	switch orient {
	case orientationHorizontal:
		return buildRowsAlongCorridors(free, corridors, true)
	case orientationVertical:
		return buildRowsAlongCorridors(free, corridors, false)
	default:
		return buildRowsMixed(free, avgArea)
	}
}

func buildRowsAlongCorridors(free geometry.MultiPolygon, corridors []geometry.Polygon, horizontal bool) []geometry.Polygon {
	b := free.Bounds()
	var rows []geometry.Polygon
	for _, c := range corridors {
		cb := c.Bounds()
		var near, far geometry.Polygon
		var err error
		if horizontal {
			near, err = geometry.RectPolygon(b.MinX, cb.MaxY, b.MaxX, b.MaxY)
			if err == nil {
				rows = append(rows, clipToFreePieces(near, free, rowMinArea)...)
			}
			far, err = geometry.RectPolygon(b.MinX, b.MinY, b.MaxX, cb.MinY)
			if err == nil {
				rows = append(rows, clipToFreePieces(far, free, rowMinArea)...)
			}
		} else {
			near, err = geometry.RectPolygon(cb.MaxX, b.MinY, b.MaxX, b.MaxY)
			if err == nil {
				rows = append(rows, clipToFreePieces(near, free, rowMinArea)...)
			}
			far, err = geometry.RectPolygon(b.MinX, b.MinY, cb.MinX, b.MaxY)
			if err == nil {
				rows = append(rows, clipToFreePieces(far, free, rowMinArea)...)
			}
		}
	}
	if len(rows) == 0 {
		// No corridor carried a usable bounding box (e.g. a single small
		// piece): fall back to treating the free area itself as one row
		// per piece.
		return clipToFreePieces(mustRect(b), free, rowMinArea)
	}
	return rows
}

func buildRowsMixed(free geometry.MultiPolygon, avgArea float64) []geometry.Polygon {
	depth := math.Sqrt(avgArea) * 1.3
	if depth <= 0 {
		depth = 3.0
	}
	b := free.Bounds()
	var rows []geometry.Polygon
	for y := b.MinY; y < b.MaxY; y += depth {
		top := math.Min(y+depth, b.MaxY)
		strip, err := geometry.RectPolygon(b.MinX, y, b.MaxX, top)
		if err != nil {
			continue
		}
		rows = append(rows, clipToFreePieces(strip, free, rowMinArea)...)
	}
	return rows
}

func clipToFreePieces(candidate geometry.Polygon, free geometry.MultiPolygon, minArea float64) []geometry.Polygon {
	var out []geometry.Polygon
	for _, piece := range free.Polygons() {
		clipped := geometry.Clip(candidate, piece)
		if clipped.Area() >= minArea {
			out = append(out, clipped)
		}
	}
	return out
}

func mustRect(b geometry.Bounds) geometry.Polygon {
	p, err := geometry.RectPolygon(b.MinX, b.MinY, b.MaxX, b.MaxY)
	if err != nil {
		return geometry.Empty
	}
	return p
}

// rowDepth returns the dimension units are sliced against within the row:
// height for a horizontal row (units stack left-to-right across its
// width), width for a vertical row.
func rowDepth(row geometry.Polygon, orient orientation) float64 {
	b := row.Bounds()
	if orient == orientationVertical {
		return b.Width()
	}
	return b.Height()
}

// packRow lays remaining specs (largest-area first) end to end along
// row's long axis, each sized to depth d so its area matches its target,
// accepting a placement only if the clipped result retains at least
// rowAreaMatch of the target. Specs that never fit the row are returned
// unchanged for the next row to try.
func packRow(row geometry.Polygon, d float64, orient orientation, specs []unitspec.Spec, placed *[]Unit, nextID *int) []unitspec.Spec {
	b := row.Bounds()
	horizontal := orient != orientationVertical

	var pos float64
	var limit float64
	if horizontal {
		pos, limit = b.MinX, b.MaxX
	} else {
		pos, limit = b.MinY, b.MaxY
	}

	remaining := make([]unitspec.Spec, len(specs))
	copy(remaining, specs)

	for {
		placedAny := false
		for i, spec := range remaining {
			unitWidth := spec.TargetArea / d
			if pos+unitWidth > limit+0.1 {
				continue
			}

			var rectPoly geometry.Polygon
			var err error
			if horizontal {
				rectPoly, err = geometry.RectPolygon(pos, b.MinY, pos+unitWidth, b.MaxY)
			} else {
				rectPoly, err = geometry.RectPolygon(b.MinX, pos, b.MaxX, pos+unitWidth)
			}
			if err != nil {
				continue
			}
			clipped := geometry.Clip(rectPoly, row)
			if clipped.Area() < spec.TargetArea*rowAreaMatch {
				continue
			}

			unit := newUnit(*nextID, spec.Type, clipped)
			*nextID++
			*placed = append(*placed, unit)
			pos += unitWidth

			remaining = append(remaining[:i:i], remaining[i+1:]...)
			placedAny = true
			break
		}
		if !placedAny {
			break
		}
	}
	return remaining
}
