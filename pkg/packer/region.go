package packer

import (
	"math"

	"github.com/dshills/floorplangen/pkg/geometry"
	"github.com/dshills/floorplangen/pkg/rng"
	"github.com/dshills/floorplangen/pkg/unitspec"
)

// RegionPacker is the region-based ("legacy") packing algorithm: a
// multi-pass grid search (three passes, or four with IncludeGapFill) that
// scores candidate rectangles against
// progressively looser thresholds, subtracting each placement from the
// shrinking list of free regions.
type RegionPacker struct {
	// IncludeGapFill runs a final gap-fill pass (no facade, corridor
	// distance or corridor-facing threshold; 0.15 area match) before
	// giving up on a spec. Off by default to match the row-based packer's stricter
	// deferral behaviour when both run against the same program.
	IncludeGapFill bool
}

// NewRegionPacker returns a RegionPacker with its default pass set.
func NewRegionPacker() *RegionPacker { return &RegionPacker{} }

// Pack places specs into free, scoring candidates against boundary (for
// facade) and corridors (for corridor-facing requirements). r drives the
// region iteration order; the candidate grid always starts at each
// region's bounding-box minimum corner.
//
// Regions are shuffled before each pass, never sorted by area: placing the
// same few large regions first would starve smaller regions of any chance
// at an early, loose pass.
func (rp *RegionPacker) Pack(free geometry.MultiPolygon, specs []unitspec.Spec, corridors []geometry.Polygon, boundary geometry.Polygon, r *rng.RNG) Result {
	regions := free.Polygons()
	pending := specs
	var placed []Unit
	nextID := 0

	for _, pass := range DefaultPasses(rp.IncludeGapFill) {
		order := make([]int, len(regions))
		for i := range order {
			order[i] = i
		}
		r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		var stillPending []unitspec.Spec
		for _, spec := range pending {
			unit, newRegions, ok := placeOne(regions, order, spec, pass, corridors, boundary, nextID)
			if ok {
				placed = append(placed, unit)
				regions = newRegions
				nextID++
				// Re-derive a shuffled order over the (now different-length)
				// region list for the next spec in this pass.
				order = make([]int, len(regions))
				for i := range order {
					order[i] = i
				}
				r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
			} else {
				stillPending = append(stillPending, spec)
			}
		}
		pending = stillPending
	}

	deferred := make([]Deferred, 0, len(pending))
	for _, s := range pending {
		deferred = append(deferred, Deferred{Type: s.Type, TargetArea: s.TargetArea, Reason: "no pass placed this spec"})
	}
	return Result{Units: placed, Deferred: deferred}
}

// placeOne searches regions (visited in the given shuffled order) for the
// best-scoring candidate satisfying pass's thresholds, commits it by
// subtracting it from the region it came from, and returns the updated
// region list.
func placeOne(regions []geometry.Polygon, order []int, spec unitspec.Spec, pass PassConfig, corridors []geometry.Polygon, boundary geometry.Polygon, nextID int) (Unit, []geometry.Polygon, bool) {
	var best geometry.Polygon
	var bestScore float64
	var bestRegionIdx int
	found := false

	for _, idx := range order {
		region := regions[idx]
		if region.Area() < spec.TargetArea*0.3 {
			continue
		}
		cand, score, ok := bestCandidateInRegion(region, spec, pass, corridors, boundary)
		if !ok {
			continue
		}
		if !found || score > bestScore {
			best, bestScore, bestRegionIdx, found = cand, score, idx, true
		}
		if saturated(score) {
			break
		}
	}
	if !found {
		return Unit{}, regions, false
	}

	unit := newUnit(nextID, spec.Type, best)
	buffered := best.Buffer(wallBuffer)
	newRegions := make([]geometry.Polygon, 0, len(regions)+1)
	for i, region := range regions {
		if i != bestRegionIdx {
			newRegions = append(newRegions, region)
			continue
		}
		for _, piece := range region.Difference(buffered).Polygons() {
			newRegions = append(newRegions, piece)
		}
	}
	return unit, newRegions, true
}

// wallBuffer is subtracted around a committed unit before it is removed
// from the free-region list, leaving room for the wall between it and
// whatever gets placed next. Set toward the wide end of the viable range
// since the region-based algorithm's fragmentation is already its weak
// point, and a thicker buffer keeps adjacent candidates from being
// rejected by slivers at the wall-to-wall boundary.
const wallBuffer = 0.15

// gridSpacingFactor scales candidate spacing by region size: finer
// sampling in small regions where placements are tight, coarser in
// large regions where it would otherwise be wasteful.
func gridSpacingFactor(regionArea float64) float64 {
	switch {
	case regionArea < 100:
		return 0.15
	case regionArea < 500:
		return 0.20
	default:
		return 0.25
	}
}

// bestCandidateInRegion grid-samples candidate rectangles within region,
// clips each to region, and returns the highest-scoring one that passes
// pass's thresholds.
func bestCandidateInRegion(region geometry.Polygon, spec unitspec.Spec, pass PassConfig, corridors []geometry.Polygon, boundary geometry.Polygon) (geometry.Polygon, float64, bool) {
	width, depth := unitDims(spec.TargetArea)
	s := gridSpacingFactor(region.Area())
	stepX := math.Max(0.2, width*s)
	stepY := math.Max(0.2, depth*s)

	b := region.Bounds()
	var best geometry.Polygon
	var bestScore float64
	found := false
	attempts := 0

	for y := b.MinY; y < b.MaxY && attempts < pass.MaxAttempts; y += stepY {
		for x := b.MinX; x < b.MaxX && attempts < pass.MaxAttempts; x += stepX {
			attempts++
			rectPoly, err := geometry.RectPolygon(x, y, x+width, y+depth)
			if err != nil {
				continue
			}
			clip := geometry.ClipMulti(rectPoly, region)
			if clip.Len() != 1 {
				continue
			}
			cand := clip.Largest()
			if cand.Area() < spec.TargetArea*pass.MinAreaMatch {
				continue
			}

			facade := geometry.FacadeLength(cand, boundary)
			if facade < pass.MinPerimeter {
				continue
			}

			corridorDist, facingWidth, contact := corridorMetrics(cand, corridors)
			if corridorDist > pass.MaxCorridorDistance {
				continue
			}
			if facingWidth < pass.MinCorridorFacingWidth {
				continue
			}

			score := candidateScore(cand.Area(), spec.TargetArea, facade, corridorDist, pass.MaxCorridorDistance, contact)
			if !found || score > bestScore {
				best, bestScore, found = cand, score, true
			}
			if saturated(score) {
				return best, bestScore, true
			}
		}
	}
	return best, bestScore, found
}

// corridorMetrics returns the candidate's distance to the nearest
// corridor piece (0 when there are no corridors), the total length of its
// boundary running along any corridor, and a contact value equal to that
// shared length (non-zero only when some boundary is actually shared).
func corridorMetrics(cand geometry.Polygon, corridors []geometry.Polygon) (distance, facingWidth, contact float64) {
	distance = math.Inf(1)
	for _, c := range corridors {
		d := cand.Distance(c)
		if d < distance {
			distance = d
		}
		facingWidth += geometry.SharedBoundaryLength(cand, c, 0.1)
	}
	if math.IsInf(distance, 1) {
		distance = 0
	}
	if facingWidth > 0 {
		contact = facingWidth
	}
	return distance, facingWidth, contact
}

// unitDims computes a candidate footprint's width/depth from its target
// area: width = sqrt(target*1.3), depth = target/width — slightly wider
// than deep.
func unitDims(area float64) (width, depth float64) {
	width = math.Sqrt(area * 1.3)
	depth = area / width
	return width, depth
}
