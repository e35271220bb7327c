package floorplan

import (
	"context"
	"fmt"

	"github.com/dshills/floorplangen/pkg/core"
	"github.com/dshills/floorplangen/pkg/corridor"
	"github.com/dshills/floorplangen/pkg/geometry"
	"github.com/dshills/floorplangen/pkg/packer"
	"github.com/dshills/floorplangen/pkg/rng"
	"github.com/dshills/floorplangen/pkg/unitspec"
)

// Generator is the main entry point for floor plan generation.
// Implementations must be deterministic: the same boundary, obstacles,
// config, and seed produce an identical FloorPlan.
//
// Generate orchestrates the five-stage pipeline in strict sequence:
//  1. Geometry kernel - derives the usable area
//  2. Core placement
//  3. Corridor network synthesis
//  4. Unit packing
//  5. (validation runs separately, read-only, over the result)
type Generator interface {
	Generate(ctx context.Context, boundary geometry.Polygon, obstacles []geometry.Polygon, cfg *Config) (*FloorPlan, *Metrics, error)
}

// DefaultGenerator implements Generator using the pkg/core, pkg/corridor,
// and pkg/packer components directly.
type DefaultGenerator struct{}

// NewGenerator returns a DefaultGenerator.
func NewGenerator() Generator { return &DefaultGenerator{} }

// Generate runs the pipeline once with cfg.Seed. It returns a nil
// FloorPlan (not an error) when a stage fails its own feasibility check
// (no cores fit, no corridor can be emitted): infeasible geometric
// constraints mean the affected variant is simply abandoned, not treated
// as a generation bug.
func (g *DefaultGenerator) Generate(ctx context.Context, boundary geometry.Polygon, obstacles []geometry.Polygon, cfg *Config) (*FloorPlan, *Metrics, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("floorplan: invalid config: %w", err)
	}
	if boundary.IsEmpty() {
		return nil, nil, fmt.Errorf("floorplan: boundary must not be empty")
	}

	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}

	usable := deriveUsableArea(boundary, obstacles)
	if usable.IsEmpty() {
		return nil, nil, fmt.Errorf("floorplan: usable area is empty after removing obstacles")
	}

	configHash := cfg.Hash()
	coreRNG := rng.NewRNG(cfg.Seed, "core", configHash)
	packerRNG := rng.NewRNG(cfg.Seed, "packer", configHash)
	_ = coreRNG // core placement is deterministic given inputs; reserved for future jitter

	cores, err := core.Place(usable, cfg.Core.Count, cfg.Core.AreaTarget, cfg.Core.PreferredLocation)
	if err != nil {
		return nil, nil, fmt.Errorf("floorplan: core placement: %w", err)
	}
	if len(cores) == 0 {
		return nil, nil, nil
	}

	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}

	corridors, err := corridor.Generate(usable, cores, corridor.Config{
		WidthTarget: cfg.Circulation.CorridorWidthTarget,
		Pattern:     cfg.Circulation.Pattern,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("floorplan: corridor generation: %w", err)
	}
	if len(corridors) == 0 {
		return nil, nil, nil
	}

	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}

	free := freeArea(usable, cores, corridors)
	specs, err := unitspec.Prepare(cfg.Program, free.Area(), cfg.Algorithm, packerRNG)
	if err != nil {
		return nil, nil, fmt.Errorf("floorplan: preparing unit specs: %w", err)
	}

	p := packer.ForAlgorithm(cfg.Algorithm, boundary)
	result := p.Pack(free, specs, corridors, packerRNG)

	units := make([]Unit, len(result.Units))
	for i, u := range result.Units {
		units[i] = Unit{ID: u.ID, Type: u.Type, Polygon: u.Polygon, Area: u.Area, Centroid: u.Centroid}
	}

	plan := &FloorPlan{
		Boundary:   boundary,
		UsableArea: usable,
		Cores:      cores,
		Corridors:  corridors,
		Units:      units,
	}
	metrics := computeMetrics(plan, len(specs), len(result.Deferred), string(cfg.Algorithm))
	return plan, metrics, nil
}

// deriveUsableArea computes boundary \ union(obstacles). Obstacle removal
// can fragment the boundary; the largest resulting piece is taken as the
// usable area, matching the core placer's single-polygon input contract.
func deriveUsableArea(boundary geometry.Polygon, obstacles []geometry.Polygon) geometry.Polygon {
	if len(obstacles) == 0 {
		return boundary
	}
	remaining := geometry.NewMultiPolygon(boundary)
	for _, o := range obstacles {
		var next []geometry.Polygon
		for _, piece := range remaining.Polygons() {
			next = append(next, piece.Difference(o).Polygons()...)
		}
		remaining = geometry.NewMultiPolygon(next...)
	}
	return remaining.Largest()
}

// freeArea computes usable \ (cores ∪ corridors), the packer's input
// region, as a MultiPolygon since subtracting cores and corridors from an
// irregular usable area routinely fragments it.
func freeArea(usable geometry.Polygon, cores, corridors []geometry.Polygon) geometry.MultiPolygon {
	remaining := geometry.NewMultiPolygon(usable)
	subtract := func(obstacle geometry.Polygon) {
		var next []geometry.Polygon
		for _, piece := range remaining.Polygons() {
			next = append(next, piece.Difference(obstacle).Polygons()...)
		}
		remaining = geometry.NewMultiPolygon(next...)
	}
	for _, c := range cores {
		subtract(c)
	}
	for _, c := range corridors {
		subtract(c)
	}
	return remaining
}
