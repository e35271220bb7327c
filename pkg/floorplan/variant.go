package floorplan

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/floorplangen/pkg/geometry"
	"github.com/dshills/floorplangen/pkg/rng"
	"github.com/dshills/floorplangen/pkg/validator"
)

// Variant is one complete, independently-seeded generation result: a
// floor plan, its metrics, its validator report, and a stable identifier.
type Variant struct {
	ID     string
	Number int
	Seed   uint64

	Plan    *FloorPlan
	Metrics *Metrics
	Report  validator.Report
}

// GenerateVariants runs cfg.VariantCount independent generations, each
// with its own derived seed and a small perturbation of core area and
// corridor width within their configured [min,max] ranges. Variants that
// come back infeasible (a nil plan from Generate) are skipped, not
// retried: the affected variant is abandoned and the others proceed.
func GenerateVariants(ctx context.Context, gen Generator, boundary geometry.Polygon, obstacles []geometry.Polygon, cfg *Config) ([]*Variant, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("floorplan: invalid config: %w", err)
	}

	variants := make([]*Variant, 0, cfg.VariantCount)
	for n := 0; n < cfg.VariantCount; n++ {
		select {
		case <-ctx.Done():
			return variants, ctx.Err()
		default:
		}

		variantCfg := *cfg
		variantSeed := deriveVariantSeed(cfg.Seed, n)
		variantCfg.Seed = variantSeed
		perturbVariant(&variantCfg, n)

		plan, metrics, err := gen.Generate(ctx, boundary, obstacles, &variantCfg)
		if err != nil {
			return variants, fmt.Errorf("floorplan: variant %d: %w", n, err)
		}
		if plan == nil {
			continue
		}

		report := validator.Validate(validator.Plan{
			Boundary:  plan.Boundary,
			Cores:     plan.Cores,
			Corridors: plan.Corridors,
			Units:     toUnitRefs(plan.Units),
		})

		variants = append(variants, &Variant{
			ID:      uuid.NewString(),
			Number:  n,
			Seed:    variantSeed,
			Plan:    plan,
			Metrics: metrics,
			Report:  report,
		})
	}
	return variants, nil
}

// deriveVariantSeed derives a variant's seed from the master seed via the
// same stage-derivation scheme pkg/rng uses for pipeline stages, keyed by
// the variant number so successive variants are decorrelated but still
// fully determined by cfg.Seed.
func deriveVariantSeed(masterSeed uint64, variantNumber int) uint64 {
	r := rng.NewRNG(masterSeed, fmt.Sprintf("variant_%d", variantNumber), nil)
	return r.Uint64()
}

// perturbVariant nudges core area and corridor width within their
// configured ranges using the variant's own seed, so successive variants
// explore the constraint space rather than repeating the same plan.
func perturbVariant(cfg *Config, variantNumber int) {
	r := rng.NewRNG(cfg.Seed, fmt.Sprintf("perturb_%d", variantNumber), cfg.Hash())
	if cfg.Core.AreaMax > cfg.Core.AreaMin {
		cfg.Core.AreaTarget = r.Float64Range(cfg.Core.AreaMin, cfg.Core.AreaMax)
	}
	if cfg.Circulation.CorridorWidthMax > cfg.Circulation.CorridorWidthMin {
		cfg.Circulation.CorridorWidthTarget = r.Float64Range(cfg.Circulation.CorridorWidthMin, cfg.Circulation.CorridorWidthMax)
	}
}

func toUnitRefs(units []Unit) []validator.UnitRef {
	refs := make([]validator.UnitRef, len(units))
	for i, u := range units {
		refs[i] = validator.UnitRef{Type: u.Type, Polygon: u.Polygon}
	}
	return refs
}
