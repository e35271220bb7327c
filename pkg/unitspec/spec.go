package unitspec

import (
	"math"
	"sort"
)

// randSource is the minimal surface unitspec needs from pkg/rng, kept as
// a local interface so this package does not otherwise depend on rng's
// concrete type.
type randSource interface {
	Float64Range(min, max float64) float64
}

// Spec is one concrete unit the packer must try to place.
type Spec struct {
	Type       string
	TargetArea float64
	MinArea    float64
	MaxArea    float64
	Priority   int

	// seq breaks priority ties in insertion order.
	seq int
}

// Seq returns the insertion-order tiebreaker recorded at Prepare time.
func (s Spec) Seq() int { return s.seq }

// Prepare materialises a Program into the ordered list of Specs the
// packer consumes. freeArea is the usable area minus cores and
// corridors, used only by StrategyFillAvailable to estimate a total unit
// count.
func Prepare(program Program, freeArea float64, algo Algorithm, rng randSource) ([]Spec, error) {
	if err := program.Validate(); err != nil {
		return nil, err
	}

	var specs []Spec
	switch program.Strategy {
	case StrategyCount:
		specs = prepareCount(program, rng)
	case StrategyFillAvailable:
		specs = prepareFillAvailable(program, freeArea, algo, rng)
	}

	for i := range specs {
		specs[i].seq = i
	}
	sort.SliceStable(specs, func(i, j int) bool {
		return specs[i].Priority < specs[j].Priority
	})
	return specs, nil
}

func prepareCount(program Program, rng randSource) []Spec {
	specs := make([]Spec, 0)
	for _, e := range program.Entries {
		for i := 0; i < e.Count; i++ {
			specs = append(specs, Spec{
				Type:       e.Type,
				TargetArea: rng.Float64Range(e.MinArea, e.MaxArea),
				MinArea:    e.MinArea,
				MaxArea:    e.MaxArea,
				Priority:   e.Priority,
			})
		}
	}
	return specs
}

func prepareFillAvailable(program Program, freeArea float64, algo Algorithm, rng randSource) []Spec {
	avgTarget := 0.0
	for _, e := range program.Entries {
		mid := (e.MinArea + e.MaxArea) / 2
		avgTarget += e.Percentage / 100 * mid
	}
	if avgTarget <= 0 {
		return nil
	}

	f := fillEfficiency(algo)
	n := int(math.Floor(freeArea / avgTarget * f))
	if n < program.TotalUnitsMin {
		n = program.TotalUnitsMin
	}
	if n > program.TotalUnitsMax {
		n = program.TotalUnitsMax
	}

	specs := make([]Spec, 0, n)
	for _, e := range program.Entries {
		count := int(math.Round(float64(n) * e.Percentage / 100))
		for i := 0; i < count; i++ {
			specs = append(specs, Spec{
				Type:       e.Type,
				TargetArea: rng.Float64Range(e.MinArea, e.MaxArea),
				MinArea:    e.MinArea,
				MaxArea:    e.MaxArea,
				Priority:   e.Priority,
			})
		}
	}
	return specs
}
