package unitspec

import "fmt"

// Strategy selects how a UnitProgram's entries are interpreted.
type Strategy string

const (
	// StrategyCount lists explicit per-type counts.
	StrategyCount Strategy = "count"
	// StrategyFillAvailable lists percentages summing to 100 and lets
	// Prepare estimate how many units of each type fit the free area.
	StrategyFillAvailable Strategy = "fill_available"
)

// Algorithm selects which packer implementation specs are being prepared
// for; the fill_available efficiency target differs between them.
type Algorithm string

const (
	AlgorithmRegionBased Algorithm = "region_based_v2"
	AlgorithmRowBased    Algorithm = "row_based_v3"
)

// fillEfficiency is the f constant in N = floor((free_area/ā)*f),
// selected by which packer algorithm will run.
func fillEfficiency(algo Algorithm) float64 {
	if algo == AlgorithmRegionBased {
		return 0.85
	}
	return 0.95
}

// ProgramEntry describes one required unit type.
type ProgramEntry struct {
	Type string

	// Count is used by StrategyCount; ignored otherwise.
	Count int

	// Percentage is used by StrategyFillAvailable; ignored otherwise.
	// All entries' percentages must sum to 100.
	Percentage float64

	MinArea float64
	MaxArea float64

	// Priority orders placement: lower is placed first.
	Priority int
}

// Program is the input-level description of a building's required unit
// mix, either as explicit counts or as percentages of an estimated total.
type Program struct {
	Strategy Strategy
	Entries  []ProgramEntry

	// TotalUnitsMin/Max clamp the estimated total unit count under
	// StrategyFillAvailable.
	TotalUnitsMin int
	TotalUnitsMax int
}

// Validate checks structural invariants of the program before it is
// materialised into specs.
func (p Program) Validate() error {
	if len(p.Entries) == 0 {
		return fmt.Errorf("unitspec: program has no entries")
	}
	switch p.Strategy {
	case StrategyCount:
		for i, e := range p.Entries {
			if e.Count < 0 {
				return fmt.Errorf("unitspec: entry[%d] %q has negative count %d", i, e.Type, e.Count)
			}
			if e.MinArea <= 0 || e.MaxArea < e.MinArea {
				return fmt.Errorf("unitspec: entry[%d] %q has invalid area range [%v,%v]", i, e.Type, e.MinArea, e.MaxArea)
			}
		}
	case StrategyFillAvailable:
		total := 0.0
		for i, e := range p.Entries {
			if e.Percentage < 0 {
				return fmt.Errorf("unitspec: entry[%d] %q has negative percentage %v", i, e.Type, e.Percentage)
			}
			if e.MinArea <= 0 || e.MaxArea < e.MinArea {
				return fmt.Errorf("unitspec: entry[%d] %q has invalid area range [%v,%v]", i, e.Type, e.MinArea, e.MaxArea)
			}
			total += e.Percentage
		}
		if total < 99.0 || total > 101.0 {
			return fmt.Errorf("unitspec: fill_available percentages must sum to ~100, got %v", total)
		}
		if p.TotalUnitsMin <= 0 || p.TotalUnitsMax < p.TotalUnitsMin {
			return fmt.Errorf("unitspec: invalid total unit bounds [%d,%d]", p.TotalUnitsMin, p.TotalUnitsMax)
		}
	default:
		return fmt.Errorf("unitspec: unknown strategy %q", p.Strategy)
	}
	return nil
}
