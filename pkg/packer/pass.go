package packer

import "math"

// PassConfig is one loosening tier of the region-based packer's four-pass
// sweep.
type PassConfig struct {
	Name string

	// MinPerimeter is the minimum facade length (m) a candidate must
	// expose to the building's outer boundary.
	MinPerimeter float64

	// MaxCorridorDistance caps how far (m) a candidate may sit from the
	// nearest corridor piece. Inf means no cap (gap-fill pass).
	MaxCorridorDistance float64

	// MinCorridorFacingWidth is the minimum length (m) of candidate
	// boundary that must run along a corridor.
	MinCorridorFacingWidth float64

	// MinAreaMatch is the minimum fraction of TargetArea a clipped
	// candidate must retain to be accepted.
	MinAreaMatch float64

	// MaxAttempts bounds how many grid candidates this pass samples per
	// region before giving up on a spec.
	MaxAttempts int
}

// DefaultPasses returns the region-based packer's four tiers, strict to
// gap-fill. includeGapFill controls whether the last-resort pass (no
// perimeter or corridor-facing requirement) runs at all.
func DefaultPasses(includeGapFill bool) []PassConfig {
	passes := []PassConfig{
		{Name: "strict", MinPerimeter: 0.8, MaxCorridorDistance: 0.5, MinCorridorFacingWidth: 2.5, MinAreaMatch: 0.50, MaxAttempts: 300},
		{Name: "relaxed", MinPerimeter: 0.0, MaxCorridorDistance: 5.0, MinCorridorFacingWidth: 1.0, MinAreaMatch: 0.35, MaxAttempts: 500},
		{Name: "flexible", MinPerimeter: 0.0, MaxCorridorDistance: 15.0, MinCorridorFacingWidth: 0.0, MinAreaMatch: 0.25, MaxAttempts: 1500},
	}
	if includeGapFill {
		passes = append(passes, PassConfig{
			Name: "gap_fill", MinPerimeter: 0.0, MaxCorridorDistance: math.Inf(1),
			MinCorridorFacingWidth: 0.0, MinAreaMatch: 0.15, MaxAttempts: 3000,
		})
	}
	return passes
}
