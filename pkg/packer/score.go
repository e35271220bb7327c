package packer

import "math"

// scoreMax is the maximum attainable score (8 + 3 + 4 + 2), used to derive
// the saturation threshold region-based packing exits early on.
const scoreMax = 17.0

// saturationFraction is the fraction of scoreMax at which a candidate is
// considered "good enough" and the remaining grid search for that spec is
// abandoned.
const saturationFraction = 0.75

// candidateScore computes the weighted score:
//
//	score = 8*area_match + 3*perimeter_score + 4*corridor_score + 2*contact_bonus
//
// areaMatch is min(actual/target, target/actual); perimeterScore saturates
// at 3 m of outer-boundary facade; corridorScore decays linearly to 0 at
// maxCorridorDistance (or is always 1 when that cap is infinite, the
// gap-fill pass's case); contactBonus rewards a candidate that sits flush
// against a corridor (within 0.1 m).
func candidateScore(actualArea, targetArea, facadeLength, corridorDistance, maxCorridorDistance, corridorContact float64) float64 {
	areaMatch := 1.0
	if actualArea > 0 && targetArea > 0 {
		areaMatch = math.Min(actualArea/targetArea, targetArea/actualArea)
	}
	perimeterScore := math.Min(facadeLength/3.0, 1.0)

	corridorScore := 1.0
	if !math.IsInf(maxCorridorDistance, 1) && maxCorridorDistance > 0 {
		corridorScore = math.Max(0, 1-corridorDistance/maxCorridorDistance)
	}

	contactBonus := 0.0
	if corridorContact > 0 && corridorDistance <= 0.1 {
		contactBonus = 1
	}

	return 8*areaMatch + 3*perimeterScore + 4*corridorScore + 2*contactBonus
}

func saturated(s float64) bool {
	return s >= saturationFraction*scoreMax
}
