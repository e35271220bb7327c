package packer

import (
	"math"
	"testing"
)

func TestCandidateScorePerfectMatch(t *testing.T) {
	s := candidateScore(50, 50, 3.0, 0, 0.5, 1.0)
	if s != scoreMax {
		t.Errorf("perfect candidate score = %v, want %v", s, scoreMax)
	}
}

func TestCandidateScoreAreaMismatchSymmetric(t *testing.T) {
	over := candidateScore(60, 50, 3.0, 0, 0.5, 1.0)
	under := candidateScore(40, 50, 3.0*40.0/60.0, 0, 0.5, 1.0)
	// area_match itself is symmetric around the ratio, not the scores in
	// general (perimeter differs here), so just check area_match in
	// isolation via equal facade/corridor terms.
	sameFacadeOver := candidateScore(60, 50, 3.0, 0, 0.5, 1.0)
	sameFacadeUnder := candidateScore(50.0*50.0/60.0, 50, 3.0, 0, 0.5, 1.0)
	if math.Abs(sameFacadeOver-over) > 1e-9 {
		t.Fatal("sanity check setup wrong")
	}
	_ = under
	if math.Abs(sameFacadeOver-sameFacadeUnder) > 1e-9 {
		t.Errorf("area_match should be symmetric in the ratio: over=%v under=%v", sameFacadeOver, sameFacadeUnder)
	}
}

func TestCandidateScoreNoCorridorCapAlwaysFull(t *testing.T) {
	s := candidateScore(50, 50, 0, 100, math.Inf(1), 0)
	// corridor_score is always 1 when uncapped: 8 + 0 + 4 + 0 = 12
	if s != 12 {
		t.Errorf("gap-fill-pass score = %v, want 12", s)
	}
}

func TestSaturatedThreshold(t *testing.T) {
	if !saturated(0.75 * scoreMax) {
		t.Error("exactly at threshold should saturate")
	}
	if saturated(0.75*scoreMax - 0.01) {
		t.Error("just below threshold should not saturate")
	}
}
