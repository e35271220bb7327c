package unitspec

import "testing"

// fixedRNG always returns the midpoint of [min,max], for deterministic
// assertions on counts/ordering rather than specific drawn areas.
type fixedRNG struct{}

func (fixedRNG) Float64Range(min, max float64) float64 { return (min + max) / 2 }

func TestPrepareCountStrategy(t *testing.T) {
	program := Program{
		Strategy: StrategyCount,
		Entries: []ProgramEntry{
			{Type: "Studio", Count: 5, MinArea: 25, MaxArea: 35, Priority: 0},
			{Type: "1BR", Count: 10, MinArea: 45, MaxArea: 65, Priority: 1},
		},
	}
	specs, err := Prepare(program, 1000, AlgorithmRowBased, fixedRNG{})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if len(specs) != 15 {
		t.Fatalf("got %d specs, want 15", len(specs))
	}
	for i := 1; i < len(specs); i++ {
		if specs[i].Priority < specs[i-1].Priority {
			t.Errorf("specs not sorted by priority at index %d", i)
		}
	}
}

func TestPrepareFillAvailablePercentagesSumTo100(t *testing.T) {
	program := Program{
		Strategy: StrategyFillAvailable,
		Entries: []ProgramEntry{
			{Type: "Studio", Percentage: 20, MinArea: 25, MaxArea: 35, Priority: 0},
			{Type: "1BR", Percentage: 40, MinArea: 45, MaxArea: 65, Priority: 1},
			{Type: "2BR", Percentage: 30, MinArea: 65, MaxArea: 85, Priority: 2},
			{Type: "3BR", Percentage: 10, MinArea: 85, MaxArea: 105, Priority: 3},
		},
		TotalUnitsMin: 10,
		TotalUnitsMax: 100,
	}
	specs, err := Prepare(program, 3000, AlgorithmRowBased, fixedRNG{})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if len(specs) == 0 {
		t.Fatal("expected a non-empty spec list")
	}
}

func TestPrepareFillAvailableClampsTotal(t *testing.T) {
	program := Program{
		Strategy: StrategyFillAvailable,
		Entries: []ProgramEntry{
			{Type: "Studio", Percentage: 100, MinArea: 25, MaxArea: 25, Priority: 0},
		},
		TotalUnitsMin: 5,
		TotalUnitsMax: 8,
	}
	// A tiny free area would otherwise estimate far fewer than 5 units.
	specs, err := Prepare(program, 1, AlgorithmRowBased, fixedRNG{})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if len(specs) != 5 {
		t.Fatalf("got %d specs, want clamped to TotalUnitsMin=5", len(specs))
	}
}

func TestPrepareRejectsBadPercentages(t *testing.T) {
	program := Program{
		Strategy: StrategyFillAvailable,
		Entries: []ProgramEntry{
			{Type: "Studio", Percentage: 50, MinArea: 25, MaxArea: 35},
		},
		TotalUnitsMin: 1,
		TotalUnitsMax: 10,
	}
	if _, err := Prepare(program, 1000, AlgorithmRowBased, fixedRNG{}); err == nil {
		t.Error("expected an error for percentages not summing to 100")
	}
}

func TestPrepareTiesBrokenByInsertionOrder(t *testing.T) {
	program := Program{
		Strategy: StrategyCount,
		Entries: []ProgramEntry{
			{Type: "A", Count: 1, MinArea: 10, MaxArea: 10, Priority: 0},
			{Type: "B", Count: 1, MinArea: 10, MaxArea: 10, Priority: 0},
			{Type: "C", Count: 1, MinArea: 10, MaxArea: 10, Priority: 0},
		},
	}
	specs, err := Prepare(program, 1000, AlgorithmRowBased, fixedRNG{})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	want := []string{"A", "B", "C"}
	for i, w := range want {
		if specs[i].Type != w {
			t.Errorf("specs[%d].Type = %s, want %s", i, specs[i].Type, w)
		}
	}
}
