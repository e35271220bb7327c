package floorplan

import (
	"context"
	"testing"

	"github.com/dshills/floorplangen/pkg/core"
	"github.com/dshills/floorplangen/pkg/corridor"
	"github.com/dshills/floorplangen/pkg/geometry"
	"github.com/dshills/floorplangen/pkg/unitspec"
)

func rectBoundary(t *testing.T, w, h float64) geometry.Polygon {
	t.Helper()
	p, err := geometry.RectPolygon(0, 0, w, h)
	if err != nil {
		t.Fatalf("RectPolygon: %v", err)
	}
	return p
}

// s1Config builds a count-strategy Studio/1BR/2BR program for a plain
// rectangular boundary.
func s1Config(seed uint64) *Config {
	return &Config{
		Seed: seed,
		Core: CoreCfg{Count: 1, AreaMin: 20, AreaTarget: 35, AreaMax: 60, PreferredLocation: core.LocationCenter},
		Circulation: CirculationCfg{
			CorridorWidthMin: 2.2, CorridorWidthTarget: 2.4, CorridorWidthMax: 2.5,
			Pattern: corridor.PatternAuto,
		},
		Program: unitspec.Program{
			Strategy: unitspec.StrategyCount,
			Entries: []unitspec.ProgramEntry{
				{Type: "Studio", Count: 5, MinArea: 25, MaxArea: 35},
				{Type: "1BR", Count: 10, MinArea: 45, MaxArea: 65},
				{Type: "2BR", Count: 8, MinArea: 65, MaxArea: 85},
			},
		},
		Algorithm:    unitspec.AlgorithmRowBased,
		VariantCount: 1,
	}
}

// TestS1RectanglePlacesUnitsAndSatisfiesInvariants runs a plain 50x30
// rectangle through the full pipeline with a count-strategy program and
// checks the resulting units for disjointness, containment, and
// core-corridor connectivity.
func TestS1RectanglePlacesUnitsAndSatisfiesInvariants(t *testing.T) {
	boundary := rectBoundary(t, 50, 30)
	cfg := s1Config(1)
	gen := NewGenerator()

	plan, metrics, err := gen.Generate(context.Background(), boundary, nil, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan == nil {
		t.Fatal("expected a non-nil plan")
	}
	if metrics.UnitsCount == 0 {
		t.Fatal("expected at least one unit placed")
	}
	assertDisjointUnits(t, plan.Units)
	assertUnitsContained(t, plan.Units, plan.UsableArea)
	assertCoresTouchCorridors(t, plan.Cores, plan.Corridors)
}

// TestS2LShapeBoundaryFillAvailable runs an L-shaped boundary (a 70.4x50.4 m
// outer rectangle with a 60x40 m notch removed at (10,0)) through the full
// pipeline with a fill_available Studio/1BR/2BR/3BR program. The notch is
// supplied as an obstacle rather than baked into the boundary polygon, so
// Generate's deriveUsableArea exercises its Difference/Largest
// obstacle-subtraction path rather than the no-obstacle shortcut.
func TestS2LShapeBoundaryFillAvailable(t *testing.T) {
	outer := rectBoundary(t, 70.4, 50.4)
	notch, err := geometry.RectPolygon(10, 0, 70, 40)
	if err != nil {
		t.Fatalf("RectPolygon(notch): %v", err)
	}

	// Sanity-check the L-shape's area directly via the same
	// NewPolygon/Difference machinery Generate uses internally, confirming
	// the notch actually carves the expected area out of the outer rect.
	lShape := outer.Difference(notch).Largest()
	const wantArea = 70.4*50.4 - 60*40
	if gotArea := lShape.Area(); absf(gotArea-wantArea) > 0.01 {
		t.Fatalf("L-shape area = %.3f, want %.3f", gotArea, wantArea)
	}

	cfg := &Config{
		Seed: 2,
		Core: CoreCfg{Count: 1, AreaMin: 20, AreaTarget: 35, AreaMax: 60, PreferredLocation: core.LocationAuto},
		Circulation: CirculationCfg{
			CorridorWidthMin: 2.2, CorridorWidthTarget: 2.4, CorridorWidthMax: 2.5,
			Pattern: corridor.PatternAuto,
		},
		Program: unitspec.Program{
			Strategy: unitspec.StrategyFillAvailable,
			Entries: []unitspec.ProgramEntry{
				{Type: "Studio", Percentage: 20, MinArea: 25, MaxArea: 35},
				{Type: "1BR", Percentage: 40, MinArea: 45, MaxArea: 65},
				{Type: "2BR", Percentage: 30, MinArea: 65, MaxArea: 85},
				{Type: "3BR", Percentage: 10, MinArea: 85, MaxArea: 105},
			},
			TotalUnitsMin: 45,
			TotalUnitsMax: 50,
		},
		Algorithm:    unitspec.AlgorithmRowBased,
		VariantCount: 1,
	}

	gen := NewGenerator()
	plan, metrics, err := gen.Generate(context.Background(), outer, []geometry.Polygon{notch}, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan == nil {
		t.Fatal("expected a non-nil plan for the L-shaped boundary")
	}

	// fill_available always clamps its prepared spec count to
	// [TotalUnitsMin, TotalUnitsMax], so the program's 45-50 target is
	// requested of the packer regardless of how much of it physically
	// fits in 1148.16 m2 of usable area; the program-sizing guarantee is
	// what this scenario is actually exercising, not a claim that every
	// requested unit lands. See DESIGN.md's Open Question decisions for
	// why this scenario's coverage/corridor-ratio thresholds aren't
	// asserted literally.
	if metrics.RequestedUnits < 45 || metrics.RequestedUnits > 50 {
		t.Errorf("RequestedUnits = %d, want within [45,50]", metrics.RequestedUnits)
	}
	if metrics.Efficiency < 0 || metrics.Efficiency > 1 {
		t.Errorf("Efficiency = %v, want within [0,1]", metrics.Efficiency)
	}
	if metrics.CorridorRatio < 0 || metrics.CorridorRatio > 1 {
		t.Errorf("CorridorRatio = %v, want within [0,1]", metrics.CorridorRatio)
	}
	assertDisjointUnits(t, plan.Units)
	assertUnitsContained(t, plan.Units, plan.UsableArea)
	assertCoresTouchCorridors(t, plan.Cores, plan.Corridors)
}

// TestS3SmallRectangleSelectsTPattern checks that a small 20x15 rectangle
// (aspect 1.33, area 300 m2) falls through to the default T corridor
// pattern and still produces a plan.
func TestS3SmallRectangleSelectsTPattern(t *testing.T) {
	boundary := rectBoundary(t, 20, 15)
	cfg := &Config{
		Seed: 3,
		Core: CoreCfg{Count: 1, AreaMin: 15, AreaTarget: 25, AreaMax: 40, PreferredLocation: core.LocationCenter},
		Circulation: CirculationCfg{
			CorridorWidthMin: 2.2, CorridorWidthTarget: 2.3, CorridorWidthMax: 2.5,
			Pattern: corridor.PatternAuto,
		},
		Program: unitspec.Program{
			Strategy: unitspec.StrategyCount,
			Entries:  []unitspec.ProgramEntry{{Type: "Studio", Count: 3, MinArea: 25, MaxArea: 35}},
		},
		Algorithm:    unitspec.AlgorithmRowBased,
		VariantCount: 1,
	}

	if got := corridor.SelectPattern(boundary.Bounds()); got != corridor.PatternT {
		t.Errorf("SelectPattern(20x15) = %s, want T", got)
	}

	gen := NewGenerator()
	plan, _, err := gen.Generate(context.Background(), boundary, nil, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan == nil {
		t.Fatal("expected a non-nil plan for a 20x15 rectangle with one small core")
	}
}

// TestS4DualCoreLongAxisPlacement checks a large near-3000 m2 boundary
// with two cores placed along its long axis.
func TestS4DualCoreLongAxisPlacement(t *testing.T) {
	boundary := rectBoundary(t, 84, 36) // matches the dual-core dims used in network_test.go
	cfg := &Config{
		Seed: 4,
		Core: CoreCfg{Count: 2, AreaMin: 20, AreaTarget: 35, AreaMax: 60, PreferredLocation: core.LocationAuto},
		Circulation: CirculationCfg{
			CorridorWidthMin: 2.2, CorridorWidthTarget: 2.4, CorridorWidthMax: 2.5,
			Pattern: corridor.PatternAuto,
		},
		Program: unitspec.Program{
			Strategy: unitspec.StrategyCount,
			Entries:  []unitspec.ProgramEntry{{Type: "1BR", Count: 4, MinArea: 45, MaxArea: 65}},
		},
		Algorithm:    unitspec.AlgorithmRowBased,
		VariantCount: 1,
	}

	gen := NewGenerator()
	plan, _, err := gen.Generate(context.Background(), boundary, nil, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan == nil {
		t.Fatal("expected a non-nil plan")
	}
	if len(plan.Cores) != 2 {
		t.Fatalf("expected 2 cores, got %d", len(plan.Cores))
	}
	// East/west placement on this wide boundary: cores should be
	// separated mostly along X.
	c0, _ := plan.Cores[0].Centroid()
	c1, _ := plan.Cores[1].Centroid()
	if absf(c0.X-c1.X) <= absf(c0.Y-c1.Y) {
		t.Errorf("expected cores separated along the long (X) axis, got %+v and %+v", c0, c1)
	}
	assertCoresTouchCorridors(t, plan.Cores, plan.Corridors)
}

// TestS5ThinStripSelectsLPattern checks that a pathologically thin 40x4
// strip boundary resolves to the L pattern through the aspect-ratio rule.
func TestS5ThinStripSelectsLPattern(t *testing.T) {
	boundary := rectBoundary(t, 40, 4)
	if got := corridor.SelectPattern(boundary.Bounds()); got != corridor.PatternL {
		// A 40x4 strip has aspect 10 > 2.5, which the decision tree routes
		// to L before line is ever considered explicitly; line is only
		// chosen when height collapses to zero. Confirm the aspect-ratio
		// branch at least fires as expected.
		t.Errorf("SelectPattern(40x4) = %s, want L (aspect > 2.5 branch)", got)
	}
}

// TestS6DeterminismAcrossRuns checks that identical inputs produce
// identical plans across independent runs.
func TestS6DeterminismAcrossRuns(t *testing.T) {
	boundary := rectBoundary(t, 50, 30)
	run := func() *FloorPlan {
		cfg := s1Config(1)
		gen := NewGenerator()
		plan, _, err := gen.Generate(context.Background(), boundary, nil, cfg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		return plan
	}

	a, b := run(), run()
	if a == nil || b == nil {
		t.Fatal("expected both runs to produce a plan")
	}
	if len(a.Units) != len(b.Units) {
		t.Fatalf("unit counts differ: %d vs %d", len(a.Units), len(b.Units))
	}
	for i := range a.Units {
		if a.Units[i].Polygon.Area() != b.Units[i].Polygon.Area() {
			t.Errorf("unit %d area differs between runs: %v vs %v", i, a.Units[i].Polygon.Area(), b.Units[i].Polygon.Area())
		}
		if a.Units[i].Centroid != b.Units[i].Centroid {
			t.Errorf("unit %d centroid differs between runs: %+v vs %+v", i, a.Units[i].Centroid, b.Units[i].Centroid)
		}
	}
}

// TestEmptyObstaclesUsableAreaEqualsBoundary checks that the usable area
// equals the boundary when there are no obstacles to subtract.
func TestEmptyObstaclesUsableAreaEqualsBoundary(t *testing.T) {
	boundary := rectBoundary(t, 30, 20)
	got := deriveUsableArea(boundary, nil)
	if got.Area() != boundary.Area() {
		t.Errorf("usable area %v != boundary area %v with no obstacles", got.Area(), boundary.Area())
	}
}

// TestTinyBoundaryYieldsNoCores checks that a boundary too small to fit a
// single core yields a nil plan rather than an error.
func TestTinyBoundaryYieldsNoCores(t *testing.T) {
	boundary := rectBoundary(t, 2, 2)
	cfg := s1Config(10)
	cfg.Core.AreaTarget = 200
	cfg.Core.AreaMax = 300

	gen := NewGenerator()
	plan, _, err := gen.Generate(context.Background(), boundary, nil, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan != nil {
		t.Error("expected a nil plan when the boundary cannot fit a core")
	}
}

// TestCorridorWidthClamping checks that corridor widths outside the
// allowed range are clamped to its bounds.
func TestCorridorWidthClamping(t *testing.T) {
	if got := corridor.ClampWidth(1.0); got != 2.2 {
		t.Errorf("ClampWidth(1.0) = %v, want 2.2", got)
	}
	if got := corridor.ClampWidth(5.0); got != 2.5 {
		t.Errorf("ClampWidth(5.0) = %v, want 2.5", got)
	}
}

func assertDisjointUnits(t *testing.T, units []Unit) {
	t.Helper()
	for i := 0; i < len(units); i++ {
		for j := i + 1; j < len(units); j++ {
			overlap := units[i].Polygon.Intersection(units[j].Polygon).Area()
			if overlap >= 0.1 {
				t.Errorf("units %d and %d overlap by %.3f m2", i, j, overlap)
			}
		}
	}
}

func assertUnitsContained(t *testing.T, units []Unit, usable geometry.Polygon) {
	t.Helper()
	buffered := usable.Buffer(0.05)
	for i, u := range units {
		outside := u.Polygon.Difference(buffered).Area()
		if outside > 0.1 {
			t.Errorf("unit %d has %.3f m2 outside the usable area", i, outside)
		}
	}
}

func assertCoresTouchCorridors(t *testing.T, cores, corridors []geometry.Polygon) {
	t.Helper()
	for i, c := range cores {
		nearest := c.Buffer(0.1)
		touches := false
		for _, corr := range corridors {
			if !nearest.Intersection(corr).IsEmpty() {
				touches = true
				break
			}
		}
		if !touches {
			t.Errorf("core %d does not touch any corridor within 0.1m", i)
		}
	}
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
