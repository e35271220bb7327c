package geometry

import (
	"math"
	"testing"
)

func TestSharedBoundaryLengthAdjacentRects(t *testing.T) {
	a, err := RectPolygon(0, 0, 10, 10)
	if err != nil {
		t.Fatalf("RectPolygon: %v", err)
	}
	b, err := RectPolygon(10, 0, 10+5, 10) // shares the full 10m east edge of a
	if err != nil {
		t.Fatalf("RectPolygon: %v", err)
	}
	got := SharedBoundaryLength(a, b, 0.05)
	if math.Abs(got-10) > 1e-6 {
		t.Errorf("SharedBoundaryLength = %v, want 10", got)
	}
}

func TestSharedBoundaryLengthFarApart(t *testing.T) {
	a, err := RectPolygon(0, 0, 10, 10)
	if err != nil {
		t.Fatalf("RectPolygon: %v", err)
	}
	b, err := RectPolygon(100, 0, 110, 10)
	if err != nil {
		t.Fatalf("RectPolygon: %v", err)
	}
	if got := SharedBoundaryLength(a, b, 0.05); got != 0 {
		t.Errorf("SharedBoundaryLength = %v, want 0 for far-apart rects", got)
	}
}

func TestFacadeLengthEdgeUnit(t *testing.T) {
	building, err := RectPolygon(0, 0, 50, 30)
	if err != nil {
		t.Fatalf("RectPolygon: %v", err)
	}
	// A unit flush against the west edge of the building only, 6m tall.
	unit, err := RectPolygon(0, 10, 5, 16)
	if err != nil {
		t.Fatalf("RectPolygon: %v", err)
	}
	got := FacadeLength(unit, building)
	if got < 5 || got > 7 {
		t.Errorf("FacadeLength = %v, want roughly 6 (the west edge length)", got)
	}
}

func TestFacadeLengthInteriorUnit(t *testing.T) {
	building, err := RectPolygon(0, 0, 50, 30)
	if err != nil {
		t.Fatalf("RectPolygon: %v", err)
	}
	unit, err := RectPolygon(20, 10, 25, 15) // nowhere near any edge
	if err != nil {
		t.Fatalf("RectPolygon: %v", err)
	}
	if got := FacadeLength(unit, building); got != 0 {
		t.Errorf("FacadeLength = %v, want 0 for an interior unit", got)
	}
}
