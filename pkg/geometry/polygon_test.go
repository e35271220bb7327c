package geometry

import (
	"math"
	"testing"
)

func square(t *testing.T, side float64) Polygon {
	t.Helper()
	p, err := RectPolygon(0, 0, side, side)
	if err != nil {
		t.Fatalf("RectPolygon: %v", err)
	}
	return p
}

func TestRectPolygonArea(t *testing.T) {
	p := square(t, 10)
	if got := p.Area(); math.Abs(got-100) > 1e-9 {
		t.Errorf("Area() = %v, want 100", got)
	}
}

func TestRectPolygonBounds(t *testing.T) {
	p := square(t, 10)
	b := p.Bounds()
	want := Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	if b != want {
		t.Errorf("Bounds() = %+v, want %+v", b, want)
	}
}

func TestRectPolygonCentroid(t *testing.T) {
	p := square(t, 10)
	c, ok := p.Centroid()
	if !ok {
		t.Fatal("Centroid() returned ok=false")
	}
	if math.Abs(c.X-5) > 1e-9 || math.Abs(c.Y-5) > 1e-9 {
		t.Errorf("Centroid() = %+v, want (5,5)", c)
	}
}

func TestPolygonTooFewVertices(t *testing.T) {
	_, err := NewPolygon([]Point{{0, 0}, {1, 1}})
	if err == nil {
		t.Fatal("expected error for a 2-point ring")
	}
}

func TestDifferenceSplitsRegion(t *testing.T) {
	outer := square(t, 10)
	hole, err := RectPolygon(4, -1, 6, 11) // a vertical strip through the middle
	if err != nil {
		t.Fatalf("RectPolygon: %v", err)
	}
	mp := outer.Difference(hole)
	if mp.Len() != 2 {
		t.Fatalf("Difference produced %d pieces, want 2", mp.Len())
	}
	if got, want := mp.Area(), 100-2*10; math.Abs(got-want) > 1e-6 {
		t.Errorf("remaining area = %v, want %v", got, want)
	}
}

func TestUnionOfTouchingRects(t *testing.T) {
	a := square(t, 10)
	b, err := RectPolygon(10, 0, 20, 10)
	if err != nil {
		t.Fatalf("RectPolygon: %v", err)
	}
	u := a.Union(b)
	if got, want := u.Area(), 200.0; math.Abs(got-want) > 1e-6 {
		t.Errorf("union area = %v, want %v", got, want)
	}
}

func TestBufferNegativeCanVanish(t *testing.T) {
	p := square(t, 1)
	shrunk := p.Buffer(-10)
	if !shrunk.IsEmpty() {
		t.Errorf("expected buffer by -10 on a 1x1 square to vanish, got area %v", shrunk.Area())
	}
}

func TestDistanceBetweenDisjointRects(t *testing.T) {
	a := square(t, 10)
	b, err := RectPolygon(20, 0, 30, 10)
	if err != nil {
		t.Fatalf("RectPolygon: %v", err)
	}
	if got, want := a.Distance(b), 10.0; math.Abs(got-want) > 1e-6 {
		t.Errorf("Distance = %v, want %v", got, want)
	}
}

func TestTouchesTolerance(t *testing.T) {
	a := square(t, 10)
	b, err := RectPolygon(10.03, 0, 20, 10)
	if err != nil {
		t.Fatalf("RectPolygon: %v", err)
	}
	if !a.Touches(b, 0.05) {
		t.Error("expected rects 0.03m apart to touch within 0.05m tolerance")
	}
	if a.Touches(b, 0.01) {
		t.Error("expected rects 0.03m apart not to touch within 0.01m tolerance")
	}
}

func TestContains(t *testing.T) {
	p := square(t, 10)
	if !p.Contains(Point{5, 5}) {
		t.Error("expected center point to be contained")
	}
	if p.Contains(Point{50, 50}) {
		t.Error("expected far point not to be contained")
	}
}
