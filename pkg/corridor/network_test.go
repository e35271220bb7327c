package corridor

import (
	"testing"

	"github.com/dshills/floorplangen/pkg/geometry"
)

func TestGenerateConnectsSingleCore(t *testing.T) {
	usable, err := geometry.RectPolygon(0, 0, 50, 30)
	if err != nil {
		t.Fatalf("RectPolygon: %v", err)
	}
	core, err := geometry.RectPolygon(23, 13, 27, 17)
	if err != nil {
		t.Fatalf("RectPolygon: %v", err)
	}
	pieces, err := Generate(usable, []geometry.Polygon{core}, Config{WidthTarget: 2.4})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(pieces) == 0 {
		t.Fatal("expected at least one corridor piece")
	}
	connected := false
	for _, p := range pieces {
		if p.Touches(core, touchTolerance) {
			connected = true
			break
		}
	}
	if !connected {
		t.Error("no corridor piece touches the core within tolerance")
	}
}

func TestGenerateTooSmallUsableArea(t *testing.T) {
	usable, err := geometry.RectPolygon(0, 0, 1, 1)
	if err != nil {
		t.Fatalf("RectPolygon: %v", err)
	}
	core, err := geometry.RectPolygon(0.4, 0.4, 0.6, 0.6)
	if err != nil {
		t.Fatalf("RectPolygon: %v", err)
	}
	pieces, err := Generate(usable, []geometry.Polygon{core}, Config{WidthTarget: 2.4})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if pieces != nil {
		t.Errorf("expected nil corridors for an infeasibly small usable area, got %d pieces", len(pieces))
	}
}

func TestGenerateNoCoresAborts(t *testing.T) {
	usable, err := geometry.RectPolygon(0, 0, 50, 30)
	if err != nil {
		t.Fatalf("RectPolygon: %v", err)
	}
	pieces, err := Generate(usable, nil, Config{WidthTarget: 2.4})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if pieces != nil {
		t.Errorf("expected nil corridors with no cores, got %d pieces", len(pieces))
	}
}

func TestGenerateDualCoreHPattern(t *testing.T) {
	usable, err := geometry.RectPolygon(0, 0, 84, 36) // 3024 sqm, large dual-core scenario
	if err != nil {
		t.Fatalf("RectPolygon: %v", err)
	}
	west, err := geometry.RectPolygon(14, 14, 22, 22)
	if err != nil {
		t.Fatalf("RectPolygon: %v", err)
	}
	east, err := geometry.RectPolygon(62, 14, 70, 22)
	if err != nil {
		t.Fatalf("RectPolygon: %v", err)
	}
	cores := []geometry.Polygon{west, east}
	pieces, err := Generate(usable, cores, Config{WidthTarget: 2.4})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, c := range cores {
		ok := false
		for _, p := range pieces {
			if p.Touches(c, touchTolerance) {
				ok = true
				break
			}
		}
		if !ok {
			t.Errorf("core %+v is not connected to any corridor piece", c.Bounds())
		}
	}
}
