package corridor

import (
	"fmt"

	"github.com/dshills/floorplangen/pkg/geometry"
)

// Config configures corridor network synthesis.
type Config struct {
	// WidthTarget is the configured corridor width, clamped into
	// [2.2, 2.5] m before use.
	WidthTarget float64

	// Pattern forces a specific topology; PatternAuto (the zero value)
	// selects one from the usable area's shape.
	Pattern Pattern
}

// Generate builds the corridor network for usable given the already
// placed cores. Returns a nil slice (not an error) if the usable area is
// smaller than one corridor segment (area < w·2·w) or there are no
// cores to connect to — callers must abort generation of that variant.
func Generate(usable geometry.Polygon, cores []geometry.Polygon, cfg Config) ([]geometry.Polygon, error) {
	if usable.IsEmpty() || len(cores) == 0 {
		return nil, nil
	}
	w := ClampWidth(cfg.WidthTarget)
	if usable.Area() < w*2*w {
		return nil, nil
	}

	pattern := cfg.Pattern
	b := usable.Bounds()
	if pattern == "" || pattern == PatternAuto {
		pattern = SelectPattern(b)
	}

	anchor := averageCentroid(cores)
	raw, err := emit(pattern, b, anchor, w)
	if err != nil {
		return nil, fmt.Errorf("corridor: emitting pattern %s: %w", pattern, err)
	}

	pieces := make([]geometry.Polygon, 0, len(raw))
	for _, r := range raw {
		clipped := geometry.Clip(r, usable)
		if clipped.Area() < w*2 {
			continue
		}
		pieces = append(pieces, clipped)
	}
	if len(pieces) == 0 {
		return nil, nil
	}

	pieces = repairConnectivity(pieces, cores, usable, w)
	sortByCentroid(pieces)
	return pieces, nil
}
