package corridor

import "github.com/dshills/floorplangen/pkg/geometry"

// Pattern is the topological shape of the corridor network. The set is
// closed: new patterns are code changes, not a plugin point.
type Pattern string

const (
	PatternT     Pattern = "T"
	PatternL     Pattern = "L"
	PatternU     Pattern = "U"
	PatternH     Pattern = "H"
	PatternPlus  Pattern = "+"
	PatternLine  Pattern = "line"
	PatternGrid  Pattern = "grid"
	PatternAuto  Pattern = "auto"
)

// widthMin and widthMax clamp every emitted corridor rectangle's width.
const (
	widthMin = 2.2
	widthMax = 2.5
)

// ClampWidth clamps a configured corridor width into [widthMin, widthMax].
func ClampWidth(w float64) float64 {
	if w < widthMin {
		return widthMin
	}
	if w > widthMax {
		return widthMax
	}
	return w
}

// SelectPattern chooses a topology from the usable area's bounds via a
// fixed decision tree. Rules are evaluated top-down; the first match
// wins.
func SelectPattern(b geometry.Bounds) Pattern {
	w, h := b.Width(), b.Height()
	s := b.Area()
	if h == 0 {
		return PatternLine
	}
	aspect := w / h

	switch {
	case s > 2500:
		return PatternH
	case aspect > 2.5 || aspect < 0.4:
		return PatternL
	case aspect >= 0.85 && aspect <= 1.15:
		if s > 2000 {
			return PatternPlus
		}
		return PatternT
	case s > 1500:
		return PatternU
	default:
		return PatternT
	}
}
