package corridor

import (
	"fmt"

	"github.com/dshills/floorplangen/pkg/geometry"
)

// gridSpacingDivisor sets grid-pattern lane spacing to min(W,H)/2.5,
// clamped to [gridSpacingMin, gridSpacingMax].
const gridSpacingDivisor = 2.5

const (
	gridSpacingMin = 15.0
	gridSpacingMax = 30.0
)

// emit builds the raw (unclipped) candidate rectangles for pattern,
// anchored at the core centroid, within the usable area's bounds.
func emit(pattern Pattern, b geometry.Bounds, anchor geometry.Point, w float64) ([]geometry.Polygon, error) {
	switch pattern {
	case PatternT:
		return emitT(b, anchor, w)
	case PatternL:
		return emitL(b, anchor, w)
	case PatternU:
		return emitU(b, anchor, w)
	case PatternH:
		return emitH(b, anchor, w)
	case PatternPlus:
		return emitPlus(b, anchor, w)
	case PatternLine:
		return emitLine(b, anchor, w)
	case PatternGrid:
		return emitGrid(b, w)
	default:
		return nil, fmt.Errorf("corridor: unknown pattern %q", pattern)
	}
}

func rect(minX, minY, maxX, maxY float64) (geometry.Polygon, error) {
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return geometry.RectPolygon(minX, minY, maxX, maxY)
}

// longAxisIsX reports whether the bounds' long axis runs along X.
func longAxisIsX(b geometry.Bounds) bool {
	return b.Width() >= b.Height()
}

// emitT: a full-length spine along the long axis through anchor, plus a
// perpendicular branch 80% of the short axis centred on anchor.
func emitT(b geometry.Bounds, anchor geometry.Point, w float64) ([]geometry.Polygon, error) {
	var spine, branch geometry.Polygon
	var err error
	if longAxisIsX(b) {
		spine, err = rect(b.MinX, anchor.Y-w/2, b.MaxX, anchor.Y+w/2)
		if err != nil {
			return nil, err
		}
		half := 0.8 * b.Height() / 2
		branch, err = rect(anchor.X-w/2, anchor.Y-half, anchor.X+w/2, anchor.Y+half)
	} else {
		spine, err = rect(anchor.X-w/2, b.MinY, anchor.X+w/2, b.MaxY)
		if err != nil {
			return nil, err
		}
		half := 0.8 * b.Width() / 2
		branch, err = rect(anchor.X-half, anchor.Y-w/2, anchor.X+half, anchor.Y+w/2)
	}
	if err != nil {
		return nil, err
	}
	return []geometry.Polygon{spine, branch}, nil
}

// emitL: one segment from a perimeter edge to the core along the long
// axis, one from a perpendicular perimeter edge to the core.
func emitL(b geometry.Bounds, anchor geometry.Point, w float64) ([]geometry.Polygon, error) {
	var legA, legB geometry.Polygon
	var err error
	if longAxisIsX(b) {
		legA, err = rect(b.MinX, anchor.Y-w/2, anchor.X, anchor.Y+w/2)
		if err != nil {
			return nil, err
		}
		legB, err = rect(anchor.X-w/2, anchor.Y, anchor.X+w/2, b.MaxY)
	} else {
		legA, err = rect(anchor.X-w/2, b.MinY, anchor.X+w/2, anchor.Y)
		if err != nil {
			return nil, err
		}
		legB, err = rect(anchor.X, anchor.Y-w/2, b.MaxX, anchor.Y+w/2)
	}
	if err != nil {
		return nil, err
	}
	return []geometry.Polygon{legA, legB}, nil
}

// emitU: left vertical, bottom horizontal, right vertical, each 80% of
// the corresponding bounds extent; the core opens onto the top.
func emitU(b geometry.Bounds, anchor geometry.Point, w float64) ([]geometry.Polygon, error) {
	leftX := b.MinX + 0.1*b.Width()
	rightX := b.MaxX - 0.1*b.Width()
	topY := b.MinY + 0.8*b.Height()

	left, err := rect(leftX-w/2, b.MinY, leftX+w/2, topY)
	if err != nil {
		return nil, err
	}
	bottom, err := rect(leftX, b.MinY-w/2, rightX, b.MinY+w/2)
	if err != nil {
		return nil, err
	}
	right, err := rect(rightX-w/2, b.MinY, rightX+w/2, topY)
	if err != nil {
		return nil, err
	}
	_ = anchor // the U shape is anchored on the bounds, not the core directly
	return []geometry.Polygon{left, bottom, right}, nil
}

// emitH: two vertical spines at x = 25% and 75% of the bounds width,
// joined by a horizontal connector through the anchor's Y.
func emitH(b geometry.Bounds, anchor geometry.Point, w float64) ([]geometry.Polygon, error) {
	x1 := b.MinX + 0.25*b.Width()
	x2 := b.MinX + 0.75*b.Width()

	v1, err := rect(x1-w/2, b.MinY, x1+w/2, b.MaxY)
	if err != nil {
		return nil, err
	}
	v2, err := rect(x2-w/2, b.MinY, x2+w/2, b.MaxY)
	if err != nil {
		return nil, err
	}
	conn, err := rect(x1, anchor.Y-w/2, x2, anchor.Y+w/2)
	if err != nil {
		return nil, err
	}
	return []geometry.Polygon{v1, v2, conn}, nil
}

// emitPlus: four arms radiating from the anchor to 20% inset from each
// of the four bounds.
func emitPlus(b geometry.Bounds, anchor geometry.Point, w float64) ([]geometry.Polygon, error) {
	north := b.MaxY - 0.2*b.Height()
	south := b.MinY + 0.2*b.Height()
	east := b.MaxX - 0.2*b.Width()
	west := b.MinX + 0.2*b.Width()

	armN, err := rect(anchor.X-w/2, anchor.Y, anchor.X+w/2, north)
	if err != nil {
		return nil, err
	}
	armS, err := rect(anchor.X-w/2, south, anchor.X+w/2, anchor.Y)
	if err != nil {
		return nil, err
	}
	armE, err := rect(anchor.X, anchor.Y-w/2, east, anchor.Y+w/2)
	if err != nil {
		return nil, err
	}
	armW, err := rect(west, anchor.Y-w/2, anchor.X, anchor.Y+w/2)
	if err != nil {
		return nil, err
	}
	return []geometry.Polygon{armN, armS, armE, armW}, nil
}

// emitLine: one full-length spine through the anchor on the long axis.
func emitLine(b geometry.Bounds, anchor geometry.Point, w float64) ([]geometry.Polygon, error) {
	var p geometry.Polygon
	var err error
	if longAxisIsX(b) {
		p, err = rect(b.MinX, anchor.Y-w/2, b.MaxX, anchor.Y+w/2)
	} else {
		p, err = rect(anchor.X-w/2, b.MinY, anchor.X+w/2, b.MaxY)
	}
	if err != nil {
		return nil, err
	}
	return []geometry.Polygon{p}, nil
}

// emitGrid: 2-3 horizontal corridors equally spaced across H, crossed by
// 2-3 vertical corridors equally spaced across W.
func emitGrid(b geometry.Bounds, w float64) ([]geometry.Polygon, error) {
	spacing := min(b.Width(), b.Height()) / gridSpacingDivisor
	if spacing < gridSpacingMin {
		spacing = gridSpacingMin
	}
	if spacing > gridSpacingMax {
		spacing = gridSpacingMax
	}

	hCount := gridLineCount(b.Height(), spacing)
	vCount := gridLineCount(b.Width(), spacing)

	out := make([]geometry.Polygon, 0, hCount+vCount)
	for i := 1; i <= hCount; i++ {
		y := b.MinY + float64(i)/float64(hCount+1)*b.Height()
		p, err := rect(b.MinX, y-w/2, b.MaxX, y+w/2)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	for i := 1; i <= vCount; i++ {
		x := b.MinX + float64(i)/float64(vCount+1)*b.Width()
		p, err := rect(x-w/2, b.MinY, x+w/2, b.MaxY)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// gridLineCount clamps the number of equally spaced lines along an axis
// extent to the 2-3 range.
func gridLineCount(extent, spacing float64) int {
	n := int(extent / spacing)
	if n < 2 {
		return 2
	}
	if n > 3 {
		return 3
	}
	return n
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
