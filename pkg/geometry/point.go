package geometry

import "math"

// Point is a planar coordinate in metres.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two points.
func (p Point) Dist(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Bounds is an axis-aligned bounding box, used both as a construction
// helper (cores, corridor segments) and as the return shape of
// Polygon.Bounds.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the bounding box extent along X.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the bounding box extent along Y.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Center returns the midpoint of the bounding box.
func (b Bounds) Center() Point {
	return Point{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2}
}

// Area returns the bounding box's rectangular area. This is distinct from
// Polygon.Area, which accounts for the actual boundary shape.
func (b Bounds) Area() float64 {
	return b.Width() * b.Height()
}

// Contains reports whether the box contains the given point, inclusive of
// the boundary.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Union returns the smallest bounding box containing both boxes.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Rect builds the corner points of an axis-aligned rectangle, in the
// counter-clockwise order NewPolygon expects: bottom-left, bottom-right,
// top-right, top-left.
func Rect(minX, minY, maxX, maxY float64) []Point {
	return []Point{
		{minX, minY},
		{maxX, minY},
		{maxX, maxY},
		{minX, maxY},
	}
}

// RectCentered builds a rectangle of the given width/height centred on c.
func RectCentered(c Point, width, height float64) []Point {
	hw, hh := width/2, height/2
	return Rect(c.X-hw, c.Y-hh, c.X+hw, c.Y+hh)
}
