package floorplan

import "github.com/dshills/floorplangen/pkg/geometry"

// Unit is one placed residential unit, carried through from the packer
// with its final, stable insertion-order id.
type Unit struct {
	ID       int
	Type     string
	Polygon  geometry.Polygon
	Area     float64
	Centroid geometry.Point
}

// FloorPlan is the complete product of one generation run: a boundary, the
// derived usable area, placed cores, the corridor network, and the placed
// units. Once built it is never mutated.
type FloorPlan struct {
	Boundary   geometry.Polygon
	UsableArea geometry.Polygon
	Cores      []geometry.Polygon
	Corridors  []geometry.Polygon
	Units      []Unit
}
