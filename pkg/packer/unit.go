package packer

import "github.com/dshills/floorplangen/pkg/geometry"

// Unit is one placed residential unit.
type Unit struct {
	ID       int
	Type     string
	Polygon  geometry.Polygon
	Area     float64
	Centroid geometry.Point
}

func newUnit(id int, typ string, poly geometry.Polygon) Unit {
	c, _ := poly.Centroid()
	return Unit{ID: id, Type: typ, Polygon: poly, Area: poly.Area(), Centroid: c}
}

// Deferred is a UnitSpec that no pass/strip could place, carried through
// as data in the result rather than logged.
type Deferred struct {
	Type       string
	TargetArea float64
	Reason     string
}

// Result is what both packer algorithms return: whatever was placed, plus
// the specs that could not be. Packing never errors out on partial
// success.
type Result struct {
	Units    []Unit
	Deferred []Deferred
}
