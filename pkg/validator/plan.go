package validator

import "github.com/dshills/floorplangen/pkg/geometry"

// UnitRef is the minimal view of a placed unit the validator needs: its
// declared type (for SPAT_001's per-type area floor) and its footprint.
type UnitRef struct {
	Type    string
	Polygon geometry.Polygon
}

// Plan is the finished floor plan the validator inspects. It never
// mutates any of these values.
type Plan struct {
	Boundary  geometry.Polygon
	Cores     []geometry.Polygon
	Corridors []geometry.Polygon
	Units     []UnitRef
}
