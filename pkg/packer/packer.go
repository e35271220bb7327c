package packer

import (
	"github.com/dshills/floorplangen/pkg/geometry"
	"github.com/dshills/floorplangen/pkg/rng"
	"github.com/dshills/floorplangen/pkg/unitspec"
)

// Packer places a list of unit specs into the free area left after cores
// and corridors are carved out of the usable floor boundary.
type Packer interface {
	Pack(free geometry.MultiPolygon, specs []unitspec.Spec, corridors []geometry.Polygon, r *rng.RNG) Result
}

// regionAdapter lets RegionPacker (whose Pack signature additionally
// needs the building boundary for facade scoring) satisfy Packer.
type regionAdapter struct {
	rp       *RegionPacker
	boundary geometry.Polygon
}

func (a regionAdapter) Pack(free geometry.MultiPolygon, specs []unitspec.Spec, corridors []geometry.Polygon, r *rng.RNG) Result {
	return a.rp.Pack(free, specs, corridors, a.boundary, r)
}

// ForAlgorithm returns the Packer matching algo, bound to boundary for
// the algorithms that need it (only RegionPacker does; RowPacker ignores
// it). boundary is the building outline that facade length is measured
// against.
func ForAlgorithm(algo unitspec.Algorithm, boundary geometry.Polygon) Packer {
	if algo == unitspec.AlgorithmRegionBased {
		return regionAdapter{rp: NewRegionPacker(), boundary: boundary}
	}
	return rowPackerAdapter{NewRowPacker()}
}

type rowPackerAdapter struct{ p *RowPacker }

func (a rowPackerAdapter) Pack(free geometry.MultiPolygon, specs []unitspec.Spec, corridors []geometry.Polygon, r *rng.RNG) Result {
	return a.p.Pack(free, specs, corridors, r)
}
