package packer

import (
	"testing"

	"github.com/dshills/floorplangen/pkg/unitspec"
)

func TestForAlgorithmSelectsImplementation(t *testing.T) {
	boundary := mustPoly(t, 0, 0, 10, 10)

	switch ForAlgorithm(unitspec.AlgorithmRegionBased, boundary).(type) {
	case regionAdapter:
	default:
		t.Error("region_based_v2 did not select RegionPacker")
	}

	switch ForAlgorithm(unitspec.AlgorithmRowBased, boundary).(type) {
	case rowPackerAdapter:
	default:
		t.Error("row_based_v3 did not select RowPacker")
	}
}
