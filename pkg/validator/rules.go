package validator

import (
	"fmt"
	"math"

	"github.com/dshills/floorplangen/pkg/geometry"
)

const touchTolerance = 0.1

// areaFloor is SPAT_001's per-type minimum floor area, in square metres.
var areaFloor = map[string]float64{
	"Studio": 25,
	"1BR":    45,
	"2BR":    65,
	"3BR":    85,
}

// recommendedWidth is SPAT_002's per-type minimum recommended bounding
// dimension, the narrower side of each type's recommended width x depth
// pair (Studio 3.5x4.0, 1BR 4.0x5.0, 2BR 5.0x6.0, 3BR 6.0x7.0).
var recommendedWidth = map[string]float64{
	"Studio": 3.5,
	"1BR":    4.0,
	"2BR":    5.0,
	"3BR":    6.0,
}

// Validate runs the full rule taxonomy against plan and returns a Report.
// Validate is read-only: it never alters plan's polygons.
func Validate(plan Plan) Report {
	var violations, warnings []Finding
	add := func(f Finding) {
		if f.Severity == Critical {
			violations = append(violations, f)
		} else {
			warnings = append(warnings, f)
		}
	}

	corridorUnion := unionAll(plan.Corridors)

	for i, u := range plan.Units {
		subject := fmt.Sprintf("unit[%d]:%s", i, u.Type)
		checkConnectivity(u, corridorUnion, len(plan.Corridors) == 0, subject, add)
		checkSpatial(u, subject, add)
		checkLight(u, plan.Boundary, subject, add)
		checkSafety(u, plan.Cores, subject, add)
	}

	for i, c := range plan.Corridors {
		checkCorridorRules(c, plan.Cores, fmt.Sprintf("corridor[%d]", i), add)
	}

	checkCoreArea(plan.Cores, len(plan.Units), add)
	checkEfficiency(plan, add)

	s := score(len(violations), len(warnings))
	return Report{
		IsValid:    len(violations) == 0,
		Score:      s,
		Violations: violations,
		Warnings:   warnings,
	}
}

func checkConnectivity(u UnitRef, corridorUnion geometry.MultiPolygon, noCorridors bool, subject string, add func(Finding)) {
	if noCorridors {
		add(Finding{Code: "CONN_002", Severity: Critical, Subject: subject, Message: "no corridors exist to connect this unit"})
		return
	}
	overlap := 0.0
	for _, piece := range corridorUnion.Polygons() {
		overlap += geometry.SharedBoundaryLength(u.Polygon, piece, touchTolerance)
	}
	if overlap < 0.9 {
		add(Finding{Code: "CONN_001", Severity: Critical, Subject: subject,
			Message: fmt.Sprintf("corridor-facing boundary %.2fm is below the 0.9m door-width floor", overlap)})
	}
}

func checkCorridorRules(c geometry.Polygon, cores []geometry.Polygon, subject string, add func(Finding)) {
	nearest := math.Inf(1)
	var nearestCore geometry.Polygon
	for _, core := range cores {
		if d := c.Distance(core); d < nearest {
			nearest, nearestCore = d, core
		}
	}
	if math.IsInf(nearest, 1) || nearest > touchTolerance {
		add(Finding{Code: "CONN_003", Severity: Critical, Subject: subject,
			Message: fmt.Sprintf("corridor is %.2fm from the nearest core, exceeding the %.2fm touch tolerance", nearest, touchTolerance)})
	} else {
		coreCentroid, _ := nearestCore.Centroid()
		farthest := farthestCorner(c, coreCentroid)
		if farthest > 30.0 {
			add(Finding{Code: "CONN_004", Severity: Critical, Subject: subject,
				Message: fmt.Sprintf("corridor's farthest point is %.2fm from its core, exceeding the 30m fire-escape distance", farthest)})
		}
	}

	b := c.Bounds()
	minor := math.Min(b.Width(), b.Height())
	if minor < 1.2 {
		add(Finding{Code: "SPAT_004", Severity: Critical, Subject: subject,
			Message: fmt.Sprintf("corridor minor dimension %.2fm is below the 1.2m critical floor", minor)})
	} else if minor < 1.8 {
		add(Finding{Code: "SPAT_004", Severity: Warning, Subject: subject,
			Message: fmt.Sprintf("corridor minor dimension %.2fm is below the 1.8m recommended width", minor)})
	}
}

func checkSpatial(u UnitRef, subject string, add func(Finding)) {
	area := u.Polygon.Area()
	if floor, ok := areaFloor[u.Type]; ok && area < floor {
		add(Finding{Code: "SPAT_001", Severity: Critical, Subject: subject,
			Message: fmt.Sprintf("area %.2fm² is below the %.2fm² floor for type %s", area, floor, u.Type)})
	}

	b := u.Polygon.Bounds()
	short, long := b.Width(), b.Height()
	if short > long {
		short, long = long, short
	}
	if rec, ok := recommendedWidth[u.Type]; ok && short < rec {
		add(Finding{Code: "SPAT_002", Severity: Warning, Subject: subject,
			Message: fmt.Sprintf("minimum bounding dimension %.2fm is below the %.2fm recommendation for type %s", short, rec, u.Type)})
	}
	if short > 0 && long/short > 2.5 {
		add(Finding{Code: "SPAT_003", Severity: Warning, Subject: subject,
			Message: fmt.Sprintf("bounding-box aspect ratio %.2f exceeds 2.5", long/short)})
	}
}

func checkLight(u UnitRef, boundary geometry.Polygon, subject string, add func(Finding)) {
	facade := geometry.FacadeLength(u.Polygon, boundary)
	if facade < 3.0 {
		add(Finding{Code: "LIGHT_001", Severity: Critical, Subject: subject,
			Message: fmt.Sprintf("facade length %.2fm is below the 3.0m floor", facade)})
	}
	if area := u.Polygon.Area(); area > 0 && facade/area < 0.10 {
		add(Finding{Code: "LIGHT_002", Severity: Warning, Subject: subject,
			Message: fmt.Sprintf("facade-to-area ratio %.3f is below the 0.10 recommendation", facade/area)})
	}
	b := u.Polygon.Bounds()
	long := math.Max(b.Width(), b.Height())
	if long > 8.0 {
		add(Finding{Code: "LIGHT_003", Severity: Warning, Subject: subject,
			Message: fmt.Sprintf("bounding-box long side %.2fm exceeds the 8.0m light-penetration guideline", long)})
	}
}

func checkSafety(u UnitRef, cores []geometry.Polygon, subject string, add func(Finding)) {
	if len(cores) == 0 {
		add(Finding{Code: "SAFE_001", Severity: Critical, Subject: subject, Message: "no core exists to measure egress distance against"})
		return
	}
	centroid, ok := u.Polygon.Centroid()
	if !ok {
		return
	}
	nearest := math.Inf(1)
	for _, core := range cores {
		cc, ok := core.Centroid()
		if !ok {
			continue
		}
		if d := centroid.Dist(cc); d < nearest {
			nearest = d
		}
	}
	if nearest > 45.0 {
		add(Finding{Code: "SAFE_001", Severity: Critical, Subject: subject,
			Message: fmt.Sprintf("centroid-to-core distance %.2fm exceeds the 45m egress floor", nearest)})
	}
}

// checkCoreArea implements SPAT_006: total core area must meet a floor
// that scales with how many units the building holds.
func checkCoreArea(cores []geometry.Polygon, unitCount int, add func(Finding)) {
	floor := 25.0
	switch {
	case unitCount > 15:
		floor = 60.0
	case unitCount > 8:
		floor = 40.0
	}
	total := 0.0
	for _, c := range cores {
		total += c.Area()
	}
	if total < floor {
		add(Finding{Code: "SPAT_006", Severity: Critical, Subject: "core",
			Message: fmt.Sprintf("total core area %.2fm² is below the %.2fm² floor for %d units", total, floor, unitCount)})
	}
}

func checkEfficiency(plan Plan, add func(Finding)) {
	boundaryArea := plan.Boundary.Area()
	if boundaryArea <= 0 {
		return
	}
	unitsArea := 0.0
	for _, u := range plan.Units {
		unitsArea += u.Polygon.Area()
	}
	if unitsArea/boundaryArea < 0.70 {
		add(Finding{Code: "EFFI_001", Severity: Warning, Subject: "plan",
			Message: fmt.Sprintf("unit-area efficiency %.3f is below the 0.70 recommendation", unitsArea/boundaryArea)})
	}

	corridorArea := 0.0
	for _, c := range plan.Corridors {
		corridorArea += c.Area()
	}
	if corridorArea/boundaryArea > 0.20 {
		add(Finding{Code: "EFFI_002", Severity: Warning, Subject: "plan",
			Message: fmt.Sprintf("corridor ratio %.3f exceeds the 0.20 recommendation", corridorArea/boundaryArea)})
	}
}

func unionAll(polys []geometry.Polygon) geometry.MultiPolygon {
	out := geometry.MultiPolygon{}
	for _, p := range polys {
		out = out.Union(p)
	}
	return out
}

func farthestCorner(c geometry.Polygon, from geometry.Point) float64 {
	b := c.Bounds()
	corners := []geometry.Point{
		{X: b.MinX, Y: b.MinY}, {X: b.MaxX, Y: b.MinY},
		{X: b.MaxX, Y: b.MaxY}, {X: b.MinX, Y: b.MaxY},
	}
	far := 0.0
	for _, p := range corners {
		if d := p.Dist(from); d > far {
			far = d
		}
	}
	return far
}
