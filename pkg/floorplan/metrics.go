package floorplan

// Metrics is the per-variant statistics record summarizing a generation
// run's output.
type Metrics struct {
	TotalArea    float64
	UsableArea   float64
	CoreArea     float64
	CorridorArea float64
	UnitsArea    float64

	// Efficiency is UnitsArea/TotalArea.
	Efficiency float64
	// CorridorRatio is CorridorArea/TotalArea.
	CorridorRatio float64

	UnitsCount  int
	UnitsByType map[string]int

	// Algorithm records which packer implementation produced Units,
	// supplementing the output with per-variant provenance.
	Algorithm string

	// RequestedUnits is the number of specs prepared for the packer;
	// DeferredUnits is how many of those were never placed. Together with
	// UnitsCount these let a caller compute the coverage ratio that
	// decides whether a variant is acceptable.
	RequestedUnits int
	DeferredUnits  int
}

func computeMetrics(plan *FloorPlan, requested, deferred int, algorithm string) *Metrics {
	m := &Metrics{
		TotalArea:      plan.Boundary.Area(),
		UsableArea:     plan.UsableArea.Area(),
		Algorithm:      algorithm,
		RequestedUnits: requested,
		DeferredUnits:  deferred,
		UnitsByType:    make(map[string]int),
	}
	for _, c := range plan.Cores {
		m.CoreArea += c.Area()
	}
	for _, c := range plan.Corridors {
		m.CorridorArea += c.Area()
	}
	for _, u := range plan.Units {
		m.UnitsArea += u.Area
		m.UnitsByType[u.Type]++
	}
	m.UnitsCount = len(plan.Units)
	if m.TotalArea > 0 {
		m.Efficiency = m.UnitsArea / m.TotalArea
		m.CorridorRatio = m.CorridorArea / m.TotalArea
	}
	return m
}
