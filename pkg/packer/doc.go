// Package packer places rectangular residential units into the free
// region left after cores and corridors are carved out. Two
// interchangeable algorithms are offered behind the same Packer
// interface:
//
//   - RegionPacker ("region-based", legacy): a three-pass heuristic (four
//     with the optional gap-fill pass) that
//     scores grid-sampled candidate rectangles against progressively
//     looser thresholds and subtracts each placement from the free
//     region list, fragmenting it over time.
//   - RowPacker ("row-based", preferred/default): slices the free area
//     into strips parallel to the dominant corridor direction and packs
//     each strip contiguously, avoiding the region-based algorithm's
//     fragmentation at the cost of a coarser fit at strip ends.
//
// Neither algorithm errors on partial success: both always return what
// was placed plus the specs they could not place.
package packer
