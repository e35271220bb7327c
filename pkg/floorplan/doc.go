// Package floorplan orchestrates the five-stage layout pipeline —
// geometry kernel, core placer, corridor network, unit packer,
// architectural validator — into complete floor plan variants from a
// building boundary, obstacle set, and unit program.
package floorplan
