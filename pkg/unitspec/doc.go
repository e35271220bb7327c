// Package unitspec turns a UnitProgram (the building's required unit mix,
// as counts or percentages) into the ordered list of UnitSpecs the packer
// consumes.
package unitspec
