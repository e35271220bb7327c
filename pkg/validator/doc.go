// Package validator implements a fixed architectural rule taxonomy:
// connectivity, spatial, light, safety, and efficiency checks run
// read-only against a finished floor plan, producing a Report with a
// compliance score. The validator never mutates the plan it examines.
package validator
