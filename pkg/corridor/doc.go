// Package corridor synthesizes the circulation network connecting one or
// more service cores to the rest of a floor plate. It classifies the
// building footprint into one of seven topological
// patterns (T, L, U, H, +, line, grid), instantiates that pattern as a
// set of corridor polygons, and then runs a core-connectivity repair pass
// that guarantees every core and every corridor piece belongs to one
// connected network.
//
// Connectivity is checked and repaired using an adjacency-list graph
// (github.com/katalvlaran/lvlath/graph) rather than a hand-rolled
// union-find: corridor pieces and cores become nodes, "touches within
// tolerance" becomes an edge, and BFS reachability answers "is everything
// on one network" directly.
package corridor
