// Package rng provides deterministic random number generation for the
// floor plan generator.
//
// # Overview
//
// The RNG type ensures reproducible floor plan generation by deriving
// stage-specific seeds from a master seed. This allows each pipeline
// stage (core placement, corridor synthesis, unit packing) to have
// independent random sequences while maintaining overall determinism.
//
// # Sub-Seed Derivation
//
// Each RNG derives its seed using SHA-256:
//
//	seed_stage = H(masterSeed, stageName, configHash)
//
// where:
//   - masterSeed: Top-level seed for the entire generation
//   - stageName: Pipeline stage identifier (e.g., "core", "packer")
//   - configHash: Hash of configuration parameters
//
// This ensures:
//  1. Same inputs always produce same RNG sequence (determinism)
//  2. Different stages get independent random sequences (isolation)
//  3. Config changes result in different sequences (sensitivity)
//
// # Usage
//
// Create an RNG for each pipeline stage:
//
//	configHash := sha256.Sum256([]byte(configJSON))
//	coreRNG := rng.NewRNG(masterSeed, "core", configHash[:])
//	packerRNG := rng.NewRNG(masterSeed, "packer", configHash[:])
//
// Use the RNG for all random decisions in that stage:
//
//	x := packerRNG.Float64Range(0.3, 0.8)
//	if packerRNG.Bool() {
//	    // try an alternate candidate
//	}
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. Each goroutine should use its own RNG
// instance. Create stage-specific RNGs before spawning goroutines and pass
// them explicitly.
//
// # Performance
//
// The underlying math/rand.Rand is highly efficient:
//   - Uint64(): ~2ns per call
//   - Intn():   ~3ns per call
//   - Float64(): ~2ns per call
//
// Creating a new RNG costs ~8µs due to SHA-256 computation.
// Reuse RNG instances within a stage for best performance.
package rng
