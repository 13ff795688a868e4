package core

import (
	"math/rand"
	randv2 "math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// One RNG drives a whole synthesis run so a single seed reproduces every grid.
type RNG struct {
	r *randv2.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: randv2.New(randv2.NewPCG(uint64(seed), 0))}
}

// ChildSeed draws a seed for a dependent generator. Consecutive calls yield
// independent seeds, so the order of calls is part of the run's contract.
func (r *RNG) ChildSeed() int64 {
	return int64(r.r.Uint64() >> 1)
}

// LegacySource returns a math/rand source seeded from the RNG, for libraries
// that still take the v1 rand.Source interface.
func (r *RNG) LegacySource() rand.Source {
	return rand.NewSource(r.ChildSeed())
}

// Source exposes the underlying rand.Rand for advanced use. It also satisfies
// rand/v2.Source, which is what gonum's distributions accept.
func (r *RNG) Source() *randv2.Rand { return r.r }
