package terrain

import (
	"math/rand/v2"
)

// SeededSource is a reproducible RandomSource backed by a PCG generator.
type SeededSource struct {
	seed uint64
	rng  *rand.Rand
}

// NewSeededSource returns a source that yields the same sequence for the
// same seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Seed returns the seed the source was created with.
func (s *SeededSource) Seed() uint64 {
	return s.seed
}

// Range returns a value in [lo, hi). lo == hi always yields lo.
func (s *SeededSource) Range(lo, hi float32) float32 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float32()*(hi-lo)
}
