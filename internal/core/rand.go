package core

import (
	"math/rand/v2"
	"time"
)

// Rand is the source of randomness used by field generation and collision
// jitter. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64 // uniform in [0, 1)
	IntN(n int) int   // uniform in [0, n), n > 0
}

// NewRand returns a PCG-backed source for the given seed.
// A zero seed is replaced with the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// Uniform returns a value uniformly distributed in [lo, hi).
func Uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// GlobalRand returns the process-wide source from math/rand/v2.
// It is safe for concurrent use but cannot be seeded.
func GlobalRand() Rand {
	return globalRand{}
}
