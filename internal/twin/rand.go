package twin

import (
	"math/rand/v2"
	"time"
)

// Rand is the source of every random draw made by the simulation.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Clock returns the wall-clock time used to stamp events.
type Clock func() time.Time

// NewRand returns a PCG-backed source. A zero seed picks one from the current time.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// uniform draws from [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// randInt draws an integer from [lo, hi], both inclusive.
func randInt(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}
