package painterly

import "math/rand/v2"

// Rand is the random stream consumed by sampling and stroke perturbation.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// NormFloat64 returns a standard normal value.
	NormFloat64() float64
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// NewRand returns a PCG-backed stream that is reproducible for a given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// uniform returns a value in [lo, hi).
func uniform(rng Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// gaussian returns a normal value with the given mean and standard deviation.
func gaussian(rng Rand, mean, sd float64) float64 {
	return mean + sd*rng.NormFloat64()
}
