package core

import "math/rand/v2"

// RNG wraps a PCG generator so a seed always yields the same sequence.
type RNG struct {
	r *rand.Rand
}

// NewRNG seeds a PCG generator with seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Source returns the generator for callers that draw their own values.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillBools sets every entry of buf to a fair coin flip drawn from r.
func FillBools(r *rand.Rand, buf []bool) {
	for i := range buf {
		buf[i] = r.IntN(2) == 1
	}
}
