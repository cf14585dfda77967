package play

import "math/rand/v2"

// Rand is a deterministic random number generator. Its whole state lives in
// the struct, so copying a Rand gives a second generator that produces exactly
// the same numbers as the first one from then on.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed int64) (r Rand) {
	r.pcg.Seed(uint64(seed), 0x9e3779b97f4a7c15)
	return
}

// RInt returns a random number in [min, max].
func (r *Rand) RInt(min, max int64) int64 {
	if min > max {
		min, max = max, min
	}
	return min + rand.New(&r.pcg).Int64N(max-min+1)
}
