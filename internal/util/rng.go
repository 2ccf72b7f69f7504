package util

import "math/rand"

// New returns a deterministic source. Seed 0 is treated as 1.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// RunSeed derives the seed of the i-th run of a batch from its base seed.
func RunSeed(base int64, i int) int64 {
	return base + int64(i)*7919
}
