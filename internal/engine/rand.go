package engine

import "math/rand"

// spawnTwoProbability is the chance a spawned tile is a 2 rather than a 4.
const spawnTwoProbability = 0.9

// Rand is the random source used for tile spawning.
// *rand.Rand satisfies it; tests substitute scripted sources.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
