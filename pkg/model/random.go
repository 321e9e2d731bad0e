package model

import (
	"math/rand"
	"time"
)

// RandomSource is the source of every random choice made by the scheduler. *rand.Rand satisfies it.
type RandomSource interface {
	// Returns a uniformly distributed integer in [0, n)
	Intn(n int) int
	// Pseudo-randomizes the order of n elements
	Shuffle(n int, swap func(i, j int))
}

// Returns a source seeded with seed, or with the current time if seed is 0
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
