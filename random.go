package main

import (
	"math/rand"
	"time"
)

// RandomSource provides the integers used to fill a sequence, allowing for testing
type RandomSource interface {
	IntRange(lo, hi int) int
}

type Randomizer struct {
	rnd *rand.Rand
}

// NewRandomizer initializes a new Randomizer instance with a clock-seeded random number generator.
func NewRandomizer() *Randomizer {
	return NewSeededRandomizer(time.Now().UnixNano())
}

// NewSeededRandomizer returns a Randomizer that yields the same values for the same seed
func NewSeededRandomizer(seed int64) *Randomizer {
	src := rand.NewSource(seed)
	return &Randomizer{
		rnd: rand.New(src),
	}
}

// IntRange returns a pseudo-random int in [lo,hi); hi-lo must be positive
func (r *Randomizer) IntRange(lo, hi int) int {
	return lo + r.rnd.Intn(hi-lo)
}
