package rng

import (
	"math/rand"
	"time"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded is a deterministic Generator backed by math/rand
// Two Seeded generators created with the same seed produce the same sequence
type Seeded struct {
	seed int64
	rng  *rand.Rand
}

// NewSeeded returns a deterministic generator
// If seed is 0, the current time is used
func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Seeded{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}

// Int63 returns a non-negative random 63-bit integer
// Useful for deriving independent child seeds
func (s *Seeded) Int63() int64 {
	return s.rng.Int63()
}

// Seed returns the seed the generator was created with
func (s *Seeded) Seed() int64 {
	return s.seed
}
