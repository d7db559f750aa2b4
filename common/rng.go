package common

import (
	"math/rand/v2"
	"time"
)

// RNG wraps math/rand/v2 with the float32 draws the simulations need.
// It is not safe for concurrent use; give each owner its own RNG.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG from the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewTimeRNG creates an RNG seeded from the wall clock.
func NewTimeRNG() *RNG {
	return NewRNG(time.Now().UnixNano())
}

// Float32 returns a value in [0, 1).
func (r *RNG) Float32() float32 {
	return r.r.Float32()
}

// Range returns a value in [lo, hi).
func (r *RNG) Range(lo, hi float32) float32 {
	return lo + r.r.Float32()*(hi-lo)
}

// Int63 returns a non-negative int64, used to derive child seeds.
func (r *RNG) Int63() int64 {
	return r.r.Int64()
}
