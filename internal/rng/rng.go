// Package rng provides the seeded random source threaded through every
// decision module. Matches are reproducible given the same seed.
package rng

import "math/rand"

// Rand is the interface decision modules accept. *Source satisfies it for
// simulation; Scripted satisfies it for deterministic tests.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Source is a seeded random source for one match instance.
type Source struct {
	r *rand.Rand
}

// New creates a Source from a seed.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a value in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Intn returns a value in [0, n).
func (s *Source) Intn(n int) int {
	return s.r.Intn(n)
}

// Range returns a value in [min, max). Returns min when max <= min.
func Range(r Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.Float64()*(max-min)
}

// Variance returns a value in [-d, +d). A Float64 of exactly 0.5 yields zero.
func Variance(r Rand, d float64) float64 {
	return -d + r.Float64()*2*d
}

// Chance reports true with probability p.
func Chance(r Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}
