// Package random provides the seedable random source shared by a game session.
package random

import "math/rand"

// Source is the random number capability the simulation depends on.
type Source interface {
	// Intn returns a uniform integer in [0, n). It returns 0 when n <= 0.
	Intn(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// Rand is a Source backed by math/rand with an explicit seed.
type Rand struct {
	r *rand.Rand
}

// New creates a deterministic source for the given seed.
func New(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Intn implements Source.
func (s *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.Intn(n)
}

// Float64 implements Source.
func (s *Rand) Float64() float64 {
	return s.r.Float64()
}
