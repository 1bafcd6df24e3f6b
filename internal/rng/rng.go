// Package rng provides the injectable randomness source used by the
// battle engine. Every roll goes through a Source so tests can supply a
// seeded or scripted implementation and replay resolutions exactly.
package rng

import "math/rand"

// Source produces integers in a caller-supplied inclusive range.
type Source interface {
	// NextInt returns a value in [min, max]. When max <= min the result
	// is min.
	NextInt(min, max int) int
}

type seeded struct {
	r *rand.Rand
}

// NewSeeded returns a Source backed by math/rand with the given seed.
// The same seed yields the same roll sequence.
func NewSeeded(seed int64) Source {
	return &seeded{r: rand.New(rand.NewSource(seed))}
}

func (s *seeded) NextInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.Intn(max-min+1)
}
