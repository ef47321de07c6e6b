// Package shuffle produces random permutations of decks.
package shuffle

import (
	"math/rand"
	"time"
)

// Shuffler owns the random source used for deck ordering.
type Shuffler struct {
	rnd *rand.Rand
}

// New returns a Shuffler seeded with the current time.
func New() *Shuffler {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Shuffler with a fixed seed for reproducible order.
func NewSeeded(seed int64) *Shuffler {
	return &Shuffler{rnd: rand.New(rand.NewSource(seed))}
}

// Shuffle returns a uniformly permuted copy of seq. The input is not modified.
func Shuffle[T any](s *Shuffler, seq []T) []T {
	out := make([]T, len(seq))
	copy(out, seq)
	for i := len(out) - 1; i > 0; i-- {
		j := s.rnd.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
