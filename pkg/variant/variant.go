// Package variant picks one reply out of a fixed set of interchangeable
// texts. The choice is a seam so tests can force it.
package variant

import (
	"math/rand/v2"
	"sync"
)

// Chooser returns an index in [0, n). n is always > 0.
type Chooser interface {
	Choose(n int) int
}

// Random is a Chooser backed by a seeded PCG source. It is safe for
// concurrent use.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *Random) Choose(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

// Fixed always picks the same index, clamped to the set size.
type Fixed int

func (f Fixed) Choose(n int) int {
	i := int(f)
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Sequence cycles through the given indexes, each clamped to the set size.
type Sequence struct {
	mu    sync.Mutex
	picks []int
	next  int
}

func NewSequence(picks ...int) *Sequence {
	return &Sequence{picks: picks}
}

func (s *Sequence) Choose(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.picks) == 0 {
		return 0
	}
	pick := s.picks[s.next%len(s.picks)]
	s.next++
	return Fixed(pick).Choose(n)
}

// Pick returns one element of options using c.
func Pick(c Chooser, options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[c.Choose(len(options))]
}
