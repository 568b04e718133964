// Package rng provides an injectable random source so combat formulas can be
// driven deterministically in tests.
package rng

import (
	"math/rand"
	"sync"
)

// Roller is the random source used by the engine
type Roller interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// Seeded implements Roller over math/rand with an explicit seed
type Seeded struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeeded creates a roller with the given seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a value in [0, 1)
func (s *Seeded) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// Intn returns a value in [0, n)
func (s *Seeded) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

// Scripted replays a fixed sequence of values. For tests.
// Float64 values cycle through Floats; Intn values cycle through Ints,
// clamped into range.
type Scripted struct {
	mu     sync.Mutex
	Floats []float64
	Ints   []int
	fi, ii int
}

// Float64 returns the next scripted float
func (s *Scripted) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}

// Intn returns the next scripted int clamped to [0, n)
func (s *Scripted) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.ii%len(s.Ints)]
	s.ii++
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
