// Package scheduler provides cancellable one-shot and recurring timers.
//
// Deferred battle continuations (counter-attacks, respawns) and the MP
// regeneration tick both run through this abstraction so sessions can tear
// them down explicitly, and so tests can fire them by hand. Callbacks carry
// no implicit validity; callers re-check their own state at fire time.
package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Task is a scheduled callback that can be cancelled before (or after) firing
type Task interface {
	Cancel()
}

// Scheduler schedules callbacks
type Scheduler interface {
	// After runs fn once after d
	After(d time.Duration, fn func()) Task
	// Every runs fn repeatedly with period d until cancelled
	Every(d time.Duration, fn func()) Task
}

type real struct {
	cron *cron.Cron
}

// New returns a Scheduler backed by the system timer. Recurring tasks run on
// a cron runner with @every schedules.
func New() Scheduler {
	c := cron.New(cron.WithSeconds())
	c.Start()
	return &real{cron: c}
}

type timerTask struct {
	t *time.Timer
}

func (t *timerTask) Cancel() {
	t.t.Stop()
}

func (r *real) After(d time.Duration, fn func()) Task {
	return &timerTask{t: time.AfterFunc(d, fn)}
}

type cronTask struct {
	c  *cron.Cron
	id cron.EntryID
}

func (t *cronTask) Cancel() {
	t.c.Remove(t.id)
}

func (r *real) Every(d time.Duration, fn func()) Task {
	id, err := r.cron.AddFunc(fmt.Sprintf("@every %s", d), fn)
	if err != nil {
		// @every with a positive duration always parses; a failure here means
		// the duration itself is unusable, so fall back to an immediate no-op.
		return &timerTask{t: time.AfterFunc(0, func() {})}
	}
	return &cronTask{c: r.cron, id: id}
}

// Manual is a Scheduler that only fires when told to. For tests.
type Manual struct {
	mu      sync.Mutex
	nextID  int
	pending map[int]*manualEntry
}

type manualEntry struct {
	fn        func()
	recurring bool
}

// NewManual returns an empty manual scheduler
func NewManual() *Manual {
	return &Manual{pending: make(map[int]*manualEntry)}
}

type manualTask struct {
	s  *Manual
	id int
}

func (t *manualTask) Cancel() {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	delete(t.s.pending, t.id)
}

// After registers fn without firing it
func (s *Manual) After(_ time.Duration, fn func()) Task {
	return s.add(fn, false)
}

// Every registers fn without firing it
func (s *Manual) Every(_ time.Duration, fn func()) Task {
	return s.add(fn, true)
}

func (s *Manual) add(fn func(), recurring bool) Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.pending[id] = &manualEntry{fn: fn, recurring: recurring}
	return &manualTask{s: s, id: id}
}

// Fire runs all pending callbacks. One-shots are removed, recurring tasks
// stay registered. Returns the number of callbacks run.
func (s *Manual) Fire() int {
	s.mu.Lock()
	var fns []func()
	for id, e := range s.pending {
		fns = append(fns, e.fn)
		if !e.recurring {
			delete(s.pending, id)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// Pending reports how many tasks are registered
func (s *Manual) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
