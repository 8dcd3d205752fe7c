package game

import (
	"sync"
	"time"
)

// Scheduler defers a single action, typically the computer's move after a
// thinking delay. Scheduling a new action or cancelling supersedes any
// pending one: a superseded action never fires, so a decision scheduled
// against a game that has since been reset is discarded.
type Scheduler struct {
	mu  sync.Mutex
	gen uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) Schedule(delay time.Duration, fn func()) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()
	if delay < 0 {
		delay = 0
	}
	time.AfterFunc(delay, func() {
		s.run(gen, fn)
	})
}

func (s *Scheduler) Cancel() {
	s.mu.Lock()
	s.gen++
	s.mu.Unlock()
}

func (s *Scheduler) run(gen uint64, fn func()) {
	s.mu.Lock()
	stale := gen != s.gen
	s.mu.Unlock()
	if !stale {
		fn()
	}
}
