// Package debounce provides a keyed timer service: arming a key replaces any
// timer previously armed for that key, so only the last request within a burst
// fires. Each key is independent.
package debounce

import (
	"sync"
	"time"
)

// Scheduler arms and cancels keyed timers. Arm replaces any pending timer for
// the same key to keep re-arming idempotent; Cancel is a no-op for unknown keys.
type Scheduler interface {
	Arm(key string, delay time.Duration, fn func())
	Cancel(key string)
}

// New creates a Scheduler backed by time.AfterFunc. Callbacks run on their own
// goroutine once the delay elapses without the key being re-armed.
func New() Scheduler {
	return &timerScheduler{timers: make(map[string]*time.Timer)}
}

type timerScheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

func (s *timerScheduler) Arm(key string, delay time.Duration, fn func()) {
	if fn == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.timers[key]; ok {
		existing.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		if s.timers[key] == timer {
			delete(s.timers, key)
		}
		s.mu.Unlock()
		fn()
	})
	s.timers[key] = timer
}

func (s *timerScheduler) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.timers[key]; ok {
		existing.Stop()
		delete(s.timers, key)
	}
}
