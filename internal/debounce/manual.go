package debounce

import (
	"sync"
	"time"
)

// NewManual creates a deterministic scheduler implementation suitable for
// tests. Timers never fire on their own; call Fire to run the pending callback
// for a key synchronously.
func NewManual() *Manual {
	return &Manual{pending: make(map[string]manualEntry)}
}

// Manual is a hand-driven Scheduler. It records armed keys and their delays so
// tests can assert replacement semantics and fire callbacks deterministically.
type Manual struct {
	mu      sync.Mutex
	pending map[string]manualEntry
	armed   int
}

type manualEntry struct {
	delay time.Duration
	fn    func()
}

// Arm records the callback for the key, replacing any previous entry.
func (m *Manual) Arm(key string, delay time.Duration, fn func()) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[key] = manualEntry{delay: delay, fn: fn}
	m.armed++
}

// Cancel drops the pending entry for the key.
func (m *Manual) Cancel(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pending, key)
}

// Fire runs and clears the pending callback for the key. It reports whether a
// callback was pending.
func (m *Manual) Fire(key string) bool {
	m.mu.Lock()
	entry, ok := m.pending[key]
	delete(m.pending, key)
	m.mu.Unlock()

	if !ok {
		return false
	}
	entry.fn()
	return true
}

// Pending reports whether the key currently has an armed callback.
func (m *Manual) Pending(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.pending[key]
	return ok
}

// Delay returns the delay recorded for the key's pending callback, or zero.
func (m *Manual) Delay(key string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending[key].delay
}

// ArmCount returns the total number of Arm calls, including replacements.
func (m *Manual) ArmCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.armed
}
