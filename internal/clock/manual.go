package clock

import (
	"sync"
	"time"
)

// Manual is a clock that only moves when told to.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	paused bool
	ended  bool
	err    error
}

func NewManual() *Manual {
	return &Manual{paused: true}
}

// Fail makes Ready report err.
func (m *Manual) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *Manual) Ready() <-chan error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return ready(m.err)
}

func (m *Manual) Play() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paused = false
}

func (m *Manual) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paused = true
}

func (m *Manual) Set(t time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

func (m *Manual) Advance(d time.Duration) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now += d
	return m.now
}

func (m *Manual) End() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ended = true
}

func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) Paused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paused
}

func (m *Manual) Ended() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ended
}
