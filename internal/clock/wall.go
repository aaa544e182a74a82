package clock

import (
	"sync"
	"time"
)

// Wall is a pausable clock driven by the system monotonic clock, used
// when no audio is played. It ends once length has elapsed.
type Wall struct {
	mu sync.RWMutex

	length  time.Duration
	started bool
	paused  bool
	start   time.Time     // Playback epoch, adjusted for pauses
	pauseAt time.Time     // When the current pause started
	frozen  time.Duration // Elapsed time while paused

	now func() time.Time
}

func NewWall(length time.Duration) *Wall {
	return &Wall{length: length, paused: true, now: time.Now}
}

func (w *Wall) Ready() <-chan error {
	return ready(nil)
}

func (w *Wall) Play() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.paused {
		return
	}
	now := w.now()
	if !w.started {
		w.started = true
		w.start = now
	} else {
		w.start = w.start.Add(now.Sub(w.pauseAt))
	}
	w.paused = false
}

func (w *Wall) Pause() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.paused {
		return
	}
	w.pauseAt = w.now()
	w.frozen = w.pauseAt.Sub(w.start)
	w.paused = true
}

func (w *Wall) Now() time.Duration {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.paused {
		return w.frozen
	}
	return w.now().Sub(w.start)
}

func (w *Wall) Paused() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.paused
}

func (w *Wall) Ended() bool {
	return w.Now() >= w.length
}
