package clock

import "time"

// Source is the playback position the engine is synchronised to.
type Source interface {
	// Ready delivers exactly one value: nil once playback can start,
	// or the reason it never will.
	Ready() <-chan error

	Play()
	Pause()

	// Now is the elapsed playback time. It must be safe to call from
	// any goroutine.
	Now() time.Duration
	Paused() bool
	Ended() bool
}

// ready returns an already fired readiness channel.
func ready(err error) <-chan error {
	ch := make(chan error, 1)
	ch <- err
	return ch
}
