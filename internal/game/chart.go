package game

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoteSpeed    = errors.New("note speed must be positive")
	ErrNoEvents     = errors.New("chart has no events")
	ErrNegativeTime = errors.New("event time is negative")
	ErrBadLane      = errors.New("event lane must be at least 1")
	ErrUnsorted     = errors.New("events are not ordered by time")
)

type Chart struct {
	NoteSpeed time.Duration // Lead time between spawn and the intended hit
	Events    []ChartEvent
}

// Validate checks what the scheduler relies on. The cursor only ever moves
// forward, so events must be ordered by time.
func (c *Chart) Validate() error {
	if c.NoteSpeed <= 0 {
		return ErrNoteSpeed
	}
	if len(c.Events) == 0 {
		return ErrNoEvents
	}
	for i, e := range c.Events {
		if e.Time < 0 {
			return fmt.Errorf("event %d: %w", i, ErrNegativeTime)
		}
		if e.Lane < 1 {
			return fmt.Errorf("event %d: %w", i, ErrBadLane)
		}
		if i > 0 && e.Time < c.Events[i-1].Time {
			return fmt.Errorf("event %d at %v before %v: %w", i, e.Time, c.Events[i-1].Time, ErrUnsorted)
		}
	}
	return nil
}

// Lanes returns the highest lane used by the chart.
func (c *Chart) Lanes() int {
	lanes := 0
	for _, e := range c.Events {
		if e.Lane > lanes {
			lanes = e.Lane
		}
	}
	return lanes
}

// Length is the time of the last event.
func (c *Chart) Length() time.Duration {
	if len(c.Events) == 0 {
		return 0
	}
	return c.Events[len(c.Events)-1].Time
}
