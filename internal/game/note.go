package game

import (
	"math"
	"time"
)

// NoteID identifies a spawned note for the lifetime of a session.
// It is the index of the source event in Chart.Events.
type NoteID int

type ChartEvent struct {
	Time       time.Duration // The time the note should be hit
	Lane       int           // The input channel, starting at 1
	Instrument string        // Visual asset id, opaque to the engine
}

type PendingNote struct {
	ID        NoteID
	Event     ChartEvent
	SpawnedAt time.Duration // Elapsed playback time when the note was spawned
}

// Progress is how far the note has travelled towards the strike line,
// 0 when just spawned and 1 at the intended hit time.
func (n *PendingNote) Progress(elapsed, noteSpeed time.Duration) float64 {
	return 1 - float64(n.Event.Time-elapsed)/float64(noteSpeed)
}

// Seconds converts a float second value, as found in chart files,
// rounding to the nearest nanosecond.
func Seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
