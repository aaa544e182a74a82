package engine

import (
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
)

// Listener receives every state change of a session, in the order it
// happened. Implementations must not call back into the session.
type Listener interface {
	NoteSpawned(note *game.PendingNote, travel time.Duration)
	NoteProgress(id game.NoteID, ratio float64)
	NoteExpired(id game.NoteID)
	Hit(result HitResult)
	Miss(combo int)
	NoMatch(lane int)
}

type NopListener struct{}

func (NopListener) NoteSpawned(*game.PendingNote, time.Duration) {}
func (NopListener) NoteProgress(game.NoteID, float64)            {}
func (NopListener) NoteExpired(game.NoteID)                      {}
func (NopListener) Hit(HitResult)                                {}
func (NopListener) Miss(int)                                     {}
func (NopListener) NoMatch(int)                                  {}
