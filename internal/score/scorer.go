package score

import (
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
)

type Scorer interface {
	// Signed distance from the action to the note, positive when early
	Distance(n *game.PendingNote, hitTime time.Duration) time.Duration

	// Index of the note nearest to hitTime, or -1 when notes is empty
	Closest(notes []*game.PendingNote, hitTime time.Duration) (int, time.Duration)

	// The judgement for an absolute distance, false when past every window
	Judge(abs time.Duration) (*game.Judgement, bool)

	// How far past its time a note may be before it counts as missed
	MissAfter() time.Duration
}
