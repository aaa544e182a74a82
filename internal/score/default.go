package score

import (
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
)

type DefaultScorer struct {
	Judgements game.Judgements
}

func NewDefaultScorer(js game.Judgements) *DefaultScorer {
	if len(js) == 0 {
		js = game.DefaultJudgements()
	}
	return &DefaultScorer{Judgements: js}
}

func abs(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}

func (s *DefaultScorer) Distance(n *game.PendingNote, hitTime time.Duration) time.Duration {
	return n.Event.Time - hitTime
}

// Notes must be in chart order. Equal distances keep the earliest note.
func (s *DefaultScorer) Closest(notes []*game.PendingNote, hitTime time.Duration) (int, time.Duration) {
	closest := -1
	distance := time.Duration(0)
	absDistance := time.Duration(0)

	for i, note := range notes {
		dd := s.Distance(note, hitTime)
		d := abs(dd)
		if closest == -1 || d < absDistance {
			closest = i
			distance = dd
			absDistance = d
		} else if d > absDistance {
			// already found the closest, and this d is > md
			break
		}
	}
	return closest, distance
}

func (s *DefaultScorer) Judge(d time.Duration) (*game.Judgement, bool) {
	for i := range s.Judgements {
		if d <= s.Judgements[i].Time {
			return &s.Judgements[i], true
		}
	}
	return nil, false
}

func (s *DefaultScorer) MissAfter() time.Duration {
	return s.Judgements.Worst()
}
