package engine

import (
	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/score"
)

// Replay plays recorded inputs against a fresh session and returns the
// final tally once every note has been resolved.
func Replay(chart *game.Chart, scorer score.Scorer, inputs []game.Input) score.Tally {
	s := New(chart, scorer, nil)
	for _, input := range inputs {
		s.Tick(input.HitTime)
		s.Hit(input.Lane, input.HitTime)
	}
	s.Tick(chart.Length() + scorer.MissAfter() + 1)
	return s.Tally()
}
