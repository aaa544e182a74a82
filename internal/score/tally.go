package score

import (
	"fmt"
	"math"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
)

// Tally is the score and combo of a single session.
// Score never decreases; any miss resets the combo.
type Tally struct {
	Score    int
	Combo    int
	MaxCombo int
	Counts   [game.Miss + 1]int // Indexed by grade

	// Offset statistics over hits, signed, positive when early
	TotalError time.Duration
	hits       int
	mean, m2   float64
}

func (t *Tally) Hit(j *game.Judgement, offset time.Duration) {
	t.Score += j.Points
	t.Combo++
	if t.Combo > t.MaxCombo {
		t.MaxCombo = t.Combo
	}
	t.Counts[j.Grade]++

	t.TotalError += abs(offset)
	t.hits++
	x := float64(offset)
	delta := x - t.mean
	t.mean += delta / float64(t.hits)
	t.m2 += delta * (x - t.mean)
}

func (t *Tally) Miss() {
	t.Combo = 0
	t.Counts[game.Miss]++
}

func (t *Tally) Reset() {
	*t = Tally{}
}

func (t *Tally) Hits() int {
	return t.hits
}

func (t *Tally) Mean() time.Duration {
	return time.Duration(math.Round(t.mean))
}

// Stdev is the sample standard deviation of hit offsets.
func (t *Tally) Stdev() time.Duration {
	if t.hits < 2 {
		return 0
	}
	return time.Duration(math.Round(math.Sqrt(t.m2 / float64(t.hits-1))))
}

// Label is the combo text shown after a transition.
func Label(g game.Grade, combo int) string {
	if combo > 1 {
		return fmt.Sprintf("%v\n%v Combo", g, combo)
	}
	return g.String()
}
