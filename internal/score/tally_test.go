package score

import (
	"testing"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
)

func TestTally(t *testing.T) {
	js := game.DefaultJudgements()
	perfect, good, ok := &js[0], &js[1], &js[2]

	var tally Tally
	steps := []struct {
		judgement *game.Judgement // nil for a miss
		score     int
		combo     int
	}{
		{perfect, 100, 1},
		{good, 150, 2},
		{nil, 150, 0},
		{nil, 150, 0},
		{ok, 170, 1},
		{perfect, 270, 2},
		{perfect, 370, 3},
	}
	last := 0
	for i, step := range steps {
		if nil == step.judgement {
			tally.Miss()
		} else {
			tally.Hit(step.judgement, 10*time.Millisecond)
		}
		if tally.Score != step.score || tally.Combo != step.combo {
			t.Errorf("step %v: expected %v/%v, got %v/%v", i, step.score, step.combo, tally.Score, tally.Combo)
		}
		if tally.Score < last {
			t.Errorf("step %v: score decreased", i)
		}
		last = tally.Score
	}
	if tally.MaxCombo != 3 {
		t.Errorf("expected max combo 3, got %v", tally.MaxCombo)
	}
	expected := [game.Miss + 1]int{3, 1, 1, 2}
	if tally.Counts != expected {
		t.Errorf("expected counts %v, got %v", expected, tally.Counts)
	}
	if tally.Hits() != 5 || tally.TotalError != 50*time.Millisecond {
		t.Errorf("expected 5 hits with 50ms error, got %v %v", tally.Hits(), tally.TotalError)
	}

	tally.Reset()
	if tally.Score != 0 || tally.Combo != 0 || tally.MaxCombo != 0 || tally.Hits() != 0 {
		t.Errorf("reset should zero the tally, got %+v", tally)
	}
}

func TestTallyStats(t *testing.T) {
	js := game.DefaultJudgements()
	var tally Tally
	if tally.Mean() != 0 || tally.Stdev() != 0 {
		t.Error("an empty tally has no stats")
	}
	for _, ms := range []int{-20, 0, 20, 40} {
		tally.Hit(&js[0], time.Duration(ms)*time.Millisecond)
	}
	if tally.Mean() != 10*time.Millisecond {
		t.Errorf("expected mean 10ms, got %v", tally.Mean())
	}
	// sample variance of -20, 0, 20, 40 is 2000/3 ms²
	stdev := tally.Stdev()
	if stdev < 25819*time.Microsecond || stdev > 25821*time.Microsecond {
		t.Errorf("expected stdev near 25.82ms, got %v", stdev)
	}
	if tally.TotalError != 80*time.Millisecond {
		t.Errorf("expected total error 80ms, got %v", tally.TotalError)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		grade    game.Grade
		combo    int
		expected string
	}{
		{game.Perfect, 1, "Perfect!"},
		{game.Good, 0, "Good"},
		{game.OK, 2, "OK\n2 Combo"},
		{game.Perfect, 12, "Perfect!\n12 Combo"},
		{game.Miss, 0, "Miss"},
	}
	for _, test := range tests {
		if label := Label(test.grade, test.combo); label != test.expected {
			t.Errorf("expected %q, got %q", test.expected, label)
		}
	}
}
