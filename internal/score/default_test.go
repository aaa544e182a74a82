package score

import (
	"testing"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
)

func notesAt(ms ...int) []*game.PendingNote {
	notes := make([]*game.PendingNote, len(ms))
	for i, m := range ms {
		notes[i] = &game.PendingNote{
			ID:    game.NoteID(i),
			Event: game.ChartEvent{Time: time.Duration(m) * time.Millisecond, Lane: 1},
		}
	}
	return notes
}

var closestTests = []struct {
	notes    []int
	hit      int
	index    int
	distance time.Duration
}{
	{[]int{}, 1000, -1, 0},
	{[]int{1000}, 1000, 0, 0},
	{[]int{1000}, 5000, 0, -4000 * time.Millisecond},
	{[]int{1000, 2000, 3000}, 1900, 1, 100 * time.Millisecond},
	{[]int{1000, 2000, 3000}, 2600, 2, 400 * time.Millisecond},
	{[]int{1000, 2000}, 1500, 0, -500 * time.Millisecond},
	{[]int{1900, 1900, 2000}, 2000, 2, 0},
	{[]int{1900, 1900, 2000}, 1800, 0, 100 * time.Millisecond},
	{[]int{2000, 2000}, 2000, 0, 0},
}

func TestClosest(t *testing.T) {
	s := NewDefaultScorer(nil)
	for _, test := range closestTests {
		index, distance := s.Closest(notesAt(test.notes...), time.Duration(test.hit)*time.Millisecond)
		if index != test.index || distance != test.distance {
			t.Log("   Notes", test.notes)
			t.Log("     Hit", test.hit)
			t.Log("  Result", index, distance)
			t.Log("Expected", test.index, test.distance)
			t.Fail()
		}
	}
}

func TestJudge(t *testing.T) {
	s := NewDefaultScorer(game.DefaultJudgements())
	tests := []struct {
		ms    int
		grade game.Grade
		ok    bool
	}{
		{0, game.Perfect, true},
		{80, game.Perfect, true},
		{81, game.Good, true},
		{120, game.Good, true},
		{121, game.OK, true},
		{160, game.OK, true},
		{161, 0, false},
		{5000, 0, false},
	}
	for _, test := range tests {
		j, ok := s.Judge(time.Duration(test.ms) * time.Millisecond)
		if ok != test.ok || (ok && j.Grade != test.grade) {
			t.Errorf("%vms: expected %v %v, got %v %v", test.ms, test.grade, test.ok, j, ok)
		}
	}
	if s.MissAfter() != 160*time.Millisecond {
		t.Errorf("expected misses after 160ms, got %v", s.MissAfter())
	}
}

var result int

func BenchmarkClosest(b *testing.B) {
	s := NewDefaultScorer(nil)
	ms := make([]int, 64)
	for i := range ms {
		ms[i] = 1000 + i*125
	}
	notes := notesAt(ms...)
	hit := 4321 * time.Millisecond
	b.ResetTimer()

	total := 0
	for n := 0; n < b.N; n++ {
		i, _ := s.Closest(notes, hit)
		total += i
	}
	result = total
}
