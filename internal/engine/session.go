package engine

import (
	"sort"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/score"
)

type HitResult struct {
	Note      *game.PendingNote
	Offset    time.Duration // Note time minus action time
	Judgement *game.Judgement
	Score     int
	Combo     int
}

// Session is the state of one play through a chart. It is not safe for
// concurrent use; a single goroutine drives it.
type Session struct {
	chart    *game.Chart
	scorer   score.Scorer
	listener Listener

	cursor  int                   // Next chart event to spawn
	pending [][]*game.PendingNote // Indexed by lane, each in chart order
	count   int
	tally   score.Tally
	inputs  []game.Input
}

func New(chart *game.Chart, scorer score.Scorer, listener Listener) *Session {
	if nil == listener {
		listener = NopListener{}
	}
	s := &Session{
		chart:    chart,
		scorer:   scorer,
		listener: listener,
	}
	s.Reset()
	return s
}

// Reset returns the session to its starting state.
func (s *Session) Reset() {
	s.cursor = 0
	s.pending = make([][]*game.PendingNote, s.chart.Lanes()+1)
	s.count = 0
	s.tally.Reset()
	s.inputs = nil
}

func (s *Session) Chart() *game.Chart {
	return s.chart
}

func (s *Session) Cursor() int {
	return s.cursor
}

func (s *Session) Tally() score.Tally {
	return s.tally
}

func (s *Session) Inputs() []game.Input {
	return s.inputs
}

// Pending returns the notes waiting on a lane, in chart order.
func (s *Session) Pending(lane int) []*game.PendingNote {
	if lane < 0 || lane >= len(s.pending) {
		return nil
	}
	return s.pending[lane]
}

func (s *Session) PendingCount() int {
	return s.count
}

// Done reports whether every note has been spawned and resolved.
func (s *Session) Done() bool {
	return s.cursor >= len(s.chart.Events) && s.count == 0
}

// Tick spawns the notes that are due and then expires the stale ones,
// so a note is always eligible for a hit on the tick it appears.
func (s *Session) Tick(elapsed time.Duration) {
	s.Advance(elapsed)
	s.Sweep(elapsed)
}

// Advance spawns every note whose travel to the strike line has begun.
// The cursor never moves backwards.
func (s *Session) Advance(elapsed time.Duration) []*game.PendingNote {
	var spawned []*game.PendingNote
	events := s.chart.Events
	for s.cursor < len(events) && events[s.cursor].Time <= elapsed+s.chart.NoteSpeed {
		note := &game.PendingNote{
			ID:        game.NoteID(s.cursor),
			Event:     events[s.cursor],
			SpawnedAt: elapsed,
		}
		s.pending[note.Event.Lane] = append(s.pending[note.Event.Lane], note)
		s.count++
		s.cursor++
		spawned = append(spawned, note)
		s.listener.NoteSpawned(note, s.chart.NoteSpeed)
	}
	return spawned
}

// Sweep expires the notes whose time is further in the past than the
// loosest window and reports the progress of the others.
func (s *Session) Sweep(elapsed time.Duration) []*game.PendingNote {
	var expired []*game.PendingNote
	worst := s.scorer.MissAfter()
	for lane, notes := range s.pending {
		kept := notes[:0]
		for _, note := range notes {
			if note.Event.Time-elapsed < -worst {
				expired = append(expired, note)
				continue
			}
			kept = append(kept, note)
			s.listener.NoteProgress(note.ID, note.Progress(elapsed, s.chart.NoteSpeed))
		}
		for i := len(kept); i < len(notes); i++ {
			notes[i] = nil
		}
		s.pending[lane] = kept
	}

	sort.Slice(expired, func(i, j int) bool { return expired[i].ID < expired[j].ID })
	for _, note := range expired {
		s.count--
		s.tally.Miss()
		s.listener.NoteExpired(note.ID)
		s.listener.Miss(s.tally.Combo)
	}
	return expired
}

// Hit resolves an action against the nearest pending note of the lane.
// It returns false when the lane is empty or the nearest note is outside
// every window, in which case nothing changes.
func (s *Session) Hit(lane int, elapsed time.Duration) (HitResult, bool) {
	s.inputs = append(s.inputs, game.Input{Lane: lane, HitTime: elapsed})

	notes := s.Pending(lane)
	i, distance := s.scorer.Closest(notes, elapsed)
	if i < 0 {
		s.listener.NoMatch(lane)
		return HitResult{}, false
	}
	judgement, ok := s.scorer.Judge(abs(distance))
	if !ok {
		s.listener.NoMatch(lane)
		return HitResult{}, false
	}

	note := notes[i]
	copy(notes[i:], notes[i+1:])
	notes[len(notes)-1] = nil
	s.pending[lane] = notes[:len(notes)-1]
	s.count--

	s.tally.Hit(judgement, distance)
	result := HitResult{
		Note:      note,
		Offset:    distance,
		Judgement: judgement,
		Score:     s.tally.Score,
		Combo:     s.tally.Combo,
	}
	s.listener.Hit(result)
	return result, true
}

func abs(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}
