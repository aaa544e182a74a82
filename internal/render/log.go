package render

import (
	"log"
	"time"

	"git.lost.host/meutraa/lanes/internal/engine"
	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/score"
)

// LogRenderer presents a session through a logger, for headless play.
// Progress is only logged when Verbose is set.
type LogRenderer struct {
	Logger  *log.Logger
	Verbose bool
}

func NewLogRenderer(logger *log.Logger, verbose bool) *LogRenderer {
	return &LogRenderer{Logger: logger, Verbose: verbose}
}

func (r *LogRenderer) Init() error   { return nil }
func (r *LogRenderer) Deinit() error { return nil }

func (r *LogRenderer) NoteSpawned(note *game.PendingNote, travel time.Duration) {
	if r.Verbose {
		r.Logger.Printf("spawn %v lane=%v time=%v travel=%v", note.ID, note.Event.Lane, note.Event.Time, travel)
	}
}

func (r *LogRenderer) NoteProgress(id game.NoteID, ratio float64) {}

func (r *LogRenderer) NoteExpired(id game.NoteID) {
	r.Logger.Printf("expired %v", id)
}

func (r *LogRenderer) Hit(result engine.HitResult) {
	r.Logger.Printf("%v lane=%v offset=%v score=%v combo=%v",
		result.Judgement.Grade, result.Note.Event.Lane, result.Offset, result.Score, result.Combo)
}

func (r *LogRenderer) Miss(combo int) {
	r.Logger.Println(score.Label(game.Miss, combo))
}

func (r *LogRenderer) NoMatch(lane int) {
	if r.Verbose {
		r.Logger.Printf("nothing to hit on lane %v", lane)
	}
}

func (r *LogRenderer) Frame(elapsed time.Duration, tally score.Tally) {}

func (r *LogRenderer) Summary(song *game.Song, tally score.Tally) {
	r.Logger.Printf("Game over! %v: score=%v max combo=%v perfect=%v good=%v ok=%v miss=%v",
		song, tally.Score, tally.MaxCombo,
		tally.Counts[game.Perfect], tally.Counts[game.Good], tally.Counts[game.OK], tally.Counts[game.Miss])
}
