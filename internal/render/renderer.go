package render

import (
	"time"

	"git.lost.host/meutraa/lanes/internal/engine"
	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/score"
)

// Renderer presents a session. It receives every engine event and is
// asked to draw once per frame.
type Renderer interface {
	engine.Listener

	Init() error
	Deinit() error
	Frame(elapsed time.Duration, tally score.Tally)
	Summary(song *game.Song, tally score.Tally)
}
