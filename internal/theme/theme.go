package theme

import "git.lost.host/meutraa/lanes/internal/game"

type Theme interface {
	RenderNote(lane int, instrument string) string
	RenderHitField(lane int) string
	RenderGrade(grade game.Grade, text string) string
}
