package parser

import "git.lost.host/meutraa/lanes/internal/game"

type Parser interface {
	Parse(file string) ([]*game.Song, error)
}
