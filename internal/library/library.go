package library

import (
	"errors"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
)

var ErrNotFound = errors.New("song not found")

// Library is a database of songs and their charts.
type Library interface {
	Init(file string) error
	Deinit()

	// Save stores a song, replacing any song with an identical chart
	Save(song *game.Song) (int64, error)

	// Load a song by id or by case-insensitive title
	Load(key string) (*game.Song, error)

	List() ([]Entry, error)
}

type Entry struct {
	ID     int64
	Title  string
	Artist string
	Notes  int
	Length time.Duration
}
