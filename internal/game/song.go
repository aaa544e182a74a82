package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Song struct {
	Title     string
	Artist    string
	AudioFile string
	Chart     Chart
}

func (s *Song) String() string {
	if s.Artist == "" {
		return s.Title
	}
	return s.Artist + " - " + s.Title
}

var ErrNoSong = errors.New("no such song")

// FindSong selects a song by index or by case-insensitive title.
// An empty key selects the first song.
func FindSong(songs []*Song, key string) (*Song, error) {
	if len(songs) == 0 {
		return nil, ErrNoSong
	}
	if key == "" {
		return songs[0], nil
	}
	if i, err := strconv.Atoi(key); nil == err {
		if i < 0 || i >= len(songs) {
			return nil, fmt.Errorf("%v: %w", key, ErrNoSong)
		}
		return songs[i], nil
	}
	for _, s := range songs {
		if strings.EqualFold(s.Title, key) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%v: %w", key, ErrNoSong)
}
