package testdata

import (
	_ "embed"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
)

// SongJSON is the chart file behind Song.
//
//go:embed song.json
var SongJSON []byte

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Song is song.json as the parser produces it, without the audio path.
func Song() *game.Song {
	return &game.Song{
		Title:     "Gamelan Pagi",
		Artist:    "Sanggar Lima",
		AudioFile: "assets/audio/gamelan-pagi.ogg",
		Chart: game.Chart{
			NoteSpeed: ms(1500),
			Events: []game.ChartEvent{
				{Time: ms(2000), Lane: 1, Instrument: "kendang"},
				{Time: ms(2500), Lane: 2, Instrument: "saron"},
				{Time: ms(3000), Lane: 3, Instrument: "bonang"},
				{Time: ms(3000), Lane: 4, Instrument: "gong"},
				{Time: ms(3500), Lane: 1, Instrument: "kendang"},
				{Time: ms(3750), Lane: 1, Instrument: "kendang"},
				{Time: ms(4000), Lane: 2, Instrument: "saron"},
				{Time: ms(4500), Lane: 3, Instrument: "bonang"},
				{Time: ms(5000), Lane: 4, Instrument: "gong"},
				{Time: ms(5250), Lane: 2, Instrument: "saron"},
				{Time: ms(5500), Lane: 1, Instrument: "kendang"},
				{Time: ms(6000), Lane: 4, Instrument: "gong"},
			},
		},
	}
}

// Single is a one note chart: time 2s, lane 1, note speed 1s.
func Single() *game.Chart {
	return &game.Chart{
		NoteSpeed: time.Second,
		Events:    []game.ChartEvent{{Time: 2 * time.Second, Lane: 1, Instrument: "drum"}},
	}
}
