package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"git.lost.host/meutraa/lanes/internal/game"
	"gopkg.in/yaml.v3"
)

var ErrFormat = errors.New("unknown chart format")

type DefaultParser struct{}

type rawEvent struct {
	Time       *float64 `json:"time" yaml:"time"`
	Lane       *int     `json:"lane" yaml:"lane"`
	Instrument string   `json:"instrument" yaml:"instrument"`
}

type rawSong struct {
	SongTitle string     `json:"songTitle" yaml:"songTitle"`
	Title     string     `json:"title" yaml:"title"`
	Artist    string     `json:"artist" yaml:"artist"`
	AudioFile string     `json:"audioFile" yaml:"audioFile"`
	NoteSpeed *float64   `json:"noteSpeed" yaml:"noteSpeed"`
	Events    []rawEvent `json:"events" yaml:"events"`
}

// A chart file holds either one song or a database of songs.
type rawFile struct {
	rawSong `yaml:",inline"`
	Songs   []rawSong `json:"songs" yaml:"songs"`
}

func (p *DefaultParser) Parse(file string) ([]*game.Song, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, err
	}
	songs, err := p.Decode(data, filepath.Ext(file), filepath.Dir(file))
	if nil != err {
		return nil, fmt.Errorf("%v: %w", file, err)
	}
	return songs, nil
}

// Decode parses chart data of the format named by ext (".json", ".yaml"
// or ".yml"). Relative audio paths are resolved against dir.
func (p *DefaultParser) Decode(data []byte, ext string, dir string) ([]*game.Song, error) {
	var raw rawFile
	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&raw); nil != err {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); nil != err {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%q: %w", ext, ErrFormat)
	}

	rs := raw.Songs
	if len(rs) == 0 {
		rs = []rawSong{raw.rawSong}
	}

	songs := make([]*game.Song, 0, len(rs))
	for i, r := range rs {
		song, err := p.convert(&r, dir)
		if nil != err {
			if len(rs) > 1 {
				return nil, fmt.Errorf("song %d: %w", i, err)
			}
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, nil
}

func (p *DefaultParser) convert(r *rawSong, dir string) (*game.Song, error) {
	title := r.Title
	if title == "" {
		title = r.SongTitle
	}
	switch {
	case title == "":
		return nil, errors.New("missing song title")
	case r.Artist == "":
		return nil, errors.New("missing artist")
	case r.AudioFile == "":
		return nil, errors.New("missing audio file")
	case nil == r.NoteSpeed:
		return nil, errors.New("missing note speed")
	}

	audioFile := r.AudioFile
	if dir != "" && !filepath.IsAbs(audioFile) {
		audioFile = filepath.Join(dir, audioFile)
	}

	events := make([]game.ChartEvent, len(r.Events))
	for i, e := range r.Events {
		if nil == e.Time || nil == e.Lane {
			return nil, fmt.Errorf("event %d: missing time or lane", i)
		}
		events[i] = game.ChartEvent{
			Time:       game.Seconds(*e.Time),
			Lane:       *e.Lane,
			Instrument: e.Instrument,
		}
	}

	song := &game.Song{
		Title:     title,
		Artist:    r.Artist,
		AudioFile: audioFile,
		Chart: game.Chart{
			NoteSpeed: game.Seconds(*r.NoteSpeed),
			Events:    events,
		},
	}
	if err := song.Chart.Validate(); nil != err {
		return nil, fmt.Errorf("%v: %w", title, err)
	}
	return song, nil
}
