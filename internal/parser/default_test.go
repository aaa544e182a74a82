package parser

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/testdata"
)

func TestDecodeSong(t *testing.T) {
	p := DefaultParser{}
	songs, err := p.Decode(testdata.SongJSON, ".json", "")
	if nil != err {
		t.Fatal(err)
	}
	if len(songs) != 1 {
		t.Fatalf("expected one song, got %v", len(songs))
	}
	expected := testdata.Song()
	if !reflect.DeepEqual(songs[0], expected) {
		t.Log("     Got", songs[0])
		t.Log("Expected", expected)
		t.Fail()
	}
}

const yamlDatabase = `
songs:
  - title: Pagi
    artist: Sanggar Lima
    audioFile: pagi.ogg
    noteSpeed: 1.0
    events:
      - {time: 2.0, lane: 1, instrument: kendang}
      - {time: 2.5, lane: 2}
  - songTitle: Malam
    artist: Sanggar Lima
    audioFile: /music/malam.mp3
    noteSpeed: 0.75
    events:
      - {time: 1.25, lane: 3, instrument: gong}
`

func TestDecodeDatabase(t *testing.T) {
	p := DefaultParser{}
	songs, err := p.Decode([]byte(yamlDatabase), ".yaml", "charts")
	if nil != err {
		t.Fatal(err)
	}
	if len(songs) != 2 {
		t.Fatalf("expected two songs, got %v", len(songs))
	}
	if songs[0].Title != "Pagi" || songs[1].Title != "Malam" {
		t.Errorf("unexpected titles %v %v", songs[0].Title, songs[1].Title)
	}
	if songs[0].AudioFile != filepath.Join("charts", "pagi.ogg") || songs[1].AudioFile != "/music/malam.mp3" {
		t.Errorf("unexpected audio paths %v %v", songs[0].AudioFile, songs[1].AudioFile)
	}
	if songs[1].Chart.NoteSpeed != game.Seconds(0.75) || songs[1].Chart.Events[0].Time != game.Seconds(1.25) {
		t.Errorf("unexpected chart %+v", songs[1].Chart)
	}
	if songs[0].Chart.Events[1].Instrument != "" || songs[0].Chart.Events[1].Lane != 2 {
		t.Errorf("unexpected event %+v", songs[0].Chart.Events[1])
	}
}

func TestDecodeErrors(t *testing.T) {
	valid := `"artist": "a", "audioFile": "a.ogg", "noteSpeed": 1, "events": [{"time": 1, "lane": 1}]`
	tests := []struct {
		name string
		data string
		err  error
	}{
		{"syntax", `{"title": `, nil},
		{"no title", `{` + valid + `}`, nil},
		{"no artist", `{"title": "t", "audioFile": "a.ogg", "noteSpeed": 1, "events": [{"time": 1, "lane": 1}]}`, nil},
		{"no audio", `{"title": "t", "artist": "a", "noteSpeed": 1, "events": [{"time": 1, "lane": 1}]}`, nil},
		{"no speed", `{"title": "t", "artist": "a", "audioFile": "a.ogg", "events": [{"time": 1, "lane": 1}]}`, nil},
		{"zero speed", `{"title": "t", "artist": "a", "audioFile": "a.ogg", "noteSpeed": 0, "events": [{"time": 1, "lane": 1}]}`, game.ErrNoteSpeed},
		{"no events", `{"title": "t", "artist": "a", "audioFile": "a.ogg", "noteSpeed": 1, "events": []}`, game.ErrNoEvents},
		{"no lane", `{"title": "t", "artist": "a", "audioFile": "a.ogg", "noteSpeed": 1, "events": [{"time": 1}]}`, nil},
		{"bad lane", `{"title": "t", "artist": "a", "audioFile": "a.ogg", "noteSpeed": 1, "events": [{"time": 1, "lane": 0}]}`, game.ErrBadLane},
		{"unsorted", `{"title": "t", "artist": "a", "audioFile": "a.ogg", "noteSpeed": 1, "events": [{"time": 2, "lane": 1}, {"time": 1, "lane": 1}]}`, game.ErrUnsorted},
		{"negative", `{"title": "t", "artist": "a", "audioFile": "a.ogg", "noteSpeed": 1, "events": [{"time": -1, "lane": 1}]}`, game.ErrNegativeTime},
		{"bad song in database", `{"songs": [{"title": "t", ` + valid + `}, {"title": "u", "artist": "a", "audioFile": "a.ogg", "noteSpeed": 1, "events": [{"time": 1, "lane": 0}]}]}`, game.ErrBadLane},
	}

	p := DefaultParser{}
	for _, test := range tests {
		_, err := p.Decode([]byte(test.data), ".json", "")
		if nil == err {
			t.Errorf("%v: expected an error", test.name)
			continue
		}
		if nil != test.err && !errors.Is(err, test.err) {
			t.Errorf("%v: expected %v, got %v", test.name, test.err, err)
		}
	}

	if _, err := p.Decode([]byte("{}"), ".sm", ""); !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "song.JSON")
	if err := os.WriteFile(file, testdata.SongJSON, 0o644); nil != err {
		t.Fatal(err)
	}

	p := DefaultParser{}
	songs, err := p.Parse(file)
	if nil != err {
		t.Fatal(err)
	}
	expected := filepath.Join(dir, "assets", "audio", "gamelan-pagi.ogg")
	if songs[0].AudioFile != expected {
		t.Errorf("expected audio at %v, got %v", expected, songs[0].AudioFile)
	}

	if _, err := p.Parse(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not exist error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(bad, []byte("title: [unclosed"), 0o644); nil != err {
		t.Fatal(err)
	}
	if _, err := p.Parse(bad); nil == err || !strings.Contains(err.Error(), "bad.yml") {
		t.Errorf("expected an error naming the file, got %v", err)
	}
}
