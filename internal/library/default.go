package library

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultLibrary struct {
	db *sql.DB
}

type storedEvent struct {
	Time       time.Duration `json:"t"`
	Lane       int           `json:"l"`
	Instrument string        `json:"i,omitempty"`
}

func (l *DefaultLibrary) Init(file string) error {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return err
	}

	initStatement := `
	create table if not exists songs
	  (
		  id integer not null primary key,
		  sum text not null unique,
		  title text not null,
		  artist text not null,
		  audio text not null,
		  speed integer not null,
		  notes integer not null,
		  length integer not null,
		  events bytearray
	  );
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		db.Close()
		return fmt.Errorf("unable to create songs table: %w", err)
	}

	l.db = db
	return nil
}

func (l *DefaultLibrary) Deinit() {
	if nil != l.db {
		l.db.Close()
	}
}

func encodeEvents(events []game.ChartEvent) ([]byte, error) {
	stored := make([]storedEvent, len(events))
	for i, e := range events {
		stored[i] = storedEvent{Time: e.Time, Lane: e.Lane, Instrument: e.Instrument}
	}
	return json.Marshal(stored)
}

func decodeEvents(data []byte) ([]game.ChartEvent, error) {
	var stored []storedEvent
	if err := json.Unmarshal(data, &stored); nil != err {
		return nil, err
	}
	events := make([]game.ChartEvent, len(stored))
	for i, e := range stored {
		events[i] = game.ChartEvent{Time: e.Time, Lane: e.Lane, Instrument: e.Instrument}
	}
	return events, nil
}

func (l *DefaultLibrary) hashChart(c *game.Chart, events []byte) string {
	h := sha256.New()
	h.Write([]byte(strconv.FormatInt(int64(c.NoteSpeed), 10)))
	h.Write(events)
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func (l *DefaultLibrary) Save(song *game.Song) (int64, error) {
	if err := song.Chart.Validate(); nil != err {
		return 0, err
	}
	data, err := encodeEvents(song.Chart.Events)
	if nil != err {
		return 0, fmt.Errorf("unable to marshal events: %w", err)
	}
	sum := l.hashChart(&song.Chart, data)

	_, err = l.db.Exec(`
	insert into songs(sum, title, artist, audio, speed, notes, length, events)
	  values(?, ?, ?, ?, ?, ?, ?, ?)
	  on conflict(sum) do update set
	    title = excluded.title,
	    artist = excluded.artist,
	    audio = excluded.audio`,
		sum, song.Title, song.Artist, song.AudioFile,
		int64(song.Chart.NoteSpeed), len(song.Chart.Events), int64(song.Chart.Length()), data,
	)
	if nil != err {
		return 0, fmt.Errorf("unable to save song: %w", err)
	}

	var id int64
	if err := l.db.QueryRow("select id from songs where sum = ?", sum).Scan(&id); nil != err {
		return 0, fmt.Errorf("unable to read song id: %w", err)
	}
	return id, nil
}

func (l *DefaultLibrary) Load(key string) (*game.Song, error) {
	query := "select title, artist, audio, speed, events from songs where title = ? collate nocase order by id limit 1"
	var arg interface{} = key
	if id, err := strconv.ParseInt(key, 10, 64); nil == err {
		query = "select title, artist, audio, speed, events from songs where id = ?"
		arg = id
	}

	var song game.Song
	var speed int64
	var data []byte
	err := l.db.QueryRow(query, arg).Scan(&song.Title, &song.Artist, &song.AudioFile, &speed, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%v: %w", key, ErrNotFound)
	} else if nil != err {
		return nil, fmt.Errorf("unable to load song: %w", err)
	}

	song.Chart.NoteSpeed = time.Duration(speed)
	song.Chart.Events, err = decodeEvents(data)
	if nil != err {
		return nil, fmt.Errorf("unable to unmarshal events: %w", err)
	}
	if err := song.Chart.Validate(); nil != err {
		return nil, err
	}
	return &song, nil
}

func (l *DefaultLibrary) List() ([]Entry, error) {
	rows, err := l.db.Query("select id, title, artist, notes, length from songs order by id")
	if nil != err {
		return nil, fmt.Errorf("unable to list songs: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var length int64
		if err := rows.Scan(&e.ID, &e.Title, &e.Artist, &e.Notes, &length); nil != err {
			return nil, err
		}
		e.Length = time.Duration(length)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
