package input

import (
	"fmt"
	"log"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
	"github.com/eiannone/keyboard"
)

type Event struct {
	Quit  bool
	Pause bool
	Input game.Input // Set when neither Quit nor Pause
}

// Translate turns a key press into an event. Lane presses are stamped
// with now, the playback time at delivery.
func Translate(ev keyboard.KeyEvent, keys Keymap, now func() time.Duration) (Event, bool) {
	switch ev.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Event{Quit: true}, true
	case keyboard.KeySpace:
		return Event{Pause: true}, true
	}
	lane, ok := keys.Lane(ev.Rune)
	if !ok {
		return Event{}, false
	}
	return Event{Input: game.Input{Lane: lane, HitTime: now()}}, true
}

type Listener struct {
	events chan Event
	done   chan struct{}
}

// Listen opens the keyboard and delivers translated key presses until
// Close is called.
func Listen(keys Keymap, now func() time.Duration) (*Listener, error) {
	keyChannel, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}

	l := &Listener{
		events: make(chan Event, 128),
		done:   make(chan struct{}),
	}
	go func() {
		for {
			select {
			case <-l.done:
				return
			case key := <-keyChannel:
				if nil != key.Err {
					log.Println("unable to read key", key.Err)
					continue
				}
				ev, ok := Translate(key, keys, now)
				if !ok {
					continue
				}
				select {
				case l.events <- ev:
				default:
					log.Println("input queue full, dropping key")
				}
			}
		}
	}()
	return l, nil
}

func (l *Listener) Events() <-chan Event {
	return l.events
}

func (l *Listener) Close() {
	close(l.done)
	if err := keyboard.Close(); nil != err {
		log.Println("unable to close keyboard", err)
	}
}
