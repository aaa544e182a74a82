package input

import (
	"testing"
	"time"

	"github.com/eiannone/keyboard"
)

func TestTranslate(t *testing.T) {
	keys, _ := NewKeymap("dfjk")
	now := func() time.Duration { return 1234 * time.Millisecond }

	ev, ok := Translate(keyboard.KeyEvent{Rune: 'J'}, keys, now)
	if !ok || ev.Quit || ev.Pause {
		t.Fatal("expected a lane press")
	}
	if ev.Input.Lane != 3 || ev.Input.HitTime != 1234*time.Millisecond {
		t.Errorf("unexpected input %+v", ev.Input)
	}

	if ev, ok := Translate(keyboard.KeyEvent{Key: keyboard.KeyEsc}, keys, now); !ok || !ev.Quit {
		t.Error("escape should quit")
	}
	if ev, ok := Translate(keyboard.KeyEvent{Key: keyboard.KeyCtrlC}, keys, now); !ok || !ev.Quit {
		t.Error("ctrl-c should quit")
	}
	if ev, ok := Translate(keyboard.KeyEvent{Key: keyboard.KeySpace}, keys, now); !ok || !ev.Pause {
		t.Error("space should pause")
	}
	if _, ok := Translate(keyboard.KeyEvent{Rune: 'q'}, keys, now); ok {
		t.Error("unmapped keys should be ignored")
	}
}
