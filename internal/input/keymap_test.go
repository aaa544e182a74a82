package input

import "testing"

func TestKeymap(t *testing.T) {
	km, err := NewKeymap("DFjk")
	if nil != err {
		t.Fatal(err)
	}
	if km.Lanes() != 4 {
		t.Errorf("expected 4 lanes, got %v", km.Lanes())
	}

	var tests = []struct {
		key  rune
		lane int
		ok   bool
	}{
		{'d', 1, true},
		{'F', 2, true},
		{'j', 3, true},
		{'K', 4, true},
		{'x', 0, false},
	}
	for _, tt := range tests {
		lane, ok := km.Lane(tt.key)
		if lane != tt.lane || ok != tt.ok {
			t.Errorf("%q: expected lane %v (%v), got %v (%v)", tt.key, tt.lane, tt.ok, lane, ok)
		}
	}
}

func TestKeymapInvalid(t *testing.T) {
	for _, keys := range []string{"", "dfd", "dF f", "aA"} {
		if _, err := NewKeymap(keys); nil == err {
			t.Errorf("%q: expected an error", keys)
		}
	}
}
