package input

import (
	"errors"
	"unicode"
)

// Keymap maps keys to lanes, the first key playing lane 1.
type Keymap []rune

func NewKeymap(keys string) (Keymap, error) {
	km := Keymap{}
	seen := map[rune]bool{}
	for _, r := range keys {
		r = unicode.ToLower(r)
		if seen[r] {
			return nil, errors.New("duplicate key in keymap: " + string(r))
		}
		if r == ' ' {
			return nil, errors.New("space is reserved for pause")
		}
		seen[r] = true
		km = append(km, r)
	}
	if len(km) == 0 {
		return nil, errors.New("keymap is empty")
	}
	return km, nil
}

// Lane returns the lane played by r, ignoring case.
func (k Keymap) Lane(r rune) (int, bool) {
	r = unicode.ToLower(r)
	for i, c := range k {
		if r == c {
			return i + 1, true
		}
	}
	return 0, false
}

func (k Keymap) Lanes() int {
	return len(k)
}
