package game

import (
	"errors"
	"time"
)

type Grade int

const (
	Perfect Grade = iota
	Good
	OK
	Miss
)

func (g Grade) String() string {
	switch g {
	case Perfect:
		return "Perfect!"
	case Good:
		return "Good"
	case OK:
		return "OK"
	case Miss:
		return "Miss"
	}
	return "Unknown"
}

type Judgement struct {
	Grade  Grade
	Time   time.Duration // Inclusive upper bound of the absolute offset
	Points int
}

// Judgements are ordered from the tightest window to the loosest.
// The last one decides when a note can no longer be hit.
type Judgements []Judgement

func DefaultJudgements() Judgements {
	return Judgements{
		{Grade: Perfect, Time: 80 * time.Millisecond, Points: 100},
		{Grade: Good, Time: 120 * time.Millisecond, Points: 50},
		{Grade: OK, Time: 160 * time.Millisecond, Points: 20},
	}
}

// NewJudgements builds the default point table around custom windows.
func NewJudgements(perfect, good, ok time.Duration) (Judgements, error) {
	js := DefaultJudgements()
	js[0].Time, js[1].Time, js[2].Time = perfect, good, ok
	if err := js.Validate(); nil != err {
		return nil, err
	}
	return js, nil
}

func (js Judgements) Validate() error {
	if len(js) == 0 {
		return errors.New("no judgement windows")
	}
	for i, j := range js {
		if j.Time <= 0 {
			return errors.New("judgement windows must be positive")
		}
		if i > 0 && j.Time < js[i-1].Time {
			return errors.New("judgement windows must be ordered from tightest to loosest")
		}
	}
	return nil
}

// Worst is the loosest window, past which a note is a miss.
func (js Judgements) Worst() time.Duration {
	return js[len(js)-1].Time
}
