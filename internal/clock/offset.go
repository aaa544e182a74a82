package clock

import "time"

type offset struct {
	Source
	d time.Duration
}

// WithOffset shifts the reported time by d, to compensate for output
// latency. A zero offset returns src unchanged.
func WithOffset(src Source, d time.Duration) Source {
	if d == 0 {
		return src
	}
	return &offset{Source: src, d: d}
}

func (o *offset) Now() time.Duration {
	return o.Source.Now() + o.d
}
