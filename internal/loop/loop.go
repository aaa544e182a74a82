package loop

import (
	"context"
	"time"

	"git.lost.host/meutraa/lanes/internal/clock"
	"git.lost.host/meutraa/lanes/internal/engine"
	"git.lost.host/meutraa/lanes/internal/game"
)

type Options struct {
	Period  time.Duration               // Frame period
	OnFrame func(elapsed time.Duration) // Called after the session is updated
}

// Step applies one frame. Queued inputs are resolved in delivery order,
// each after the session has caught up to its own timestamp, then the
// session is brought up to now.
func Step(s *engine.Session, inputs []game.Input, now time.Duration) {
	for _, in := range inputs {
		s.Tick(in.HitTime)
		s.Hit(in.Lane, in.HitTime)
	}
	s.Tick(now)
}

func drain(inputs <-chan game.Input, buf []game.Input) []game.Input {
	for {
		select {
		case in, ok := <-inputs:
			if !ok {
				return buf
			}
			buf = append(buf, in)
		default:
			return buf
		}
	}
}

// Run drives the session once per frame until the clock is paused or has
// ended, or ctx is done. State is kept, so a paused session can be
// resumed by calling Run again.
func Run(ctx context.Context, clk clock.Source, s *engine.Session, inputs <-chan game.Input, opts Options) error {
	period := opts.Period
	if period <= 0 {
		period = time.Millisecond
	}

	buf := make([]game.Input, 0, 16)
	for {
		if err := ctx.Err(); nil != err {
			return err
		}
		if clk.Paused() || clk.Ended() {
			return nil
		}

		start := time.Now()
		deadline := start.Add(period)

		buf = drain(inputs, buf[:0])
		elapsed := clk.Now()
		Step(s, buf, elapsed)
		if nil != opts.OnFrame {
			opts.OnFrame(elapsed)
		}

		time.Sleep(time.Until(deadline))
	}
}
