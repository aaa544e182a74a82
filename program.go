package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"git.lost.host/meutraa/lanes/internal/audio"
	"git.lost.host/meutraa/lanes/internal/clock"
	"git.lost.host/meutraa/lanes/internal/config"
	"git.lost.host/meutraa/lanes/internal/engine"
	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/input"
	"git.lost.host/meutraa/lanes/internal/library"
	"git.lost.host/meutraa/lanes/internal/loop"
	"git.lost.host/meutraa/lanes/internal/parser"
	"git.lost.host/meutraa/lanes/internal/render"
	"git.lost.host/meutraa/lanes/internal/score"
	"git.lost.host/meutraa/lanes/internal/theme"
)

type Program struct {
	Parser   parser.Parser
	Library  library.Library
	Scorer   score.Scorer
	Theme    theme.Theme
	Renderer render.Renderer

	cfg     *config.Config
	song    *game.Song
	keys    input.Keymap
	clock   clock.Source
	player  *audio.Player
	session *engine.Session
	logFile *os.File
}

func (p *Program) loadSong() (*game.Song, error) {
	if p.cfg.Chart == "" {
		if err := p.Library.Init(p.cfg.DB); nil != err {
			return nil, fmt.Errorf("unable to open library: %w", err)
		}
		defer p.Library.Deinit()
		return p.Library.Load(p.cfg.Song)
	}

	songs, err := p.Parser.Parse(p.cfg.Chart)
	if nil != err {
		return nil, err
	}
	return game.FindSong(songs, p.cfg.Song)
}

func (p *Program) Init(ctx context.Context, cfg *config.Config) error {
	p.cfg = cfg

	song, err := p.loadSong()
	if nil != err {
		return fmt.Errorf("unable to load chart: %w", err)
	}
	p.song = song

	p.keys, err = input.NewKeymap(cfg.Keys)
	if nil != err {
		return err
	}
	if lanes := song.Chart.Lanes(); lanes > p.keys.Lanes() {
		return fmt.Errorf("%v uses %v lanes but only %v keys are bound", song, lanes, p.keys.Lanes())
	}

	judgements, err := cfg.Judgements()
	if nil != err {
		return err
	}
	p.Scorer = score.NewDefaultScorer(judgements)
	p.Theme = &theme.DefaultTheme{}

	var src clock.Source
	if cfg.Silent {
		src = clock.NewWall(song.Chart.Length() + judgements.Worst() + 2*time.Second)
	} else {
		log.Printf("Opening %v", song.AudioFile)
		p.player = audio.Open(song.AudioFile)
		src = p.player
	}
	select {
	case err := <-src.Ready():
		if nil != err {
			return fmt.Errorf("unable to load audio: %w", err)
		}
	case <-ctx.Done():
		return ctx.Err()
	}
	p.clock = clock.WithOffset(src, cfg.Offset)

	if cfg.Headless {
		p.Renderer = render.NewLogRenderer(log.Default(), cfg.Verbose)
	} else {
		// Logs would corrupt the alternate screen
		p.logFile, err = os.OpenFile("lanes.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if nil != err {
			return fmt.Errorf("unable to open log file: %w", err)
		}
		log.SetOutput(p.logFile)

		r := render.NewDefaultRenderer(os.Stdout, p.Theme, p.keys.Lanes())
		r.BarRow = cfg.BarRow
		p.Renderer = r
	}

	p.session = engine.New(&song.Chart, p.Scorer, p.Renderer)
	return nil
}

func (p *Program) Deinit() {
	if nil != p.player {
		if err := p.player.Close(); nil != err {
			log.Println("unable to close audio", err)
		}
	}
	if nil != p.logFile {
		log.SetOutput(os.Stderr)
		p.logFile.Close()
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// forward routes key events until stop is closed: lane presses to the
// frame loop, pause toggles to the clock.
func (p *Program) forward(ctx context.Context, quit context.CancelFunc, kb *input.Listener, inputs chan<- game.Input, resume chan<- struct{}, stop <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case ev := <-kb.Events():
			switch {
			case ev.Quit:
				quit()
				return
			case ev.Pause:
				if p.clock.Paused() {
					p.clock.Play()
					select {
					case resume <- struct{}{}:
					default:
					}
				} else {
					p.clock.Pause()
				}
			case !p.clock.Paused():
				select {
				case inputs <- ev.Input:
				default:
					log.Println("frame loop is behind, dropping input")
				}
			}
		}
	}
}

func (p *Program) Run(ctx context.Context) error {
	ctx, quit := context.WithCancel(ctx)
	defer quit()

	kb, err := input.Listen(p.keys, p.clock.Now)
	if nil != err {
		if !p.cfg.Headless {
			return err
		}
		log.Println(err, "playing without input")
	} else {
		defer kb.Close()
	}

	if err := p.Renderer.Init(); nil != err {
		return fmt.Errorf("unable to initialise renderer: %w", err)
	}
	defer func() {
		// Restore the terminal state
		if err := p.Renderer.Deinit(); nil != err {
			log.Println("unable to restore terminal", err)
		}
	}()

	if err := sleep(ctx, p.cfg.Delay); nil != err {
		return nil
	}
	p.session.Reset()
	p.clock.Play()
	log.Printf("Playing %v", p.song)

	inputs := make(chan game.Input, 128)
	resume := make(chan struct{}, 1)
	stop := make(chan struct{})
	if nil != kb {
		go p.forward(ctx, quit, kb, inputs, resume, stop)
	}

	opts := loop.Options{
		Period: p.cfg.FramePeriod,
		OnFrame: func(elapsed time.Duration) {
			p.Renderer.Frame(elapsed, p.session.Tally())
		},
	}
	quitted := false
	for !quitted {
		err := loop.Run(ctx, p.clock, p.session, inputs, opts)
		if errors.Is(err, context.Canceled) {
			quitted = true
			break
		}
		if nil != err {
			return err
		}
		if p.clock.Ended() {
			break
		}

		log.Println("Paused")
		select {
		case <-ctx.Done():
			quitted = true
		case <-resume:
			log.Println("Resumed")
		}
	}
	close(stop)
	p.clock.Pause()
	if !quitted {
		// Audio may end before the last notes expire
		p.session.Tick(p.song.Chart.Length() + p.Scorer.MissAfter() + 1)
	}

	tally := p.session.Tally()
	log.Printf("Game Over! Final Score: %v", tally.Score)
	if !quitted && p.session.Done() {
		replayed := engine.Replay(&p.song.Chart, p.Scorer, p.session.Inputs())
		if replayed.Score != tally.Score {
			log.Printf("replay of %v inputs scored %v", len(p.session.Inputs()), replayed.Score)
		}
	}
	p.Renderer.Summary(p.song, tally)
	if nil != kb && !quitted {
		select {
		case <-kb.Events():
		case <-ctx.Done():
		}
	}
	return nil
}
