package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

var ErrUnsupported = errors.New("unsupported audio format")

// speaker.Init may only succeed once per process.
var speakerOnce sync.Once

// Player plays a song through the speaker and reports its position.
// It implements clock.Source.
type Player struct {
	ready chan error

	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	loaded   atomic.Bool
	ended    atomic.Bool
}

// Open starts decoding file in the background. The result is delivered
// on Ready.
func Open(file string) *Player {
	p := &Player{ready: make(chan error, 1)}
	go func() {
		p.ready <- p.load(file)
	}()
	return p
}

func decode(file string, f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".mp3":
		return mp3.Decode(f)
	case ".ogg":
		return vorbis.Decode(f)
	case ".wav":
		return wav.Decode(f)
	}
	return nil, beep.Format{}, fmt.Errorf("%v: %w", file, ErrUnsupported)
}

func (p *Player) load(file string) error {
	f, err := os.Open(file)
	if nil != err {
		return fmt.Errorf("unable to open audio file: %w", err)
	}
	streamer, format, err := decode(file, f)
	if nil != err {
		f.Close()
		return fmt.Errorf("unable to decode audio file: %w", err)
	}

	var initErr error
	speakerOnce.Do(func() {
		initErr = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/60))
	})
	if nil != initErr {
		streamer.Close()
		return fmt.Errorf("unable to initialise speaker: %w", initErr)
	}

	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: streamer, Paused: true}
	p.loaded.Store(true)
	speaker.Play(beep.Seq(p.ctrl, beep.Callback(func() {
		p.ended.Store(true)
	})))
	return nil
}

func (p *Player) Ready() <-chan error {
	return p.ready
}

func (p *Player) setPaused(paused bool) {
	if !p.loaded.Load() {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

func (p *Player) Play() {
	p.setPaused(false)
}

func (p *Player) Pause() {
	p.setPaused(true)
}

func (p *Player) Now() time.Duration {
	if !p.loaded.Load() {
		return 0
	}
	speaker.Lock()
	position := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(position)
}

func (p *Player) Paused() bool {
	if !p.loaded.Load() {
		return true
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.ctrl.Paused
}

func (p *Player) Ended() bool {
	return p.ended.Load()
}

// Length is the duration of the decoded track.
func (p *Player) Length() time.Duration {
	if !p.loaded.Load() {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

func (p *Player) Close() error {
	if !p.loaded.Load() {
		return nil
	}
	speaker.Lock()
	p.ctrl.Paused = true
	p.ctrl.Streamer = nil
	speaker.Unlock()
	return p.streamer.Close()
}
