package config

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	PlayCommand   = "play"
	ImportCommand = "import"
	ListCommand   = "list"
)

type Config struct {
	Command string
	DB      string
	Verbose bool

	// play
	Chart       string
	Song        string
	Offset      time.Duration
	Delay       time.Duration
	FramePeriod time.Duration
	Keys        string
	BarRow      int
	Silent      bool
	Headless    bool
	Perfect     time.Duration
	Good        time.Duration
	OK          time.Duration

	// import
	Files []string
}

func newApp(c *Config) *kingpin.Application {
	app := kingpin.New("lanes", "A terminal rhythm game.")
	app.Version("0.1.0")
	app.HelpFlag.Short('h')

	app.Flag("db", "Song library database").Default("./songs.db").Envar("LANES_DB").StringVar(&c.DB)
	app.Flag("verbose", "Log every engine event").Short('v').BoolVar(&c.Verbose)

	play := app.Command(PlayCommand, "Play a chart file, or a song from the library").Default()
	play.Arg("chart", "Chart file (.json, .yaml)").ExistingFileVar(&c.Chart)
	play.Flag("song", "Song title or index within the chart file or library").Short('n').StringVar(&c.Song)
	play.Flag("offset", "Global offset").Default("0ms").Short('o').DurationVar(&c.Offset)
	play.Flag("delay", "Start delay").Default("500ms").Short('d').DurationVar(&c.Delay)
	play.Flag("frame-period", "Render frame period").Default("1ms").Short('p').DurationVar(&c.FramePeriod)
	play.Flag("keys", "Keys for each lane, left to right").Default("dfjk").Short('k').StringVar(&c.Keys)
	play.Flag("bar-row", "Rows between the strike line and the bottom").Default("4").IntVar(&c.BarRow)
	play.Flag("silent", "Play without audio, timed by the system clock").BoolVar(&c.Silent)
	play.Flag("headless", "Log events instead of drawing").BoolVar(&c.Headless)
	play.Flag("perfect", "Perfect window").Default("80ms").DurationVar(&c.Perfect)
	play.Flag("good", "Good window").Default("120ms").DurationVar(&c.Good)
	play.Flag("ok", "OK window, later notes are missed").Default("160ms").DurationVar(&c.OK)

	imp := app.Command(ImportCommand, "Add chart files to the library")
	imp.Arg("files", "Chart files (.json, .yaml)").Required().ExistingFilesVar(&c.Files)

	app.Command(ListCommand, "List the songs in the library")
	return app
}

func Parse(args []string) (*Config, error) {
	c := &Config{}
	command, err := newApp(c).Parse(args)
	if nil != err {
		return nil, err
	}
	c.Command = command

	if c.Command == PlayCommand {
		if c.Chart == "" && c.Song == "" {
			return nil, fmt.Errorf("play needs a chart file or --song from the library")
		}
		if c.BarRow < 1 {
			return nil, fmt.Errorf("bar row must be at least 1")
		}
		if _, err := c.Judgements(); nil != err {
			return nil, err
		}
	}
	return c, nil
}

func (c *Config) Judgements() (game.Judgements, error) {
	return game.NewJudgements(c.Perfect, c.Good, c.OK)
}
