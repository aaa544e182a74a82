package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"git.lost.host/meutraa/lanes/internal/config"
	"git.lost.host/meutraa/lanes/internal/library"
	"git.lost.host/meutraa/lanes/internal/parser"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func run(args []string) error {
	cfg, err := config.Parse(args)
	if nil != err {
		return err
	}
	if cfg.Verbose {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var lib library.Library = &library.DefaultLibrary{}
	var psr parser.Parser = &parser.DefaultParser{}

	switch cfg.Command {
	case config.ImportCommand:
		return importSongs(lib, psr, cfg)
	case config.ListCommand:
		return listSongs(lib, cfg)
	}

	p := &Program{Parser: psr, Library: lib}
	if err := p.Init(ctx, cfg); nil != err {
		return err
	}
	defer p.Deinit()
	return p.Run(ctx)
}

func importSongs(lib library.Library, psr parser.Parser, cfg *config.Config) error {
	if err := lib.Init(cfg.DB); nil != err {
		return fmt.Errorf("unable to open library: %w", err)
	}
	defer lib.Deinit()

	for _, file := range cfg.Files {
		songs, err := psr.Parse(file)
		if nil != err {
			return err
		}
		for _, song := range songs {
			id, err := lib.Save(song)
			if nil != err {
				return fmt.Errorf("unable to import %v: %w", song, err)
			}
			log.Printf("imported %v (%v notes) as %v", song, len(song.Chart.Events), id)
		}
	}
	return nil
}

func listSongs(lib library.Library, cfg *config.Config) error {
	if err := lib.Init(cfg.DB); nil != err {
		return fmt.Errorf("unable to open library: %w", err)
	}
	defer lib.Deinit()

	entries, err := lib.List()
	if nil != err {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tARTIST\tNOTES\tLENGTH")
	for _, e := range entries {
		fmt.Fprintf(w, "%v\t%v\t%v\t%v\t%v\n", e.ID, e.Title, e.Artist, e.Notes, e.Length.Round(time.Second))
	}
	return w.Flush()
}
