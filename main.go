package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"github.com/olivier-w/goo/internal/config"
	"github.com/olivier-w/goo/internal/render"
	"github.com/olivier-w/goo/internal/ui"
)

const (
	defaultCols = 80
	defaultRows = 24
)

type cliFlags struct {
	config   string
	fps      int
	seed     uint64
	reduced  bool
	sound    bool
	debug    string
	snapshot time.Duration
	set      map[string]bool
}

func parseFlags(args []string) (cliFlags, error) {
	var f cliFlags
	fs := flag.NewFlagSet("goo", flag.ContinueOnError)
	fs.StringVar(&f.config, "config", "", "path to a YAML config file")
	fs.IntVar(&f.fps, "fps", 0, "frame rate")
	fs.Uint64Var(&f.seed, "seed", 0, "session seed (0 picks one at random)")
	fs.BoolVar(&f.reduced, "reduced", false, "start in reduced-motion mode")
	fs.BoolVar(&f.sound, "sound", true, "play a cue on every click")
	fs.StringVar(&f.debug, "debug", "", "write a debug log to this file")
	fs.DurationVar(&f.snapshot, "snapshot", 0, "print one frame after this much simulated time and exit")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if fs.NArg() > 0 {
		return f, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	f.set = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

// apply overrides cfg with every flag given on the command line.
func (f cliFlags) apply(cfg *config.Config) {
	if f.set["fps"] {
		cfg.FPS = f.fps
	}
	if f.set["seed"] {
		cfg.Seed = f.seed
	}
	if f.set["reduced"] {
		cfg.ReducedMotion = f.reduced
	}
	if f.set["sound"] {
		cfg.Sound.Enabled = f.sound
	}
	if f.set["debug"] {
		cfg.Debug = f.debug
	}
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flags.config)
	if err != nil {
		return err
	}
	flags.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	pal, err := cfg.Colors()
	if err != nil {
		return err
	}

	if cfg.Debug != "" {
		f, err := tea.LogToFile(cfg.Debug, "goo")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	source := flags.config
	if source == "" {
		source = "defaults"
	}
	log.Printf("config: %s, seed %d, fps %d", source, seed, cfg.FPS)

	if flags.snapshot > 0 {
		cols, rows := terminalSize()
		fmt.Println(snapshot(snapshotOptions{
			seed:    seed,
			dot:     cfg.DotSize,
			reduced: cfg.ReducedMotion,
			palette: pal,
			cols:    cols,
			rows:    rows,
		}, flags.snapshot))
		return nil
	}

	opts := ui.Options{
		Seed:          seed,
		FPS:           cfg.FPS,
		DotSize:       cfg.DotSize,
		ReducedMotion: cfg.ReducedMotion,
		Palette:       pal,
		Profile:       render.DetectProfile(),
	}
	p := tea.NewProgram(
		newStartupModel(opts, cfg.Sound),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	_, err = p.Run()
	return err
}

func terminalSize() (int, int) {
	w, h, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 || h <= 0 {
		return defaultCols, defaultRows
	}
	return w, h
}
