// Command fractalview animates the drawing of a recursive curve.
//
// Each tick reveals a batch of segments. Space pauses and resumes, R
// restarts the drawing, Escape quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"honnef.co/go/turtle"
	"honnef.co/go/turtle/internal/config"
)

type viewConfig struct {
	Kind       turtle.Kind `env:"TURTLE_KIND" envDefault:"dragon"`
	Order      *int        `env:"TURTLE_ORDER"`
	Size       int         `env:"TURTLE_SIZE" envDefault:"800"`
	Margin     float64     `env:"TURTLE_MARGIN" envDefault:"20"`
	Background string      `env:"TURTLE_BACKGROUND" envDefault:"#1f2937"`
	Speed      int         `env:"TURTLE_SPEED" envDefault:"0"`
	MaxDragon  int         `env:"TURTLE_MAX_DRAGON"`
	Verbose    bool        `env:"TURTLE_VERBOSE"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("fractalview failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	var cfg viewConfig
	if err := config.ParseEnv(&cfg); err != nil {
		return err
	}

	fs := flag.NewFlagSet("fractalview", flag.ContinueOnError)
	fs.TextVar(&cfg.Kind, "kind", cfg.Kind, "curve `kind`: koch, snowflake, ccurve or dragon")
	order := fs.Int("order", 0, "recursion order (default: the kind's preset)")
	fs.IntVar(&cfg.Size, "size", cfg.Size, "window width and height in pixels")
	fs.Float64Var(&cfg.Margin, "margin", cfg.Margin, "margin around the curve in pixels")
	fs.StringVar(&cfg.Background, "background", cfg.Background, "background colour")
	fs.IntVar(&cfg.Speed, "speed", cfg.Speed, "segments revealed per tick (default: the whole curve in about five seconds)")
	fs.IntVar(&cfg.MaxDragon, "max-dragon", cfg.MaxDragon, "maximum dragon sequence length, negative for no limit")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log debug output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	spec := turtle.DefaultSpec(cfg.Kind)
	if cfg.Order != nil {
		spec.Order = *cfg.Order
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "order" {
			spec.Order = *order
		}
	})

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	g := turtle.NewGenerator(
		turtle.WithMaxDragonSequence(cfg.MaxDragon),
		turtle.WithLogger(logger),
	)

	v, err := newViewer(g, spec, cfg)
	if err != nil {
		return err
	}
	v.input = keyboardEvents
	logger.Info("drawing curve", "kind", spec.Kind, "order", spec.Order, "segments", len(v.segs))

	ebiten.SetWindowSize(cfg.Size, cfg.Size)
	ebiten.SetWindowTitle(fmt.Sprintf("%v, order %d", spec.Kind, spec.Order))
	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
