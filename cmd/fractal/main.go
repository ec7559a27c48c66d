// Command fractal renders a recursive curve to an SVG document or a PNG
// image.
//
// Defaults come from the kind's preset, then from TURTLE_* environment
// variables (optionally loaded from a .env file in the working directory),
// and finally from flags:
//
//	fractal -kind dragon -order 15 -out dragon.svg
//	TURTLE_KIND=snowflake fractal -format png -size 1024 -out koch.png
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"honnef.co/go/turtle"
	"honnef.co/go/turtle/internal/config"
	"honnef.co/go/turtle/raster"
	"honnef.co/go/turtle/svg"
)

type cliConfig struct {
	Kind turtle.Kind `env:"TURTLE_KIND" envDefault:"dragon"`

	// Unset fields keep the kind's preset.
	Order   *int     `env:"TURTLE_ORDER"`
	Length  *float64 `env:"TURTLE_LENGTH"`
	X       *float64 `env:"TURTLE_X"`
	Y       *float64 `env:"TURTLE_Y"`
	Heading *float64 `env:"TURTLE_HEADING"`
	Color   *string  `env:"TURTLE_COLOR"`
	Width   *float64 `env:"TURTLE_WIDTH"`

	Format     string  `env:"TURTLE_FORMAT"`
	Size       int     `env:"TURTLE_SIZE" envDefault:"800"`
	Margin     float64 `env:"TURTLE_MARGIN" envDefault:"10"`
	Background string  `env:"TURTLE_BACKGROUND"`
	Out        string  `env:"TURTLE_OUT"`
	MaxDragon  int     `env:"TURTLE_MAX_DRAGON"`
	Verbose    bool    `env:"TURTLE_VERBOSE"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("fractal failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	var cfg cliConfig
	if err := config.ParseEnv(&cfg); err != nil {
		return err
	}

	fs := flag.NewFlagSet("fractal", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.TextVar(&cfg.Kind, "kind", cfg.Kind, "curve `kind`: koch, snowflake, ccurve or dragon")
	order := fs.Int("order", 0, "recursion order (default: the kind's preset)")
	length := fs.Float64("length", 0, "base length (default: the kind's preset)")
	x := fs.Float64("x", 0, "start x (default: the kind's preset)")
	y := fs.Float64("y", 0, "start y (default: the kind's preset)")
	heading := fs.Float64("heading", 0, "start heading in degrees (default: the kind's preset)")
	color := fs.String("color", "", "pen colour, hex or SVG name (default: the kind's preset)")
	width := fs.Float64("width", 0, "pen width (default: the kind's preset)")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output `format`: svg or png (default: from -out, else svg)")
	fs.IntVar(&cfg.Size, "size", cfg.Size, "PNG width and height in pixels")
	fs.Float64Var(&cfg.Margin, "margin", cfg.Margin, "margin around the curve")
	fs.StringVar(&cfg.Background, "background", cfg.Background, "background colour (default: none)")
	fs.StringVar(&cfg.Out, "out", cfg.Out, "output `file` (default: standard output)")
	fs.IntVar(&cfg.MaxDragon, "max-dragon", cfg.MaxDragon, "maximum dragon sequence length, negative for no limit")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log debug output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	spec := cfg.spec()
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "order":
			spec.Order = *order
		case "length":
			spec.Length = *length
		case "x":
			spec.Start.X = *x
		case "y":
			spec.Start.Y = *y
		case "heading":
			spec.Heading = *heading
		case "color":
			spec.Attrs.Color = *color
		case "width":
			spec.Attrs.Width = *width
		}
	})

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	g := turtle.NewGenerator(
		turtle.WithMaxDragonSequence(cfg.MaxDragon),
		turtle.WithLogger(logger),
	)

	format, err := cfg.format()
	if err != nil {
		return err
	}

	w := stdout
	var out *os.File
	if cfg.Out != "" {
		out, err = os.Create(cfg.Out)
		if err != nil {
			return err
		}
		defer out.Close()
		w = out
	}

	switch format {
	case "svg":
		bw := bufio.NewWriter(w)
		err = svg.Render(bw, g, spec, svg.Options{
			Margin:     cfg.Margin,
			Background: cfg.Background,
		})
		if err == nil {
			err = bw.Flush()
		}
	case "png":
		err = renderPNG(w, g, spec, cfg)
	}
	if err != nil {
		return err
	}
	if out != nil {
		if err := out.Close(); err != nil {
			return err
		}
	}

	printSummary(stderr, spec)
	return nil
}

// spec returns the kind's preset with the environment's overrides.
func (cfg *cliConfig) spec() turtle.Spec {
	spec := turtle.DefaultSpec(cfg.Kind)
	if cfg.Order != nil {
		spec.Order = *cfg.Order
	}
	if cfg.Length != nil {
		spec.Length = *cfg.Length
	}
	if cfg.X != nil {
		spec.Start.X = *cfg.X
	}
	if cfg.Y != nil {
		spec.Start.Y = *cfg.Y
	}
	if cfg.Heading != nil {
		spec.Heading = *cfg.Heading
	}
	if cfg.Color != nil {
		spec.Attrs.Color = *cfg.Color
	}
	if cfg.Width != nil {
		spec.Attrs.Width = *cfg.Width
	}
	return spec
}

func (cfg *cliConfig) format() (string, error) {
	format := strings.ToLower(cfg.Format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(cfg.Out)), ".")
		if format != "png" {
			format = "svg"
		}
	}
	switch format {
	case "svg", "png":
		return format, nil
	default:
		return "", fmt.Errorf("%w: unknown output format %q", turtle.ErrInvalidArgument, cfg.Format)
	}
}

func renderPNG(w io.Writer, g *turtle.Generator, spec turtle.Spec, cfg cliConfig) error {
	cv, err := raster.Render(g, spec, cfg.Size, cfg.Size, raster.Options{
		Margin:     cfg.Margin,
		Background: cfg.Background,
	})
	if err != nil {
		return err
	}
	defer cv.Close()
	return cv.EncodePNG(w)
}

func printSummary(w io.Writer, spec turtle.Spec) {
	p := message.NewPrinter(language.English)
	st := spec.Stats()
	if spec.Kind == turtle.Dragon {
		p.Fprintf(w, "dragon sequence length: %d\n", st.Segments-1)
	}
	p.Fprintf(w, "%v order %d: %d segments, length %.2f\n", spec.Kind, spec.Order, st.Segments, st.Length)
}
