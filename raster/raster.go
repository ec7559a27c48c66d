// Package raster renders curves into images, using gg for stroking.
//
// A [Canvas] is a [turtle.Sink]. It maps curve space (y-up) into image space
// (y-down) with a transform that fits given bounds into the image, and
// strokes runs of contiguous segments that share attributes as single paths.
// Pen widths are in pixels and are not scaled.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"

	"honnef.co/go/turtle"
)

// Options configure a [Canvas].
type Options struct {
	// Margin is kept free around the curve, in pixels.
	Margin float64
	// Background fills the image before drawing. Empty means transparent.
	Background string
	// Color and Width are used for segments whose attributes leave them
	// empty. They default to black and 1.
	Color string
	Width float64
}

// Canvas strokes segments onto an image.
//
// Colour ids are resolved with [ParseColor]. The first error, such as an
// unknown colour, is kept, makes the canvas report itself as stopped, and is
// returned from Flush and the encoding methods.
type Canvas struct {
	dc   *gg.Context
	aff  turtle.Affine
	opts Options

	attrs   turtle.Attrs
	cur     turtle.Point
	pending bool
	err     error
}

// New returns a canvas of the given size in pixels, showing bounds.
func New(width, height int, bounds turtle.Rect, opts Options) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: canvas size %dx%d", turtle.ErrInvalidArgument, width, height)
	}
	if opts.Color == "" {
		opts.Color = "black"
	}
	if opts.Width == 0 {
		opts.Width = 1
	}
	dc := gg.NewContext(width, height)
	if opts.Background != "" {
		bg, err := parseRGBA(opts.Background)
		if err != nil {
			return nil, err
		}
		dc.ClearWithColor(bg)
	}
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	view := turtle.NewRectFromSize(float64(width), float64(height)).Inflate(-opts.Margin, -opts.Margin)
	return &Canvas{
		dc:   dc,
		aff:  turtle.Fit(bounds, view),
		opts: opts,
	}, nil
}

// Transform returns the transform from curve space to pixels.
func (cv *Canvas) Transform() turtle.Affine { return cv.aff }

// Emit implements turtle.Sink.
func (cv *Canvas) Emit(seg turtle.Segment) {
	if cv.err != nil {
		return
	}
	seg = seg.Transform(cv.aff)
	if cv.pending && (seg.Attrs != cv.attrs || seg.P0 != cv.cur) {
		cv.stroke()
		if cv.err != nil {
			return
		}
	}
	if !cv.pending {
		cv.dc.MoveTo(seg.P0.X, seg.P0.Y)
		cv.pending = true
	}
	cv.dc.LineTo(seg.P1.X, seg.P1.Y)
	cv.cur = seg.P1
	cv.attrs = seg.Attrs
}

// Stopped implements turtle.Stopper.
func (cv *Canvas) Stopped() bool { return cv.err != nil }

func (cv *Canvas) stroke() {
	cv.pending = false
	if cv.err != nil {
		cv.dc.ClearPath()
		return
	}
	name := cv.attrs.Color
	if name == "" {
		name = cv.opts.Color
	}
	c, err := ParseColor(name)
	if err != nil {
		cv.err = err
		cv.dc.ClearPath()
		return
	}
	width := cv.attrs.Width
	if width == 0 {
		width = cv.opts.Width
	}
	cv.dc.SetColor(c)
	cv.dc.SetLineWidth(width)
	if err := cv.dc.Stroke(); err != nil {
		cv.err = fmt.Errorf("stroke: %w", err)
	}
}

// Flush strokes any pending path and returns the first error encountered.
func (cv *Canvas) Flush() error {
	if cv.pending {
		cv.stroke()
	}
	return cv.err
}

// Image flushes the canvas and returns its image.
func (cv *Canvas) Image() (image.Image, error) {
	if err := cv.Flush(); err != nil {
		return nil, err
	}
	return cv.dc.Image(), nil
}

// EncodePNG flushes the canvas and writes it to w as a PNG image.
func (cv *Canvas) EncodePNG(w io.Writer) error {
	if err := cv.Flush(); err != nil {
		return err
	}
	return cv.dc.EncodePNG(w)
}

// SavePNG flushes the canvas and writes it to a PNG file.
func (cv *Canvas) SavePNG(path string) error {
	if err := cv.Flush(); err != nil {
		return err
	}
	return cv.dc.SavePNG(path)
}

// Close releases the canvas' resources.
func (cv *Canvas) Close() error {
	return cv.dc.Close()
}

// Render generates spec, fitted to a width×height image, and returns the
// canvas it was drawn on. The caller must close the canvas.
func Render(g *turtle.Generator, spec turtle.Spec, width, height int, opts Options) (*Canvas, error) {
	if g == nil {
		g = turtle.NewGenerator()
	}
	var bounds turtle.Bounds
	if err := g.Generate(spec, &bounds); err != nil {
		return nil, err
	}
	r, _ := bounds.Rect()
	cv, err := New(width, height, r, opts)
	if err != nil {
		return nil, err
	}
	if err := g.Generate(spec, cv); err != nil && cv.err == nil {
		cv.Close()
		return nil, err
	}
	if err := cv.Flush(); err != nil {
		cv.Close()
		return nil, err
	}
	return cv, nil
}

// ParseColor resolves a colour id: a hex colour ("#rgb", "#rgba", "#rrggbb"
// or "#rrggbbaa") or an SVG 1.1 colour name such as "lightskyblue".
func ParseColor(s string) (color.Color, error) {
	if strings.HasPrefix(s, "#") {
		c, err := parseRGBA(s)
		if err != nil {
			return nil, err
		}
		return c.Color(), nil
	}
	if c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: unknown colour %q", turtle.ErrInvalidArgument, s)
}

func parseRGBA(s string) (gg.RGBA, error) {
	if !strings.HasPrefix(s, "#") {
		c, err := ParseColor(s)
		if err != nil {
			return gg.RGBA{}, err
		}
		return gg.FromColor(c), nil
	}
	hex := s[1:]
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: malformed colour %q", turtle.ErrInvalidArgument, s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return gg.RGBA{}, fmt.Errorf("%w: malformed colour %q", turtle.ErrInvalidArgument, s)
		}
	}
	return gg.Hex(hex), nil
}
