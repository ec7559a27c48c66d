// Package svg renders curves as SVG documents.
//
// A [Writer] is a [turtle.Sink]. Runs of contiguous segments that share
// attributes become a single <path> element, so even large curves produce
// compact documents.
package svg

import (
	"fmt"
	"html"
	"io"

	"honnef.co/go/turtle"
)

// Options configure a [Writer].
type Options struct {
	// Margin is added around the bounds, in curve units.
	Margin float64
	// Background, if not empty, fills the view box with this colour.
	Background string
	// Color and Width are used for segments whose attributes leave them
	// empty. They default to black and 1.
	Color string
	Width float64
	// Precision is the maximum number of decimals used for coordinates. Zero
	// uses as many as needed to represent coordinates exactly.
	Precision int
}

// Writer streams segments into an SVG document. The document's view box is
// fixed when the writer is created, so the bounds of the curve must be known
// up front, for example from a [turtle.Bounds] pass. [Render] does both
// passes.
//
// Writes are not buffered; wrap the destination in a bufio.Writer for large
// curves. The first write error is kept, makes the writer report itself as
// stopped, and is returned from Close.
type Writer struct {
	w    io.Writer
	opts Options
	svg  turtle.SVGOptions

	path  turtle.Path
	attrs turtle.Attrs
	cur   turtle.Point

	header bool
	closed bool
	err    error
	bounds turtle.Rect
}

// NewWriter returns a writer for a document showing bounds, which are given
// in curve space (y-up). The header is written with the first segment or on
// Close.
func NewWriter(w io.Writer, bounds turtle.Rect, opts Options) *Writer {
	if opts.Color == "" {
		opts.Color = "black"
	}
	if opts.Width == 0 {
		opts.Width = 1
	}
	return &Writer{
		w:      w,
		opts:   opts,
		svg:    turtle.SVGOptions{MaxPrecision: opts.Precision},
		bounds: bounds.Abs().Inflate(opts.Margin, opts.Margin),
	}
}

func (sw *Writer) printf(format string, args ...any) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, format, args...)
}

func (sw *Writer) writeHeader() {
	if sw.header {
		return
	}
	sw.header = true
	// SVG is y-down; flipping y maps the bounds to [-Y1, -Y0].
	b := sw.bounds
	f := sw.svg.FormatFloat
	sw.printf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s">`+"\n",
		f(b.X0), f(-b.Y1), f(b.Width()), f(b.Height()))
	if sw.opts.Background != "" {
		sw.printf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			f(b.X0), f(-b.Y1), f(b.Width()), f(b.Height()), html.EscapeString(sw.opts.Background))
	}
}

// Emit implements turtle.Sink.
func (sw *Writer) Emit(seg turtle.Segment) {
	if sw.err != nil || sw.closed {
		return
	}
	sw.writeHeader()
	seg = seg.Transform(turtle.FlipY)
	if len(sw.path) > 0 && seg.Attrs != sw.attrs {
		sw.flush()
	}
	if len(sw.path) == 0 || seg.P0 != sw.cur {
		sw.path.MoveTo(seg.P0)
	}
	sw.path.LineTo(seg.P1)
	sw.cur = seg.P1
	sw.attrs = seg.Attrs
}

// Stopped implements turtle.Stopper. It reports true after a write error.
func (sw *Writer) Stopped() bool { return sw.err != nil }

func (sw *Writer) flush() {
	if len(sw.path) == 0 {
		return
	}
	color := sw.attrs.Color
	if color == "" {
		color = sw.opts.Color
	}
	width := sw.attrs.Width
	if width == 0 {
		width = sw.opts.Width
	}
	sw.printf(`<path d="`)
	if sw.err == nil {
		sw.err = sw.path.WriteSVG(sw.w, sw.svg)
	}
	sw.printf(`" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
		html.EscapeString(color), sw.svg.FormatFloat(width))
	sw.path = sw.path[:0]
}

// Close writes any pending path and the end of the document. It returns the
// first error encountered while writing.
func (sw *Writer) Close() error {
	if sw.closed {
		return sw.err
	}
	sw.writeHeader()
	sw.flush()
	sw.printf("</svg>\n")
	sw.closed = true
	return sw.err
}

// Render generates spec and returns it as a complete SVG document fitted to
// the curve's bounds. It runs the generator twice: once to measure the curve
// and once to write it.
func Render(w io.Writer, g *turtle.Generator, spec turtle.Spec, opts Options) error {
	if g == nil {
		g = turtle.NewGenerator()
	}
	var bounds turtle.Bounds
	if err := g.Generate(spec, &bounds); err != nil {
		return err
	}
	r, _ := bounds.Rect()
	sw := NewWriter(w, r, opts)
	if err := g.Generate(spec, sw); err != nil && sw.err == nil {
		return err
	}
	return sw.Close()
}
