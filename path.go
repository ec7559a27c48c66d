package turtle

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Close off the subpath.
	ClosePathKind
)

// PathElement is a single drawing command of a [Path].
//
// A valid path has a MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return "InvalidPathElement"
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	if el.Kind == ClosePathKind {
		return el
	}
	el.P0 = el.P0.Transform(aff)
	return el
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// Path is a polyline path made of subpaths.
type Path []PathElement

func (p *Path) Push(el PathElement) { *p = append(*p, el) }

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo draws a line from the current point to pt.
//
// A path must begin with a MoveTo.
func (p *Path) LineTo(pt Point) { p.Push(LineTo(pt)) }

// ClosePath closes the current subpath.
func (p *Path) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p Path) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Lines returns an iterator over the line segments described by the path.
// Closing a subpath yields the closing line, unless it is degenerate.
func (p Path) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		var start, cur Point
		for _, el := range p {
			switch el.Kind {
			case MoveToKind:
				start, cur = el.P0, el.P0
			case LineToKind:
				if !yield(Line{cur, el.P0}) {
					return
				}
				cur = el.P0
			case ClosePathKind:
				if cur != start {
					if !yield(Line{cur, start}) {
						return
					}
				}
				cur = start
			}
		}
	}
}

func (p Path) Transform(aff Affine) Path {
	out := make(Path, len(p))
	for i, el := range p {
		out[i] = el.Transform(aff)
	}
	return out
}

// BoundingBox returns the bounding box of all points in the path.
func (p Path) BoundingBox() Rect {
	var (
		r     Rect
		first = true
	)
	for _, el := range p {
		if el.Kind == ClosePathKind {
			continue
		}
		if first {
			r = NewRectFromPoints(el.P0, el.P0)
			first = false
		} else {
			r = r.UnionPoint(el.P0)
		}
	}
	return r
}

// SVG converts the path to a string of SVG path commands.
func (p Path) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, p.Elements(), opts)
	return sb.String()
}

func (p Path) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// FormatFloat formats n for use in SVG documents.
func (opts SVGOptions) FormatFloat(n float64) string {
	if n == 0 {
		// Also catches negative zero.
		return "0"
	}
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var err error
	first := true
	for el := range seq {
		if !first {
			_, err = io.WriteString(w, " ")
		}
		first = false
		if err != nil {
			return err
		}
		switch el.Kind {
		case MoveToKind:
			_, err = fmt.Fprintf(w, "M%s,%s", opts.FormatFloat(el.P0.X), opts.FormatFloat(el.P0.Y))
		case LineToKind:
			_, err = fmt.Fprintf(w, "L%s,%s", opts.FormatFloat(el.P0.X), opts.FormatFloat(el.P0.Y))
		case ClosePathKind:
			_, err = io.WriteString(w, "Z")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// PathBuilder is a [Sink] that accumulates segments into a [Path]. A segment
// that starts where the previous one ended extends the current subpath;
// any other segment starts a new subpath.
type PathBuilder struct {
	Path Path
	cur  Point
}

func (b *PathBuilder) Emit(seg Segment) {
	if len(b.Path) == 0 || seg.P0 != b.cur {
		b.Path.MoveTo(seg.P0)
	}
	b.Path.LineTo(seg.P1)
	b.cur = seg.P1
}
