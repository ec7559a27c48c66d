package turtle

import "fmt"

// Attrs are drawing attributes attached to emitted segments. The package
// never interprets them; they are passed through to sinks verbatim.
type Attrs struct {
	// Color identifies a colour. Its format is up to the sink, for example a
	// hex triplet or a colour name.
	Color string
	// Width is the pen width in the sink's units.
	Width float64
}

// Segment is a line segment emitted by a [Cursor], together with the
// attributes that were active when it was drawn.
type Segment struct {
	P0    Point
	P1    Point
	Attrs Attrs
}

// Line returns the segment's geometry.
func (seg Segment) Line() Line { return Line{P0: seg.P0, P1: seg.P1} }

// Length returns the length of the segment.
func (seg Segment) Length() float64 { return seg.Line().Length() }

// Transform returns the segment with both end points transformed by aff.
// Attributes are left alone.
func (seg Segment) Transform(aff Affine) Segment {
	seg.P0 = seg.P0.Transform(aff)
	seg.P1 = seg.P1.Transform(aff)
	return seg
}

func (seg Segment) String() string {
	return fmt.Sprintf("%s→%s", seg.P0, seg.P1)
}
