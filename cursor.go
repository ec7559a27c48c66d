package turtle

// Cursor is a plotter head: a position, a heading and a pen. Moving the
// cursor while the pen is down emits a [Segment] to its sink.
//
// Headings are in degrees, normalized to [0, 360). A heading of 0 points
// along the positive x axis and headings grow counter-clockwise in y-up
// space, so [Cursor.Left] adds to the heading and [Cursor.Right] subtracts
// from it.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	pos     Point
	heading float64
	up      bool
	attrs   Attrs

	sink    Sink
	stopper Stopper
	stopped bool
	emitted int64
}

// NewCursor returns a cursor at pos, facing heading, with its pen down. A nil
// sink discards all segments.
func NewCursor(pos Point, heading float64, sink Sink) *Cursor {
	if sink == nil {
		sink = Discard
	}
	c := &Cursor{
		pos:     pos,
		heading: NormalizeDegrees(heading),
		sink:    sink,
	}
	c.stopper, _ = sink.(Stopper)
	return c
}

// Position returns the cursor's current position.
func (c *Cursor) Position() Point { return c.pos }

// Heading returns the cursor's heading in degrees, in [0, 360).
func (c *Cursor) Heading() float64 { return c.heading }

// IsDown reports whether the pen is down.
func (c *Cursor) IsDown() bool { return !c.up }

// Attrs returns the attributes attached to emitted segments.
func (c *Cursor) Attrs() Attrs { return c.attrs }

// SetAttrs sets the attributes attached to subsequently emitted segments.
func (c *Cursor) SetAttrs(attrs Attrs) { c.attrs = attrs }

// PenUp lifts the pen; later movement emits nothing. It does not make the
// cursor stopped.
func (c *Cursor) PenUp() { c.up = true }

// PenDown lowers the pen so that movement emits segments again, unless the
// sink has stopped the cursor.
func (c *Cursor) PenDown() { c.up = false }

// Stopped reports whether a segment was withheld because the sink had asked
// for emission to end. Once stopped, the cursor keeps moving but emits
// nothing.
func (c *Cursor) Stopped() bool { return c.stopped }

// Emitted returns the number of segments emitted so far.
func (c *Cursor) Emitted() int64 { return c.emitted }

// Forward moves the cursor d units along its heading. Negative distances
// move it backwards.
//
// With the pen down, a segment is emitted even if d is zero.
func (c *Cursor) Forward(d float64) {
	c.moveTo(c.pos.Translate(VecFromHeading(c.heading).Mul(d)))
}

// Backward is Forward(-d).
func (c *Cursor) Backward(d float64) { c.Forward(-d) }

// Left turns the cursor counter-clockwise by a degrees.
func (c *Cursor) Left(a float64) { c.heading = NormalizeDegrees(c.heading + a) }

// Right turns the cursor clockwise by a degrees.
func (c *Cursor) Right(a float64) { c.heading = NormalizeDegrees(c.heading - a) }

// SetHeading points the cursor at heading a.
func (c *Cursor) SetHeading(a float64) { c.heading = NormalizeDegrees(a) }

// Goto moves the cursor to pt in a straight line, without changing its
// heading.
func (c *Cursor) Goto(pt Point) { c.moveTo(pt) }

// Towards returns the heading the cursor would need to face pt.
func (c *Cursor) Towards(pt Point) float64 { return c.pos.Bearing(pt) }

// Distance returns the euclidean distance from the cursor to pt.
func (c *Cursor) Distance(pt Point) float64 { return c.pos.Distance(pt) }

func (c *Cursor) moveTo(pt Point) {
	if !c.up && !c.stopped {
		if c.stopper != nil && c.stopper.Stopped() {
			c.stopped = true
		} else {
			c.sink.Emit(Segment{P0: c.pos, P1: pt, Attrs: c.attrs})
			c.emitted++
		}
	}
	c.pos = pt
}
