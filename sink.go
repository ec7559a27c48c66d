package turtle

import "math"

// Sink consumes the segments emitted by a [Cursor], in emission order.
//
// Sinks are called synchronously from the goroutine that drives the cursor. A
// sink shared by concurrent generations must serialize access itself.
type Sink interface {
	Emit(seg Segment)
}

// Stopper is an optional interface implemented by sinks that want to end
// generation early. Generators check Stopped between emissions and return
// [ErrStopped] once it reports true.
type Stopper interface {
	Stopped() bool
}

// SinkFunc adapts a function to the [Sink] interface.
type SinkFunc func(seg Segment)

func (f SinkFunc) Emit(seg Segment) { f(seg) }

// Discard is a sink that drops every segment.
var Discard Sink = SinkFunc(func(Segment) {})

// Collector is a sink that stores every segment it receives.
type Collector struct {
	Segments []Segment
}

func (c *Collector) Emit(seg Segment) {
	c.Segments = append(c.Segments, seg)
}

// Reset discards collected segments, keeping the allocated storage.
func (c *Collector) Reset() {
	c.Segments = c.Segments[:0]
}

// Bounds is a sink that tracks the bounding box of all segments it receives.
type Bounds struct {
	rect Rect
	n    int
}

func (b *Bounds) Emit(seg Segment) {
	if b.n == 0 {
		b.rect = NewRectFromPoints(seg.P0, seg.P0)
	}
	b.rect = b.rect.UnionPoint(seg.P0).UnionPoint(seg.P1)
	b.n++
}

// Rect returns the bounding box of the segments seen so far. The boolean is
// false if no segment has been seen.
func (b *Bounds) Rect() (Rect, bool) {
	return b.rect, b.n > 0
}

// Stats summarizes a stream of segments.
type Stats struct {
	// Segments is the number of segments, saturating at math.MaxInt64.
	Segments int64
	// Length is the sum of all segment lengths.
	Length float64
}

// Emit makes *Stats a [Sink] that counts what it receives.
func (s *Stats) Emit(seg Segment) {
	if s.Segments < math.MaxInt64 {
		s.Segments++
	}
	s.Length += seg.Length()
}

// Tee returns a sink that forwards every segment to each of sinks in order.
// It reports itself as stopped as soon as any of sinks that implements
// [Stopper] does.
func Tee(sinks ...Sink) Sink {
	return teeSink(sinks)
}

type teeSink []Sink

func (t teeSink) Emit(seg Segment) {
	for _, s := range t {
		s.Emit(seg)
	}
}

func (t teeSink) Stopped() bool {
	for _, s := range t {
		if st, ok := s.(Stopper); ok && st.Stopped() {
			return true
		}
	}
	return false
}

// Limit returns a sink that forwards at most n segments to s and then stops.
func Limit(s Sink, n int) Sink {
	return &limitSink{sink: s, left: n}
}

type limitSink struct {
	sink Sink
	left int
}

func (l *limitSink) Emit(seg Segment) {
	if l.left <= 0 {
		return
	}
	l.left--
	l.sink.Emit(seg)
}

func (l *limitSink) Stopped() bool {
	if l.left <= 0 {
		return true
	}
	st, ok := l.sink.(Stopper)
	return ok && st.Stopped()
}
