package turtle

import (
	"fmt"
	"math"
)

// Spec describes a curve to generate.
type Spec struct {
	Kind Kind
	// Order is the recursion depth. It must not be negative.
	Order int
	// Length is the base length: the length of the whole curve's chord for
	// Koch curves and C curves, the side of the snowflake, and the length of
	// every single segment for dragons. It must be positive and finite.
	Length float64
	// Start and Heading are the cursor's initial pose. The zero values
	// start at the origin facing along the positive x axis.
	Start   Point
	Heading float64
	// Attrs are attached to every emitted segment.
	Attrs Attrs
}

// Validate reports whether s can be generated, returning an error wrapping
// [ErrInvalidArgument] if it can't. It does not check resource limits.
func (s Spec) Validate() error {
	switch {
	case !s.Kind.valid():
		return fmt.Errorf("%w: unknown curve kind %d", ErrInvalidArgument, int(s.Kind))
	case s.Order < 0:
		return fmt.Errorf("%w: negative order %d", ErrInvalidArgument, s.Order)
	case !(s.Length > 0) || math.IsInf(s.Length, 1):
		return fmt.Errorf("%w: length %g is not positive and finite", ErrInvalidArgument, s.Length)
	case !s.Start.isFinite():
		return fmt.Errorf("%w: start position %s is not finite", ErrInvalidArgument, s.Start)
	case math.IsNaN(s.Heading) || math.IsInf(s.Heading, 0):
		return fmt.Errorf("%w: start heading %g is not finite", ErrInvalidArgument, s.Heading)
	}
	return nil
}

// Stats returns the number of segments and total path length that s
// generates, computed in closed form. The segment count saturates at
// math.MaxInt64. The result is meaningless for invalid specs.
func (s Spec) Stats() Stats {
	n := float64(s.Order)
	switch s.Kind {
	case Koch:
		return Stats{
			Segments: pow2Sat(2 * s.Order),
			Length:   s.Length * math.Pow(4.0/3.0, n),
		}
	case KochSnowflake:
		segs := pow2Sat(2 * s.Order)
		if segs > math.MaxInt64/3 {
			segs = math.MaxInt64
		} else {
			segs *= 3
		}
		return Stats{
			Segments: segs,
			Length:   3 * s.Length * math.Pow(4.0/3.0, n),
		}
	case CCurve:
		return Stats{
			Segments: pow2Sat(s.Order),
			Length:   s.Length * math.Pow(math.Sqrt2, n),
		}
	case Dragon:
		return Stats{
			Segments: pow2Sat(s.Order),
			Length:   s.Length * math.Pow(2, n),
		}
	}
	return Stats{}
}

// pow2Sat returns 2ⁿ, saturating at math.MaxInt64.
func pow2Sat(n int) int64 {
	if n >= 63 {
		return math.MaxInt64
	}
	return 1 << n
}

// DefaultSpec returns a spec for kind with the order, length, pose and
// colours of the classic turtle demos: a level 4 snowflake, a level 11 C
// curve and an order 13 dragon.
func DefaultSpec(kind Kind) Spec {
	switch kind {
	case Koch, KochSnowflake:
		return Spec{
			Kind:   kind,
			Order:  4,
			Length: 300,
			Start:  Pt(-150, 100),
			Attrs:  Attrs{Color: "#60a5fa", Width: 2},
		}
	case CCurve:
		return Spec{
			Kind:   kind,
			Order:  11,
			Length: 150,
			Attrs:  Attrs{Color: "#fca5a5", Width: 1},
		}
	case Dragon:
		return Spec{
			Kind:    kind,
			Order:   13,
			Length:  5,
			Start:   Pt(-100, 0),
			Heading: 45,
			Attrs:   Attrs{Color: "#7dd3fc", Width: 1},
		}
	}
	return Spec{Kind: kind}
}
