package turtle

import (
	"fmt"
	"math/bits"
	"strings"
)

// Turn is a quarter turn of the dragon curve.
type Turn byte

const (
	Right Turn = 'R'
	Left  Turn = 'L'
)

// Swap returns the opposite turn.
func (t Turn) Swap() Turn {
	if t == Right {
		return Left
	}
	return Right
}

func (t Turn) String() string { return string(rune(t)) }

// Sequence is the turn sequence of a dragon curve, also known as the regular
// paperfolding sequence.
type Sequence []Turn

func (s Sequence) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, t := range s {
		sb.WriteByte(byte(t))
	}
	return sb.String()
}

// DefaultMaxDragonSequence is the default limit on the length of dragon
// sequences, corresponding to order 24.
const DefaultMaxDragonSequence = 1<<24 - 1

// DragonLen returns the length of the turn sequence of order, 2^order − 1.
// The boolean is false if the length does not fit in an int or order is
// negative.
func DragonLen(order int) (int, bool) {
	if order < 0 || order >= bits.UintSize-1 {
		return 0, false
	}
	return 1<<order - 1, true
}

// DragonBuilder builds dragon sequences into a buffer that is reused across
// calls. The zero value uses [DefaultMaxDragonSequence].
//
// A DragonBuilder is not safe for concurrent use.
type DragonBuilder struct {
	// Max is the longest sequence the builder will produce. Zero means
	// DefaultMaxDragonSequence; a negative value means no limit.
	Max int

	buf Sequence
}

// Build returns the turn sequence of the given order. The result shares
// storage with the builder and is only valid until the next call to Build.
//
// Build returns [ErrResourceLimitExceeded], without allocating, if the
// sequence would be longer than b.Max.
func (b *DragonBuilder) Build(order int) (Sequence, error) {
	if order < 0 {
		return nil, fmt.Errorf("%w: negative order %d", ErrInvalidArgument, order)
	}
	n, ok := DragonLen(order)
	if !ok {
		return nil, fmt.Errorf("%w: dragon sequence of order %d does not fit in memory",
			ErrResourceLimitExceeded, order)
	}
	if limit := b.limit(); limit >= 0 && n > limit {
		return nil, fmt.Errorf("%w: dragon sequence of order %d is longer than %d turns",
			ErrResourceLimitExceeded, order, limit)
	}
	if cap(b.buf) < n {
		b.buf = make(Sequence, 0, n)
	}
	b.buf = appendDragon(b.buf[:0], order)
	return b.buf, nil
}

func (b *DragonBuilder) limit() int {
	if b.Max == 0 {
		return DefaultMaxDragonSequence
	}
	return b.Max
}

// appendDragon appends the sequence of order to dst. Each generation is the
// previous one, a right turn, and the previous one reversed with its turns
// swapped; it is read back out of dst rather than copied.
func appendDragon(dst Sequence, order int) Sequence {
	base := len(dst)
	for range order {
		n := len(dst) - base
		dst = append(dst, Right)
		for j := n - 1; j >= 0; j-- {
			dst = append(dst, dst[base+j].Swap())
		}
	}
	return dst
}

// DragonSequence returns a newly allocated turn sequence of the given order,
// subject to [DefaultMaxDragonSequence].
func DragonSequence(order int) (Sequence, error) {
	var b DragonBuilder
	return b.Build(order)
}

// DragonCurve draws a Heighway dragon: a first line, then for every turn of
// the sequence a quarter turn followed by another line. A curve of order n
// emits 2ⁿ segments.
type DragonCurve struct {
	// Turns is the precomputed sequence for the order passed to Expand. If
	// it is nil, Expand builds the sequence itself, without a size limit.
	Turns Sequence
}

func (d DragonCurve) Expand(c *Cursor, order int, length float64) {
	turns := d.Turns
	if turns == nil {
		turns = appendDragon(nil, order)
	}
	c.Forward(length)
	for _, t := range turns {
		if c.Stopped() {
			return
		}
		if t == Right {
			c.Right(90)
		} else {
			c.Left(90)
		}
		c.Forward(length)
	}
}
