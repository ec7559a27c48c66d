// Package turtle draws recursive self-similar curves with a turtle-style
// cursor. Given a kind, an order and a base length, it produces an exact,
// reproducible sequence of line segments.
//
// # Cursors
//
// A [Cursor] is a plotter head with a position, a heading and a pen. It
// understands the classic turtle commands: [Cursor.Forward], [Cursor.Left],
// [Cursor.Right], [Cursor.Goto] and so on. While the pen is down, every
// movement emits a [Segment] to the cursor's [Sink]. The cursor never draws
// pixels itself.
//
// Coordinates are y-up, and headings are in degrees, counter-clockwise from
// the positive x axis, normalized to [0, 360). Turning left adds to the
// heading, turning right subtracts from it. Movement along multiples of 90°
// is exact, so that curves made of quarter turns land on exact coordinates.
//
// Moving forward by zero with the pen down emits a zero-length segment. Sinks
// that don't want degenerate segments have to filter them.
//
// # Curves
//
// A [Rule] expands an order and a length into cursor commands. The package
// provides rules for
//   - the Koch curve ([KochCurve]), which emits 4ⁿ segments,
//   - the Koch snowflake ([SnowflakeCurve]), three Koch curves forming a closed
//     triangle, which emits 3·4ⁿ segments,
//   - the Lévy C curve ([LevyCurve]), which emits 2ⁿ segments, and
//   - the Heighway dragon ([DragonCurve]), which emits 2ⁿ segments.
//
// The dragon is driven by a turn sequence of length 2ⁿ−1, built by
// [DragonBuilder] and available on its own through [DragonSequence].
//
// Koch curves and C curves recurse once per order. For very high orders, they
// can instead keep their state in an explicit stack; both expansions emit
// identical segments.
//
// # Generating
//
// Most users describe a curve with a [Spec] and hand it to [Generate],
// [Segments] or [Collect], or to the equivalent methods of a [Generator]
// configured with options. Generation validates the spec first and fails with
// [ErrInvalidArgument] or [ErrResourceLimitExceeded] before emitting anything,
// so a sink that sees a segment will see the entire curve.
//
// Generation is synchronous and keeps no global state; any number of
// generations may run concurrently, each with its own sink. A sink can end
// generation early by implementing [Stopper]; iterators returned by
// [Segments] stop when the loop is broken.
//
// # Sinks
//
// Besides [Collector], this package provides [PathBuilder], which joins
// segments into a [Path] that can be written as SVG path data, [Bounds],
// [Stats], [Tee] and [Limit]. The svg and raster subpackages contain sinks
// that render curves to SVG documents and PNG images.
//
// # Attributes
//
// Segments carry [Attrs], a colour and a pen width. The package passes them
// through untouched; their meaning is up to the sink.
package turtle
