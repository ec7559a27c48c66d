package turtle

// Rule expands a curve of a given order and base length into cursor
// commands.
//
// Rules only turn the cursor and move it forward; whatever the cursor emits
// is the curve. They stop early once the cursor reports [Cursor.Stopped].
type Rule interface {
	Expand(c *Cursor, order int, length float64)
}

// RuleFunc adapts a function to the [Rule] interface.
type RuleFunc func(c *Cursor, order int, length float64)

func (f RuleFunc) Expand(c *Cursor, order int, length float64) { f(c, order, length) }
