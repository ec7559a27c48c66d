package turtle

import "math"

// LevyCurve draws a Lévy C curve: every line is replaced by two lines, 1/√2 as
// long, meeting at a right angle. A curve of order n emits 2ⁿ segments and
// leaves the cursor's heading unchanged.
type LevyCurve struct {
	// ExplicitStack selects an expansion that keeps its state on the heap
	// instead of the call stack. Both expansions emit identical segments.
	ExplicitStack bool
}

func (cc LevyCurve) Expand(c *Cursor, order int, length float64) {
	if cc.ExplicitStack {
		cCurveStack(c, order, length)
	} else {
		cCurve(c, order, length)
	}
}

func cCurve(c *Cursor, order int, size float64) {
	if c.Stopped() {
		return
	}
	if order == 0 {
		c.Forward(size)
		return
	}
	size /= math.Sqrt2
	c.Right(45)
	cCurve(c, order-1, size)
	c.Left(90)
	cCurve(c, order-1, size)
	c.Right(45)
}

type cCurveFrame struct {
	order int
	size  float64
	next  int
}

func cCurveStack(c *Cursor, order int, size float64) {
	stack := make([]cCurveFrame, 1, order+1)
	stack[0] = cCurveFrame{order: order, size: size}
	for len(stack) > 0 && !c.Stopped() {
		f := &stack[len(stack)-1]
		if f.order == 0 {
			c.Forward(f.size)
			stack = stack[:len(stack)-1]
			continue
		}
		switch f.next {
		case 0:
			c.Right(45)
		case 1:
			c.Left(90)
		case 2:
			c.Right(45)
			stack = stack[:len(stack)-1]
			continue
		}
		f.next++
		stack = append(stack, cCurveFrame{order: f.order - 1, size: f.size / math.Sqrt2})
	}
}
