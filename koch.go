package turtle

// KochCurve draws a Koch curve: every line is replaced by four lines a third
// as long, the middle two forming an outward bump. A curve of order n emits
// 4ⁿ segments with a total length of length·(4/3)ⁿ.
type KochCurve struct {
	// ExplicitStack selects an expansion that keeps its state on the heap
	// instead of the call stack. Both expansions emit identical segments.
	ExplicitStack bool
}

func (k KochCurve) Expand(c *Cursor, order int, length float64) {
	if k.ExplicitStack {
		kochStack(c, order, length)
	} else {
		koch(c, order, length)
	}
}

// SnowflakeCurve draws three Koch curves, turning right by 120° after each,
// which returns the cursor to its starting pose. It emits 3·4ⁿ segments.
type SnowflakeCurve struct {
	ExplicitStack bool
}

func (k SnowflakeCurve) Expand(c *Cursor, order int, length float64) {
	side := KochCurve(k)
	for range 3 {
		side.Expand(c, order, length)
		c.Right(120)
	}
}

func koch(c *Cursor, order int, size float64) {
	if c.Stopped() {
		return
	}
	if order == 0 {
		c.Forward(size)
		return
	}
	third := size / 3
	koch(c, order-1, third)
	c.Left(60)
	koch(c, order-1, third)
	c.Right(120)
	koch(c, order-1, third)
	c.Left(60)
	koch(c, order-1, third)
}

type kochFrame struct {
	order int
	size  float64
	// next is the index of the next third to draw.
	next int
}

func kochStack(c *Cursor, order int, size float64) {
	stack := make([]kochFrame, 1, order+1)
	stack[0] = kochFrame{order: order, size: size}
	for len(stack) > 0 && !c.Stopped() {
		f := &stack[len(stack)-1]
		if f.order == 0 {
			c.Forward(f.size)
			stack = stack[:len(stack)-1]
			continue
		}
		switch f.next {
		case 0:
		case 1, 3:
			c.Left(60)
		case 2:
			c.Right(120)
		case 4:
			stack = stack[:len(stack)-1]
			continue
		}
		f.next++
		stack = append(stack, kochFrame{order: f.order - 1, size: f.size / 3})
	}
}
