package turtle

// Line represents a line segment between two points.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Heading returns the direction from P0 to P1 in degrees.
func (l Line) Heading() float64 {
	return l.P1.Sub(l.P0).Heading()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

// BoundingBox returns the smallest rectangle containing the line.
func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// Eval returns the point at t ∈ [0, 1] along the line.
func (l Line) Eval(t float64) Point {
	return Point{
		X: l.P0.X + t*(l.P1.X-l.P0.X),
		Y: l.P0.Y + t*(l.P1.Y-l.P0.Y),
	}
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}
