package turtle

import "math"

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// Sinks use affine transforms to map curve space, which is y-up, into the
// y-down space of images and SVG documents.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// FlipY is a transform that is flipped on the y-axis. Useful for converting
// between y-up and y-down spaces.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing a counter-clockwise
// rotation (in y-up space) by deg degrees, matching [Cursor.Left].
func Rotate(deg float64) Affine {
	sin, cos := SincosDegrees(deg)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Fit returns a transform that maps src into dst, scaled uniformly so that it
// fits, centered, and flipped vertically so that curves drawn in y-up space
// appear upright in y-down image space.
//
// A src with zero width or height is scaled by its other dimension; a single
// point is only translated.
func Fit(src, dst Rect) Affine {
	src, dst = src.Abs(), dst.Abs()
	sw, sh := src.Width(), src.Height()
	var s float64
	switch {
	case sw == 0 && sh == 0:
		s = 1
	case sw == 0:
		s = dst.Height() / sh
	case sh == 0:
		s = dst.Width() / sw
	default:
		s = min(dst.Width()/sw, dst.Height()/sh)
	}
	return Translate(Vec2(src.Center()).Negate()).
		ThenScale(s, -s).
		ThenTranslate(Vec2(dst.Center()))
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale creates aff followed by a scale of (x, y).
//
// Equivalent to "Scale(x, y) * aff"
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// ScaleFactor returns the factor by which aff scales lengths, assuming it is a
// similarity transform such as the ones returned by [Fit].
func (aff Affine) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(aff.Determinant()))
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// TransformRect returns the bounding box of r after transformation.
func (aff Affine) TransformRect(r Rect) Rect {
	p00 := Pt(r.X0, r.Y0).Transform(aff)
	p01 := Pt(r.X0, r.Y1).Transform(aff)
	p10 := Pt(r.X1, r.Y0).Transform(aff)
	p11 := Pt(r.X1, r.Y1).Transform(aff)
	return NewRectFromPoints(p00, p01).Union(NewRectFromPoints(p10, p11))
}

func (aff Affine) IsNaN() bool {
	return math.IsNaN(aff.N0) ||
		math.IsNaN(aff.N1) ||
		math.IsNaN(aff.N2) ||
		math.IsNaN(aff.N3) ||
		math.IsNaN(aff.N4) ||
		math.IsNaN(aff.N5)
}
