package turtle

import "math"

// NormalizeDegrees maps a to the half-open interval [0, 360).
//
// NaN and infinities produce NaN.
func NormalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// A tiny negative remainder plus 360 rounds to 360. Zero also clears
	// the sign of -0.
	if a >= 360 || a == 0 {
		return 0
	}
	return a
}

// Radians converts an angle from degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts an angle from radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// SincosDegrees returns the sine and cosine of an angle given in degrees.
//
// Multiples of 90° produce exact results, so that cursors moving only along
// the axes never accumulate rounding error.
func SincosDegrees(deg float64) (sin, cos float64) {
	if q := deg / 90; q == math.Trunc(q) && !math.IsInf(q, 0) {
		n := math.Mod(q, 4)
		if n < 0 {
			n += 4
		}
		switch n {
		case 0:
			return 0, 1
		case 1:
			return 1, 0
		case 2:
			return 0, -1
		case 3:
			return -1, 0
		}
	}
	return math.Sincos(Radians(deg))
}
