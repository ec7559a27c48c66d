package turtle

import (
	"math"
	"testing"
)

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{720, 0},
		{-90, 270},
		{-120, 240},
		{450, 90},
		{-360, 0},
		{359.5, 359.5},
		{-1e-18, 0},
	}
	for _, tt := range tests {
		if got := NormalizeDegrees(tt.in); got != tt.want {
			t.Errorf("NormalizeDegrees(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
	for _, in := range []float64{math.Copysign(0, -1), -360, -720} {
		if got := NormalizeDegrees(in); math.Signbit(got) {
			t.Errorf("NormalizeDegrees(%g) = %g, want positive zero", in, got)
		}
	}
	if got := NormalizeDegrees(math.Inf(1)); !math.IsNaN(got) {
		t.Errorf("NormalizeDegrees(+Inf) = %g, want NaN", got)
	}
}

func TestSincosDegreesExactQuadrants(t *testing.T) {
	tests := []struct {
		deg      float64
		sin, cos float64
	}{
		{0, 0, 1},
		{90, 1, 0},
		{180, 0, -1},
		{270, -1, 0},
		{360, 0, 1},
		{-90, -1, 0},
		{450, 1, 0},
	}
	for _, tt := range tests {
		sin, cos := SincosDegrees(tt.deg)
		if sin != tt.sin || cos != tt.cos {
			t.Errorf("SincosDegrees(%g) = (%g, %g), want (%g, %g)", tt.deg, sin, cos, tt.sin, tt.cos)
		}
	}
}

func TestSincosDegreesGeneral(t *testing.T) {
	for _, deg := range []float64{30, 45, 60, 120, 240, 315, -45} {
		sin, cos := SincosDegrees(deg)
		wantSin, wantCos := math.Sincos(deg * math.Pi / 180)
		if sin != wantSin || cos != wantCos {
			t.Errorf("SincosDegrees(%g) = (%g, %g), want (%g, %g)", deg, sin, cos, wantSin, wantCos)
		}
	}
}

func TestRadiansDegrees(t *testing.T) {
	diff(t, math.Pi, Radians(180), approx)
	diff(t, 90.0, Degrees(math.Pi/2), approx)
	diff(t, 123.0, Degrees(Radians(123)), approx)
}
