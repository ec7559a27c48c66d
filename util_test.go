package turtle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and structs of floats, with a tolerance suitable for
// coordinates that went through a handful of trigonometric operations.
var approx = cmpopts.EquateApprox(0, 1e-9)

// rel is like approx but also accepts a relative error, for long sums.
var rel = cmpopts.EquateApprox(1e-9, 1e-9)

func collect(t *testing.T, spec Spec) []Segment {
	t.Helper()
	segs, err := Collect(spec)
	if err != nil {
		t.Fatalf("Collect(%+v): %v", spec, err)
	}
	return segs
}
