package turtle

import (
	"errors"
	"math"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := map[string]Kind{
		"koch":           Koch,
		"Koch":           Koch,
		"snowflake":      KochSnowflake,
		"koch-snowflake": KochSnowflake,
		"ccurve":         CCurve,
		"C-Curve":        CCurve,
		" dragon ":       Dragon,
	}
	for in, want := range tests {
		got, err := ParseKind(in)
		if err != nil {
			t.Errorf("ParseKind(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseKind(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseKind("hilbert"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseKind(hilbert): got %v, want ErrInvalidArgument", err)
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds {
		b, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Kind
		if err := got.UnmarshalText(b); err != nil {
			t.Fatal(err)
		}
		if got != k {
			t.Errorf("%s round-tripped to %s", k, got)
		}
	}
	if _, err := Kind(0).MarshalText(); err == nil {
		t.Error("marshaled the zero kind")
	}
	diff(t, "Kind(9)", Kind(9).String())
}

func TestSpecStats(t *testing.T) {
	tests := []struct {
		spec Spec
		want Stats
	}{
		{Spec{Kind: Koch, Order: 3, Length: 27}, Stats{64, 64}},
		{Spec{Kind: KochSnowflake, Order: 1, Length: 9}, Stats{12, 36}},
		{Spec{Kind: CCurve, Order: 4, Length: 1}, Stats{16, 4}},
		{Spec{Kind: Dragon, Order: 13, Length: 5}, Stats{8192, 40960}},
	}
	for _, tt := range tests {
		diff(t, tt.want, tt.spec.Stats(), rel)
	}

	// Counts saturate instead of overflowing.
	if got := (Spec{Kind: KochSnowflake, Order: 31, Length: 1}).Stats().Segments; got != math.MaxInt64 {
		t.Errorf("snowflake order 31: %d segments, want saturation", got)
	}
	if got := (Spec{Kind: Koch, Order: 40, Length: 1}).Stats().Segments; got != math.MaxInt64 {
		t.Errorf("koch order 40: %d segments, want saturation", got)
	}
}

func TestDefaultSpecs(t *testing.T) {
	for _, k := range Kinds {
		spec := DefaultSpec(k)
		if err := spec.Validate(); err != nil {
			t.Errorf("DefaultSpec(%s): %v", k, err)
		}
		if spec.Attrs.Color == "" {
			t.Errorf("DefaultSpec(%s) has no colour", k)
		}
	}
	if got := DefaultSpec(Dragon).Stats().Segments; got != 8192 {
		t.Errorf("default dragon has %d segments, want 8192", got)
	}
}
