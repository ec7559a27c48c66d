package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/turtle"
)

func runTest(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, log bytes.Buffer
	err = run(args, &out, &log)
	return out.String(), log.String(), err
}

func TestRunSVG(t *testing.T) {
	stdout, stderr, err := runTest(t,
		"-kind", "dragon", "-order", "1", "-length", "5",
		"-x", "0", "-y", "0", "-heading", "0",
		"-color", "black", "-width", "1", "-margin", "0")
	if err != nil {
		t.Fatal(err)
	}
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 5 5">
<path d="M0,0 L5,0 L5,5" fill="none" stroke="black" stroke-width="1" stroke-linecap="round" stroke-linejoin="round"/>
</svg>
`
	if d := cmp.Diff(want, stdout); d != "" {
		t.Error(d)
	}
	wantLog := "dragon sequence length: 1\ndragon order 1: 2 segments, length 10.00\n"
	if d := cmp.Diff(wantLog, stderr); d != "" {
		t.Error(d)
	}
}

func TestRunPresetSummary(t *testing.T) {
	_, stderr, err := runTest(t)
	if err != nil {
		t.Fatal(err)
	}
	want := "dragon sequence length: 8,191\ndragon order 13: 8,192 segments, length 40,960.00\n"
	if d := cmp.Diff(want, stderr); d != "" {
		t.Error(d)
	}
}

func TestRunEnv(t *testing.T) {
	t.Setenv("TURTLE_KIND", "ccurve")
	t.Setenv("TURTLE_ORDER", "3")
	t.Setenv("TURTLE_LENGTH", "100")

	_, stderr, err := runTest(t, "-length", "10")
	if err != nil {
		t.Fatal(err)
	}
	if want := "ccurve order 3: 8 segments, length 28.28\n"; stderr != want {
		t.Errorf("got %q, want %q", stderr, want)
	}
}

func TestRunPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.png")
	_, _, err := runTest(t, "-kind", "snowflake", "-order", "2", "-size", "32", "-background", "black", "-out", path)
	if err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("got %dx%d image, want 32x32", b.Dx(), b.Dy())
	}
}

func TestRunErrors(t *testing.T) {
	tt := []struct {
		args []string
		want error
	}{
		{[]string{"-order", "-1"}, turtle.ErrInvalidArgument},
		{[]string{"-length", "0"}, turtle.ErrInvalidArgument},
		{[]string{"-format", "gif"}, turtle.ErrInvalidArgument},
		{[]string{"-kind", "dragon", "-max-dragon", "100"}, turtle.ErrResourceLimitExceeded},
	}
	for _, tc := range tt {
		_, _, err := runTest(t, tc.args...)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v, want %v", strings.Join(tc.args, " "), err, tc.want)
		}
	}
}

func TestRunBadFlag(t *testing.T) {
	if _, _, err := runTest(t, "-kind", "hilbert"); err == nil {
		t.Error("expected error for unknown kind")
	}
	if _, _, err := runTest(t, "extra"); err == nil {
		t.Error("expected error for positional argument")
	}
}

func TestRunVerbose(t *testing.T) {
	_, stderr, err := runTest(t, "-v", "-kind", "koch", "-order", "1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "generated curve") {
		t.Errorf("expected debug log in %q", stderr)
	}
}
