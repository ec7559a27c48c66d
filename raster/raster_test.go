package raster

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/turtle"
)

func rgba(c color.Color) [4]uint8 {
	r, g, b, a := c.RGBA()
	return [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func TestParseColor(t *testing.T) {
	tt := []struct {
		in   string
		want [4]uint8
	}{
		{"#fff", [4]uint8{255, 255, 255, 255}},
		{"#60a5fa", [4]uint8{0x60, 0xa5, 0xfa, 255}},
		{"#000000ff", [4]uint8{0, 0, 0, 255}},
		{"red", [4]uint8{255, 0, 0, 255}},
		{"LightSkyBlue", [4]uint8{0x87, 0xce, 0xfa, 255}},
	}
	for _, tc := range tt {
		c, err := ParseColor(tc.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tc.in, err)
			continue
		}
		if d := cmp.Diff(tc.want, rgba(c)); d != "" {
			t.Errorf("ParseColor(%q): %s", tc.in, d)
		}
	}

	for _, in := range []string{"", "#12", "#ggg", "notacolour", "#1234567"} {
		if _, err := ParseColor(in); !errors.Is(err, turtle.ErrInvalidArgument) {
			t.Errorf("ParseColor(%q) = %v, want ErrInvalidArgument", in, err)
		}
	}
}

func TestNewInvalidSize(t *testing.T) {
	_, err := New(0, 10, turtle.NewRectFromSize(1, 1), Options{})
	if !errors.Is(err, turtle.ErrInvalidArgument) {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
	_, err = New(10, 10, turtle.NewRectFromSize(1, 1), Options{Background: "nope"})
	if !errors.Is(err, turtle.ErrInvalidArgument) {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
}

func TestCanvasStroke(t *testing.T) {
	cv, err := New(20, 20, turtle.NewRectFromSize(20, 20), Options{Background: "white"})
	if err != nil {
		t.Fatal(err)
	}
	defer cv.Close()

	c := turtle.NewCursor(turtle.Pt(2, 10), 0, cv)
	c.SetAttrs(turtle.Attrs{Color: "red", Width: 4})
	c.Forward(16)

	img, err := cv.Image()
	if err != nil {
		t.Fatal(err)
	}
	if got := rgba(img.At(10, 10)); got[0] < 200 || got[1] > 60 || got[2] > 60 {
		t.Errorf("pixel on the stroke is %v, want red", got)
	}
	if got := rgba(img.At(10, 2)); got != [4]uint8{255, 255, 255, 255} {
		t.Errorf("pixel off the stroke is %v, want white", got)
	}
}

func TestCanvasFlipsY(t *testing.T) {
	cv, err := New(20, 20, turtle.NewRectFromSize(20, 20), Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer cv.Close()
	want := turtle.Pt(5, 15)
	if got := turtle.Pt(5, 5).Transform(cv.Transform()); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCanvasUnknownColorStops(t *testing.T) {
	cv, err := New(10, 10, turtle.NewRectFromSize(10, 10), Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer cv.Close()

	var st turtle.Stats
	c := turtle.NewCursor(turtle.Pt(1, 1), 0, turtle.Tee(cv, &st))
	c.SetAttrs(turtle.Attrs{Color: "octarine"})
	c.Forward(1)
	// Changing attributes strokes the pending run, which fails.
	c.SetAttrs(turtle.Attrs{Color: "red"})
	c.Forward(1)
	c.Forward(1)

	if !c.Stopped() {
		t.Error("cursor did not stop")
	}
	if st.Segments != 2 {
		t.Errorf("got %d segments, want 2", st.Segments)
	}
	if err := cv.Flush(); !errors.Is(err, turtle.ErrInvalidArgument) {
		t.Errorf("Flush = %v, want ErrInvalidArgument", err)
	}
}

func TestRenderPNG(t *testing.T) {
	spec := turtle.DefaultSpec(turtle.Dragon)
	spec.Order = 6
	cv, err := Render(nil, spec, 64, 48, Options{Margin: 4, Background: "#1f2937"})
	if err != nil {
		t.Fatal(err)
	}
	defer cv.Close()

	var buf bytes.Buffer
	if err := cv.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("got %dx%d image, want 64x48", b.Dx(), b.Dy())
	}
}

func TestRenderInvalidSpec(t *testing.T) {
	_, err := Render(nil, turtle.Spec{Kind: turtle.Koch, Order: -1, Length: 1}, 10, 10, Options{})
	if !errors.Is(err, turtle.ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}
