package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"honnef.co/go/turtle"
	"honnef.co/go/turtle/raster"
)

// revealTicks is how many ticks the default speed takes to reveal a curve.
const revealTicks = 300

type event int

const (
	eventPause event = iota + 1
	eventRestart
	eventQuit
)

// keyboardEvents returns the events for keys pressed since the last tick.
func keyboardEvents() []event {
	var evs []event
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		evs = append(evs, eventPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		evs = append(evs, eventRestart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		evs = append(evs, eventQuit)
	}
	return evs
}

type stroke struct {
	x0, y0, x1, y1 float32
	width          float32
	color          color.Color
}

// viewer is an ebiten.Game that reveals a precomputed curve. Input is
// polled once per tick into a queue, and the queue is drained before the
// curve advances.
type viewer struct {
	size    int
	bg      color.Color
	segs    []stroke
	perTick int

	input  func() []event
	queue  []event
	paused bool
	shown  int

	canvas *ebiten.Image
	drawn  int
}

func newViewer(g *turtle.Generator, spec turtle.Spec, cfg viewConfig) (*viewer, error) {
	segs, err := g.Collect(spec)
	if err != nil {
		return nil, err
	}
	bg, err := raster.ParseColor(cfg.Background)
	if err != nil {
		return nil, err
	}

	var bounds turtle.Bounds
	for _, seg := range segs {
		bounds.Emit(seg)
	}
	r, _ := bounds.Rect()
	view := turtle.NewRectFromSize(float64(cfg.Size), float64(cfg.Size)).Inflate(-cfg.Margin, -cfg.Margin)
	aff := turtle.Fit(r, view)

	colors := map[string]color.Color{}
	strokes := make([]stroke, len(segs))
	for i, seg := range segs {
		name := seg.Attrs.Color
		if name == "" {
			name = "white"
		}
		c, ok := colors[name]
		if !ok {
			c, err = raster.ParseColor(name)
			if err != nil {
				return nil, err
			}
			colors[name] = c
		}
		width := seg.Attrs.Width
		if width == 0 {
			width = 1
		}
		seg = seg.Transform(aff)
		strokes[i] = stroke{
			x0:    float32(seg.P0.X),
			y0:    float32(seg.P0.Y),
			x1:    float32(seg.P1.X),
			y1:    float32(seg.P1.Y),
			width: float32(width),
			color: c,
		}
	}

	perTick := cfg.Speed
	if perTick <= 0 {
		perTick = max(1, (len(strokes)+revealTicks-1)/revealTicks)
	}
	return &viewer{
		size:    cfg.Size,
		bg:      bg,
		segs:    strokes,
		perTick: perTick,
	}, nil
}

// step advances the viewer by one tick. It reports false once the viewer
// should quit.
func (v *viewer) step() bool {
	if v.input != nil {
		v.queue = append(v.queue, v.input()...)
	}
	for _, ev := range v.queue {
		switch ev {
		case eventPause:
			v.paused = !v.paused
		case eventRestart:
			v.shown = 0
			v.paused = false
		case eventQuit:
			v.queue = v.queue[:0]
			return false
		}
	}
	v.queue = v.queue[:0]
	if !v.paused {
		v.shown = min(len(v.segs), v.shown+v.perTick)
	}
	return true
}

func (v *viewer) Update() error {
	if !v.step() {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.canvas == nil {
		v.canvas = ebiten.NewImage(v.size, v.size)
	}
	if v.shown < v.drawn {
		v.canvas.Clear()
		v.drawn = 0
	}
	for _, s := range v.segs[v.drawn:v.shown] {
		vector.StrokeLine(v.canvas, s.x0, s.y0, s.x1, s.y1, s.width, s.color, true)
	}
	v.drawn = v.shown

	screen.Fill(v.bg)
	screen.DrawImage(v.canvas, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.size, v.size
}
