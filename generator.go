package turtle

import (
	"iter"
	"log/slog"
)

// DefaultRecursionLimit is the order above which generators switch Koch and C
// curves to their explicit-stack expansions.
const DefaultRecursionLimit = 32

// Generator turns specs into segments. The zero value is not usable; use
// [NewGenerator]. A Generator holds only configuration and may be used by
// multiple goroutines at once.
type Generator struct {
	maxDragon      int
	recursionLimit int
	logger         *slog.Logger
}

// Option configures a [Generator].
type Option func(*Generator)

// WithMaxDragonSequence limits the length of dragon turn sequences, and thus
// the memory a dragon needs, to n turns. A negative n removes the limit and
// zero restores [DefaultMaxDragonSequence].
func WithMaxDragonSequence(n int) Option {
	return func(g *Generator) {
		g.maxDragon = n
	}
}

// WithRecursionLimit sets the highest order that Koch and C curves expand
// recursively on the call stack. Higher orders use an explicit stack.
func WithRecursionLimit(n int) Option {
	return func(g *Generator) {
		g.recursionLimit = n
	}
}

// WithLogger sets the logger used by the generator, overriding the package
// logger set with [SetLogger].
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// NewGenerator returns a generator configured by opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		maxDragon:      DefaultMaxDragonSequence,
		recursionLimit: DefaultRecursionLimit,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return Logger()
}

// Rule returns the rule that draws spec, after checking that spec is valid
// and within the generator's resource limits. For dragons, this builds the
// turn sequence.
func (g *Generator) Rule(spec Spec) (Rule, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	explicit := spec.Order > g.recursionLimit
	switch spec.Kind {
	case Koch:
		return KochCurve{ExplicitStack: explicit}, nil
	case KochSnowflake:
		return SnowflakeCurve{ExplicitStack: explicit}, nil
	case CCurve:
		return LevyCurve{ExplicitStack: explicit}, nil
	case Dragon:
		b := DragonBuilder{Max: g.maxDragon}
		turns, err := b.Build(spec.Order)
		if err != nil {
			return nil, err
		}
		if turns == nil {
			turns = Sequence{}
		}
		return DragonCurve{Turns: turns}, nil
	}
	panic("unreachable")
}

// Generate draws spec into sink. Segments are emitted synchronously and in
// order.
//
// Invalid specs and specs exceeding the generator's limits fail before
// anything is emitted, so a sink that sees a segment will see the whole
// curve, unless it stops generation itself by implementing [Stopper], in
// which case Generate returns [ErrStopped].
func (g *Generator) Generate(spec Spec, sink Sink) error {
	rule, err := g.Rule(spec)
	if err != nil {
		g.log().Debug("rejected curve", "kind", spec.Kind, "order", spec.Order, "err", err)
		return err
	}
	if g.run(spec, rule, sink) {
		return ErrStopped
	}
	return nil
}

// run draws spec with rule and reports whether the sink stopped it.
func (g *Generator) run(spec Spec, rule Rule, sink Sink) bool {
	log := g.log()
	log.Debug("generating curve", "kind", spec.Kind, "order", spec.Order, "length", spec.Length)
	c := NewCursor(spec.Start, spec.Heading, sink)
	c.SetAttrs(spec.Attrs)
	rule.Expand(c, spec.Order, spec.Length)
	log.Debug("generated curve", "kind", spec.Kind, "order", spec.Order,
		"segments", c.Emitted(), "stopped", c.Stopped())
	return c.Stopped()
}

// Segments validates spec and returns an iterator over its segments. The
// iterator can be used once; breaking out of the loop stops generation.
func (g *Generator) Segments(spec Spec) (iter.Seq[Segment], error) {
	rule, err := g.Rule(spec)
	if err != nil {
		g.log().Debug("rejected curve", "kind", spec.Kind, "order", spec.Order, "err", err)
		return nil, err
	}
	used := false
	return func(yield func(Segment) bool) {
		if used {
			return
		}
		used = true
		g.run(spec, rule, &yieldSink{yield: yield})
	}, nil
}

// Collect generates spec and returns all of its segments.
func (g *Generator) Collect(spec Spec) ([]Segment, error) {
	var col Collector
	if n := spec.Stats().Segments; spec.Validate() == nil && n <= 1<<20 {
		col.Segments = make([]Segment, 0, n)
	}
	if err := g.Generate(spec, &col); err != nil {
		return nil, err
	}
	return col.Segments, nil
}

type yieldSink struct {
	yield func(Segment) bool
	done  bool
}

func (s *yieldSink) Emit(seg Segment) {
	if !s.done && !s.yield(seg) {
		s.done = true
	}
}

func (s *yieldSink) Stopped() bool { return s.done }

var defaultGenerator = NewGenerator()

// Generate draws spec into sink using a generator with default settings.
// See [Generator.Generate].
func Generate(spec Spec, sink Sink) error {
	return defaultGenerator.Generate(spec, sink)
}

// Segments returns an iterator over the segments of spec, using a generator
// with default settings. See [Generator.Segments].
func Segments(spec Spec) (iter.Seq[Segment], error) {
	return defaultGenerator.Segments(spec)
}

// Collect returns the segments of spec, using a generator with default
// settings.
func Collect(spec Spec) ([]Segment, error) {
	return defaultGenerator.Collect(spec)
}
