package draft

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/keylist"
)

// Template is a parametric drawing: a table of default parameters and a
// construction routine that turns the resolved parameters into named
// primitives. Part catalogs implement Template; [Build] evaluates it.
type Template interface {
	// Defaults returns the default parameter table. Its names are the only
	// names that may be overridden.
	Defaults() Params
	// Construct builds the primitives. It is called exactly once per
	// [Build], and must register every primitive it wants to keep with b.
	Construct(b *Builder)
}

// Blueprint is a [Template] made of a parameter table and a function.
type Blueprint struct {
	Params Params
	Func   func(b *Builder)
}

func (bp Blueprint) Defaults() Params     { return bp.Params }
func (bp Blueprint) Construct(b *Builder) { bp.Func(b) }

// Option configures [Build].
type Option func(*Builder)

// WithLogger makes Build log every construction step at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// Build resolves overrides against the template's defaults, runs the
// construction routine and returns the resulting graph.
//
// Construction is atomic: if any step fails, Build returns a nil graph and
// an error identifying the step. A failing step makes all following steps
// no-ops, so construction routines don't need to check for errors
// themselves.
func Build(t Template, overrides map[string]float64, opts ...Option) (*Graph, error) {
	params, err := t.Defaults().Resolve(overrides)
	if err != nil {
		return nil, err
	}
	b := &Builder{params: params}
	for _, opt := range opts {
		opt(b)
	}
	t.Construct(b)
	b.sealed = true
	if b.err != nil {
		return nil, b.err
	}

	g := &Graph{params: params}
	for i, name := range b.prims.Keys {
		g.prims.Add(name, b.prims.Values[i])
	}
	return g, nil
}

// Builder collects the named primitives of a [Template] during [Build].
//
// Every method that creates a primitive takes the name under which to
// register it. Errors are sticky: after the first failure, all methods
// return zero values and register nothing, and Build reports the failure.
type Builder struct {
	params Params
	prims  keylist.List[string, Primitive]
	logger *slog.Logger
	err    error
	sealed bool
}

// Param returns the resolved value of the named parameter. Asking for a name
// that isn't in the template's defaults fails the build.
func (b *Builder) Param(name string) float64 {
	if b.err != nil {
		return 0
	}
	v, ok := b.params.Lookup(name)
	if !ok {
		b.err = &StepError{Step: name, Op: "Param", Err: fmt.Errorf("%w: %q", ErrUnknownParameter, name)}
	}
	return v
}

// Anchor returns the origin, relative to which all primitives are placed.
func (b *Builder) Anchor() Point { return Point{} }

// Err returns the first error encountered, if any.
func (b *Builder) Err() error { return b.err }

// Fail aborts the build with err, attributed to the named step. It allows
// construction routines to apply their own validation.
func (b *Builder) Fail(name string, err error) {
	if b.err == nil {
		b.err = &StepError{Step: name, Op: "Fail", Err: err}
	}
}

func (b *Builder) ok() bool {
	if b.sealed {
		panic("draft: Builder used after Build returned")
	}
	return b.err == nil
}

// record registers p under name, or records err for the step.
func (b *Builder) record(name, op string, p Primitive, err error) bool {
	if err == nil {
		if name == "" {
			err = ErrInvalidName
		} else if b.prims.Add(name, p) != nil {
			err = fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	}
	if err != nil {
		b.err = &StepError{Step: name, Op: op, Err: err}
		return false
	}
	if b.logger != nil {
		b.logger.Debug("construction step",
			"step", name,
			"op", op,
			"kind", p.Kind(),
			"start", p.Start(),
			"end", p.End())
	}
	return true
}

// Add registers a primitive that was created without the builder's help.
func (b *Builder) Add(name string, p Primitive) {
	if !b.ok() {
		return
	}
	if p == nil {
		b.record(name, "Add", nil, geometryError("nil primitive"))
		return
	}
	b.record(name, "Add", p, nil)
}

// Point registers a point, typically a center or a construction point.
func (b *Builder) Point(name string, pt Point) Point {
	if !b.ok() {
		return Point{}
	}
	var err error
	if !pt.valid() {
		err = geometryError("point %s is out of range", pt)
	}
	if !b.record(name, "Point", pt, err) {
		return Point{}
	}
	return pt
}

// Segment registers the segment from p0 to p1.
func (b *Builder) Segment(name string, p0, p1 Point) Segment {
	if !b.ok() {
		return Segment{}
	}
	s, err := NewSegment(p0, p1)
	if !b.record(name, "Segment", s, err) {
		return Segment{}
	}
	return s
}

// SegmentFrom registers the segment starting at start with the given length
// and slope. See [SegmentFrom].
func (b *Builder) SegmentFrom(name string, start Point, length, slope float64) Segment {
	if !b.ok() {
		return Segment{}
	}
	s, err := SegmentFrom(start, length, slope)
	if !b.record(name, "SegmentFrom", s, err) {
		return Segment{}
	}
	return s
}

// Arc registers a free-standing circular arc. See [NewCircularArc].
func (b *Builder) Arc(name string, center Point, radius, startAngle, span float64) CircularArc {
	if !b.ok() {
		return CircularArc{}
	}
	a, err := NewCircularArc(center, radius, startAngle, span)
	if !b.record(name, "Arc", a, err) {
		return CircularArc{}
	}
	return a
}

// Spiral registers a variable-radius arc. See [NewSpiralArc].
func (b *Builder) Spiral(name string, center Point, radius RadiusFunc, startAngle, endAngle float64) SpiralArc {
	if !b.ok() {
		return SpiralArc{}
	}
	s, err := NewSpiralArc(center, radius, startAngle, endAngle)
	if !b.record(name, "Spiral", s, err) {
		return SpiralArc{}
	}
	return s
}

// ConnectArc registers the arc that continues prev tangentially. See
// [CircularArc.ConnectArc] for the meaning of radius and span.
func (b *Builder) ConnectArc(name string, prev Connectable, radius, span float64) CircularArc {
	if !b.ok() {
		return CircularArc{}
	}
	if prev == nil {
		b.record(name, "ConnectArc", nil, geometryError("nothing to connect to"))
		return CircularArc{}
	}
	a, err := prev.ConnectArc(radius, span)
	if !b.record(name, "ConnectArc", a, err) {
		return CircularArc{}
	}
	return a
}

// ConnectLine registers the segment that continues prev tangentially.
func (b *Builder) ConnectLine(name string, prev Connectable, length float64) Segment {
	if !b.ok() {
		return Segment{}
	}
	if prev == nil {
		b.record(name, "ConnectLine", nil, geometryError("nothing to connect to"))
		return Segment{}
	}
	s, err := prev.ConnectLine(length)
	if !b.record(name, "ConnectLine", s, err) {
		return Segment{}
	}
	return s
}
