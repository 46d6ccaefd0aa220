// Package svg renders built drawings as SVG documents.
//
// Drawings are placed in a common y-up coordinate system, each at its own
// offset, and flipped on output, so that a document shows them the way they
// were constructed. Lengths are written as millimeters.
package svg

import (
	"bufio"
	"errors"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/draft"
)

// ErrEmpty is returned by [Encode] when there is nothing to draw.
var ErrEmpty = errors.New("svg: nothing to draw")

// Placement positions a graph in the document.
type Placement struct {
	Graph *draft.Graph
	// Rotation turns the graph counter-clockwise, in degrees, about the
	// center of its bounding box.
	Rotation float64
	// Offset moves the graph after rotating it.
	Offset draft.Vec2
	// Label is written next to the graph's anchor, if not empty.
	Label string
}

// transform returns the transform from the graph's coordinates to the
// document's.
func (pl Placement) transform(scale float64) draft.Affine {
	aff := draft.Shift(pl.Offset)
	if r := pl.Graph.BoundingBox(); pl.Rotation != 0 && !r.IsEmpty() {
		aff = aff.Mul(draft.RotationAbout(pl.Rotation, r.Center()))
	}
	// Flip into SVG's y-down system.
	return draft.FlipY.Mul(aff.ThenScale(scale, scale))
}

// Options control the output of [Encode]. The zero value is usable.
type Options struct {
	// Tolerance for approximating arcs, see [draft.CircularArc.PathElements].
	// Defaults to [draft.DefaultTolerance].
	Tolerance float64
	// Number of decimals to write. Defaults to 3.
	Precision int
	// Space around the drawings. Defaults to 10.
	Margin float64
	// Defaults to 0.25.
	StrokeWidth float64
	// Scale is the drawing scale, such as 0.5 for a drawing at 1:2.
	// Defaults to 1.
	Scale float64
	// ReferencePoints marks and numbers the reference points of every
	// graph, for annotating dimensions by hand.
	ReferencePoints bool
}

func (opts *Options) setDefaults() {
	if opts.Tolerance <= 0 {
		opts.Tolerance = draft.DefaultTolerance
	}
	if opts.Precision <= 0 {
		opts.Precision = 3
	}
	if opts.Margin <= 0 {
		opts.Margin = 10
	}
	if opts.StrokeWidth <= 0 {
		opts.StrokeWidth = 0.25
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
}

// Encode writes an SVG document showing all placements to w.
func Encode(w io.Writer, opts Options, placements ...Placement) error {
	opts.setDefaults()

	transforms := make([]draft.Affine, len(placements))
	bbox := draft.Rect{}
	first := true
	for i, pl := range placements {
		if pl.Graph == nil {
			return fmt.Errorf("svg: placement %d has no graph", i)
		}
		transforms[i] = pl.transform(opts.Scale)
		r := pl.Graph.BoundingBox()
		if r.IsEmpty() {
			continue
		}
		r = transforms[i].TransformRect(r)
		if first {
			bbox, first = r, false
		} else {
			bbox = bbox.Union(r)
		}
	}
	if first {
		return ErrEmpty
	}
	bbox = bbox.Inflate(opts.Margin, opts.Margin)

	e := &encoder{w: bufio.NewWriter(w), prec: opts.Precision}
	e.printf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%smm" height="%smm">`+"\n",
		e.num(bbox.X0), e.num(bbox.Y0), e.num(bbox.Width()), e.num(bbox.Height()),
		e.num(bbox.Width()), e.num(bbox.Height()))
	for i, pl := range placements {
		e.graph(pl, transforms[i], opts)
	}
	e.printf("</svg>\n")
	if e.err != nil {
		return e.err
	}
	return e.w.Flush()
}

type encoder struct {
	w    *bufio.Writer
	prec int
	err  error
}

func (e *encoder) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *encoder) num(f float64) string {
	s := strconv.FormatFloat(f, 'f', e.prec, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func (e *encoder) graph(pl Placement, aff draft.Affine, opts Options) {
	g := pl.Graph
	e.printf(`<g fill="none" stroke="black" stroke-width="%s">`+"\n", e.num(opts.StrokeWidth))
	for name, p := range g.All() {
		if p.Kind() == draft.PointKind {
			continue
		}
		d := draft.SVG(
			draft.TransformElements(p.PathElements(opts.Tolerance), aff),
			draft.SVGOptions{MaxPrecision: e.prec})
		e.printf(`<path data-name="%s" d="%s"/>`+"\n", html.EscapeString(name), d)
	}
	e.printf("</g>\n")

	size := 4 * opts.StrokeWidth
	if pl.Label != "" {
		a := g.Anchor().Transform(aff)
		e.printf(`<text x="%s" y="%s" font-size="%s">%s</text>`+"\n",
			e.num(a.X), e.num(a.Y), e.num(4*size), html.EscapeString(pl.Label))
	}
	if !opts.ReferencePoints {
		return
	}
	e.printf(`<g fill="red" font-size="%s">`+"\n", e.num(3*size))
	for i, pt := range g.ReferencePoints() {
		pt = pt.Transform(aff)
		e.printf(`<circle cx="%s" cy="%s" r="%s"/>`, e.num(pt.X), e.num(pt.Y), e.num(size))
		e.printf(`<text x="%s" y="%s">%d</text>`+"\n", e.num(pt.X+size), e.num(pt.Y-size), i+1)
	}
	e.printf("</g>\n")
}
