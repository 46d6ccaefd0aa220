package draft

import (
	"fmt"
	"iter"
	"slices"
)

type Kind int

const (
	PointKind Kind = iota + 1
	SegmentKind
	ArcKind
	SpiralKind
)

func (k Kind) String() string {
	switch k {
	case PointKind:
		return "Point"
	case SegmentKind:
		return "Segment"
	case ArcKind:
		return "CircularArc"
	case SpiralKind:
		return "SpiralArc"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Primitive is one of [Point], [Segment], [CircularArc] and [SpiralArc]. The
// set is closed; other packages cannot implement it. Use a type switch or
// [Primitive.Kind] to distinguish the kinds.
type Primitive interface {
	Kind() Kind
	// Start returns the point where the primitive begins.
	Start() Point
	// End returns the point where the primitive ends.
	End() Point
	// BoundingBox returns the smallest rectangle that encloses the primitive.
	BoundingBox() Rect
	// PathElements returns the primitive as a series of path elements,
	// approximating circular arcs with cubic Béziers to within tolerance.
	PathElements(tolerance float64) iter.Seq[PathElement]

	primitive()
}

// Connectable is implemented by primitives that have a direction of travel at
// their end point and can thus be continued by a tangent primitive.
type Connectable interface {
	Primitive
	// EndTangent returns the direction of travel at the end point, in
	// degrees.
	EndTangent() float64
	ConnectArc(radius, span float64) (CircularArc, error)
	ConnectLine(length float64) (Segment, error)
}

var (
	_ Primitive   = Point{}
	_ Connectable = Segment{}
	_ Connectable = CircularArc{}
	_ Connectable = SpiralArc{}
)

func (Point) primitive()       {}
func (Segment) primitive()     {}
func (CircularArc) primitive() {}
func (SpiralArc) primitive()   {}

// Kind implements Primitive.
func (pt Point) Kind() Kind { return PointKind }

// Start implements Primitive. A point starts and ends at itself.
func (pt Point) Start() Point { return pt }

// End implements Primitive.
func (pt Point) End() Point { return pt }

// BoundingBox implements Primitive.
func (pt Point) BoundingBox() Rect { return Rect{pt.X, pt.Y, pt.X, pt.Y} }

// PathElements implements Primitive. A point has no extent and yields nothing.
func (pt Point) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {}
}

// ReferencePoints returns the boundary points of a primitive that are worth
// annotating in a drawing: the point itself, or the start and end points of
// segments and arcs.
func ReferencePoints(p Primitive) []Point {
	switch p := p.(type) {
	case Point:
		return []Point{p}
	default:
		return []Point{p.Start(), p.End()}
	}
}

// Translate returns p moved by v. The result has the same kind as p.
func Translate(p Primitive, v Vec2) Primitive {
	switch p := p.(type) {
	case Point:
		return p.Translate(v)
	case Segment:
		return p.Translate(v)
	case CircularArc:
		return p.Translate(v)
	case SpiralArc:
		return p.Translate(v)
	default:
		panic(fmt.Sprintf("unhandled primitive %T", p))
	}
}

// Length returns the length of p along its path. Points have zero length.
func Length(p Primitive) float64 {
	switch p := p.(type) {
	case Point:
		return 0
	case Segment:
		return p.Length()
	case CircularArc:
		return p.Length()
	case SpiralArc:
		return p.Length()
	default:
		panic(fmt.Sprintf("unhandled primitive %T", p))
	}
}

// Param is a named numeric value, as used both for template parameters and
// for describing primitives to renderers.
type Param struct {
	Name  string
	Value float64
}

// Describe returns the defining parameters of p, in a fixed order, for
// renderers and annotation tools that want to print them:
//
//   - Point: x, y
//   - Segment: x0, y0, x1, y1
//   - CircularArc: cx, cy, radius, start_angle, end_angle (as drawn, with
//     end_angle > start_angle, see [CircularArc.DrawAngles])
//   - SpiralArc: cx, cy, start_angle, end_angle, samples
func Describe(p Primitive) []Param {
	switch p := p.(type) {
	case Point:
		return []Param{{"x", p.X}, {"y", p.Y}}
	case Segment:
		return []Param{{"x0", p.P0.X}, {"y0", p.P0.Y}, {"x1", p.P1.X}, {"y1", p.P1.Y}}
	case CircularArc:
		start, end := p.DrawAngles()
		return []Param{
			{"cx", p.Center.X}, {"cy", p.Center.Y},
			{"radius", p.Radius},
			{"start_angle", start}, {"end_angle", end},
		}
	case SpiralArc:
		return []Param{
			{"cx", p.Center.X}, {"cy", p.Center.Y},
			{"start_angle", p.StartAngle}, {"end_angle", p.EndAngle},
			{"samples", float64(len(p.Points()))},
		}
	default:
		panic(fmt.Sprintf("unhandled primitive %T", p))
	}
}

func polylineElements(pts []Point) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for i, pt := range pts {
			el := LineTo(pt)
			if i == 0 {
				el = MoveTo(pt)
			}
			if !yield(el) {
				return
			}
		}
	}
}

func boundingBoxOf(pts ...Point) Rect {
	return boundingBoxSeq(slices.Values(pts))
}

func boundingBoxSeq(pts iter.Seq[Point]) Rect {
	r := emptyRect
	for pt := range pts {
		r = r.UnionPoint(pt)
	}
	return r
}
