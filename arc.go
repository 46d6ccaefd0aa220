package draft

import (
	"iter"
	"math"
)

// DefaultTolerance is a default value for methods that take a tolerance
// argument, in drawing units. With millimeters it is well below what a
// printer or a router can reproduce.
const DefaultTolerance = 1e-2

// CircularArc is a portion of a circle, described by its center, its radius,
// the angle of its start point and its signed span. All angles are in
// degrees. A positive span sweeps counter-clockwise, a negative span
// clockwise.
type CircularArc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	Span       float64
}

// NewCircularArc returns a validated arc. The radius must be positive and the
// span must be non-zero and less than a full turn in magnitude.
func NewCircularArc(center Point, radius, startAngle, span float64) (CircularArc, error) {
	if !center.valid() || !isFinite(startAngle) {
		return CircularArc{}, geometryError("arc at %s starting at %g°", center, startAngle)
	}
	if !isFinite(radius) || radius <= 0 {
		return CircularArc{}, geometryError("arc radius %g", radius)
	}
	if err := checkSpan(span); err != nil {
		return CircularArc{}, err
	}
	return CircularArc{center, radius, startAngle, span}, nil
}

// EndAngle returns StartAngle + Span.
func (a CircularArc) EndAngle() float64 {
	return a.StartAngle + a.Span
}

// Orientation returns +1 for counter-clockwise arcs and -1 for clockwise
// ones.
func (a CircularArc) Orientation() float64 {
	return sign(a.Span)
}

// PointAt returns the point of the underlying circle at the given angle.
func (a CircularArc) PointAt(angle float64) Point {
	return a.Center.Move(a.Radius, angle)
}

func (a CircularArc) StartPoint() Point { return a.PointAt(a.StartAngle) }
func (a CircularArc) EndPoint() Point   { return a.PointAt(a.EndAngle()) }

// Kind implements Primitive.
func (a CircularArc) Kind() Kind { return ArcKind }

// Start implements Primitive.
func (a CircularArc) Start() Point { return a.StartPoint() }

// End implements Primitive.
func (a CircularArc) End() Point { return a.EndPoint() }

// StartTangent returns the direction of travel at the start point.
func (a CircularArc) StartTangent() float64 {
	return NormalizeAngle(a.StartAngle + 90*a.Orientation())
}

// EndTangent returns the direction of travel at the end point, which is
// EndAngle + 90°·Orientation, normalized to (-180, 180].
func (a CircularArc) EndTangent() float64 {
	return NormalizeAngle(a.EndAngle() + 90*a.Orientation())
}

// Length returns the length of the arc.
func (a CircularArc) Length() float64 {
	return 2 * math.Pi * a.Radius * math.Abs(a.Span) / 360
}

// DrawAngles returns the start and end angles ordered such that end > start,
// for backends that can only draw counter-clockwise arcs.
func (a CircularArc) DrawAngles() (start, end float64) {
	if a.Span < 0 {
		return a.EndAngle(), a.StartAngle
	}
	return a.StartAngle, a.EndAngle()
}

// ConnectArc returns the circular arc that continues a at its end point,
// such that the combined path is differentiable all the way through.
//
// The new arc's center lies |radius| away from the end point, on the left of
// the direction of travel for a positive radius and on the right for a
// negative one. Its span is the given span, which must have the same sign as
// radius; otherwise the path would turn back on itself and
// [ErrInvalidGeometry] is returned.
func (a CircularArc) ConnectArc(radius, span float64) (CircularArc, error) {
	return connectArc(a.EndPoint(), a.EndTangent(), radius, span)
}

// ConnectLine returns the segment of the given length that leaves the arc
// tangentially at its end point.
func (a CircularArc) ConnectLine(length float64) (Segment, error) {
	return connectLine(a.EndPoint(), a.EndTangent(), length)
}

func (a CircularArc) IsInf() bool {
	return a.Center.IsInf() ||
		math.IsInf(a.Radius, 0) ||
		math.IsInf(a.StartAngle, 0) ||
		math.IsInf(a.Span, 0)
}

func (a CircularArc) IsNaN() bool {
	return a.Center.IsNaN() ||
		math.IsNaN(a.Radius) ||
		math.IsNaN(a.StartAngle) ||
		math.IsNaN(a.Span)
}

func (a CircularArc) Translate(v Vec2) CircularArc {
	a.Center = a.Center.Translate(v)
	return a
}

// BoundingBox implements Primitive. The box is tight: it includes the
// extreme points of the circle that lie within the span.
func (a CircularArc) BoundingBox() Rect {
	bbox := boundingBoxOf(a.StartPoint(), a.EndPoint())
	lo, hi := a.DrawAngles()
	for k := math.Ceil(lo / 90); k*90 <= hi; k++ {
		bbox = bbox.UnionPoint(a.PointAt(k * 90))
	}
	return bbox
}

// PathElements implements Primitive, approximating the arc with cubic
// Béziers.
func (a CircularArc) PathElements(tolerance float64) iter.Seq[PathElement] {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return func(yield func(PathElement) bool) {
		sample := func(angle float64) Vec2 { return Polar(a.Radius, angle) }
		angle0 := a.StartAngle
		p0 := sample(angle0)
		if !yield(MoveTo(a.Center.Translate(p0))) {
			return
		}

		scaledError := a.Radius / tolerance
		// Number of subdivisions per circle based on error tolerance.
		// Note: this may slightly underestimate the error for quadrants.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := math.Ceil(nError * math.Abs(a.Span) / 360)
		angleStep := a.Span / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*radians(angleStep))), a.Span)

		for i := range int(n) {
			angle1 := angle0 + angleStep
			if i == int(n)-1 {
				angle1 = a.EndAngle()
			}
			p1 := p0.Add(sample(angle0 + 90).Mul(armLen))
			p3 := sample(angle1)
			p2 := p3.Sub(sample(angle1 + 90).Mul(armLen))

			angle0 = angle1
			p0 = p3

			if !yield(CubicTo(
				a.Center.Translate(p1),
				a.Center.Translate(p2),
				a.Center.Translate(p3),
			)) {
				break
			}
		}
	}
}
