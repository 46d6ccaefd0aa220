package draft

import "iter"

// Segment represents a straight line segment from P0 to P1. Its direction of
// travel is from P0 towards P1.
type Segment struct {
	// The segment's start point.
	P0 Point
	// The segment's end point.
	P1 Point
}

// NewSegment returns the segment from p0 to p1. End points that are equal
// according to [Point.Equal] are rejected with [ErrInvalidGeometry].
func NewSegment(p0, p1 Point) (Segment, error) {
	if !p0.valid() || !p1.valid() {
		return Segment{}, geometryError("segment %s → %s is out of range", p0, p1)
	}
	if p0.Equal(p1) {
		return Segment{}, geometryError("segment %s → %s has zero length", p0, p1)
	}
	return Segment{p0, p1}, nil
}

// SegmentFrom returns the segment starting at start with the given length and
// slope, in degrees. A negative length yields a segment pointing in the
// opposite direction.
func SegmentFrom(start Point, length, slope float64) (Segment, error) {
	if !isFinite(length) || !isFinite(slope) {
		return Segment{}, geometryError("length %g, slope %g", length, slope)
	}
	if length == 0 {
		return Segment{}, geometryError("segment has zero length")
	}
	return NewSegment(start, start.Move(length, slope))
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.P1.Sub(s.P0).Hypot()
}

// Slope returns the direction of the segment in degrees, in the range
// (-180, 180].
func (s Segment) Slope() float64 {
	return s.P0.SlopeTo(s.P1)
}

// Midpoint returns the point halfway between the end points.
func (s Segment) Midpoint() Point {
	return s.P0.Midpoint(s.P1)
}

// Kind implements Primitive.
func (s Segment) Kind() Kind { return SegmentKind }

func (s Segment) Start() Point { return s.P0 }
func (s Segment) End() Point   { return s.P1 }

// StartTangent returns the direction of travel at the start point, which for
// a segment is its slope.
func (s Segment) StartTangent() float64 { return s.Slope() }

// EndTangent implements Connectable.
func (s Segment) EndTangent() float64 { return s.Slope() }

// ConnectArc returns the circular arc that continues the segment at its end
// point. See [CircularArc.ConnectArc] for the meaning of radius and span.
func (s Segment) ConnectArc(radius, span float64) (CircularArc, error) {
	return connectArc(s.P1, s.Slope(), radius, span)
}

// ConnectLine returns the segment of the given length that continues this
// one straight ahead.
func (s Segment) ConnectLine(length float64) (Segment, error) {
	return connectLine(s.P1, s.Slope(), length)
}

func (s Segment) IsInf() bool {
	return s.P0.IsInf() || s.P1.IsInf()
}

func (s Segment) IsNaN() bool {
	return s.P0.IsNaN() || s.P1.IsNaN()
}

func (s Segment) Translate(v Vec2) Segment {
	return Segment{
		P0: s.P0.Translate(v),
		P1: s.P1.Translate(v),
	}
}

func (s Segment) BoundingBox() Rect {
	return NewRectFromPoints(s.P0, s.P1)
}

func (s Segment) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(s.P0)) &&
			yield(LineTo(s.P1))
	}
}
