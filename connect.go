package draft

import "math"

// connectArc returns the arc that starts at p, travelling in the direction
// tangent (degrees).
//
// The center is placed |radius| away from p, perpendicular to the direction
// of travel: on the left for a positive radius, on the right for a negative
// one. The start angle follows from the center, and span is used verbatim.
// Radius and span must have the same sign; otherwise the arc would leave p
// backwards, through a cusp.
func connectArc(p Point, tangent, radius, span float64) (CircularArc, error) {
	if !isFinite(radius) || radius == 0 {
		return CircularArc{}, geometryError("connecting arc with radius %g", radius)
	}
	if err := checkSpan(span); err != nil {
		return CircularArc{}, err
	}
	if sign(radius) != sign(span) {
		return CircularArc{}, geometryError("connecting arc with radius %g and span %g turns back", radius, span)
	}
	a := CircularArc{
		Center:     p.Move(radius, tangent+90),
		Radius:     math.Abs(radius),
		StartAngle: NormalizeAngle(tangent - 90*sign(radius)),
		Span:       span,
	}
	if !a.Center.valid() {
		return CircularArc{}, geometryError("connecting arc centered at %s", a.Center)
	}
	return a, nil
}

// connectLine returns the segment of the given length that starts at p and
// points in the direction tangent.
func connectLine(p Point, tangent, length float64) (Segment, error) {
	if !isFinite(length) || length <= 0 {
		return Segment{}, geometryError("connecting line with length %g", length)
	}
	return NewSegment(p, p.Move(length, tangent))
}

func checkSpan(span float64) error {
	if !isFinite(span) || span == 0 || math.Abs(span) >= 360 {
		return geometryError("span %g outside (-360, 0) ∪ (0, 360)", span)
	}
	return nil
}
