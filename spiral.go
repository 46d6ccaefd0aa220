package draft

import (
	"iter"
	"math"
)

const (
	// SpiralStep is the angular step, in degrees, at which spirals are
	// sampled for validation, rendering and length measurement.
	SpiralStep = 0.5
	// TangentStep is the angular step, in degrees, of the finite difference
	// used to estimate the direction of travel along a spiral.
	TangentStep = 0.1
	// MaxSpiralSweep is the largest sweep, in degrees, of a spiral.
	MaxSpiralSweep = 3600
)

// RadiusFunc returns the radius of a spiral at the given angle in degrees.
type RadiusFunc func(angle float64) float64

// SpiralArc is an arc whose radius varies with the angle, swept from
// StartAngle to EndAngle (counter-clockwise if EndAngle > StartAngle,
// clockwise otherwise).
//
// Since the radius function is arbitrary there is no closed form for the
// tangent; directions are estimated with a finite difference of
// [TangentStep] degrees.
type SpiralArc struct {
	Center     Point
	Radius     RadiusFunc
	StartAngle float64
	EndAngle   float64
}

// NewSpiralArc returns a validated spiral. The radius function is sampled
// every [SpiralStep] degrees across the sweep, and must return a finite,
// non-negative radius everywhere; otherwise [ErrDiscontinuousSpiral] is
// returned. Sweeps larger than [MaxSpiralSweep] are rejected with
// [ErrInvalidGeometry].
func NewSpiralArc(center Point, radius RadiusFunc, startAngle, endAngle float64) (SpiralArc, error) {
	if radius == nil {
		return SpiralArc{}, geometryError("spiral without a radius function")
	}
	if !center.valid() || !isFinite(startAngle) || !isFinite(endAngle) {
		return SpiralArc{}, geometryError("spiral at %s from %g° to %g°", center, startAngle, endAngle)
	}
	if startAngle == endAngle {
		return SpiralArc{}, geometryError("spiral with zero sweep at %g°", startAngle)
	}
	if sweep := math.Abs(endAngle - startAngle); sweep > MaxSpiralSweep {
		return SpiralArc{}, geometryError("spiral sweep %g° exceeds %g°", sweep, float64(MaxSpiralSweep))
	}
	s := SpiralArc{center, radius, startAngle, endAngle}
	for angle := range s.angles() {
		if r := radius(angle); !isFinite(r) || r < 0 || r > MaxCoordinate {
			return SpiralArc{}, spiralError(angle, r)
		}
	}
	return s, nil
}

// Orientation returns +1 for counter-clockwise spirals and -1 for clockwise
// ones.
func (s SpiralArc) Orientation() float64 {
	return sign(s.EndAngle - s.StartAngle)
}

// angles yields the sampling angles from StartAngle to EndAngle, both
// included.
func (s SpiralArc) angles() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		sweep := s.EndAngle - s.StartAngle
		n := int(math.Ceil(math.Abs(sweep) / SpiralStep))
		for i := 0; i < n; i++ {
			if !yield(s.StartAngle + sweep*float64(i)/float64(n)) {
				return
			}
		}
		yield(s.EndAngle)
	}
}

// PointAt returns the point at the given angle.
func (s SpiralArc) PointAt(angle float64) Point {
	return s.Center.Move(s.Radius(angle), angle)
}

// TangentAt estimates the direction of travel at the given angle, using the
// point [TangentStep] degrees before it.
func (s SpiralArc) TangentAt(angle float64) float64 {
	return s.PointAt(angle - TangentStep*s.Orientation()).SlopeTo(s.PointAt(angle))
}

// StartTangent estimates the direction of travel at the start point. It uses
// a forward difference so that the radius function is never evaluated
// outside of the sweep.
func (s SpiralArc) StartTangent() float64 {
	return s.StartPoint().SlopeTo(s.PointAt(s.StartAngle + TangentStep*s.Orientation()))
}

// EndTangent implements Connectable.
func (s SpiralArc) EndTangent() float64 {
	return s.TangentAt(s.EndAngle)
}

func (s SpiralArc) StartPoint() Point { return s.PointAt(s.StartAngle) }
func (s SpiralArc) EndPoint() Point   { return s.PointAt(s.EndAngle) }

// Kind implements Primitive.
func (s SpiralArc) Kind() Kind { return SpiralKind }

// Start implements Primitive.
func (s SpiralArc) Start() Point { return s.StartPoint() }

// End implements Primitive.
func (s SpiralArc) End() Point { return s.EndPoint() }

// Points returns the spiral sampled every [SpiralStep] degrees, as a
// polyline.
func (s SpiralArc) Points() []Point {
	var pts []Point
	for angle := range s.angles() {
		pts = append(pts, s.PointAt(angle))
	}
	return pts
}

// Length returns the length of the sampled polyline.
func (s SpiralArc) Length() float64 {
	var l float64
	pts := s.Points()
	for i := 1; i < len(pts); i++ {
		l += pts[i].Distance(pts[i-1])
	}
	return l
}

// ConnectArc returns the circular arc that continues the spiral at its end
// point, seeded with the estimated end tangent. See [CircularArc.ConnectArc].
func (s SpiralArc) ConnectArc(radius, span float64) (CircularArc, error) {
	return connectArc(s.EndPoint(), s.EndTangent(), radius, span)
}

// ConnectLine returns the segment that leaves the spiral along its
// estimated end tangent.
func (s SpiralArc) ConnectLine(length float64) (Segment, error) {
	return connectLine(s.EndPoint(), s.EndTangent(), length)
}

func (s SpiralArc) Translate(v Vec2) SpiralArc {
	s.Center = s.Center.Translate(v)
	return s
}

// BoundingBox implements Primitive, using the sampled polyline.
func (s SpiralArc) BoundingBox() Rect {
	return boundingBoxOf(s.Points()...)
}

// PathElements implements Primitive. Spirals are rendered as the polyline
// returned by [SpiralArc.Points], regardless of tolerance.
func (s SpiralArc) PathElements(tolerance float64) iter.Seq[PathElement] {
	return polylineElements(s.Points())
}
