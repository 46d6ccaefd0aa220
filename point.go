package draft

import (
	"fmt"
	"math"
)

// Resolution is the grid used by [Point.Equal] and [Point.Key]. Two points
// whose coordinates round to the same multiple of Resolution are considered
// to be the same point. With lengths in millimeters this is 0.1 µm.
const Resolution = 1e-4

// MaxCoordinate is the largest coordinate magnitude that primitives accept.
// Beyond it, multiples of [Resolution] no longer fit the integer grid used by
// [Point.Key].
const MaxCoordinate = 1e12

// Point is a location in the drawing plane. Angles are measured in degrees,
// counter-clockwise from the positive x axis, with y pointing up.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Move returns the point at the given distance from pt in the direction of
// angle, which is expressed in degrees. A negative distance moves backwards.
func (pt Point) Move(distance, angle float64) Point {
	s, c := sincosDeg(angle)
	return Point{
		X: pt.X + distance*c,
		Y: pt.Y + distance*s,
	}
}

// HMove moves the point horizontally.
func (pt Point) HMove(distance float64) Point { return pt.Move(distance, 0) }

// VMove moves the point vertically.
func (pt Point) VMove(distance float64) Point { return pt.Move(distance, 90) }

// Sub computes p−o.
// To subtract a vector from p, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Add adds the coordinates of two points.
func (pt Point) Add(o Point) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Scale multiplies both coordinates by f.
func (pt Point) Scale(f float64) Point {
	return Point{
		X: pt.X * f,
		Y: pt.Y * f,
	}
}

// Div divides both coordinates by f.
func (pt Point) Div(f float64) Point {
	return Point{
		X: pt.X / f,
		Y: pt.Y / f,
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// SlopeTo returns the direction from pt to o in degrees, in the range
// (-180, 180].
func (pt Point) SlopeTo(o Point) float64 {
	return o.Sub(pt).Angle()
}

// Key returns the coordinates of pt rounded to multiples of [Resolution].
// Points with equal keys are equal according to [Point.Equal]. Keys of points
// outside of ±[MaxCoordinate] are meaningless.
func (pt Point) Key() [2]int64 {
	return [2]int64{
		int64(math.Round(pt.X / Resolution)),
		int64(math.Round(pt.Y / Resolution)),
	}
}

// Equal reports whether pt and o are the same point, up to [Resolution].
func (pt Point) Equal(o Point) bool {
	if pt.valid() && o.valid() {
		return pt.Key() == o.Key()
	}
	return math.Abs(pt.X-o.X) < Resolution/2 && math.Abs(pt.Y-o.Y) < Resolution/2
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// valid reports whether pt is finite and within ±MaxCoordinate.
func (pt Point) valid() bool {
	return math.Abs(pt.X) <= MaxCoordinate && math.Abs(pt.Y) <= MaxCoordinate
}
