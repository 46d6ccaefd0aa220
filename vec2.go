package draft

import (
	"fmt"
	"math"
)

type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

// Polar returns the vector of the given length pointing in the direction of
// angle, which is expressed in degrees.
func Polar(length, angle float64) Vec2 {
	s, c := sincosDeg(angle)
	return Vec2{
		X: length * c,
		Y: length * s,
	}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the angle in degrees between the vector and ⟨1, 0⟩, in the
// range (-180, 180]. Axis-aligned vectors yield exact multiples of 90°.
func (v Vec2) Angle() float64 {
	switch {
	case v.Y == 0 && v.X < 0:
		return 180
	case v.Y == 0:
		return 0
	case v.X == 0 && v.Y > 0:
		return 90
	case v.X == 0:
		return -90
	}
	return NormalizeAngle(degrees(math.Atan2(v.Y, v.X)))
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

func (v Vec2) Div(f float64) Vec2 {
	return Vec2{
		X: v.X / f,
		Y: v.Y / f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}
