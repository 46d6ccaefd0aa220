package draft

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(1, 1).Add(Pt(2, 2)), Pt(3, 3))
	diff(t, Pt(1, 1).Sub(Pt(2, 2)), Vec(-1, -1))
	diff(t, Pt(1, 1).Scale(2), Pt(2, 2))
	diff(t, Pt(1, 1).Div(2), Pt(0.5, 0.5))
	diff(t, Vec(1, 2).Add(Vec(3, 4)).Mul(2), Vec(8, 12))
}

func TestPointMove(t *testing.T) {
	diff(t, Pt(1, 1).Move(10, 90), Pt(1, 11))
	diff(t, Pt(1, 1).Move(10, -90), Pt(1, -9))
	diff(t, Pt(1, 1).Move(10, 180), Pt(-9, 1))
	diff(t, Pt(1, 1).Move(10, 360), Pt(11, 1))
	diff(t, Pt(1, 1).Move(-10, 0), Pt(-9, 1))
	diff(t, Pt(0, 0).Move(2, 45), Pt(math.Sqrt2, math.Sqrt2), approx)
	diff(t, Pt(0, 0).HMove(3), Pt(3, 0))
	diff(t, Pt(0, 0).VMove(3), Pt(0, 3))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointEqual(t *testing.T) {
	tests := []struct {
		a, b Point
		want bool
	}{
		{Pt(1, 1), Pt(1, 1), true},
		{Pt(1, 1), Pt(1+1e-6, 1-1e-6), true},
		{Pt(0, 0), Pt(-1e-7, 1e-7), true},
		{Pt(1, 1), Pt(1.001, 1), false},
		{Pt(1, 1), Pt(1, 0.999), false},
		{Pt(1e19, 0), Pt(-1e19, 0), false},
		{Pt(2e15, 1), Pt(3e15, 1), false},
		{Pt(1e19, 0), Pt(1e19, 0), true},
	}
	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("%s.Equal(%s) = %t, want %t", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{360, 0},
		{-450, -90},
		{540, 180},
		{720.5, 0.5},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("NormalizeAngle(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestSlopeTo(t *testing.T) {
	if got := Pt(0, 0).SlopeTo(Pt(-1, math.Copysign(0, -1))); got != 180 {
		t.Errorf("got slope %g, want 180", got)
	}
	if got := Pt(0, 0).SlopeTo(Pt(0, -1)); got != -90 {
		t.Errorf("got slope %g, want -90", got)
	}
}
