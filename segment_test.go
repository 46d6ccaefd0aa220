package draft

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentMeasures(t *testing.T) {
	s := Segment{Pt(0, 0), Pt(3, 4)}
	if l := s.Length(); l != 5 {
		t.Errorf("got length %g, want 5", l)
	}
	want := math.Atan2(4, 3) * 180 / math.Pi
	if d := math.Abs(s.Slope() - want); d > 1e-12 {
		t.Errorf("got slope %g, want %g", s.Slope(), want)
	}
	diff(t, s.Midpoint(), Pt(1.5, 2))
}

func TestSegmentSlopeRange(t *testing.T) {
	tests := []struct {
		s    Segment
		want float64
	}{
		{Segment{Pt(0, 0), Pt(1, 0)}, 0},
		{Segment{Pt(0, 0), Pt(0, 1)}, 90},
		{Segment{Pt(0, 0), Pt(-1, 0)}, 180},
		{Segment{Pt(0, 0), Pt(-1, math.Copysign(0, -1))}, 180},
		{Segment{Pt(0, 0), Pt(0, -1)}, -90},
		{Segment{Pt(0, 0), Pt(-1, -1)}, -135},
	}
	for _, tt := range tests {
		if got := tt.s.Slope(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%v: got slope %g, want %g", tt.s, got, tt.want)
		}
	}
}

func TestNewSegment(t *testing.T) {
	assert.ErrorIs(t, errOf(NewSegment(Pt(1, 1), Pt(1, 1))), ErrInvalidGeometry)
	assert.ErrorIs(t, errOf(NewSegment(Pt(1, 1), Pt(math.NaN(), 1))), ErrInvalidGeometry)
	assert.ErrorIs(t, errOf(NewSegment(Pt(0, 0), Pt(10*MaxCoordinate, 0))), ErrInvalidGeometry)

	s, err := SegmentFrom(Pt(1, 1), 10, 90)
	require.NoError(t, err)
	diff(t, s, Segment{Pt(1, 1), Pt(1, 11)})

	s, err = SegmentFrom(Pt(1, 1), -10, 90)
	require.NoError(t, err)
	diff(t, s, Segment{Pt(1, 1), Pt(1, -9)})

	assert.ErrorIs(t, errOf(SegmentFrom(Pt(1, 1), 0, 90)), ErrInvalidGeometry)
}

func TestSegmentConnectLine(t *testing.T) {
	s := Segment{Pt(0, 0), Pt(10, 0)}
	l, err := s.ConnectLine(5)
	require.NoError(t, err)
	diff(t, l, Segment{Pt(10, 0), Pt(15, 0)})
	checkContinuity(t, []Primitive{s, l})

	for _, length := range []float64{0, -1, math.Inf(1), math.NaN()} {
		assert.ErrorIs(t, errOf(s.ConnectLine(length)), ErrInvalidGeometry, "length %g", length)
	}

	// Far from the origin, a tiny length doesn't move the end point off the
	// start point's grid cell.
	far := Segment{Pt(1e6, 0), Pt(1e6+1, 0)}
	for _, length := range []float64{1e-12, Resolution / 4} {
		assert.ErrorIs(t, errOf(far.ConnectLine(length)), ErrInvalidGeometry, "length %g", length)
	}
	l, err = far.ConnectLine(2 * Resolution)
	require.NoError(t, err)
	if l.P0.Equal(l.P1) {
		t.Errorf("%v has coinciding end points", l)
	}
}

func TestSegmentConnectArc(t *testing.T) {
	s := Segment{Pt(0, 0), Pt(10, 0)}

	left, err := s.ConnectArc(2, 90)
	require.NoError(t, err)
	diff(t, left, CircularArc{Center: Pt(10, 2), Radius: 2, StartAngle: -90, Span: 90})
	diff(t, left.EndPoint(), Pt(12, 2), approx)
	checkContinuity(t, []Primitive{s, left})

	right, err := s.ConnectArc(-2, -90)
	require.NoError(t, err)
	diff(t, right, CircularArc{Center: Pt(10, -2), Radius: 2, StartAngle: 90, Span: -90})
	diff(t, right.EndPoint(), Pt(12, -2), approx)
	checkContinuity(t, []Primitive{s, right})

	// Opposite signs would leave the end point backwards.
	for _, tt := range []struct{ radius, span float64 }{{2, -90}, {-2, 90}} {
		assert.ErrorIs(t, errOf(s.ConnectArc(tt.radius, tt.span)), ErrInvalidGeometry, "radius %g, span %g", tt.radius, tt.span)
	}
}

func TestSegmentConnectArcInvalid(t *testing.T) {
	s := Segment{Pt(0, 0), Pt(10, 0)}
	tests := []struct{ radius, span float64 }{
		{0, 90},
		{2, 0},
		{2, 360},
		{2, -360},
		{math.NaN(), 90},
		{2, math.Inf(1)},
	}
	for _, tt := range tests {
		assert.ErrorIs(t, errOf(s.ConnectArc(tt.radius, tt.span)), ErrInvalidGeometry, "radius %g, span %g", tt.radius, tt.span)
	}
}
