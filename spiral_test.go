package draft

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constantRadius(r float64) RadiusFunc {
	return func(float64) float64 { return r }
}

func TestSpiralConstantRadius(t *testing.T) {
	s, err := NewSpiralArc(Pt(0, 0), constantRadius(10), 0, 90)
	require.NoError(t, err)
	diff(t, s.StartPoint(), Pt(10, 0))
	diff(t, s.EndPoint(), Pt(0, 10))

	if got := s.EndTangent(); math.Abs(AngleDiff(got, 180)) > TangentStep {
		t.Errorf("got end tangent %g, want ≈180", got)
	}
	if got := s.StartTangent(); math.Abs(AngleDiff(got, 90)) > TangentStep {
		t.Errorf("got start tangent %g, want ≈90", got)
	}
	if got, want := s.Length(), 5*math.Pi; math.Abs(got-want) > 1e-3 {
		t.Errorf("got length %g, want %g", got, want)
	}
	pts := s.Points()
	if len(pts) != 181 {
		t.Errorf("got %d samples, want 181", len(pts))
	}
	for i, pt := range pts {
		if d := math.Abs(pt.Distance(s.Center) - 10); d > 1e-9 {
			t.Errorf("sample %d is %g off the circle", i, d)
		}
	}
}

func TestSpiralClockwise(t *testing.T) {
	s, err := NewSpiralArc(Pt(1, 1), func(a float64) float64 { return 5 + a/90 }, 90, 0)
	require.NoError(t, err)
	if s.Orientation() != -1 {
		t.Errorf("got orientation %g, want -1", s.Orientation())
	}
	diff(t, s.StartPoint(), Pt(1, 7))
	diff(t, s.EndPoint(), Pt(6, 1))
	// Heading down, slightly outwards since the radius shrinks.
	if got := s.EndTangent(); math.Abs(AngleDiff(got, -90)) > 15 {
		t.Errorf("got end tangent %g, want roughly -90", got)
	}
}

func TestNewSpiralArcInvalid(t *testing.T) {
	tests := []struct {
		name   string
		radius RadiusFunc
		start  float64
		end    float64
		want   error
	}{
		{"nil function", nil, 0, 90, ErrInvalidGeometry},
		{"zero sweep", constantRadius(1), 45, 45, ErrInvalidGeometry},
		{"infinite angle", constantRadius(1), 0, math.Inf(1), ErrInvalidGeometry},
		{"endless sweep", constantRadius(1), 0, 1e12, ErrInvalidGeometry},
		{"just over ten turns", constantRadius(1), 0, -MaxSpiralSweep - 0.5, ErrInvalidGeometry},
		{"huge radius", constantRadius(10 * MaxCoordinate), 0, 90, ErrDiscontinuousSpiral},
		{"negative radius", func(a float64) float64 {
			if a > 45 {
				return -1
			}
			return 1
		}, 0, 90, ErrDiscontinuousSpiral},
		{"NaN radius", func(a float64) float64 {
			if a < -30 {
				return math.NaN()
			}
			return 1
		}, 0, -90, ErrDiscontinuousSpiral},
		{"pole", func(a float64) float64 { return 1 / (a - 60) }, 60, 120, ErrDiscontinuousSpiral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, errOf(NewSpiralArc(Pt(0, 0), tt.radius, tt.start, tt.end)), tt.want)
		})
	}
}

func TestSpiralConnectors(t *testing.T) {
	s, err := NewSpiralArc(Pt(0, 0), func(a float64) float64 { return 10 + a/30 }, 0, 120)
	require.NoError(t, err)
	l, err := s.ConnectLine(5)
	require.NoError(t, err)
	if d := math.Abs(l.Length() - 5); d > 1e-9 {
		t.Errorf("got length %g, want 5", l.Length())
	}
	a, err := s.ConnectArc(8, 60)
	require.NoError(t, err)
	checkContinuity(t, []Primitive{s, a})
	checkContinuity(t, []Primitive{s, l})

	assert.ErrorIs(t, errOf(s.ConnectLine(-1)), ErrInvalidGeometry)
}

func TestSpiralPathElements(t *testing.T) {
	s, err := NewSpiralArc(Pt(0, 0), constantRadius(2), 0, 10)
	require.NoError(t, err)
	var els []PathElement
	for el := range s.PathElements(DefaultTolerance) {
		els = append(els, el)
	}
	if len(els) != 21 {
		t.Fatalf("got %d elements, want 21", len(els))
	}
	if els[0].Kind != MoveToKind {
		t.Errorf("first element is %s", els[0])
	}
	for _, el := range els[1:] {
		if el.Kind != LineToKind {
			t.Errorf("unexpected element %s", el)
		}
	}
	diff(t, els[20].P0, s.EndPoint())
}
