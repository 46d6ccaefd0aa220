package draft

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// errOf returns the error of a (value, error) pair, for asserting on
// failures: assert.ErrorIs(t, errOf(NewSegment(p, p)), ErrInvalidGeometry).
func errOf[T any](_ T, err error) error { return err }

// approx compares floats to within the tolerance used for tangency checks.
var approx = cmpopts.EquateApprox(0, 1e-9)

const tangencyTolerance = 1e-6

// startTangent returns the direction of travel at the start of p.
func startTangent(p Primitive) float64 {
	switch p := p.(type) {
	case Segment:
		return p.StartTangent()
	case CircularArc:
		return p.StartTangent()
	case SpiralArc:
		return p.StartTangent()
	default:
		panic("no tangent")
	}
}

// checkContinuity verifies that every primitive in chain starts where the
// previous one ended, travelling in the same direction.
func checkContinuity(t *testing.T, chain []Primitive) {
	t.Helper()
	for i := 1; i < len(chain); i++ {
		prev := chain[i-1].(Connectable)
		next := chain[i]
		if d := prev.End().Distance(next.Start()); d > tangencyTolerance {
			t.Errorf("step %d: gap of %g between %s and %s", i, d, prev.End(), next.Start())
		}
		if d := math.Abs(AngleDiff(prev.EndTangent(), startTangent(next))); d > tangencyTolerance {
			t.Errorf("step %d: direction changes by %g° (%g → %g)", i, d, prev.EndTangent(), startTangent(next))
		}
	}
}
