package draft

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGeometry indicates a degenerate primitive, such as a zero
	// radius, a zero span or a zero-length segment.
	ErrInvalidGeometry = errors.New("draft: invalid geometry")
	// ErrUnknownParameter indicates a parameter name that the template
	// doesn't declare.
	ErrUnknownParameter = errors.New("draft: unknown parameter")
	// ErrInvalidParameter indicates a parameter value that isn't a finite
	// number.
	ErrInvalidParameter = errors.New("draft: invalid parameter value")
	// ErrMissingPrimitive indicates a lookup of a name that wasn't bound
	// during construction.
	ErrMissingPrimitive = errors.New("draft: no such primitive")
	// ErrDiscontinuousSpiral indicates a radius function that returned a
	// negative or non-finite radius within the swept interval.
	ErrDiscontinuousSpiral = errors.New("draft: discontinuous spiral")
	// ErrDuplicateName indicates that two primitives were registered under
	// the same name.
	ErrDuplicateName = errors.New("draft: duplicate primitive name")
	// ErrInvalidName indicates an empty primitive name.
	ErrInvalidName = errors.New("draft: invalid primitive name")
)

// StepError records the construction step that failed, together with the
// operation it performed.
type StepError struct {
	// Step is the name under which the primitive would have been registered.
	Step string
	// Op is the builder operation, such as "ConnectArc".
	Op  string
	Err error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q (%s): %v", e.Step, e.Op, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

func geometryError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidGeometry}, args...)...)
}

func spiralError(angle, radius float64) error {
	return fmt.Errorf("%w: radius %g at %g°", ErrDiscontinuousSpiral, radius, angle)
}
