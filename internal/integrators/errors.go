package integrators

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates a state whose length differs from
	// the buffer dimension.
	ErrDimensionMismatch = errors.New("integrators: state dimension mismatch")

	// ErrOddDimension indicates a symplectic state that cannot split
	// into position and velocity halves.
	ErrOddDimension = errors.New("integrators: second-order state dimension must be even")

	// ErrUnknownMethod indicates a method name missing from the registry.
	ErrUnknownMethod = errors.New("integrators: unknown method")
)

// StepError carries the step context of a failed derivative or
// acceleration evaluation.
type StepError struct {
	Step    int
	Time    float64
	Stage   string
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("integrators: %s failed at step %d (t=%g): %v", e.Stage, e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
