package integrators

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// State is a vector representing the instantaneous state of a system.
// Second-order systems store it as [positions | velocities] halves.
type State []float64

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// IsValid reports whether every component is finite.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Norm returns the Euclidean norm of the state.
func (s State) Norm() float64 {
	return floats.Norm(s, 2)
}

// Sub returns s - other component-wise. Both states must share a length.
func (s State) Sub(other State) State {
	c := s.Clone()
	floats.Sub(c, other)
	return c
}

// System describes a first-order ODE system dx/dt = f(t, x).
// Derive must return a newly allocated vector and leave x untouched.
type System interface {
	Derive(t float64, x State) (State, error)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(t float64, x State) (State, error)

func (f SystemFunc) Derive(t float64, x State) (State, error) { return f(t, x) }

// SecondOrder supplies accelerations for a system whose state splits
// into position and velocity halves. Accelerations receives only the
// position half and must return one acceleration per position.
type SecondOrder interface {
	Accelerations(t float64, q State) (State, error)
}

// SecondOrderFunc adapts a plain function to the SecondOrder interface.
type SecondOrderFunc func(t float64, q State) (State, error)

func (f SecondOrderFunc) Accelerations(t float64, q State) (State, error) { return f(t, q) }
