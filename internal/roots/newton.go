// Package roots finds zeros of scalar real functions.
package roots

import (
	"fmt"
	"math"
)

// MaxIterations bounds the Newton-Raphson loop.
const MaxIterations = 5000

var epsilon = math.Nextafter(1, 2) - 1

// NoConvergenceError reports a search that exhausted its iterations
// without meeting the convergence criterion.
type NoConvergenceError struct {
	Initial float64
}

func (e *NoConvergenceError) Error() string {
	return fmt.Sprintf("roots: no convergence from initial guess %g after %d iterations", e.Initial, MaxIterations)
}

// FindRoot locates a zero of f near the initial guess with the
// Newton-Raphson method, df being the derivative of f. Convergence is
// reached when two successive iterates differ by less than 10 machine
// epsilons. An initial guess within one epsilon of zero is returned
// as-is.
func FindRoot(f, df func(float64) float64, initial float64) (float64, error) {
	if math.Abs(initial) < epsilon {
		return initial, nil
	}
	x1 := initial
	for i := 0; i < MaxIterations; i++ {
		x2 := x1 - f(x1)/df(x1)
		if math.Abs(x1-x2) < 10*epsilon {
			return x2, nil
		}
		x1 = x2
	}
	return 0, &NoConvergenceError{Initial: initial}
}
