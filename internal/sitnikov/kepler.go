package sitnikov

import (
	"fmt"
	"math"

	"github.com/orbitlab/sitnikov/internal/roots"
)

// EccentricAnomaly solves the Kepler equation E - e sin(E) = m for the
// eccentric anomaly with the Newton-Raphson method. A circular orbit
// short-circuits to the mean anomaly. High eccentricities start from
// pi instead of m, where convergence from the mean anomaly is poor.
func EccentricAnomaly(e, m float64) (float64, error) {
	if e == 0 {
		return m, nil
	}

	f := func(x float64) float64 { return x - e*math.Sin(x) - m }
	df := func(x float64) float64 { return 1 - e*math.Cos(x) }

	initial := m
	if e > 0.8 {
		initial = math.Pi
	}

	root, err := roots.FindRoot(f, df, initial)
	if err != nil {
		return 0, fmt.Errorf("kepler equation (e=%g, m=%g): %w", e, m, err)
	}
	return root, nil
}

// Radius returns the distance between either primary and the
// barycenter at time t, in units of the semi-major axis.
func (m *Model) Radius(t float64) (float64, error) {
	ea, err := EccentricAnomaly(m.e, t-m.tau)
	if err != nil {
		return 0, err
	}
	return 1 - m.e*math.Cos(ea), nil
}

// Acceleration evaluates the equation of motion of the massless body
// at height z above the orbital plane.
func (m *Model) Acceleration(t, z float64) (float64, error) {
	r, err := m.Radius(t)
	if err != nil {
		return 0, err
	}
	return -z / math.Pow(r*r+z*z, 1.5), nil
}
