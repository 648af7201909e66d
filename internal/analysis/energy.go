package analysis

import "math"

// Energy is the Hamiltonian of the vertical motion for circular
// primaries, v^2/2 - 1/sqrt(1+z^2). It is conserved along exact
// trajectories, which makes its drift a measure of integrator quality.
func Energy(z, v float64) float64 {
	return v*v/2 - 1/math.Sqrt(1+z*z)
}

// EnergyDrift accumulates the relative departure of the energy from its
// first observed value.
type EnergyDrift struct {
	initial float64
	current float64
	max     float64
	samples int
}

func (e *EnergyDrift) Observe(z, v float64) {
	energy := Energy(z, v)
	if e.samples == 0 {
		e.initial = energy
	}
	e.current = energy
	e.samples++
	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		if drift > e.max {
			e.max = drift
		}
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.max
}

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.current = 0
	e.max = 0
	e.samples = 0
}

// MaxEnergyDrift runs an EnergyDrift over whole position and velocity
// rows and returns the maximum relative drift.
func MaxEnergyDrift(z, v []float64) float64 {
	n := len(z)
	if len(v) < n {
		n = len(v)
	}
	var d EnergyDrift
	for i := 0; i < n; i++ {
		d.Observe(z[i], v[i])
	}
	return d.Value()
}
