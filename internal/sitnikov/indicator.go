package sitnikov

import (
	"math"

	"github.com/orbitlab/sitnikov/internal/integrators"
)

// Indicator accumulates MEGNO and mean-MEGNO estimates incrementally
// from the finite separation between a primary and a shadow trajectory.
// It is the stepwise counterpart of the combined-system pipeline and
// feeds consumers that want the series while the run is in flight. The
// running-mean normalization inside the trapezoid puts its estimates on
// the step scale, not on the scale of the combined rows.
type Indicator struct {
	model *Model

	i            int
	integral     float64
	meanIntegral float64
	prev         float64

	megno []float64
	mean  []float64
}

// NewIndicator returns an empty accumulator bound to the model.
func NewIndicator(m *Model) *Indicator {
	return &Indicator{
		model: m,
		megno: make([]float64, 0, m.n),
		mean:  make([]float64, 0, m.n),
	}
}

// Push consumes one more step of the separation series: the primary
// position z and the position and velocity displacements of the shadow
// at time t, which must advance by the model step between calls. Only
// the squared displacements enter the integrand, so signs are free. It
// returns the updated MEGNO and mean-MEGNO estimates.
func (ind *Indicator) Push(t, z, deltaZ, deltaV float64) (float64, float64, error) {
	integrand, err := ind.model.integrand(t, z, deltaZ, deltaV)
	if err != nil {
		return 0, 0, err
	}

	ind.i++
	ind.integral = ind.trapezoid(ind.i, ind.integral, ind.prev, integrand)
	megno := 2 / t * ind.integral
	ind.megno = append(ind.megno, megno)

	ind.meanIntegral = ind.trapezoid(ind.i, ind.meanIntegral, ind.megno[ind.i-1], megno)
	mean := ind.meanIntegral / t
	ind.mean = append(ind.mean, mean)

	ind.prev = integrand
	return megno, mean, nil
}

// Len returns the number of consumed steps.
func (ind *Indicator) Len() int { return ind.i }

// Series returns the accumulated MEGNO and mean-MEGNO series. The
// slices alias the accumulator's storage.
func (ind *Indicator) Series() (megno, mean []float64) {
	return ind.megno, ind.mean
}

// trapezoid folds one more sample into a running integral with the
// trapezoidal rule, keeping the 1/i mean normalization inside the
// accumulation.
func (ind *Indicator) trapezoid(i int, integral, prev, cur float64) float64 {
	h := ind.model.h
	if i == 1 {
		return integral + h*(prev+cur)/2
	}
	fi := float64(i)
	return (integral+h*prev/2/(fi-1))*(fi-1)/fi + h*cur/2/fi
}

// IndicatorRun integrates the primary and a shadow trajectory
// separately with the configured scheme and folds their per-step
// absolute separation into an Indicator. Unlike the pipeline behind
// Integrate, the separation is sampled after each full step instead of
// evolved alongside the state.
func (m *Model) IndicatorRun() (*Indicator, error) {
	primary, err := m.IntegrateFrom(m.x0, m.t0, m.h, m.n)
	if err != nil {
		return nil, err
	}
	s := m.ShadowState()
	shadow, err := m.IntegrateFrom(integrators.State{s[1], s[3]}, m.t0, m.h, m.n)
	if err != nil {
		return nil, err
	}

	ind := NewIndicator(m)
	for i := 1; i <= m.n; i++ {
		t := m.t0 + float64(i)*m.h
		z := primary.At(0, i)
		deltaZ := math.Abs(shadow.At(0, i) - primary.At(0, i))
		deltaV := math.Abs(shadow.At(1, i) - primary.At(1, i))
		if _, _, err := ind.Push(t, z, deltaZ, deltaV); err != nil {
			return nil, err
		}
	}
	return ind, nil
}

// integrand evaluates the MEGNO integrand from the finite displacement
// of a nearby orbit. See Derive for the note on t versus t - t_0.
func (m *Model) integrand(t, z, deltaZ, deltaV float64) (float64, error) {
	norm := math.Hypot(deltaZ, deltaV)
	r, err := m.Radius(t)
	if err != nil {
		return 0, err
	}

	tanZ := deltaZ * (2*z*z - r*r) / math.Pow(r*r+z*z, 2.5)
	tanV := deltaV
	tanNorm := (tanZ*deltaZ + tanV*deltaV) / norm
	return tanNorm / norm * t, nil
}
