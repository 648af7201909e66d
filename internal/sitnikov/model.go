package sitnikov

import (
	"fmt"
	"math"

	"github.com/orbitlab/sitnikov/internal/config"
	"github.com/orbitlab/sitnikov/internal/integrators"
)

// Model is a Sitnikov problem prepared for integration. Time is
// measured in units where the orbital period of the primaries is
// 2 pi, so one period spans four quarter-period integration spans.
type Model struct {
	e   float64
	tau float64

	t0 float64
	h  float64
	n  int
	im int

	x0     integrators.State
	method string
	megno  bool
	seed   uint64

	// Results holds the trajectory after Integrate: rows [z, v] for a
	// plain run, rows [z, z~, v, v~, megno, mean megno] for a MEGNO
	// run. MEGNO results start one quarter-period after the start time.
	Results *integrators.Buffer
}

// New derives a model from a configuration. The start time is pinned
// to zero: the MEGNO integrands have a singular point there, and the
// primer quarter-period keeps every evaluation past it.
func New(cfg *config.Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Model{
		e:      cfg.Eccentricity,
		tau:    cfg.Tau * 2 * math.Pi,
		t0:     0,
		h:      cfg.Step * math.Pi / 2,
		n:      int(math.Round(float64(cfg.Periods) * 4 / cfg.Step)),
		im:     int(math.Round(1 / cfg.Step)),
		x0:     integrators.State{cfg.Z0, cfg.V0},
		method: cfg.Method,
		megno:  cfg.MEGNO,
		seed:   cfg.Seed,
	}, nil
}

// StepSize returns the integration step in model time units.
func (m *Model) StepSize() float64 { return m.h }

// Steps returns the total number of integration steps.
func (m *Model) Steps() int { return m.n }

// PreSteps returns the number of primer steps covering the first
// quarter-period.
func (m *Model) PreSteps() int { return m.im }

// StartTime returns the model start time.
func (m *Model) StartTime() float64 { return m.t0 }

// InitialState returns a copy of the initial [z, v] state.
func (m *Model) InitialState() integrators.State { return m.x0.Clone() }

// MEGNO reports whether Integrate runs the chaos-indicator pipeline.
func (m *Model) MEGNO() bool { return m.megno }

// Time returns the physical time of result column i.
func (m *Model) Time(i int) float64 {
	if m.megno {
		return m.t0 + float64(m.im+i)*m.h
	}
	return m.t0 + float64(i)*m.h
}

// Accelerations implements integrators.SecondOrder for any number of
// independent test bodies, one acceleration per position.
func (m *Model) Accelerations(t float64, q integrators.State) (integrators.State, error) {
	a := make(integrators.State, len(q))
	for i, z := range q {
		ai, err := m.Acceleration(t, z)
		if err != nil {
			return nil, err
		}
		a[i] = ai
	}
	return a, nil
}

// Integrate runs the configured pipeline and fills Results.
func (m *Model) Integrate() error {
	if m.megno {
		return m.integrateMEGNO()
	}
	return m.integrateOrbit()
}

func (m *Model) integrateOrbit() error {
	buf, err := m.IntegrateFrom(m.x0, m.t0, m.h, m.n)
	if err != nil {
		return err
	}
	m.Results = buf
	return nil
}

// IntegrateFrom runs the configured scheme over n steps of size h from
// an arbitrary [z, v] state. A negative h integrates backwards, which
// makes reversibility round-trips possible.
func (m *Model) IntegrateFrom(x0 integrators.State, t0, h float64, n int) (*integrators.Buffer, error) {
	var (
		buf *integrators.Buffer
		err error
	)
	switch m.method {
	case integrators.MethodRK4:
		buf, err = integrators.RungeKutta4(integrators.SystemFunc(m.firstOrder), x0, t0, h, n)
	default:
		integ, ok := integrators.SecondOrderMethods[m.method]
		if !ok {
			return nil, fmt.Errorf("%w: %q", integrators.ErrUnknownMethod, m.method)
		}
		buf, err = integ(m, x0, t0, h, n)
	}
	if err != nil {
		return nil, fmt.Errorf("equations of motion: %w", err)
	}
	return buf, nil
}

// firstOrder is the [z, v] form of the equation of motion for the
// general-purpose integrator.
func (m *Model) firstOrder(t float64, x integrators.State) (integrators.State, error) {
	a, err := m.Acceleration(t, x[0])
	if err != nil {
		return nil, err
	}
	return integrators.State{x[1], a}, nil
}
