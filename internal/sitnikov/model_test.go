package sitnikov

import (
	"math"
	"testing"

	"github.com/orbitlab/sitnikov/internal/config"
)

func TestNewDerivedQuantities(t *testing.T) {
	m := testModel(t, func(c *config.Config) { c.Tau = 0.25 })

	if m.StartTime() != 0 {
		t.Errorf("expected the start time pinned to 0, got %v", m.StartTime())
	}
	if want := 1e-2 * math.Pi / 2; m.StepSize() != want {
		t.Errorf("expected step %v, got %v", want, m.StepSize())
	}
	if m.Steps() != 800 {
		t.Errorf("expected 800 steps for 2 periods, got %d", m.Steps())
	}
	if m.PreSteps() != 100 {
		t.Errorf("expected 100 primer steps, got %d", m.PreSteps())
	}
	if want := 0.25 * 2 * math.Pi; m.tau != want {
		t.Errorf("expected tau %v, got %v", want, m.tau)
	}

	x0 := m.InitialState()
	if x0[0] != 1 || x0[1] != 0 {
		t.Errorf("unexpected initial state %v", x0)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Eccentricity = 1.5
	if _, err := New(cfg); err == nil {
		t.Error("expected an error for an invalid configuration")
	}
}

func TestIntegrateCircularConservesEnergy(t *testing.T) {
	m := testModel(t, nil)
	if err := m.Integrate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	buf := m.Results
	if buf.Dim() != 2 || buf.Steps() != m.Steps() {
		t.Fatalf("unexpected result shape: %d x %d", buf.Dim(), buf.Cols())
	}

	// With e = 0 the primaries sit at r = 1 and the Hamiltonian
	// H = v^2/2 - 1/sqrt(1 + z^2) is conserved.
	energy := func(z, v float64) float64 {
		return v*v/2 - 1/math.Sqrt(1+z*z)
	}
	initial := energy(buf.At(0, 0), buf.At(1, 0))
	for i := 0; i <= buf.Steps(); i++ {
		drift := math.Abs(energy(buf.At(0, i), buf.At(1, i)) - initial)
		if drift >= 1e-5 {
			t.Fatalf("energy drift %v at step %d", drift, i)
		}
	}
}

func TestIntegrateMethodsAgree(t *testing.T) {
	run := func(method string) *Model {
		m := testModel(t, func(c *config.Config) { c.Method = method })
		if err := m.Integrate(); err != nil {
			t.Fatalf("%s: unexpected error: %v", method, err)
		}
		return m
	}

	yoshida := run("yoshida4")
	rk4 := run("rk4")
	leapfrog := run("leapfrog")

	n := yoshida.Steps()
	if math.Abs(rk4.Results.At(0, n)-yoshida.Results.At(0, n)) >= 1e-4 {
		t.Errorf("rk4 and yoshida4 disagree: %v vs %v",
			rk4.Results.At(0, n), yoshida.Results.At(0, n))
	}
	if math.Abs(leapfrog.Results.At(0, n)-yoshida.Results.At(0, n)) >= 0.05 {
		t.Errorf("leapfrog and yoshida4 disagree: %v vs %v",
			leapfrog.Results.At(0, n), yoshida.Results.At(0, n))
	}
}

func TestIntegrateRK4RowLayout(t *testing.T) {
	m := testModel(t, func(c *config.Config) { c.Method = "rk4" })
	if err := m.Integrate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Results.Dim() != 2 {
		t.Fatalf("expected rows [z, v], got %d rows", m.Results.Dim())
	}
	if m.Results.At(0, 0) != 1 || m.Results.At(1, 0) != 0 {
		t.Errorf("column 0 should hold the initial values, got [%v, %v]",
			m.Results.At(0, 0), m.Results.At(1, 0))
	}
}

func TestIntegrateFromRoundTrip(t *testing.T) {
	// The symmetric schemes retrace their path under time reversal, so
	// integrating back from the final state recovers the start up to
	// rounding.
	for _, method := range []string{"leapfrog", "yoshida4"} {
		m := testModel(t, func(c *config.Config) {
			c.Method = method
			c.Eccentricity = 0.6
		})
		if err := m.Integrate(); err != nil {
			t.Fatalf("%s: unexpected error: %v", method, err)
		}

		n := m.Steps()
		h := m.StepSize()
		final := m.Results.State(n)
		back, err := m.IntegrateFrom(final, m.StartTime()+float64(n)*h, -h, n)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", method, err)
		}

		if dev := back.State(n).Sub(m.InitialState()).Norm(); dev >= 1e-9 {
			t.Errorf("%s: round trip misses the start by %v", method, dev)
		}
	}
}

func TestTimeAxis(t *testing.T) {
	plain := testModel(t, nil)
	if got, want := plain.Time(3), 3*plain.StepSize(); got != want {
		t.Errorf("plain run time: got %v, expected %v", got, want)
	}

	megno := testModel(t, func(c *config.Config) { c.MEGNO = true })
	if got, want := megno.Time(0), float64(megno.PreSteps())*megno.StepSize(); got != want {
		t.Errorf("megno run time: got %v, expected %v", got, want)
	}
}
