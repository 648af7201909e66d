package survey

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/orbitlab/sitnikov/internal/config"
	"github.com/orbitlab/sitnikov/internal/sitnikov"
)

func baseConfig() *config.Config {
	return &config.Config{
		Z0:      1.0,
		Step:    0.1,
		Periods: 2,
		Method:  "yoshida4",
		Seed:    1,
	}
}

func TestAxisValues(t *testing.T) {
	got := Axis{Min: 0, Max: 1, Steps: 5}.Values()
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d = %v, want %v", i, got[i], want[i])
		}
	}
	if got := (Axis{Min: 0.3, Max: 0.9, Steps: 1}).Values(); len(got) != 1 || got[0] != 0.3 {
		t.Errorf("single step axis = %v, want [0.3]", got)
	}
	if got := (Axis{Steps: 0}).Values(); got != nil {
		t.Errorf("empty axis = %v, want nil", got)
	}
}

func TestScanMatchesSingleRun(t *testing.T) {
	scan := Scan{
		Base:           baseConfig(),
		Eccentricities: Axis{Min: 0, Max: 0.1, Steps: 2},
		Positions:      Axis{Min: 0.8, Max: 1.2, Steps: 2},
		Workers:        2,
	}
	m, err := scan.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c, r := m.Dims(); c != 2 || r != 2 {
		t.Fatalf("Dims() = (%d, %d), want (2, 2)", c, r)
	}
	for i, mean := range m.Mean {
		if math.IsNaN(mean) || math.IsInf(mean, 0) {
			t.Fatalf("cell %d is not finite: %v", i, mean)
		}
	}

	cfg := baseConfig()
	cfg.Eccentricity = 0.1
	cfg.Z0 = 1.2
	cfg.MEGNO = true
	model, err := sitnikov.New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := model.Integrate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := model.Results.At(5, model.Results.Steps())
	if got := m.Z(1, 1); got != want {
		t.Errorf("cell (1, 1) = %v, want the single-run value %v", got, want)
	}
}

func TestScanInvalidCell(t *testing.T) {
	scan := Scan{
		Base:           baseConfig(),
		Eccentricities: Axis{Min: -0.5, Max: -0.5, Steps: 1},
		Positions:      Axis{Min: 1, Max: 1, Steps: 1},
	}
	_, err := scan.Run(context.Background())
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected a validation error, got %v", err)
	}
}

func TestScanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	scan := Scan{
		Base:           baseConfig(),
		Eccentricities: Axis{Min: 0, Max: 0.2, Steps: 3},
		Positions:      Axis{Min: 0.5, Max: 1.5, Steps: 3},
		Workers:        1,
	}
	if _, err := scan.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestBifurcationSamples(t *testing.T) {
	cfg := baseConfig()
	cfg.Periods = 5
	b := Bifurcation{
		Base:           cfg,
		Eccentricities: Axis{Min: 0, Max: 0.05, Steps: 2},
		Transient:      1,
		Workers:        2,
	}
	d, err := b.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 5 periods minus 1 transient leaves samples at periods 1..5 per
	// eccentricity.
	if d.Len() != 10 {
		t.Fatalf("expected 10 samples, got %d", d.Len())
	}
	for i := 1; i < d.Len(); i++ {
		if d.E[i] < d.E[i-1] {
			t.Fatalf("samples out of eccentricity order at %d: %v then %v", i, d.E[i-1], d.E[i])
		}
	}
	for i, z := range d.Z {
		if math.IsNaN(z) || math.IsInf(z, 0) {
			t.Fatalf("sample %d is not finite: %v", i, z)
		}
	}
}
