package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/orbitlab/sitnikov/internal/integrators"
)

const (
	DefaultEccentricity = 0.0
	DefaultTau          = 0.0
	DefaultZ0           = 1.0
	DefaultV0           = 0.0
	DefaultStep         = 1e-2
	DefaultPeriods      = 1000
	DefaultMethod       = integrators.MethodYoshida4
	DefaultSeed         = 1
)

// ErrInvalid marks a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

var epsilon = math.Nextafter(1, 2) - 1

type Config struct {
	Eccentricity float64 `yaml:"eccentricity"`
	Tau          float64 `yaml:"tau"`
	Z0           float64 `yaml:"z0"`
	V0           float64 `yaml:"v0"`
	Step         float64 `yaml:"step"`
	Periods      int     `yaml:"periods"`
	Method       string  `yaml:"method"`
	MEGNO        bool    `yaml:"megno"`
	Seed         uint64  `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Eccentricity: DefaultEccentricity,
		Tau:          DefaultTau,
		Z0:           DefaultZ0,
		V0:           DefaultV0,
		Step:         DefaultStep,
		Periods:      DefaultPeriods,
		Method:       DefaultMethod,
		Seed:         DefaultSeed,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every parameter range. The step must split the four
// quarter-periods of one orbital period into a whole number of steps,
// so that period and quarter-period boundaries land on steps.
func (c *Config) Validate() error {
	if c.Eccentricity < 0 || c.Eccentricity >= 1 {
		return fmt.Errorf("%w: eccentricity must be in [0, 1), got %v", ErrInvalid, c.Eccentricity)
	}
	if c.Tau < 0 || c.Tau >= 1 {
		return fmt.Errorf("%w: time at the pericenter must be in [0, 1), got %v", ErrInvalid, c.Tau)
	}
	if math.IsNaN(c.Z0) || math.IsInf(c.Z0, 0) {
		return fmt.Errorf("%w: initial position must be finite, got %v", ErrInvalid, c.Z0)
	}
	if math.IsNaN(c.V0) || math.IsInf(c.V0, 0) {
		return fmt.Errorf("%w: initial velocity must be finite, got %v", ErrInvalid, c.V0)
	}
	if c.Step < epsilon || c.Step > 0.1 {
		return fmt.Errorf("%w: step must be in [epsilon, 0.1], got %v", ErrInvalid, c.Step)
	}
	if quarters := 4 / c.Step; math.Abs(quarters-math.Round(quarters)) >= epsilon {
		return fmt.Errorf("%w: 4 / step must be integral, got step %v", ErrInvalid, c.Step)
	}
	if c.Periods < 1 {
		return fmt.Errorf("%w: periods must be at least 1, got %d", ErrInvalid, c.Periods)
	}
	if !integrators.Known(c.Method) {
		return fmt.Errorf("%w: %q", integrators.ErrUnknownMethod, c.Method)
	}
	return nil
}
