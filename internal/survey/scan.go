package survey

import (
	"context"
	"fmt"

	"github.com/orbitlab/sitnikov/internal/config"
	"github.com/orbitlab/sitnikov/internal/sitnikov"
)

// Scan sweeps the primaries' eccentricity against the launch position
// and records the final mean fast indicator of each cell. All other
// scenario fields come from Base.
type Scan struct {
	Base           *config.Config
	Eccentricities Axis
	Positions      Axis
	Workers        int
}

// Map is the scan result. Mean is row-major with one row per launch
// position and one column per eccentricity.
type Map struct {
	Eccentricities []float64
	Positions      []float64
	Mean           []float64
}

// Dims returns the grid size as columns and rows.
func (m *Map) Dims() (c, r int) { return len(m.Eccentricities), len(m.Positions) }

// Z returns the mean indicator of cell (c, r).
func (m *Map) Z(c, r int) float64 { return m.Mean[r*len(m.Eccentricities)+c] }

// X returns the eccentricity of column c.
func (m *Map) X(c int) float64 { return m.Eccentricities[c] }

// Y returns the launch position of row r.
func (m *Map) Y(r int) float64 { return m.Positions[r] }

// Run integrates every cell of the grid and collects the map.
func (s Scan) Run(ctx context.Context) (*Map, error) {
	es := s.Eccentricities.Values()
	zs := s.Positions.Values()
	if len(es) == 0 || len(zs) == 0 {
		return nil, fmt.Errorf("survey: both axes need at least one value")
	}
	m := &Map{
		Eccentricities: es,
		Positions:      zs,
		Mean:           make([]float64, len(es)*len(zs)),
	}
	err := runJobs(ctx, s.Workers, len(m.Mean), func(i int) error {
		c := *s.Base
		c.Eccentricity = es[i%len(es)]
		c.Z0 = zs[i/len(es)]
		c.MEGNO = true
		model, err := sitnikov.New(&c)
		if err != nil {
			return err
		}
		if err := model.Integrate(); err != nil {
			return err
		}
		m.Mean[i] = model.Results.At(5, model.Results.Steps())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}
