package survey

import (
	"context"
	"fmt"
	"math"

	"github.com/orbitlab/sitnikov/internal/analysis"
	"github.com/orbitlab/sitnikov/internal/config"
	"github.com/orbitlab/sitnikov/internal/sitnikov"
)

// Bifurcation sweeps the primaries' eccentricity and records the
// stroboscopic positions of the body once per primary period, after
// discarding a transient. Plotted over eccentricity the samples trace
// the bifurcation structure of the stroboscopic map.
type Bifurcation struct {
	Base           *config.Config
	Eccentricities Axis
	Transient      int // primary periods discarded before sampling
	Workers        int
}

// Diagram holds one (eccentricity, position) pair per retained sample,
// ordered by eccentricity.
type Diagram struct {
	E []float64
	Z []float64
}

// Len returns the number of samples.
func (d *Diagram) Len() int { return len(d.E) }

// Run integrates one scenario per eccentricity and collects the
// diagram.
func (b Bifurcation) Run(ctx context.Context) (*Diagram, error) {
	es := b.Eccentricities.Values()
	if len(es) == 0 {
		return nil, fmt.Errorf("survey: eccentricity axis needs at least one value")
	}
	columns := make([][]float64, len(es))
	err := runJobs(ctx, b.Workers, len(es), func(i int) error {
		c := *b.Base
		c.Eccentricity = es[i]
		c.MEGNO = false
		model, err := sitnikov.New(&c)
		if err != nil {
			return err
		}
		if err := model.Integrate(); err != nil {
			return err
		}
		stride := int(math.Round(4 / c.Step))
		section := analysis.Stroboscopic(
			model.Results.Row(0), model.Results.Row(1), stride, b.Transient*stride)
		columns[i] = section.Z
		return nil
	})
	if err != nil {
		return nil, err
	}
	d := &Diagram{}
	for i, zs := range columns {
		for _, z := range zs {
			d.E = append(d.E, es[i])
			d.Z = append(d.Z, z)
		}
	}
	return d, nil
}
