package annealing

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// ASA is an adaptive simulated annealing search. Each coordinate moves
// by a uniform draw scaled by its own step size; after every NM moves
// per coordinate the steps are stretched or shrunk towards an
// acceptance rate between 40% and 60%, NA times per temperature.
type ASA struct {
	F      Objective
	P0     Point
	T0     float64
	TMin   float64
	Bounds Bounds

	// H0 is the initial step size per coordinate, C the strength of
	// the step adjustment.
	H0 Point
	C  Point

	NM int
	NA int

	Criterion Acceptance
	Schedule  Schedule
	Status    Status
}

// Minimum walks the search space until the temperature drops below
// TMin and returns the best objective value and the point it was
// found at.
func (a *ASA) Minimum(rng *rand.Rand) (float64, Point) {
	p := a.P0.clone()
	f := a.F(p)
	bestP := p.clone()
	bestF := f

	uni := distuv.Uniform{Min: 0, Max: 1, Src: rng}
	sym := distuv.Uniform{Min: -1, Max: 1, Src: rng}

	h := a.H0.clone()
	accepted := make([]int, len(p))

	t := a.T0
	for k := 1; t > a.TMin; k++ {
		for cycle := 0; cycle < a.NA; cycle++ {
			for move := 0; move < a.NM; move++ {
				for i := range p {
					candidate := p.clone()
					candidate[i] = p[i] + sym.Rand()*h[i]
					for !a.Bounds[i].Contains(candidate[i]) {
						candidate[i] = p[i] + sym.Rand()*h[i]
					}

					fNew := a.F(candidate)
					diff := fNew - f

					if a.Criterion.Accept(diff, t, uni) {
						p, f = candidate, fNew
						accepted[i]++
					}
					if fNew < bestF {
						bestP = candidate.clone()
						bestF = fNew
					}
				}
			}

			for i := range h {
				ratio := float64(accepted[i]) / float64(a.NM)
				switch {
				case ratio > 0.6:
					h[i] *= 1 + a.C[i]*(ratio-0.6)/0.4
				case ratio < 0.4:
					h[i] /= 1 + a.C[i]*(0.4-ratio)/0.4
				}
				accepted[i] = 0
			}
		}

		if a.Status != nil {
			a.Status.Report(k, t, f, p, bestF, bestP)
		}
		t = a.Schedule.Cool(k, t, a.T0)
	}
	return bestF, bestP
}
