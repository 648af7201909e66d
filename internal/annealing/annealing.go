// Package annealing approximates global minima of scalar objectives
// with simulated annealing.
//
// Two searches are provided: [SA], the classic single-neighbour walk,
// and [ASA], an adaptive variant that keeps a per-coordinate step
// vector tuned towards a balanced acceptance rate. Both walk inside
// half-open coordinate [Bounds], cool their temperature through a
// [Schedule], and decide uphill moves through an [Acceptance]
// criterion.
//
// Pick the temperatures deliberately: the search runs until the
// schedule drags the temperature below the minimum, so the minimum
// must be reachable from the initial temperature.
package annealing

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Point is a position in the search space.
type Point []float64

// Objective is the function to minimize.
type Objective func(p Point) float64

// Range is a half-open interval [Lo, Hi).
type Range struct {
	Lo, Hi float64
}

// Contains reports whether x lies in the interval.
func (r Range) Contains(x float64) bool {
	return x >= r.Lo && x < r.Hi
}

// Bounds holds one interval per search coordinate.
type Bounds []Range

// SA is a simulated annealing search over a fixed objective.
type SA struct {
	F      Objective
	P0     Point
	T0     float64
	TMin   float64
	Bounds Bounds

	Criterion Acceptance
	Neighbour Neighbour
	Schedule  Schedule

	// Status receives the state of the search after every iteration.
	// A nil Status keeps the search silent.
	Status Status
}

// Minimum walks the search space until the temperature drops below
// TMin and returns the best objective value and the point it was
// found at.
func (s *SA) Minimum(rng *rand.Rand) (float64, Point) {
	p := s.P0.clone()
	f := s.F(p)
	bestP := p.clone()
	bestF := f

	uni := distuv.Uniform{Min: 0, Max: 1, Src: rng}

	t := s.T0
	for k := 1; t > s.TMin; k++ {
		candidate := s.Neighbour.Neighbour(p, s.Bounds, rng)
		fNew := s.F(candidate)
		diff := fNew - f

		if fNew < bestF {
			bestP = candidate.clone()
			bestF = fNew
			p, f = candidate, fNew
		} else if s.Criterion.Accept(diff, t, uni) {
			p, f = candidate, fNew
		}

		if s.Status != nil {
			s.Status.Report(k, t, f, p, bestF, bestP)
		}
		t = s.Schedule.Cool(k, t, s.T0)
	}
	return bestF, bestP
}

func (p Point) clone() Point {
	c := make(Point, len(p))
	copy(c, p)
	return c
}
