package annealing

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Neighbour draws the next candidate point. Implementations must keep
// the candidate inside the bounds and must not mutate p.
type Neighbour interface {
	Neighbour(p Point, bounds Bounds, rng *rand.Rand) Point
}

// NeighbourFunc adapts a plain function to the Neighbour interface.
type NeighbourFunc func(p Point, bounds Bounds, rng *rand.Rand) Point

func (f NeighbourFunc) Neighbour(p Point, bounds Bounds, rng *rand.Rand) Point {
	return f(p, bounds, rng)
}

// Normal perturbs every coordinate with a draw from N(p_i, SD),
// redrawing until the coordinate lands inside its bounds.
type Normal struct {
	SD float64
}

func (nb Normal) Neighbour(p Point, bounds Bounds, rng *rand.Rand) Point {
	candidate := make(Point, len(p))
	for i := range p {
		normal := distuv.Normal{Mu: p[i], Sigma: nb.SD, Src: rng}
		x := normal.Rand()
		for !bounds[i].Contains(x) {
			x = normal.Rand()
		}
		candidate[i] = x
	}
	return candidate
}
