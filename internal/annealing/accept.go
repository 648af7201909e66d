package annealing

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Acceptance decides whether a move to a worse point is taken.
type Acceptance interface {
	Accept(diff, t float64, uni distuv.Uniform) bool
}

// AcceptanceFunc adapts a plain function to the Acceptance interface.
type AcceptanceFunc func(diff, t float64, uni distuv.Uniform) bool

func (f AcceptanceFunc) Accept(diff, t float64, uni distuv.Uniform) bool {
	return f(diff, t, uni)
}

// Metropolis is the classic acceptance criterion: improvements always
// pass, uphill moves pass with probability exp(-diff/t).
type Metropolis struct{}

func (Metropolis) Accept(diff, t float64, uni distuv.Uniform) bool {
	return diff < 0 || uni.Rand() < math.Min(math.Exp(-diff/t), 1)
}
