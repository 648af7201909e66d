package annealing

import (
	"fmt"

	"github.com/go-kit/log"
)

// Status observes the search after every iteration.
type Status interface {
	Report(k int, t, f float64, p Point, bestF float64, bestP Point)
}

// StatusFunc adapts a plain function to the Status interface.
type StatusFunc func(k int, t, f float64, p Point, bestF float64, bestP Point)

func (fn StatusFunc) Report(k int, t, f float64, p Point, bestF float64, bestP Point) {
	fn(k, t, f, p, bestF, bestP)
}

// Periodic logs the state of the search every Every iterations.
type Periodic struct {
	Every  int
	Logger log.Logger
}

func (s Periodic) Report(k int, t, f float64, p Point, bestF float64, bestP Point) {
	if s.Every <= 0 || k%s.Every != 0 {
		return
	}
	s.Logger.Log(
		"k", k,
		"t", fmt.Sprintf("%.6g", t),
		"f", fmt.Sprintf("%.6g", f),
		"p", fmt.Sprintf("%.6g", p),
		"best_f", fmt.Sprintf("%.6g", bestF),
		"best_p", fmt.Sprintf("%.6g", bestP),
	)
}
