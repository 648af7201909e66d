package annealing_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/orbitlab/sitnikov/internal/annealing"
)

// waves has its global minimum on [1, 27.8) near x = 22.7906, with a
// shallower basin around x = 16.5 to escape from.
func waves(p annealing.Point) float64 {
	return math.Log(p[0]) * (math.Sin(p[0]) + math.Cos(p[0]))
}

var _ = Describe("SA", func() {
	newSearch := func() *annealing.SA {
		return &annealing.SA{
			F:         waves,
			P0:        annealing.Point{2},
			T0:        100000,
			TMin:      1,
			Bounds:    annealing.Bounds{{Lo: 1, Hi: 27.8}},
			Criterion: annealing.Metropolis{},
			Neighbour: annealing.Normal{SD: 5},
			Schedule:  annealing.Fast{},
		}
	}

	It("finds the global minimum basin", func() {
		bestF, bestP := newSearch().Minimum(rand.New(rand.NewSource(1)))
		Expect(bestP[0]).To(BeNumerically("~", 22.790580, 0.5))
		Expect(bestF).To(BeNumerically("<", -4.3))
	})

	It("is deterministic for a fixed seed", func() {
		f1, p1 := newSearch().Minimum(rand.New(rand.NewSource(1)))
		f2, p2 := newSearch().Minimum(rand.New(rand.NewSource(1)))
		Expect(f1).To(Equal(f2))
		Expect(p1).To(Equal(p2))
	})

	It("keeps the walk inside the bounds", func() {
		search := newSearch()
		low, high := math.Inf(1), math.Inf(-1)
		search.Status = annealing.StatusFunc(func(k int, t, f float64, p annealing.Point, bestF float64, bestP annealing.Point) {
			low = math.Min(low, p[0])
			high = math.Max(high, p[0])
		})
		search.Minimum(rand.New(rand.NewSource(1)))
		Expect(low).To(BeNumerically(">=", 1))
		Expect(high).To(BeNumerically("<", 27.8))
	})
})

var _ = Describe("ASA", func() {
	newSearch := func() *annealing.ASA {
		return &annealing.ASA{
			F:         waves,
			P0:        annealing.Point{2},
			T0:        20,
			TMin:      1,
			Bounds:    annealing.Bounds{{Lo: 1, Hi: 27.8}},
			H0:        annealing.Point{0.25},
			C:         annealing.Point{1},
			NM:        20,
			NA:        10,
			Criterion: annealing.Metropolis{},
			Schedule:  annealing.Exponential{Gamma: 0.75},
		}
	}

	It("finds the global minimum basin", func() {
		bestF, bestP := newSearch().Minimum(rand.New(rand.NewSource(1)))
		Expect(bestP[0]).To(BeNumerically("~", 22.790580, 0.5))
		Expect(bestF).To(BeNumerically("<", -4.3))
	})

	It("is deterministic for a fixed seed", func() {
		f1, p1 := newSearch().Minimum(rand.New(rand.NewSource(1)))
		f2, p2 := newSearch().Minimum(rand.New(rand.NewSource(1)))
		Expect(f1).To(Equal(f2))
		Expect(p1).To(Equal(p2))
	})
})

var _ = Describe("Metropolis", func() {
	newUniform := func() distuv.Uniform {
		return distuv.Uniform{Min: 0, Max: 1, Src: rand.NewSource(1)}
	}

	It("always accepts an improvement", func() {
		Expect(annealing.Metropolis{}.Accept(-0.5, 1e-300, newUniform())).To(BeTrue())
	})

	It("rejects uphill moves at a frozen temperature", func() {
		uni := newUniform()
		for i := 0; i < 100; i++ {
			Expect(annealing.Metropolis{}.Accept(1, 1e-300, uni)).To(BeFalse())
		}
	})
})

var _ = Describe("Schedules", func() {
	It("fast cooling divides by the iteration count", func() {
		Expect(annealing.Fast{}.Cool(4, 123, 100)).To(Equal(25.0))
	})

	It("exponential cooling scales the current temperature", func() {
		Expect(annealing.Exponential{Gamma: 0.75}.Cool(7, 80, 100)).To(Equal(60.0))
	})

	It("logarithmic cooling starts from the initial temperature", func() {
		Expect(annealing.Logarithmic{}.Cool(1, 50, 100)).To(BeNumerically("~", 100, 1e-9))
		Expect(annealing.Logarithmic{}.Cool(3, 50, 100)).To(BeNumerically("~", 50, 1e-9))
	})
})

var _ = Describe("Normal neighbour", func() {
	It("redraws until the candidate is inside the bounds", func() {
		rng := rand.New(rand.NewSource(1))
		bounds := annealing.Bounds{{Lo: 0, Hi: 1}}
		p := annealing.Point{0.5}
		for i := 0; i < 100; i++ {
			candidate := annealing.Normal{SD: 5}.Neighbour(p, bounds, rng)
			Expect(bounds[0].Contains(candidate[0])).To(BeTrue())
		}
	})

	It("leaves the input point untouched", func() {
		rng := rand.New(rand.NewSource(1))
		p := annealing.Point{0.5}
		annealing.Normal{SD: 1}.Neighbour(p, annealing.Bounds{{Lo: -10, Hi: 10}}, rng)
		Expect(p[0]).To(Equal(0.5))
	})
})
