package annealing

import "math"

// Schedule cools the temperature after iteration k.
type Schedule interface {
	Cool(k int, t, t0 float64) float64
}

// Fast divides the initial temperature by the iteration count.
type Fast struct{}

func (Fast) Cool(k int, t, t0 float64) float64 {
	return t0 / float64(k)
}

// Exponential scales the temperature by a constant factor, which must
// lie in (0, 1) for the search to terminate.
type Exponential struct {
	Gamma float64
}

func (s Exponential) Cool(k int, t, t0 float64) float64 {
	return s.Gamma * t
}

// Logarithmic cools proportionally to 1/log(k+1), normalized so the
// first step keeps the initial temperature.
type Logarithmic struct{}

func (Logarithmic) Cool(k int, t, t0 float64) float64 {
	return t0 * math.Ln2 / math.Log(float64(k+1))
}
