package survey

import "gonum.org/v1/gonum/floats"

// Axis describes evenly spaced values of one swept parameter,
// inclusive of both endpoints.
type Axis struct {
	Min   float64
	Max   float64
	Steps int
}

// Values expands the axis. A single step yields Min alone, and a
// non-positive count yields nil.
func (a Axis) Values() []float64 {
	if a.Steps <= 0 {
		return nil
	}
	if a.Steps == 1 {
		return []float64{a.Min}
	}
	return floats.Span(make([]float64, a.Steps), a.Min, a.Max)
}
