package analysis

import "gonum.org/v1/gonum/stat"

// Lyapunov estimates the maximal Lyapunov exponent from the time series
// of the mean fast indicator. On a chaotic orbit the mean indicator
// grows linearly as lambda/2 * t, so the exponent is twice the slope of
// a least-squares line through the series. Quasi-periodic orbits
// saturate near 2 and fit to a slope near zero. Fewer than two samples
// yield zero.
func Lyapunov(times, megno []float64) float64 {
	n := len(times)
	if len(megno) < n {
		n = len(megno)
	}
	if n < 2 {
		return 0
	}
	_, slope := stat.LinearRegression(times[:n], megno[:n], nil, false)
	return 2 * slope
}
