// Package harmonics evaluates real spherical harmonics of a fixed degree
// and builds the objective the annealing demo maximizes: the modulus of a
// random linear combination of the degree-lmax harmonics over the sphere.
package harmonics

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// RandomCoefficients draws the expansion coefficients for Objective from
// U[0, 1). Index 0 scales the order-zero term; for an order m > 0 the
// indices 2m and 2m+1 scale the cosine and sine terms.
func RandomCoefficients(lmax int, rng *rand.Rand) []float64 {
	uni := distuv.Uniform{Min: 0, Max: 1, Src: rng}
	coeffs := make([]float64, 2*lmax+3)
	for i := range coeffs {
		coeffs[i] = uni.Rand()
	}
	return coeffs
}

// Objective returns minus the modulus of the real linear combination of
// the degree-lmax spherical harmonics at colatitude theta and azimuth
// phi, so that minimizing it maximizes the modulus. coeffs is laid out
// as in RandomCoefficients.
func Objective(lmax int, coeffs []float64) func(theta, phi float64) float64 {
	lindex := Index(lmax, 0)
	return func(theta, phi float64) float64 {
		polynomials := SphericalLegendre(lmax, math.Cos(theta))
		sum := polynomials[lindex] * coeffs[0]
		for m := 1; m <= lmax; m++ {
			item := polynomials[lindex+m]
			mphi := float64(m) * phi
			sum += item*coeffs[2*m]*math.Sqrt2*math.Cos(mphi) +
				item*coeffs[2*m+1]*math.Sqrt2*math.Sin(mphi)
		}
		return -math.Abs(sum)
	}
}
