package harmonics

import "math"

// ArraySize returns the number of packed values SphericalLegendre
// produces for a maximum degree lmax.
func ArraySize(lmax int) int {
	return (lmax + 1) * (lmax + 2) / 2
}

// Index locates degree l, order m in the packed layout.
func Index(l, m int) int {
	return l*(l+1)/2 + m
}

// SphericalLegendre computes the fully normalized associated Legendre
// values for all degrees l <= lmax and orders 0 <= m <= l, packed by
// Index. The normalization is the spherical-harmonic one,
//
//	sqrt((2l+1)/(4 pi) * (l-m)!/(l+m)!) * Plm(x)
//
// without the Condon-Shortley phase. x must lie in [-1, 1].
func SphericalLegendre(lmax int, x float64) []float64 {
	if lmax < 0 {
		return nil
	}
	out := make([]float64, ArraySize(lmax))
	out[0] = 0.5 * math.Sqrt(1/math.Pi)
	if lmax == 0 {
		return out
	}
	s := math.Sqrt(1 - x*x)
	for m := 1; m <= lmax; m++ {
		prev := out[Index(m-1, m-1)]
		out[Index(m, m)] = math.Sqrt(float64(2*m+1)/float64(2*m)) * s * prev
	}
	for m := 0; m < lmax; m++ {
		out[Index(m+1, m)] = math.Sqrt(float64(2*m+3)) * x * out[Index(m, m)]
	}
	for m := 0; m <= lmax-2; m++ {
		for l := m + 2; l <= lmax; l++ {
			a := math.Sqrt(float64(4*l*l-1) / float64(l*l-m*m))
			b := math.Sqrt(float64((l-1)*(l-1)-m*m) / float64(4*(l-1)*(l-1)-1))
			out[Index(l, m)] = a * (x*out[Index(l-1, m)] - b*out[Index(l-2, m)])
		}
	}
	return out
}
