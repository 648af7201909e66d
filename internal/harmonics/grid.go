package harmonics

// Grid evaluates f over [0, thetaMax] x [0, phiMax] on an (h+1) x (h+1)
// mesh. values is row-major with theta as the outer index:
// values[i*(h+1)+j] = f(theta[i], phi[j]).
func Grid(f func(theta, phi float64) float64, thetaMax, phiMax float64, h int) (theta, phi, values []float64) {
	theta = make([]float64, h+1)
	phi = make([]float64, h+1)
	for i := 0; i <= h; i++ {
		theta[i] = float64(i) * thetaMax / float64(h)
		phi[i] = float64(i) * phiMax / float64(h)
	}
	values = make([]float64, (h+1)*(h+1))
	for i, t := range theta {
		for j, p := range phi {
			values[i*(h+1)+j] = f(t, p)
		}
	}
	return theta, phi, values
}
