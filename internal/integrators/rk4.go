package integrators

// RungeKutta4 integrates dx/dt = sys.Derive(t, x) from x0 over n steps
// of size h with the classic fixed-step 4th-order Runge-Kutta scheme.
// A negative h integrates backwards in time. On a callback failure the
// partially filled buffer is returned alongside the error.
func RungeKutta4(sys System, x0 State, t0, h float64, n int) (*Buffer, error) {
	if n < 0 {
		n = 0
	}
	buf := NewBuffer(len(x0), n)
	if err := buf.SetState(0, x0); err != nil {
		return nil, err
	}

	dim := len(x0)
	x := x0.Clone()
	scratch := make(State, dim)
	h6 := h / 6.0

	for i := 0; i < n; i++ {
		t := t0 + float64(i)*h

		k1, err := sys.Derive(t, x)
		if err != nil {
			return buf, &StepError{Step: i, Time: t, Stage: "first increment", Wrapped: err}
		}
		for j := 0; j < dim; j++ {
			scratch[j] = x[j] + h*0.5*k1[j]
		}

		k2, err := sys.Derive(t+h*0.5, scratch)
		if err != nil {
			return buf, &StepError{Step: i, Time: t, Stage: "second increment", Wrapped: err}
		}
		for j := 0; j < dim; j++ {
			scratch[j] = x[j] + h*0.5*k2[j]
		}

		k3, err := sys.Derive(t+h*0.5, scratch)
		if err != nil {
			return buf, &StepError{Step: i, Time: t, Stage: "third increment", Wrapped: err}
		}
		for j := 0; j < dim; j++ {
			scratch[j] = x[j] + h*k3[j]
		}

		k4, err := sys.Derive(t+h, scratch)
		if err != nil {
			return buf, &StepError{Step: i, Time: t, Stage: "fourth increment", Wrapped: err}
		}
		for j := 0; j < dim; j++ {
			x[j] += h6 * (k1[j] + 2*k2[j] + 2*k3[j] + k4[j])
		}

		if err := buf.SetState(i+1, x); err != nil {
			return buf, err
		}
	}
	return buf, nil
}
