package analysis

// Section holds surface-of-section samples of a trajectory in the
// (z, v) plane.
type Section struct {
	Z []float64
	V []float64
}

// Len returns the number of section points.
func (s Section) Len() int { return len(s.Z) }

// Stroboscopic samples the trajectory every stride-th step, after
// discarding the first skip samples as transient. With the primaries on
// a circular or Keplerian orbit of period 2*pi, a stride matching one
// period turns the samples into a Poincare map of the flow. A
// non-positive stride yields an empty section.
func Stroboscopic(z, v []float64, stride, skip int) Section {
	n := len(z)
	if len(v) < n {
		n = len(v)
	}
	if stride <= 0 {
		return Section{}
	}
	if skip < 0 {
		skip = 0
	}
	var s Section
	for i := skip; i < n; i += stride {
		s.Z = append(s.Z, z[i])
		s.V = append(s.V, v[i])
	}
	return s
}
