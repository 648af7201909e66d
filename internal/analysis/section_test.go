package analysis

import "testing"

func TestStroboscopic(t *testing.T) {
	z := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	v := []float64{0, -1, -2, -3, -4, -5, -6, -7, -8, -9}
	s := Stroboscopic(z, v, 3, 1)
	if s.Len() != 3 {
		t.Fatalf("expected 3 samples, got %d", s.Len())
	}
	for i, want := range []float64{1, 4, 7} {
		if s.Z[i] != want || s.V[i] != -want {
			t.Errorf("sample %d = (%v, %v), want (%v, %v)", i, s.Z[i], s.V[i], want, -want)
		}
	}
}

func TestStroboscopicUnitStride(t *testing.T) {
	z := []float64{1, 2, 3}
	v := []float64{4, 5, 6}
	s := Stroboscopic(z, v, 1, 0)
	if s.Len() != 3 {
		t.Fatalf("expected every sample kept, got %d of 3", s.Len())
	}
}

func TestStroboscopicDegenerate(t *testing.T) {
	z := []float64{1, 2, 3}
	v := []float64{4, 5}
	if s := Stroboscopic(z, v, 0, 0); s.Len() != 0 {
		t.Errorf("non-positive stride produced %d samples", s.Len())
	}
	s := Stroboscopic(z, v, 1, -4)
	if s.Len() != 2 {
		t.Errorf("expected the shorter row to bound sampling, got %d", s.Len())
	}
	if s := Stroboscopic(z, v, 1, 10); s.Len() != 0 {
		t.Errorf("skip past the end produced %d samples", s.Len())
	}
}

func TestLyapunovLinearGrowth(t *testing.T) {
	times := make([]float64, 100)
	megno := make([]float64, 100)
	for i := range times {
		times[i] = float64(i)
		megno[i] = 0.15 * times[i]
	}
	got := Lyapunov(times, megno)
	if diff := got - 0.3; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("expected exponent 0.3 for slope 0.15, got %v", got)
	}
}

func TestLyapunovSaturated(t *testing.T) {
	times := make([]float64, 50)
	megno := make([]float64, 50)
	for i := range times {
		times[i] = float64(i)
		megno[i] = 2
	}
	if got := Lyapunov(times, megno); got != 0 {
		t.Errorf("expected zero exponent for a saturated indicator, got %v", got)
	}
}

func TestLyapunovDegenerate(t *testing.T) {
	if got := Lyapunov([]float64{1}, []float64{2}); got != 0 {
		t.Errorf("expected zero for a single sample, got %v", got)
	}
}
