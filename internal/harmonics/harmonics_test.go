package harmonics

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestRandomCoefficients(t *testing.T) {
	coeffs := RandomCoefficients(4, rand.New(rand.NewSource(1)))
	if len(coeffs) != 11 {
		t.Fatalf("expected 11 coefficients, got %d", len(coeffs))
	}
	for i, c := range coeffs {
		if c < 0 || c >= 1 {
			t.Errorf("coefficient %d outside [0, 1): %v", i, c)
		}
	}
	again := RandomCoefficients(4, rand.New(rand.NewSource(1)))
	for i := range coeffs {
		if coeffs[i] != again[i] {
			t.Errorf("coefficient %d not reproducible: %v vs %v", i, coeffs[i], again[i])
		}
	}
}

func TestObjectiveDegreeOne(t *testing.T) {
	coeffs := []float64{0.7, 0.9, 0.4, 0.2}
	f := Objective(1, coeffs)
	theta, phi := 1.1, 2.3
	p10 := math.Sqrt(3/(4*math.Pi)) * math.Cos(theta)
	p11 := math.Sqrt(3/(8*math.Pi)) * math.Sin(theta)
	sum := 0.7*p10 + p11*math.Sqrt2*(0.4*math.Cos(phi)+0.2*math.Sin(phi))
	want := -math.Abs(sum)
	if got := f(theta, phi); math.Abs(got-want) >= 1e-14 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestObjectiveNonPositive(t *testing.T) {
	f := Objective(4, RandomCoefficients(4, rand.New(rand.NewSource(7))))
	for i := 0; i <= 20; i++ {
		for j := 0; j <= 20; j++ {
			theta := float64(i) * math.Pi / 20
			phi := float64(j) * 2 * math.Pi / 20
			if got := f(theta, phi); got > 0 {
				t.Errorf("theta=%g phi=%g: expected a non-positive value, got %v", theta, phi, got)
			}
		}
	}
}

func TestObjectivePeriodicPhi(t *testing.T) {
	f := Objective(3, RandomCoefficients(3, rand.New(rand.NewSource(2))))
	points := []struct{ theta, phi float64 }{
		{0.3, 0.1},
		{1.2, 2.9},
		{2.4, 5.5},
	}
	for _, p := range points {
		a := f(p.theta, p.phi)
		b := f(p.theta, p.phi+2*math.Pi)
		if math.Abs(a-b) >= 1e-9 {
			t.Errorf("theta=%g phi=%g: expected %v after a full turn, got %v", p.theta, p.phi, a, b)
		}
	}
}
