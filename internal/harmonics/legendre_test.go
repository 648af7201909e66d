package harmonics

import (
	"math"
	"testing"
)

func TestArraySize(t *testing.T) {
	cases := []struct{ lmax, want int }{
		{0, 1},
		{1, 3},
		{2, 6},
		{4, 15},
	}
	for _, c := range cases {
		if got := ArraySize(c.lmax); got != c.want {
			t.Errorf("lmax=%d: expected %d, got %d", c.lmax, c.want, got)
		}
	}
}

func TestIndex(t *testing.T) {
	cases := []struct{ l, m, want int }{
		{0, 0, 0},
		{1, 0, 1},
		{1, 1, 2},
		{2, 1, 4},
		{4, 4, 14},
	}
	for _, c := range cases {
		if got := Index(c.l, c.m); got != c.want {
			t.Errorf("l=%d m=%d: expected %d, got %d", c.l, c.m, c.want, got)
		}
	}
}

func TestSphericalLegendreTable(t *testing.T) {
	theta := 0.45
	p := SphericalLegendre(1, math.Cos(theta))
	cases := []struct {
		name      string
		got, want float64
	}{
		{"P00", p[0], 0.5 * math.Sqrt(1/math.Pi)},
		{"P10", p[1], math.Sqrt(3/(4*math.Pi)) * math.Cos(theta)},
		{"P11", p[2] * math.Sqrt2, math.Sqrt(3/(4*math.Pi)) * math.Sin(theta)},
	}
	for _, c := range cases {
		if math.Abs(c.got-c.want) >= 1e-15 {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, c.got)
		}
	}
}

func TestSphericalLegendreDegreeTwo(t *testing.T) {
	x := 0.3
	s := math.Sqrt(1 - x*x)
	p := SphericalLegendre(2, x)
	want := []float64{
		math.Sqrt(5/(4*math.Pi)) * (3*x*x - 1) / 2,
		math.Sqrt(15/(8*math.Pi)) * x * s,
		math.Sqrt(15/(32*math.Pi)) * s * s,
	}
	for m := 0; m <= 2; m++ {
		if got := p[Index(2, m)]; math.Abs(got-want[m]) >= 1e-14 {
			t.Errorf("m=%d: expected %v, got %v", m, want[m], got)
		}
	}
}

// The squared values of a degree sum to (2l+1)/(4 pi) at every point,
// counting orders above zero twice.
func TestSphericalLegendreSumRule(t *testing.T) {
	for _, x := range []float64{-1, -0.95, -0.5, 0, 0.3, 0.75, 1} {
		p := SphericalLegendre(6, x)
		for l := 0; l <= 6; l++ {
			sum := p[Index(l, 0)] * p[Index(l, 0)]
			for m := 1; m <= l; m++ {
				v := p[Index(l, m)]
				sum += 2 * v * v
			}
			want := float64(2*l+1) / (4 * math.Pi)
			if math.Abs(sum-want) >= 1e-12 {
				t.Errorf("x=%g l=%d: expected %v, got %v", x, l, want, sum)
			}
		}
	}
}

func TestSphericalLegendreDegenerate(t *testing.T) {
	if got := SphericalLegendre(-1, 0.5); got != nil {
		t.Errorf("expected nil for a negative degree, got %v", got)
	}
	p := SphericalLegendre(0, -0.7)
	if len(p) != 1 {
		t.Fatalf("expected a single value, got %d", len(p))
	}
	if want := 0.5 * math.Sqrt(1/math.Pi); p[0] != want {
		t.Errorf("expected %v, got %v", want, p[0])
	}
}
