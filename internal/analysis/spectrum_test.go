package analysis

import (
	"math"
	"testing"
)

func TestPowerSpectrumPeak(t *testing.T) {
	n := 256
	series := make([]float64, n)
	for i := range series {
		series[i] = math.Sin(2 * math.Pi * 16 * float64(i) / float64(n))
	}
	freqs, power := PowerSpectrum(series, 1)
	if len(freqs) != n/2 || len(power) != n/2 {
		t.Fatalf("expected %d bins, got %d and %d", n/2, len(freqs), len(power))
	}
	peak := 0
	for i := range power {
		if power[i] > power[peak] {
			peak = i
		}
	}
	if peak != 16 {
		t.Errorf("expected the peak in bin 16, got %d", peak)
	}
	if freqs[peak] != 0.0625 {
		t.Errorf("expected peak frequency 0.0625, got %v", freqs[peak])
	}
}

func TestPowerSpectrumTruncates(t *testing.T) {
	series := make([]float64, 300)
	freqs, _ := PowerSpectrum(series, 0.5)
	if len(freqs) != 128 {
		t.Errorf("expected 128 bins after truncation to 256 samples, got %d", len(freqs))
	}
}

func TestPowerSpectrumDegenerate(t *testing.T) {
	if freqs, power := PowerSpectrum([]float64{1}, 1); freqs != nil || power != nil {
		t.Errorf("expected nil slices for a one-sample series")
	}
	if freqs, power := PowerSpectrum([]float64{1, 2, 3}, 0); freqs != nil || power != nil {
		t.Errorf("expected nil slices for a non-positive interval")
	}
}

func TestDominantPeriods(t *testing.T) {
	n := 256
	series := make([]float64, n)
	for i := range series {
		x := float64(i)
		series[i] = math.Sin(2*math.Pi*16*x/float64(n)) +
			0.3*math.Sin(2*math.Pi*40*x/float64(n))
	}
	freqs, power := PowerSpectrum(series, 1)
	periods := DominantPeriods(freqs, power, 2)
	if len(periods) != 2 {
		t.Fatalf("expected 2 periods, got %d", len(periods))
	}
	if math.Abs(periods[0]-16) >= 1e-12 {
		t.Errorf("expected the strongest period 16, got %v", periods[0])
	}
	if math.Abs(periods[1]-6.4) >= 1e-12 {
		t.Errorf("expected the second period 6.4, got %v", periods[1])
	}
}

func TestDominantPeriodsRequestTooLarge(t *testing.T) {
	freqs := []float64{0, 0.25, 0.5}
	power := []float64{0, 1, 0}
	periods := DominantPeriods(freqs, power, 5)
	if len(periods) != 1 {
		t.Fatalf("expected a single line, got %d", len(periods))
	}
	if periods[0] != 4 {
		t.Errorf("expected period 4, got %v", periods[0])
	}
}
