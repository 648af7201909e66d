package analysis

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the one-sided periodogram of the series sampled
// at interval dt, with the matching frequency axis. The series is Hann
// windowed and truncated to the largest power of two. A series shorter
// than two samples or a non-positive dt yields nil slices.
func PowerSpectrum(series []float64, dt float64) (freqs, power []float64) {
	if len(series) < 2 || dt <= 0 {
		return nil, nil
	}
	n := 1
	for n*2 <= len(series) {
		n *= 2
	}
	buf := make([]complex128, n)
	for i := 0; i < n; i++ {
		window := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		buf[i] = complex(series[i]*window, 0)
	}
	spectrum := fft.FFT(buf)
	half := n / 2
	freqs = make([]float64, half)
	power = make([]float64, half)
	for i := 0; i < half; i++ {
		freqs[i] = float64(i) / (float64(n) * dt)
		mag := cmplx.Abs(spectrum[i])
		power[i] = mag * mag / float64(n)
	}
	return freqs, power
}

// DominantPeriods returns the periods of the k strongest spectral lines,
// strongest first. Only local maxima of the power count as lines, so the
// shoulders of a single peak are not reported twice. The zero frequency
// carries no period and is skipped.
func DominantPeriods(freqs, power []float64, k int) []float64 {
	type line struct{ freq, power float64 }
	var lines []line
	for i := 1; i+1 < len(power); i++ {
		if power[i] > power[i-1] && power[i] >= power[i+1] {
			lines = append(lines, line{freqs[i], power[i]})
		}
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].power > lines[j].power })
	if k > len(lines) {
		k = len(lines)
	}
	periods := make([]float64, k)
	for i := 0; i < k; i++ {
		periods[i] = 1 / lines[i].freq
	}
	return periods
}
