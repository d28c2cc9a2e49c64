package feedback

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// DominantFrequency returns the frequency of the strongest FFT bin of a
// Hann-windowed signal.
func DominantFrequency(samples []float32, rate float64) float64 {
	n := len(samples)
	if n < 2 {
		return 0
	}
	buf := make([]float64, n)
	for i, v := range samples {
		buf[i] = float64(v) * hann(i, n)
	}
	spectrum := fft.FFTReal(buf)

	best, bestMag := 0, 0.0
	for i := 1; i < n/2; i++ {
		if mag := cmplx.Abs(spectrum[i]); mag > bestMag {
			best, bestMag = i, mag
		}
	}
	return float64(best) * rate / float64(n)
}

// Window slices the samples between two times in seconds.
func Window(samples []float32, rate, from, to float64) []float32 {
	i, j := int(from*rate), int(to*rate)
	if i < 0 {
		i = 0
	}
	if j > len(samples) {
		j = len(samples)
	}
	if i >= j {
		return nil
	}
	return samples[i:j]
}

func hann(i, n int) float64 {
	return 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
}
