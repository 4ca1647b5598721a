package signal

import (
	"math"
	"math/cmplx"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// RMS returns the root mean square of x, or 0 for an empty slice.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return math.Sqrt(f64.DotProduct(x, x) / float64(len(x)))
}

// SteadyStateAmplitude estimates the peak amplitude of a sinusoid from the
// last tail samples of x (√2·RMS). Use a tail spanning many periods and
// excluding the start-up transient.
func SteadyStateAmplitude(x []float64, tail int) float64 {
	if tail <= 0 || tail > len(x) {
		tail = len(x)
	}
	return sineRMSToPeak * RMS(x[len(x)-tail:])
}

// PeakAbs returns max |x[i]|.
func PeakAbs(x []float64) float64 {
	var peak float64
	for _, v := range x {
		peak = max(peak, math.Abs(v))
	}
	return peak
}

// SpectralPeak returns the frequency and amplitude of the strongest non-DC
// bin of x. The amplitude is exact for tones centred on a bin; otherwise
// spectral leakage lowers it.
func SpectralPeak(x []float64, sampleRate float64) (freq, amplitude float64) {
	n := len(x)
	if n < fftHermitianDivisor {
		return 0, 0
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, x)

	mags := make([]float64, len(coeffs))
	for i, c := range coeffs {
		mags[i] = cmplx.Abs(c)
	}
	mags[0] = 0

	peak := floats.MaxIdx(mags)
	return fft.Freq(peak) * sampleRate, fftHermitianDivisor * mags[peak] / float64(n)
}
