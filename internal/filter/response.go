package filter

import (
	"math"
	"math/cmplx"

	"github.com/tphakala/simd/f64"
)

// FilterResponse holds the frequency response of a filter.
type FilterResponse struct {
	// Frequencies at which response was calculated (Hz, 0 to Nyquist)
	Frequencies []float64

	// Magnitude response at each frequency (linear scale)
	Magnitude []float64

	// Phase response at each frequency (radians)
	Phase []float64
}

// Response evaluates the transfer function of the recursion
//
//	H(e^jω) = Σ b[k]·e^(-jωk) / (1 - Σ_{k≥1} a[k]·e^(-jωk))
//
// at freq Hz. a uses the sign-flipped convention of DesignButterworth.
func Response(a, b []float64, freq, sampleRate float64) complex128 {
	omega := twoPi * freq / sampleRate
	w := cmplx.Exp(complex(0, -omega))

	var num complex128
	wk := complex(1, 0)
	for _, bk := range b {
		num += complex(bk, 0) * wk
		wk *= w
	}

	den := complex(1, 0)
	wk = w
	for k := 1; k < len(a); k++ {
		den -= complex(a[k], 0) * wk
		wk *= w
	}

	return num / den
}

// GainAt returns the linear magnitude response at freq Hz.
func GainAt(a, b []float64, freq, sampleRate float64) float64 {
	return cmplx.Abs(Response(a, b, freq, sampleRate))
}

// DCGain returns the zero-frequency gain Σb / (1 - Σ_{k≥1} a[k]).
func DCGain(a, b []float64) float64 {
	if len(a) == 0 {
		return f64.Sum(b)
	}
	return f64.Sum(b) / (1 - f64.Sum(a[1:]))
}

// ComputeFrequencyResponse calculates the frequency response of an IIR filter
// at numPoints evenly spaced frequencies from 0 to Nyquist (exclusive).
// numPoints <= 0 selects 512 points.
func ComputeFrequencyResponse(a, b []float64, sampleRate float64, numPoints int) FilterResponse {
	if numPoints <= 0 {
		numPoints = defaultResponsePoints
	}

	response := FilterResponse{
		Frequencies: make([]float64, numPoints),
		Magnitude:   make([]float64, numPoints),
		Phase:       make([]float64, numPoints),
	}

	nyquist := sampleRate / nyquistDivisor
	for k := range numPoints {
		freq := nyquist * float64(k) / float64(numPoints)
		h := Response(a, b, freq, sampleRate)

		response.Frequencies[k] = freq
		response.Magnitude[k] = cmplx.Abs(h)
		response.Phase[k] = cmplx.Phase(h)
	}

	return response
}

// MagnitudeDB converts linear magnitude to decibels.
func MagnitudeDB(magnitude float64) float64 {
	if magnitude < minMagnitude {
		magnitude = minMagnitude
	}
	return dbMultiplier * math.Log10(magnitude)
}
