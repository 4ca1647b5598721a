// Package filter provides Butterworth low-pass design and analysis of the
// resulting IIR coefficients.
package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-audio-lowpass/internal/mathutil"
)

// Design errors.
var (
	// ErrInvalidOrder indicates an order below MinOrder or above MaxOrder.
	ErrInvalidOrder = errors.New("invalid filter order")

	// ErrInvalidCutoffFrequency indicates a non-positive cutoff or one at or above Nyquist.
	ErrInvalidCutoffFrequency = errors.New("invalid cutoff frequency")

	// ErrInvalidSampleRate indicates a non-positive or non-finite sample rate.
	ErrInvalidSampleRate = errors.New("invalid sample rate")

	// ErrInvalidAlpha indicates a bilinear blending parameter outside [0, 1].
	ErrInvalidAlpha = errors.New("invalid bilinear alpha")

	// ErrNumericInstability indicates coefficients with poles on or outside
	// the unit circle, or non-finite values.
	ErrNumericInstability = errors.New("numerically unstable filter")
)

// DesignParams holds parameters for Butterworth low-pass design.
type DesignParams struct {
	// Cutoff is the -3 dB frequency in Hz. Must be in (0, SampleRate/2).
	Cutoff float64

	// Order is the filter order (number of poles).
	Order int

	// SampleRate is the sampling frequency in Hz.
	SampleRate float64

	// Alpha is the generalized bilinear transform blending parameter.
	// AlphaTustin (0.5) is the standard choice.
	Alpha float64
}

// Validate checks the parameters. Checks run in a fixed order so the
// reported error kind is deterministic: order, sample rate, cutoff, alpha.
func (p *DesignParams) Validate() error {
	if p.Order < MinOrder || p.Order > MaxOrder {
		return fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidOrder, p.Order, MinOrder, MaxOrder)
	}

	if !isFinite(p.SampleRate) || p.SampleRate <= 0 {
		return fmt.Errorf("%w: %v Hz", ErrInvalidSampleRate, p.SampleRate)
	}

	nyquist := p.SampleRate / nyquistDivisor
	if !isFinite(p.Cutoff) || p.Cutoff <= 0 || p.Cutoff >= nyquist {
		return fmt.Errorf("%w: %v Hz (must be in (0, %v))", ErrInvalidCutoffFrequency, p.Cutoff, nyquist)
	}

	if math.IsNaN(p.Alpha) || p.Alpha < 0 || p.Alpha > 1 {
		return fmt.Errorf("%w: %v (must be in [0, 1])", ErrInvalidAlpha, p.Alpha)
	}

	return nil
}

// AnalogLowPass returns the continuous-time Butterworth transfer function
// H(s) = num(s) / den(s) for the given cutoff in Hz, highest power first.
func AnalogLowPass(cutoff float64, order int) (num, den []float64) {
	poly := mathutil.ButterworthPolynomial(order)
	return []float64{1}, mathutil.AnalogDenominator(poly, twoPi*cutoff)
}

// DesignButterworth designs a discrete Butterworth low-pass filter.
//
// All algebra is carried out in float64. The returned feedback coefficients
// are the negated discrete denominator (a = -den, so a[0] = -1), which lets
// the executors use a single accumulating recursion:
//
//	y[m] = b[0]·x[m] + Σ (a[i]·y[m-i] + b[i]·x[m-i])
//
// No stability check is performed here; see CheckStability.
func DesignButterworth(p DesignParams) (a, b []float64, err error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	num, den := AnalogLowPass(p.Cutoff, p.Order)

	numZ, denZ, err := Discretize(num, den, 1/p.SampleRate, p.Alpha)
	if err != nil {
		return nil, nil, err
	}
	if len(denZ) != p.Order+1 {
		// The leading analog coefficient underflowed to zero.
		return nil, nil, fmt.Errorf("%w: order %d collapsed to degree %d",
			ErrNumericInstability, p.Order, len(denZ)-1)
	}

	a = make([]float64, len(denZ))
	for i, d := range denZ {
		a[i] = -d
	}

	return a, numZ, nil
}

// RoundFloat32 rounds every element to the nearest float32 value in place.
func RoundFloat32(x []float64) {
	for i, v := range x {
		x[i] = float64(float32(v))
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
