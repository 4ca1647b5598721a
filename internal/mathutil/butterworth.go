// Package mathutil provides polynomial algebra and the closed-form Butterworth
// recurrence used by the filter designer.
package mathutil

import (
	"math"
)

// ButterworthPolynomial returns the coefficients a[0..order] of the normalized
// Butterworth polynomial B(s) = Σ a[k]·s^k (cutoff 1 rad/s).
//
// The coefficients follow the recurrence
//
//	a[0] = 1
//	a[k+1] = a[k] · cos(k·γ) / sin((k+1)·γ),  γ = π / (2·order)
//
// and are always evaluated in float64. The sequence is palindromic and
// a[0] = a[order] = 1. Returns nil for order < 1.
func ButterworthPolynomial(order int) []float64 {
	if order < 1 {
		return nil
	}

	a := make([]float64, order+1)
	gamma := math.Pi / (butterworthAngleDivisor * float64(order))

	a[0] = 1
	for k := range order {
		a[k+1] = a[k] * math.Cos(float64(k)*gamma) / math.Sin(float64(k+1)*gamma)
	}

	return a
}

// AnalogDenominator scales a normalized Butterworth polynomial to the angular
// cutoff omegaC and returns the analog denominator, highest power first:
//
//	c[order-k] = a[k] / omegaC^k
//
// so that H(s) = 1 / (c[0]·s^order + ... + c[order]).
func AnalogDenominator(a []float64, omegaC float64) []float64 {
	order := len(a) - 1
	c := make([]float64, len(a))

	scale := 1.0
	for k := range a {
		c[order-k] = a[k] / scale
		scale *= omegaC
	}

	return c
}
