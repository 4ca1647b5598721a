package lowpass

import (
	"github.com/tphakala/go-audio-lowpass/internal/filter"
)

// FrequencyResponse holds magnitude and phase sampled from 0 Hz up to (but
// excluding) Nyquist.
type FrequencyResponse = filter.FilterResponse

// FrequencyResponse evaluates the response of c at points evenly spaced
// frequencies. points <= 0 selects DefaultResponsePoints.
func (c *Coefficients) FrequencyResponse(points int) FrequencyResponse {
	if points <= 0 {
		points = DefaultResponsePoints
	}
	return filter.ComputeFrequencyResponse(c.A, c.B, c.SampleRate, points)
}

// GainAt returns the linear magnitude response at freq Hz.
func (c *Coefficients) GainAt(freq float64) float64 {
	return filter.GainAt(c.A, c.B, freq, c.SampleRate)
}

// DCGain returns the zero-frequency gain. It is 1 up to rounding for every
// Butterworth design.
func (c *Coefficients) DCGain() float64 {
	return filter.DCGain(c.A, c.B)
}

// Poles returns the poles of the filter in the z-plane.
func (c *Coefficients) Poles() ([]complex128, error) {
	return filter.Poles(c.A)
}

// MaxPoleRadius returns the largest pole modulus; below 1 means stable.
func (c *Coefficients) MaxPoleRadius() (float64, error) {
	return filter.MaxPoleRadius(c.A)
}

// MagnitudeDB converts a linear magnitude to decibels, flooring tiny values
// at -200 dB.
func MagnitudeDB(magnitude float64) float64 {
	return filter.MagnitudeDB(magnitude)
}
