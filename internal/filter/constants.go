package filter

import "math"

// Order limits
const (
	// MinOrder is the smallest supported filter order.
	MinOrder = 1

	// MaxOrder bounds the companion matrix and binomial expansion size.
	// Whether a given order is numerically usable is decided by the pole
	// check, not by this limit.
	MaxOrder = 64
)

// Generalized bilinear transform blending parameters
const (
	// AlphaForwardEuler maps s = (z-1)/dt.
	AlphaForwardEuler = 0.0

	// AlphaTustin is the trapezoidal (bilinear) rule used by Butterworth designs.
	AlphaTustin = 0.5

	// AlphaBackwardEuler maps s = (z-1)/(dt·z).
	AlphaBackwardEuler = 1.0
)

// Frequency constants
const (
	twoPi          = 2 * math.Pi
	nyquistDivisor = 2.0
)

// Frequency response defaults
const (
	defaultResponsePoints = 512
	minMagnitude          = 1e-10 // Avoid log(0)
	dbMultiplier          = 20.0  // 20*log10 for magnitude
)
