package mathutil

// Butterworth recurrence constants
const (
	// γ = π / (butterworthAngleDivisor · order)
	butterworthAngleDivisor = 2.0
)

// Root finding thresholds
const (
	// Leading coefficients smaller than this (relative to the largest
	// coefficient) are treated as zero when trimming a polynomial.
	leadingZeroThreshold = 1e-300
)
