package signal

// Synthesis defaults
const (
	// DefaultSampleRate is the host engine sample rate.
	DefaultSampleRate = 44100.0

	twoPi = 2 * 3.141592653589793
)

// Measurement constants
const (
	// √2 converts the RMS of a sinusoid to its peak amplitude.
	sineRMSToPeak = 1.4142135623730951

	// A real FFT of n samples has n/2 + 1 unique bins.
	fftHermitianDivisor = 2
)
