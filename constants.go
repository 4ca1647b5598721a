package lowpass

import "github.com/tphakala/go-audio-lowpass/internal/filter"

// Channel constants
const (
	monoChannels   = 1
	stereoChannels = 2   // Stereo channel count (used by interleave functions)
	maxChannels    = 256 // Maximum supported channel count
)

// Design constants
const (
	// MaxOrder is the highest order Design accepts. It bounds the companion
	// matrix and binomial expansion; whether a given order is numerically
	// usable depends on cutoff, rate and precision (see MaxStableOrder).
	MaxOrder = filter.MaxOrder

	// DefaultOrder is used by NewSimple.
	DefaultOrder = 2
)

// Response analysis constants
const (
	// DefaultResponsePoints is the frequency grid size used when points <= 0.
	DefaultResponsePoints = 512
)

// Precision names used by String, ParsePrecision and the bank format
const (
	precisionNameFloat32 = "float32"
	precisionNameFloat64 = "float64"
)
