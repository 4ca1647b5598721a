package engine

// Block processing constants
const (
	// BlockSize is the number of samples the host audio engine hands to a
	// transformer per callback.
	BlockSize = 256
)
