package wavio

// Sample format constants
const (
	BitDepth16 = 16
	BitDepth24 = 24
	BitDepth32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

// I/O constants
const (
	// FramesPerRead is the number of frames decoded per Read call.
	FramesPerRead = 65536

	// pcmFormat is the WAVE_FORMAT_PCM tag.
	pcmFormat = 1
)
