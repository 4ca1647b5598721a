package main

// Default command-line flag values
const (
	defaultCutoff     = 1000.0 // 1 kHz
	defaultOrder      = 2
	defaultSampleRate = 44100.0 // CD quality sample rate
	defaultChannels   = 2       // Stereo
	defaultPrecision  = "float64"
)

// Test signal parameters
const (
	testSignalLowFreq  = 1000.0  // in-band test tone
	testSignalHighFreq = 10000.0 // out-of-band test tone
	testSignalDuration = 0.1     // 4410 samples at CD rate
	testSignalTail     = 2205    // samples measured after settling
)

// Demo sample rates
const (
	sampleRateSpeech = 16000.0
	sampleRateCD     = 44100.0
	sampleRateDAT    = 48000.0
	sampleRateHiRes  = 96000.0
)

// Demo orders
var demoOrders = []int{1, 2, 4, 6}

// Memory conversion
const (
	bytesPerKilobyte = 1024
)
