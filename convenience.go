package lowpass

// Common sample rates for convenience functions.
const (
	// RateCD is the CD quality sample rate (Red Book standard).
	RateCD = 44100

	// RateDAT is the DAT/DVD sample rate.
	RateDAT = 48000

	// RateHiRes96 is the high-resolution 2x DAT sample rate.
	RateHiRes96 = 96000

	// RateTelephony is the telephony (PSTN narrowband) sample rate.
	RateTelephony = 8000

	// RateSpeech is the speech recognition common sample rate.
	RateSpeech = 22050
)

// NewSimple creates a mono float64 filter of DefaultOrder.
func NewSimple(cutoff, sampleRate float64) (*Filter, error) {
	return New(&Config{
		Cutoff:     cutoff,
		Order:      DefaultOrder,
		SampleRate: sampleRate,
		Precision:  Float64,
		Channels:   monoChannels,
	})
}

// NewStereo creates a stereo filter with the given order.
func NewStereo(cutoff float64, order int, sampleRate float64) (*Filter, error) {
	return New(&Config{
		Cutoff:     cutoff,
		Order:      order,
		SampleRate: sampleRate,
		Precision:  Float64,
		Channels:   stereoChannels,
	})
}

// FilterMono is a convenience function for one-shot mono filtering.
// The filter starts from rest, so the output has no warm-up region.
func FilterMono(input []float64, cutoff float64, order int, sampleRate float64) ([]float64, error) {
	coeffs, err := Design(cutoff, order, sampleRate, Float64)
	if err != nil {
		return nil, err
	}

	f, err := NewStreamingFilter[float64](coeffs)
	if err != nil {
		return nil, err
	}
	return f.Process(input), nil
}

// FilterStereo is a convenience function for one-shot stereo filtering.
// Both channels share one design and use independent state.
func FilterStereo(left, right []float64, cutoff float64, order int, sampleRate float64) (leftOut, rightOut []float64, err error) {
	f, err := NewStereo(cutoff, order, sampleRate)
	if err != nil {
		return nil, nil, err
	}

	out, err := f.ProcessMulti([][]float64{left, right})
	if err != nil {
		return nil, nil, err
	}
	return out[0], out[1], nil
}

// FilterMonoFloat32 is the float32 equivalent of FilterMono. Coefficients
// are rounded to float32 and the recursion runs in float32.
func FilterMonoFloat32(input []float32, cutoff float64, order int, sampleRate float64) ([]float32, error) {
	coeffs, err := Design(cutoff, order, sampleRate, Float32)
	if err != nil {
		return nil, err
	}

	f, err := NewStreamingFilter[float32](coeffs)
	if err != nil {
		return nil, err
	}
	return f.Process(input), nil
}

// InterleaveToStereo converts two mono channels to interleaved stereo.
// Output format: [L0, R0, L1, R1, L2, R2, ...]
func InterleaveToStereo[F Float](left, right []F) []F {
	minLen := min(len(left), len(right))
	result := make([]F, minLen*stereoChannels)
	for i := range minLen {
		result[i*stereoChannels] = left[i]
		result[i*stereoChannels+1] = right[i]
	}
	return result
}

// DeinterleaveFromStereo converts interleaved stereo to two mono channels.
// Input format: [L0, R0, L1, R1, L2, R2, ...]
func DeinterleaveFromStereo[F Float](interleaved []F) (left, right []F) {
	numSamples := len(interleaved) / stereoChannels
	left = make([]F, numSamples)
	right = make([]F, numSamples)
	for i := range numSamples {
		left[i] = interleaved[i*stereoChannels]
		right[i] = interleaved[i*stereoChannels+1]
	}
	return left, right
}
