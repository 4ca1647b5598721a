package lowpass

import (
	"fmt"
	"sync"

	"github.com/tphakala/simd/cpu"
)

// Config holds multi-channel filter configuration.
type Config struct {
	// Cutoff is the -3 dB frequency in Hz.
	Cutoff float64

	// Order is the Butterworth order.
	Order int

	// SampleRate is the sample rate of the audio in Hz.
	SampleRate float64

	// Precision is the coefficient storage precision. Zero selects Float64.
	Precision Precision

	// Channels is the number of independent audio channels.
	Channels int

	// EnableParallel enables parallel channel processing in ProcessMulti.
	// Has no effect on mono audio.
	EnableParallel bool
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Channels < monoChannels {
		return fmt.Errorf("%w: channels must be at least %d", ErrInvalidConfig, monoChannels)
	}

	if c.Channels > maxChannels {
		return fmt.Errorf("%w: too many channels (max %d)", ErrInvalidConfig, maxChannels)
	}

	spec := c.spec()
	return spec.Validate()
}

func (c *Config) spec() Spec {
	precision := c.Precision
	if precision == 0 {
		precision = Float64
	}
	return Spec{
		Cutoff:     c.Cutoff,
		Order:      c.Order,
		SampleRate: c.SampleRate,
		Precision:  precision,
	}
}

// Filter applies one Butterworth design to several channels. Each channel
// owns its own StreamingFilter, so history never leaks between channels and
// successive Process calls continue the same stream.
//
// Calls on one Filter must be serialized.
type Filter struct {
	config Config
	coeffs *Coefficients

	// Per-channel state
	channels []*StreamingFilter[float64]
}

// New designs the filter and allocates per-channel state.
func New(config *Config) (*Filter, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	spec := config.spec()
	coeffs, err := spec.Design()
	if err != nil {
		return nil, fmt.Errorf("failed to design filter: %w", err)
	}

	f := &Filter{
		config:   *config,
		coeffs:   coeffs,
		channels: make([]*StreamingFilter[float64], config.Channels),
	}
	f.config.Precision = spec.Precision

	for i := range f.channels {
		sf, err := NewStreamingFilter[float64](coeffs)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", i, err)
		}
		f.channels[i] = sf
	}

	return f, nil
}

// Process filters a mono channel (channel 0).
func (f *Filter) Process(input []float64) ([]float64, error) {
	return f.processChannel(0, input)
}

// ProcessFloat32 filters float32 samples on channel 0.
// The recursion runs in float64 on coefficients rounded to the configured
// precision.
func (f *Filter) ProcessFloat32(input []float32) ([]float32, error) {
	input64 := make([]float64, len(input))
	for i, v := range input {
		input64[i] = float64(v)
	}

	output64, err := f.Process(input64)
	if err != nil {
		return nil, err
	}

	output32 := make([]float32, len(output64))
	for i, v := range output64 {
		output32[i] = float32(v)
	}

	return output32, nil
}

// ProcessMulti filters multiple audio channels.
// When EnableParallel is true in config, channels are processed concurrently.
// Otherwise, channels are processed sequentially.
func (f *Filter) ProcessMulti(input [][]float64) ([][]float64, error) {
	if len(input) != f.config.Channels {
		return nil, fmt.Errorf("%w: expected %d channels, got %d", ErrInvalidConfig, f.config.Channels, len(input))
	}

	output := make([][]float64, len(input))

	if !f.config.EnableParallel || len(input) <= 1 {
		for ch := range input {
			result, err := f.processChannel(ch, input[ch])
			if err != nil {
				return nil, fmt.Errorf("channel %d: %w", ch, err)
			}
			output[ch] = result
		}
		return output, nil
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(input))

	for ch := range input {
		wg.Add(1)
		go func(channel int) {
			defer wg.Done()

			result, err := f.processChannel(channel, input[channel])
			if err != nil {
				errChan <- fmt.Errorf("channel %d: %w", channel, err)
				return
			}
			output[channel] = result
		}(ch)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return output, nil
}

// ProcessInterleaved filters interleaved frames [c0, c1, ..., c0, c1, ...]
// in place. len(samples) must be a multiple of the channel count.
func (f *Filter) ProcessInterleaved(samples []float64) error {
	numChannels := len(f.channels)
	if len(samples)%numChannels != 0 {
		return fmt.Errorf("%w: %d samples is not a whole number of %d-channel frames",
			ErrInvalidConfig, len(samples), numChannels)
	}

	for i, v := range samples {
		samples[i] = f.channels[i%numChannels].ProcessSample(v)
	}
	return nil
}

func (f *Filter) processChannel(channel int, input []float64) ([]float64, error) {
	if channel < 0 || channel >= len(f.channels) {
		return nil, fmt.Errorf("%w: channel %d out of range", ErrInvalidConfig, channel)
	}
	return f.channels[channel].Process(input), nil
}

// Reset returns every channel to rest.
func (f *Filter) Reset() {
	for _, ch := range f.channels {
		ch.Reset()
	}
}

// Coefficients returns the shared design.
func (f *Filter) Coefficients() *Coefficients {
	return f.coeffs
}

// Channels returns the number of channels.
func (f *Filter) Channels() int {
	return len(f.channels)
}

// Info describes a Filter.
type Info struct {
	// Order is the filter order.
	Order int

	// Precision is the coefficient storage precision.
	Precision Precision

	// Channels is the number of independent channel states.
	Channels int

	// HistoryLen is the ring buffer length per channel (Order+1).
	HistoryLen int

	// MemoryUsage is the approximate memory usage in bytes.
	MemoryUsage int64

	// SamplesProcessed is the number of samples filtered on channel 0.
	SamplesProcessed int64

	// SIMDType describes the SIMD instruction set used by Apply.
	SIMDType string
}

// GetInfo returns information about the filter.
func (f *Filter) GetInfo() Info {
	info := Info{
		Order:     f.coeffs.Order,
		Precision: f.coeffs.Precision,
		Channels:  len(f.channels),
		SIMDType:  cpu.Info(),
	}

	for _, ch := range f.channels {
		info.MemoryUsage += ch.MemoryUsage()
	}
	if len(f.channels) > 0 {
		info.HistoryLen = f.channels[0].HistoryLen()
		info.SamplesProcessed = f.channels[0].SamplesProcessed()
	}

	return info
}
