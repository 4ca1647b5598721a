package signal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRMS(t *testing.T) {
	assert.Zero(t, RMS(nil))
	assert.InDelta(t, 2.0, RMS([]float64{2, -2, 2, -2}), 1e-15)
	assert.InDelta(t, math.Sqrt2/2, RMS(Tone(1, 100, 1, DefaultSampleRate)), 1e-6)
}

func TestSteadyStateAmplitude(t *testing.T) {
	x := Tone(1, 1000, 0.8, DefaultSampleRate)
	assert.InDelta(t, 0.8, SteadyStateAmplitude(x, 4410), 1e-6)

	// Out-of-range tails fall back to the whole signal.
	assert.InDelta(t, 0.8, SteadyStateAmplitude(x, 0), 1e-6)
	assert.InDelta(t, 0.8, SteadyStateAmplitude(x, len(x)+1), 1e-6)
}

func TestPeakAbs(t *testing.T) {
	assert.Equal(t, 3.0, PeakAbs([]float64{1, -3, 2}))
	assert.Zero(t, PeakAbs(nil))
}

func TestSpectralPeak(t *testing.T) {
	tests := []struct {
		name string
		freq float64
		mag  float64
	}{
		{"1k", 1000, 0.5},
		{"440", 440, 1},
		{"10k", 10000, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 4410 samples gives 10 Hz bins, so every test tone is bin-centred.
			x := Tone(0.1, tt.freq, tt.mag, DefaultSampleRate)
			freq, amp := SpectralPeak(x, DefaultSampleRate)
			assert.InDelta(t, tt.freq, freq, 1e-9)
			assert.InDelta(t, tt.mag, amp, tt.mag*1e-6)
		})
	}
}

func TestSpectralPeak_IgnoresDC(t *testing.T) {
	x := Mix(Constant(0.1, 5, DefaultSampleRate), Tone(0.1, 2000, 0.1, DefaultSampleRate))
	freq, _ := SpectralPeak(x, DefaultSampleRate)
	assert.InDelta(t, 2000, freq, 1e-9)
}

func TestSpectralPeak_TooShort(t *testing.T) {
	freq, amp := SpectralPeak([]float64{1}, DefaultSampleRate)
	assert.Zero(t, freq)
	assert.Zero(t, amp)
}
