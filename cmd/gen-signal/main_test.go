package main

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-audio-lowpass/internal/signal"
	"github.com/tphakala/go-audio-lowpass/internal/wavio"
)

func defaultOptions() signalOptions {
	return signalOptions{
		kind:       typeTone,
		freq:       defaultFreq,
		freq2:      defaultFreq2,
		amplitude:  defaultAmplitude,
		stdDev:     defaultStdDev,
		seed:       1,
		duration:   0.1,
		sampleRate: defaultRate,
		bitDepth:   defaultBits,
		channels:   defaultChannels,
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		kind string
	}{
		{"tone", typeTone},
		{"noise", typeNoise},
		{"mix", typeMix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			opts.kind = tt.kind

			x, err := generate(opts)
			require.NoError(t, err)
			assert.Len(t, x, 4410)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		opts := defaultOptions()
		opts.kind = "square"
		_, err := generate(opts)
		require.Error(t, err)
	})

	t.Run("bad_rate", func(t *testing.T) {
		opts := defaultOptions()
		opts.sampleRate = 0
		_, err := generate(opts)
		require.Error(t, err)
	})
}

func TestWriteSignal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	opts := defaultOptions()
	opts.channels = 2

	frames, err := writeSignal(path, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(4410), frames)

	r, err := wavio.Open(path)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	assert.Equal(t, defaultRate, r.SampleRate)
	assert.Equal(t, 2, r.Channels)

	bufs := [][]float64{make([]float64, wavio.FramesPerRead), make([]float64, wavio.FramesPerRead)}
	n, err := wavio.ReadInto(r, bufs)
	require.NoError(t, err)
	require.Equal(t, 4410, n)

	freq, amp := signal.SpectralPeak(bufs[0][:n], defaultRate)
	assert.InDelta(t, defaultFreq, freq, 1e-6)
	assert.InDelta(t, defaultAmplitude, amp, 1e-3)
	assert.Equal(t, bufs[0][:n], bufs[1][:n])

	_, err = wavio.ReadInto(r, bufs)
	assert.True(t, errors.Is(err, io.EOF))
}

func TestWriteSignal_Errors(t *testing.T) {
	opts := defaultOptions()
	opts.channels = 0
	_, err := writeSignal(filepath.Join(t.TempDir(), "a.wav"), opts)
	require.Error(t, err)

	opts = defaultOptions()
	opts.bitDepth = 8
	_, err = writeSignal(filepath.Join(t.TempDir(), "b.wav"), opts)
	require.ErrorIs(t, err, wavio.ErrUnsupportedBitDepth)
}
