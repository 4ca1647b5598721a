package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-audio-lowpass/internal/filter"
	"github.com/tphakala/go-audio-lowpass/internal/signal"
)

const (
	testRate     = 44100.0
	testCutoff1k = 1000.0

	// Steady-state measurement window: 0.1 s, a whole number of periods at 1 kHz.
	testTail = 4410
)

func designCoeffs(t testing.TB, cutoff float64, order int) (a, b []float64) {
	t.Helper()
	a, b, err := filter.DesignButterworth(filter.DesignParams{
		Cutoff:     cutoff,
		Order:      order,
		SampleRate: testRate,
		Alpha:      filter.AlphaTustin,
	})
	require.NoError(t, err)
	return a, b
}

func newStreaming32(t testing.TB, cutoff float64, order int) *StreamingFilter[float32] {
	t.Helper()
	a, b := designCoeffs(t, cutoff, order)
	f, err := NewStreamingFilter(signal.ToFloat32(a), signal.ToFloat32(b))
	require.NoError(t, err)
	return f
}

// naiveFilter is the direct scalar form of the bulk recursion.
func naiveFilter(x, a, b []float64) []float64 {
	n := len(b)
	y := make([]float64, len(x))
	for m := n; m < len(x); m++ {
		acc := b[0] * x[m]
		for i := 1; i < n; i++ {
			acc += a[i]*y[m-i] + b[i]*x[m-i]
		}
		y[m] = acc
	}
	return y
}
