package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoles_FirstOrder(t *testing.T) {
	// y[m] = 0.9·y[m-1] + x[m] has its pole at 0.9.
	poles, err := Poles([]float64{-1, 0.9})
	require.NoError(t, err)
	require.Len(t, poles, 1)
	assert.InDelta(t, 0.9, real(poles[0]), 1e-15)
}

func TestPoles_IgnoresStoredA0(t *testing.T) {
	withFlip, err := MaxPoleRadius([]float64{-1, 0.5, -0.06})
	require.NoError(t, err)
	withGarbage, err := MaxPoleRadius([]float64{42, 0.5, -0.06})
	require.NoError(t, err)
	assert.InDelta(t, withFlip, withGarbage, 1e-15)
}

func TestPoles_Empty(t *testing.T) {
	_, err := Poles(nil)
	require.Error(t, err)
}

func TestCheckStability(t *testing.T) {
	tests := []struct {
		name    string
		a, b    []float64
		wantErr bool
	}{
		{"stable_first_order", []float64{-1, 0.5}, []float64{0.5, 0}, false},
		{"pole_on_unit_circle", []float64{-1, 1}, []float64{1, 0}, true},
		{"pole_outside", []float64{-1, 1.5}, []float64{1, 0}, true},
		// Poles at 0.8 ± 0.7i, radius ~1.063
		{"complex_pair_outside", []float64{-1, 1.6, -1.13}, []float64{1, 0, 0}, true},
		{"nan_b", []float64{-1, 0.5}, []float64{math.NaN(), 0}, true},
		{"inf_a", []float64{-1, math.Inf(1)}, []float64{1, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckStability(tt.a, tt.b)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNumericInstability)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// TestCheckStability_ForwardEulerHighCutoff shows the forward rule pushing
// poles out of the unit circle when ωT is large.
func TestCheckStability_ForwardEulerHighCutoff(t *testing.T) {
	a, b, err := DesignButterworth(DesignParams{
		Cutoff:     15000,
		Order:      2,
		SampleRate: testRateCD,
		Alpha:      AlphaForwardEuler,
	})
	require.NoError(t, err)
	require.ErrorIs(t, CheckStability(a, b), ErrNumericInstability)
}
