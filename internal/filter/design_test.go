package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-audio-lowpass/internal/testutil"
)

const (
	// Test sample rates
	testRateCD  = 44100.0
	testRateDAT = 48000.0

	// Test cutoffs
	testCutoff1k  = 1000.0
	testCutoff5k  = 5000.0
	testCutoff10k = 10000.0

	// -3 dB point magnitude
	halfPowerGain = math.Sqrt2 / 2
)

func designTustin(t *testing.T, cutoff float64, order int, rate float64) (a, b []float64) {
	t.Helper()
	a, b, err := DesignButterworth(DesignParams{
		Cutoff:     cutoff,
		Order:      order,
		SampleRate: rate,
		Alpha:      AlphaTustin,
	})
	require.NoError(t, err)
	return a, b
}

// TestDesignButterworth_FirstOrderClosedForm compares order 1 against the
// textbook bilinear result b0 = ωT/(2+ωT), a1 = (2-ωT)/(2+ωT).
func TestDesignButterworth_FirstOrderClosedForm(t *testing.T) {
	a, b := designTustin(t, testCutoff1k, 1, testRateCD)

	wt := twoPi * testCutoff1k / testRateCD
	wantB0 := wt / (2 + wt)
	wantA1 := (2 - wt) / (2 + wt)

	require.Len(t, a, 2)
	require.Len(t, b, 2)
	assert.InDelta(t, -1.0, a[0], testutil.DefaultTolerance)
	assert.InDelta(t, wantA1, a[1], testutil.DefaultTolerance)
	assert.InDelta(t, wantB0, b[0], testutil.DefaultTolerance)
	assert.InDelta(t, wantB0, b[1], testutil.DefaultTolerance)
}

// TestDesignButterworth_NumeratorIsBinomial checks that the Tustin numerator
// is b0·(1 + z⁻¹)^n.
func TestDesignButterworth_NumeratorIsBinomial(t *testing.T) {
	binomials := map[int][]float64{
		2: {1, 2, 1},
		3: {1, 3, 3, 1},
		4: {1, 4, 6, 4, 1},
	}

	for order, want := range binomials {
		_, b := designTustin(t, testCutoff5k, order, testRateDAT)
		require.Len(t, b, order+1)
		for i := range want {
			assert.InDelta(t, want[i]*b[0], b[i], 1e-12, "order %d b[%d]", order, i)
		}
	}
}

func TestDesignButterworth_Lengths(t *testing.T) {
	for order := 1; order <= 10; order++ {
		a, b := designTustin(t, testCutoff1k, order, testRateCD)
		assert.Len(t, a, order+1)
		assert.Len(t, b, order+1)
		assert.InDelta(t, -1.0, a[0], 1e-15, "a[0] carries the flipped unit denominator")
		testutil.AssertNoNaNOrInf(t, a)
		testutil.AssertNoNaNOrInf(t, b)
	}
}

// TestDesignButterworth_Stability finds the poles explicitly for orders 1-6.
func TestDesignButterworth_Stability(t *testing.T) {
	for _, cutoff := range []float64{500, testCutoff1k, testCutoff5k, testCutoff10k, 20000} {
		for order := 1; order <= 6; order++ {
			a, b := designTustin(t, cutoff, order, testRateCD)

			poles, err := Poles(a)
			require.NoError(t, err)
			require.Len(t, poles, order)
			testutil.AssertInsideUnitCircle(t, poles, "cutoff %v order %d", cutoff, order)
			assert.NoError(t, CheckStability(a, b))
		}
	}
}

func TestDesignButterworth_DCGain(t *testing.T) {
	// Σb and 1-Σa are both small at low cutoffs, so the ratio loses digits
	// roughly in proportion to the binomial magnitudes.
	for order := 1; order <= 6; order++ {
		a, b := designTustin(t, testCutoff1k, order, testRateCD)
		assert.InDelta(t, 1.0, DCGain(a, b), 1e-5, "order %d", order)
	}
}

// TestDesignButterworth_HalfPowerAtCutoff checks the -3 dB point. Tustin
// warping at 1 kHz / 44.1 kHz moves it by well under a percent.
func TestDesignButterworth_HalfPowerAtCutoff(t *testing.T) {
	for order := 1; order <= 6; order++ {
		a, b := designTustin(t, testCutoff1k, order, testRateCD)
		testutil.AssertInRange(t, GainAt(a, b, testCutoff1k, testRateCD),
			halfPowerGain-0.01, halfPowerGain+0.01)
	}
}

// TestDesignButterworth_Rolloff checks at least ~6 dB/octave per order at 4× cutoff.
func TestDesignButterworth_Rolloff(t *testing.T) {
	for _, order := range []int{1, 2, 4} {
		a, b := designTustin(t, testCutoff1k, order, testRateCD)
		atten := -MagnitudeDB(GainAt(a, b, 4*testCutoff1k, testRateCD))
		assert.GreaterOrEqual(t, atten, float64(order)*12-1, "order %d", order)
	}
}

func TestDesignButterworth_Deterministic(t *testing.T) {
	a1, b1 := designTustin(t, testCutoff1k, 4, testRateCD)
	a2, b2 := designTustin(t, testCutoff1k, 4, testRateCD)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
}

func TestDesignParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  DesignParams
		wantErr error
	}{
		{"valid", DesignParams{Cutoff: 1000, Order: 2, SampleRate: testRateCD, Alpha: AlphaTustin}, nil},
		{"order_zero", DesignParams{Cutoff: 1000, Order: 0, SampleRate: testRateCD}, ErrInvalidOrder},
		{"order_negative", DesignParams{Cutoff: 1000, Order: -2, SampleRate: testRateCD}, ErrInvalidOrder},
		{"order_too_high", DesignParams{Cutoff: 1000, Order: MaxOrder + 1, SampleRate: testRateCD}, ErrInvalidOrder},
		{"cutoff_zero", DesignParams{Cutoff: 0, Order: 2, SampleRate: testRateCD}, ErrInvalidCutoffFrequency},
		{"cutoff_negative", DesignParams{Cutoff: -5, Order: 2, SampleRate: testRateCD}, ErrInvalidCutoffFrequency},
		{"cutoff_at_nyquist", DesignParams{Cutoff: testRateCD / 2, Order: 2, SampleRate: testRateCD}, ErrInvalidCutoffFrequency},
		{"cutoff_above_nyquist", DesignParams{Cutoff: 30000, Order: 2, SampleRate: testRateCD}, ErrInvalidCutoffFrequency},
		{"cutoff_nan", DesignParams{Cutoff: math.NaN(), Order: 2, SampleRate: testRateCD}, ErrInvalidCutoffFrequency},
		{"rate_zero", DesignParams{Cutoff: 1000, Order: 2, SampleRate: 0}, ErrInvalidSampleRate},
		{"rate_inf", DesignParams{Cutoff: 1000, Order: 2, SampleRate: math.Inf(1)}, ErrInvalidSampleRate},
		{"alpha_negative", DesignParams{Cutoff: 1000, Order: 2, SampleRate: testRateCD, Alpha: -0.1}, ErrInvalidAlpha},
		{"alpha_above_one", DesignParams{Cutoff: 1000, Order: 2, SampleRate: testRateCD, Alpha: 1.5}, ErrInvalidAlpha},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)

			a, b, err := DesignButterworth(tt.params)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, a)
			assert.Nil(t, b)
		})
	}
}

// TestDesignButterworth_BackwardEuler checks that the backward rule also
// yields a stable unity-gain low-pass. Its numerator is b0·z^n.
func TestDesignButterworth_BackwardEuler(t *testing.T) {
	a, b, err := DesignButterworth(DesignParams{
		Cutoff:     testCutoff1k,
		Order:      2,
		SampleRate: testRateCD,
		Alpha:      AlphaBackwardEuler,
	})
	require.NoError(t, err)

	assert.NoError(t, CheckStability(a, b))
	assert.InDelta(t, 1.0, DCGain(a, b), 1e-9)
	assert.InDelta(t, 0.0, b[1], 1e-15)
	assert.InDelta(t, 0.0, b[2], 1e-15)
}

func TestRoundFloat32(t *testing.T) {
	x := []float64{0.1, 1.0 / 3.0}
	RoundFloat32(x)
	assert.Equal(t, float64(float32(0.1)), x[0])
	assert.Equal(t, float64(float32(1.0/3.0)), x[1])
}
