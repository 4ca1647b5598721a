package lowpass

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBank(t *testing.T) *Bank {
	t.Helper()
	bank, err := NewBank([]float64{4000, 500, 1000, 1000, 2000}, 2, RateCD, Float32)
	require.NoError(t, err)
	return bank
}

func TestNewBank(t *testing.T) {
	bank := testBank(t)

	assert.Equal(t, []float64{500, 1000, 2000, 4000}, bank.Cutoffs())
	assert.Equal(t, 2, bank.Order)
	assert.Equal(t, Float32, bank.Precision)
	require.NoError(t, bank.Validate())

	want := mustDesign(t, 1000, 2, Float32)
	assert.Equal(t, want.A, bank.Entries[1].A)
	assert.Equal(t, want.B, bank.Entries[1].B)
}

func TestNewBank_InvalidCutoff(t *testing.T) {
	_, err := NewBank([]float64{1000, 30000}, 2, RateCD, Float64)
	require.ErrorIs(t, err, ErrInvalidCutoffFrequency)
}

func TestBank_Lookup(t *testing.T) {
	bank := testBank(t)

	tests := []struct {
		name       string
		freq       float64
		wantCutoff float64
	}{
		{"below_first", 100, 500},
		{"exact", 1000, 1000},
		{"between", 1001, 2000},
		{"last", 4000, 4000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := bank.Lookup(tt.freq)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCutoff, c.Cutoff)
			assert.Equal(t, 2, c.Order)
			assert.Equal(t, Float32, c.Precision)
			assert.Equal(t, float64(RateCD), c.SampleRate)
			assert.NoError(t, c.Validate())
		})
	}

	t.Run("above_last", func(t *testing.T) {
		_, err := bank.Lookup(4000.5)
		require.ErrorIs(t, err, ErrNoCoefficients)
	})

	t.Run("returns_copies", func(t *testing.T) {
		c, err := bank.Lookup(500)
		require.NoError(t, err)
		c.B[0] = 42
		assert.NotEqual(t, 42.0, bank.Entries[0].B[0])
	})
}

func TestBank_RoundTrip(t *testing.T) {
	bank := testBank(t)

	var buf bytes.Buffer
	require.NoError(t, WriteBank(&buf, bank))
	assert.Contains(t, buf.String(), "precision: float32")
	assert.Contains(t, buf.String(), "order: 2")

	got, err := ReadBank(&buf)
	require.NoError(t, err)
	assert.Equal(t, bank, got)
}

func TestReadBank_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "empty",
			doc:     "",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "unknown_precision",
			doc:     "sample_rate: 44100\norder: 1\nprecision: float16\nentries: []\n",
			wantErr: ErrInvalidPrecision,
		},
		{
			name:    "missing_precision",
			doc:     "sample_rate: 44100\norder: 1\nentries: []\n",
			wantErr: ErrInvalidPrecision,
		},
		{
			name:    "bad_order",
			doc:     "sample_rate: 44100\norder: 0\nprecision: float64\nentries: []\n",
			wantErr: ErrInvalidOrder,
		},
		{
			name: "length_mismatch",
			doc: `sample_rate: 44100
order: 1
precision: float64
entries:
  - cutoff: 1000
    b: [0.06, 0.06]
    a: [-1, 0.87, 0.1]
`,
			wantErr: ErrCoefficientMismatch,
		},
		{
			name: "unstable",
			doc: `sample_rate: 44100
order: 1
precision: float64
entries:
  - cutoff: 1000
    b: [0.5, 0.5]
    a: [-1, 1.5]
`,
			wantErr: ErrNumericInstability,
		},
		{
			name: "unsorted",
			doc: `sample_rate: 44100
order: 1
precision: float64
entries:
  - cutoff: 2000
    b: [0.1, 0.1]
    a: [-1, 0.8]
  - cutoff: 1000
    b: [0.1, 0.1]
    a: [-1, 0.8]
`,
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadBank(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReadBank_UnknownField(t *testing.T) {
	doc := "sample_rate: 44100\norder: 1\nprecision: float64\ncolor: blue\nentries: []\n"
	_, err := ReadBank(strings.NewReader(doc))
	require.Error(t, err)
}

func TestWriteBank_Nil(t *testing.T) {
	require.ErrorIs(t, WriteBank(&bytes.Buffer{}, nil), ErrInvalidConfig)
}
