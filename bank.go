package lowpass

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"gopkg.in/yaml.v3"
)

// yamlIndent is the indentation used by WriteBank.
const yamlIndent = 2

// BankEntry is one design of a Bank.
type BankEntry struct {
	Cutoff float64   `yaml:"cutoff"`
	B      []float64 `yaml:"b,flow"`
	A      []float64 `yaml:"a,flow"`
}

// Bank is a table of designs sharing order, sample rate and precision,
// sorted by ascending cutoff. Hosts that configure a filter by frequency
// look up the closest design at or above it.
type Bank struct {
	SampleRate float64     `yaml:"sample_rate"`
	Order      int         `yaml:"order"`
	Precision  Precision   `yaml:"precision"`
	Entries    []BankEntry `yaml:"entries"`
}

// NewBank designs one entry per distinct cutoff.
func NewBank(cutoffs []float64, order int, sampleRate float64, precision Precision) (*Bank, error) {
	sorted := slices.Clone(cutoffs)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	bank := &Bank{
		SampleRate: sampleRate,
		Order:      order,
		Precision:  precision,
		Entries:    make([]BankEntry, 0, len(sorted)),
	}

	for _, cutoff := range sorted {
		c, err := Design(cutoff, order, sampleRate, precision)
		if err != nil {
			return nil, fmt.Errorf("bank entry %v Hz: %w", cutoff, err)
		}
		bank.Entries = append(bank.Entries, BankEntry{Cutoff: cutoff, B: c.B, A: c.A})
	}

	return bank, nil
}

// Lookup returns the first design whose cutoff is at or above freq.
func (b *Bank) Lookup(freq float64) (*Coefficients, error) {
	i, _ := slices.BinarySearchFunc(b.Entries, freq, func(e BankEntry, target float64) int {
		switch {
		case e.Cutoff < target:
			return -1
		case e.Cutoff > target:
			return 1
		default:
			return 0
		}
	})
	if i == len(b.Entries) {
		return nil, fmt.Errorf("%w: %v Hz", ErrNoCoefficients, freq)
	}

	e := b.Entries[i]
	return &Coefficients{
		A:          slices.Clone(e.A),
		B:          slices.Clone(e.B),
		Order:      b.Order,
		Precision:  b.Precision,
		Cutoff:     e.Cutoff,
		SampleRate: b.SampleRate,
	}, nil
}

// Cutoffs returns the cutoff of every entry in ascending order.
func (b *Bank) Cutoffs() []float64 {
	out := make([]float64, len(b.Entries))
	for i, e := range b.Entries {
		out[i] = e.Cutoff
	}
	return out
}

// Validate checks the shared parameters, that cutoffs ascend strictly and
// that every entry has Order+1 coefficients per sequence and is stable.
func (b *Bank) Validate() error {
	if b.Order < 1 || b.Order > MaxOrder {
		return fmt.Errorf("%w: bank order %d (must be 1-%d)", ErrInvalidOrder, b.Order, MaxOrder)
	}
	if !(b.SampleRate > 0) || math.IsInf(b.SampleRate, 0) {
		return fmt.Errorf("%w: bank sample rate %v Hz", ErrInvalidSampleRate, b.SampleRate)
	}
	if err := b.Precision.Validate(); err != nil {
		return fmt.Errorf("bank: %w", err)
	}

	for i, e := range b.Entries {
		spec := Spec{Cutoff: e.Cutoff, Order: b.Order, SampleRate: b.SampleRate, Precision: b.Precision}
		if err := spec.Validate(); err != nil {
			return fmt.Errorf("bank entry %d: %w", i, err)
		}

		if i > 0 && e.Cutoff <= b.Entries[i-1].Cutoff {
			return fmt.Errorf("%w: bank entry %d: cutoff %v Hz not above %v Hz",
				ErrInvalidConfig, i, e.Cutoff, b.Entries[i-1].Cutoff)
		}

		c := Coefficients{A: e.A, B: e.B, Order: b.Order}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("bank entry %d (%v Hz): %w", i, e.Cutoff, err)
		}
	}
	return nil
}

// WriteBank encodes b as YAML.
func WriteBank(w io.Writer, b *Bank) error {
	if b == nil {
		return fmt.Errorf("%w: bank is nil", ErrInvalidConfig)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encode bank: %w", err)
	}
	return enc.Close()
}

// ReadBank decodes and validates a YAML bank. Unknown fields are rejected.
func ReadBank(r io.Reader) (*Bank, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var b Bank
	if err := dec.Decode(&b); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty bank", ErrInvalidConfig)
		}
		return nil, fmt.Errorf("decode bank: %w", err)
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}
