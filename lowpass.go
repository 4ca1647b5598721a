package lowpass

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tphakala/go-audio-lowpass/internal/engine"
	"github.com/tphakala/go-audio-lowpass/internal/filter"
	"github.com/tphakala/go-audio-lowpass/internal/simdops"
	"gopkg.in/yaml.v3"
)

// Common errors returned by the package.
var (
	// ErrInvalidOrder indicates an order below 1 or above MaxOrder.
	ErrInvalidOrder = filter.ErrInvalidOrder

	// ErrInvalidCutoffFrequency indicates a cutoff that is not in (0, SampleRate/2).
	ErrInvalidCutoffFrequency = filter.ErrInvalidCutoffFrequency

	// ErrInvalidSampleRate indicates a non-positive or non-finite sample rate.
	ErrInvalidSampleRate = filter.ErrInvalidSampleRate

	// ErrInvalidAlpha indicates a bilinear blending parameter outside [0, 1].
	ErrInvalidAlpha = filter.ErrInvalidAlpha

	// ErrNumericInstability indicates coefficients that are not finite or
	// have a pole on or outside the unit circle.
	ErrNumericInstability = filter.ErrNumericInstability

	// ErrCoefficientMismatch indicates feedback and feedforward vectors of
	// different or zero length.
	ErrCoefficientMismatch = engine.ErrCoefficientMismatch

	// ErrInvalidPrecision indicates an unknown Precision value.
	ErrInvalidPrecision = errors.New("invalid precision")

	// ErrInvalidConfig indicates invalid multi-channel configuration.
	ErrInvalidConfig = errors.New("invalid filter configuration")

	// ErrNoCoefficients indicates a bank has no design at or above the
	// requested frequency.
	ErrNoCoefficients = errors.New("no coefficients for frequency")
)

// Float is the set of sample types the executors support.
type Float = simdops.Float

// Bilinear transform blending parameters for DesignWithAlpha.
const (
	AlphaForwardEuler  = filter.AlphaForwardEuler
	AlphaTustin        = filter.AlphaTustin
	AlphaBackwardEuler = filter.AlphaBackwardEuler
)

// Precision selects the storage precision of designed coefficients.
// The zero value is not a valid precision.
type Precision int

const (
	// Float32 rounds coefficients to float32. Suitable for real-time hosts
	// that run the recursion in float32.
	Float32 Precision = iota + 1

	// Float64 keeps full float64 coefficients.
	Float64
)

// String returns "float32" or "float64".
func (p Precision) String() string {
	switch p {
	case Float32:
		return precisionNameFloat32
	case Float64:
		return precisionNameFloat64
	default:
		return fmt.Sprintf("Precision(%d)", int(p))
	}
}

// Validate reports ErrInvalidPrecision for values other than Float32 and Float64.
func (p Precision) Validate() error {
	if p != Float32 && p != Float64 {
		return fmt.Errorf("%w: %d", ErrInvalidPrecision, int(p))
	}
	return nil
}

// ParsePrecision parses "float32"/"f32"/"32" or "float64"/"f64"/"64".
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case precisionNameFloat32, "f32", "32":
		return Float32, nil
	case precisionNameFloat64, "f64", "64":
		return Float64, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrecision, s)
	}
}

// MarshalYAML encodes the precision by name.
func (p Precision) MarshalYAML() (any, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p.String(), nil
}

// UnmarshalYAML decodes a precision name.
func (p *Precision) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("%w: line %d: %w", ErrInvalidPrecision, value.Line, err)
	}

	parsed, err := ParsePrecision(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*p = parsed
	return nil
}

// Spec describes a Butterworth low-pass filter.
type Spec struct {
	// Cutoff is the -3 dB frequency in Hz. Must be in (0, SampleRate/2).
	Cutoff float64

	// Order is the number of poles (1 to MaxOrder).
	Order int

	// SampleRate is the sampling frequency in Hz.
	SampleRate float64

	// Precision is the coefficient storage precision.
	Precision Precision
}

// Validate checks the design parameters. The order is checked first, then the
// sample rate, the cutoff and finally the precision.
func (s *Spec) Validate() error {
	params := s.designParams(AlphaTustin)
	if err := params.Validate(); err != nil {
		return err
	}
	return s.Precision.Validate()
}

func (s *Spec) designParams(alpha float64) filter.DesignParams {
	return filter.DesignParams{
		Cutoff:     s.Cutoff,
		Order:      s.Order,
		SampleRate: s.SampleRate,
		Alpha:      alpha,
	}
}

// Design designs the filter described by s.
func (s *Spec) Design() (*Coefficients, error) {
	return designSpec(*s, AlphaTustin)
}

// Coefficients holds a discrete Butterworth low-pass design.
//
// A is the sign-flipped denominator (A[0] = -1, unused by the recursion) and
// B the numerator, both of length Order+1. Values are stored as float64
// already rounded to Precision. Coefficients are immutable once designed;
// use Float32 or Float64 to obtain copies.
type Coefficients struct {
	A []float64
	B []float64

	Order      int
	Precision  Precision
	Cutoff     float64
	SampleRate float64
}

// Float64 returns copies of A and B.
func (c *Coefficients) Float64() (a, b []float64) {
	return convertSlice[float64](c.A), convertSlice[float64](c.B)
}

// Float32 returns copies of A and B converted to float32.
func (c *Coefficients) Float32() (a, b []float32) {
	return convertSlice[float32](c.A), convertSlice[float32](c.B)
}

// Spec returns the parameters the coefficients were designed from.
func (c *Coefficients) Spec() Spec {
	return Spec{
		Cutoff:     c.Cutoff,
		Order:      c.Order,
		SampleRate: c.SampleRate,
		Precision:  c.Precision,
	}
}

// Validate checks that A and B have matching non-zero lengths equal to
// Order+1 and that the filter is stable.
func (c *Coefficients) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil coefficients", ErrCoefficientMismatch)
	}
	if len(c.B) == 0 || len(c.A) != len(c.B) || len(c.B) != c.Order+1 {
		return fmt.Errorf("%w: order %d with len(a)=%d, len(b)=%d",
			ErrCoefficientMismatch, c.Order, len(c.A), len(c.B))
	}
	return filter.CheckStability(c.A, c.B)
}

// Design designs a Butterworth low-pass filter using the bilinear (Tustin)
// transform. Inputs are validated before any numeric work. The result is
// rounded to precision and rejected with ErrNumericInstability when any
// pole is not strictly inside the unit circle.
//
// Design is pure and safe for concurrent use.
func Design(cutoff float64, order int, sampleRate float64, precision Precision) (*Coefficients, error) {
	return DesignWithAlpha(cutoff, order, sampleRate, precision, AlphaTustin)
}

// DesignWithAlpha is like Design but uses the generalized bilinear transform
// with the given alpha: AlphaForwardEuler (0), AlphaTustin (0.5) or
// AlphaBackwardEuler (1), or any value in between.
func DesignWithAlpha(cutoff float64, order int, sampleRate float64, precision Precision, alpha float64) (*Coefficients, error) {
	return designSpec(Spec{
		Cutoff:     cutoff,
		Order:      order,
		SampleRate: sampleRate,
		Precision:  precision,
	}, alpha)
}

func designSpec(s Spec, alpha float64) (*Coefficients, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	a, b, err := filter.DesignButterworth(s.designParams(alpha))
	if err != nil {
		return nil, err
	}

	if s.Precision == Float32 {
		filter.RoundFloat32(a)
		filter.RoundFloat32(b)
	}

	if err := filter.CheckStability(a, b); err != nil {
		return nil, fmt.Errorf("cutoff %v Hz, order %d, %s: %w", s.Cutoff, s.Order, s.Precision, err)
	}

	return &Coefficients{
		A:          a,
		B:          b,
		Order:      s.Order,
		Precision:  s.Precision,
		Cutoff:     s.Cutoff,
		SampleRate: s.SampleRate,
	}, nil
}

// MaxStableOrder returns the highest order up to MaxOrder for which Design
// succeeds with the given cutoff, sample rate and precision.
// Invalid inputs are reported with the same errors as Design. If not even
// order 1 is stable, it returns 0 and ErrNumericInstability.
func MaxStableOrder(cutoff, sampleRate float64, precision Precision) (int, error) {
	probe := Spec{Cutoff: cutoff, Order: 1, SampleRate: sampleRate, Precision: precision}
	if err := probe.Validate(); err != nil {
		return 0, err
	}

	best := 0
	var lastErr error
	for order := 1; order <= MaxOrder; order++ {
		probe.Order = order
		if _, err := probe.Design(); err != nil {
			if !errors.Is(err, ErrNumericInstability) {
				return 0, err
			}
			lastErr = err
			continue
		}
		best = order
	}

	if best == 0 {
		return 0, lastErr
	}
	return best, nil
}

// Apply filters a materialized signal with coefficients a and b (sign-flipped
// convention, equal lengths). The first len(b) outputs are zero; see the
// package documentation. Returns nil for mismatched or empty coefficients.
func Apply[F Float](signal, a, b []F) []F {
	return engine.Apply(signal, a, b)
}

// ApplyCoefficients filters signal with c in the precision of F.
func ApplyCoefficients[F Float](signal []F, c *Coefficients) ([]F, error) {
	if err := checkShape(c); err != nil {
		return nil, err
	}
	return engine.Apply(signal, convertSlice[F](c.A), convertSlice[F](c.B)), nil
}

// StreamingFilter filters one sample at a time with constant memory.
// See engine.StreamingFilter for the recursion.
type StreamingFilter[F Float] = engine.StreamingFilter[F]

// NewStreamingFilter creates a streaming filter for c that runs in the
// precision of F. History starts at rest.
func NewStreamingFilter[F Float](c *Coefficients) (*StreamingFilter[F], error) {
	if err := checkShape(c); err != nil {
		return nil, err
	}
	return engine.NewStreamingFilter(convertSlice[F](c.A), convertSlice[F](c.B))
}

// BlockSize is the host engine's default callback length in samples.
const BlockSize = engine.BlockSize

func checkShape(c *Coefficients) error {
	if c == nil {
		return fmt.Errorf("%w: nil coefficients", ErrCoefficientMismatch)
	}
	if len(c.B) == 0 || len(c.A) != len(c.B) {
		return fmt.Errorf("%w: len(a)=%d, len(b)=%d", ErrCoefficientMismatch, len(c.A), len(c.B))
	}
	return nil
}

func convertSlice[F Float](src []float64) []F {
	out := make([]F, len(src))
	for i, v := range src {
		out[i] = F(v)
	}
	return out
}
