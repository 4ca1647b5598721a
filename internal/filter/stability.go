package filter

import (
	"fmt"

	"github.com/tphakala/go-audio-lowpass/internal/mathutil"
)

// Poles returns the poles of an IIR filter given its sign-flipped feedback
// coefficients (a = -den, as produced by DesignButterworth). The denominator
// is restored as 1 - a[1]·z⁻¹ - ... - a[n]·z⁻ⁿ, i.e. the a[0] slot is
// taken as unity regardless of its stored value, matching the executors.
func Poles(a []float64) ([]complex128, error) {
	if len(a) == 0 {
		return nil, fmt.Errorf("poles: %w", mathutil.ErrDegeneratePolynomial)
	}

	den := make([]float64, len(a))
	den[0] = 1
	for i := 1; i < len(a); i++ {
		den[i] = -a[i]
	}

	return mathutil.PolyRoots(den)
}

// MaxPoleRadius returns the largest pole modulus of the filter.
// Values below 1 indicate a stable filter.
func MaxPoleRadius(a []float64) (float64, error) {
	poles, err := Poles(a)
	if err != nil {
		return 0, err
	}
	return mathutil.MaxModulus(poles), nil
}

// CheckStability reports ErrNumericInstability when a coefficient is not
// finite or a pole lies on or outside the unit circle.
func CheckStability(a, b []float64) error {
	for i, v := range b {
		if !isFinite(v) {
			return fmt.Errorf("%w: b[%d] = %v", ErrNumericInstability, i, v)
		}
	}
	for i, v := range a {
		if !isFinite(v) {
			return fmt.Errorf("%w: a[%d] = %v", ErrNumericInstability, i, v)
		}
	}

	radius, err := MaxPoleRadius(a)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNumericInstability, err)
	}
	if radius >= 1 {
		return fmt.Errorf("%w: pole radius %.12f", ErrNumericInstability, radius)
	}

	return nil
}
