package filter

import (
	"fmt"
	"math"

	"github.com/tphakala/go-audio-lowpass/internal/mathutil"
	"gonum.org/v1/gonum/floats"
)

// Discretize maps a continuous transfer function num(s)/den(s) to a discrete
// one with the generalized bilinear transform
//
//	s = (z - 1) / (dt · (α·z + 1 - α))
//
// Both input polynomials are in s, highest power first; num must not have a
// higher degree than den. The results are polynomials in z, highest power
// first (equivalently ascending powers of z⁻¹), each of length deg(den)+1 and
// normalized so that denZ[0] = 1.
//
// Multiplying through by (α·z + 1 - α)^n, each s^(n-j) term becomes
// (z-1)^(n-j)·(α·z + 1 - α)^j / dt^(n-j). The common dt^n factor cancels
// in the normalization and is never formed, which keeps high orders away
// from underflow.
func Discretize(num, den []float64, dt, alpha float64) (numZ, denZ []float64, err error) {
	den = mathutil.TrimLeading(den)
	if len(den) == 0 {
		return nil, nil, fmt.Errorf("discretize: %w", mathutil.ErrDegeneratePolynomial)
	}
	if len(num) > len(den) {
		return nil, nil, fmt.Errorf("discretize: improper transfer function (num degree %d > den degree %d)",
			len(num)-1, len(den)-1)
	}

	n := len(den) - 1
	numOffset := len(den) - len(num)

	diff := []float64{1, -1}
	blend := []float64{alpha, 1 - alpha}

	numZ = make([]float64, n+1)
	denZ = make([]float64, n+1)

	for j := 0; j <= n; j++ {
		term := mathutil.PolyMul(mathutil.PolyPow(diff, n-j), mathutil.PolyPow(blend, j))
		scale := math.Pow(dt, float64(j-n))

		mathutil.PolyAddScaled(denZ, den[j]*scale, term)
		if k := j - numOffset; k >= 0 {
			mathutil.PolyAddScaled(numZ, num[k]*scale, term)
		}
	}

	lead := denZ[0]
	if lead == 0 || !isFinite(lead) {
		return nil, nil, fmt.Errorf("%w: discrete denominator leading coefficient %v",
			ErrNumericInstability, lead)
	}

	floats.Scale(1/lead, numZ)
	floats.Scale(1/lead, denZ)

	return numZ, denZ, nil
}
