package engine

import (
	"slices"

	"github.com/tphakala/go-audio-lowpass/internal/simdops"
)

// Apply filters a fully materialized signal and returns a new slice of the
// same length.
//
// The first len(b) outputs form the warm-up region and are left at zero.
// For every later index m:
//
//	y[m] = b[0]·x[m] + Σ_{i=1}^{len(b)-1} (a[i]·y[m-i] + b[i]·x[m-i])
//
// Both sums are evaluated as SIMD dot products against reversed coefficient
// copies. Memory grows with the signal, so this is for offline analysis.
// Returns nil when len(b) == 0 or len(a) != len(b).
func Apply[F simdops.Float](signal, a, b []F) []F {
	n := len(b)
	if n == 0 || len(a) != n {
		return nil
	}

	filtered := make([]F, len(signal))
	if len(signal) <= n {
		return filtered
	}

	order := n - 1
	ops := simdops.For[F]()

	// bRev[j] = b[order-j], aRev[j] = a[order-j] for j < order
	bRev := slices.Clone(b)
	slices.Reverse(bRev)
	aRev := slices.Clone(a[1:])
	slices.Reverse(aRev)

	for m := n; m < len(signal); m++ {
		y := ops.DotProductUnsafe(bRev, signal[m-order:m+1])
		if order > 0 {
			y += ops.DotProductUnsafe(aRev, filtered[m-order:m])
		}
		filtered[m] = y
	}

	return filtered
}
