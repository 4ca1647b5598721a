package mathutil

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrDegeneratePolynomial is returned when a polynomial has no usable
// leading coefficient or its roots cannot be computed.
var ErrDegeneratePolynomial = errors.New("mathutil: degenerate polynomial")

// All polynomials in this package are stored highest power first:
// p[0]·x^n + p[1]·x^(n-1) + ... + p[n].

// PolyMul returns the product of p and q.
func PolyMul(p, q []float64) []float64 {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}

	out := make([]float64, len(p)+len(q)-1)
	for i, pv := range p {
		floats.AddScaled(out[i:i+len(q)], pv, q)
	}
	return out
}

// PolyPow returns p raised to the non-negative power n.
// PolyPow(p, 0) is the constant polynomial 1.
func PolyPow(p []float64, n int) []float64 {
	out := []float64{1}
	for range n {
		out = PolyMul(out, p)
	}
	return out
}

// PolyAddScaled adds alpha·q to dst in place, aligning both at the constant
// term. dst must be at least as long as q.
func PolyAddScaled(dst []float64, alpha float64, q []float64) {
	offset := len(dst) - len(q)
	floats.AddScaled(dst[offset:], alpha, q)
}

// PolyEval evaluates p at the complex point z using Horner's scheme.
func PolyEval(p []float64, z complex128) complex128 {
	var acc complex128
	for _, c := range p {
		acc = acc*z + complex(c, 0)
	}
	return acc
}

// TrimLeading drops leading coefficients that are zero for practical purposes.
func TrimLeading(p []float64) []float64 {
	scale := floats.Norm(p, 1)
	if scale == 0 {
		return nil
	}

	for len(p) > 0 && math.Abs(p[0]) <= leadingZeroThreshold*scale {
		p = p[1:]
	}
	return p
}

