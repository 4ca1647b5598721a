package mathutil

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// PolyRoots returns all complex roots of p (highest power first).
//
// The roots are the eigenvalues of the companion matrix
//
//	[ -p1/p0  -p2/p0  ...  -pn/p0 ]
//	[   1       0     ...    0    ]
//	[   0       1     ...    0    ]
//	[  ...                        ]
//
// which is the same approach as numpy.roots. Constant polynomials have no
// roots and return an empty slice.
func PolyRoots(p []float64) ([]complex128, error) {
	p = TrimLeading(p)
	if len(p) == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(p) - 1
	if n == 0 {
		return []complex128{}, nil
	}

	companion := mat.NewDense(n, n, nil)
	for j := range n {
		companion.Set(0, j, -p[j+1]/p[0])
	}
	for i := 1; i < n; i++ {
		companion.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(companion, mat.EigenNone); !ok {
		return nil, fmt.Errorf("%w: eigenvalue decomposition did not converge (degree %d)",
			ErrDegeneratePolynomial, n)
	}

	return eig.Values(nil), nil
}

// MaxModulus returns the largest |r| over roots, or 0 for an empty slice.
func MaxModulus(roots []complex128) float64 {
	var maxAbs float64
	for _, r := range roots {
		if m := cmplx.Abs(r); m > maxAbs {
			maxAbs = m
		}
	}
	return maxAbs
}
