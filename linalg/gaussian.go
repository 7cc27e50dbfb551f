package linalg

import (
	"fmt"
	"math"
)

// Gaussian solves the square system Ax = b by Gaussian elimination
// with partial pivoting. A is not modified.
//
// Returns ErrNotSquare for non-square A, ErrBadShape when len(b)
// differs from the row count, and ErrSingular when some pivot column
// has no entry above the tolerance. Complexity: O(n³).
func Gaussian(a *Dense, b []float64) ([]float64, error) {
	if a == nil {
		return nil, ErrMatrixNil
	}
	n := a.Rows()
	if n != a.Cols() {
		return nil, ErrNotSquare
	}
	if len(b) != n {
		return nil, fmt.Errorf("%w: rhs has %d entries, want %d", ErrBadShape, len(b), n)
	}

	m := a.Clone()
	rhs := make([]float64, n)
	copy(rhs, b)

	// Forward elimination.
	for p := 0; p < n; p++ {
		// Partial pivot: the largest magnitude in column p.
		max := p
		for i := p + 1; i < n; i++ {
			if math.Abs(m.At(i, p)) > math.Abs(m.At(max, p)) {
				max = i
			}
		}
		m.swapRows(p, max)
		rhs[p], rhs[max] = rhs[max], rhs[p]

		if math.Abs(m.At(p, p)) <= epsilon {
			return nil, fmt.Errorf("%w: pivot column %d", ErrSingular, p)
		}

		for i := p + 1; i < n; i++ {
			factor := m.At(i, p) / m.At(p, p)
			rhs[i] -= factor * rhs[p]
			for j := p; j < n; j++ {
				m.Set(i, j, m.At(i, j)-factor*m.At(p, j))
			}
		}
	}

	// Back substitution.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := 0.0
		for j := i + 1; j < n; j++ {
			sum += m.At(i, j) * x[j]
		}
		x[i] = (rhs[i] - sum) / m.At(i, i)
	}

	return x, nil
}
