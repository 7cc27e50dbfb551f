package linalg

import (
	"fmt"
	"math"
)

// Solution is the outcome of Gauss-Jordan elimination. Exactly one of
// the two fields is populated: X when the system is consistent,
// Certificate when it is not.
type Solution struct {
	// X solves Ax = b, with free variables set to zero.
	X []float64

	// Certificate is a vector y with yA = 0 and yb != 0, proving that
	// no solution exists.
	Certificate []float64
}

// GaussJordan reduces the m x n system Ax = b to reduced row echelon
// form, carrying an identity block so the row operations themselves
// are recorded. A is not modified.
//
// Consistent systems (including underdetermined ones) yield a
// Solution with X populated; free variables are zero. Inconsistent
// systems yield ErrInfeasible together with a Solution whose
// Certificate field proves infeasibility. Complexity: O(m²·(m+n)).
func GaussJordan(a *Dense, b []float64) (*Solution, error) {
	if a == nil {
		return nil, ErrMatrixNil
	}
	m, n := a.Rows(), a.Cols()
	if len(b) != m {
		return nil, fmt.Errorf("%w: rhs has %d entries, want %d", ErrBadShape, len(b), m)
	}

	// Augmented tableau [A | I | b], one row slice per matrix row.
	width := n + m + 1
	tab := make([][]float64, m)
	for i := 0; i < m; i++ {
		row := make([]float64, width)
		for j := 0; j < n; j++ {
			row[j] = a.At(i, j)
		}
		row[n+i] = 1
		row[width-1] = b[i]
		tab[i] = row
	}

	// Reduced row echelon form with partial pivoting. pivotCol[r] is
	// the column whose pivot lives in row r.
	pivotCol := make([]int, 0, m)
	r := 0
	for c := 0; c < n && r < m; c++ {
		max := r
		for i := r + 1; i < m; i++ {
			if math.Abs(tab[i][c]) > math.Abs(tab[max][c]) {
				max = i
			}
		}
		if math.Abs(tab[max][c]) <= epsilon {
			continue // free column
		}
		tab[r], tab[max] = tab[max], tab[r]

		scale := tab[r][c]
		for j := range tab[r] {
			tab[r][j] /= scale
		}
		for i := 0; i < m; i++ {
			if i == r || math.Abs(tab[i][c]) <= epsilon {
				continue
			}
			factor := tab[i][c]
			for j := range tab[i] {
				tab[i][j] -= factor * tab[r][j]
			}
		}
		pivotCol = append(pivotCol, c)
		r++
	}

	// A zero row of A with a nonzero right-hand side is a proof of
	// infeasibility; its identity block records the combination y.
	for i := r; i < m; i++ {
		if math.Abs(tab[i][width-1]) > epsilon {
			cert := make([]float64, m)
			copy(cert, tab[i][n:n+m])

			return &Solution{Certificate: cert}, ErrInfeasible
		}
	}

	x := make([]float64, n)
	for row, c := range pivotCol {
		x[c] = tab[row][width-1]
	}

	return &Solution{X: x}, nil
}
