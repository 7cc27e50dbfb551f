package matching

import (
	"math"

	"github.com/arbelos/arbelos/linalg"
)

// Hungarian solves the minimum-cost perfect assignment problem on a
// square cost matrix: row i assigned to column RowToCol[i], every row
// and column used exactly once, total cost minimal.
//
// This is the potentials formulation: rows are inserted one at a
// time, each insertion growing an alternating tree of tight edges and
// adjusting the dual potentials by the minimum slack until a free
// column is reached. Complexity: O(n³) time, O(n) memory beyond the
// input.
func Hungarian(cost *linalg.Dense) (*Assignment, error) {
	if cost == nil {
		return nil, ErrMatrixNil
	}
	n := cost.Rows()
	if n != cost.Cols() {
		return nil, ErrNotSquare
	}
	if n == 0 {
		return &Assignment{RowToCol: []int{}}, nil
	}

	// 1-based arrays; index 0 is the virtual free column. u and v are
	// the row/column potentials, colRow[j] the row assigned to column
	// j, way[j] the alternating-tree back pointer.
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	colRow := make([]int, n+1)
	way := make([]int, n+1)
	minSlack := make([]float64, n+1)
	used := make([]bool, n+1)

	for i := 1; i <= n; i++ {
		colRow[0] = i
		j0 := 0
		for j := range minSlack {
			minSlack[j] = math.Inf(1)
			used[j] = false
		}

		// Grow the tree until the chain of tight edges hits a free column.
		for {
			used[j0] = true
			i0, delta, j1 := colRow[j0], math.Inf(1), 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost.At(i0-1, j-1) - u[i0] - v[j]
				if cur < minSlack[j] {
					minSlack[j] = cur
					way[j] = j0
				}
				if minSlack[j] < delta {
					delta = minSlack[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[colRow[j]] += delta
					v[j] -= delta
				} else {
					minSlack[j] -= delta
				}
			}
			j0 = j1
			if colRow[j0] == 0 {
				break
			}
		}

		// Flip assignments along the alternating path back to the root.
		for j0 != 0 {
			j1 := way[j0]
			colRow[j0] = colRow[j1]
			j0 = j1
		}
	}

	res := &Assignment{RowToCol: make([]int, n)}
	for j := 1; j <= n; j++ {
		res.RowToCol[colRow[j]-1] = j - 1
	}
	for i, j := range res.RowToCol {
		res.Cost += cost.At(i, j)
	}

	return res, nil
}
