package linalg

import (
	"errors"
	"fmt"
)

// Sentinel errors for the linalg package.
var (
	// ErrMatrixNil is returned for a nil matrix pointer.
	ErrMatrixNil = errors.New("linalg: matrix is nil")

	// ErrBadShape is returned for impossible dimensions or a
	// right-hand side that does not match the matrix.
	ErrBadShape = errors.New("linalg: dimension mismatch")

	// ErrRaggedRows is returned by FromRows for rows of unequal length.
	ErrRaggedRows = errors.New("linalg: rows have unequal length")

	// ErrNotSquare is returned by solvers that need a square system.
	ErrNotSquare = errors.New("linalg: matrix is not square")

	// ErrSingular is returned when elimination meets a zero pivot
	// column and no unique solution exists.
	ErrSingular = errors.New("linalg: matrix is singular")

	// ErrInfeasible is returned when the system has no solution; the
	// result carries a certificate.
	ErrInfeasible = errors.New("linalg: system is infeasible")
)

// epsilon is the tolerance below which a pivot counts as zero.
const epsilon = 1e-8

// Dense is a row-major dense matrix of float64.
//
// Accessors panic on out-of-range indices, matching slice semantics;
// shape errors that depend on runtime data are returned as errors by
// the constructors and solvers instead.
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense returns a zero-filled rows x cols matrix.
// Returns ErrBadShape for negative dimensions.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}

	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a matrix from row slices, copying the data.
// Returns ErrRaggedRows when the rows differ in length.
func FromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return &Dense{}, nil
	}
	c := len(rows[0])
	m := &Dense{rows: r, cols: c, data: make([]float64, 0, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrRaggedRows, i, len(row), c)
		}
		m.data = append(m.data, row...)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// At returns the element at row i, column j.
func (m *Dense) At(i, j int) float64 {
	m.check(i, j)

	return m.data[i*m.cols+j]
}

// Set stores v at row i, column j.
func (m *Dense) Set(i, j int, v float64) {
	m.check(i, j)
	m.data[i*m.cols+j] = v
}

// Clone returns a deep copy of the matrix.
func (m *Dense) Clone() *Dense {
	out := &Dense{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// swapRows exchanges rows i and k in place.
func (m *Dense) swapRows(i, k int) {
	if i == k {
		return
	}
	ri := m.data[i*m.cols : (i+1)*m.cols]
	rk := m.data[k*m.cols : (k+1)*m.cols]
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}
}

func (m *Dense) check(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("linalg: index (%d,%d) out of range %dx%d",
			i, j, m.rows, m.cols))
	}
}
