package linalg_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbelos/arbelos/linalg"
)

// approx compares float slices with an absolute tolerance.
var approx = cmpopts.EquateApprox(0, 1e-8)

func mustDense(t *testing.T, rows [][]float64) *linalg.Dense {
	t.Helper()
	m, err := linalg.FromRows(rows)
	require.NoError(t, err)

	return m
}

func TestDense_Basics(t *testing.T) {
	m, err := linalg.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Zero(t, m.At(1, 2))

	m.Set(1, 2, 7)
	assert.Equal(t, 7.0, m.At(1, 2))

	c := m.Clone()
	c.Set(1, 2, 9)
	assert.Equal(t, 7.0, m.At(1, 2), "clone must not alias")

	_, err = linalg.NewDense(-1, 3)
	assert.ErrorIs(t, err, linalg.ErrBadShape)

	_, err = linalg.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, linalg.ErrRaggedRows)

	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.Set(0, 3, 1) })
}

func TestGaussian_Solves(t *testing.T) {
	a := mustDense(t, [][]float64{
		{0, 1, 1},
		{2, 4, -2},
		{0, 3, 15},
	})
	b := []float64{4, 2, 36}

	x, err := linalg.Gaussian(a, b)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]float64{-1, 2, 2}, x, approx))

	// Inputs untouched.
	assert.Equal(t, 0.0, a.At(0, 0))
	assert.Equal(t, []float64{4, 2, 36}, b)
}

func TestGaussian_ResidualOnRandomSystem(t *testing.T) {
	// A diagonally dominant matrix is guaranteed nonsingular.
	const n = 20
	rows := make([][]float64, n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			rows[i][j] = float64((i*31+j*17)%13) - 6
		}
		rows[i][i] = 100
		b[i] = float64(i%7) - 3
	}
	a := mustDense(t, rows)

	x, err := linalg.Gaussian(a, b)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		got := 0.0
		for j := 0; j < n; j++ {
			got += a.At(i, j) * x[j]
		}
		assert.InDelta(t, b[i], got, 1e-8, "row %d residual", i)
	}
}

func TestGaussian_Errors(t *testing.T) {
	_, err := linalg.Gaussian(nil, nil)
	assert.ErrorIs(t, err, linalg.ErrMatrixNil)

	rect := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err = linalg.Gaussian(rect, []float64{1, 2})
	assert.ErrorIs(t, err, linalg.ErrNotSquare)

	sq := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	_, err = linalg.Gaussian(sq, []float64{1})
	assert.ErrorIs(t, err, linalg.ErrBadShape)

	singular := mustDense(t, [][]float64{
		{1, 2},
		{2, 4},
	})
	_, err = linalg.Gaussian(singular, []float64{1, 2})
	assert.ErrorIs(t, err, linalg.ErrSingular)
}

func TestGaussJordan_Consistent(t *testing.T) {
	a := mustDense(t, [][]float64{
		{0, 1, 1},
		{2, 4, -2},
		{0, 3, 15},
	})
	sol, err := linalg.GaussJordan(a, []float64{4, 2, 36})
	require.NoError(t, err)
	require.NotNil(t, sol.X)
	assert.Nil(t, sol.Certificate)
	assert.Empty(t, cmp.Diff([]float64{-1, 2, 2}, sol.X, approx))
}

func TestGaussJordan_Underdetermined(t *testing.T) {
	// One equation, three unknowns: x0 + x1 + x2 = 6.
	a := mustDense(t, [][]float64{{1, 1, 1}})
	sol, err := linalg.GaussJordan(a, []float64{6})
	require.NoError(t, err)

	sum := 0.0
	for _, v := range sol.X {
		sum += v
	}
	assert.InDelta(t, 6.0, sum, 1e-8)
}

func TestGaussJordan_InfeasibleCertificate(t *testing.T) {
	// Rows 0 and 1 are proportional but their right-hand sides are not.
	a := mustDense(t, [][]float64{
		{1, 2},
		{2, 4},
		{1, 0},
	})
	b := []float64{1, 3, 0}

	sol, err := linalg.GaussJordan(a, b)
	require.ErrorIs(t, err, linalg.ErrInfeasible)
	require.NotNil(t, sol)
	y := sol.Certificate
	require.Len(t, y, 3)

	// yA = 0 and yb != 0.
	for j := 0; j < a.Cols(); j++ {
		dot := 0.0
		for i := 0; i < a.Rows(); i++ {
			dot += y[i] * a.At(i, j)
		}
		assert.InDelta(t, 0.0, dot, 1e-8, "column %d", j)
	}
	yb := 0.0
	for i, v := range y {
		yb += v * b[i]
	}
	assert.Greater(t, math.Abs(yb), 1e-8)
}
