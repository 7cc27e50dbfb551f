// Package linalg provides a small dense-matrix type and direct
// solvers for systems of linear equations:
//
//   - Gaussian    : Gaussian elimination with partial pivoting for
//     square nonsingular systems, O(n³)
//   - GaussJordan : Gauss-Jordan elimination over an m x n system;
//     returns a solution when one exists or a certificate of
//     infeasibility (a vector y with yA = 0 and yb != 0) when none
//     does
//
// All comparisons against zero use a fixed tolerance of 1e-8, the
// pragmatic choice for double-precision pivots. The matrix type is
// row-major and mutable; solvers work on copies and never modify
// their inputs.
package linalg
