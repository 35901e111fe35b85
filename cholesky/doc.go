// Package cholesky computes the Cholesky factorization of Hermitian (or
// real symmetric) positive-definite matrices and the operations derived
// from it: linear-system solving, inversion and determinants — factor once,
// reuse many times.
//
// 🚀 What is a Cholesky factorization?
//
//	Every Hermitian positive-definite matrix A admits a unique triangular
//	factorization A = L·Lᴴ (equivalently A = Uᴴ·U). Once the factor is
//	known, solving A·x = b costs O(n²) instead of O(n³), the determinant
//	falls out of the factor diagonal, and the inverse out of a triangular
//	inversion.
//
// ✨ Operation families — each in three ownership variants:
//
//	family       borrowing   consuming      in-place
//	decompose    Cholesky    CholeskyInto   CholeskyMut
//	factorize    Factorize   FactorizeInto  —
//	solve        Solve       SolveInto      SolveMut
//	invert       Inverse     InverseInto    —
//	determinant  Det         DetInto        —
//
// Variants differ ONLY in allocation behavior, never numerically: every
// borrowing form is "deep-copy the input, call the consuming form", so the
// two can never diverge. Consuming forms take ownership of the input
// buffer — the caller must not reuse it after a successful call.
//
// The direct (non-factorized) Solve, Inverse and Det factorize with the
// fixed default orientation Upper: the caller-supplied matrix is assumed to
// hold its meaningful data in the upper triangle. Callers whose data lives
// in the lower triangle use Factorize(a, dense.Lower) explicitly and work
// with the Factorization record.
//
// ⚙️ Usage:
//
//	a, _ := dense.NewDenseFromRows([][]float64{
//	    {4, 12, -16},
//	    {12, 37, -43},
//	    {-16, -43, 98},
//	})
//
//	// Obtain L
//	l, _ := cholesky.Cholesky(a, dense.Lower)
//
//	// Factor once, reuse
//	f, _ := cholesky.Factorize(a, dense.Upper)
//	det := f.Det()
//	x, _ := f.Solve(b)
//	inv, _ := f.Inverse()
//
// Errors are values: ErrNotSquare, ErrInvalidLayout and
// ErrNotPositiveDefinite classify every failure, with typed wrappers
// carrying the offending dimensions or the failing leading-minor index.
// See errors.go for the matching idioms.
//
// Performance:
//
//   - Factorization: O(n³/3) time, in place.
//   - Solve: O(n²) per right-hand side, allocation-free in the Mut form.
//   - Determinant: O(n) over the factor diagonal, overflow-safe
//     (log-sum-exp of squared magnitudes, never a naive product).
package cholesky
