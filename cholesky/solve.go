// SPDX-License-Identifier: MIT
// Package cholesky: linear-system solving A·x = b against a Cholesky factor.
// The in-place form on the record is the single numerical implementation;
// the borrowing form copies b first, the direct (non-factorized) forms
// factorize with DefaultTriangle and delegate.

package cholesky

import (
	"github.com/elsuizo/ndarray-linalg/dense"
	"github.com/elsuizo/ndarray-linalg/kernel"
	"github.com/elsuizo/ndarray-linalg/scalar"
)

// SolveMut solves A·x = b in place on b, where A is the matrix this record
// factorized. The solution overwrites b and the same slice is returned.
// Allocation-free.
//
// Implementation:
//   - Stage 1: validate b non-nil with length equal to the matrix order.
//   - Stage 2: kernel.CholeskySolve runs the two triangular substitutions
//     implied by A = L·Lᴴ or A = Uᴴ·U against the stored factor.
//
// Errors:
//   - ErrNilMatrix (nil b), ErrDimensionMismatch (wrong length).
//
// Complexity:
//   - Time O(n²), Space O(1).
func (f *Factorization[T]) SolveMut(b []T) ([]T, error) {
	// Validate the right-hand side against the system order.
	if b == nil {
		return nil, ErrNilMatrix
	}
	if len(b) != f.factor.Rows() {
		return nil, ErrDimensionMismatch
	}

	// Two-triangle substitution in place.
	kernel.CholeskySolve(f.uplo, f.factor.Rows(), f.factor.RawData(), f.factor.Stride(), b)

	return b, nil
}

// SolveInto solves A·x = b, consuming b: the solution is written into b's
// own backing array and the slice is returned. Identical to SolveMut except
// for the documented ownership transfer — the caller must not reuse b
// through any older reference after a successful call.
// Complexity: O(n²), Space O(1).
func (f *Factorization[T]) SolveInto(b []T) ([]T, error) {
	return f.SolveMut(b)
}

// Solve solves A·x = b without touching b: the right-hand side is copied and
// the in-place form runs on the copy.
// Errors: those of SolveMut. Complexity: O(n²) time, O(n) extra memory.
func (f *Factorization[T]) Solve(b []T) ([]T, error) {
	// Guard before copying: a nil b must report ErrNilMatrix, not a
	// zero-length dimension mismatch.
	if b == nil {
		return nil, ErrNilMatrix
	}
	x := make([]T, len(b))
	copy(x, b)

	return f.SolveMut(x)
}

// SolveMut solves A·x = b in place on b for a plain matrix a: a is
// factorized with DefaultTriangle (borrowing a — the input matrix is never
// modified) and the factorization error, if any, is re-raised verbatim.
// Errors: factorization errors of CholeskyMut, then those of
// Factorization.SolveMut. Complexity: O(n³/3) + O(n²).
func SolveMut[T scalar.Scalar](a *dense.Dense[T], b []T) ([]T, error) {
	f, err := Factorize(a, DefaultTriangle)
	if err != nil {
		return nil, err
	}

	return f.SolveMut(b)
}

// SolveInto solves A·x = b for a plain matrix a, consuming b (the solution
// lands in b's backing array). The matrix a itself is borrowed, never
// modified.
// Errors and complexity: those of SolveMut.
func SolveInto[T scalar.Scalar](a *dense.Dense[T], b []T) ([]T, error) {
	f, err := Factorize(a, DefaultTriangle)
	if err != nil {
		return nil, err
	}

	return f.SolveInto(b)
}

// Solve solves A·x = b for a plain matrix a, borrowing both inputs: a is
// factorized on a deep copy and b is copied before substitution.
// Errors and complexity: those of SolveMut, plus O(n) for the copy of b.
func Solve[T scalar.Scalar](a *dense.Dense[T], b []T) ([]T, error) {
	f, err := Factorize(a, DefaultTriangle)
	if err != nil {
		return nil, err
	}

	return f.Solve(b)
}
