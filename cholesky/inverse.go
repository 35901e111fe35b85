// SPDX-License-Identifier: MIT
// Package cholesky: inversion of a positive-definite matrix through its
// Cholesky factor. The consuming form on the record is the single numerical
// implementation; the borrowing form clones first, the direct forms
// factorize with DefaultTriangle and delegate.

package cholesky

import (
	"github.com/elsuizo/ndarray-linalg/dense"
	"github.com/elsuizo/ndarray-linalg/kernel"
	"github.com/elsuizo/ndarray-linalg/scalar"
)

// InverseInto computes A⁻¹, consuming the record: the inverse is built in
// the factor's own backing array and that matrix is returned. The record
// must not be used again after a successful call.
//
// Implementation:
//   - Stage 1: kernel.CholeskyInvert inverts the stored triangle (trtri)
//     and multiplies it by its own conjugate transpose (lauum), leaving the
//     stored triangle of A⁻¹ in place.
//   - Stage 2: dense.FillHermitian mirrors the stored triangle so the
//     returned matrix carries the full Hermitian inverse.
//
// Errors:
//   - ErrNotSquare (typed, with dimensions) if the stored factor's shape is
//     inconsistent. Defensive: cannot occur for a record built by
//     Factorize/FactorizeInto.
//
// Complexity:
//   - Time O(n³), Space O(1).
func (f *Factorization[T]) InverseInto() (*dense.Dense[T], error) {
	a := f.factor

	// Defensive shape check; the constructor path never violates it.
	if a.Rows() != a.Cols() {
		return nil, &NotSquareError{Rows: a.Rows(), Cols: a.Cols()}
	}

	// Invert the triangle in place, then mirror it to a full matrix.
	kernel.CholeskyInvert(f.uplo, a.Rows(), a.RawData(), a.Stride())
	dense.FillHermitian(a, f.uplo)

	return a, nil
}

// Inverse computes A⁻¹ without consuming the record: the factor is deep
// copied and the consuming form runs on the copy, so the record stays valid
// for further solves.
// Complexity: O(n³) time, O(n²) extra memory.
func (f *Factorization[T]) Inverse() (*dense.Dense[T], error) {
	g := &Factorization[T]{factor: f.factor.Clone(), uplo: f.uplo}

	return g.InverseInto()
}

// InverseInto computes A⁻¹ for a plain matrix a, consuming a: factorization
// (with DefaultTriangle) and inversion both run in a's backing array. On
// factorization failure a is left partially overwritten and the error is
// re-raised verbatim.
// Errors: those of CholeskyInto. Complexity: O(n³), Space O(1).
func InverseInto[T scalar.Scalar](a *dense.Dense[T]) (*dense.Dense[T], error) {
	f, err := FactorizeInto(a, DefaultTriangle)
	if err != nil {
		return nil, err
	}

	return f.InverseInto()
}

// Inverse computes A⁻¹ for a plain matrix a, borrowing a: the matrix is deep
// copied, factorized with DefaultTriangle, and inverted in the copy.
// Errors: those of Cholesky. Complexity: O(n³) time, O(n²) extra memory.
func Inverse[T scalar.Scalar](a *dense.Dense[T]) (*dense.Dense[T], error) {
	f, err := Factorize(a, DefaultTriangle)
	if err != nil {
		return nil, err
	}

	return f.InverseInto()
}
