// SPDX-License-Identifier: MIT
// Package cholesky: decompose and factorize entry points.
// The in-place form (CholeskyMut) is the single numerical implementation;
// the consuming form wraps it, the borrowing form deep-copies then delegates
// to the consuming form. The two can therefore never diverge numerically.

package cholesky

import (
	"github.com/elsuizo/ndarray-linalg/dense"
	"github.com/elsuizo/ndarray-linalg/kernel"
	"github.com/elsuizo/ndarray-linalg/scalar"
)

// validateFactorizable runs every structural check the backend boundary
// requires, in fixed order: nil → orientation → square → layout. All checks
// happen before any numeric work; on the first violation the matching
// sentinel (or typed payload error) is returned and the buffer is untouched.
// Complexity: O(1).
func validateFactorizable[T scalar.Scalar](a *dense.Dense[T], uplo dense.Triangle) error {
	if a == nil {
		return ErrNilMatrix
	}
	if !uplo.Valid() {
		return ErrBadTriangle
	}
	if a.Rows() != a.Cols() {
		return &NotSquareError{Rows: a.Rows(), Cols: a.Cols()}
	}
	if !a.IsContiguous() {
		return ErrInvalidLayout
	}

	return nil
}

// CholeskyMut computes the Cholesky decomposition of the Hermitian (or real
// symmetric) positive-definite matrix in place, writing the factor (L or U
// according to uplo) into a.
//
// If uplo is dense.Upper, the decomposition A = Uᴴ·U is computed from the
// upper triangular portion of a and U is written there. If uplo is
// dense.Lower, A = L·Lᴴ is computed from the lower triangular portion and L
// is written there. On success the opposite triangle is zeroed: the buffer's
// logical view narrows to the factor triangle.
//
// Implementation:
//   - Stage 1: validateFactorizable (nil → orientation → square → layout).
//   - Stage 2: kernel.Cholesky in place over the named triangle; on failure
//     the exact 1-based leading-minor index is propagated.
//   - Stage 3: dense.ZeroTriangle narrows the buffer to the factor triangle.
//
// Errors:
//   - ErrNilMatrix, ErrBadTriangle, ErrNotSquare (typed, with dimensions),
//     ErrInvalidLayout — all before any numeric work;
//   - ErrNotPositiveDefinite (typed, with the failing leading minor). After
//     this error the buffer contents are unspecified and unusable.
//
// Complexity:
//   - Time O(n³/3), Space O(1).
func CholeskyMut[T scalar.Scalar](a *dense.Dense[T], uplo dense.Triangle) error {
	// Validate everything before the backend boundary.
	if err := validateFactorizable(a, uplo); err != nil {
		return err
	}

	// In-place factorization over the named triangle.
	if minor, ok := kernel.Cholesky(uplo, a.Rows(), a.RawData(), a.Stride()); !ok {
		return &NotPositiveDefiniteError{LeadingMinor: minor}
	}

	// Narrow the logical view: the opposite triangle becomes explicit zeros.
	return dense.ZeroTriangle(a, uplo)
}

// CholeskyInto computes the Cholesky decomposition, consuming a: the factor
// is written into a's own buffer and a is returned. The caller must not
// reuse a through any older reference after a successful call.
//
// Semantics and errors are exactly those of CholeskyMut.
// Complexity: O(n³/3), no allocation.
func CholeskyInto[T scalar.Scalar](a *dense.Dense[T], uplo dense.Triangle) (*dense.Dense[T], error) {
	if err := CholeskyMut(a, uplo); err != nil {
		return nil, err
	}

	return a, nil
}

// Cholesky computes the Cholesky decomposition without touching a: the input
// is deep-copied and the consuming form runs on the copy. Borrowing and
// consuming forms are therefore numerically identical by construction.
//
// Semantics and errors are exactly those of CholeskyMut.
// Complexity: O(n³/3) time, O(n²) extra memory for the result.
func Cholesky[T scalar.Scalar](a *dense.Dense[T], uplo dense.Triangle) (*dense.Dense[T], error) {
	// Guard before Clone: borrowing forms must not dereference nil.
	if a == nil {
		return nil, ErrNilMatrix
	}

	return CholeskyInto(a.Clone(), uplo)
}

// FactorizeInto computes the Cholesky decomposition, consuming a, and wraps
// the factor together with its orientation into a Factorization record. The
// record is the only constructor path for Factorization: it never holds
// unvalidated data.
//
// Errors: those of CholeskyMut, returned verbatim.
// Complexity: O(n³/3), no allocation beyond the record header.
func FactorizeInto[T scalar.Scalar](a *dense.Dense[T], uplo dense.Triangle) (*Factorization[T], error) {
	factor, err := CholeskyInto(a, uplo)
	if err != nil {
		return nil, err
	}

	return &Factorization[T]{factor: factor, uplo: uplo}, nil
}

// Factorize computes the Cholesky decomposition without touching a (the
// input is deep-copied) and returns the Factorization record for reuse
// across solve/invert/determinant calls.
//
// Errors: those of CholeskyMut, returned verbatim.
// Complexity: O(n³/3) time, O(n²) extra memory for the owned factor.
func Factorize[T scalar.Scalar](a *dense.Dense[T], uplo dense.Triangle) (*Factorization[T], error) {
	// Guard before Clone: borrowing forms must not dereference nil.
	if a == nil {
		return nil, ErrNilMatrix
	}

	return FactorizeInto(a.Clone(), uplo)
}
