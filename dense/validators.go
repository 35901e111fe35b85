// SPDX-License-Identifier: MIT
// Package: dense
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/symmetry checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package dense

import (
	"math"

	"github.com/elsuizo/ndarray-linalg/scalar"
)

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T scalar.Scalar](m *Dense[T]) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return ErrNilMatrix // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (caller must ensure, typically via ValidateNotNil).
//
// Errors: ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare[T scalar.Scalar](m *Dense[T]) error {
	// Check the square condition explicitly.
	if m.r != m.c {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSquareNonNil — composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSquareNonNil[T scalar.Scalar](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Errors: ErrNilMatrix on nil vectors, ErrDimensionMismatch on wrong length.
// Complexity: O(1).
func ValidateVecLen[T scalar.Scalar](x []T, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return ErrNilMatrix // we reuse the existing sentinel for "nil argument"
	}
	// Check the exact expected length.
	if len(x) != n {
		return ErrDimensionMismatch // vector length must match the system dimension
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T scalar.Scalar](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateTriangle ensures tri is one of the two admitted orientations.
// Errors: ErrBadTriangle.
// Complexity: O(1).
func ValidateTriangle(tri Triangle) error {
	if !tri.Valid() {
		return ErrBadTriangle
	}

	return nil
}

// ValidateSymmetric checks A is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j. Float64-only: the Jacobi solver that
// consumes this check is real-symmetric.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch on structural issues,
// ErrNaNInf on a non-finite tol, ErrAsymmetry on violation.
// Complexity: O(n²), Space O(1).
func ValidateSymmetric(m *Dense[float64], tol float64) error {
	// Guard nil first.
	if m == nil {
		return ErrNilMatrix // avoid dereferencing nil
	}
	// Check the square condition explicitly.
	if m.r != m.c {
		return ErrDimensionMismatch // propagate dimension sentinel
	}
	// Normalize tolerance to a non-negative finite value.
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return ErrNaNInf // invalid tolerance is a numeric policy violation
	}
	if tol < 0 {
		tol = -tol
	}

	// Early return path: a 1×1 matrix is trivially symmetric.
	n := m.r
	if n <= 1 {
		return nil // nothing to compare
	}

	// Scan the strict upper triangle once. Deterministic i→j order ensures
	// reproducible short-circuiting behavior.
	var i, j int
	for i = 0; i < n; i++ { // fixed row loop
		for j = i + 1; j < n; j++ { // scan only upper triangle
			if math.Abs(m.data[i*m.stride+j]-m.data[j*m.stride+i]) > tol {
				return ErrAsymmetry // caller may wrap with an operation tag
			}
		}
	}

	return nil
}
