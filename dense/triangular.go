// SPDX-License-Identifier: MIT
// Package dense: triangular utilities for square buffers.
// ZeroTriangle narrows a buffer to one triangle (the opposite triangle is
// cleared); FillHermitian does the reverse, mirroring the populated triangle
// across the diagonal with conjugation to materialize a full Hermitian
// matrix. Both operate in place on the receiver buffer.

package dense

import (
	"github.com/elsuizo/ndarray-linalg/scalar"
)

// ZeroTriangle zeroes the triangle opposite to keep, leaving only the named
// triangle (diagonal included) populated. This is how a factorization result
// is narrowed to its logical triangular view: whatever the opposite triangle
// held before becomes explicit zeros instead of stale input data.
//
// Implementation:
//   - Stage 1: validate m non-nil, square, and keep ∈ {Upper, Lower}.
//   - Stage 2: fixed i→j scan clearing the strict opposite triangle.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrBadTriangle.
//
// Complexity:
//   - Time O(n²), Space O(1).
func ZeroTriangle[T scalar.Scalar](m *Dense[T], keep Triangle) error {
	// Validate structure first; fail before touching the buffer.
	if err := ValidateSquareNonNil(m); err != nil {
		return err
	}
	if err := ValidateTriangle(keep); err != nil {
		return err
	}

	n := m.r
	var zero T
	var i, j int
	if keep == Upper {
		// Clear the strict lower triangle.
		for i = 1; i < n; i++ {
			for j = 0; j < i; j++ {
				m.data[i*m.stride+j] = zero
			}
		}
	} else {
		// Clear the strict upper triangle.
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				m.data[i*m.stride+j] = zero
			}
		}
	}

	return nil
}

// FillHermitian mirrors the triangle named by tri into the opposite triangle
// with conjugation, so that afterwards m[j,i] == conj(m[i,j]) holds for the
// whole buffer and m is a full Hermitian (real: symmetric) matrix. The
// diagonal is left untouched.
//
// Implementation:
//   - Stage 1: validate m non-nil, square, and tri ∈ {Upper, Lower}.
//   - Stage 2: fixed i→j scan over the strict source triangle, writing the
//     conjugate into the mirrored position.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrBadTriangle.
//
// Complexity:
//   - Time O(n²), Space O(1).
func FillHermitian[T scalar.Scalar](m *Dense[T], tri Triangle) error {
	// Validate structure first; fail before touching the buffer.
	if err := ValidateSquareNonNil(m); err != nil {
		return err
	}
	if err := ValidateTriangle(tri); err != nil {
		return err
	}

	n := m.r
	var i, j int
	if tri == Upper {
		// Source is the strict upper triangle; mirror down.
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				m.data[j*m.stride+i] = scalar.Conj(m.data[i*m.stride+j])
			}
		}
	} else {
		// Source is the strict lower triangle; mirror up.
		for i = 1; i < n; i++ {
			for j = 0; j < i; j++ {
				m.data[j*m.stride+i] = scalar.Conj(m.data[i*m.stride+j])
			}
		}
	}

	return nil
}
