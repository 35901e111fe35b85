// SPDX-License-Identifier: MIT

// Package cholesky: the Factorization record.
// The record is the named holder of {triangular factor, orientation}. It is
// constructed only by Factorize/FactorizeInto — never with unvalidated
// data — and is immutable afterwards: operations either read it, consume it
// (taking over its buffer), or work on a copy of its buffer.
package cholesky

import (
	"github.com/elsuizo/ndarray-linalg/dense"
	"github.com/elsuizo/ndarray-linalg/scalar"
)

// DefaultTriangle is the fixed orientation the direct (non-factorized)
// Solve, Inverse and Det entry points factorize with: the caller-supplied
// matrix is assumed to store its meaningful data in the upper triangle.
const DefaultTriangle = dense.Upper

// Factorization is the Cholesky decomposition of a Hermitian (or real
// symmetric) positive-definite matrix: the factor L from A = L·Lᴴ when
// Uplo() == dense.Lower, or U from A = Uᴴ·U when Uplo() == dense.Upper.
//
// Only the triangle named by the orientation tag is mathematically
// meaningful; the opposite triangle of the factor buffer holds explicit
// zeros and must not be interpreted.
type Factorization[T scalar.Scalar] struct {
	factor *dense.Dense[T] // owned triangular factor, square, contiguous
	uplo   dense.Triangle  // which triangle of factor holds the data
}

// Factor exposes the owned factor matrix. The buffer is shared, not copied;
// treat it as read-only — mutating it invalidates every later operation on
// the record.
// Complexity: O(1).
func (f *Factorization[T]) Factor() *dense.Dense[T] {
	return f.factor
}

// Uplo reports which triangle of Factor() holds the factor.
// Complexity: O(1).
func (f *Factorization[T]) Uplo() dense.Triangle {
	return f.uplo
}

// IntoLower returns L from the decomposition A = L·Lᴴ, consuming the record.
//
// If the record was factorized with dense.Lower, the owned factor buffer is
// returned as is (zero-copy). Otherwise the conjugate transpose of the
// stored U is materialized, an O(n²) transform.
// Complexity: O(1) when orientation matches, O(n²) otherwise.
func (f *Factorization[T]) IntoLower() *dense.Dense[T] {
	if f.uplo == dense.Lower {
		return f.factor
	}
	// Conjugate transpose of a constructed record's factor cannot fail:
	// the factor is non-nil by construction.
	m, _ := dense.ConjTranspose(f.factor)

	return m
}

// IntoUpper returns U from the decomposition A = Uᴴ·U, consuming the record.
//
// If the record was factorized with dense.Upper, the owned factor buffer is
// returned as is (zero-copy). Otherwise the conjugate transpose of the
// stored L is materialized, an O(n²) transform.
// Complexity: O(1) when orientation matches, O(n²) otherwise.
func (f *Factorization[T]) IntoUpper() *dense.Dense[T] {
	if f.uplo == dense.Upper {
		return f.factor
	}
	m, _ := dense.ConjTranspose(f.factor)

	return m
}
