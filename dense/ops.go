// SPDX-License-Identifier: MIT
// Package dense: derived matrix operations on Dense values.
// All functions perform strict fail-fast validation, never mutate their
// inputs, and allocate exactly one contiguous result.

package dense

import (
	"fmt"

	"github.com/elsuizo/ndarray-linalg/scalar"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opTranspose = "ConjTranspose"
	opIdentity  = "Identity"
	opEigen     = "Jacobi"
)

// opErrorf wraps err with an operation tag, preserving the original error
// via %w so call sites still match sentinels with errors.Is.
// Use only when err != nil to avoid wrapping a nil cause.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ConjTranspose returns a new matrix holding the conjugate transpose of m:
// out[j,i] = conj(m[i,j]). For float64 elements this is the plain transpose.
//
// Implementation:
//   - Stage 1: validate m non-nil; allocate Dense(cols, rows).
//   - Stage 2: flat i→j copy with axis swap and per-element conjugation.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func ConjTranspose[T scalar.Scalar](m *Dense[T]) (*Dense[T], error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions
	res, err := NewDense[T](m.c, m.r)
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	// data[i*stride + j] → res.data[j*rows + i], conjugated
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.stride
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = scalar.Conj(m.data[baseSrc+j])
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: validate A, B non-nil and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j triple loop with row-major strides, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i→k→j loop order; results are stable across runs.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T scalar.Scalar](a, b *Dense[T]) (*Dense[T], error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	// Allocate result Dense
	res, err := NewDense[T](a.r, b.c)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}

	var (
		i, j, k                            int // loop iterators
		rowOffsetA, rowOffsetB, rowOffsetR int // flat row bases
		av                                 T
		zero                               T
	)
	// row-major multiplication into res.data
	for i = 0; i < a.r; i++ {
		rowOffsetA = i * a.stride
		rowOffsetR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowOffsetA+k]
			if av == zero {
				continue // skip zero for performance
			}
			rowOffsetB = k * b.stride
			for j = 0; j < b.c; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order, one pass per row with flat indexing.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec[T scalar.Scalar](m *Dense[T], x []T) ([]T, error) {
	// Validate m is not nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opMatVec, err)
	}
	// Validate x is not nil and matches the number of columns.
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, opErrorf(opMatVec, err)
	}

	// Prepare result vector y with length rows.
	y := make([]T, m.r)

	var (
		i, j, base int
		acc, xv    T
		zero       T
	)
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		acc = zero                // reset accumulator per row
		base = i * m.stride       // flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			xv = x[j]       // read x(j) once per iteration
			if xv != zero { // skip zero multiplications
				acc += m.data[base+j] * xv // accumulate a(i,j)*x(j)
			}
		}
		y[i] = acc // store y(i)
	}

	return y, nil
}

// Identity returns the n×n identity matrix.
// Errors: ErrBadShape on n <= 0.
// Complexity: O(n²) time and memory.
func Identity[T scalar.Scalar](n int) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, opErrorf(opIdentity, err)
	}
	one := scalar.FromReal[T](1)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}
