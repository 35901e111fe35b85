// SPDX-License-Identifier: MIT
// Package cholesky: determinant of a positive-definite matrix from its
// Cholesky factor. det(A) = |det(factor)|², reduced in log space so that
// large orders neither overflow nor underflow the running product.

package cholesky

import (
	"math"

	"github.com/elsuizo/ndarray-linalg/dense"
	"github.com/elsuizo/ndarray-linalg/scalar"
)

// Det computes det(A) for the matrix this record factorized. The factor's
// diagonal entries are mapped to ln(|dᵢᵢ|²), summed, and the sum is
// exponentiated; the result is a non-negative real scalar. Infallible: a
// constructed record always holds a well-formed factor.
// Determinism: fixed ascending diagonal order. Complexity: O(n).
func (f *Factorization[T]) Det() float64 {
	n := f.factor.Rows()
	data := f.factor.RawData()
	stride := f.factor.Stride()

	// Sum of ln(|dᵢᵢ|²) over the factor diagonal.
	var (
		i     int
		lnDet float64
	)
	for i = 0; i < n; i++ {
		lnDet += math.Log(scalar.AbsSq(data[i*stride+i]))
	}

	return math.Exp(lnDet)
}

// DetInto computes det(A), consuming the record. The reduction itself never
// writes, so this is numerically identical to Det; the method exists so a
// caller handing off its last use of the record keeps the same call shape as
// the other consuming forms.
func (f *Factorization[T]) DetInto() float64 {
	return f.Det()
}

// Det computes det(A) for a plain matrix a, borrowing a: the matrix is deep
// copied, factorized with DefaultTriangle, and the factor diagonal reduced.
// Errors: those of Cholesky. Complexity: O(n³/3) time, O(n²) extra memory.
func Det[T scalar.Scalar](a *dense.Dense[T]) (float64, error) {
	f, err := Factorize(a, DefaultTriangle)
	if err != nil {
		return 0, err
	}

	return f.Det(), nil
}

// DetInto computes det(A) for a plain matrix a, consuming a: factorization
// runs in a's backing array and the diagonal is reduced in place. On
// factorization failure a is left partially overwritten and the error is
// re-raised verbatim.
// Errors: those of CholeskyInto. Complexity: O(n³/3), Space O(1).
func DetInto[T scalar.Scalar](a *dense.Dense[T]) (float64, error) {
	f, err := FactorizeInto(a, DefaultTriangle)
	if err != nil {
		return 0, err
	}

	return f.DetInto(), nil
}
