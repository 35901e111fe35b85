// SPDX-License-Identifier: MIT
// Package kernel: in-place two-triangle substitution against a Cholesky factor.

package kernel

import (
	"github.com/elsuizo/ndarray-linalg/dense"
	"github.com/elsuizo/ndarray-linalg/scalar"
)

// CholeskySolve solves A·x = b in place on b, given the already factored
// buffer a produced by Cholesky with the same uplo. For Lower (A = L·Lᴴ) it
// runs forward substitution with L then backward substitution with Lᴴ; for
// Upper (A = Uᴴ·U) forward with Uᴴ then backward with U.
//
// Inputs (all assumed pre-validated by the caller):
//   - uplo: orientation the factor was computed with.
//   - n:    system order; len(b) == n.
//   - a:    factored flat buffer, row stride lda ≥ n.
//   - b:    right-hand side, overwritten with the solution x.
//
// Determinism:
//   - Fixed forward i↑ then backward i↓ substitution order.
//
// Complexity:
//   - Time O(n²), Space O(1). In place; no allocation.
//
// Notes:
//   - Factor diagonal entries are real and strictly positive by
//     construction, so the divisions cannot hit zero.
func CholeskySolve[T scalar.Scalar](uplo dense.Triangle, n int, a []T, lda int, b []T) {
	var (
		i, k int
		s    T
	)
	if uplo == dense.Lower {
		// Forward: L·y = b, top-down.
		for i = 0; i < n; i++ {
			s = b[i]
			for k = 0; k < i; k++ {
				s -= a[i*lda+k] * b[k]
			}
			b[i] = s / a[i*lda+i]
		}
		// Backward: Lᴴ·x = y, bottom-up; (Lᴴ)[i,k] = conj(L[k,i]).
		for i = n - 1; i >= 0; i-- {
			s = b[i]
			for k = i + 1; k < n; k++ {
				s -= scalar.Conj(a[k*lda+i]) * b[k]
			}
			b[i] = s / a[i*lda+i]
		}

		return
	}

	// Forward: Uᴴ·y = b, top-down; (Uᴴ)[i,k] = conj(U[k,i]).
	for i = 0; i < n; i++ {
		s = b[i]
		for k = 0; k < i; k++ {
			s -= scalar.Conj(a[k*lda+i]) * b[k]
		}
		b[i] = s / a[i*lda+i]
	}
	// Backward: U·x = y, bottom-up.
	for i = n - 1; i >= 0; i-- {
		s = b[i]
		for k = i + 1; k < n; k++ {
			s -= a[i*lda+k] * b[k]
		}
		b[i] = s / a[i*lda+i]
	}
}
