// SPDX-License-Identifier: MIT
// Package kernel: in-place Cholesky factorization over a flat buffer.

package kernel

import (
	"math"

	"github.com/elsuizo/ndarray-linalg/dense"
	"github.com/elsuizo/ndarray-linalg/scalar"
)

// Cholesky factorizes the Hermitian positive-definite matrix stored in the
// triangle of a named by uplo, in place. For Upper it computes U with
// A = Uᴴ·U; for Lower it computes L with A = L·Lᴴ. Only the named triangle
// is read and written; the opposite triangle passes through untouched.
//
// Implementation:
//   - Stage 1: column j: subtract the accumulated squared magnitudes from
//     the diagonal entry; a non-positive remainder means the leading j+1
//     principal minor is not positive — report it and stop.
//   - Stage 2: scale the remaining column (Lower) or row segment (Upper) by
//     the new diagonal entry.
//
// Inputs:
//   - uplo: which triangle of a holds the matrix (and receives the factor).
//   - n:    matrix order (assumed > 0).
//   - a:    flat row-major buffer, len(a) ≥ (n-1)*lda+n (assumed).
//   - lda:  row stride, lda ≥ n (assumed).
//
// Returns:
//   - minor: 1-based order of the first non-positive leading principal
//     minor when ok == false; 0 when ok == true.
//   - ok:    true iff the factorization completed.
//
// Determinism:
//   - Fixed j→(k,i) loop order; identical inputs give identical factors.
//
// Complexity:
//   - Time O(n³/3), Space O(1). In place; no allocation.
//
// Notes:
//   - Diagonal entries of the factor are written as real values (imaginary
//     part zero for complex128), as the algebra guarantees.
//   - On failure the buffer contents are unspecified; no partial factor is
//     usable, matching the contract of the calling layer.
func Cholesky[T scalar.Scalar](uplo dense.Triangle, n int, a []T, lda int) (minor int, ok bool) {
	var (
		j, i, k int     // loop iterators
		d       float64 // real diagonal remainder
		s       T       // accumulator for off-diagonal updates
		dj      T       // factor diagonal entry as a scalar
	)
	if uplo == dense.Lower {
		// A = L·Lᴴ, L stored in the lower triangle.
		for j = 0; j < n; j++ {
			// d = Re(a[j,j]) − Σ_{k<j} |L[j,k]|²
			d = scalar.Real(a[j*lda+j])
			for k = 0; k < j; k++ {
				d -= scalar.AbsSq(a[j*lda+k])
			}
			if d <= 0 || math.IsNaN(d) {
				return j + 1, false
			}
			dj = scalar.FromReal[T](math.Sqrt(d))
			a[j*lda+j] = dj
			// Column below the diagonal: L[i,j] = (a[i,j] − Σ L[i,k]·conj(L[j,k])) / L[j,j]
			for i = j + 1; i < n; i++ {
				s = a[i*lda+j]
				for k = 0; k < j; k++ {
					s -= a[i*lda+k] * scalar.Conj(a[j*lda+k])
				}
				a[i*lda+j] = s / dj
			}
		}

		return 0, true
	}

	// A = Uᴴ·U, U stored in the upper triangle.
	for j = 0; j < n; j++ {
		// d = Re(a[j,j]) − Σ_{k<j} |U[k,j]|²
		d = scalar.Real(a[j*lda+j])
		for k = 0; k < j; k++ {
			d -= scalar.AbsSq(a[k*lda+j])
		}
		if d <= 0 || math.IsNaN(d) {
			return j + 1, false
		}
		dj = scalar.FromReal[T](math.Sqrt(d))
		a[j*lda+j] = dj
		// Row segment right of the diagonal:
		// U[j,i] = (a[j,i] − Σ conj(U[k,j])·U[k,i]) / U[j,j]
		for i = j + 1; i < n; i++ {
			s = a[j*lda+i]
			for k = 0; k < j; k++ {
				s -= scalar.Conj(a[k*lda+j]) * a[k*lda+i]
			}
			a[j*lda+i] = s / dj
		}
	}

	return 0, true
}
