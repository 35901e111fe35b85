// SPDX-License-Identifier: MIT
// Package kernel: in-place inversion of a Cholesky-factored buffer.
// Two classical stages: invert the triangular factor in place, then form the
// triangular product that yields one triangle of the full inverse.

package kernel

import (
	"github.com/elsuizo/ndarray-linalg/dense"
	"github.com/elsuizo/ndarray-linalg/scalar"
)

// CholeskyInvert computes inv(A) in place from the factored buffer a
// produced by Cholesky with the same uplo. Only the triangle named by uplo
// is written; the caller mirrors it afterwards to materialize the full
// Hermitian inverse.
//
// Implementation:
//   - Stage 1 (triangular inversion): W = factor⁻¹, in place, column by
//     column against the already inverted leading (Upper) or trailing
//     (Lower) block.
//   - Stage 2 (triangular product): Upper: inv(A) = W·Wᴴ from A = Uᴴ·U;
//     Lower: inv(A) = Wᴴ·W from A = L·Lᴴ. Fixed column order reuses the
//     buffer without workspace.
//
// Inputs (all assumed pre-validated by the caller):
//   - uplo: orientation the factor was computed with.
//   - n:    matrix order; a holds the factor with row stride lda ≥ n.
//
// Determinism:
//   - Fixed column orders in both stages.
//
// Complexity:
//   - Time O(n³/3), Space O(1). In place; no allocation.
//
// Notes:
//   - A valid Cholesky factor has strictly positive real diagonal entries,
//     so the triangular inversion cannot encounter a zero pivot; this
//     routine therefore has no failure mode.
func CholeskyInvert[T scalar.Scalar](uplo dense.Triangle, n int, a []T, lda int) {
	var (
		i, j, k int
		inv     T // inverted diagonal entry
		s       T // accumulator
	)
	if uplo == dense.Upper {
		// Stage 1: W = U⁻¹ in place (upper triangular inversion).
		for j = 0; j < n; j++ {
			inv = scalar.FromReal[T](1) / a[j*lda+j]
			a[j*lda+j] = inv
			// Column j above the diagonal: multiply by the already inverted
			// leading block, then scale by -1/u_jj. Ascending i keeps the
			// not-yet-updated entries available on the right.
			for i = 0; i < j; i++ {
				s = 0
				for k = i; k < j; k++ {
					s += a[i*lda+k] * a[k*lda+j]
				}
				a[i*lda+j] = s
			}
			for i = 0; i < j; i++ {
				a[i*lda+j] = -inv * a[i*lda+j]
			}
		}
		// Stage 2: inv(A)[i,j] = Σ_{k≥j} W[i,k]·conj(W[j,k]) for i ≤ j.
		// Column-ascending, row-ascending order only reads positions not yet
		// overwritten in this stage.
		for j = 0; j < n; j++ {
			for i = 0; i <= j; i++ {
				s = 0
				for k = j; k < n; k++ {
					s += a[i*lda+k] * scalar.Conj(a[j*lda+k])
				}
				a[i*lda+j] = s
			}
		}

		return
	}

	// Stage 1: W = L⁻¹ in place (lower triangular inversion), trailing block
	// first so each column multiplies an already inverted block.
	for j = n - 1; j >= 0; j-- {
		inv = scalar.FromReal[T](1) / a[j*lda+j]
		a[j*lda+j] = inv
		// Column j below the diagonal; descending i keeps the not-yet-updated
		// entries available above.
		for i = n - 1; i > j; i-- {
			s = 0
			for k = j + 1; k <= i; k++ {
				s += a[i*lda+k] * a[k*lda+j]
			}
			a[i*lda+j] = s
		}
		for i = j + 1; i < n; i++ {
			a[i*lda+j] = -inv * a[i*lda+j]
		}
	}
	// Stage 2: inv(A)[i,j] = Σ_{k≥i} conj(W[k,i])·W[k,j] for i ≥ j.
	for j = 0; j < n; j++ {
		for i = j; i < n; i++ {
			s = 0
			for k = i; k < n; k++ {
				s += scalar.Conj(a[k*lda+i]) * a[k*lda+j]
			}
			a[i*lda+j] = s
		}
	}
}
