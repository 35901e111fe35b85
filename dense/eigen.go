// SPDX-License-Identifier: MIT
// Package dense: Jacobi eigen decomposition for symmetric float64 matrices.
// Used by callers that need spectra of symmetric matrices (e.g. checking a
// candidate matrix for positive-definiteness, or cross-validating a
// determinant against the eigenvalue product).

package dense

import (
	"math"
)

// Jacobi computes eigenvalues and eigenvectors of a symmetric matrix via
// classical Jacobi sweeps.
//
// Implementation:
//   - Stage 1: validate symmetric square input within tol; clone m into a
//     working copy A; initialize the accumulator Q to identity.
//   - Stage 2: repeatedly pick (p,q) with the largest |A[p,q]| in fixed i→j
//     order and apply a Jacobi rotation until max |A[p,q]| < tol.
//
// Inputs:
//   - m: symmetric matrix (within tol); n := m.Rows().
//   - tol: convergence threshold (typ. 1e-9..1e-12 for float64).
//   - maxIter: safety cap on rotations.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix), unsorted.
//   - *Dense[float64]: Q whose columns are the matching eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrNaNInf (bad tol),
//     ErrAsymmetry (not symmetric within tol), ErrEigenFailed (max
//     off-diagonal ≥ tol after maxIter rotations).
//
// Determinism:
//   - Fixed pivot scan and fixed update order produce stable results.
//
// Complexity:
//   - Time O(maxIter * n²) per sweep bookkeeping plus O(n) per rotation,
//     Space O(n²) for the working copy and Q.
func Jacobi(m *Dense[float64], tol float64, maxIter int) ([]float64, *Dense[float64], error) {
	// Validate: not nil; square; symmetric within tol.
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, opErrorf(opEigen, err)
	}

	// Working copy A (contiguous) and orthogonal accumulator Q = I.
	n := m.r
	a := m.Clone()
	qm, err := Identity[float64](n)
	if err != nil {
		return nil, nil, opErrorf(opEigen, err)
	}

	var (
		iter           int     // rotation counter
		i, j, p, q     int     // loop iterators and pivot indices
		base           int     // flat row base
		maxOff, off    float64 // pivot magnitudes
		app, aqq, apq  float64 // pivot-block entries
		aip, aiq       float64 // row temporaries
		newIP, newIQ   float64 // rotated values
		theta, t, c, s float64 // rotation parameters
		qip, qiq       float64 // accumulator temporaries
	)
	for iter = 0; iter < maxIter; iter++ {
		// Find pivot (p,q) maximizing |A[p,q]| over the strict upper triangle.
		maxOff = 0
		for i = 0; i < n; i++ {
			base = i * n
			for j = i + 1; j < n; j++ {
				off = math.Abs(a.data[base+j])
				if off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}

		// Converged: every off-diagonal entry is below tol.
		if maxOff < tol {
			break
		}

		// Rotation parameters from A[p,p], A[q,q], A[p,q].
		app = a.data[p*n+p]
		aqq = a.data[q*n+q]
		apq = a.data[p*n+q]
		if math.Abs(apq) <= tol {
			continue // no-op rotation keeps determinism and avoids blow-ups
		}
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// Apply the rotation to A, updating rows/columns p and q symmetrically.
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip = a.data[i*n+p]
			aiq = a.data[i*n+q]
			newIP = c*aip - s*aiq
			newIQ = s*aip + c*aiq
			a.data[i*n+p], a.data[p*n+i] = newIP, newIP
			a.data[i*n+q], a.data[q*n+i] = newIQ, newIQ
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+q], a.data[q*n+p] = 0, 0

		// Accumulate the rotation into Q.
		for i = 0; i < n; i++ {
			qip = qm.data[i*n+p]
			qiq = qm.data[i*n+q]
			qm.data[i*n+p] = c*qip - s*qiq
			qm.data[i*n+q] = s*qip + c*qiq
		}
	}

	// Final convergence check over the strict upper triangle.
	maxOff = 0
	for i = 0; i < n; i++ {
		base = i * n
		for j = i + 1; j < n; j++ {
			off = math.Abs(a.data[base+j])
			if off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, opErrorf(opEigen, ErrEigenFailed)
	}

	// Extract eigenvalues from the diagonal of A.
	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, qm, nil
}
