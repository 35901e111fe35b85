// Package kernel hosts the in-place numerical backends for the Cholesky
// surface: factorization, two-triangle solve and factored inversion, all
// operating on flat row-major buffers described by {n, lda, orientation}.
//
// The kernel package is a narrow, pre-validated boundary:
//
//   - Callers pass only buffers already confirmed square and addressable
//     (lda ≥ n, len(a) ≥ (n-1)*lda+n). No validation happens below this
//     boundary; the facade in cholesky/ performs it all beforehand.
//   - Numerical failure (loss of positive-definiteness) is signaled by the
//     1-based order of the first non-positive leading principal minor, never
//     by a panic or a partial result the caller might mistake for success.
//   - Every routine touches only the triangle named by its orientation tag;
//     the opposite triangle passes through byte-identical.
//
// All loops use fixed deterministic orders; there is no internal
// parallelism, no allocation and no I/O.
package kernel
