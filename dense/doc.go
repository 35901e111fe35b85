// Package dense provides the flat row-major matrix container and the
// generic matrix utilities the factorization layer is built on.
//
// The dense package provides:
//
//   - Dense[T], a rows×cols container over a flat backing slice with an
//     explicit row stride; contiguous matrices have stride == cols, and
//     Submatrix views are the one way to obtain a strided (non-contiguous)
//     layout.
//   - The Triangle orientation tag (Upper | Lower) declaring which triangle
//     of a square buffer carries meaningful data.
//   - Triangular utilities: ZeroTriangle narrows a buffer to one triangle,
//     FillHermitian mirrors the populated triangle (with conjugation) to
//     materialize a full Hermitian matrix.
//   - Derived operations: ConjTranspose, Mul, MatVec and a Jacobi eigen
//     solver for symmetric float64 matrices.
//
// All operations validate fail-fast and return package sentinel errors;
// no function panics on user-triggered conditions.
//
// See the examples in this package and cholesky for usage patterns.
package dense
