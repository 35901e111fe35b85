// Package ndarraylinalg is a pure-Go toolkit for dense linear algebra on
// Hermitian (or real symmetric) positive-definite matrices, centered on the
// Cholesky factorization: factor once, then solve, invert and take
// determinants off the same triangular factor.
//
// 🚀 What is ndarray-linalg?
//
//	A small, deterministic, zero-cgo library that brings together:
//		• scalar/   — real/complex element abstraction (conjugate, |z|², associated real type)
//		• dense/    — flat row-major matrix container, views, triangular utilities,
//		              matrix products and a Jacobi eigen solver
//		• kernel/   — in-place factorization backends over raw buffers
//		              (Cholesky, two-triangle solve, factored inversion)
//		• cholesky/ — the user-facing surface: the Factorization record and the
//		              borrow / consume / mutate operation families
//
// ✨ Why choose ndarray-linalg?
//
//   - Predictable numerics – fixed loop orders, no hidden parallelism
//   - Errors as values – sentinel errors matched with errors.Is, typed payloads
//     (offending dimensions, failing leading minor) extracted with errors.As
//   - Allocation discipline – every operation family offers a borrowing,
//     a consuming and (where it makes sense) an in-place variant
//   - Pure Go – no cgo, no assembly, no hidden deps
//
// Quick example, factoring A and reusing the factor:
//
//	a, _ := dense.NewDenseFromRows([][]float64{
//	    {4, 12, -16},
//	    {12, 37, -43},
//	    {-16, -43, 98},
//	})
//	f, _ := cholesky.Factorize(a, dense.Lower)
//	det := f.Det()                         // 36
//	x, _ := f.Solve([]float64{4, 13, -11}) // [-2 1 0]
//
// Dive into the package docs of cholesky/ for the full operation matrix and
// ownership rules.
//
//	go get github.com/elsuizo/ndarray-linalg/cholesky
package ndarraylinalg
