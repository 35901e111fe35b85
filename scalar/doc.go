// Package scalar defines the element-type abstraction shared by every
// numeric kernel in this library.
//
// The scalar package provides:
//
//   - The Scalar constraint admitting exactly float64 and complex128, so
//     every container and kernel is written once and instantiated per type.
//   - Conjugation, magnitude (|z| and |z|²), real-part extraction and
//     real-to-scalar lifting — the operations a Hermitian factorization
//     needs without knowing whether its elements are real or complex.
//   - The associated real type of both element types is float64: every
//     reduction to a magnitude (norms, determinants) lands there.
//
// All functions are pure, deterministic and allocation-free.
package scalar
