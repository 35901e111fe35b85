// SPDX-License-Identifier: MIT
// Package scalar: the Scalar constraint and its element operations.
// This file intentionally contains ONLY the constraint and pure per-element
// helpers. Containers live in dense/, kernels in kernel/.

package scalar

import (
	"math"
	"math/cmplx"
)

// Scalar is the element-type constraint for every matrix and kernel in this
// library. Exactly two element types are admitted; there is no mixed
// precision and no integer specialization.
//
// Complexity notes: all package functions over Scalar are O(1).
type Scalar interface {
	float64 | complex128
}

// Conj returns the complex conjugate of v.
// For float64 the conjugate is v itself.
// Complexity: O(1).
func Conj[T Scalar](v T) T {
	switch x := any(v).(type) {
	case complex128:
		return any(cmplx.Conj(x)).(T)
	default:
		return v // real scalars are self-conjugate
	}
}

// Abs returns |v| as the associated real type (float64).
// Complexity: O(1).
func Abs[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return math.Abs(x)
	case complex128:
		return cmplx.Abs(x)
	}

	return 0 // unreachable: Scalar admits exactly two types
}

// AbsSq returns |v|² as the associated real type (float64).
// Preferred over Abs(v)*Abs(v): it avoids the square root entirely and is
// the exact quantity the determinant reduction ln(|d|²) consumes.
// Complexity: O(1).
func AbsSq[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return x * x
	case complex128:
		return real(x)*real(x) + imag(x)*imag(x)
	}

	return 0 // unreachable: Scalar admits exactly two types
}

// Real returns the real part of v as float64.
// Complexity: O(1).
func Real[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return x
	case complex128:
		return real(x)
	}

	return 0 // unreachable: Scalar admits exactly two types
}

// FromReal lifts a float64 into the scalar type T (imaginary part zero for
// complex128). It is the inverse of Real on the real axis.
// Complexity: O(1).
func FromReal[T Scalar](r float64) T {
	var zero T
	switch any(zero).(type) {
	case complex128:
		return any(complex(r, 0)).(T)
	default:
		return any(r).(T)
	}
}

// IsNaN reports whether v has a NaN component (either axis for complex128).
// Used by ingestion-time numeric-policy checks in dense/.
// Complexity: O(1).
func IsNaN[T Scalar](v T) bool {
	switch x := any(v).(type) {
	case float64:
		return math.IsNaN(x)
	case complex128:
		return math.IsNaN(real(x)) || math.IsNaN(imag(x))
	}

	return false // unreachable: Scalar admits exactly two types
}

// IsInf reports whether v has an infinite component (either axis for
// complex128).
// Complexity: O(1).
func IsInf[T Scalar](v T) bool {
	switch x := any(v).(type) {
	case float64:
		return math.IsInf(x, 0)
	case complex128:
		return math.IsInf(real(x), 0) || math.IsInf(imag(x), 0)
	}

	return false // unreachable: Scalar admits exactly two types
}
