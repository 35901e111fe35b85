// SPDX-License-Identifier: MIT

// Package dense: domain types shared by the container, the triangular
// utilities and the backend kernels. This file intentionally contains ONLY
// domain-facing types; errors live in errors.go per the global conventions.
package dense

// Triangle declares which triangle of a square buffer holds meaningful data:
// the caller-populated triangle on input to a factorization, the factor
// triangle on output. Exactly two values exist; there is no "full" or "none"
// variant. The tag is carried alongside every Cholesky factor so later
// operations reinterpret the stored triangle without re-deriving it.
type Triangle byte

const (
	// Upper selects the upper triangle (i ≤ j).
	Upper Triangle = 'U'
	// Lower selects the lower triangle (i ≥ j).
	Lower Triangle = 'L'
)

// Valid reports whether t is one of the two admitted orientations.
// Complexity: O(1).
func (t Triangle) Valid() bool {
	return t == Upper || t == Lower
}

// Other returns the opposite orientation. Calling Other on an invalid tag
// returns the tag unchanged; callers are expected to Validate first.
// Complexity: O(1).
func (t Triangle) Other() Triangle {
	switch t {
	case Upper:
		return Lower
	case Lower:
		return Upper
	}

	return t
}

// String implements fmt.Stringer for diagnostics.
func (t Triangle) String() string {
	switch t {
	case Upper:
		return "Upper"
	case Lower:
		return "Lower"
	}

	return "Triangle(invalid)"
}
