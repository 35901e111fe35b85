// SPDX-License-Identifier: MIT
// Package cholesky: sentinel error set and typed payload errors.
// Sentinels are the errors.Is match surface; the typed wrappers carry the
// diagnostic payload the caller needs (offending dimensions, failing leading
// minor) and Is-match their sentinel, so both styles work:
//
//	if errors.Is(err, cholesky.ErrNotPositiveDefinite) { ... }
//	var pd *cholesky.NotPositiveDefiniteError
//	if errors.As(err, &pd) { use pd.LeadingMinor }
//
// Errors are returned verbatim along delegation chains (factorize → solve /
// invert / det): no wrapping, no logging, no suppression at this layer.

package cholesky

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSquare signals that a square matrix was required but the input
	// wasn't. Detected before any backend call.
	ErrNotSquare = errors.New("cholesky: matrix is not square")

	// ErrInvalidLayout signals that the buffer's stride pattern is not one
	// the backend can address directly (a strided Submatrix view; Clone it
	// first). Detected before any backend call.
	ErrInvalidLayout = errors.New("cholesky: unsupported memory layout")

	// ErrNotPositiveDefinite signals backend-reported numerical failure
	// partway through factorization: some leading principal minor is not
	// positive. No partial factor is usable after this error.
	ErrNotPositiveDefinite = errors.New("cholesky: matrix is not positive-definite")

	// ErrNilMatrix indicates that a nil matrix (or nil right-hand side) was
	// passed to an entry point.
	ErrNilMatrix = errors.New("cholesky: nil matrix")

	// ErrBadTriangle signals an orientation tag other than Upper or Lower.
	ErrBadTriangle = errors.New("cholesky: invalid triangle tag")

	// ErrDimensionMismatch indicates a right-hand side whose length differs
	// from the matrix order.
	ErrDimensionMismatch = errors.New("cholesky: dimension mismatch")
)

// NotSquareError reports the offending dimensions of a non-square input.
// It Is-matches ErrNotSquare.
type NotSquareError struct {
	Rows, Cols int
}

// Error implements the error interface.
func (e *NotSquareError) Error() string {
	return fmt.Sprintf("cholesky: matrix is not square: %d×%d", e.Rows, e.Cols)
}

// Is makes errors.Is(err, ErrNotSquare) succeed on wrapped values.
func (e *NotSquareError) Is(target error) bool {
	return target == ErrNotSquare
}

// NotPositiveDefiniteError reports the 1-based order of the first leading
// principal minor found non-positive, propagated verbatim from the backend.
// It Is-matches ErrNotPositiveDefinite.
type NotPositiveDefiniteError struct {
	// LeadingMinor is 1-based: 1 means the top-left entry itself was not
	// positive.
	LeadingMinor int
}

// Error implements the error interface.
func (e *NotPositiveDefiniteError) Error() string {
	return fmt.Sprintf("cholesky: matrix is not positive-definite: leading minor of order %d is not positive", e.LeadingMinor)
}

// Is makes errors.Is(err, ErrNotPositiveDefinite) succeed on wrapped values.
func (e *NotPositiveDefiniteError) Is(target error) bool {
	return target == ErrNotPositiveDefinite
}
