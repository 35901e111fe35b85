// SPDX-License-Identifier: MIT
// Package cholesky_test contains unit tests for the decompose and factorize
// entry points: worked factors, error classification, and the
// copy-then-delegate equivalence between the ownership variants.
package cholesky_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elsuizo/ndarray-linalg/cholesky"
	"github.com/elsuizo/ndarray-linalg/dense"
)

// mustFromRows builds a float64 matrix from row slices or fails the test.
func mustFromRows(tb testing.TB, rows [][]float64) *dense.Dense[float64] {
	tb.Helper()
	m, err := dense.NewDenseFromRows(rows)
	require.NoError(tb, err)

	return m
}

// spd3 returns the classic positive-definite matrix whose lower factor is
// [[2,0,0],[6,1,0],[-8,5,3]].
func spd3(tb testing.TB) *dense.Dense[float64] {
	tb.Helper()

	return mustFromRows(tb, [][]float64{
		{4, 12, -16},
		{12, 37, -43},
		{-16, -43, 98},
	})
}

// notPD3 returns spd3 with a negated first diagonal entry, so the very
// first leading principal minor is negative.
func notPD3(tb testing.TB) *dense.Dense[float64] {
	tb.Helper()

	return mustFromRows(tb, [][]float64{
		{-4, 12, -16},
		{12, 37, -43},
		{-16, -43, 98},
	})
}

// spdRandom builds a random symmetric positive-definite matrix
// A = Bᵀ·B + n·I from a seeded generator, so every test run sees the same
// matrix.
func spdRandom(tb testing.TB, n int, seed int64) *dense.Dense[float64] {
	tb.Helper()

	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			rows[i][j] = rng.Float64()*2 - 1
		}
	}
	b := mustFromRows(tb, rows)

	bt, err := dense.ConjTranspose(b)
	require.NoError(tb, err)
	a, err := dense.Mul(bt, b)
	require.NoError(tb, err)
	var v float64
	for i = 0; i < n; i++ {
		v, err = a.At(i, i)
		require.NoError(tb, err)
		require.NoError(tb, a.Set(i, i, v+float64(n)))
	}

	return a
}

// TestCholesky_WorkedLower checks the exact lower factor of the classic
// matrix, including the zeroed opposite triangle.
func TestCholesky_WorkedLower(t *testing.T) {
	t.Parallel()

	l, err := cholesky.Cholesky(spd3(t), dense.Lower)
	require.NoError(t, err)

	want := mustFromRows(t, [][]float64{
		{2, 0, 0},
		{6, 1, 0},
		{-8, 5, 3},
	})
	assert.True(t, dense.EqualApprox(l, want, 0), "factor:\n%v", l)
}

// TestCholesky_WorkedUpper checks the exact upper factor: the transpose of
// the lower one.
func TestCholesky_WorkedUpper(t *testing.T) {
	t.Parallel()

	u, err := cholesky.Cholesky(spd3(t), dense.Upper)
	require.NoError(t, err)

	want := mustFromRows(t, [][]float64{
		{2, 6, -8},
		{0, 1, 5},
		{0, 0, 3},
	})
	assert.True(t, dense.EqualApprox(u, want, 0), "factor:\n%v", u)
}

// TestCholesky_BorrowingLeavesInputIntact verifies the borrowing variant
// never writes through its argument.
func TestCholesky_BorrowingLeavesInputIntact(t *testing.T) {
	t.Parallel()

	a := spd3(t)
	_, err := cholesky.Cholesky(a, dense.Lower)
	require.NoError(t, err)

	assert.True(t, dense.EqualApprox(a, spd3(t), 0), "input mutated by borrowing variant")
}

// TestCholesky_VariantsBitIdentical verifies the copy-then-delegate rule:
// borrowing, consuming and mutating forms produce bit-identical factors.
func TestCholesky_VariantsBitIdentical(t *testing.T) {
	t.Parallel()

	for _, uplo := range []dense.Triangle{dense.Lower, dense.Upper} {
		uplo := uplo
		t.Run(uplo.String(), func(t *testing.T) {
			a := spdRandom(t, 12, 42)

			borrowed, err := cholesky.Cholesky(a, uplo)
			require.NoError(t, err)

			consumed, err := cholesky.CholeskyInto(a.Clone(), uplo)
			require.NoError(t, err)

			mutated := a.Clone()
			require.NoError(t, cholesky.CholeskyMut(mutated, uplo))

			assert.Equal(t, borrowed.RawData(), consumed.RawData())
			assert.Equal(t, borrowed.RawData(), mutated.RawData())
		})
	}
}

// TestCholesky_Reconstruction verifies L·Lᴴ (resp. Uᴴ·U) reproduces the
// input on a random positive-definite matrix.
func TestCholesky_Reconstruction(t *testing.T) {
	t.Parallel()

	a := spdRandom(t, 10, 7)

	t.Run("Lower", func(t *testing.T) {
		l, err := cholesky.Cholesky(a, dense.Lower)
		require.NoError(t, err)
		lt, err := dense.ConjTranspose(l)
		require.NoError(t, err)
		recon, err := dense.Mul(l, lt)
		require.NoError(t, err)
		assert.True(t, dense.EqualApprox(recon, a, 1e-9), "L·Lᵀ must reproduce A")
	})

	t.Run("Upper", func(t *testing.T) {
		u, err := cholesky.Cholesky(a, dense.Upper)
		require.NoError(t, err)
		ut, err := dense.ConjTranspose(u)
		require.NoError(t, err)
		recon, err := dense.Mul(ut, u)
		require.NoError(t, err)
		assert.True(t, dense.EqualApprox(recon, a, 1e-9), "Uᵀ·U must reproduce A")
	})
}

// TestCholesky_NotPositiveDefinite verifies the failing leading-minor index
// is carried on the typed error and Is-matches the sentinel.
func TestCholesky_NotPositiveDefinite(t *testing.T) {
	t.Parallel()

	_, err := cholesky.Cholesky(notPD3(t), dense.Upper)
	require.ErrorIs(t, err, cholesky.ErrNotPositiveDefinite)

	var pd *cholesky.NotPositiveDefiniteError
	require.ErrorAs(t, err, &pd)
	assert.Equal(t, 1, pd.LeadingMinor)

	// Minor index 2: first pivot fine, second principal minor negative.
	_, err = cholesky.Cholesky(mustFromRows(t, [][]float64{{1, 2}, {2, 1}}), dense.Lower)
	require.ErrorAs(t, err, &pd)
	assert.Equal(t, 2, pd.LeadingMinor)
}

// TestCholesky_NotSquareEveryEntryPoint verifies a non-square input is
// rejected by every entry point before any numeric work, with the offending
// dimensions on the typed error.
func TestCholesky_NotSquareEveryEntryPoint(t *testing.T) {
	t.Parallel()

	rect := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := []float64{1, 2}

	cases := []struct {
		name string
		call func() error
	}{
		{"Cholesky", func() error { _, err := cholesky.Cholesky(rect, dense.Upper); return err }},
		{"CholeskyInto", func() error { _, err := cholesky.CholeskyInto(rect, dense.Upper); return err }},
		{"CholeskyMut", func() error { return cholesky.CholeskyMut(rect, dense.Upper) }},
		{"Factorize", func() error { _, err := cholesky.Factorize(rect, dense.Upper); return err }},
		{"FactorizeInto", func() error { _, err := cholesky.FactorizeInto(rect, dense.Upper); return err }},
		{"Solve", func() error { _, err := cholesky.Solve(rect, b); return err }},
		{"SolveInto", func() error { _, err := cholesky.SolveInto(rect, b); return err }},
		{"SolveMut", func() error { _, err := cholesky.SolveMut(rect, b); return err }},
		{"Inverse", func() error { _, err := cholesky.Inverse(rect); return err }},
		{"InverseInto", func() error { _, err := cholesky.InverseInto(rect); return err }},
		{"Det", func() error { _, err := cholesky.Det(rect); return err }},
		{"DetInto", func() error { _, err := cholesky.DetInto(rect); return err }},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			require.ErrorIs(t, err, cholesky.ErrNotSquare)

			var ns *cholesky.NotSquareError
			require.ErrorAs(t, err, &ns)
			assert.Equal(t, 2, ns.Rows)
			assert.Equal(t, 3, ns.Cols)
		})
	}
}

// TestCholesky_InvalidLayout verifies a strided submatrix view is rejected
// before any backend call.
func TestCholesky_InvalidLayout(t *testing.T) {
	t.Parallel()

	parent := spdRandom(t, 5, 3)
	view, err := parent.Submatrix(0, 0, 3, 3)
	require.NoError(t, err)
	require.False(t, view.IsContiguous())

	_, err = cholesky.Cholesky(view, dense.Upper)
	require.ErrorIs(t, err, cholesky.ErrInvalidLayout)

	// A clone of the same view is contiguous and factors fine.
	_, err = cholesky.Cholesky(view.Clone(), dense.Upper)
	require.NoError(t, err)
}

// TestCholesky_NilAndBadTriangle covers the remaining structural errors.
func TestCholesky_NilAndBadTriangle(t *testing.T) {
	t.Parallel()

	_, err := cholesky.Cholesky[float64](nil, dense.Upper)
	require.ErrorIs(t, err, cholesky.ErrNilMatrix)
	require.ErrorIs(t, cholesky.CholeskyMut[float64](nil, dense.Lower), cholesky.ErrNilMatrix)
	_, err = cholesky.Factorize[float64](nil, dense.Upper)
	require.ErrorIs(t, err, cholesky.ErrNilMatrix)

	_, err = cholesky.Cholesky(spd3(t), dense.Triangle('Q'))
	require.ErrorIs(t, err, cholesky.ErrBadTriangle)
}

// TestCholesky_FailureLeavesNoRecord verifies the factorize family never
// hands out a record after a numerical failure.
func TestCholesky_FailureLeavesNoRecord(t *testing.T) {
	t.Parallel()

	f, err := cholesky.Factorize(notPD3(t), dense.Lower)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cholesky.ErrNotPositiveDefinite))
	assert.Nil(t, f)
}

// TestCholesky_ComplexHermitian factors a Hermitian complex matrix and
// reconstructs it from the lower factor.
func TestCholesky_ComplexHermitian(t *testing.T) {
	t.Parallel()

	a, err := dense.NewDenseFromRows([][]complex128{
		{4, 1 + 1i, 0 - 2i},
		{1 - 1i, 5, 0 + 1i},
		{0 + 2i, 0 - 1i, 6},
	})
	require.NoError(t, err)

	l, err := cholesky.Cholesky(a, dense.Lower)
	require.NoError(t, err)
	lh, err := dense.ConjTranspose(l)
	require.NoError(t, err)
	recon, err := dense.Mul(l, lh)
	require.NoError(t, err)

	assert.True(t, dense.EqualApprox(recon, a, 1e-12), "L·Lᴴ must reproduce A")
}
