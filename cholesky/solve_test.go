// SPDX-License-Identifier: MIT
// Package cholesky_test contains unit tests for the solve family: worked
// solutions, residuals on random systems, ownership semantics and error
// propagation through the direct entry points.
package cholesky_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elsuizo/ndarray-linalg/cholesky"
	"github.com/elsuizo/ndarray-linalg/dense"
)

// TestSolve_Worked verifies the exact solution of the classic system
// A·x = [4,13,-11] ⇒ x = [-2,1,0], through the direct entry point and
// through records of both orientations.
func TestSolve_Worked(t *testing.T) {
	t.Parallel()

	b := []float64{4, 13, -11}
	want := []float64{-2, 1, 0}

	t.Run("direct", func(t *testing.T) {
		x, err := cholesky.Solve(spd3(t), b)
		require.NoError(t, err)
		assert.Equal(t, want, x)
	})

	for _, uplo := range []dense.Triangle{dense.Lower, dense.Upper} {
		uplo := uplo
		t.Run("record "+uplo.String(), func(t *testing.T) {
			f, err := cholesky.Factorize(spd3(t), uplo)
			require.NoError(t, err)
			x, err := f.Solve(b)
			require.NoError(t, err)
			assert.Equal(t, want, x)
		})
	}
}

// TestSolve_BorrowLeavesRHSIntact verifies the borrowing variant copies b.
func TestSolve_BorrowLeavesRHSIntact(t *testing.T) {
	t.Parallel()

	f, err := cholesky.Factorize(spd3(t), dense.Upper)
	require.NoError(t, err)

	b := []float64{4, 13, -11}
	x, err := f.Solve(b)
	require.NoError(t, err)

	assert.Equal(t, []float64{4, 13, -11}, b, "borrowing solve must not touch b")
	assert.False(t, &x[0] == &b[0], "solution must live in a fresh buffer")
}

// TestSolveMut_InPlace verifies the mutating variant writes through b and
// returns the very same slice.
func TestSolveMut_InPlace(t *testing.T) {
	t.Parallel()

	f, err := cholesky.Factorize(spd3(t), dense.Lower)
	require.NoError(t, err)

	b := []float64{4, 13, -11}
	x, err := f.SolveMut(b)
	require.NoError(t, err)

	assert.True(t, &x[0] == &b[0], "SolveMut must return the same buffer")
	assert.Equal(t, []float64{-2, 1, 0}, b)
}

// TestSolve_VariantsBitIdentical verifies the borrowing and consuming
// variants produce bit-identical solutions.
func TestSolve_VariantsBitIdentical(t *testing.T) {
	t.Parallel()

	f, err := cholesky.Factorize(spdRandom(t, 16, 5), dense.Upper)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(99))
	b := make([]float64, 16)
	for i := range b {
		b[i] = rng.Float64()*10 - 5
	}

	borrowed, err := f.Solve(b)
	require.NoError(t, err)

	consumed := append([]float64(nil), b...)
	consumed, err = f.SolveInto(consumed)
	require.NoError(t, err)

	assert.Equal(t, borrowed, consumed)
}

// TestSolve_RandomResidual verifies A·x ≈ b on a random positive-definite
// system of moderate size.
func TestSolve_RandomResidual(t *testing.T) {
	t.Parallel()

	const n = 24
	a := spdRandom(t, n, 17)

	rng := rand.New(rand.NewSource(18))
	b := make([]float64, n)
	for i := range b {
		b[i] = rng.Float64()*2 - 1
	}

	x, err := cholesky.Solve(a, b)
	require.NoError(t, err)

	ax, err := dense.MatVec(a, x)
	require.NoError(t, err)
	for i := range b {
		assert.InDeltaf(t, b[i], ax[i], 1e-9, "residual at row %d", i)
	}
}

// TestSolve_Validation covers nil and mis-sized right-hand sides for every
// solve variant.
func TestSolve_Validation(t *testing.T) {
	t.Parallel()

	f, err := cholesky.Factorize(spd3(t), dense.Upper)
	require.NoError(t, err)

	_, err = f.Solve(nil)
	require.ErrorIs(t, err, cholesky.ErrNilMatrix)
	_, err = f.SolveMut(nil)
	require.ErrorIs(t, err, cholesky.ErrNilMatrix)

	_, err = f.SolveMut([]float64{1, 2})
	require.ErrorIs(t, err, cholesky.ErrDimensionMismatch)
	_, err = cholesky.Solve(spd3(t), []float64{1, 2, 3, 4})
	require.ErrorIs(t, err, cholesky.ErrDimensionMismatch)
}

// TestSolve_PropagatesFactorizationError verifies the direct entry point
// re-raises the factorization failure verbatim, with the leading-minor
// payload intact.
func TestSolve_PropagatesFactorizationError(t *testing.T) {
	t.Parallel()

	_, err := cholesky.Solve(notPD3(t), []float64{1, 2, 3})
	require.ErrorIs(t, err, cholesky.ErrNotPositiveDefinite)

	var pd *cholesky.NotPositiveDefiniteError
	require.ErrorAs(t, err, &pd)
	assert.Equal(t, 1, pd.LeadingMinor)
}

// TestSolve_Complex solves a Hermitian system with a known solution.
func TestSolve_Complex(t *testing.T) {
	t.Parallel()

	a, err := dense.NewDenseFromRows([][]complex128{
		{4, 2i},
		{-2i, 9},
	})
	require.NoError(t, err)

	// b = A·[1, i].
	x, err := cholesky.Solve(a, []complex128{2, 7i})
	require.NoError(t, err)

	assert.InDelta(t, 0, real(x[0]-1), 1e-12)
	assert.InDelta(t, 0, imag(x[0]), 1e-12)
	assert.InDelta(t, 0, real(x[1]), 1e-12)
	assert.InDelta(t, 0, imag(x[1]-1i), 1e-12)
}
