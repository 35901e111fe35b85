// SPDX-License-Identifier: MIT
package cholesky_test

import (
	"fmt"
	"testing"

	"github.com/elsuizo/ndarray-linalg/cholesky"
	"github.com/elsuizo/ndarray-linalg/dense"
)

// benchSizes are the matrix orders exercised by every benchmark below.
var benchSizes = []int{16, 64, 256}

// sink variables prevent the compiler from eliding benchmark results.
var (
	sinkMatrix *dense.Dense[float64]
	sinkVec    []float64
	sinkDet    float64
)

// BenchmarkCholesky measures the borrowing decomposition (clone + in-place
// factorization) across sizes.
func BenchmarkCholesky(b *testing.B) {
	for _, n := range benchSizes {
		n := n
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := spdRandom(b, n, int64(n))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := cholesky.Cholesky(a, dense.Lower)
				if err != nil {
					b.Fatalf("Cholesky failed: %v", err)
				}
				sinkMatrix = m
			}
		})
	}
}

// BenchmarkCholeskyMut measures the pure in-place factorization: the clone
// happens outside the timer, so the numbers isolate the kernel.
func BenchmarkCholeskyMut(b *testing.B) {
	for _, n := range benchSizes {
		n := n
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := spdRandom(b, n, int64(n))
			work := make([]*dense.Dense[float64], b.N)
			for i := range work {
				work[i] = a.Clone()
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := cholesky.CholeskyMut(work[i], dense.Lower); err != nil {
					b.Fatalf("CholeskyMut failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkSolveMut measures the two-triangle substitution on an already
// factorized record; the O(n³) factorization cost is excluded.
func BenchmarkSolveMut(b *testing.B) {
	for _, n := range benchSizes {
		n := n
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			f, err := cholesky.Factorize(spdRandom(b, n, int64(n)), dense.Upper)
			if err != nil {
				b.Fatalf("Factorize failed: %v", err)
			}
			rhs := make([]float64, n)
			for i := range rhs {
				rhs[i] = float64(i + 1)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := f.SolveMut(rhs)
				if err != nil {
					b.Fatalf("SolveMut failed: %v", err)
				}
				sinkVec = x
			}
		})
	}
}

// BenchmarkInverse measures the full single-call inversion: factorization,
// triangular inversion and the Hermitian mirror.
func BenchmarkInverse(b *testing.B) {
	for _, n := range benchSizes {
		n := n
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := spdRandom(b, n, int64(n))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := cholesky.Inverse(a)
				if err != nil {
					b.Fatalf("Inverse failed: %v", err)
				}
				sinkMatrix = m
			}
		})
	}
}

// BenchmarkDet measures the record determinant: an O(n) log-space
// reduction over the factor diagonal.
func BenchmarkDet(b *testing.B) {
	for _, n := range benchSizes {
		n := n
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			f, err := cholesky.Factorize(spdRandom(b, n, int64(n)), dense.Upper)
			if err != nil {
				b.Fatalf("Factorize failed: %v", err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkDet = f.Det()
			}
		})
	}
}
