// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/scalarkit/matrix"
)

const benchN = 128

func benchDense(b *testing.B) *matrix.Dense {
	b.Helper()
	vals := make([]float64, benchN*benchN)
	for i := range vals {
		vals[i] = float64(i%17) - 8
	}
	m, err := matrix.NewDenseFrom(benchN, benchN, vals)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

// BenchmarkSub_ViaNegatedView measures A + (−B) through the flat view path.
func BenchmarkSub_ViaNegatedView(b *testing.B) {
	x, y := benchDense(b), benchDense(b)
	v := y.Negated()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Add(x, v); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSub_Materialised measures Negate followed by Add.
func BenchmarkSub_Materialised(b *testing.B) {
	x, y := benchDense(b), benchDense(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ny, err := matrix.Negate(y)
		if err != nil {
			b.Fatal(err)
		}
		if _, err = matrix.Add(x, ny); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkIsSkewSymmetric measures the zero-copy −Aᵀ comparison.
func BenchmarkIsSkewSymmetric(b *testing.B) {
	s, err := matrix.SkewBlock(benchDense(b))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = matrix.IsSkewSymmetric(s); err != nil {
			b.Fatal(err)
		}
	}
}
