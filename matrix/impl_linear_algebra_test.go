// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scalarkit/matrix"
)

// operands returns two 2×3 fixtures with exactly representable entries.
func operands(t *testing.T) (a, b *matrix.Dense) {
	t.Helper()
	a = NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b = NewFilledDense(t, 2, 3, []float64{0.5, -1, 2, -3, 0.25, 8})

	return a, b
}

// TestFlatSigned documents which operands take the flat fast-path.
func TestFlatSigned(t *testing.T) {
	a, _ := operands(t)

	s, ok := matrix.FlatSigned(a)
	require.True(t, ok)
	require.Equal(t, 1.0, s)

	s, ok = matrix.FlatSigned(a.Negated())
	require.True(t, ok)
	require.Equal(t, -1.0, s)

	_, ok = matrix.FlatSigned(a.NegatedTranspose())
	require.False(t, ok)
	_, ok = matrix.FlatSigned(hide{a})
	require.False(t, ok)
}

// TestAddSub covers plain, negated and fallback operands.
func TestAddSub(t *testing.T) {
	a, b := operands(t)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1.5, 1, 5}, {1, 5.25, 14}}, sum)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.5, 3, 1}, {7, 4.75, -2}}, diff)

	// A + (−B) through the view equals A − B without materialising −B.
	viaView, err := matrix.Add(a, b.Negated())
	require.NoError(t, err)
	ok, err := matrix.AllClose(diff, viaView, matrix.WithEpsilon(0))
	require.NoError(t, err)
	require.True(t, ok)

	// Fallback path agrees with the fast path.
	slow, err := matrix.Sub(hide{a}, hide{b.Negated()})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1.5, 1, 5}, {1, 5.25, 14}}, slow)

	// (−A) − (−B) = B − A.
	nn, err := matrix.Sub(a.Negated(), b.Negated())
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-0.5, -3, -1}, {-7, -4.75, 2}}, nn)
}

// TestAddSubErrors covers nil operands and shape mismatch.
func TestAddSubErrors(t *testing.T) {
	a, _ := operands(t)
	c := MustDense(t, 3, 2)

	_, err := matrix.Add(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Sub(a, (*matrix.Dense)(nil))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Add(a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	// A transposed view has the swapped shape.
	_, err = matrix.Add(a, c.NegatedTranspose())
	require.NoError(t, err)
}

// TestScaleNegate covers the view sign folding.
func TestScaleNegate(t *testing.T) {
	a, _ := operands(t)

	s, err := matrix.Scale(a.Negated(), 2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-2, -4, -6}, {-8, -10, -12}}, s)

	s, err = matrix.Scale(hide{a}, -0.5)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-0.5, -1, -1.5}, {-2, -2.5, -3}}, s)

	n, err := matrix.Negate(a)
	require.NoError(t, err)
	nv, err := matrix.Negate(a.Negated())
	require.NoError(t, err)
	nf, err := matrix.Negate(hide{a})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-1, -2, -3}, {-4, -5, -6}}, n)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, nv)
	CompareExact(t, [][]float64{{-1, -2, -3}, {-4, -5, -6}}, nf)

	_, err = matrix.Scale(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Negate(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTranspose: materialised transpose of plain, negated and transposed views.
func TestTranspose(t *testing.T) {
	a, _ := operands(t)
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareExact(t, want, tr)

	tr, err = matrix.Transpose(hide{a})
	require.NoError(t, err)
	CompareExact(t, want, tr)

	tr, err = matrix.Transpose(a.Negated())
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-1, -4}, {-2, -5}, {-3, -6}}, tr)

	// (−Aᵀ)ᵀ = −A.
	tr, err = matrix.Transpose(a.NegatedTranspose())
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-1, -2, -3}, {-4, -5, -6}}, tr)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestHadamard: two negations cancel, one flips the product.
func TestHadamard(t *testing.T) {
	a, b := operands(t)
	want := [][]float64{{0.5, -2, 6}, {-12, 1.25, 48}}

	h, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	CompareExact(t, want, h)

	h, err = matrix.Hadamard(a.Negated(), b.Negated())
	require.NoError(t, err)
	CompareExact(t, want, h)

	h, err = matrix.Hadamard(hide{a.Negated()}, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-0.5, 2, -6}, {12, -1.25, -48}}, h)

	_, err = matrix.Hadamard(a, MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
