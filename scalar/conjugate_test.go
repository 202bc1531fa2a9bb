// SPDX-License-Identifier: MIT

package scalar_test

import (
	"math/cmplx"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scalarkit/scalar"
)

// requireComplexClose asserts a and b agree to the default tolerance of their precision.
func requireComplexClose[C scalar.Complex](t *testing.T, want, got C) {
	t.Helper()
	require.True(t, scalar.IsNumericallyEqualComplex(want, got), "want %v, got %v", want, got)
}

// TestConjugate_EqualsManualConjugate: (re, negIm) denotes re − i·negIm exactly.
func TestConjugate_EqualsManualConjugate(t *testing.T) {
	dcj := scalar.NewConjugate(-19100.0, -454.234)
	require.True(t, dcj.EqualComplex(complex(-19100.0, 454.234)))
	require.False(t, dcj.EqualComplex(complex(-19100.0, -454.234)))

	fcj := scalar.NewConjugate(float32(-19.1e3), float32(-454.234))
	fcmj := complex(fcj.Real(), fcj.Imag())
	require.True(t, fcj.EqualComplex(complex128(fcmj)))
	require.Equal(t, fcmj, fcj.Complex64())

	dcmj := complex(dcj.Real(), dcj.Imag())
	require.Equal(t, dcmj, dcj.Complex128())
	require.Equal(t, cmplx.Conj(dcmj), dcj.Conj())
}

// TestConjugate_Accessors pins the stored versus true components.
func TestConjugate_Accessors(t *testing.T) {
	c := scalar.NewConjugate(1.5, 2.5)
	require.Equal(t, 1.5, c.Real())
	require.Equal(t, -2.5, c.Imag())
	require.Equal(t, 2.5, c.NegImag())

	z := scalar.ConjugateOf(complex(3, 4))
	require.Equal(t, complex(3, 4), z.Complex128())
	require.Equal(t, -4.0, z.NegImag())

	z64 := scalar.ConjugateOf64(complex64(complex(3, 4)))
	require.Equal(t, complex64(complex(3, 4)), z64.Complex64())
}

// TestConjugate_ArithmeticMatchesComplex compares against the native formulation.
func TestConjugate_ArithmeticMatchesComplex(t *testing.T) {
	a := scalar.NewConjugate(-19.1e3, -454.234)
	b := scalar.NewConjugate(3.25, 7.5)
	za, zb := a.Complex128(), b.Complex128()

	// Component-wise operations are exact.
	require.Equal(t, za+zb, a.Add(b).Complex128())
	require.Equal(t, za-zb, a.Sub(b).Complex128())
	require.Equal(t, -za, a.Neg().Complex128())
	require.Equal(t, 2*za, a.Scale(2).Complex128())

	requireComplexClose(t, za*zb, a.Mul(b).Complex128())
	requireComplexClose(t, za/zb, a.Div(b).Complex128())
	requireComplexClose(t, za*za, a.Square().Complex128())
	requireComplexClose(t, za*za*za, a.Cube().Complex128())

	fcj := scalar.NewConjugate(float32(-19.1e3), float32(-454.234))
	fcmj := complex(fcj.Real(), fcj.Imag())
	requireComplexClose(t, fcmj*fcmj, fcj.Mul(fcj).Complex64())
	requireComplexClose(t, fcmj*fcmj*fcmj, fcj.Mul(fcj).Mul(fcj).Complex64())
	requireComplexClose(t, fcmj/fcmj, fcj.Div(fcj).Complex64())
}

// TestConjugate_DivFloat32 pins the double-precision quotient narrowed to float32.
func TestConjugate_DivFloat32(t *testing.T) {
	a := scalar.NewConjugate(float32(1), float32(-3))
	b := scalar.NewConjugate(float32(7), float32(0.3))
	za, zb := a.Complex64(), b.Complex64()

	q := a.Div(b).Complex64()
	wide := complex128(za) / complex128(zb)
	require.Equal(t, complex64(wide), q)
	requireComplexClose(t, za/zb, q)
}

// TestConjugate_EqualComparesTrueValue: Equal is value equality, NaN never equal.
func TestConjugate_EqualComparesTrueValue(t *testing.T) {
	a := scalar.NewConjugate(1.0, -2.0)
	require.True(t, a.Equal(scalar.ConjugateOf(complex(1, 2))))
	require.False(t, a.Equal(a.Neg()))

	n := scalar.NewConjugate(scalar.NaN[float64](), 0)
	require.False(t, n.Equal(n))
}

// TestConjugate_String renders the true value like fmt renders complex numbers.
func TestConjugate_String(t *testing.T) {
	require.Equal(t, "(-19100+454.234i)", scalar.NewConjugate(-19100.0, -454.234).String())
	require.Equal(t, "(1-2i)", scalar.NewConjugate(1.0, 2.0).String())
	require.Equal(t, "(-12.34+24.68i)", scalar.NewConjugate(float32(-12.34), float32(-24.68)).String())
	require.Equal(t, "(NaN+Infi)", scalar.NewConjugate(scalar.NaN[float64](), scalar.NegInfinity[float64]()).String())
}

// TestConjugateLayout pins the layout identity the reinterpretation relies on.
func TestConjugateLayout(t *testing.T) {
	require.Equal(t, unsafe.Sizeof(complex128(0)), unsafe.Sizeof(scalar.Conjugate[float64]{}))
	require.Equal(t, unsafe.Alignof(complex128(0)), unsafe.Alignof(scalar.Conjugate[float64]{}))
	require.Equal(t, unsafe.Sizeof(complex64(0)), unsafe.Sizeof(scalar.Conjugate[float32]{}))
	require.Equal(t, unsafe.Alignof(complex64(0)), unsafe.Alignof(scalar.Conjugate[float32]{}))
}

// TestAsConjugate reads and writes complex storage as its conjugate.
func TestAsConjugate(t *testing.T) {
	z := complex(1.5, 2.5)
	c := scalar.AsConjugate128(&z)
	require.True(t, c.EqualComplex(cmplx.Conj(z)))
	require.Equal(t, 1.5, c.Real())
	require.Equal(t, -2.5, c.Imag())

	*c = scalar.ConjugateOf(complex(3, 4))
	require.Equal(t, complex(3, -4), z)

	z64 := complex64(complex(-1, 8))
	c64 := scalar.AsConjugate64(&z64)
	require.Equal(t, complex64(complex(-1, -8)), c64.Complex64())

	// Negated view of the reinterpreted storage: −conj(z).
	n := scalar.NegViewConjugate(c)
	require.Equal(t, -cmplx.Conj(z), n.Get().Complex128())
}

// TestAsConjugateSlice shares the backing array.
func TestAsConjugateSlice(t *testing.T) {
	require.Nil(t, scalar.AsConjugateSlice128(nil))
	require.Nil(t, scalar.AsConjugateSlice64([]complex64{}))

	zs := []complex128{complex(1, 1), complex(2, -2), complex(0, 3)}
	cs := scalar.AsConjugateSlice128(zs)
	require.Len(t, cs, len(zs))
	for i := range zs {
		require.True(t, cs[i].EqualComplex(cmplx.Conj(zs[i])), "i=%d", i)
	}

	cs[1] = cs[1].Neg()
	require.Equal(t, complex(-2, 2), zs[1])

	z64 := []complex64{complex(5, 6)}
	c64 := scalar.AsConjugateSlice64(z64)
	require.Equal(t, float32(-6), c64[0].Imag())
}
