// SPDX-License-Identifier: MIT

package scalar

import (
	"strconv"
)

// Conjugate is a complex number stored as (re, negIm) and meaning re − i·negIm.
//
// MAIN DESCRIPTION:
//   - The second field holds the negation of the true imaginary part, so the
//     memory of a complex value z, read as a Conjugate, denotes conj(z).
//
// Layout:
//   - Exactly two F fields in (re, negIm) order: the same layout as complex64
//     for float32 and complex128 for float64. AsConjugate128/AsConjugate64
//     rely on this.
//
// Behavior highlights:
//   - Every operation answers in terms of the true value re − i·negIm.
//   - Equality compares true (re, im) pairs, never raw storage.
//   - Neg and Conj are exact sign flips; Add/Sub are exact per component;
//     Mul/Div match the equivalent native complex computation to rounding.
//
// AI-Hints:
//   - Use ConjugateOf to convert a value; use AsConjugate128 to reinterpret
//     existing storage without copying.
type Conjugate[F Float] struct {
	re    F // real part
	negIm F // stored imaginary: the true imaginary part is -negIm
}

// NewConjugate builds the value re − i·negIm from its stored components.
func NewConjugate[F Float](re, negIm F) Conjugate[F] {
	return Conjugate[F]{re: re, negIm: negIm}
}

// ConjugateOf returns a Conjugate whose true value equals z.
func ConjugateOf(z complex128) Conjugate[float64] {
	return Conjugate[float64]{re: real(z), negIm: -imag(z)}
}

// ConjugateOf64 returns a Conjugate whose true value equals z.
func ConjugateOf64(z complex64) Conjugate[float32] {
	return Conjugate[float32]{re: real(z), negIm: -imag(z)}
}

// Real returns the real part.
func (c Conjugate[F]) Real() F { return c.re }

// Imag returns the true imaginary part, -negIm.
func (c Conjugate[F]) Imag() F { return -c.negIm }

// NegImag returns the stored imaginary component.
func (c Conjugate[F]) NegImag() F { return c.negIm }

// Complex128 returns the true value. Widening float32 components is exact.
func (c Conjugate[F]) Complex128() complex128 {
	return complex(float64(c.re), -float64(c.negIm))
}

// Complex64 returns the true value rounded to single precision.
func (c Conjugate[F]) Complex64() complex64 {
	return complex(float32(c.re), -float32(c.negIm))
}

// Conj returns the conjugate of the true value, re + i·negIm.
// It costs nothing: the stored components already spell it out.
func (c Conjugate[F]) Conj() complex128 {
	return complex(float64(c.re), float64(c.negIm))
}

// Neg returns the exact negation of both components.
func (c Conjugate[F]) Neg() Conjugate[F] {
	return Conjugate[F]{re: -c.re, negIm: -c.negIm}
}

// Add returns c + o.
func (c Conjugate[F]) Add(o Conjugate[F]) Conjugate[F] {
	return Conjugate[F]{re: c.re + o.re, negIm: c.negIm + o.negIm}
}

// Sub returns c − o.
func (c Conjugate[F]) Sub(o Conjugate[F]) Conjugate[F] {
	return Conjugate[F]{re: c.re - o.re, negIm: c.negIm - o.negIm}
}

// Mul returns c·o.
//
// Implementation:
//   - conj(a)·conj(b) = conj(a·b), so the product stays a Conjugate.
//   - With c = cr − i·cs and o = or − i·os the product is
//     (cr·or − cs·os) − i·(cr·os + cs·or); these are the same roundings
//     a native complex multiply performs on (cr, −cs)·(or, −os).
func (c Conjugate[F]) Mul(o Conjugate[F]) Conjugate[F] {
	return Conjugate[F]{
		re:    c.re*o.re - c.negIm*o.negIm,
		negIm: c.re*o.negIm + c.negIm*o.re,
	}
}

// Div returns c/o, computed as conj(conj(c)/conj(o)) in double precision.
// Division by zero follows Go's complex128 rules.
//
// For float32 components the quotient is rounded twice: once by the
// complex128 division and once when narrowing each component to float32.
// Results stay within ordinary float32 rounding tolerance of the exact quotient.
func (c Conjugate[F]) Div(o Conjugate[F]) Conjugate[F] {
	q := c.Conj() / o.Conj()

	return Conjugate[F]{re: F(real(q)), negIm: F(imag(q))}
}

// Scale returns s·c.
func (c Conjugate[F]) Scale(s F) Conjugate[F] {
	return Conjugate[F]{re: s * c.re, negIm: s * c.negIm}
}

// Square returns c·c.
func (c Conjugate[F]) Square() Conjugate[F] { return c.Mul(c) }

// Cube returns c·c·c.
func (c Conjugate[F]) Cube() Conjugate[F] { return c.Mul(c).Mul(c) }

// Equal reports whether c and o denote the same complex number.
// As with native complex values, NaN components never compare equal.
func (c Conjugate[F]) Equal(o Conjugate[F]) bool {
	return c.re == o.re && c.negIm == o.negIm
}

// EqualComplex reports whether c denotes z, comparing true (re, im) pairs.
func (c Conjugate[F]) EqualComplex(z complex128) bool {
	return float64(c.re) == real(z) && -float64(c.negIm) == imag(z)
}

// IsNaN reports whether either component is NaN.
func (c Conjugate[F]) IsNaN() bool { return IsNaN(c.re) || IsNaN(c.negIm) }

// IsInf reports whether a component is infinite and neither is NaN.
func (c Conjugate[F]) IsInf() bool {
	if c.IsNaN() {
		return false
	}

	return IsInf(c.re) || IsInf(c.negIm)
}

// IsFinite reports whether both components are finite.
func (c Conjugate[F]) IsFinite() bool { return IsFinite(c.re) && IsFinite(c.negIm) }

// IsNumericallyEqual compares true values under the tolerance rules of
// IsNumericallyEqualComplex, defaulting to the precision of F.
func (c Conjugate[F]) IsNumericallyEqual(o Conjugate[F], opts ...Option) bool {
	return numEqComplex(c.Complex128(), o.Complex128(), resolveTolerance[F](opts))
}

// String formats the true value like fmt does for complex numbers, e.g. "(1-2i)".
func (c Conjugate[F]) String() string {
	bits := 64
	if is32[F]() {
		bits = 32
	}
	re := strconv.FormatFloat(float64(c.re), 'g', -1, bits)
	im := strconv.FormatFloat(-float64(c.negIm), 'g', -1, bits)
	if im[0] != '-' && im[0] != '+' {
		im = "+" + im
	}

	return "(" + re + im + "i)"
}
