// SPDX-License-Identifier: MIT

package scalar

import "strconv"

// Negated is a non-owning view of a real value that reads and writes its negation.
//
// MAIN DESCRIPTION:
//   - Aliases caller storage through a single pointer; never copies or owns it.
//   - Get returns −x; Set(v) stores −v so that a later Get returns v exactly.
//
// Behavior highlights:
//   - Negation is a sign-bit flip: exact for every input including NaN and ±Inf.
//   - IsNaN/IsInf/IsFinite and SignBit answer for the stored value.
//   - Sign answers for the logical (negated) value.
//   - Square is x·x and Cube is −(x·x·x) on the stored x: bit-identical to
//     squaring or cubing −x, with no negation on the squared path.
//
// Notes:
//   - The zero Negated has a nil target; using it is a programming error.
//
// AI-Hints:
//   - Keep views short-lived and pass them by value; they are one word wide.
type Negated[F Float] struct {
	p *F
}

// NegView returns the negated view of *p.
func NegView[F Float](p *F) Negated[F] {
	if debugChecks && p == nil {
		panic(panicNilTarget)
	}

	return Negated[F]{p: p}
}

// Get returns the logical value, −*p.
func (n Negated[F]) Get() F { return -*n.p }

// Set stores −v so that Get returns v.
func (n Negated[F]) Set(v F) { *n.p = -v }

// Neg returns the stored value: negating the view undoes it without arithmetic.
func (n Negated[F]) Neg() F { return *n.p }

// Target returns the aliased storage.
func (n Negated[F]) Target() *F { return n.p }

// IsNaN reports whether the stored value is NaN.
func (n Negated[F]) IsNaN() bool { return IsNaN(*n.p) }

// IsInf reports whether the stored value is infinite.
func (n Negated[F]) IsInf() bool { return IsInf(*n.p) }

// IsFinite reports whether the stored value is finite.
func (n Negated[F]) IsFinite() bool { return IsFinite(*n.p) }

// SignBit returns the sign bit of the stored value, not of the logical value.
func (n Negated[F]) SignBit() bool { return SignBit(*n.p) }

// Sign returns the sign of the logical value: −Sign(stored). Zero stays 0.
func (n Negated[F]) Sign() int { return -Sign(*n.p) }

// Square returns the square of the logical value, computed as x·x on the stored x.
func (n Negated[F]) Square() F {
	x := *n.p
	return x * x
}

// Cube returns the cube of the logical value, −(x·x·x) on the stored x.
func (n Negated[F]) Cube() F {
	x := *n.p
	return -(x * x * x)
}

// Mul returns the product of two logical values; the two negations cancel.
func (n Negated[F]) Mul(o Negated[F]) F { return *n.p * *o.p }

// MulValue returns (−x)·v.
func (n Negated[F]) MulValue(v F) F { return -(*n.p * v) }

// Add returns (−x)+v.
func (n Negated[F]) Add(v F) F { return v - *n.p }

// Sub returns (−x)−v.
func (n Negated[F]) Sub(v F) F { return -*n.p - v }

// IsNumericallyEqual compares the logical value with v; see IsNumericallyEqual.
func (n Negated[F]) IsNumericallyEqual(v F, opts ...Option) bool {
	return IsNumericallyEqual(n.Get(), v, opts...)
}

// String formats the logical value.
func (n Negated[F]) String() string {
	bits := 64
	if is32[F]() {
		bits = 32
	}

	return strconv.FormatFloat(float64(n.Get()), 'g', -1, bits)
}
