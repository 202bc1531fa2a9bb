// SPDX-License-Identifier: MIT

package scalar

// NegatedConjugate is the negated view of a Conjugate.
// Both stored components are negated together; see Negated for the shared contract.
type NegatedConjugate[F Float] struct {
	p *Conjugate[F]
}

// NegViewConjugate returns the negated view of *p.
func NegViewConjugate[F Float](p *Conjugate[F]) NegatedConjugate[F] {
	if debugChecks && p == nil {
		panic(panicNilTarget)
	}

	return NegatedConjugate[F]{p: p}
}

// Get returns −*p.
func (n NegatedConjugate[F]) Get() Conjugate[F] { return n.p.Neg() }

// Set stores −v so that Get returns v.
func (n NegatedConjugate[F]) Set(v Conjugate[F]) { *n.p = v.Neg() }

// Neg returns the stored value.
func (n NegatedConjugate[F]) Neg() Conjugate[F] { return *n.p }

// Target returns the aliased storage.
func (n NegatedConjugate[F]) Target() *Conjugate[F] { return n.p }

// Real returns the real part of the logical value.
func (n NegatedConjugate[F]) Real() F { return -n.p.re }

// Imag returns the true imaginary part of the logical value.
func (n NegatedConjugate[F]) Imag() F { return n.p.negIm }

// IsNaN reports whether either stored component is NaN.
func (n NegatedConjugate[F]) IsNaN() bool { return n.p.IsNaN() }

// IsInf reports whether the stored value is infinite (and not NaN).
func (n NegatedConjugate[F]) IsInf() bool { return n.p.IsInf() }

// IsFinite reports whether both stored components are finite.
func (n NegatedConjugate[F]) IsFinite() bool { return n.p.IsFinite() }

// Square returns c·c on the stored c.
func (n NegatedConjugate[F]) Square() Conjugate[F] { return n.p.Square() }

// Cube returns −(c·c·c) on the stored c.
func (n NegatedConjugate[F]) Cube() Conjugate[F] { return n.p.Cube().Neg() }

// Mul returns the product of two logical values.
func (n NegatedConjugate[F]) Mul(o NegatedConjugate[F]) Conjugate[F] { return n.p.Mul(*o.p) }

// MulValue returns (−c)·v.
func (n NegatedConjugate[F]) MulValue(v Conjugate[F]) Conjugate[F] { return n.p.Mul(v).Neg() }

// Add returns (−c)+v.
func (n NegatedConjugate[F]) Add(v Conjugate[F]) Conjugate[F] { return v.Sub(*n.p) }

// Sub returns (−c)−v.
func (n NegatedConjugate[F]) Sub(v Conjugate[F]) Conjugate[F] { return n.p.Neg().Sub(v) }

// IsNumericallyEqual compares the logical value with v.
func (n NegatedConjugate[F]) IsNumericallyEqual(v Conjugate[F], opts ...Option) bool {
	return n.Get().IsNumericallyEqual(v, opts...)
}

// String formats the logical value.
func (n NegatedConjugate[F]) String() string { return n.Get().String() }
