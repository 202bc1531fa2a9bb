// SPDX-License-Identifier: MIT

package scalar

import "fmt"

// NegatedComplex is the negated view of a native complex value.
// Both components are negated together; see Negated for the shared contract.
type NegatedComplex[C Complex] struct {
	p *C
}

// NegViewComplex returns the negated view of *p.
func NegViewComplex[C Complex](p *C) NegatedComplex[C] {
	if debugChecks && p == nil {
		panic(panicNilTarget)
	}

	return NegatedComplex[C]{p: p}
}

// Get returns −*p.
func (n NegatedComplex[C]) Get() C { return -*n.p }

// Set stores −v so that Get returns v.
func (n NegatedComplex[C]) Set(v C) { *n.p = -v }

// Neg returns the stored value.
func (n NegatedComplex[C]) Neg() C { return *n.p }

// Target returns the aliased storage.
func (n NegatedComplex[C]) Target() *C { return n.p }

// IsNaN reports whether either stored component is NaN.
func (n NegatedComplex[C]) IsNaN() bool { return IsNaNComplex(*n.p) }

// IsInf reports whether the stored value is infinite (and not NaN).
func (n NegatedComplex[C]) IsInf() bool { return IsInfComplex(*n.p) }

// IsFinite reports whether both stored components are finite.
func (n NegatedComplex[C]) IsFinite() bool { return IsFiniteComplex(*n.p) }

// Square returns z·z on the stored z.
func (n NegatedComplex[C]) Square() C {
	z := *n.p
	return z * z
}

// Cube returns −(z·z·z) on the stored z.
func (n NegatedComplex[C]) Cube() C {
	z := *n.p
	return -(z * z * z)
}

// Mul returns the product of two logical values.
func (n NegatedComplex[C]) Mul(o NegatedComplex[C]) C { return *n.p * *o.p }

// MulValue returns (−z)·v.
func (n NegatedComplex[C]) MulValue(v C) C { return -(*n.p * v) }

// Add returns (−z)+v.
func (n NegatedComplex[C]) Add(v C) C { return v - *n.p }

// Sub returns (−z)−v.
func (n NegatedComplex[C]) Sub(v C) C { return -*n.p - v }

// IsNumericallyEqual compares the logical value with v.
func (n NegatedComplex[C]) IsNumericallyEqual(v C, opts ...Option) bool {
	return IsNumericallyEqualComplex(n.Get(), v, opts...)
}

// String formats the logical value the way fmt formats complex numbers.
func (n NegatedComplex[C]) String() string { return fmt.Sprint(n.Get()) }
