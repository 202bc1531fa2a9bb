// SPDX-License-Identifier: MIT

// Package scalar is the numeric-trait layer underneath the scalarkit linear-algebra types.
//
// The package provides:
//
//   - Per-precision limits (canonical NaN, ±Inf, epsilon, significant tolerance)
//     for float32 and float64, exposed through NaN, Infinity and LimitsOf.
//   - IEEE-754 aware predicates across reals, complex values, conjugates and
//     their negated views: IsNaN, IsInf, IsFinite, SignBit, Sign.
//   - Conjugate, a complex value stored as (re, negIm) meaning re − i·negIm,
//     layout-compatible with complex64/complex128.
//   - Negated views (Negated, NegatedComplex, NegatedConjugate): one-pointer,
//     non-owning aliases that read the negation of a value and store the
//     negation of whatever is written through them. No arithmetic negation is
//     performed on access beyond a sign flip, and nothing is copied.
//   - Derived helpers Square, Cube, Recip, Clamp and the IsNumericallyEqual family.
//
// Sign bit versus sign:
//
//	SignBit answers "what is the stored bit", Sign answers "what does this value mean".
//	For a negated view the two deliberately disagree: SignBit reports the bit of
//	the aliased storage, Sign reports the sign of the negated (logical) value.
//
// Aliasing contract:
//
//	A view holds a pointer to caller storage. The garbage collector keeps that
//	storage alive, so a view can never dangle; the remaining misuse is a nil
//	target, which is a programming error. Builds tagged `scalardebug` panic at
//	view construction; release builds do no checking and fault on first access.
//	Concurrent readers are safe; writers (through the view or the original
//	variable) need the same single-writer discipline as any shared memory.
//
// Every operation is total: NaN and ±Inf are legal inputs and nothing in this
// package returns an error.
package scalar
