// SPDX-License-Identifier: MIT

// Package scalarkit is a numeric-traits toolkit for generic Go code.
//
// What is inside:
//
//	scalar/   per-precision limits (NaN, Inf, epsilon…), NaN/Inf/finite and
//	          sign predicates for reals and complex values, the Conjugate
//	          type with zero-copy reinterpretation of complex storage,
//	          zero-copy negated views, Square/Cube and tolerant equality.
//	matrix/   a row-major Dense matrix with zero-copy negated (and
//	          negated-transposed) views, element-wise kernels that fold the
//	          view sign into their loops, and skew-symmetry checks.
//	examples/ a runnable skew-block and conjugate-spectrum walkthrough.
//
// Sign bit vs sign:
//
//	SignBit answers a bit-level question about storage; Sign answers a
//	value-level question about the logical number. On negated views the two
//	deliberately diverge: SignBit reports the stored bit, Sign the sign of
//	the negated value.
//
//	go get github.com/katalvlaran/scalarkit
package scalarkit
