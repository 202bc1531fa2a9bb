// SPDX-License-Identifier: MIT

package scalar

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is any type whose underlying type is float32 or float64.
type Float = constraints.Float

// Complex is any type whose underlying type is complex64 or complex128.
type Complex = constraints.Complex

// Real is the set accepted by SignBit and Sign: every integer and float type.
// byte and rune take part as uint8 and int32; Go has no separate char type.
type Real interface {
	constraints.Integer | constraints.Float
}

// Number is the set accepted by Square and Cube.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// is32 reports whether F is single precision.
// The size is a constant per instantiation, so the branch folds away.
func is32[F Float]() bool {
	var f F
	return unsafe.Sizeof(f) == 4
}

// isFloatType reports whether T is a floating-point type.
// Integer conversion truncates 0.5 to zero; float conversion keeps it.
func isFloatType[T Real]() bool {
	half := 0.5
	return T(half) != 0
}

// parts widens a complex value to its float64 components.
// Widening complex64 is exact and keeps NaN, Inf and signed zeros.
func parts[C Complex](z C) (re, im float64) {
	w := complex128(z)
	return real(w), imag(w)
}
