// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
)

// IsNaN reports whether x is a NaN of either sign.
func IsNaN[F Float](x F) bool {
	if is32[F]() {
		return math32.IsNaN(float32(x))
	}

	return math.IsNaN(float64(x))
}

// IsInf reports whether x is +Inf or -Inf. NaN is never infinite.
func IsInf[F Float](x F) bool {
	if is32[F]() {
		return math32.IsInf(float32(x), 0)
	}

	return math.IsInf(float64(x), 0)
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite[F Float](x F) bool { return !IsNaN(x) && !IsInf(x) }

// IsNaNComplex reports whether either component of z is NaN, whatever the
// other component holds (an infinite partner does not hide the NaN).
func IsNaNComplex[C Complex](z C) bool {
	re, im := parts(z)

	return math.IsNaN(re) || math.IsNaN(im)
}

// IsInfComplex reports whether at least one component of z is infinite and
// neither is NaN. NaN takes precedence: (Inf, NaN) is NaN, not infinite.
func IsInfComplex[C Complex](z C) bool {
	re, im := parts(z)
	if math.IsNaN(re) || math.IsNaN(im) {
		return false
	}

	return math.IsInf(re, 0) || math.IsInf(im, 0)
}

// IsFiniteComplex reports whether both components of z are finite.
func IsFiniteComplex[C Complex](z C) bool {
	re, im := parts(z)

	return IsFinite(re) && IsFinite(im)
}

// SignBit returns the raw sign bit of x.
//
// MAIN DESCRIPTION:
//   - Bit-level question, not a value-level one.
//
// Behavior highlights:
//   - Unsigned integers: always false.
//   - Signed integers: x < 0 (two's complement top bit).
//   - Floats: the IEEE-754 sign bit, so SignBit(-0.0) and SignBit(-NaN) are true.
//
// Notes:
//   - Negated views report the bit of their aliased storage; see Negated.SignBit.
func SignBit[T Real](x T) bool {
	if !isFloatType[T]() {
		return x < 0
	}
	if unsafe.Sizeof(x) == 4 {
		return math32.Signbit(float32(x))
	}

	return math.Signbit(float64(x))
}

// Sign returns -1, 0 or +1 according to the logical value of x.
//
// Behavior highlights:
//   - ±0 yields 0 regardless of the sign bit.
//   - ±Inf yields ±1.
//   - NaN yields 0: it is neither above nor below zero.
func Sign[T Real](x T) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
