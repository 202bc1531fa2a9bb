// SPDX-License-Identifier: MIT

package scalar

// Square returns x*x.
func Square[T Number](x T) T { return x * x }

// Cube returns x*x*x, evaluated left to right.
func Cube[T Number](x T) T { return x * x * x }

// Recip returns 1/x. Recip(±0) is ±Inf for reals, following IEEE division.
func Recip[T Float | Complex](x T) T { return 1 / x }

// Clamp returns x limited to [lo, hi].
// NaN passes through unchanged because it compares false against both bounds.
// If lo > hi the result is unspecified but always one of lo, x or hi.
func Clamp[T Real](lo, x, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

// ClampInPlace clamps *x to [lo, hi] and returns the stored result.
func ClampInPlace[T Real](lo T, x *T, hi T) T {
	*x = Clamp(lo, *x, hi)

	return *x
}
