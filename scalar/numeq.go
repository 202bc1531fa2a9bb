// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"math/cmplx"
	"unsafe"
)

// IsNumericallyEqual reports whether a and b agree within tolerance.
//
// MAIN DESCRIPTION:
//   - Tolerance comparison that stays meaningful around special values.
//
// Behavior highlights:
//   - Both NaN ⇒ equal; exactly one NaN ⇒ unequal.
//   - An infinity equals only the same-signed infinity.
//   - Otherwise |a−b| ≤ tol·max(|a|,|b|,1), or |a−b| ≤ tol with WithAbsoluteTolerance.
//   - tol defaults to LimitsOf[F]().Significant.
//
// Complexity:
//   - Time O(1), Space O(1).
func IsNumericallyEqual[F Float](a, b F, opts ...Option) bool {
	return numEq(float64(a), float64(b), resolveTolerance[F](opts))
}

// IsNumericallyEqualComplex is IsNumericallyEqual for complex values, using
// the complex modulus for both the difference and the scale. Any NaN
// component makes a value NaN for this purpose.
func IsNumericallyEqualComplex[C Complex](a, b C, opts ...Option) bool {
	var o Options
	if unsafe.Sizeof(a) == 8 {
		o = resolveTolerance[float32](opts)
	} else {
		o = resolveTolerance[float64](opts)
	}

	return numEqComplex(complex128(a), complex128(b), o)
}

func numEq(a, b float64, o Options) bool {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	if aNaN || bNaN {
		return aNaN && bNaN
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	scale := 1.0
	if !o.absolute {
		scale = math.Max(scale, math.Max(math.Abs(a), math.Abs(b)))
	}

	return math.Abs(a-b) <= o.tolerance*scale
}

func numEqComplex(a, b complex128, o Options) bool {
	aNaN, bNaN := IsNaNComplex(a), IsNaNComplex(b)
	if aNaN || bNaN {
		return aNaN && bNaN
	}
	if IsInfComplex(a) || IsInfComplex(b) {
		return a == b
	}
	scale := 1.0
	if !o.absolute {
		scale = math.Max(scale, math.Max(cmplx.Abs(a), cmplx.Abs(b)))
	}

	return cmplx.Abs(a-b) <= o.tolerance*scale
}
