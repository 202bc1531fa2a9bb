// SPDX-License-Identifier: MIT

package scalar

import (
	"math"

	"github.com/chewxy/math32"
)

// Canonical quiet-NaN bit patterns: exponent all ones, top mantissa bit set,
// sign clear, empty payload.
const (
	nanBits32 uint32 = 0x7FC00000
	nanBits64 uint64 = 0x7FF8000000000000
)

// Limits is the per-precision constant table.
//
// Tables are built once at package initialisation and never mutated;
// LimitsOf hands out copies, so callers cannot disturb the shared values.
type Limits[F Float] struct {
	NaN             F // canonical quiet NaN
	Infinity        F // +Inf
	Epsilon         F // distance from 1 to the next representable value
	Max             F // largest finite value
	SmallestNormal  F // smallest positive normal value
	SmallestNonzero F // smallest positive subnormal value
	Significant     F // Epsilon^(7/8): default tolerance for IsNumericallyEqual
	MantissaBits    int
	Bits            int
}

var (
	limits32 = Limits[float32]{
		NaN:             math.Float32frombits(nanBits32),
		Infinity:        math32.Inf(1),
		Epsilon:         math.Float32frombits(0x34000000), // 2^-23
		Max:             math32.MaxFloat32,
		SmallestNormal:  math.Float32frombits(0x00800000), // 2^-126
		SmallestNonzero: math32.SmallestNonzeroFloat32,
		Significant:     math32.Pow(math.Float32frombits(0x34000000), 0.875),
		MantissaBits:    23,
		Bits:            32,
	}

	limits64 = Limits[float64]{
		NaN:             math.Float64frombits(nanBits64),
		Infinity:        math.Inf(1),
		Epsilon:         math.Float64frombits(0x3CB0000000000000), // 2^-52
		Max:             math.MaxFloat64,
		SmallestNormal:  math.Float64frombits(0x0010000000000000), // 2^-1022
		SmallestNonzero: math.SmallestNonzeroFloat64,
		Significant:     math.Pow(math.Float64frombits(0x3CB0000000000000), 0.875),
		MantissaBits:    52,
		Bits:            64,
	}
)

// LimitsOf returns the constant table for the precision of F.
// Named float types get the table of their underlying precision.
func LimitsOf[F Float]() Limits[F] {
	if is32[F]() {
		return convertLimits[F](limits32)
	}

	return convertLimits[F](limits64)
}

// convertLimits retypes a table. It is only ever called with G and F of the
// same width, so every conversion below is an identity on the bits.
func convertLimits[F, G Float](l Limits[G]) Limits[F] {
	return Limits[F]{
		NaN:             F(l.NaN),
		Infinity:        F(l.Infinity),
		Epsilon:         F(l.Epsilon),
		Max:             F(l.Max),
		SmallestNormal:  F(l.SmallestNormal),
		SmallestNonzero: F(l.SmallestNonzero),
		Significant:     F(l.Significant),
		MantissaBits:    l.MantissaBits,
		Bits:            l.Bits,
	}
}

// NaN returns the canonical quiet NaN of F.
func NaN[F Float]() F {
	if is32[F]() {
		return F(limits32.NaN)
	}

	return F(limits64.NaN)
}

// Infinity returns +Inf of F.
func Infinity[F Float]() F {
	if is32[F]() {
		return F(limits32.Infinity)
	}

	return F(limits64.Infinity)
}

// NegInfinity returns -Inf of F.
func NegInfinity[F Float]() F { return -Infinity[F]() }
