// SPDX-License-Identifier: MIT

package scalar

import "unsafe"

// Zero-copy reinterpretation between native complex storage and Conjugate.
//
// Unsafe boundary:
//   - complex64/complex128 are laid out as (real, imag) pairs of float32/float64,
//     and Conjugate[F] is (re, negIm) of F. The pointer conversions below rely
//     on that identity and on nothing else; TestConjugateLayout pins it.
//   - The returned pointer aliases the argument. Reading through it yields
//     conj(z); writing a Conjugate v through it stores conj(v's true value) into z.
//   - Lifetime is the GC's problem, not the caller's: the alias keeps z alive.

// AsConjugate128 reinterprets *z as a Conjugate. The result denotes conj(*z).
func AsConjugate128(z *complex128) *Conjugate[float64] {
	if debugChecks && z == nil {
		panic(panicNilTarget)
	}

	return (*Conjugate[float64])(unsafe.Pointer(z))
}

// AsConjugate64 reinterprets *z as a Conjugate. The result denotes conj(*z).
func AsConjugate64(z *complex64) *Conjugate[float32] {
	if debugChecks && z == nil {
		panic(panicNilTarget)
	}

	return (*Conjugate[float32])(unsafe.Pointer(z))
}

// AsConjugateSlice128 reinterprets a complex128 slice in place.
// The result shares the backing array; an empty input yields nil.
func AsConjugateSlice128(zs []complex128) []Conjugate[float64] {
	if len(zs) == 0 {
		return nil
	}

	return unsafe.Slice((*Conjugate[float64])(unsafe.Pointer(unsafe.SliceData(zs))), len(zs))
}

// AsConjugateSlice64 reinterprets a complex64 slice in place.
func AsConjugateSlice64(zs []complex64) []Conjugate[float32] {
	if len(zs) == 0 {
		return nil
	}

	return unsafe.Slice((*Conjugate[float32])(unsafe.Pointer(unsafe.SliceData(zs))), len(zs))
}
