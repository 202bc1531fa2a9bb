// SPDX-License-Identifier: MIT

package matrix

// Test bridge: white-box access for the external matrix_test package.

// PanicEpsilonInvalid exposes the WithEpsilon panic message.
const PanicEpsilonInvalid = panicEpsilonInvalid

// OptionsSnapshot is a read-only copy of the resolved Options.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshot resolves opts over the defaults.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf}
}

// FlatSigned exposes the kernel fast-path selector.
func FlatSigned(m Matrix) (sign float64, ok bool) {
	_, sign, ok = flatSigned(m)
	return sign, ok
}
