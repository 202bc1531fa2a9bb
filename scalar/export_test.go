// SPDX-License-Identifier: MIT

package scalar

// Test bridge: constants the external scalar_test package asserts against.
const (
	PanicToleranceInvalid = panicToleranceInvalid
	PanicNilTarget        = panicNilTarget
	DebugChecks           = debugChecks
)

// GatherOptionsSnapshot exposes resolved options as plain values.
func GatherOptionsSnapshot(opts ...Option) (tolerance float64, absolute bool) {
	o := gatherOptions(opts...)
	return o.tolerance, o.absolute
}
