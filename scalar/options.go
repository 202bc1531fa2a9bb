// SPDX-License-Identifier: MIT

package scalar

// Defaults for numeric comparison. The zero tolerance value means "use the
// Significant entry of the operand precision" (see LimitsOf).
const (
	// DefaultTolerance selects the per-precision Significant tolerance.
	DefaultTolerance = 0.0

	// DefaultAbsolute keeps comparisons relative: |a−b| ≤ tol·max(|a|,|b|,1).
	DefaultAbsolute = false
)

const (
	panicToleranceInvalid = "scalar: WithTolerance: tol must be finite and > 0"
	panicNilTarget        = "scalar: negated view over nil target"
)

// Option adjusts a numeric comparison. Constructors panic on nonsensical
// values (programmer error); applying an Option never fails.
type Option func(*Options)

// Options is the resolved comparison configuration.
type Options struct {
	tolerance float64 // > 0, or DefaultTolerance for the per-precision default
	absolute  bool    // compare |a−b| ≤ tol without scaling
}

// WithTolerance sets an explicit tolerance.
// Panics when tol is NaN, infinite, zero or negative.
func WithTolerance(tol float64) Option {
	if !IsFinite(tol) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithAbsoluteTolerance compares |a−b| against the tolerance directly,
// without scaling by the operand magnitude.
func WithAbsoluteTolerance() Option {
	return func(o *Options) { o.absolute = true }
}

// WithRelativeTolerance restores the default scaled comparison.
func WithRelativeTolerance() Option {
	return func(o *Options) { o.absolute = false }
}

// gatherOptions applies opts over the documented defaults; last writer wins.
func gatherOptions(opts ...Option) Options {
	o := Options{tolerance: DefaultTolerance, absolute: DefaultAbsolute}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// resolveTolerance fills in the per-precision default for F.
func resolveTolerance[F Float](opts []Option) Options {
	o := gatherOptions(opts...)
	if o.tolerance == DefaultTolerance {
		o.tolerance = float64(LimitsOf[F]().Significant)
	}

	return o
}
