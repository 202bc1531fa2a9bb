// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - validateNaNInf is a per-matrix flag fixed at construction (NewDense,
//     NewDenseFrom). Views share the flag of their base.
//   - eps drives comparisons (AllClose, IsSkewSymmetric). eps == 0 asks for
//     exact equality; NaN still matches NaN there.
package matrix

import "github.com/katalvlaran/scalarkit/scalar"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative relative tolerance used by comparisons.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the numeric tolerance eps used by comparisons.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0 (scalar.IsFinite).
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//   - eps is relative: |a−b| ≤ eps·max(|a|,|b|,1), see scalar.IsNumericallyEqual.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Use 0 for bitwise-style checks on values produced by exact sign flips.
func WithEpsilon(eps float64) Option {
	if !scalar.IsFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
// Existing matrices keep their policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user-provided setters on top of defaults.
// Nil setters are skipped; last writer wins.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// comparer resolves o.eps once for an element-wise comparison loop.
type comparer struct {
	exact bool          // eps == 0
	tol   scalar.Option // relative tolerance for scalar.IsNumericallyEqual
}

func (o Options) comparer() comparer {
	if o.eps == 0 {
		return comparer{exact: true}
	}

	return comparer{tol: scalar.WithTolerance(o.eps)}
}

// equal reports whether a and b match; NaN matches NaN in both modes.
func (c comparer) equal(a, b float64) bool {
	if c.exact {
		return a == b || (scalar.IsNaN(a) && scalar.IsNaN(b))
	}

	return scalar.IsNumericallyEqual(a, b, c.tol)
}
