// SPDX-License-Identifier: MIT

//go:build scalardebug

package scalar

// debugChecks gates assertions that must cost nothing in release builds.
const debugChecks = true
