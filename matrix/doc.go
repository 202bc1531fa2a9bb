// SPDX-License-Identifier: MIT

// Package matrix is a small row-major float64 matrix layer built on the
// scalar package.
//
// What & Why:
//
//	Dense stores r×c values in one flat slice. NegatedView is a zero-copy
//	window over a Dense that reads every element as its negation and stores
//	writes negated, element by element through scalar.Negated. A skew-symmetric
//	block [[0, A], [−Aᵀ, 0]] therefore needs only the storage of A.
//
// Numeric policy:
//
//	Finiteness is decided by scalar.IsFinite. Dense may reject NaN/±Inf on
//	ingestion and Set (WithValidateNaNInf, the default). Kernels propagate
//	whatever values they are given; use ValidateFinite to check a result.
//
// Errors:
//
//	Public functions never panic on user input. They return package
//	sentinels wrapped with operation context; match them with errors.Is.
//
// Complexity:
//
//	At/Set and view construction are O(1); kernels are O(r*c).
package matrix
