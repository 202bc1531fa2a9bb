// SPDX-License-Identifier: MIT
// Package matrix provides element-wise operations on any Matrix implementation:
// addition, subtraction, scaling, negation, transpose and the Hadamard product.
// All functions perform strict fail-fast validation and return clear errors on
// nil operands and dimension mismatches.
//
// Purpose:
//   - Define operation tags and the shared flat fast-path used by every kernel.
//
// Notes:
//   - Kernels never reject values: NaN/Inf propagate into results. Use
//     ValidateFinite on a result when the pipeline needs a finite guarantee.

package matrix

import (
	"fmt"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opNegate    = "Negate"
	opHadamard  = "Hadamard"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// flatSigned exposes the flat row-major storage of m and the sign that turns
// stored values into logical ones.
//
// MAIN DESCRIPTION:
//   - *Dense: (data, +1, true).
//   - untransposed *NegatedView: (base data, −1, true).
//   - anything else, including transposed views: (nil, 0, false).
//
// Behavior highlights:
//   - Multiplying a non-NaN value by ±1 is an exact sign flip, so kernels that
//     fold the sign into their arithmetic produce the same values as reading
//     through At. The sign bit of a NaN may differ.
//
// Complexity:
//   - Time O(1), Space O(1).
func flatSigned(m Matrix) (data []float64, sign float64, ok bool) {
	switch v := m.(type) {
	case *Dense:
		return v.data, 1, true
	case *NegatedView:
		if !v.transposed {
			return v.base.data, -1, true
		}
	}

	return nil, 0, false
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path when both operands expose flat storage (flatSigned):
//     single loop with the view signs folded in. Otherwise At with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// AI-Hints:
//   - A + B.Negated() is A − B with no temporary for −B.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: flat storage on both sides.
	if da, sa, okA := flatSigned(a); okA {
		if db, sb, okB := flatSigned(b); okB {
			sb *= sign
			for idx := range res.data {
				res.data[idx] = sa*da[idx] + sb*db[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Input is validated non-nil; the original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(rows, cols).
//   - Stage 2: flat multiply with the view sign folded into alpha; else At loop.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - alpha = 0 yields an explicit zero matrix (signed zeros follow IEEE).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if data, s, ok := flatSigned(m); ok {
		alpha *= s
		for idx := range res.data {
			res.data[idx] = data[idx] * alpha
		}

		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// Negate returns a materialised copy of −m.
//
// Notes:
//   - Each element is an exact sign flip (NaN payloads and signed zeros are
//     preserved up to the sign bit).
//   - For a zero-copy alternative over a Dense use Dense.Negated.
func Negate(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNegate, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNegate, err)
	}

	if data, s, ok := flatSigned(m); ok {
		if s > 0 {
			for idx := range res.data {
				res.data[idx] = -data[idx]
			}
		} else {
			copy(res.data, data)
		}

		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opNegate, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = -v
		}
	}

	return res, nil
}

// Transpose returns a new matrix mᵀ.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: flat strided copy for flat storage (sign applied); else At loop.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Dense.NegatedTranspose is the zero-copy −mᵀ.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if data, s, ok := flatSigned(m); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				if s > 0 {
					res.data[j*rows+i] = data[baseSrc+j]
				} else {
					res.data[j*rows+i] = -data[baseSrc+j]
				}
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate Dense(rows, cols).
//   - Stage 2: flat loop with the product of view signs folded in; else At loop.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Two negated operands cancel exactly: A.Negated() ⊙ B.Negated() == A ⊙ B bitwise.
func Hadamard(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	if da, sa, okA := flatSigned(a); okA {
		if db, sb, okB := flatSigned(b); okB {
			s := sa * sb
			for idx := range res.data {
				res.data[idx] = s * (da[idx] * db[idx])
			}

			return res, nil
		}
	}

	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av * bv
		}
	}

	return res, nil
}
