// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/scalarkit/scalar"
)

const (
	opAllClose       = "AllClose"
	opIsSkew         = "IsSkewSymmetric"
	opCountNonFinite = "CountNonFinite"
	opSignPattern    = "SignPattern"
)

// AllClose reports whether a and b match element-wise under the eps policy.
//
// MAIN DESCRIPTION:
//   - eps > 0 (default DefaultEpsilon): scalar.IsNumericallyEqual with relative
//     tolerance eps, i.e. |a−b| ≤ eps·max(|a|,|b|,1).
//   - eps == 0: exact equality.
//
// Behavior highlights:
//   - NaN matches NaN; an infinity matches only the same-signed infinity.
//   - Early exit on the first mismatch.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	cmp := gatherOptions(opts...).comparer()

	if da, sa, okA := flatSigned(a); okA {
		if db, sb, okB := flatSigned(b); okB {
			for idx := range da {
				if !cmp.equal(sa*da[idx], sb*db[idx]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	rows, cols := a.Rows(), a.Cols()
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !cmp.equal(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsSkewSymmetric reports whether m == −mᵀ under the eps policy.
//
// Implementation:
//   - *Dense: AllClose(m, m.NegatedTranspose()); no copy of m is made.
//   - otherwise: compare m(i,j) with −m(j,i) over the upper triangle and diagonal.
//
// Behavior highlights:
//   - The diagonal must be zero within eps.
//   - NaN entries match NaN, as in AllClose.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n²), Space O(1).
func IsSkewSymmetric(m Matrix, opts ...Option) (bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return false, matrixErrorf(opIsSkew, err)
	}
	if d, ok := m.(*Dense); ok {
		return AllClose(d, d.NegatedTranspose(), opts...)
	}

	cmp := gatherOptions(opts...).comparer()
	n := m.Rows()
	var i, j int
	var a, b float64
	var err error
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if a, err = m.At(i, j); err != nil {
				return false, matrixErrorf(opIsSkew, err)
			}
			if b, err = m.At(j, i); err != nil {
				return false, matrixErrorf(opIsSkew, err)
			}
			if !cmp.equal(a, -b) {
				return false, nil
			}
		}
	}

	return true, nil
}

// CountNonFinite returns how many elements are NaN or ±Inf (scalar.IsFinite).
// Sign flips do not change finiteness, so views are scanned in place.
// Complexity: O(r*c).
func CountNonFinite(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opCountNonFinite, err)
	}

	count := 0
	if data, _, ok := flatSigned(m); ok {
		for _, x := range data {
			if !scalar.IsFinite(x) {
				count++
			}
		}

		return count, nil
	}

	rows, cols := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			x, err := m.At(i, j)
			if err != nil {
				return 0, matrixErrorf(opCountNonFinite, err)
			}
			if !scalar.IsFinite(x) {
				count++
			}
		}
	}

	return count, nil
}

// SignPattern returns scalar.Sign of every logical element as a rows×cols grid.
//
// Behavior highlights:
//   - ±0 and NaN map to 0; ±Inf map to ±1.
//   - Negated views answer through scalar.Negated.Sign, i.e. the sign of the
//     logical value, never the stored sign bit.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func SignPattern(m Matrix) ([][]int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSignPattern, err)
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([][]int, rows)
	var i, j int
	for i = 0; i < rows; i++ {
		out[i] = make([]int, cols)
	}

	switch v := m.(type) {
	case *Dense:
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				out[i][j] = scalar.Sign(v.data[i*cols+j])
			}
		}
	case *NegatedView:
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				e, err := v.Elem(i, j)
				if err != nil {
					return nil, matrixErrorf(opSignPattern, err)
				}
				out[i][j] = e.Sign()
			}
		}
	default:
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				x, err := m.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opSignPattern, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				out[i][j] = scalar.Sign(x)
			}
		}
	}

	return out, nil
}
