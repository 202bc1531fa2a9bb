// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/scalarkit/scalar"
)

const (
	ctxNegAt  = "NegatedView.At"
	ctxNegSet = "NegatedView.Set"
)

// NegatedView is a zero-copy window over a Dense whose elements read as the
// negation of the stored values.
//
// MAIN DESCRIPTION:
//   - Element (i,j) is scalar.NegView(&base.data[k]) where k is the base
//     offset of (i,j), or of (j,i) for a transposed view.
//   - Reads return −stored; writes store −v. Sign flips are exact, so a
//     write followed by a read returns v bit-for-bit.
//
// Behavior highlights:
//   - Mutations of the base are visible through the view and vice versa.
//   - The base finite-only policy applies to writes; −v is finite iff v is.
//   - Negated() on an untransposed view returns the base itself.
//
// Complexity:
//   - Construction O(1); At/Set O(1); Clone O(r*c).
//
// AI-Hints:
//   - NegatedTranspose() gives the lower-left block −Aᵀ of a skew-symmetric
//     matrix without copying A.
type NegatedView struct {
	base       *Dense // storage owner
	transposed bool   // element (i,j) maps to base (j,i)
}

var (
	_ Matrix       = (*NegatedView)(nil)
	_ fmt.Stringer = (*NegatedView)(nil)
)

// NewNegatedView returns the negated view of d, or ErrNilMatrix when d is nil.
func NewNegatedView(d *Dense) (*NegatedView, error) {
	if d == nil {
		return nil, fmt.Errorf("NewNegatedView: %w", ErrNilMatrix)
	}

	return &NegatedView{base: d}, nil
}

// Negated returns the zero-copy negated view of m.
// On a nil receiver the view has no base: validators and kernels reject it
// with ErrNilMatrix, while direct Rows/At calls panic.
func (m *Dense) Negated() *NegatedView { return &NegatedView{base: m} }

// NegatedTranspose returns the zero-copy view of −mᵀ.
// A nil receiver yields a base-less view, as for Negated.
func (m *Dense) NegatedTranspose() *NegatedView {
	return &NegatedView{base: m, transposed: true}
}

// Base returns the Dense that owns the storage.
func (v *NegatedView) Base() *Dense { return v.base }

// Transposed reports whether the view reads the base transposed.
func (v *NegatedView) Transposed() bool { return v.transposed }

// Rows returns the number of rows seen through the view.
func (v *NegatedView) Rows() int {
	if v.transposed {
		return v.base.c
	}

	return v.base.r
}

// Cols returns the number of columns seen through the view.
func (v *NegatedView) Cols() int {
	if v.transposed {
		return v.base.r
	}

	return v.base.c
}

// offset maps view coordinates to a base offset, or returns ErrOutOfRange.
func (v *NegatedView) offset(i, j int) (int, error) {
	if v.transposed {
		return v.base.indexOf(j, i)
	}

	return v.base.indexOf(i, j)
}

// Elem returns the scalar view of element (i,j).
// The returned view aliases the base cell and stays valid while the base lives.
func (v *NegatedView) Elem(i, j int) (scalar.Negated[float64], error) {
	k, err := v.offset(i, j)
	if err != nil {
		return scalar.Negated[float64]{}, fmt.Errorf("NegatedView.Elem(%d,%d): %w", i, j, err)
	}

	return scalar.NegView(&v.base.data[k]), nil
}

// At returns −base(i,j) (or −base(j,i) when transposed).
func (v *NegatedView) At(i, j int) (float64, error) {
	k, err := v.offset(i, j)
	if err != nil {
		return 0, fmt.Errorf("%s(%d,%d): %w", ctxNegAt, i, j, err)
	}

	return scalar.NegView(&v.base.data[k]).Get(), nil
}

// Set stores −val into the base so that At(i,j) reads val.
// Errors: ErrOutOfRange; ErrNaNInf under the base finite-only policy.
func (v *NegatedView) Set(i, j int, val float64) error {
	k, err := v.offset(i, j)
	if err != nil {
		return fmt.Errorf("%s(%d,%d): %w", ctxNegSet, i, j, err)
	}
	if v.base.validateNaNInf && !scalar.IsFinite(val) {
		return fmt.Errorf("%s(%d,%d): %w", ctxNegSet, i, j, ErrNaNInf)
	}
	scalar.NegView(&v.base.data[k]).Set(val)

	return nil
}

// Clone materialises the logical values into an independent Dense that
// keeps the base numeric policy.
// Complexity: O(r*c).
func (v *NegatedView) Clone() Matrix {
	rows, cols := v.Rows(), v.Cols()
	out := &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: v.base.validateNaNInf}
	v.Do(func(i, j int, x float64) bool {
		out.data[i*cols+j] = x
		return true
	})

	return out
}

// Negated undoes the view.
// For an untransposed view this is the base itself (no copy); for a
// transposed view it is a materialised transpose of the base.
func (v *NegatedView) Negated() Matrix {
	if !v.transposed {
		return v.base
	}
	b := v.base
	out := &Dense{r: b.c, c: b.r, data: make([]float64, len(b.data)), validateNaNInf: b.validateNaNInf}
	var i, j int
	for i = 0; i < b.r; i++ {
		for j = 0; j < b.c; j++ {
			out.data[j*b.r+i] = b.data[i*b.c+j]
		}
	}

	return out
}

// Do visits each logical element in row-major order of the view.
// Stops early when f returns false.
func (v *NegatedView) Do(f func(i, j int, x float64) bool) {
	rows, cols := v.Rows(), v.Cols()
	var i, j, k int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v.transposed {
				k = j*v.base.c + i
			} else {
				k = i*v.base.c + j
			}
			if !f(i, j, scalar.NegView(&v.base.data[k]).Get()) {
				return
			}
		}
	}
}

// String renders the logical values like Dense.String.
func (v *NegatedView) String() string {
	return formatRows(v.Rows(), v.Cols(), func(i, j int) float64 {
		x, _ := v.At(i, j)
		return x
	})
}
