// SPDX-License-Identifier: MIT

package matrix

const opSkewBlock = "SkewBlock"

// SkewBlock assembles the (r+c)×(r+c) skew-symmetric matrix
//
//	[[ 0,  A ],
//	 [ −Aᵀ, 0 ]]
//
// from an r×c block A. The lower-left block is read through
// a.NegatedTranspose(), so no intermediate −Aᵀ is allocated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O((r+c)²), Space O((r+c)²).
func SkewBlock(a *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSkewBlock, err)
	}

	r, c := a.r, a.c
	n := r + c
	out, err := NewDense(n, n, withPolicyOf(a))
	if err != nil {
		return nil, matrixErrorf(opSkewBlock, err)
	}

	// Upper-right: A.
	a.Do(func(i, j int, v float64) bool {
		out.data[i*n+(r+j)] = v
		return true
	})
	// Lower-left: −Aᵀ, c×r.
	a.NegatedTranspose().Do(func(i, j int, v float64) bool {
		out.data[(r+i)*n+j] = v
		return true
	})

	return out, nil
}

// withPolicyOf carries the finite-only flag of d into a new matrix.
func withPolicyOf(d *Dense) Option {
	if d.validateNaNInf {
		return WithValidateNaNInf()
	}

	return WithNoValidateNaNInf()
}
