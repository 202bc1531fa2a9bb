// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/scalarkit/matrix"
)

// ExampleDense_Negated reads and writes through a zero-copy negated view.
func ExampleDense_Negated() {
	a, _ := matrix.NewDenseFrom(2, 2, []float64{1, -2, 3, 4})
	v := a.Negated()
	fmt.Print(v)

	_ = v.Set(0, 0, 10)
	fmt.Print(a)
	// Output:
	// [-1, 2]
	// [-3, -4]
	// [-10, -2]
	// [3, 4]
}

// ExampleSkewBlock builds [[0, A], [−Aᵀ, 0]] and checks it.
func ExampleSkewBlock() {
	a, _ := matrix.NewDenseFrom(1, 2, []float64{1.5, -2})
	s, _ := matrix.SkewBlock(a)
	ok, _ := matrix.IsSkewSymmetric(s, matrix.WithEpsilon(0))
	fmt.Print(s)
	fmt.Println(ok)
	// Output:
	// [0, 1.5, -2]
	// [-1.5, 0, 0]
	// [2, 0, 0]
	// true
}
