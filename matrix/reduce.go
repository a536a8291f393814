// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/vecmat/internal/ew"
	"github.com/katalvlaran/vecmat/numeric"
)

// Mutable is a Matrix whose elements can be assigned.
// Pointers to every MatRxC shape implement it.
type Mutable[T numeric.Scalar] interface {
	Matrix[T]

	// Set assigns element (r, c), or returns ErrOutOfRange.
	Set(r, c int, x T) error
}

var (
	_ Mutable[int] = (*Mat2x2[int])(nil)
	_ Mutable[int] = (*Mat3x4[int])(nil)
	_ Mutable[int] = (*Mat4x4[int])(nil)
)

// Max returns the largest element of m. Complex matrices are unordered and
// rejected at compile time. A NaN element makes the result NaN.
func Max[T numeric.Real](m Matrix[T]) T { return ew.Max(flatten[T](m)) }

// Min returns the smallest element of m; see Max.
func Min[T numeric.Real](m Matrix[T]) T { return ew.Min(flatten[T](m)) }

// RemAssign sets m[r][c] %= o[r][c] for integer matrices of equal shape.
// Errors (m is unchanged on any error):
//   - ErrDimensionMismatch when the shapes differ.
//   - ErrDivisionByZero, as a *numeric.DivisorError carrying the row-major
//     position, when any o[r][c] is zero.
func RemAssign[T numeric.Integer](m Mutable[T], o Matrix[T]) error {
	if m.Rows() != o.Rows() || m.Cols() != o.Cols() {
		return shapeErrorf("RemAssign",
			fmt.Sprintf("%dx%d", o.Rows(), o.Cols()), fmt.Sprintf("%dx%d", m.Rows(), m.Cols()))
	}
	ds := flatten[T](o)
	if err := numeric.CheckDivisors(ds); err != nil {
		return matrixErrorf("RemAssign", err)
	}
	xs := flatten[T](m)
	ew.Rem(xs, ds)
	unflatten[T](m, xs)

	return nil
}

// RemScalarAssign sets m[r][c] %= s. A zero s returns ErrDivisionByZero and
// leaves m unchanged.
func RemScalarAssign[T numeric.Integer](m Mutable[T], s T) error {
	if err := numeric.CheckDivisor(s); err != nil {
		return matrixErrorf("RemScalarAssign", err)
	}
	xs := flatten[T](m)
	ew.RemScalar(xs, s)
	unflatten[T](m, xs)

	return nil
}

// flatten copies m into a fresh row-major slice.
func flatten[T numeric.Scalar](m Matrix[T]) []T {
	rows, cols := m.Rows(), m.Cols()
	xs := make([]T, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			xs[r*cols+c], _ = m.At(r, c) // in range
		}
	}

	return xs
}

func unflatten[T numeric.Scalar](m Mutable[T], xs []T) {
	cols := m.Cols()
	for i, x := range xs {
		_ = m.Set(i/cols, i%cols, x) // in range
	}
}
