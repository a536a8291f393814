// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/vecmat/internal/ew"
	"github.com/katalvlaran/vecmat/numeric"
)

// Mutable is a Vector whose elements can be assigned.
// *Vec2, *Vec3 and *Vec4 implement it.
type Mutable[T numeric.Scalar] interface {
	Vector[T]

	// Set assigns element i, or returns ErrOutOfRange.
	Set(i int, x T) error
}

var (
	_ Mutable[int] = (*Vec2[int])(nil)
	_ Mutable[int] = (*Vec3[int])(nil)
	_ Mutable[int] = (*Vec4[int])(nil)
)

// Max returns the largest element of v. Only ordered element types have a
// maximum, so complex vectors are rejected at compile time. A NaN element
// makes the result NaN.
//
//	vector.Max(vector.Vec3[int]{4, 9, 2}) // 9
func Max[T numeric.Real](v Vector[T]) T { return ew.Max(elements[T](v)) }

// Min returns the smallest element of v; see Max.
func Min[T numeric.Real](v Vector[T]) T { return ew.Min(elements[T](v)) }

// RemAssign sets v[i] %= o[i] for integer vectors of equal length.
// Errors (v is unchanged on any error):
//   - ErrDimensionMismatch when v.Len() != o.Len().
//   - ErrDivisionByZero, as a *numeric.DivisorError, when any o[i] is zero.
func RemAssign[T numeric.Integer](v Mutable[T], o Vector[T]) error {
	if v.Len() != o.Len() {
		return lengthErrorf("RemAssign", o.Len(), v.Len())
	}
	ds := elements[T](o)
	if err := numeric.CheckDivisors(ds); err != nil {
		return vectorErrorf("RemAssign", err)
	}
	xs := elements[T](v)
	ew.Rem(xs, ds)
	scatter[T](v, xs)

	return nil
}

// RemScalarAssign sets v[i] %= s. A zero s returns ErrDivisionByZero and
// leaves v unchanged.
func RemScalarAssign[T numeric.Integer](v Mutable[T], s T) error {
	if err := numeric.CheckDivisor(s); err != nil {
		return vectorErrorf("RemScalarAssign", err)
	}
	xs := elements[T](v)
	ew.RemScalar(xs, s)
	scatter[T](v, xs)

	return nil
}

// elements copies v into a fresh slice in index order.
func elements[T numeric.Scalar](v Vector[T]) []T {
	xs := make([]T, v.Len())
	for i := range xs {
		xs[i], _ = v.At(i) // i < Len()
	}

	return xs
}

func scatter[T numeric.Scalar](v Mutable[T], xs []T) {
	for i, x := range xs {
		_ = v.Set(i, x) // i < Len()
	}
}
