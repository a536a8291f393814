// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vecmat/numeric"
)

// Vector is the read-only view shared by Vec2, Vec3 and Vec4.
// Complexity: all methods O(1).
type Vector[T numeric.Scalar] interface {
	// Len returns the fixed number of elements.
	Len() int

	// At returns element i, or ErrOutOfRange if i is not in [0, Len()).
	At(i int) (T, error)
}

// Compile-time conformance for one instantiation of each arity.
var (
	_ Vector[float64] = Vec2[float64]{}
	_ Vector[float64] = Vec3[float64]{}
	_ Vector[float64] = Vec4[float64]{}

	_ fmt.Stringer     = Vec3[int]{}
	_ yaml.Marshaler   = Vec3[float64]{}
	_ yaml.Unmarshaler = (*Vec3[float64])(nil)
)

// vectorErrorf attaches "<Type>.<method>(args)" context to a sentinel.
func vectorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

func indexErrorf(typ, method string, i int) error {
	return vectorErrorf(fmt.Sprintf("%s.%s(%d)", typ, method, i), numeric.ErrOutOfRange)
}

func lengthErrorf(op string, got, want int) error {
	return vectorErrorf(fmt.Sprintf("%s: got %d elements, want %d", op, got, want), numeric.ErrDimensionMismatch)
}

// format renders xs as "(a, b, c)" using %v per element.
func format[T numeric.Scalar](xs []T) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range xs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(')')

	return sb.String()
}

// marshalFlow encodes xs as a YAML flow sequence ("[1, 2]").
func marshalFlow[T numeric.Scalar](typ string, xs []T) (any, error) {
	if numeric.IsComplex[T]() {
		return nil, vectorErrorf(typ+".MarshalYAML", numeric.ErrUnsupportedType)
	}
	var n yaml.Node
	if err := n.Encode(xs); err != nil {
		return nil, err
	}
	n.Style = yaml.FlowStyle

	return &n, nil
}

// unmarshalExact decodes a YAML sequence into dst, requiring exactly len(dst)
// elements. dst is left untouched on any error.
func unmarshalExact[T numeric.Scalar](typ string, value *yaml.Node, dst []T) error {
	if numeric.IsComplex[T]() {
		return vectorErrorf(typ+".UnmarshalYAML", numeric.ErrUnsupportedType)
	}
	var xs []T
	if err := value.Decode(&xs); err != nil {
		return vectorErrorf(typ+".UnmarshalYAML", err)
	}
	if len(xs) != len(dst) {
		return lengthErrorf(typ+".UnmarshalYAML", len(xs), len(dst))
	}
	copy(dst, xs)

	return nil
}

// fromSlice copies s into dst after an exact length check.
func fromSlice[T numeric.Scalar](op string, dst, s []T) error {
	if len(s) != len(dst) {
		return lengthErrorf(op, len(s), len(dst))
	}
	copy(dst, s)

	return nil
}
