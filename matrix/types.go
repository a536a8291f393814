// SPDX-License-Identifier: MIT

// Package matrix: the shared read-only Matrix view and the row-wise helpers
// behind every MatRxC. Helpers take rows as variadic []T so that one
// implementation serves all nine shapes.
package matrix

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vecmat/numeric"
)

// Matrix is the read-only view implemented by every MatRxC.
// Complexity: all methods O(1).
type Matrix[T numeric.Scalar] interface {
	// Rows returns the fixed number of rows.
	Rows() int

	// Cols returns the fixed number of columns.
	Cols() int

	// At returns the element at (r, c), or ErrOutOfRange.
	At(r, c int) (T, error)
}

// Compile-time conformance for every shape.
var (
	_ Matrix[float64] = Mat2x2[float64]{}
	_ Matrix[float64] = Mat2x3[float64]{}
	_ Matrix[float64] = Mat2x4[float64]{}
	_ Matrix[float64] = Mat3x2[float64]{}
	_ Matrix[float64] = Mat3x3[float64]{}
	_ Matrix[float64] = Mat3x4[float64]{}
	_ Matrix[float64] = Mat4x2[float64]{}
	_ Matrix[float64] = Mat4x3[float64]{}
	_ Matrix[float64] = Mat4x4[float64]{}

	_ fmt.Stringer     = Mat3x3[int]{}
	_ yaml.Marshaler   = Mat3x3[float64]{}
	_ yaml.Unmarshaler = (*Mat3x3[float64])(nil)
)

// matrixErrorf attaches "<Type>.<method>(args)" context to a sentinel.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

func indexErrorf(typ, method string, idx ...int) error {
	args := make([]string, len(idx))
	for i, x := range idx {
		args[i] = fmt.Sprint(x)
	}

	return matrixErrorf(fmt.Sprintf("%s.%s(%s)", typ, method, strings.Join(args, ",")), numeric.ErrOutOfRange)
}

func shapeErrorf(op string, got string, want string) error {
	return matrixErrorf(fmt.Sprintf("%s: got %s, want %s", op, got, want), numeric.ErrDimensionMismatch)
}

// fromFlat copies a row-major flat slice into rows, requiring an exact length.
func fromFlat[T numeric.Scalar](op string, s []T, rows ...[]T) error {
	want := len(rows) * len(rows[0])
	if len(s) != want {
		return shapeErrorf(op, fmt.Sprintf("%d elements", len(s)), fmt.Sprintf("%d", want))
	}
	for i, row := range rows {
		copy(row, s[i*len(row):])
	}

	return nil
}

// checkDivisors validates every divisor row before anything is mutated.
// A reported DivisorError index is translated to the flat row-major position.
func checkDivisors[T numeric.Scalar](rows ...[]T) error {
	for r, row := range rows {
		err := numeric.CheckDivisors(row)
		if err == nil {
			continue
		}
		var de *numeric.DivisorError
		if errors.As(err, &de) {
			de.Index += r * len(row)
		}

		return err
	}

	return nil
}

func sumRows[T numeric.Scalar](rows ...[]T) T {
	var acc T
	for _, row := range rows {
		for _, x := range row {
			acc += x
		}
	}

	return acc
}

// approxRows compares a[i] with b[i] row by row.
func approxRows[T numeric.Scalar](a, b [][]T, opts ...numeric.Option) bool {
	for i := range a {
		if !numeric.ApproxEqualSlices(a[i], b[i], opts...) {
			return false
		}
	}

	return true
}

// format renders one bracketed row per line: "[1, 2]\n[3, 4]".
func format[T numeric.Scalar](rows ...[]T) string {
	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for j, x := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, x)
		}
		sb.WriteByte(']')
	}

	return sb.String()
}

// marshalRows encodes rows as a block sequence of flow-style rows:
//
//	- [1, 2]
//	- [3, 4]
func marshalRows[T numeric.Scalar](typ string, rows ...[]T) (any, error) {
	if numeric.IsComplex[T]() {
		return nil, matrixErrorf(typ+".MarshalYAML", numeric.ErrUnsupportedType)
	}
	var n yaml.Node
	if err := n.Encode(rows); err != nil {
		return nil, err
	}
	for _, row := range n.Content {
		row.Style = yaml.FlowStyle
	}

	return &n, nil
}

// unmarshalRows decodes a sequence of sequences into rows, requiring the exact
// shape. rows are left untouched on any error.
func unmarshalRows[T numeric.Scalar](typ string, value *yaml.Node, rows ...[]T) error {
	op := typ + ".UnmarshalYAML"
	if numeric.IsComplex[T]() {
		return matrixErrorf(op, numeric.ErrUnsupportedType)
	}
	var grid [][]T
	if err := value.Decode(&grid); err != nil {
		return matrixErrorf(op, err)
	}
	if len(grid) != len(rows) {
		return shapeErrorf(op, fmt.Sprintf("%d rows", len(grid)), fmt.Sprintf("%d", len(rows)))
	}
	for i, g := range grid {
		if len(g) != len(rows[i]) {
			return shapeErrorf(op, fmt.Sprintf("%d columns in row %d", len(g), i), fmt.Sprintf("%d", len(rows[i])))
		}
	}
	for i, g := range grid {
		copy(rows[i], g)
	}

	return nil
}
