// SPDX-License-Identifier: MIT
// Package numeric: sentinel error set shared by vector and matrix.
// Public APIs return these (optionally wrapped with %w and call-site context)
// and tests match them via errors.Is. Panics are reserved for programmer
// errors in private kernels and for nonsensical option values.

package numeric

import "errors"

// Every message is prefixed with "vecmat: ..." so that errors from any of the
// container packages grep the same way.
var (
	// ErrOutOfRange indicates that an element index (or row/column) is outside
	// the fixed bounds of the container. At/Set/Row/Col return this, never panic.
	ErrOutOfRange = errors.New("vecmat: index out of range")

	// ErrDimensionMismatch indicates that external data (a flat slice, a row
	// list, a decoded YAML sequence) does not have the container's exact shape.
	ErrDimensionMismatch = errors.New("vecmat: dimension mismatch")

	// ErrDivisionByZero is returned by the checked division variants when an
	// integral element type would be divided by zero.
	ErrDivisionByZero = errors.New("vecmat: integer division by zero")

	// ErrUnsupportedType is returned by codecs that cannot represent the
	// element type (YAML has no complex scalar).
	ErrUnsupportedType = errors.New("vecmat: unsupported element type")
)
