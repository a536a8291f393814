// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/numeric"
	"github.com/stretchr/testify/require"
)

func TestMat_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[0.5, 1]\n[1.5, 2]", matrix.Mat2x2[float64]{{0.5, 1}, {1.5, 2}}.String())
	require.Equal(t, "[1, 2, 3]\n[4, 5, 6]", matrix.Mat2x3[int]{{1, 2, 3}, {4, 5, 6}}.String())
}

func TestMat_YAML_RoundTrip(t *testing.T) {
	t.Parallel()

	m := matrix.Mat2x3[float64]{{1, 2, 3}, {4.5, 5, 6}}
	out, err := yaml.Marshal(m)
	require.NoError(t, err)
	require.Equal(t, "- [1, 2, 3]\n- [4.5, 5, 6]\n", string(out))

	var back matrix.Mat2x3[float64]
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.Equal(t, m, back)

	type transform struct {
		Basis matrix.Mat2x2[int] `yaml:"basis"`
	}
	var tr transform
	require.NoError(t, yaml.Unmarshal([]byte("basis: [[1, 0], [0, 1]]\n"), &tr))
	require.Equal(t, matrix.Identity2[int](), tr.Basis)
}

func TestMat_YAML_ShapeMismatch(t *testing.T) {
	t.Parallel()

	m := matrix.Splat2x2(7)

	err := yaml.Unmarshal([]byte("[[1, 2], [3, 4], [5, 6]]"), &m)
	require.ErrorIs(t, err, numeric.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "3 rows")

	err = yaml.Unmarshal([]byte("[[1, 2], [3]]"), &m)
	require.ErrorIs(t, err, numeric.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "1 columns in row 1")

	require.Equal(t, matrix.Splat2x2(7), m, "untouched on error")
}

func TestMat_YAML_ComplexUnsupported(t *testing.T) {
	t.Parallel()

	_, err := yaml.Marshal(matrix.Identity2[complex128]())
	require.ErrorIs(t, err, numeric.ErrUnsupportedType)

	var m matrix.Mat2x2[complex64]
	require.ErrorIs(t, yaml.Unmarshal([]byte("[[1, 0], [0, 1]]"), &m), numeric.ErrUnsupportedType)
}
