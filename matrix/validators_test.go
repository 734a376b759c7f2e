// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/manifold/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

func TestValidateSquare(t *testing.T) {
	t.Parallel()

	sq, _ := matrix.NewDense(3, 3)
	rect, _ := matrix.NewDense(2, 3)
	var typedNil *matrix.Dense

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquare(typedNil), matrix.ErrNilMatrix)
}

func TestValidateSymmetricAndDiagonal(t *testing.T) {
	t.Parallel()

	sym := mustFrom(t, [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}})
	require.NoError(t, matrix.ValidateSymmetric(sym, matrix.DefaultEpsilon))
	require.NoError(t, matrix.ValidateZeroDiagonal(sym, matrix.DefaultEpsilon))

	asym := mustFrom(t, [][]float64{{0, 1}, {1.5, 0}})
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 1e-3), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(asym, 1))

	diag := mustFrom(t, [][]float64{{0, 1}, {1, 0.1}})
	require.ErrorIs(t, matrix.ValidateZeroDiagonal(diag, 1e-3), matrix.ErrNonZeroDiagonal)

	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
}

func TestValidateRowStochastic(t *testing.T) {
	t.Parallel()

	p := mustFrom(t, [][]float64{{0, 0.25, 0.75}, {0.5, 0, 0.5}})
	require.NoError(t, matrix.ValidateRowStochastic(p, matrix.DefaultStochasticTolerance))

	bad := mustFrom(t, [][]float64{{0, 0.5, 0.4}})
	require.ErrorIs(t, matrix.ValidateRowStochastic(bad, 1e-6), matrix.ErrNotStochastic)

	neg := mustFrom(t, [][]float64{{-0.5, 1.5}})
	require.ErrorIs(t, matrix.ValidateRowStochastic(neg, 1e-6), matrix.ErrNotStochastic)
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
}
