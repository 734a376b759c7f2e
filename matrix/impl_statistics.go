// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Reductions over a whole matrix or along its rows (RowSums, FrobeniusNorm).
//   - Dense fast-paths delegate the inner loops to gonum/floats; the generic
//     path reads through At in fixed i→j order.
//
// AI-Hints:
//   - RowSums on a conditional affinity matrix should be ≈1 per row; see ValidateRowStochastic.

package matrix

import "gonum.org/v1/gonum/floats"

const (
	opRowSums       = "RowSums"
	opFrobeniusNorm = "FrobeniusNorm"
)

// RowSums returns s[i] = Σ_j m[i,j].
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	rows, cols := m.Rows(), m.Cols()
	sums := make([]float64, rows)
	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			sums[i] = floats.Sum(dm.data[i*cols : (i+1)*cols])
		}

		return sums, nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			sums[i] += v
		}
	}

	return sums, nil
}

// FrobeniusNorm returns sqrt(Σ m[i,j]²).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFrobeniusNorm, err)
	}
	if dm, ok := m.(*Dense); ok {
		return floats.Norm(dm.data, 2), nil
	}

	rows, cols := m.Rows(), m.Cols()
	flat := make([]float64, 0, rows*cols)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, matrixErrorf(opFrobeniusNorm, err)
			}
			flat = append(flat, v)
		}
	}

	return floats.Norm(flat, 2), nil
}
