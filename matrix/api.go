// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Small constructors and compositions built on the canonical kernels.

package matrix

const (
	opZerosLike  = "ZerosLike"
	opSymmetrize = "Symmetrize"
)

// ZerosLike returns a zero Dense with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZerosLike, err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// Symmetrize returns (m + mᵀ)·alpha for a square m.
// alpha = 0.5 gives the arithmetic symmetric part; affinity.Joint uses 1/(2n).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Symmetrize(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opSymmetrize, ErrNaNInf)
	}

	n := m.Rows()
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}

	var (
		i, j     int
		aij, aji float64
		s        float64
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opSymmetrize, err)
			}
			if aji, err = m.At(j, i); err != nil {
				return nil, matrixErrorf(opSymmetrize, err)
			}
			s = (aij + aji) * alpha
			out.data[i*n+j] = s
			out.data[j*n+i] = s
		}
	}

	return out, nil
}
