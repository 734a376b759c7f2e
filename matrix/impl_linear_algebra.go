// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - In-place scaling used by the exaggeration phases and the shared
//     "<tag>: <sentinel>" error wrapper of the package kernels.

package matrix

import "fmt"

const opScaleInPlace = "ScaleInPlace"

// matrixErrorf wraps err with a kernel tag: "<tag>: <underlying>".
// Preserves errors.Is/As on the sentinel. Caller guarantees err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ScaleInPlace multiplies every element of m by alpha.
// alpha must be finite; NaN/Inf factors are rejected with ErrNaNInf so an
// exaggeration phase can never poison a probability matrix.
// Complexity: O(r*c), no allocation.
func ScaleInPlace(m *Dense, alpha float64) error {
	if m == nil {
		return matrixErrorf(opScaleInPlace, ErrNilMatrix)
	}
	if isNonFinite(alpha) {
		return matrixErrorf(opScaleInPlace, ErrNaNInf)
	}
	scaleSlice(m.data, alpha)

	return nil
}

// scaleSlice is the shared flat multiply loop.
func scaleSlice(data []float64, alpha float64) {
	for idx := range data {
		data[idx] *= alpha
	}
}
