// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - ClampMin, the epsilon floor the embedding loop applies to its
//     similarity matrix every epoch.
//
// Determinism & Performance:
//   - Flat loops over the row-major buffer; no allocation in ClampMin.

package matrix

const opClampMin = "ClampMin"

// ClampMin replaces every element of m below floor with floor, in place.
// NaN entries are left untouched so callers can still detect divergence.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf if floor is not finite.
//
// Complexity: O(r*c).
func ClampMin(m *Dense, floor float64) error {
	if m == nil {
		return matrixErrorf(opClampMin, ErrNilMatrix)
	}
	if isNonFinite(floor) {
		return matrixErrorf(opClampMin, ErrNaNInf)
	}
	for idx, v := range m.data {
		if v < floor {
			m.data[idx] = floor
		}
	}

	return nil
}
