// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults.
//
// Design goals:
//   - Deterministic behavior: no global mutable state, no implicit randomness.
//   - Single source of truth: every tolerance used by validators is named here.
package matrix

import "math"

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks
	// (symmetry, zero diagonal).
	DefaultEpsilon = 1e-9

	// DefaultStochasticTolerance is the tolerance used by ValidateRowStochastic.
	// Bandwidth search normalizes rows exactly, so drift is rounding only.
	DefaultStochasticTolerance = 1e-6

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
