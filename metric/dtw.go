// SPDX-License-Identifier: MIT
package metric

import "math"

// DTW is the Dynamic Time Warping distance: each sample row is read as a
// time series and the cheapest monotone alignment of the two series is
// measured with |a_i - b_j| local costs.
//
// Recurrence over an (n+1)×(m+1) table with D[0][0] = 0 and +∞ borders:
//
//	D[i][j] = |a[i-1] - b[j-1]| + min(D[i-1][j]+SlopePenalty,
//	                                  D[i][j-1]+SlopePenalty,
//	                                  D[i-1][j-1])
//
// Only two rows are kept (O(m) memory). Window > 0 restricts the alignment
// to the Sakoe–Chiba band |i-j| ≤ Window.
//
// The distance is symmetric, non-negative and zero for identical rows.
type DTW struct {
	Window       int
	SlopePenalty float64
}

func (DTW) Name() string           { return "dtw" }
func (DTW) Compatibility() KindSet { return numeric }

func (t DTW) Distance(a, b []float64) float64 {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		if n == m {
			return 0
		}
		return math.Inf(1)
	}

	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if t.Window > 0 && absInt(i-j) > t.Window {
				curr[j] = inf
				continue
			}
			ins := prev[j] + t.SlopePenalty
			del := curr[j-1] + t.SlopePenalty
			best := math.Min(math.Min(ins, del), prev[j-1])
			curr[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

var _ Metric = DTW{}
