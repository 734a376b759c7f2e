// SPDX-License-Identifier: MIT
package affinity

import "math"

// RowResult is the outcome of one bandwidth search.
type RowResult struct {
	Row        []float64 // p_j|i, zero at self
	Beta       float64   // precision that produced Row
	Entropy    float64   // Shannon entropy of Row (nats)
	Iterations int       // candidates evaluated
	Converged  bool      // |Entropy - log(perplexity)| < tolerance
}

// SearchRow runs the bandwidth search for one row of distances.
// self is the index of the point itself (its column is forced to 0); pass -1
// when dist holds neighbours only.
//
// A row without any finite neighbour distance yields an all-zero row and
// Converged = true: there is nothing to search.
//
// Errors: ErrInvalidPerplexity, ErrInvalidOption.
func SearchRow(dist []float64, self int, perplexity float64, opts ...Option) (RowResult, error) {
	if err := validatePerplexity(perplexity); err != nil {
		return RowResult{}, err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return RowResult{}, err
	}
	row := make([]float64, len(dist))

	return searchRow(row, dist, self, math.Log(perplexity), o), nil
}

// searchRow writes the accepted probabilities into row (len(row) == len(dist)).
func searchRow(row, dist []float64, self int, target float64, o Options) RowResult {
	dmin := math.Inf(1)
	for j, d := range dist {
		if j != self && d < dmin {
			dmin = d
		}
	}
	if math.IsInf(dmin, 1) {
		for j := range row {
			row[j] = 0
		}

		return RowResult{Row: row, Converged: true}
	}

	var (
		beta   = 1.0
		lo     = math.Inf(-1)
		hi     = math.Inf(1)
		res    RowResult
		h      float64
		iter   int
		usedBt float64
	)
	for iter = 1; iter <= o.MaxIterations; iter++ {
		usedBt = beta
		h = evaluate(row, dist, self, dmin, beta)
		diff := h - target
		if math.Abs(diff) < o.Tolerance {
			res.Converged = true
			break
		}
		if diff > 0 {
			// entropy too high: sharpen
			lo = beta
			if math.IsInf(hi, 1) {
				beta *= 2
			} else {
				beta = (beta + hi) / 2
			}
		} else {
			hi = beta
			if math.IsInf(lo, -1) {
				beta /= 2
			} else {
				beta = (beta + lo) / 2
			}
		}
	}
	if iter > o.MaxIterations {
		iter = o.MaxIterations
	}
	res.Row = row
	res.Beta = usedBt
	res.Entropy = h
	res.Iterations = iter

	return res
}

// evaluate fills row with the normalised weights for beta and returns the
// row entropy. Distances are shifted by dmin so the largest weight is 1;
// the normalised row and the entropy are unchanged by the shift.
func evaluate(row, dist []float64, self int, dmin, beta float64) float64 {
	var sum float64
	for j, d := range dist {
		if j == self {
			row[j] = 0
			continue
		}
		w := math.Exp(-beta * (d - dmin))
		row[j] = w
		sum += w
	}
	if sum < DefaultEpsilon {
		sum = DefaultEpsilon
	}

	var weighted float64
	for j, w := range row {
		if w == 0 {
			continue
		}
		p := w / sum
		row[j] = p
		weighted += p * (dist[j] - dmin)
	}

	return math.Log(sum) + beta*weighted
}

// Entropy returns the Shannon entropy -Σ p·log p (nats) of a probability row.
// Zero entries contribute nothing.
func Entropy(p []float64) float64 {
	var h float64
	for _, v := range p {
		if v > 0 {
			h -= v * math.Log(v)
		}
	}

	return h
}
