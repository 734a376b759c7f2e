// SPDX-License-Identifier: MIT
package affinity

import (
	"context"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/katalvlaran/manifold/internal/parallel"
	"github.com/katalvlaran/manifold/matrix"
)

// Result is the conditional affinity matrix and per-row search diagnostics.
type Result struct {
	// P is n×n, row-stochastic, zero diagonal (rows without a finite
	// neighbour are all zero).
	P *matrix.Dense

	// Betas[i] is the precision accepted for row i.
	Betas []float64

	// Entropies[i] is the entropy of row i of P.
	Entropies []float64

	// Unconverged holds the rows whose search exhausted the iteration budget.
	Unconverged *roaring.Bitmap
}

// Estimate runs the bandwidth search on every row of the square distance
// matrix dist. Rows are independent and are searched in parallel; the result
// does not depend on the worker count.
//
// Errors: ErrInvalidPerplexity, ErrInvalidOption, ErrInvalidDistances,
// matrix.ErrNilMatrix, matrix.ErrNonSquare, ctx.Err().
func Estimate(ctx context.Context, dist *matrix.Dense, perplexity float64, opts ...Option) (*Result, error) {
	if err := validatePerplexity(perplexity); err != nil {
		return nil, err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if dist == nil {
		return nil, fmt.Errorf("affinity: %w", matrix.ErrNilMatrix)
	}
	if err = matrix.ValidateSquare(dist); err != nil {
		return nil, fmt.Errorf("affinity: %w", err)
	}
	for idx, d := range dist.RawData() {
		if math.IsNaN(d) || d < 0 {
			n := dist.Cols()
			return nil, fmt.Errorf("(%d,%d)=%v: %w", idx/n, idx%n, d, ErrInvalidDistances)
		}
	}

	n := dist.Rows()
	p, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("affinity: %w", err)
	}
	var (
		target    = math.Log(perplexity)
		betas     = make([]float64, n)
		entropies = make([]float64, n)
		converged = make([]bool, n)
	)
	err = parallel.Rows(ctx, n, o.Workers, func(i int) error {
		r := searchRow(p.Row(i), dist.Row(i), i, target, o)
		betas[i] = r.Beta
		entropies[i] = r.Entropy
		converged[i] = r.Converged

		return nil
	})
	if err != nil {
		return nil, err
	}

	unconverged := roaring.New()
	for i, ok := range converged {
		if !ok {
			unconverged.Add(uint32(i))
		}
	}

	return &Result{P: p, Betas: betas, Entropies: entropies, Unconverged: unconverged}, nil
}

// Joint returns the symmetric joint distribution (P + Pᵀ)/(2n) of a
// conditional affinity matrix. Every row of p must sum to 1, or to 0 for a
// point without finite neighbours; the entries of the result then sum to the
// fraction of rows that carry mass (1 in the usual case).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNotStochastic.
func Joint(p *matrix.Dense) (*matrix.Dense, error) {
	if p == nil {
		return nil, fmt.Errorf("affinity: %w", matrix.ErrNilMatrix)
	}
	sums, err := matrix.RowSums(p)
	if err != nil {
		return nil, fmt.Errorf("affinity: %w", err)
	}
	for i, s := range sums {
		if math.Abs(s-1) > matrix.DefaultStochasticTolerance && math.Abs(s) > matrix.DefaultStochasticTolerance {
			return nil, fmt.Errorf("affinity: row %d sums to %g: %w", i, s, matrix.ErrNotStochastic)
		}
	}
	j, err := matrix.Symmetrize(p, 1/(2*float64(p.Rows())))
	if err != nil {
		return nil, fmt.Errorf("affinity: %w", err)
	}

	return j, nil
}
