// SPDX-License-Identifier: MIT

// Package pairwise builds n×n distance matrices from a set of vectors and an
// injected metric.Metric.
//
// The output is symmetric with a zero diagonal whenever the metric is
// symmetric. Only the upper triangle is evaluated; each (i,j) with j>i is
// written to both (i,j) and (j,i) by the worker owning row i, so the result
// does not depend on the worker count.
//
// Complexity: O(n²·m) time, O(n²) space.
package pairwise

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/manifold/internal/parallel"
	"github.com/katalvlaran/manifold/matrix"
	"github.com/katalvlaran/manifold/metric"
)

var (
	// ErrRaggedRows signals vectors of different lengths.
	ErrRaggedRows = errors.New("pairwise: vectors have different lengths")

	// ErrEmpty signals a source without vectors.
	ErrEmpty = errors.New("pairwise: no vectors")
)

// RowSource is a read-only set of equal-length vectors.
// *dataset.Dataset satisfies it.
type RowSource interface {
	Len() int
	Row(i int) []float64
}

// Vectors adapts a slice of rows to RowSource.
type Vectors [][]float64

func (v Vectors) Len() int            { return len(v) }
func (v Vectors) Row(i int) []float64 { return v[i] }

// DenseRows adapts the rows of a Dense to RowSource.
func DenseRows(m *matrix.Dense) RowSource { return denseRows{m} }

type denseRows struct{ m *matrix.Dense }

func (d denseRows) Len() int            { return d.m.Rows() }
func (d denseRows) Row(i int) []float64 { return d.m.Row(i) }

// Option configures Compute / ComputeInto.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers bounds the number of goroutines. w ≤ 0 means GOMAXPROCS; 1 runs inline.
func WithWorkers(w int) Option {
	return func(o *options) { o.workers = w }
}

// Compute allocates and returns the n×n distance matrix of src under m.
//
// Errors: ErrEmpty, ErrRaggedRows, metric.ErrNilMetric, ctx.Err().
func Compute(ctx context.Context, src RowSource, m metric.Metric, opts ...Option) (*matrix.Dense, error) {
	if src == nil || src.Len() == 0 {
		return nil, ErrEmpty
	}
	n := src.Len()
	dst, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("pairwise: %w", err)
	}
	if err = ComputeInto(ctx, dst, src, m, opts...); err != nil {
		return nil, err
	}

	return dst, nil
}

// ComputeInto writes the distance matrix of src into dst, which must be n×n.
// Every cell of dst is overwritten; dst can be reused across calls.
//
// Errors: ErrEmpty, ErrRaggedRows, metric.ErrNilMetric,
// matrix.ErrDimensionMismatch, ctx.Err().
func ComputeInto(ctx context.Context, dst *matrix.Dense, src RowSource, m metric.Metric, opts ...Option) error {
	if m == nil {
		return metric.ErrNilMetric
	}
	if src == nil || src.Len() == 0 {
		return ErrEmpty
	}
	if dst == nil {
		return fmt.Errorf("pairwise: %w", matrix.ErrNilMatrix)
	}
	n := src.Len()
	if dst.Rows() != n || dst.Cols() != n {
		return fmt.Errorf("pairwise: dst %dx%d for %d vectors: %w",
			dst.Rows(), dst.Cols(), n, matrix.ErrDimensionMismatch)
	}
	dim := len(src.Row(0))
	for i := 1; i < n; i++ {
		if err := matrix.ValidateVecLen(src.Row(i), dim); err != nil {
			return fmt.Errorf("vector %d has %d values, want %d: %w", i, len(src.Row(i)), dim, ErrRaggedRows)
		}
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	data := dst.RawData()

	return parallel.Rows(ctx, n, o.workers, func(i int) error {
		a := src.Row(i)
		data[i*n+i] = 0
		for j := i + 1; j < n; j++ {
			d := m.Distance(a, src.Row(j))
			data[i*n+j] = d
			data[j*n+i] = d
		}

		return nil
	})
}
