// SPDX-License-Identifier: MIT
package dataset

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/manifold/matrix"
	"github.com/katalvlaran/manifold/metric"
)

// Dataset is an immutable n×m sample matrix with one value kind per column.
type Dataset struct {
	samples *matrix.Dense
	kinds   []metric.Kind
}

// Option configures New.
type Option func(*options)

type options struct {
	kinds []metric.Kind
}

// WithKinds sets the column kinds explicitly instead of inferring them.
func WithKinds(kinds ...metric.Kind) Option {
	return func(o *options) { o.kinds = append([]metric.Kind(nil), kinds...) }
}

// New copies rows into a Dataset.
// Without WithKinds, a column whose every value is integral is Discrete and
// any other column is Continuous.
//
// Errors: ErrEmpty, ErrRagged, ErrKindCount, ErrParse (NaN/Inf values).
func New(rows [][]float64, opts ...Option) (*Dataset, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	m, err := matrix.NewDenseFrom(rows)
	switch {
	case errors.Is(err, matrix.ErrInvalidDimensions):
		return nil, ErrEmpty
	case errors.Is(err, matrix.ErrRaggedRows):
		return nil, fmt.Errorf("%w: %v", ErrRagged, err)
	case errors.Is(err, matrix.ErrNaNInf):
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	case err != nil:
		return nil, err
	}

	kinds := o.kinds
	if kinds == nil {
		kinds = inferKinds(m)
	} else if len(kinds) != m.Cols() {
		return nil, fmt.Errorf("%w: %d kinds for %d columns", ErrKindCount, len(kinds), m.Cols())
	}

	return &Dataset{samples: m, kinds: kinds}, nil
}

func inferKinds(m *matrix.Dense) []metric.Kind {
	rows, cols := m.Shape()
	kinds := make([]metric.Kind, cols)
	for j := 0; j < cols; j++ {
		kinds[j] = metric.Discrete
		for i := 0; i < rows; i++ {
			v := m.Row(i)[j]
			if v != math.Trunc(v) {
				kinds[j] = metric.Continuous
				break
			}
		}
	}

	return kinds
}

// Len returns the number of samples n.
func (d *Dataset) Len() int { return d.samples.Rows() }

// Dims returns the number of columns m.
func (d *Dataset) Dims() int { return d.samples.Cols() }

// Kinds returns a copy of the column kinds.
func (d *Dataset) Kinds() []metric.Kind { return append([]metric.Kind(nil), d.kinds...) }

// Row returns sample i as a read-only view. Callers must not modify it.
func (d *Dataset) Row(i int) []float64 { return d.samples.Row(i) }

// Samples returns a deep copy of the sample matrix.
func (d *Dataset) Samples() *matrix.Dense {
	return d.samples.Clone().(*matrix.Dense)
}
