// SPDX-License-Identifier: MIT
package affinity

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultTolerance is the accepted |H - log(perplexity)| gap.
	DefaultTolerance = 1e-5

	// DefaultMaxIterations is the per-row bandwidth search budget.
	DefaultMaxIterations = 100

	// DefaultEpsilon guards the row normalisation against a zero sum.
	DefaultEpsilon = 1e-12
)

var (
	// ErrInvalidPerplexity signals perplexity < 1 or non-finite.
	ErrInvalidPerplexity = errors.New("affinity: perplexity must be finite and >= 1")

	// ErrInvalidOption signals a bad tolerance or iteration budget.
	ErrInvalidOption = errors.New("affinity: invalid option")

	// ErrInvalidDistances signals a distance matrix with NaN or negative entries.
	ErrInvalidDistances = errors.New("affinity: distances must be non-negative")
)

// Options configures the bandwidth search.
type Options struct {
	Tolerance     float64
	MaxIterations int
	Workers       int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithTolerance sets the entropy tolerance (> 0).
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations sets the per-row iteration budget (≥ 1).
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithWorkers bounds Estimate's goroutines; ≤ 0 means GOMAXPROCS.
func WithWorkers(w int) Option {
	return func(o *Options) { o.Workers = w }
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.Tolerance > 0) || math.IsInf(o.Tolerance, 0) {
		return o, fmt.Errorf("tolerance %v: %w", o.Tolerance, ErrInvalidOption)
	}
	if o.MaxIterations < 1 {
		return o, fmt.Errorf("max iterations %d: %w", o.MaxIterations, ErrInvalidOption)
	}

	return o, nil
}

func validatePerplexity(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 1 {
		return fmt.Errorf("perplexity %v: %w", p, ErrInvalidPerplexity)
	}

	return nil
}
