// SPDX-License-Identifier: MIT
package metric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Metric is a distance capability over equal-length vectors.
// Distance assumes len(a) == len(b) (caller's responsibility; the pairwise
// kernel validates row lengths once up front).
type Metric interface {
	Name() string
	Distance(a, b []float64) float64
	Compatibility() KindSet
}

var numeric = Kinds(Continuous, Discrete)

// Euclidean is the L2 distance.
type Euclidean struct{}

func (Euclidean) Name() string                    { return "euclidean" }
func (Euclidean) Compatibility() KindSet          { return numeric }
func (Euclidean) Distance(a, b []float64) float64 { return floats.Distance(a, b, 2) }

// SquaredEuclidean is the squared L2 distance. It is the kernel input the
// embedding optimizer uses in the low-dimensional space.
type SquaredEuclidean struct{}

func (SquaredEuclidean) Name() string           { return "squared-euclidean" }
func (SquaredEuclidean) Compatibility() KindSet { return numeric }
func (SquaredEuclidean) Distance(a, b []float64) float64 {
	var s, d float64
	for i := range a {
		d = a[i] - b[i]
		s += d * d
	}

	return s
}

// Manhattan is the L1 distance.
type Manhattan struct{}

func (Manhattan) Name() string                    { return "manhattan" }
func (Manhattan) Compatibility() KindSet          { return numeric }
func (Manhattan) Distance(a, b []float64) float64 { return floats.Distance(a, b, 1) }

// Chebyshev is the L∞ distance.
type Chebyshev struct{}

func (Chebyshev) Name() string           { return "chebyshev" }
func (Chebyshev) Compatibility() KindSet { return numeric }
func (Chebyshev) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// Minkowski is the Lp distance for p ≥ 1.
type Minkowski struct {
	p float64
}

// NewMinkowski returns the Lp metric. p must be finite and ≥ 1.
func NewMinkowski(p float64) (Minkowski, error) {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 1 {
		return Minkowski{}, fmt.Errorf("minkowski p=%v: %w", p, ErrInvalidParameter)
	}

	return Minkowski{p: p}, nil
}

func (m Minkowski) Name() string                    { return fmt.Sprintf("minkowski(%g)", m.p) }
func (Minkowski) Compatibility() KindSet            { return numeric }
func (m Minkowski) Distance(a, b []float64) float64 { return floats.Distance(a, b, m.p) }

// Cosine is 1 - cos(a, b). Two zero vectors are at distance 0; a zero vector
// and a non-zero one are at distance 1.
type Cosine struct{}

func (Cosine) Name() string           { return "cosine" }
func (Cosine) Compatibility() KindSet { return numeric }
func (Cosine) Distance(a, b []float64) float64 {
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	switch {
	case na == 0 && nb == 0:
		return 0
	case na == 0 || nb == 0:
		return 1
	}
	d := 1 - floats.Dot(a, b)/(na*nb)
	if d < 0 {
		// rounding on identical directions
		return 0
	}

	return d
}

// Hamming counts coordinates where a and b differ.
type Hamming struct{}

func (Hamming) Name() string           { return "hamming" }
func (Hamming) Compatibility() KindSet { return Kinds(Discrete, Categorical) }
func (Hamming) Distance(a, b []float64) float64 {
	var n int
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}

	return float64(n)
}

var (
	_ Metric = Euclidean{}
	_ Metric = SquaredEuclidean{}
	_ Metric = Manhattan{}
	_ Metric = Chebyshev{}
	_ Metric = Minkowski{}
	_ Metric = Cosine{}
	_ Metric = Hamming{}
)
