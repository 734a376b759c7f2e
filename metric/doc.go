// Package metric defines the distance-metric capability consumed by the
// pairwise distance kernel and the embedding optimizer.
//
// A Metric is two things: a Distance function over equal-length float64
// vectors, and a Compatibility set naming the value kinds (Continuous,
// Discrete, Categorical) the function is meaningful for. Every metric is
// symmetric, non-negative and returns 0 for identical inputs.
//
// # Supported Metrics
//
//   - Euclidean, SquaredEuclidean (default for the embedder)
//   - Manhattan, Chebyshev, Minkowski(p)
//   - Cosine (1 - cosine similarity)
//   - Hamming (count of differing coordinates, categorical-friendly)
//   - DTW (dynamic time warping over rows read as time series)
//
// # Usage
//
//	m, err := metric.ByName("euclidean")
//	if err != nil { ... }
//	if err := metric.CheckKinds(kinds, m); err != nil { ... }
//	d := m.Distance(a, b)
package metric
