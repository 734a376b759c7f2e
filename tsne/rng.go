// Package tsne - RNG utilities for the initial embedding.
//
// Goals:
//   - Determinism: same seed ⇒ identical initial embedding across runs.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; the RNG is only used before the
//     parallel epoch loop starts.
package tsne

import (
	"math/rand"

	"github.com/katalvlaran/manifold/matrix"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// gaussianEmbedding draws an n×d matrix from N(0, scale²) in row-major order.
func gaussianEmbedding(rng *rand.Rand, n, d int, scale float64) (*matrix.Dense, error) {
	y, err := matrix.NewDense(n, d)
	if err != nil {
		return nil, err
	}
	data := y.RawData()
	for i := range data {
		data[i] = rng.NormFloat64() * scale
	}

	return y, nil
}
