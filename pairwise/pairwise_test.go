// SPDX-License-Identifier: MIT
package pairwise_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/manifold/matrix"
	"github.com/katalvlaran/manifold/metric"
	"github.com/katalvlaran/manifold/pairwise"
	"github.com/stretchr/testify/require"
)

func randomVectors(n, m int, seed int64) pairwise.Vectors {
	rng := rand.New(rand.NewSource(seed))
	out := make(pairwise.Vectors, n)
	for i := range out {
		out[i] = make([]float64, m)
		for j := range out[i] {
			out[i][j] = rng.NormFloat64()
		}
	}

	return out
}

func TestCompute_SymmetricZeroDiagonal(t *testing.T) {
	t.Parallel()

	vecs := randomVectors(25, 4, 1)
	for _, m := range []metric.Metric{metric.Euclidean{}, metric.SquaredEuclidean{}, metric.Manhattan{}, metric.Cosine{}} {
		d, err := pairwise.Compute(context.Background(), vecs, m)
		require.NoError(t, err)
		require.Equal(t, 25, d.Rows())
		require.NoError(t, matrix.ValidateSymmetric(d, 0), m.Name())
		require.NoError(t, matrix.ValidateZeroDiagonal(d, 0), m.Name())

		v, err := d.At(3, 7)
		require.NoError(t, err)
		require.Equal(t, m.Distance(vecs[3], vecs[7]), v)
	}
}

func TestCompute_DeterministicAcrossWorkers(t *testing.T) {
	t.Parallel()

	vecs := randomVectors(40, 3, 7)
	seq, err := pairwise.Compute(context.Background(), vecs, metric.Euclidean{}, pairwise.WithWorkers(1))
	require.NoError(t, err)
	par, err := pairwise.Compute(context.Background(), vecs, metric.Euclidean{}, pairwise.WithWorkers(6))
	require.NoError(t, err)
	require.Equal(t, seq.RawData(), par.RawData())
}

func TestComputeInto_ReusesBuffer(t *testing.T) {
	t.Parallel()

	dst, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	dst.Fill(42)

	vecs := pairwise.Vectors{{0, 0}, {3, 4}}
	require.NoError(t, pairwise.ComputeInto(context.Background(), dst, vecs, metric.Euclidean{}))
	require.Equal(t, [][]float64{{0, 5}, {5, 0}}, dst.ToRows())

	m, err := matrix.NewDenseFrom([][]float64{{1, 1}, {1, 2}})
	require.NoError(t, err)
	require.NoError(t, pairwise.ComputeInto(context.Background(), dst, pairwise.DenseRows(m), metric.SquaredEuclidean{}))
	require.Equal(t, [][]float64{{0, 1}, {1, 0}}, dst.ToRows())
}

func TestCompute_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, err := pairwise.Compute(ctx, pairwise.Vectors{}, metric.Euclidean{})
	require.ErrorIs(t, err, pairwise.ErrEmpty)

	_, err = pairwise.Compute(ctx, pairwise.Vectors{{1, 2}, {1}}, metric.Euclidean{})
	require.ErrorIs(t, err, pairwise.ErrRaggedRows)

	_, err = pairwise.Compute(ctx, pairwise.Vectors{{1}}, nil)
	require.ErrorIs(t, err, metric.ErrNilMetric)

	dst, _ := matrix.NewDense(3, 3)
	err = pairwise.ComputeInto(ctx, dst, pairwise.Vectors{{1}, {2}}, metric.Euclidean{})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = pairwise.Compute(canceled, randomVectors(10, 2, 3), metric.Euclidean{})
	require.ErrorIs(t, err, context.Canceled)
}

func BenchmarkCompute(b *testing.B) {
	vecs := randomVectors(500, 16, 11)
	dst, _ := matrix.NewDense(500, 500)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := pairwise.ComputeInto(context.Background(), dst, vecs, metric.SquaredEuclidean{}); err != nil {
			b.Fatal(err)
		}
	}
}
