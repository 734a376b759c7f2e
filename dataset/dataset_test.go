// SPDX-License-Identifier: MIT
package dataset_test

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/manifold/dataset"
	"github.com/katalvlaran/manifold/matrix"
	"github.com/katalvlaran/manifold/metric"
	"github.com/stretchr/testify/require"
)

func TestNew_InfersKinds(t *testing.T) {
	t.Parallel()

	ds, err := dataset.New([][]float64{{1, 0.5}, {2, 3}})
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	require.Equal(t, 2, ds.Dims())
	require.Equal(t, []metric.Kind{metric.Discrete, metric.Continuous}, ds.Kinds())
	require.Equal(t, []float64{2, 3}, ds.Row(1))
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := dataset.New(nil)
	require.ErrorIs(t, err, dataset.ErrEmpty)

	_, err = dataset.New([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, dataset.ErrRagged)

	_, err = dataset.New([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, dataset.ErrParse)

	_, err = dataset.New([][]float64{{1, 2}}, dataset.WithKinds(metric.Categorical))
	require.ErrorIs(t, err, dataset.ErrKindCount)

	ds, err := dataset.New([][]float64{{1, 2}}, dataset.WithKinds(metric.Categorical, metric.Continuous))
	require.NoError(t, err)
	require.Equal(t, []metric.Kind{metric.Categorical, metric.Continuous}, ds.Kinds())
}

func TestReadCSV(t *testing.T) {
	t.Parallel()

	in := "x,y\n1, 2.5\n3,4\n"
	ds, err := dataset.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	require.Equal(t, [][]float64{{1, 2.5}, {3, 4}}, ds.Samples().ToRows())

	_, err = dataset.ReadCSV(strings.NewReader("1,2\n3,oops\n"))
	require.ErrorIs(t, err, dataset.ErrParse)
	require.Contains(t, err.Error(), "line 2")

	_, err = dataset.ReadCSV(strings.NewReader("1,2\n3\n"))
	require.ErrorIs(t, err, dataset.ErrRagged)

	_, err = dataset.ReadCSV(strings.NewReader("a,b\n"))
	require.ErrorIs(t, err, dataset.ErrEmpty)
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFrom([][]float64{{0.1, -2}, {1e-9, 3}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dataset.WriteCSV(&buf, m))
	require.Equal(t, "0.1,-2\n1e-09,3\n", buf.String())
}

func TestFileRoundTrip(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFrom([][]float64{{0.125, 1}, {2, -3.5}, {1e10, 7}})
	require.NoError(t, err)

	for _, name := range []string{"plain.csv", "packed.csv.zst", "packed.csv.lz4"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), name)
			w, err := dataset.Create(path)
			require.NoError(t, err)
			require.NoError(t, dataset.WriteCSV(w, m))
			require.NoError(t, w.Close())

			ds, err := dataset.Open(path)
			require.NoError(t, err)
			require.Equal(t, m.ToRows(), ds.Samples().ToRows())
		})
	}
}

func TestCompressionFor(t *testing.T) {
	t.Parallel()

	require.Equal(t, dataset.Zstd, dataset.CompressionFor("a.csv.ZST"))
	require.Equal(t, dataset.LZ4, dataset.CompressionFor("a.lz4"))
	require.Equal(t, dataset.None, dataset.CompressionFor("a.csv"))
	require.Equal(t, "zstd", dataset.Zstd.String())
}
