// SPDX-License-Identifier: MIT
package parallel_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/manifold/internal/parallel"
	"github.com/stretchr/testify/require"
)

func TestRows_VisitsEveryRowOnce(t *testing.T) {
	t.Parallel()

	for _, w := range []int{1, 3, 0, 100} {
		hits := make([]int32, 37)
		err := parallel.Rows(context.Background(), len(hits), w, func(i int) error {
			atomic.AddInt32(&hits[i], 1)
			return nil
		})
		require.NoError(t, err)
		for i, h := range hits {
			require.EqualValues(t, 1, h, "row %d workers %d", i, w)
		}
	}
}

func TestRows_PropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	err := parallel.Rows(context.Background(), 10, 4, func(i int) error {
		if i == 5 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
}

func TestRows_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := parallel.Rows(ctx, 10, 1, func(int) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestWorkers(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3, parallel.Workers(8, 3))
	require.Equal(t, 1, parallel.Workers(4, 0))
	require.GreaterOrEqual(t, parallel.Workers(0, 1000), 1)
}
