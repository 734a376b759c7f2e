// SPDX-License-Identifier: MIT
package tsne

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStopper_Order(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	o.MinGradient = 0.1
	o.Patience = 2
	o.Epochs = 100

	s := newStopper(o)
	require.Equal(t, StopNone, s.observe(1, 5))
	require.Equal(t, StopNone, s.observe(2, 4))
	require.Equal(t, StopNone, s.observe(3, 4.5)) // stale 1
	require.Equal(t, StopStalled, s.observe(4, 6))

	s = newStopper(o)
	require.Equal(t, StopDiverged, s.observe(1, math.NaN()))

	s = newStopper(o)
	require.Equal(t, StopConverged, s.observe(1, 0.05))

	o.Epochs = 2
	s = newStopper(o)
	require.Equal(t, StopNone, s.observe(1, 3))
	require.Equal(t, StopMaxEpochs, s.observe(2, 2))
}

func TestStopper_NewBestResetsCounter(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	o.MinGradient = 0
	o.Patience = 2
	s := newStopper(o)
	require.Equal(t, StopNone, s.observe(1, 3))
	require.Equal(t, StopNone, s.observe(2, 3)) // stale 1
	require.Equal(t, StopNone, s.observe(3, 1)) // reset
	require.Equal(t, StopNone, s.observe(4, 2)) // stale 1
	require.Equal(t, StopStalled, s.observe(5, 2))
}

func TestRNG_ZeroSeedIsDefault(t *testing.T) {
	t.Parallel()

	a, err := gaussianEmbedding(rngFromSeed(0), 4, 2, DefaultInitScale)
	require.NoError(t, err)
	b, err := gaussianEmbedding(rngFromSeed(defaultRNGSeed), 4, 2, DefaultInitScale)
	require.NoError(t, err)
	require.Equal(t, a.RawData(), b.RawData())
	for _, v := range a.RawData() {
		require.Less(t, math.Abs(v), 1e-2)
	}
}
