// SPDX-License-Identifier: MIT
package tsne_test

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/manifold/metric"
	"github.com/katalvlaran/manifold/tsne"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	e, err := tsne.New()
	require.NoError(t, err)
	o := e.Options()
	require.Equal(t, tsne.DefaultDimensions, o.Dimensions)
	require.Equal(t, tsne.DefaultPerplexity, o.Perplexity)
	require.Equal(t, tsne.DefaultEarlyExaggerationEpochs, o.EarlyExaggerationEpochs)
	require.Equal(t, "squared-euclidean", o.Metric.Name())
	require.Equal(t, "squared-euclidean", o.EmbeddingMetric.Name())
	require.Equal(t, tsne.DefaultInitScale, o.InitScale)
	require.False(t, o.StudentT, "the distance-weighted gradient is the default")
	require.NotNil(t, o.Progress)
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		opt   tsne.Option
		field string
	}{
		{"dimensions", tsne.WithDimensions(0), "dimensions"},
		{"rate zero", tsne.WithLearningRate(0), "learning rate"},
		{"rate nan", tsne.WithLearningRate(math.NaN()), "learning rate"},
		{"perplexity", tsne.WithPerplexity(0.5), "perplexity"},
		{"exaggeration", tsne.WithExaggeration(0.9), "exaggeration"},
		{"epochs", tsne.WithEpochs(0), "epochs"},
		{"min gradient", tsne.WithMinGradient(-1), "min gradient"},
		{"patience", tsne.WithPatience(0), "patience"},
		{"early exaggeration", tsne.WithEarlyExaggerationEpochs(-1), "early exaggeration"},
		{"momentum", tsne.WithMomentum(-0.1, 0.3), "momentum"},
		{"gain floor", tsne.WithGains(0, 0.8, 0.2), "min gain"},
		{"gain brake", tsne.WithGains(0.01, 1, 0.2), "gain brake"},
		{"metric", tsne.WithMetric(nil), "metric"},
		{"embedding metric nil", tsne.WithEmbeddingMetric(nil), "embedding metric"},
		{"embedding metric kinds", tsne.WithEmbeddingMetric(metric.Hamming{}), "embedding metric"},
		{"init scale", tsne.WithInitScale(0), "init scale"},
		{"progress every", tsne.WithProgressEvery(0), "progress every"},
		{"timeout", tsne.WithTimeout(-time.Second), "timeout"},
		{"search", tsne.WithBandwidthSearch(0, 100), "search tolerance"},
		{"search iterations", tsne.WithBandwidthSearch(1e-5, 0), "search iterations"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			e, err := tsne.New(tc.opt)
			require.Nil(t, e)
			require.ErrorIs(t, err, tsne.ErrInvalidConfig)
			require.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestSlogProgress(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sink := tsne.SlogProgress(logger)

	sink(tsne.Event{Kind: tsne.EventInit, Message: "start"})
	sink(tsne.Event{Kind: tsne.EventEpoch, Epoch: 2, Loss: 0.5, Message: "tick"})
	sink(tsne.Event{Kind: tsne.EventNote, Message: "careful"})

	out := buf.String()
	require.Contains(t, out, "level=INFO msg=start event=init")
	require.Contains(t, out, "level=DEBUG msg=tick event=epoch epoch=2 loss=0.5")
	require.Contains(t, out, "level=WARN msg=careful event=note")
	require.Equal(t, 3, strings.Count(out, "\n"))

	// nil logger must be a usable no-op
	tsne.SlogProgress(nil)(tsne.Event{})
}

func TestStopReasonString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "max epochs", tsne.StopMaxEpochs.String())
	require.Equal(t, "canceled", tsne.StopCanceled.String())
	require.Equal(t, "StopReason(99)", tsne.StopReason(99).String())
}
