// SPDX-License-Identifier: MIT

// Package tsne: configuration defaults and functional options.
//
// Every tunable has a Default* constant; DefaultOptions assembles them and
// New validates the result once. Nothing is validated lazily.
package tsne

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/manifold/affinity"
	"github.com/katalvlaran/manifold/metric"
)

const (
	DefaultDimensions   = 2
	DefaultLearningRate = 10.0
	DefaultPerplexity   = 30.0
	DefaultExaggeration = 12.0
	DefaultEpochs       = 1000
	DefaultMinGradient  = 1e-7
	DefaultPatience     = 10

	// DefaultEarlyExaggerationEpochs is the epoch after which P is divided
	// by the exaggeration factor and momentum receives its boost.
	DefaultEarlyExaggerationEpochs = 250

	DefaultInitMomentum  = 0.5
	DefaultMomentumBoost = 0.3

	DefaultMinGain        = 0.01
	DefaultGainBrake      = 0.8
	DefaultGainAccelerate = 0.2

	// DefaultInitScale is the standard deviation of the initial embedding.
	// The distance-weighted gradient is cubic in the coordinates, so the
	// scale and the learning rate are tuned together.
	DefaultInitScale = 3e-2

	// DefaultEpsilon floors low-dimensional similarities and guards divisions.
	DefaultEpsilon = 1e-12

	// DefaultProgressEvery emits a per-epoch progress event every epoch.
	DefaultProgressEvery = 1
)

// Options holds the full embedder configuration.
type Options struct {
	Dimensions   int
	LearningRate float64
	Perplexity   float64
	Exaggeration float64
	Epochs       int
	MinGradient  float64
	Patience     int

	EarlyExaggerationEpochs int
	InitMomentum            float64
	MomentumBoost           float64
	MinGain                 float64
	GainBrake               float64
	GainAccelerate          float64

	// Metric measures distances between the high-dimensional samples.
	Metric metric.Metric

	// EmbeddingMetric measures the low-dimensional distances d_ij that feed
	// both the similarity kernel and the gradient weight. It must accept
	// continuous values.
	EmbeddingMetric metric.Metric

	// InitScale is the standard deviation of the random initial embedding.
	InitScale float64

	// Progress receives informational events; nil means no-op.
	Progress ProgressFunc

	// ProgressEvery throttles per-epoch events to one every N epochs.
	ProgressEvery int

	// Seed drives the initial embedding. 0 selects a fixed default seed.
	Seed int64

	// Conditional keeps the row-stochastic P instead of the joint form.
	Conditional bool

	// StudentT weights gradient terms by the Student-t kernel
	// (1 + d_ij/dof)^-1 instead of the low-dimensional distance d_ij.
	StudentT bool

	Workers int
	Timeout time.Duration

	SearchTolerance     float64
	SearchMaxIterations int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Dimensions:              DefaultDimensions,
		LearningRate:            DefaultLearningRate,
		Perplexity:              DefaultPerplexity,
		Exaggeration:            DefaultExaggeration,
		Epochs:                  DefaultEpochs,
		MinGradient:             DefaultMinGradient,
		Patience:                DefaultPatience,
		EarlyExaggerationEpochs: DefaultEarlyExaggerationEpochs,
		InitMomentum:            DefaultInitMomentum,
		MomentumBoost:           DefaultMomentumBoost,
		MinGain:                 DefaultMinGain,
		GainBrake:               DefaultGainBrake,
		GainAccelerate:          DefaultGainAccelerate,
		Metric:                  metric.SquaredEuclidean{},
		EmbeddingMetric:         metric.SquaredEuclidean{},
		InitScale:               DefaultInitScale,
		ProgressEvery:           DefaultProgressEvery,
		SearchTolerance:         affinity.DefaultTolerance,
		SearchMaxIterations:     affinity.DefaultMaxIterations,
	}
}

// WithDimensions sets the target dimensionality d (≥ 1).
func WithDimensions(d int) Option { return func(o *Options) { o.Dimensions = d } }

// WithLearningRate sets the step size (> 0).
func WithLearningRate(r float64) Option { return func(o *Options) { o.LearningRate = r } }

// WithPerplexity sets the effective neighbourhood size (≥ 1).
func WithPerplexity(p float64) Option { return func(o *Options) { o.Perplexity = p } }

// WithExaggeration sets the early exaggeration factor (≥ 1).
func WithExaggeration(x float64) Option { return func(o *Options) { o.Exaggeration = x } }

// WithEpochs sets the epoch budget (≥ 1).
func WithEpochs(n int) Option { return func(o *Options) { o.Epochs = n } }

// WithMinGradient sets the convergence threshold on the loss (≥ 0).
func WithMinGradient(g float64) Option { return func(o *Options) { o.MinGradient = g } }

// WithPatience sets the no-improvement window (≥ 1).
func WithPatience(n int) Option { return func(o *Options) { o.Patience = n } }

// WithEarlyExaggerationEpochs sets the phase boundary epoch (≥ 0).
// 0 disables exaggeration and starts with the boosted momentum.
func WithEarlyExaggerationEpochs(n int) Option {
	return func(o *Options) { o.EarlyExaggerationEpochs = n }
}

// WithMomentum sets the initial momentum and the one-time boost.
func WithMomentum(initial, boost float64) Option {
	return func(o *Options) { o.InitMomentum, o.MomentumBoost = initial, boost }
}

// WithGains sets the gain floor, the brake factor and the acceleration increment.
func WithGains(minGain, brake, accelerate float64) Option {
	return func(o *Options) { o.MinGain, o.GainBrake, o.GainAccelerate = minGain, brake, accelerate }
}

// WithMetric sets the high-dimensional distance metric.
func WithMetric(m metric.Metric) Option { return func(o *Options) { o.Metric = m } }

// WithEmbeddingMetric sets the metric applied to the embedding every epoch.
func WithEmbeddingMetric(m metric.Metric) Option { return func(o *Options) { o.EmbeddingMetric = m } }

// WithInitScale sets the standard deviation of the initial embedding (> 0).
func WithInitScale(s float64) Option { return func(o *Options) { o.InitScale = s } }

// WithProgress installs a progress sink.
func WithProgress(fn ProgressFunc) Option { return func(o *Options) { o.Progress = fn } }

// WithProgressEvery emits per-epoch events only every n epochs (≥ 1).
func WithProgressEvery(n int) Option { return func(o *Options) { o.ProgressEvery = n } }

// WithSeed fixes the random initial embedding.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithConditionalAffinities feeds the row-stochastic P to the optimizer
// unchanged instead of its joint form (P+Pᵀ)/(2n).
func WithConditionalAffinities() Option { return func(o *Options) { o.Conditional = true } }

// WithStudentTGradient weights each pair's gradient term by the Student-t
// kernel (1 + d_ij/dof)^-1 instead of the low-dimensional distance d_ij.
func WithStudentTGradient() Option {
	return func(o *Options) { o.StudentT = true }
}

// WithWorkers bounds the goroutines used inside one epoch. ≤ 0 means GOMAXPROCS.
func WithWorkers(n int) Option { return func(o *Options) { o.Workers = n } }

// WithTimeout aborts Embed after d (0 disables). The partial result is returned.
func WithTimeout(d time.Duration) Option { return func(o *Options) { o.Timeout = d } }

// WithBandwidthSearch sets the perplexity search tolerance and iteration budget.
func WithBandwidthSearch(tol float64, maxIter int) Option {
	return func(o *Options) { o.SearchTolerance, o.SearchMaxIterations = tol, maxIter }
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// validate checks every field and joins all violations.
func (o Options) validate() error {
	var errs []error
	bad := func(field string, v any, want string) {
		errs = append(errs, fmt.Errorf("%s=%v, want %s", field, v, want))
	}

	if o.Dimensions < 1 {
		bad("dimensions", o.Dimensions, ">= 1")
	}
	if !finite(o.LearningRate) || o.LearningRate <= 0 {
		bad("learning rate", o.LearningRate, "> 0")
	}
	if !finite(o.Perplexity) || o.Perplexity < 1 {
		bad("perplexity", o.Perplexity, ">= 1")
	}
	if !finite(o.Exaggeration) || o.Exaggeration < 1 {
		bad("exaggeration", o.Exaggeration, ">= 1")
	}
	if o.Epochs < 1 {
		bad("epochs", o.Epochs, ">= 1")
	}
	if math.IsNaN(o.MinGradient) || o.MinGradient < 0 {
		bad("min gradient", o.MinGradient, ">= 0")
	}
	if o.Patience < 1 {
		bad("patience", o.Patience, ">= 1")
	}
	if o.EarlyExaggerationEpochs < 0 {
		bad("early exaggeration epochs", o.EarlyExaggerationEpochs, ">= 0")
	}
	if !finite(o.InitMomentum) || o.InitMomentum < 0 {
		bad("momentum", o.InitMomentum, ">= 0")
	}
	if !finite(o.MomentumBoost) || o.MomentumBoost < 0 {
		bad("momentum boost", o.MomentumBoost, ">= 0")
	}
	if !finite(o.MinGain) || o.MinGain <= 0 {
		bad("min gain", o.MinGain, "> 0")
	}
	if !finite(o.GainBrake) || o.GainBrake <= 0 || o.GainBrake >= 1 {
		bad("gain brake", o.GainBrake, "in (0, 1)")
	}
	if !finite(o.GainAccelerate) || o.GainAccelerate < 0 {
		bad("gain accelerate", o.GainAccelerate, ">= 0")
	}
	if o.Metric == nil {
		bad("metric", nil, "non-nil")
	}
	switch {
	case o.EmbeddingMetric == nil:
		bad("embedding metric", nil, "non-nil")
	case !o.EmbeddingMetric.Compatibility().Has(metric.Continuous):
		bad("embedding metric", o.EmbeddingMetric.Name(), "one accepting continuous values")
	}
	if !finite(o.InitScale) || o.InitScale <= 0 {
		bad("init scale", o.InitScale, "> 0")
	}
	if o.ProgressEvery < 1 {
		bad("progress every", o.ProgressEvery, ">= 1")
	}
	if o.Timeout < 0 {
		bad("timeout", o.Timeout, ">= 0")
	}
	if !finite(o.SearchTolerance) || o.SearchTolerance <= 0 {
		bad("search tolerance", o.SearchTolerance, "> 0")
	}
	if o.SearchMaxIterations < 1 {
		bad("search iterations", o.SearchMaxIterations, ">= 1")
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
