// SPDX-License-Identifier: MIT
package tsne

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/katalvlaran/manifold/affinity"
	"github.com/katalvlaran/manifold/dataset"
	"github.com/katalvlaran/manifold/matrix"
	"github.com/katalvlaran/manifold/metric"
	"github.com/katalvlaran/manifold/pairwise"
	"golang.org/x/time/rate"
)

// Embedder is a validated, immutable embedding configuration. It is safe
// for concurrent use; every Embed call owns its working set.
type Embedder struct {
	opts Options
}

// Result is the outcome of one Embed call.
type Result struct {
	// Embedding is the n×d output. On divergence it is the last finite state.
	Embedding *matrix.Dense

	// Loss holds one gradient norm per completed epoch.
	Loss []float64

	// Epochs is the number of completed epochs (len(Loss)).
	Epochs int

	// Reason says why the loop stopped.
	Reason StopReason

	// Unconverged lists the rows whose bandwidth search exhausted its budget.
	Unconverged *roaring.Bitmap
}

// LossHistory returns a copy of the per-epoch loss.
func (r *Result) LossHistory() []float64 {
	return append([]float64(nil), r.Loss...)
}

// New validates the options and returns an Embedder.
// Errors: ErrInvalidConfig (wrapping a description of every bad field).
func New(opts ...Option) (*Embedder, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if o.Progress == nil {
		o.Progress = noopProgress
	}

	return &Embedder{opts: o}, nil
}

// Options returns a copy of the effective configuration.
func (e *Embedder) Options() Options { return e.opts }

// EmbedRows wraps rows in a dataset (kinds inferred) and embeds it.
func (e *Embedder) EmbedRows(ctx context.Context, rows [][]float64) (*Result, error) {
	ds, err := dataset.New(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return e.Embed(ctx, ds)
}

// Embed projects ds into Options.Dimensions dimensions.
//
// Before any computation the column kinds of ds are checked against the
// metric; a mismatch returns ErrInvalidArgument wrapping
// metric.ErrIncompatible. Every epoch the embedding's distances are recomputed
// with Options.EmbeddingMetric (squared Euclidean unless overridden).
// Divergence is not an error: it ends the run with
// StopDiverged and the last finite embedding. Cancellation is checked once
// per epoch; a canceled run returns the partial Result together with an
// error wrapping ctx.Err().
func (e *Embedder) Embed(ctx context.Context, ds *dataset.Dataset) (*Result, error) {
	o := e.opts
	if ds == nil {
		return nil, fmt.Errorf("%w: nil dataset", ErrInvalidArgument)
	}
	if err := metric.CheckKinds(ds.Kinds(), o.Metric); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if o.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Timeout)
		defer cancel()
	}

	n, d := ds.Len(), o.Dimensions
	o.Progress(Event{Kind: EventInit, Message: fmt.Sprintf(
		"tsne: n=%d m=%d dims=%d metric=%s embedding-metric=%s perplexity=%g rate=%g exaggeration=%g "+
			"epochs=%d min-gradient=%g patience=%d early-exaggeration=%d joint=%t student-t=%t",
		n, ds.Dims(), d, o.Metric.Name(), o.EmbeddingMetric.Name(), o.Perplexity, o.LearningRate,
		o.Exaggeration, o.Epochs, o.MinGradient, o.Patience, o.EarlyExaggerationEpochs,
		!o.Conditional, o.StudentT)})

	p, unconverged, err := e.affinities(ctx, ds)
	if err != nil {
		return nil, err
	}

	y, err := gaussianEmbedding(rngFromSeed(o.Seed), n, d, o.InitScale)
	if err != nil {
		return nil, err
	}
	res := &Result{Embedding: y, Unconverged: unconverged}
	if err = e.optimize(ctx, p, res); err != nil {
		return res, err
	}

	return res, nil
}

// affinities computes the high-dimensional P the optimizer consumes,
// exaggerated when an early exaggeration phase is configured.
func (e *Embedder) affinities(ctx context.Context, ds *dataset.Dataset) (*matrix.Dense, *roaring.Bitmap, error) {
	o := e.opts
	dist, err := pairwise.Compute(ctx, ds, o.Metric, pairwise.WithWorkers(o.Workers))
	if err != nil {
		return nil, nil, err
	}
	est, err := affinity.Estimate(ctx, dist, o.Perplexity,
		affinity.WithTolerance(o.SearchTolerance),
		affinity.WithMaxIterations(o.SearchMaxIterations),
		affinity.WithWorkers(o.Workers))
	if err != nil {
		return nil, nil, err
	}
	if c := est.Unconverged.GetCardinality(); c > 0 {
		o.Progress(Event{Kind: EventNote, Message: fmt.Sprintf(
			"tsne: bandwidth search did not reach perplexity %g within %d iterations for %d of %d rows",
			o.Perplexity, o.SearchMaxIterations, c, ds.Len())})
	}

	p := est.P
	if !o.Conditional {
		if p, err = affinity.Joint(p); err != nil {
			return nil, nil, err
		}
	}
	if o.EarlyExaggerationEpochs > 0 {
		if err = matrix.ScaleInPlace(p, o.Exaggeration); err != nil {
			return nil, nil, err
		}
	}

	return p, est.Unconverged, nil
}

// optimize runs the epoch loop, mutating res in place.
func (e *Embedder) optimize(ctx context.Context, p *matrix.Dense, res *Result) error {
	o := e.opts
	y := res.Embedding
	n, d := y.Rows(), y.Cols()

	ws, err := newWorkspace(n, d, o.Workers)
	if err != nil {
		return err
	}
	velocity, err := matrix.ZerosLike(y)
	if err != nil {
		return err
	}
	gains, err := matrix.ZerosLike(y)
	if err != nil {
		return err
	}
	gains.Fill(1)

	momentum := o.InitMomentum
	if o.EarlyExaggerationEpochs == 0 {
		momentum += o.MomentumBoost
	}
	stop := newStopper(o)
	every := rate.Sometimes{Every: o.ProgressEvery}
	lowDim := pairwise.DenseRows(y)
	var allFinite bool

	finish := func(reason StopReason) {
		res.Reason = reason
		res.Epochs = len(res.Loss)
		msg := fmt.Sprintf("tsne: stopped after %d epochs (%s)", res.Epochs, reason)
		var last float64
		if res.Epochs > 0 {
			last = res.Loss[res.Epochs-1]
			msg += fmt.Sprintf(", loss %g", last)
		}
		o.Progress(Event{Kind: EventDone, Epoch: res.Epochs, Loss: last, Message: msg})
	}
	canceled := func(cause error) error {
		finish(StopCanceled)
		return fmt.Errorf("tsne: canceled after %d epochs: %w", len(res.Loss), cause)
	}

	for epoch := 1; epoch <= o.Epochs; epoch++ {
		if err = ctx.Err(); err != nil {
			return canceled(err)
		}

		if err = pairwise.ComputeInto(ctx, ws.dist, lowDim, o.EmbeddingMetric, pairwise.WithWorkers(o.Workers)); err != nil {
			return kernelError(err, canceled)
		}
		if err = ws.similarities(ctx); err != nil {
			return kernelError(err, canceled)
		}
		if err = ws.gradient(ctx, p, y, o.StudentT); err != nil {
			return kernelError(err, canceled)
		}
		if allFinite, err = ws.step(ctx, y, velocity, gains, &o, momentum); err != nil {
			return kernelError(err, canceled)
		}

		// The loss is taken before the update is committed so a diverging
		// epoch leaves y at its last finite state.
		var loss float64
		if loss, err = matrix.FrobeniusNorm(ws.scaled); err != nil {
			return err
		}
		res.Loss = append(res.Loss, loss)
		reason := stop.observe(epoch, loss)
		if !allFinite {
			reason = StopDiverged
		}
		if reason == StopDiverged {
			o.Progress(Event{Kind: EventNote, Epoch: epoch, Loss: loss, Message: fmt.Sprintf(
				"tsne: numerical divergence at epoch %d (loss %g); keeping previous embedding", epoch, loss)})
			finish(reason)
			return nil
		}
		if err = y.CopyFrom(ws.next); err != nil {
			return err
		}
		every.Do(func() {
			o.Progress(Event{Kind: EventEpoch, Epoch: epoch, Loss: loss,
				Message: fmt.Sprintf("tsne: epoch %d loss %g", epoch, loss)})
		})
		if reason != StopNone {
			finish(reason)
			return nil
		}

		if epoch == o.EarlyExaggerationEpochs {
			if err = matrix.ScaleInPlace(p, 1/o.Exaggeration); err != nil {
				return err
			}
			momentum += o.MomentumBoost
			o.Progress(Event{Kind: EventPhase, Epoch: epoch, Loss: loss, Message: fmt.Sprintf(
				"tsne: early exaggeration ended at epoch %d, momentum %g", epoch, momentum)})
		}
	}

	// unreachable: the stopper reports StopMaxEpochs on the last epoch
	finish(StopMaxEpochs)

	return nil
}

// kernelError maps context errors from the row kernels to a cancellation.
func kernelError(err error, canceled func(error) error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return canceled(err)
	}

	return err
}
