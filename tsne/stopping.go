// SPDX-License-Identifier: MIT
package tsne

import (
	"fmt"
	"math"
)

// StopReason says why the optimizer halted.
type StopReason int

const (
	// StopNone means the loop has not halted (never present in a Result).
	StopNone StopReason = iota
	// StopDiverged: the loss was NaN or an update produced a non-finite coordinate.
	StopDiverged
	// StopConverged: the loss fell below the minimum gradient.
	StopConverged
	// StopStalled: no new best loss for Patience consecutive epochs.
	StopStalled
	// StopMaxEpochs: the epoch budget was spent.
	StopMaxEpochs
	// StopCanceled: the context was canceled or timed out.
	StopCanceled
)

func (r StopReason) String() string {
	switch r {
	case StopNone:
		return "running"
	case StopDiverged:
		return "diverged"
	case StopConverged:
		return "converged"
	case StopStalled:
		return "stalled"
	case StopMaxEpochs:
		return "max epochs"
	case StopCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// stopper tracks the best loss and the no-improvement counter.
type stopper struct {
	minGradient float64
	patience    int
	maxEpochs   int

	best  float64
	stale int
}

func newStopper(o Options) *stopper {
	return &stopper{
		minGradient: o.MinGradient,
		patience:    o.Patience,
		maxEpochs:   o.Epochs,
		best:        math.Inf(1),
	}
}

// observe records the loss of a completed epoch (1-based) and reports
// whether to halt. Checks run in order: NaN, below minimum gradient,
// patience exhausted, epoch budget spent.
func (s *stopper) observe(epoch int, loss float64) StopReason {
	if loss < s.best {
		s.best = loss
		s.stale = 0
	} else {
		s.stale++
	}

	switch {
	case math.IsNaN(loss):
		return StopDiverged
	case loss < s.minGradient:
		return StopConverged
	case s.stale >= s.patience:
		return StopStalled
	case epoch >= s.maxEpochs:
		return StopMaxEpochs
	}

	return StopNone
}
