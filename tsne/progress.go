// SPDX-License-Identifier: MIT
package tsne

import (
	"context"
	"log/slog"
)

// EventKind classifies progress events.
type EventKind int

const (
	EventInit  EventKind = iota // once, effective configuration
	EventEpoch                  // per epoch (throttled), current loss
	EventPhase                  // early exaggeration ended
	EventNote                   // informational: unconverged rows, divergence
	EventDone                   // once, stop reason
)

func (k EventKind) String() string {
	switch k {
	case EventInit:
		return "init"
	case EventEpoch:
		return "epoch"
	case EventPhase:
		return "phase"
	case EventNote:
		return "note"
	case EventDone:
		return "done"
	default:
		return "unknown"
	}
}

// Event is one progress notification. Message is human readable; the other
// fields carry the same facts for structured sinks.
type Event struct {
	Kind    EventKind
	Epoch   int
	Loss    float64
	Message string
}

func (e Event) String() string { return e.Message }

// ProgressFunc receives progress events. It is called from the goroutine
// running Embed, never concurrently.
type ProgressFunc func(Event)

func noopProgress(Event) {}

// SlogProgress adapts a structured logger. Notes are logged at Warn,
// per-epoch events at Debug and the rest at Info.
func SlogProgress(logger *slog.Logger) ProgressFunc {
	if logger == nil {
		return noopProgress
	}

	return func(e Event) {
		level := slog.LevelInfo
		switch e.Kind {
		case EventNote:
			level = slog.LevelWarn
		case EventEpoch:
			level = slog.LevelDebug
		}
		attrs := []slog.Attr{slog.String("event", e.Kind.String())}
		if e.Epoch > 0 {
			attrs = append(attrs, slog.Int("epoch", e.Epoch), slog.Float64("loss", e.Loss))
		}
		logger.LogAttrs(context.Background(), level, e.Message, attrs...)
	}
}
