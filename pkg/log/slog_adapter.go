package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes protocol events to an slog.Logger.
// Events are written at Debug level under the message "protocol".
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("direction", event.Direction.String()),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}
	if event.Endpoint != "" {
		attrs = append(attrs, slog.String("endpoint", event.Endpoint))
	}

	switch {
	case event.Exchange != nil:
		ex := event.Exchange
		attrs = append(attrs,
			slog.String("method", ex.Method),
			slog.String("path", ex.Path),
			slog.Int("body_size", ex.BodySize),
		)
		if ex.Command != "" {
			attrs = append(attrs, slog.String("command", ex.Command))
		}
		if ex.StatusCode != 0 {
			attrs = append(attrs, slog.Int("status", ex.StatusCode))
		}
		if ex.Duration != 0 {
			attrs = append(attrs, slog.Duration("duration", ex.Duration))
		}
		if ex.Truncated {
			attrs = append(attrs, slog.Bool("truncated", true))
		}
	case event.Frame != nil:
		attrs = append(attrs,
			slog.Uint64("frame_index", event.Frame.Index),
			slog.Int("frame_size", event.Frame.Size),
		)
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("entity", event.StateChange.Entity.String()),
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.ID != "" {
			attrs = append(attrs, slog.String("id", event.StateChange.ID))
		}
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_layer", event.Error.Layer.String()),
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
		if event.Error.Code != "" {
			attrs = append(attrs, slog.String("error_code", event.Error.Code))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "protocol", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
