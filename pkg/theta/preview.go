package theta

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/theta-osc/osc-go/pkg/connection"
	"github.com/theta-osc/osc-go/pkg/mjpeg"
	"github.com/theta-osc/osc-go/pkg/osc"
)

// FrameHandler receives each preview frame. The frame is only valid until
// the handler returns. Returning an error stops the stream.
type FrameHandler func(frame *mjpeg.Frame) error

// PreviewConfig configures PreviewStreamWithConfig.
type PreviewConfig struct {
	Backoff connection.BackoffConfig

	// MaxAttempts bounds consecutive failed reconnects; 0 retries forever.
	MaxAttempts int

	// Logger receives reconnect logs. Nil discards them.
	Logger *slog.Logger
}

// DefaultPreviewConfig retries forever with the default backoff.
func DefaultPreviewConfig() PreviewConfig {
	return PreviewConfig{Backoff: connection.DefaultBackoffConfig()}
}

// ErrPreviewGaveUp is returned once PreviewConfig.MaxAttempts reconnects
// failed in a row.
var ErrPreviewGaveUp = errors.New("theta: live preview reconnect attempts exhausted")

// PreviewStream runs PreviewStreamWithConfig with DefaultPreviewConfig.
func (c *Camera) PreviewStream(ctx context.Context, fn FrameHandler) error {
	return c.PreviewStreamWithConfig(ctx, DefaultPreviewConfig(), fn)
}

// PreviewStreamWithConfig opens the live preview and passes every frame to
// fn. When the stream ends or breaks its framing, it is closed and reopened
// after a backoff delay. The backoff is reset by the first frame of each
// new stream.
//
// It returns ctx.Err() on cancellation and fn's error as is. Errors that a
// reconnect cannot fix are returned immediately: authentication failures,
// structured camera errors, undecodable answers and usage errors.
func (c *Camera) PreviewStreamWithConfig(ctx context.Context, cfg PreviewConfig, fn FrameHandler) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	backoff := connection.NewBackoffWithConfig(cfg.Backoff)

	for {
		err := c.streamOnce(ctx, backoff, fn)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		var herr *handlerError
		if errors.As(err, &herr) {
			return herr.err
		}
		if !retryable(err) {
			return err
		}
		if cfg.MaxAttempts > 0 && backoff.Attempts() >= cfg.MaxAttempts {
			return fmt.Errorf("%w: %v", ErrPreviewGaveUp, err)
		}

		logger.Info("live preview interrupted, reconnecting",
			"error", err,
			"attempt", backoff.Attempts()+1,
			"delay", backoff.Current())
		if err := backoff.Wait(ctx); err != nil {
			return err
		}
	}
}

type handlerError struct{ err error }

func (e *handlerError) Error() string { return e.err.Error() }
func (e *handlerError) Unwrap() error { return e.err }

// streamOnce runs one preview connection until it fails. It never returns
// nil.
func (c *Camera) streamOnce(ctx context.Context, backoff *connection.Backoff, fn FrameHandler) error {
	d, err := c.LivePreview(ctx)
	if err != nil {
		return err
	}
	defer d.Close()
	stop := context.AfterFunc(ctx, func() { _ = d.Close() })
	defer stop()

	for first := true; ; first = false {
		frame, err := d.NextFrame()
		if err != nil {
			return err
		}
		if first {
			backoff.Reset()
		}
		err = fn(frame)
		frame.Close()
		if err != nil {
			return &handlerError{err: err}
		}
	}
}

// retryable reports whether reopening the preview can help after err.
func retryable(err error) bool {
	var (
		pe *osc.ProtocolError
		ae *osc.AuthenticationError
	)
	switch {
	case errors.As(err, &ae), errors.As(err, &pe):
		return false
	case errors.Is(err, osc.ErrDecode), errors.Is(err, osc.ErrUsage), errors.Is(err, osc.ErrInvalidEndpoint):
		return false
	}
	return true
}
