package theta

import (
	"context"
	"time"

	"github.com/theta-osc/osc-go/pkg/osc"
)

// DefaultWatchInterval separates checkForUpdates calls in WatchState.
const DefaultWatchInterval = time.Second

// StateHandler receives each new camera state. Returning an error stops
// the watch.
type StateHandler func(state osc.State[State]) error

// WatchState fetches the state once, then checks for updates every
// interval and fetches the state again whenever the fingerprint changes.
// fn is called with the initial state and after every change. A throttle
// timeout sent by the camera extends the wait. WatchState returns when ctx
// is cancelled, a request fails or fn returns an error.
func (c *Camera) WatchState(ctx context.Context, interval time.Duration, fn StateHandler) error {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	st, err := c.State(ctx)
	if err != nil {
		return err
	}
	if err := fn(st); err != nil {
		return err
	}
	fingerprint := st.Fingerprint

	wait := interval
	for {
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		up, err := c.CheckForUpdates(ctx, fingerprint)
		if err != nil {
			return err
		}
		wait = interval
		if throttle := time.Duration(up.ThrottleTimeout) * time.Second; throttle > wait {
			wait = throttle
		}
		if !up.Changed(fingerprint) {
			continue
		}

		st, err := c.State(ctx)
		if err != nil {
			return err
		}
		fingerprint = st.Fingerprint
		if err := fn(st); err != nil {
			return err
		}
	}
}
