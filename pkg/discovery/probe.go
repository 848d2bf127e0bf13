package discovery

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultProbeConcurrency is the probe limit used when ProbeAll gets a
// non-positive limit.
const DefaultProbeConcurrency = 4

// ProbeFunc queries one discovered camera.
type ProbeFunc[T any] func(ctx context.Context, svc *CameraService) (T, error)

// ProbeResult is the outcome of probing one service.
type ProbeResult[T any] struct {
	Service *CameraService
	Value   T
	Err     error
}

// ProbeAll runs probe on every service with at most limit probes in
// flight. Results are in input order. A failing probe stores its error in
// its result and does not cancel the others; only ctx does.
func ProbeAll[T any](ctx context.Context, services []*CameraService, probe ProbeFunc[T], limit int) []ProbeResult[T] {
	if limit <= 0 {
		limit = DefaultProbeConcurrency
	}
	results := make([]ProbeResult[T], len(services))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, svc := range services {
		results[i].Service = svc
		if svc.Endpoint() == "" {
			results[i].Err = ErrNoAddress
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Value, results[i].Err = probe(gctx, svc)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// Collect drains ch until it is closed or ctx is done.
func Collect(ctx context.Context, ch <-chan *CameraService) []*CameraService {
	var out []*CameraService
	for {
		select {
		case svc, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, svc)
		case <-ctx.Done():
			return out
		}
	}
}
