// Package discovery finds OSC cameras on the local network.
//
// Cameras that support it announce themselves over mDNS/DNS-SD with the
// service type _osc._tcp. An MDNSBrowser aggregates the announcements of
// each instance across interfaces and emits one CameraService per camera.
//
// # Probing
//
// Announcements carry little more than an address. ProbeAll runs a probe
// (typically GET /osc/info) against many services concurrently and keeps
// per-service failures in the result instead of aborting the batch:
//
//	results := discovery.ProbeAll(ctx, services, func(ctx context.Context, svc *discovery.CameraService) (any, error) {
//		cam, err := theta.New(theta.Config{Endpoint: svc.Endpoint()})
//		if err != nil {
//			return nil, err
//		}
//		return cam.Info(ctx)
//	}, 4)
package discovery
