// Package connection provides retry pacing for long-lived camera streams.
//
// The live preview is a single HTTP response that lasts until the camera
// drops it. Reopening uses exponential backoff:
//
//  1. Initial delay: 500 milliseconds
//  2. Exponential increase: 1s, 2s, 4s, 8s
//  3. Maximum delay: 10 seconds
//  4. Reset once a frame arrives on the new stream
//
// # Jitter
//
// Each delay is stretched by a random fraction so several viewers do not
// reconnect in lockstep:
//
//	actual_delay = base_delay + random(0, base_delay * 0.25)
package connection
