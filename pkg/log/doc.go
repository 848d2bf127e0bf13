// Package log provides protocol capture for OSC camera sessions.
//
// Capture is separate from operational logging (slog): it records every
// HTTP exchange, command state transition and preview frame as a
// machine-readable Event so a session can be replayed and analysed later.
//
// # Basic Usage
//
//	// During development: events to the console via slog
//	cfg.ProtocolLogger = log.NewSlogAdapter(slog.Default())
//
//	// In the field: events to a capture file
//	cfg.ProtocolLogger, _ = log.NewFileLogger("/tmp/camera.osclog")
//
//	// One file per client session
//	file, _ := log.NewSessionFileLogger("captures", client.SessionID())
//	client.SetProtocolLogger(file)
//
//	// Both
//	cfg.ProtocolLogger = log.NewMultiLogger(console, file)
//
// # Event Types
//
// Events are captured at three layers:
//   - HTTP: one ExchangeEvent per request and per response
//   - Command: StateChangeEvent when an awaited command changes state
//   - Preview: FrameEvent per demultiplexed frame, StateChangeEvent on open/close
//
// Errors at any layer are recorded with ErrorEventData.
//
// # File Format
//
// Capture files are a stream of CBOR-encoded events with integer keys,
// conventionally named *.osclog. The osc-log tool views, filters and
// exports them.
package log
