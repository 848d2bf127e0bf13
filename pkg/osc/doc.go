// Package osc implements the client side of the Open Spherical Camera
// HTTP/JSON control protocol.
//
// A camera exposes five endpoints relative to its base URL:
//
//	GET  /osc/info               device information
//	POST /osc/state              {fingerprint, state}
//	POST /osc/checkForUpdates    {stateFingerprint} -> {stateFingerprint}
//	POST /osc/commands/execute   {name, parameters?} -> command response
//	POST /osc/commands/status    {id} -> command response
//
// Every request carries "Accept: application/json" and "X-XSRF-Protected: 1".
//
// # Codecs
//
// A Codec converts between a Go value and its JSON wire form. Commands,
// options and device records are all described by codecs, so the engine
// never needs reflection to decide how a value travels:
//
//	JSON[T]()        encoding/json, with Validate() hooks for required fields
//	Array(c)         a JSON array decoded element by element
//	Enum(values...)  a closed set of wire values; unknown values fail
//	IntAsDouble()    integers sent as floating point, rounded on decode
//	Void()           commands without parameters or results
//
// # Options
//
// Option[T] and ArrayOption[T] name a device setting and carry its codec.
// An OptionSet holds raw JSON per option name and decodes lazily:
//
//	b := osc.NewOptionSetBuilder()
//	iso.Put(b, 200)
//	whiteBalance.Put(b, "daylight")
//	set, err := b.Build()
//
//	v, ok, err := iso.Get(set) // ok is false when the camera omitted it
//
// # Commands
//
// Command[P, R] pairs a wire name with parameter and result codecs.
// Execute submits a command; if the camera answers inProgress, Await polls
// /osc/commands/status until the command is done:
//
//	resp, err := osc.Execute(ctx, client, takePicture, osc.Unit{})
//	resp, err = osc.Await(ctx, client, resp)
//
// A response carrying an "error" object is never returned as a result; it
// surfaces as a *ProtocolError.
//
// # Live Preview
//
// Client.LivePreview issues camera.getLivePreview and wraps the multipart
// body in an mjpeg.Demuxer using the boundary "---osclivepreview---".
package osc
