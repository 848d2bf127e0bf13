// Package theta provides the RICOH THETA flavour of the OSC protocol on top
// of package osc: domain value types, the option catalog, the command
// catalog and a Camera facade.
//
// # Values
//
// Physical quantities keep their wire representation and add a rendering:
//
//	Aperture(2.1)               "F2.1"     (0 is "Auto")
//	ISO(400)                    "ISO400"   (0 is AUTO)
//	ShutterSpeed(0.01)          "1/100"    (0 is "Auto")
//	ExposureCompensation(-0.7)  "-0.7EV"
//	WlanFrequency2_4            "2.4GHz"
//
// String enumerations are closed: each type lists its wire values and
// decoding any other value fails. CameraError is the exception, because
// firmware adds new codes and they are only diagnostics.
//
// # Options
//
// The option catalog in options_gen.go is generated by cmd/osc-optgen from
// options.yaml. Every option is an osc.Option or osc.ArrayOption variable:
//
//	iso, err := theta.GetOption(ctx, camera, theta.OptionISO)
//	err = camera.SetOptionsFunc(ctx, func(b *osc.OptionSetBuilder) {
//		theta.OptionISO.Put(b, 200)
//		theta.OptionShutterSpeed.Put(b, theta.ShutterSpeed(1.0/60))
//	})
//
// # Commands
//
// Camera methods return the first command response without waiting. Long
// running commands come back in progress and are completed with Await:
//
//	resp, err := camera.TakePicture(ctx)
//	done, err := theta.Await(ctx, camera, resp)
//	fmt.Println(done.Value().FileURL)
//
// # Live preview
//
// LivePreview returns the raw frame demuxer. PreviewStream wraps it with
// reconnects: a framing error or a dropped stream is followed by a backoff
// delay and a new preview request.
package theta
