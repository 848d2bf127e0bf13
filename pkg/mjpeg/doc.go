// Package mjpeg demultiplexes a multipart motion-JPEG stream into frames.
//
// The stream is a repetition of
//
//	<boundary>\r\n
//	Content-Type: image/jpeg\r\n
//	Content-Length: N\r\n
//	\r\n
//	<N bytes>
//
// Lines may end in LF or CRLF. NextFrame returns a reader bounded to one
// frame; closing a frame never closes the stream. Bytes a caller leaves
// unread are skipped by the following NextFrame.
//
//	d := mjpeg.NewDemuxer(resp.Body, mjpeg.OSCBoundary)
//	defer d.Close()
//	for {
//		frame, err := d.NextFrame()
//		if err != nil {
//			return err // io.EOF at end of stream
//		}
//		jpeg, err := io.ReadAll(frame)
//		...
//	}
package mjpeg
