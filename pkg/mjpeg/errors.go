package mjpeg

import (
	"errors"
	"fmt"
)

// Demuxer errors.
var (
	// ErrFraming is matched by every *FramingError.
	ErrFraming = errors.New("mjpeg: framing error")

	// ErrClosed is returned by NextFrame and Frame.Read once the demuxer
	// has been closed.
	ErrClosed = errors.New("mjpeg: demuxer closed")

	// ErrFrameClosed is returned by Read on a frame that was closed.
	ErrFrameClosed = errors.New("mjpeg: frame closed")
)

// FramingError reports a stream that does not follow the multipart layout.
// The stream cannot be resynchronised; close it and reopen the preview.
type FramingError struct {
	// Line is the offending input line, if any.
	Line string

	// Reason describes the violation.
	Reason string
}

func (e *FramingError) Error() string {
	if e.Line == "" {
		return fmt.Sprintf("mjpeg: %s", e.Reason)
	}
	return fmt.Sprintf("mjpeg: %s: %q", e.Reason, e.Line)
}

// Is reports ErrFraming as a match.
func (e *FramingError) Is(target error) bool { return target == ErrFraming }
