package mjpeg

import (
	"errors"
	"io"
)

// Header holds the part headers of one frame. Keys keep their wire case.
type Header map[string]string

// Get returns the value for name, matched case-sensitively.
func (h Header) Get(name string) string { return h[name] }

// Frame is a view of one payload inside the stream. It yields exactly
// Size bytes and then io.EOF. Closing it leaves the stream open.
// A Frame is not safe for concurrent use.
type Frame struct {
	Header Header

	// Index counts frames from zero.
	Index uint64

	// Size is the declared Content-Length.
	Size int

	lr     *io.LimitedReader
	d      *Demuxer
	closed bool
}

// Read reads from the frame payload.
func (f *Frame) Read(p []byte) (int, error) {
	if f.closed {
		return 0, ErrFrameClosed
	}
	if f.d.closed.Load() {
		return 0, ErrClosed
	}
	if f.d.current != f {
		// A later NextFrame has already consumed the remainder.
		return 0, io.EOF
	}
	n, err := f.lr.Read(p)
	if errors.Is(err, io.EOF) && f.lr.N > 0 {
		if f.d.closed.Load() {
			return n, ErrClosed
		}
		return n, io.ErrUnexpectedEOF
	}
	if err != nil && !errors.Is(err, io.EOF) && f.d.closed.Load() {
		return n, ErrClosed
	}
	return n, err
}

// Remaining returns the number of payload bytes not yet read.
func (f *Frame) Remaining() int { return int(f.lr.N) }

// Bytes reads the rest of the payload.
func (f *Frame) Bytes() ([]byte, error) { return io.ReadAll(f) }

// Close marks the frame closed. The underlying stream stays open and the
// unread remainder is skipped by the next NextFrame.
func (f *Frame) Close() error {
	f.closed = true
	return nil
}
