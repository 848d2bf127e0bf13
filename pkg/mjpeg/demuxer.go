package mjpeg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/theta-osc/osc-go/pkg/log"
)

// Stream constants.
const (
	// OSCBoundary separates frames of the OSC live preview.
	OSCBoundary = "---osclivepreview---"

	// ContentLength is the header naming the frame size. Lookup is
	// case-sensitive.
	ContentLength = "Content-Length"

	// DefaultMaxFrameSize bounds a single frame (16 MiB).
	DefaultMaxFrameSize = 16 << 20

	// MaxLineLength bounds boundary and header lines.
	MaxLineLength = 4096

	// MaxHeaders bounds the header lines per frame.
	MaxHeaders = 64
)

// Demuxer splits a multipart stream into frames. NextFrame must not be
// called concurrently; Close may be called from any goroutine.
type Demuxer struct {
	rc           io.ReadCloser
	br           *bufio.Reader
	boundary     string
	maxFrameSize int

	current *Frame
	index   uint64

	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error

	// Logging support (optional)
	logger    log.Logger
	sessionID string
	endpoint  string

	onFrame func(index uint64, size int)
}

// NewDemuxer creates a demuxer reading frames separated by boundary.
func NewDemuxer(rc io.ReadCloser, boundary string) *Demuxer {
	return NewDemuxerWithMaxSize(rc, boundary, DefaultMaxFrameSize)
}

// NewDemuxerWithMaxSize creates a demuxer with a custom frame size limit.
func NewDemuxerWithMaxSize(rc io.ReadCloser, boundary string, maxSize int) *Demuxer {
	return &Demuxer{
		rc:           rc,
		br:           bufio.NewReader(rc),
		boundary:     boundary,
		maxFrameSize: maxSize,
	}
}

// SetLogger configures capture of frame events.
// Pass nil to disable logging.
func (d *Demuxer) SetLogger(logger log.Logger, sessionID, endpoint string) {
	d.logger = logger
	d.sessionID = sessionID
	d.endpoint = endpoint
}

// SetFrameHook registers fn to run for every frame header parsed.
func (d *Demuxer) SetFrameHook(fn func(index uint64, size int)) {
	d.onFrame = fn
}

// Boundary returns the boundary token.
func (d *Demuxer) Boundary() string { return d.boundary }

// NextFrame parses the next frame header and returns a reader over its
// payload. Any unread bytes of the previous frame are discarded first.
//
// It returns io.EOF when the stream ends between frames, ErrClosed after
// Close and a *FramingError for malformed input.
func (d *Demuxer) NextFrame() (*Frame, error) {
	if d.closed.Load() {
		return nil, ErrClosed
	}
	if err := d.skipCurrent(); err != nil {
		return nil, d.fail(err)
	}

	line, err := d.readNonBlankLine()
	if err != nil {
		return nil, d.fail(err)
	}
	if line != d.boundary {
		return nil, d.fail(&FramingError{Line: line, Reason: "expected boundary"})
	}

	header, err := d.readHeader()
	if err != nil {
		return nil, d.fail(err)
	}
	size, err := d.contentLength(header)
	if err != nil {
		return nil, d.fail(err)
	}

	frame := &Frame{
		Header: header,
		Index:  d.index,
		Size:   size,
		lr:     &io.LimitedReader{R: d.br, N: int64(size)},
		d:      d,
	}
	d.current = frame
	d.index++

	if d.onFrame != nil {
		d.onFrame(frame.Index, size)
	}
	if d.logger != nil {
		d.logger.Log(log.Event{
			Timestamp: time.Now(),
			SessionID: d.sessionID,
			Direction: log.DirectionIn,
			Layer:     log.LayerPreview,
			Category:  log.CategoryFrame,
			Endpoint:  d.endpoint,
			Frame:     &log.FrameEvent{Index: frame.Index, Size: size},
		})
	}
	return frame, nil
}

// Close closes the underlying stream. An in-flight NextFrame or frame Read
// fails with ErrClosed. It is safe to call Close multiple times.
func (d *Demuxer) Close() error {
	d.closeOnce.Do(func() {
		d.closed.Store(true)
		d.closeErr = d.rc.Close()
	})
	return d.closeErr
}

// skipCurrent drains whatever the caller left of the previous frame.
func (d *Demuxer) skipCurrent() error {
	f := d.current
	if f == nil {
		return nil
	}
	d.current = nil
	if f.lr.N == 0 {
		return nil
	}
	if _, err := io.Copy(io.Discard, f.lr); err != nil {
		return err
	}
	if f.lr.N > 0 {
		return io.ErrUnexpectedEOF
	}
	return nil
}

func (d *Demuxer) readNonBlankLine() (string, error) {
	for {
		line, err := d.readLine()
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
	}
}

func (d *Demuxer) readHeader() (Header, error) {
	header := make(Header)
	for {
		line, err := d.readLine()
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		if err != nil {
			return nil, err
		}
		if line == "" {
			return header, nil
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, &FramingError{Line: line, Reason: "malformed header"}
		}
		if len(header) >= MaxHeaders {
			return nil, &FramingError{Reason: "too many headers"}
		}
		header[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
}

func (d *Demuxer) contentLength(header Header) (int, error) {
	raw, ok := header[ContentLength]
	if !ok {
		return 0, &FramingError{Reason: "missing " + ContentLength}
	}
	size, err := strconv.Atoi(raw)
	if err != nil || size < 0 {
		return 0, &FramingError{Line: ContentLength + ": " + raw, Reason: "invalid " + ContentLength}
	}
	if size > d.maxFrameSize {
		return 0, &FramingError{
			Line:   ContentLength + ": " + raw,
			Reason: fmt.Sprintf("frame exceeds %d bytes", d.maxFrameSize),
		}
	}
	return size, nil
}

// readLine reads up to LF, dropping CR bytes. It returns io.EOF only when
// the stream ends before any byte of the line.
func (d *Demuxer) readLine() (string, error) {
	var sb strings.Builder
	for {
		b, err := d.br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				return "", io.ErrUnexpectedEOF
			}
			return "", err
		}
		switch b {
		case '\n':
			return sb.String(), nil
		case '\r':
			continue
		}
		if sb.Len() >= MaxLineLength {
			return "", &FramingError{Line: sb.String()[:64], Reason: "line too long"}
		}
		sb.WriteByte(b)
	}
}

// fail maps read errors after Close to ErrClosed and records framing
// errors.
func (d *Demuxer) fail(err error) error {
	if d.closed.Load() {
		return ErrClosed
	}
	var fe *FramingError
	if errors.As(err, &fe) && d.logger != nil {
		d.logger.Log(log.Event{
			Timestamp: time.Now(),
			SessionID: d.sessionID,
			Direction: log.DirectionIn,
			Layer:     log.LayerPreview,
			Category:  log.CategoryError,
			Endpoint:  d.endpoint,
			Error: &log.ErrorEventData{
				Layer:   log.LayerPreview,
				Message: fe.Error(),
				Context: "frame header",
			},
		})
	}
	return err
}
