package mjpeg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theta-osc/osc-go/pkg/log"
)

// trackingCloser records whether the stream was closed.
type trackingCloser struct {
	io.Reader
	closed bool
}

func (t *trackingCloser) Close() error {
	t.closed = true
	return nil
}

func part(payload []byte) string {
	return fmt.Sprintf("%s\r\nContent-Type: image/jpeg\r\nContent-Length: %d\r\n\r\n%s",
		OSCBoundary, len(payload), payload)
}

func stream(parts ...string) *trackingCloser {
	return &trackingCloser{Reader: strings.NewReader(strings.Join(parts, "\r\n"))}
}

func TestNextFrameReturnsEachPayload(t *testing.T) {
	payloads := [][]byte{
		[]byte("\xff\xd8first\xff\xd9"),
		bytes.Repeat([]byte{0xAB}, 5000),
		[]byte("\xff\xd8third\xff\xd9"),
	}
	src := stream(part(payloads[0]), part(payloads[1]), part(payloads[2]))
	d := NewDemuxer(src, OSCBoundary)

	for i, want := range payloads {
		frame, err := d.NextFrame()
		require.NoError(t, err, "frame %d", i)
		assert.Equal(t, uint64(i), frame.Index)
		assert.Equal(t, len(want), frame.Size)
		assert.Equal(t, "image/jpeg", frame.Header.Get("Content-Type"))

		got, err := frame.Bytes()
		require.NoError(t, err)
		assert.Equal(t, want, got)

		require.NoError(t, frame.Close())
		assert.False(t, src.closed, "closing a frame closed the stream")
	}

	_, err := d.NextFrame()
	assert.ErrorIs(t, err, io.EOF)
	assert.False(t, src.closed)
}

func TestNextFrameSkipsUnreadRemainder(t *testing.T) {
	src := stream(part([]byte("0123456789")), part([]byte("abc")))
	d := NewDemuxer(src, OSCBoundary)

	first, err := d.NextFrame()
	require.NoError(t, err)
	buf := make([]byte, 4)
	n, err := first.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "0123", string(buf[:n]))
	assert.Equal(t, 6, first.Remaining())

	second, err := d.NextFrame()
	require.NoError(t, err)
	got, err := second.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	// The abandoned frame is exhausted.
	n, err = first.Read(buf)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestNextFrameSkipsClosedFrame(t *testing.T) {
	src := stream(part([]byte("unread")), part([]byte("next")))
	d := NewDemuxer(src, OSCBoundary)

	first, err := d.NextFrame()
	require.NoError(t, err)
	require.NoError(t, first.Close())

	_, err = first.Read(make([]byte, 1))
	assert.ErrorIs(t, err, ErrFrameClosed)

	second, err := d.NextFrame()
	require.NoError(t, err)
	got, err := second.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "next", string(got))
}

func TestNextFrameLineEndings(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"crlf", OSCBoundary + "\r\nContent-Length: 3\r\n\r\nabc"},
		{"lf", OSCBoundary + "\nContent-Length: 3\n\nabc"},
		{"leading blank lines", "\r\n\n\r\n" + OSCBoundary + "\nContent-Length: 3\n\nabc"},
		{"extra spaces in header", OSCBoundary + "\nContent-Length:    3  \n\nabc"},
		{"trailing newline", OSCBoundary + "\nContent-Length: 3\n\nabc\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDemuxer(io.NopCloser(strings.NewReader(tt.input)), OSCBoundary)
			frame, err := d.NextFrame()
			require.NoError(t, err)
			got, err := frame.Bytes()
			require.NoError(t, err)
			assert.Equal(t, "abc", string(got))

			_, err = d.NextFrame()
			assert.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestNextFrameFramingErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine string
	}{
		{
			name:     "wrong boundary",
			input:    "--otherboundary--\r\nContent-Length: 3\r\n\r\nabc",
			wantLine: "--otherboundary--",
		},
		{
			name:  "missing content length",
			input: OSCBoundary + "\r\nContent-Type: image/jpeg\r\n\r\nabc",
		},
		{
			name:  "content length wrong case",
			input: OSCBoundary + "\r\ncontent-length: 3\r\n\r\nabc",
		},
		{
			name:     "non integer content length",
			input:    OSCBoundary + "\r\nContent-Length: three\r\n\r\nabc",
			wantLine: "Content-Length: three",
		},
		{
			name:     "negative content length",
			input:    OSCBoundary + "\r\nContent-Length: -1\r\n\r\n",
			wantLine: "Content-Length: -1",
		},
		{
			name:     "header without colon",
			input:    OSCBoundary + "\r\nnot a header\r\n\r\n",
			wantLine: "not a header",
		},
		{
			name:  "line too long",
			input: strings.Repeat("x", MaxLineLength+10) + "\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDemuxer(io.NopCloser(strings.NewReader(tt.input)), OSCBoundary)
			_, err := d.NextFrame()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFraming)

			var fe *FramingError
			require.True(t, errors.As(err, &fe))
			if tt.wantLine != "" {
				assert.Equal(t, tt.wantLine, fe.Line)
			}
		})
	}
}

func TestNextFrameOversized(t *testing.T) {
	input := OSCBoundary + "\r\nContent-Length: 2048\r\n\r\n"
	d := NewDemuxerWithMaxSize(io.NopCloser(strings.NewReader(input)), OSCBoundary, 1024)
	_, err := d.NextFrame()
	assert.ErrorIs(t, err, ErrFraming)
}

func TestNextFrameTruncatedStream(t *testing.T) {
	t.Run("inside payload", func(t *testing.T) {
		input := OSCBoundary + "\r\nContent-Length: 10\r\n\r\nabc"
		d := NewDemuxer(io.NopCloser(strings.NewReader(input)), OSCBoundary)
		frame, err := d.NextFrame()
		require.NoError(t, err)
		_, err = frame.Bytes()
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("inside headers", func(t *testing.T) {
		input := OSCBoundary + "\r\nContent-Length: 10\r\n"
		d := NewDemuxer(io.NopCloser(strings.NewReader(input)), OSCBoundary)
		_, err := d.NextFrame()
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("skipping abandoned payload", func(t *testing.T) {
		input := OSCBoundary + "\r\nContent-Length: 10\r\n\r\nabc"
		d := NewDemuxer(io.NopCloser(strings.NewReader(input)), OSCBoundary)
		_, err := d.NextFrame()
		require.NoError(t, err)
		_, err = d.NextFrame()
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

func TestCloseClosesStreamOnce(t *testing.T) {
	src := stream(part([]byte("abc")))
	d := NewDemuxer(src, OSCBoundary)

	require.NoError(t, d.Close())
	require.NoError(t, d.Close())
	assert.True(t, src.closed)

	_, err := d.NextFrame()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestCloseFailsOpenFrame(t *testing.T) {
	d := NewDemuxer(stream(part([]byte("abcdef"))), OSCBoundary)
	frame, err := d.NextFrame()
	require.NoError(t, err)
	require.NoError(t, d.Close())

	_, err = frame.Read(make([]byte, 2))
	assert.ErrorIs(t, err, ErrClosed)
}

func TestCloseUnblocksNextFrame(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	d := NewDemuxer(pr, OSCBoundary)

	var wg sync.WaitGroup
	var nextErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, nextErr = d.NextFrame()
	}()

	// Deliver half a boundary so NextFrame is blocked mid-line.
	_, err := pw.Write([]byte("---osclive"))
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, d.Close())

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("NextFrame did not return after Close")
	}
	assert.ErrorIs(t, nextErr, ErrClosed)
}

type recordingLogger struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *recordingLogger) Log(e log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func TestDemuxerLogsFramesAndErrors(t *testing.T) {
	rec := &recordingLogger{}
	input := part([]byte("abc")) + "\r\n--bogus--\r\n"
	d := NewDemuxer(io.NopCloser(strings.NewReader(input)), OSCBoundary)
	d.SetLogger(rec, "session-1", "http://192.168.1.1")

	var hooked []int
	d.SetFrameHook(func(index uint64, size int) { hooked = append(hooked, size) })

	_, err := d.NextFrame()
	require.NoError(t, err)
	_, err = d.NextFrame()
	require.ErrorIs(t, err, ErrFraming)

	assert.Equal(t, []int{3}, hooked)
	require.Len(t, rec.events, 2)

	frameEvent := rec.events[0]
	assert.Equal(t, log.CategoryFrame, frameEvent.Category)
	assert.Equal(t, log.LayerPreview, frameEvent.Layer)
	assert.Equal(t, "session-1", frameEvent.SessionID)
	require.NotNil(t, frameEvent.Frame)
	assert.Equal(t, 3, frameEvent.Frame.Size)

	errEvent := rec.events[1]
	assert.Equal(t, log.CategoryError, errEvent.Category)
	require.NotNil(t, errEvent.Error)
	assert.Contains(t, errEvent.Error.Message, "--bogus--")
}
