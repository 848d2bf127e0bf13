package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// FileExt is the conventional extension of capture files.
const FileExt = ".osclog"

// sessionStampLayout names session files so they sort by start time.
const sessionStampLayout = "20060102-150405"

// FileLogger writes capture events to a file as a CBOR stream.
// It is safe for concurrent use from multiple goroutines.
type FileLogger struct {
	path      string
	sessionID string
	file      *os.File
	encoder   *cbor.Encoder
	mu        sync.Mutex
	closed    bool
}

// SessionLogPath returns the capture file for a session started at start:
// dir/osc-<start>-<first 8 characters of the session ID>.osclog.
func SessionLogPath(dir, sessionID string, start time.Time) string {
	short := sessionID
	if len(short) > 8 {
		short = short[:8]
	}
	if short == "" {
		short = "nosession"
	}
	name := fmt.Sprintf("osc-%s-%s%s", start.UTC().Format(sessionStampLayout), short, FileExt)
	return filepath.Join(dir, name)
}

// NewSessionFileLogger creates dir if needed and opens a capture file for
// one client session there. Events logged without a session ID are
// stamped with sessionID.
func NewSessionFileLogger(dir, sessionID string) (*FileLogger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	l, err := NewFileLogger(SessionLogPath(dir, sessionID, time.Now()))
	if err != nil {
		return nil, err
	}
	l.sessionID = sessionID
	return l, nil
}

// NewFileLogger creates a new FileLogger that writes to the specified path.
// If the file exists, new events are appended. The file is created with
// permissions 0644 if it doesn't exist.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &FileLogger{
		path:    path,
		file:    f,
		encoder: NewEncoder(f),
	}, nil
}

// Path returns the file being written.
func (l *FileLogger) Path() string { return l.path }

// Log writes an event to the log file.
// This method is safe for concurrent use.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	if event.SessionID == "" {
		event.SessionID = l.sessionID
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	// Capture must not disturb the client; encoding errors are dropped.
	_ = l.encoder.Encode(event)
}

// Close closes the log file.
// It is safe to call Close multiple times.
// After Close is called, subsequent Log calls are silently ignored.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}

	l.closed = true
	return l.file.Close()
}

var _ Logger = (*FileLogger)(nil)
