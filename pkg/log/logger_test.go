package log

import (
	"sync"
	"testing"
)

type recordingLogger struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingLogger) Log(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func TestNoopLoggerDoesNotPanic(t *testing.T) {
	var l NoopLogger
	l.Log(Event{})
	l.Log(Event{Exchange: &ExchangeEvent{Method: "GET"}})
}

func TestOrNoop(t *testing.T) {
	if _, ok := OrNoop(nil).(NoopLogger); !ok {
		t.Error("OrNoop(nil) is not NoopLogger")
	}
	rec := &recordingLogger{}
	if OrNoop(rec) != Logger(rec) {
		t.Error("OrNoop(l) did not return l")
	}
}

func TestMultiLoggerFansOut(t *testing.T) {
	a, b := &recordingLogger{}, &recordingLogger{}
	m := NewMultiLogger(a, nil, b)

	m.Log(Event{SessionID: "s1"})
	m.Log(Event{SessionID: "s2"})

	for name, rec := range map[string]*recordingLogger{"a": a, "b": b} {
		if len(rec.events) != 2 {
			t.Fatalf("%s got %d events, want 2", name, len(rec.events))
		}
		if rec.events[1].SessionID != "s2" {
			t.Errorf("%s second event session = %q", name, rec.events[1].SessionID)
		}
	}
}

func TestMultiLoggerEmpty(t *testing.T) {
	m := NewMultiLogger()
	m.Log(Event{})
}
