package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func captureSlog(t *testing.T, event Event) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	NewSlogAdapter(slog.New(handler)).Log(event)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("parse slog output %q: %v", buf.String(), err)
	}
	return record
}

func TestSlogAdapterExchange(t *testing.T) {
	record := captureSlog(t, Event{
		Timestamp: time.Now(),
		SessionID: "sess",
		Direction: DirectionIn,
		Layer:     LayerHTTP,
		Category:  CategoryExchange,
		Endpoint:  "http://192.168.1.1",
		Exchange: &ExchangeEvent{
			Method:     "POST",
			Path:       "/osc/commands/execute",
			Command:    "camera.getOptions",
			StatusCode: 200,
			BodySize:   12,
			Duration:   time.Millisecond,
		},
	})

	want := map[string]any{
		"msg":        "protocol",
		"level":      "DEBUG",
		"session_id": "sess",
		"direction":  "IN",
		"layer":      "HTTP",
		"category":   "EXCHANGE",
		"endpoint":   "http://192.168.1.1",
		"method":     "POST",
		"path":       "/osc/commands/execute",
		"command":    "camera.getOptions",
		"status":     float64(200),
		"body_size":  float64(12),
	}
	for k, v := range want {
		if record[k] != v {
			t.Errorf("%s = %v, want %v", k, record[k], v)
		}
	}
	if _, ok := record["truncated"]; ok {
		t.Error("truncated attribute present for untruncated body")
	}
}

func TestSlogAdapterStateChange(t *testing.T) {
	record := captureSlog(t, Event{
		Layer:    LayerCommand,
		Category: CategoryState,
		StateChange: &StateChangeEvent{
			Entity:   StateEntityCommand,
			ID:       "camera.takePicture",
			OldState: "inProgress",
			NewState: "done",
			Reason:   "id=42",
		},
	})

	if record["entity"] != "COMMAND" || record["new_state"] != "done" || record["reason"] != "id=42" {
		t.Errorf("record = %v", record)
	}
}

func TestSlogAdapterError(t *testing.T) {
	record := captureSlog(t, Event{
		Layer:    LayerHTTP,
		Category: CategoryError,
		Error: &ErrorEventData{
			Layer:   LayerHTTP,
			Message: "connection refused",
			Context: "POST /osc/state",
		},
	})

	if record["error_msg"] != "connection refused" || record["error_layer"] != "HTTP" {
		t.Errorf("record = %v", record)
	}
	if _, ok := record["error_code"]; ok {
		t.Error("error_code present without a code")
	}
}

func TestSlogAdapterFrame(t *testing.T) {
	record := captureSlog(t, Event{
		Layer:    LayerPreview,
		Category: CategoryFrame,
		Frame:    &FrameEvent{Index: 3, Size: 1024},
	})

	if record["frame_index"] != float64(3) || record["frame_size"] != float64(1024) {
		t.Errorf("record = %v", record)
	}
}
