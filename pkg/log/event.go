package log

import "time"

// MaxLogBodySize caps the body bytes stored per exchange event.
const MaxLogBodySize = 4096

// Event represents a protocol capture event at any layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the client that produced the event (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction indicates whether the event left or reached the client.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// Endpoint is the camera base URL.
	Endpoint string `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Exchange    *ExchangeEvent    `cbor:"10,keyasint,omitempty"`
	Frame       *FrameEvent       `cbor:"11,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"12,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"13,keyasint,omitempty"`
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates data received from the camera.
	DirectionIn Direction = 0
	// DirectionOut indicates data sent to the camera.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which part of the client captured the event.
type Layer uint8

const (
	// LayerHTTP is the request/response layer.
	LayerHTTP Layer = 0
	// LayerCommand is the command lifecycle layer (execute, status, await).
	LayerCommand Layer = 1
	// LayerPreview is the live preview stream.
	LayerPreview Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerHTTP:
		return "HTTP"
	case LayerCommand:
		return "COMMAND"
	case LayerPreview:
		return "PREVIEW"
	default:
		return "UNKNOWN"
	}
}

// ParseLayer is the inverse of Layer.String.
func ParseLayer(s string) (Layer, bool) {
	for _, l := range []Layer{LayerHTTP, LayerCommand, LayerPreview} {
		if l.String() == s {
			return l, true
		}
	}
	return 0, false
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryExchange indicates an HTTP request or response.
	CategoryExchange Category = 0
	// CategoryFrame indicates a preview frame.
	CategoryFrame Category = 1
	// CategoryState indicates a state change.
	CategoryState Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryExchange:
		return "EXCHANGE"
	case CategoryFrame:
		return "FRAME"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory is the inverse of Category.String.
func ParseCategory(s string) (Category, bool) {
	for _, c := range []Category{CategoryExchange, CategoryFrame, CategoryState, CategoryError} {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// ExchangeEvent captures one HTTP request or response.
type ExchangeEvent struct {
	// Method is the HTTP method, e.g. "POST".
	Method string `cbor:"1,keyasint"`

	// Path is the request path, e.g. "/osc/commands/execute".
	Path string `cbor:"2,keyasint"`

	// Command is the command name for execute and status exchanges.
	Command string `cbor:"3,keyasint,omitempty"`

	// StatusCode is the HTTP status (responses only).
	StatusCode int `cbor:"4,keyasint,omitempty"`

	// Body holds up to MaxLogBodySize bytes of the body.
	Body []byte `cbor:"5,keyasint,omitempty"`

	// BodySize is the full body length in bytes.
	BodySize int `cbor:"6,keyasint"`

	// Truncated indicates if Body was cut at MaxLogBodySize.
	Truncated bool `cbor:"7,keyasint,omitempty"`

	// Duration is the round trip time (responses only).
	Duration time.Duration `cbor:"8,keyasint,omitempty"`
}

// NewExchangeEvent builds an exchange payload, truncating body.
func NewExchangeEvent(method, path, command string, body []byte) *ExchangeEvent {
	ev := &ExchangeEvent{
		Method:   method,
		Path:     path,
		Command:  command,
		BodySize: len(body),
	}
	if len(body) > MaxLogBodySize {
		ev.Body = append([]byte(nil), body[:MaxLogBodySize]...)
		ev.Truncated = true
	} else if len(body) > 0 {
		ev.Body = append([]byte(nil), body...)
	}
	return ev
}

// FrameEvent captures a demultiplexed preview frame. Frame bytes are not
// stored.
type FrameEvent struct {
	// Index counts frames from zero within one stream.
	Index uint64 `cbor:"1,keyasint"`

	// Size is the declared Content-Length.
	Size int `cbor:"2,keyasint"`
}

// StateChangeEvent captures command and preview lifecycle events.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// ID identifies the entity, e.g. the command name or ID.
	ID string `cbor:"2,keyasint,omitempty"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"3,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"4,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"5,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	// StateEntityCommand indicates a command lifecycle transition.
	StateEntityCommand StateEntity = 0
	// StateEntityPreview indicates a preview stream opening or closing.
	StateEntityPreview StateEntity = 1
	// StateEntityDevice indicates a change of the camera state fingerprint.
	StateEntityDevice StateEntity = 2
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityCommand:
		return "COMMAND"
	case StateEntityPreview:
		return "PREVIEW"
	case StateEntityDevice:
		return "DEVICE"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Code is the camera error code, if the camera reported one.
	Code string `cbor:"3,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"4,keyasint,omitempty"`
}
