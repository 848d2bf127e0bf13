package osc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/theta-osc/osc-go/pkg/log"
)

// Protocol paths, relative to the camera endpoint.
const (
	PathInfo            = "/osc/info"
	PathState           = "/osc/state"
	PathCheckForUpdates = "/osc/checkForUpdates"
	PathExecute         = "/osc/commands/execute"
	PathStatus          = "/osc/commands/status"
)

// Client defaults.
const (
	// DefaultPollInterval separates status polls while awaiting a command.
	DefaultPollInterval = 100 * time.Millisecond

	// DefaultRequestTimeout bounds a single non-streaming request.
	DefaultRequestTimeout = 30 * time.Second

	// MaxResponseSize bounds a JSON response body (4 MiB).
	MaxResponseSize = 4 << 20

	contentTypeJSON = "application/json; charset=UTF-8"
)

var errResponseTooLarge = errors.New("response body too large")

// Doer sends HTTP requests. *http.Client implements it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures a Client.
type Config struct {
	// Endpoint is the camera base URL, e.g. "http://192.168.1.1".
	Endpoint string

	// HTTPClient sends JSON requests. Default: http.Client with
	// DefaultRequestTimeout.
	HTTPClient Doer

	// StreamHTTPClient opens the live preview. It must not impose a total
	// request timeout. Default: http.Client without timeout.
	StreamHTTPClient Doer

	// PollInterval separates status polls. Default: DefaultPollInterval.
	PollInterval time.Duration

	// Logger receives operational logs. Nil discards them.
	Logger *slog.Logger

	// ProtocolLogger receives capture events. Nil disables capture.
	ProtocolLogger log.Logger

	// Metrics collects request metrics. Nil disables collection.
	Metrics *Metrics
}

// DefaultConfig returns a Config with default transports and interval.
func DefaultConfig(endpoint string) Config {
	return Config{
		Endpoint:         endpoint,
		HTTPClient:       &http.Client{Timeout: DefaultRequestTimeout},
		StreamHTTPClient: &http.Client{},
		PollInterval:     DefaultPollInterval,
	}
}

// Client speaks the OSC HTTP/JSON protocol to one camera.
// A Client is safe for concurrent use once configured; the setters must
// not be called while requests are in flight.
type Client struct {
	endpoint     *url.URL
	httpClient   Doer
	streamClient Doer
	pollInterval time.Duration
	logger       *slog.Logger
	protoLogger  log.Logger
	metrics      *Metrics
	sessionID    string
}

// NewClient validates cfg and creates a client.
func NewClient(cfg Config) (*Client, error) {
	u, err := parseEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	defaults := DefaultConfig(cfg.Endpoint)
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaults.HTTPClient
	}
	if cfg.StreamHTTPClient == nil {
		cfg.StreamHTTPClient = defaults.StreamHTTPClient
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaults.PollInterval
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	sessionID := uuid.New().String()
	return &Client{
		endpoint:     u,
		httpClient:   cfg.HTTPClient,
		streamClient: cfg.StreamHTTPClient,
		pollInterval: cfg.PollInterval,
		logger:       logger.With("session_id", sessionID),
		protoLogger:  cfg.ProtocolLogger,
		metrics:      cfg.Metrics,
		sessionID:    sessionID,
	}, nil
}

func parseEndpoint(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidEndpoint)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme %q", ErrInvalidEndpoint, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidEndpoint)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// Endpoint returns the camera base URL.
func (c *Client) Endpoint() string { return c.endpoint.String() }

// SessionID returns the ID stamped on every capture event of this client.
func (c *Client) SessionID() string { return c.sessionID }

// PollInterval returns the interval used by Await.
func (c *Client) PollInterval() time.Duration { return c.pollInterval }

// SetPollInterval changes the interval used by Await. Non-positive values
// restore DefaultPollInterval.
func (c *Client) SetPollInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultPollInterval
	}
	c.pollInterval = d
}

// SetLogger sets the operational logger. Nil discards logs.
func (c *Client) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c.logger = logger.With("session_id", c.sessionID)
}

// SetProtocolLogger sets the capture logger. Nil disables capture.
func (c *Client) SetProtocolLogger(logger log.Logger) {
	c.protoLogger = logger
}

func (c *Client) url(path string) string {
	u := *c.endpoint
	u.Path += path
	return u.String()
}

func (c *Client) newRequest(ctx context.Context, method, path string, body []byte) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), r)
	if err != nil {
		return nil, fmt.Errorf("osc: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-XSRF-Protected", "1")
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	return req, nil
}

// send issues one request and returns the open response. The caller owns
// the body. A 401 is turned into *AuthenticationError and closed here.
func (c *Client) send(ctx context.Context, doer Doer, method, path, command string, body []byte) (*http.Response, time.Duration, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, 0, err
	}

	c.logExchange(log.DirectionOut, log.NewExchangeEvent(method, path, command, body))
	start := time.Now()
	resp, err := doer.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.recordRequest(path, OutcomeTransport, elapsed)
		c.logError(log.LayerHTTP, err.Error(), "", method+" "+path)
		c.logger.Debug("request failed", "method", method, "path", path, "error", err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, elapsed, ctxErr
		}
		return nil, elapsed, fmt.Errorf("osc: %s %s: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, io.LimitReader(resp.Body, MaxResponseSize))
		resp.Body.Close()
		c.metrics.recordRequest(path, OutcomeUnauthorized, elapsed)
		ev := log.NewExchangeEvent(method, path, command, nil)
		ev.StatusCode = resp.StatusCode
		ev.Duration = elapsed
		c.logExchange(log.DirectionIn, ev)
		return nil, elapsed, authError(resp)
	}
	return resp, elapsed, nil
}

// do performs a JSON exchange and returns the status code and full body.
func (c *Client) do(ctx context.Context, method, path, command string, body []byte) (int, []byte, error) {
	resp, elapsed, err := c.send(ctx, c.httpClient, method, path, command, body)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := readBody(resp.Body)
	if err != nil {
		c.metrics.recordRequest(path, OutcomeTransport, elapsed)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, nil, ctxErr
		}
		return 0, nil, fmt.Errorf("osc: read %s response: %w", path, err)
	}

	outcome := OutcomeOK
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = OutcomeHTTPError
	}
	c.metrics.recordRequest(path, outcome, elapsed)

	ev := log.NewExchangeEvent(method, path, command, data)
	ev.StatusCode = resp.StatusCode
	ev.Duration = elapsed
	c.logExchange(log.DirectionIn, ev)
	c.logger.Debug("exchange",
		"method", method,
		"path", path,
		"command", command,
		"status", resp.StatusCode,
		"duration", elapsed,
	)
	return resp.StatusCode, data, nil
}

func readBody(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxResponseSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxResponseSize {
		return nil, errResponseTooLarge
	}
	return data, nil
}

func (c *Client) newEvent(direction log.Direction, layer log.Layer, category log.Category) log.Event {
	return log.Event{
		Timestamp: time.Now(),
		SessionID: c.sessionID,
		Direction: direction,
		Layer:     layer,
		Category:  category,
		Endpoint:  c.endpoint.String(),
	}
}

func (c *Client) logExchange(direction log.Direction, ex *log.ExchangeEvent) {
	if c.protoLogger == nil {
		return
	}
	ev := c.newEvent(direction, log.LayerHTTP, log.CategoryExchange)
	ev.Exchange = ex
	c.protoLogger.Log(ev)
}

func (c *Client) logState(layer log.Layer, sc *log.StateChangeEvent) {
	if c.protoLogger == nil {
		return
	}
	ev := c.newEvent(log.DirectionIn, layer, log.CategoryState)
	ev.StateChange = sc
	c.protoLogger.Log(ev)
}

func (c *Client) logError(layer log.Layer, message, code, where string) {
	if c.protoLogger == nil {
		return
	}
	ev := c.newEvent(log.DirectionIn, layer, log.CategoryError)
	ev.Error = &log.ErrorEventData{Layer: layer, Message: message, Code: code, Context: where}
	c.protoLogger.Log(ev)
}

// errorBody is the shape of a bare error answer.
type errorBody struct {
	Error *ProtocolError `json:"error"`
}

// protocolErrorIn returns the structured error carried by data, if any.
func protocolErrorIn(data []byte, status int) *ProtocolError {
	if firstByte(data) != '{' {
		return nil
	}
	var eb errorBody
	if json.Unmarshal(data, &eb) != nil || eb.Error == nil {
		return nil
	}
	eb.Error.HTTPStatus = status
	return eb.Error
}

// decodeResponse decodes a non-command answer. A structured error wins
// over the expected shape; a non-2xx status without one is a decode error
// naming the status.
func decodeResponse[T any](what string, status int, data []byte, codec Codec[T]) (T, error) {
	var zero T
	if pe := protocolErrorIn(data, status); pe != nil {
		return zero, pe
	}
	if status < 200 || status > 299 {
		return zero, &DecodeError{What: fmt.Sprintf("%s (HTTP %d)", what, status), Err: errors.New("unexpected status")}
	}
	v, err := codec.Decode(data)
	if err != nil {
		return zero, decodeErr(what, err)
	}
	return v, nil
}

// Info fetches GET /osc/info decoded as T.
func Info[T any](ctx context.Context, c *Client) (T, error) {
	status, data, err := c.do(ctx, http.MethodGet, PathInfo, "", nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeResponse("info", status, data, JSON[T]())
}

// State is the answer of POST /osc/state.
type State[T any] struct {
	// Fingerprint changes whenever the camera state changes.
	Fingerprint string

	State T
}

type stateCodec[T any] struct {
	state Codec[T]
}

func (sc stateCodec[T]) Encode(s State[T]) (json.RawMessage, error) {
	raw, err := sc.state.Encode(s.State)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Fingerprint string          `json:"fingerprint"`
		State       json.RawMessage `json:"state"`
	}{s.Fingerprint, raw})
}

func (sc stateCodec[T]) Decode(data json.RawMessage) (State[T], error) {
	if firstByte(data) != '{' {
		return State[T]{}, errors.New("expected JSON object")
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return State[T]{}, err
	}
	rawFP, ok := doc["fingerprint"]
	if !ok {
		return State[T]{}, errors.New(`missing "fingerprint"`)
	}
	var fp string
	if err := json.Unmarshal(rawFP, &fp); err != nil {
		return State[T]{}, fmt.Errorf("fingerprint: %w", err)
	}
	rawState, ok := doc["state"]
	if !ok {
		return State[T]{}, errors.New(`missing "state"`)
	}
	v, err := sc.state.Decode(rawState)
	if err != nil {
		return State[T]{}, fmt.Errorf("state: %w", err)
	}
	return State[T]{Fingerprint: fp, State: v}, nil
}

// StateCodec returns the codec for {"fingerprint": ..., "state": ...}.
func StateCodec[T any](state Codec[T]) Codec[State[T]] { return stateCodec[T]{state: state} }

// FetchState fetches POST /osc/state with the state decoded as T.
func FetchState[T any](ctx context.Context, c *Client) (State[T], error) {
	status, data, err := c.do(ctx, http.MethodPost, PathState, "", nil)
	if err != nil {
		return State[T]{}, err
	}
	return decodeResponse("state", status, data, StateCodec(JSON[T]()))
}

// Updates is the answer of POST /osc/checkForUpdates.
type Updates struct {
	StateFingerprint string `json:"stateFingerprint"`

	// ThrottleTimeout is the number of seconds the camera asks clients to
	// wait before checking again; zero when not sent.
	ThrottleTimeout int `json:"throttleTimeout,omitempty"`
}

// Validate requires the fingerprint.
func (u Updates) Validate() error {
	if u.StateFingerprint == "" {
		return errors.New(`missing "stateFingerprint"`)
	}
	return nil
}

// Changed reports whether the fingerprint differs from previous.
func (u Updates) Changed(previous string) bool { return u.StateFingerprint != previous }

type checkForUpdatesRequest struct {
	StateFingerprint string `json:"stateFingerprint"`
}

// CheckForUpdates posts the last known fingerprint and returns the current
// one. A structured error in the answer is returned as *ProtocolError.
func (c *Client) CheckForUpdates(ctx context.Context, fingerprint string) (Updates, error) {
	body, err := json.Marshal(checkForUpdatesRequest{StateFingerprint: fingerprint})
	if err != nil {
		return Updates{}, err
	}
	status, data, err := c.do(ctx, http.MethodPost, PathCheckForUpdates, "", body)
	if err != nil {
		return Updates{}, err
	}
	up, err := decodeResponse("checkForUpdates", status, data, JSON[Updates]())
	if err != nil {
		return Updates{}, err
	}
	if up.Changed(fingerprint) {
		c.logState(log.LayerHTTP, &log.StateChangeEvent{
			Entity:   log.StateEntityDevice,
			OldState: fingerprint,
			NewState: up.StateFingerprint,
		})
	}
	return up, nil
}
