package osc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/theta-osc/osc-go/pkg/log"
	"github.com/theta-osc/osc-go/pkg/mjpeg"
)

// LivePreviewCommand starts the motion-JPEG preview stream.
var LivePreviewCommand = NewCommand("camera.getLivePreview", Void(), Void())

// LivePreview opens the live preview and returns a demuxer over it. The
// stream stays open until the demuxer is closed or ctx is cancelled.
//
// A 401 is returned as *AuthenticationError. Any other non-200 answer is
// decoded as a command response and its structured error returned.
func (c *Client) LivePreview(ctx context.Context) (*mjpeg.Demuxer, error) {
	name := LivePreviewCommand.Name()
	body, err := json.Marshal(commandEnvelope{Name: name})
	if err != nil {
		return nil, err
	}

	resp, elapsed, err := c.send(ctx, c.streamClient, http.MethodPost, PathExecute, name, body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		c.metrics.recordRequest(PathExecute, OutcomeHTTPError, elapsed)
		data, err := readBody(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("osc: read %s response: %w", name, err)
		}
		ev := log.NewExchangeEvent(http.MethodPost, PathExecute, name, data)
		ev.StatusCode = resp.StatusCode
		ev.Duration = elapsed
		c.logExchange(log.DirectionIn, ev)

		if _, err := decodeCommand(c, name, resp.StatusCode, data, Void()); err != nil {
			return nil, err
		}
		return nil, &DecodeError{
			What: fmt.Sprintf("%s response (HTTP %d)", name, resp.StatusCode),
			Err:  errors.New("no error object in answer"),
		}
	}

	c.metrics.recordRequest(PathExecute, OutcomeOK, elapsed)
	ev := log.NewExchangeEvent(http.MethodPost, PathExecute, name, nil)
	ev.StatusCode = resp.StatusCode
	ev.Duration = elapsed
	c.logExchange(log.DirectionIn, ev)
	c.logState(log.LayerPreview, &log.StateChangeEvent{
		Entity:   log.StateEntityPreview,
		ID:       name,
		NewState: "OPEN",
		Reason:   resp.Header.Get("Content-Type"),
	})
	c.logger.Info("live preview opened", "content_type", resp.Header.Get("Content-Type"))

	d := mjpeg.NewDemuxer(resp.Body, mjpeg.OSCBoundary)
	if c.protoLogger != nil {
		d.SetLogger(c.protoLogger, c.sessionID, c.endpoint.String())
	}
	d.SetFrameHook(func(uint64, int) { c.metrics.recordPreviewFrame() })
	return d, nil
}
