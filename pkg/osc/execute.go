package osc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/theta-osc/osc-go/pkg/log"
)

// Execute runs cmd with params. The response is either done with a result
// or in progress with an ID to poll. A structured error in the answer is
// returned as *ProtocolError, never inside a response.
func Execute[P, R any](ctx context.Context, c *Client, cmd Command[P, R], params P) (*CommandResponse[R], error) {
	raw, err := cmd.encodeParams(params)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(commandEnvelope{Name: cmd.Name(), Parameters: raw})
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", cmd.Name(), err)
	}

	status, data, err := c.do(ctx, http.MethodPost, PathExecute, cmd.Name(), body)
	if err != nil {
		return nil, err
	}
	return decodeCommand(c, cmd.Name(), status, data, cmd.ResultCodec())
}

// Resume returns an inProgress response for a command ID obtained
// earlier, bound to the result codec of cmd so it can be polled.
func Resume[P, R any](cmd Command[P, R], id string) *CommandResponse[R] {
	return &CommandResponse[R]{
		Name:    cmd.Name(),
		State:   StateInProgress,
		ID:      id,
		results: cmd.ResultCodec(),
	}
}

// PollStatus fetches the current state of an in-progress command. The
// result is decoded with the codec of the command that produced resp;
// responses built by hand must come from Resume.
func PollStatus[R any](ctx context.Context, c *Client, resp *CommandResponse[R]) (*CommandResponse[R], error) {
	if resp == nil || !resp.InProgress() {
		return nil, usageErr("status poll requires an inProgress response")
	}
	if resp.ID == "" {
		return nil, usageErr("status poll requires a command id")
	}
	if resp.results == nil {
		return nil, usageErr("status poll requires a response from Execute or Resume")
	}
	body, err := json.Marshal(statusRequest{ID: resp.ID})
	if err != nil {
		return nil, err
	}

	c.metrics.recordStatusPoll(resp.Name)
	status, data, err := c.do(ctx, http.MethodPost, PathStatus, resp.Name, body)
	if err != nil {
		return nil, err
	}
	next, err := decodeCommand(c, resp.Name, status, data, resp.results)
	if err != nil {
		return nil, err
	}
	if next.Name == "" {
		next.Name = resp.Name
	}
	return next, nil
}

// Await polls resp until it leaves the inProgress state, using the
// client's poll interval. A response that is already terminal is returned
// as is.
func Await[R any](ctx context.Context, c *Client, resp *CommandResponse[R]) (*CommandResponse[R], error) {
	return AwaitWithInterval(ctx, c, resp, c.pollInterval)
}

// AwaitWithInterval is Await with an explicit interval. The first poll is
// sent immediately; successive polls are at least interval apart.
// Cancelling ctx stops polling and returns ctx.Err().
func AwaitWithInterval[R any](ctx context.Context, c *Client, resp *CommandResponse[R], interval time.Duration) (*CommandResponse[R], error) {
	if resp == nil {
		return nil, usageErr("await requires a response")
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	current := resp
	for polls := 0; current.InProgress(); polls++ {
		if polls > 0 {
			timer := time.NewTimer(interval)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next, err := PollStatus(ctx, c, current)
		if err != nil {
			var pe *ProtocolError
			if errors.As(err, &pe) {
				logCommandState(c, current, StateError.String(), pe.Code)
			}
			return nil, err
		}
		if next.State != current.State {
			logCommandState(c, current, next.State.String(), "")
		}
		current = next
	}
	return current, nil
}

// Run executes cmd and awaits completion, returning the result.
func Run[P, R any](ctx context.Context, c *Client, cmd Command[P, R], params P) (R, error) {
	var zero R
	resp, err := Execute(ctx, c, cmd, params)
	if err != nil {
		return zero, err
	}
	done, err := Await(ctx, c, resp)
	if err != nil {
		return zero, err
	}
	return done.Value(), nil
}

// decodeCommand decodes an execute or status answer and raises any
// structured error.
func decodeCommand[R any](c *Client, name string, status int, data []byte, results Codec[R]) (*CommandResponse[R], error) {
	resp, err := DecodeCommandResponse(data, results)
	if err != nil {
		if pe := protocolErrorIn(data, status); pe != nil {
			c.logError(log.LayerCommand, pe.Error(), pe.Code, name)
			return nil, pe
		}
		if status < 200 || status > 299 {
			return nil, &DecodeError{What: fmt.Sprintf("%s response (HTTP %d)", name, status), Err: err}
		}
		return nil, err
	}
	if resp.Error != nil {
		resp.Error.HTTPStatus = status
		c.logError(log.LayerCommand, resp.Error.Error(), resp.Error.Code, name)
		return nil, resp.Error
	}
	return resp, nil
}

func logCommandState[R any](c *Client, resp *CommandResponse[R], newState, reason string) {
	if reason == "" {
		reason = "id=" + resp.ID
	}
	c.logState(log.LayerCommand, &log.StateChangeEvent{
		Entity:   log.StateEntityCommand,
		ID:       resp.Name,
		OldState: resp.State.String(),
		NewState: newState,
		Reason:   reason,
	})
	c.logger.Debug("command state", "command", resp.Name, "id", resp.ID, "state", newState)
}
