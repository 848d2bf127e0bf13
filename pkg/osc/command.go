package osc

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Command is a named protocol operation with parameter type P and result
// type R. Commands are created once and referenced directly.
type Command[P, R any] struct {
	name    string
	params  Codec[P]
	results Codec[R]
}

// NewCommand creates a command descriptor.
func NewCommand[P, R any](name string, params Codec[P], results Codec[R]) Command[P, R] {
	return Command[P, R]{name: name, params: params, results: results}
}

// Name returns the wire name, e.g. "camera.takePicture".
func (c Command[P, R]) Name() string { return c.name }

// String returns the wire name.
func (c Command[P, R]) String() string { return c.name }

// ResultCodec returns the codec used for results.
func (c Command[P, R]) ResultCodec() Codec[R] { return c.results }

// encodeParams returns nil when the command carries no parameters.
func (c Command[P, R]) encodeParams(p P) (json.RawMessage, error) {
	raw, err := c.params.Encode(p)
	if err != nil {
		return nil, fmt.Errorf("encode %s parameters: %w", c.name, err)
	}
	if isNull(raw) {
		return nil, nil
	}
	return raw, nil
}

// CommandState is the lifecycle state reported for a command.
type CommandState string

const (
	// StateInProgress means the command has not finished; poll its ID.
	StateInProgress CommandState = "inProgress"
	// StateDone means the command finished with results.
	StateDone CommandState = "done"
	// StateError means the command failed.
	StateError CommandState = "error"
)

// IsValid reports whether s is a known state.
func (s CommandState) IsValid() bool {
	switch s {
	case StateInProgress, StateDone, StateError:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions can leave s.
func (s CommandState) IsTerminal() bool {
	return s == StateDone || s == StateError
}

// String returns the wire value.
func (s CommandState) String() string { return string(s) }

// Progress reports how far an in-progress command has advanced.
type Progress struct {
	// Completion is in [0,1]; nil when the camera did not say.
	Completion *float64 `json:"completion,omitempty"`
}

// CommandResponse is the decoded answer of execute or status.
type CommandResponse[R any] struct {
	Name  string
	State CommandState

	// ID is present while State is StateInProgress.
	ID string

	// Result is set when State is StateDone and the answer carried
	// "results". Commands such as startCapture in video mode finish
	// without any.
	Result *R

	// Error is set when State is StateError.
	Error *ProtocolError

	Progress *Progress

	results Codec[R]
}

// Done reports whether the command finished successfully.
func (r *CommandResponse[R]) Done() bool { return r.State == StateDone }

// InProgress reports whether the command can still be polled.
func (r *CommandResponse[R]) InProgress() bool { return r.State == StateInProgress }

// Value returns the result, or the zero value when absent.
func (r *CommandResponse[R]) Value() R {
	if r.Result == nil {
		var zero R
		return zero
	}
	return *r.Result
}

// Completion returns the progress fraction and whether it was reported.
func (r *CommandResponse[R]) Completion() (float64, bool) {
	if r.Progress == nil || r.Progress.Completion == nil {
		return 0, false
	}
	return *r.Progress.Completion, true
}

// rawResponse is the wire shape of execute and status answers.
type rawResponse struct {
	Name     *string         `json:"name"`
	State    *CommandState   `json:"state"`
	ID       *string         `json:"id"`
	Results  json.RawMessage `json:"results"`
	Error    *ProtocolError  `json:"error"`
	Progress *Progress       `json:"progress"`
}

// DecodeCommandResponse decodes an execute or status body using results
// for the "results" member.
//
// The decoded response satisfies the lifecycle invariants: an inProgress
// response has an ID and an error response has an error. A done response
// never has an error; its result is decoded when "results" is present and
// not null. Anything else is a *DecodeError.
func DecodeCommandResponse[R any](data []byte, results Codec[R]) (*CommandResponse[R], error) {
	var raw rawResponse
	if firstByte(data) != '{' {
		return nil, &DecodeError{What: "command response", Err: errors.New("expected JSON object")}
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{What: "command response", Err: err}
	}
	// Some firmware answers failures with a bare {"error": {...}}.
	if raw.Error != nil && raw.State == nil {
		state, name := StateError, ""
		raw.State = &state
		if raw.Name == nil {
			raw.Name = &name
		}
	}
	if raw.Name == nil {
		return nil, &DecodeError{What: "command response", Err: errors.New(`missing "name"`)}
	}
	if raw.State == nil || !raw.State.IsValid() {
		return nil, &DecodeError{What: "command response " + *raw.Name, Err: errors.New(`missing or unknown "state"`)}
	}

	resp := &CommandResponse[R]{
		Name:     *raw.Name,
		State:    *raw.State,
		Progress: raw.Progress,
		results:  results,
	}
	if raw.ID != nil {
		resp.ID = *raw.ID
	}

	switch resp.State {
	case StateInProgress:
		if resp.ID == "" {
			return nil, &DecodeError{What: "command response " + resp.Name, Err: errors.New(`inProgress without "id"`)}
		}
	case StateDone:
		if isAbsent(raw.Results) {
			break
		}
		v, err := results.Decode(raw.Results)
		if err != nil {
			return nil, decodeErr("results of "+resp.Name, err)
		}
		resp.Result = &v
	case StateError:
		if raw.Error == nil {
			return nil, &DecodeError{What: "command response " + resp.Name, Err: errors.New(`error state without "error"`)}
		}
	}
	if raw.Error != nil {
		resp.Error = raw.Error
	}
	return resp, nil
}

// isAbsent reports whether a member was missing or null.
func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// commandEnvelope is the body of /osc/commands/execute.
type commandEnvelope struct {
	Name       string          `json:"name"`
	Parameters json.RawMessage `json:"parameters,omitempty"`
}

// statusRequest is the body of /osc/commands/status.
type statusRequest struct {
	ID string `json:"id"`
}
