package osc

import (
	"errors"
	"fmt"
	"net/http"
)

// Client errors.
var (
	// ErrDecode is matched by every *DecodeError.
	ErrDecode = errors.New("osc: decode failed")

	// ErrUnauthorized is matched by every *AuthenticationError.
	ErrUnauthorized = errors.New("osc: authentication required")

	// ErrUsage indicates a caller-side contract violation detected before
	// any request was sent.
	ErrUsage = errors.New("osc: invalid usage")

	// ErrInvalidEndpoint indicates the configured base URL cannot be used.
	ErrInvalidEndpoint = errors.New("osc: invalid endpoint")
)

// Well-known error codes reported by cameras in the "error" object.
const (
	CodeUnknownCommand          = "unknownCommand"
	CodeDisabledCommand         = "disabledCommand"
	CodeMissingParameter        = "missingParameter"
	CodeInvalidParameterName    = "invalidParameterName"
	CodeInvalidParameterValue   = "invalidParameterValue"
	CodeTooManyParameters       = "tooManyParameters"
	CodeCorruptedFile           = "corruptedFile"
	CodeCameraInExclusiveUse    = "cameraInExclusiveUse"
	CodePowerOffSequenceRunning = "powerOffSequenceRunning"
	CodeInvalidFileFormat       = "invalidFileFormat"
	CodeServiceUnavailable      = "serviceUnavailable"
	CodeServerError             = "serverError"
	CodeUnexpected              = "unexpected"
)

// DecodeError reports JSON that did not match the expected shape.
type DecodeError struct {
	// What names the value being decoded, e.g. "option iso".
	What string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("osc: decode %s", e.What)
	}
	return fmt.Sprintf("osc: decode %s: %v", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports ErrDecode as a match.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// decodeErr wraps err unless it already is a *DecodeError.
func decodeErr(what string, err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return &DecodeError{What: what, Err: de}
	}
	return &DecodeError{What: what, Err: err}
}

// ProtocolError is a structured error reported by the camera.
type ProtocolError struct {
	Code    string `json:"code"`
	Message string `json:"message"`

	// HTTPStatus is the status code of the response carrying the error,
	// zero when unknown.
	HTTPStatus int `json:"-"`
}

func (e *ProtocolError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("osc: %s: %s", e.Code, e.Message)
	}
	return "osc: " + e.Code
}

// IsErrorCode reports whether err is a *ProtocolError with the given code.
func IsErrorCode(err error, code string) bool {
	var pe *ProtocolError
	return errors.As(err, &pe) && pe.Code == code
}

// AuthenticationError reports an HTTP 401 from the camera.
type AuthenticationError struct {
	// Status is the HTTP status line, e.g. "401 Unauthorized".
	Status string
}

func (e *AuthenticationError) Error() string {
	if e.Status == "" {
		return ErrUnauthorized.Error()
	}
	return fmt.Sprintf("%v: %s", ErrUnauthorized, e.Status)
}

// Is reports ErrUnauthorized as a match.
func (e *AuthenticationError) Is(target error) bool { return target == ErrUnauthorized }

func authError(resp *http.Response) error {
	return &AuthenticationError{Status: resp.Status}
}

// usageErr reports a contract violation detected before any network call.
func usageErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}
