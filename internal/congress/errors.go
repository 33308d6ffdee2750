// Package congress provides a rate-limited HTTP client and typed services
// for the Congress.gov v3 API.
package congress

import (
	"errors"
	"fmt"
)

// Error codes carried across the tool boundary. The router flattens every
// failure into an {error, message, status_code} payload using these names.
const (
	CodeRateLimitExceeded = "RateLimitExceeded"
	CodeRequestFailed     = "RequestFailed"
	CodeValidationError   = "ValidationError"
	CodeUnknownTool       = "UnknownTool"
	CodeUnsupportedAction = "UnsupportedAction"
	CodeParseError        = "ParseError"
	CodeInternalError     = "InternalError"
)

// Error is the failure type returned by every operation in this package.
// Message carries the full human-readable context (the payload does not
// include Cause), while Cause is preserved for errors.Is/As chains.
type Error struct {
	Code       string
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Payload renders the error in the wire shape MCP clients receive.
func (e *Error) Payload() map[string]interface{} {
	return map[string]interface{}{
		"error":       e.Code,
		"message":     e.Message,
		"status_code": e.StatusCode,
	}
}

// NewRateLimitError reports a request rejected by the local quota check or
// by a server-signalled 429.
func NewRateLimitError(format string, args ...interface{}) *Error {
	return &Error{
		Code:       CodeRateLimitExceeded,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: 429,
	}
}

// NewRequestError reports a transport, HTTP status, or body decoding
// failure. statusCode is the upstream HTTP status; zero means the request
// never produced a response and is reported as 500.
func NewRequestError(message string, statusCode int, cause error) *Error {
	if statusCode == 0 {
		statusCode = 500
	}
	return &Error{
		Code:       CodeRequestFailed,
		Message:    message,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

// NewValidationError reports malformed caller input, detected before any
// network call is made.
func NewValidationError(format string, args ...interface{}) *Error {
	return &Error{
		Code:       CodeValidationError,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: 400,
	}
}

// NewUnknownToolError reports a tool name with no registration.
func NewUnknownToolError(toolName string) *Error {
	return &Error{
		Code:       CodeUnknownTool,
		Message:    fmt.Sprintf("unknown tool: %s", toolName),
		StatusCode: 400,
	}
}

// NewUnsupportedActionError reports a registration pointing at an action
// the dispatcher does not implement.
func NewUnsupportedActionError(action string) *Error {
	return &Error{
		Code:       CodeUnsupportedAction,
		Message:    fmt.Sprintf("unsupported action: %s", action),
		StatusCode: 400,
	}
}

// NewParseError reports an upstream payload that does not match the
// expected response shape.
func NewParseError(message string, cause error) *Error {
	return &Error{
		Code:       CodeParseError,
		Message:    message,
		StatusCode: 500,
		Cause:      cause,
	}
}

// NewInternalError reports an unexpected failure.
func NewInternalError(message string, cause error) *Error {
	return &Error{
		Code:       CodeInternalError,
		Message:    message,
		StatusCode: 500,
		Cause:      cause,
	}
}

// AsError coerces err into *Error, wrapping foreign errors as internal
// failures so callers always receive the uniform payload shape.
func AsError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return NewInternalError(fmt.Sprintf("an unexpected error occurred: %v", err), err)
}
