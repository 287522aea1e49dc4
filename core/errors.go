package core

import (
	"errors"
	"fmt"
)

// APIError represents an error returned by the dispatch provider with full context.
type APIError struct {
	Op      string // operation identifier, e.g. "messages.sendMany"
	Status  int    // HTTP status, 0 for failures before a response arrived
	Code    string // provider errorCode, verbatim
	Message string // provider errorMessage, verbatim
	Err     error  // sentinel for classification
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (status=%d, code=%s)", e.Op, e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("%s: %s (status=%d)", e.Op, e.Message, e.Status)
}

// Unwrap returns the underlying sentinel for error chaining.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Sentinel errors for classification.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidAPIKey      = errors.New("invalid api key")
	ErrBadRequest         = errors.New("bad request")
	ErrFileUpload         = errors.New("file upload failed")
	ErrEmptyResponse      = errors.New("empty response")
	ErrMessageNotReceived = errors.New("message not received")
	ErrUnknownProvider    = errors.New("unknown provider error")
	ErrNetwork            = errors.New("network error")
	ErrDecode             = errors.New("decode error")
)

// Validation errors with actionable guidance.
var (
	ErrNoMessages = errors.New("no messages: add at least one message before calling Execute")
)

// MessageNotReceivedError reports that the provider rejected every message
// in a batch. It is constructed fully populated at the point of raise and
// never mutated afterwards.
type MessageNotReceivedError struct {
	Failed []FailedMessage
}

// Error implements the error interface.
func (e *MessageNotReceivedError) Error() string {
	if len(e.Failed) == 1 {
		f := e.Failed[0]
		return fmt.Sprintf("message not received: %s (code=%s)", f.ErrorMessage, f.ErrorCode)
	}
	return fmt.Sprintf("message not received: all %d messages rejected", len(e.Failed))
}

// Unwrap returns ErrMessageNotReceived so callers can classify with errors.Is.
func (e *MessageNotReceivedError) Unwrap() error {
	return ErrMessageNotReceived
}
