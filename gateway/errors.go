package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/petal-labs/herald/core"
)

// errorEnvelope is the provider's error body for any non-2xx response.
type errorEnvelope struct {
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// defaultErrorCodes returns the provider error codes with a specific
// classification. The list is known to be incomplete on the provider side;
// anything unmapped surfaces as core.ErrUnknownProvider.
func defaultErrorCodes() map[string]error {
	return map[string]error{
		"ValidationError":       core.ErrBadRequest,
		"FailedToAddMessage":    core.ErrBadRequest,
		"InvalidApiKey":         core.ErrInvalidAPIKey,
		"SignatureDoesNotMatch": core.ErrInvalidAPIKey,
	}
}

// normalizeError converts a non-2xx response into a typed *core.APIError.
// When the body cannot be parsed as an error envelope, the raw response
// text becomes the message. Code and message are always carried verbatim.
func (g *Gateway) normalizeError(op string, status int, body []byte) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || (envelope.ErrorCode == "" && envelope.ErrorMessage == "") {
		message := strings.TrimSpace(string(body))
		if message == "" {
			message = http.StatusText(status)
		}
		return &core.APIError{
			Op:      op,
			Status:  status,
			Message: message,
			Err:     core.ErrUnknownProvider,
		}
	}

	sentinel, ok := g.config.ErrorCodes[envelope.ErrorCode]
	if !ok {
		sentinel = core.ErrUnknownProvider
	}
	return &core.APIError{
		Op:      op,
		Status:  status,
		Code:    envelope.ErrorCode,
		Message: envelope.ErrorMessage,
		Err:     sentinel,
	}
}

// markUploadFailure reclassifies provider rejections of an upload as
// core.ErrFileUpload, preserving the original code and message. Transport
// and protocol failures (network, decode, empty body) keep their own kinds.
func markUploadFailure(err error) error {
	var apiErr *core.APIError
	if errors.As(err, &apiErr) && apiErr.Status != 0 && !errors.Is(err, core.ErrEmptyResponse) {
		return &core.APIError{
			Op:      apiErr.Op,
			Status:  apiErr.Status,
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Err:     core.ErrFileUpload,
		}
	}
	return err
}

// newNetworkError wraps transport failures.
func newNetworkError(op string, err error) error {
	return &core.APIError{Op: op, Message: err.Error(), Err: core.ErrNetwork}
}

// newDecodeError wraps encode/decode failures.
func newDecodeError(op string, err error) error {
	return &core.APIError{Op: op, Message: err.Error(), Err: core.ErrDecode}
}
