package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/petal-labs/herald/core"
)

// do executes one JSON request/response cycle against the provider.
// A nil in skips the request body; a nil out skips response decoding.
func (g *Gateway) do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return newDecodeError(op, err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, g.config.BaseURL+path, body)
	if err != nil {
		return newNetworkError(op, err)
	}

	for key, values := range g.buildHeaders() {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	resp, err := g.config.HTTPClient.Do(httpReq)
	if err != nil {
		return newNetworkError(op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return newNetworkError(op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return g.normalizeError(op, resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}

	// A 2xx status with no body is a protocol violation, never a silent nil.
	trimmed := bytes.TrimSpace(respBody)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return &core.APIError{
			Op:      op,
			Status:  resp.StatusCode,
			Message: "provider returned an empty body",
			Err:     core.ErrEmptyResponse,
		}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return newDecodeError(op, err)
	}
	return nil
}
