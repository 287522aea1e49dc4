package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/petal-labs/herald/core"
)

// API endpoints for message operations.
const (
	sendPath     = "/messages/v1/send"
	sendManyPath = "/messages/v1/send-many"
	listPath     = "/messages/v1/list"
)

// sendRequest is the wire body for a single-message send.
type sendRequest struct {
	Message core.Message `json:"message"`
}

// SendSingle submits one message outside the batch path.
func (g *Gateway) SendSingle(ctx context.Context, msg core.Message) (*core.SingleSendResult, error) {
	var res core.SingleSendResult
	if err := g.do(ctx, core.OpSendSingle, http.MethodPost, sendPath, sendRequest{Message: msg}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SendBatch submits a batch and returns the detailed group response.
// Classification of the response is the caller's concern; the gateway only
// guarantees a parsed body or a typed error.
func (g *Gateway) SendBatch(ctx context.Context, req *core.BatchSendRequest) (*core.BatchSendResult, error) {
	var res core.BatchSendResult
	if err := g.do(ctx, core.OpSendMany, http.MethodPost, sendManyPath, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListMessages returns a page of previously submitted messages.
func (g *Gateway) ListMessages(ctx context.Context, filter *core.MessageListFilter) (*core.MessageList, error) {
	path := listPath
	if filter != nil {
		q := url.Values{}
		if filter.MessageID != "" {
			q.Set("messageId", filter.MessageID)
		}
		if filter.To != "" {
			q.Set("to", filter.To)
		}
		if filter.From != "" {
			q.Set("from", filter.From)
		}
		if filter.Status != "" {
			q.Set("status", filter.Status)
		}
		if filter.StartKey != "" {
			q.Set("startKey", filter.StartKey)
		}
		if filter.Limit > 0 {
			q.Set("limit", strconv.Itoa(filter.Limit))
		}
		if encoded := q.Encode(); encoded != "" {
			path += "?" + encoded
		}
	}

	var res core.MessageList
	if err := g.do(ctx, core.OpListMessages, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
