package core

import (
	"context"
	"encoding/base64"
	"errors"
	"time"
)

// Operation identifiers used for error context and telemetry.
const (
	OpSendSingle   = "messages.send"
	OpSendMany     = "messages.sendMany"
	OpListMessages = "messages.list"
	OpUploadFile   = "files.upload"
	OpGetBalance   = "balance.get"
)

// Gateway is the transport boundary the SDK core depends on.
// Implementations carry the current auth header on every call and return
// either a parsed success body or a typed error; they own connection reuse,
// TLS, and serialization. Implementations MUST be safe for concurrent use.
type Gateway interface {
	// UploadFile registers a base64-encoded attachment with the provider.
	UploadFile(ctx context.Context, req *FileUploadRequest) (*FileUploadResult, error)

	// ListMessages returns a page of previously submitted messages.
	ListMessages(ctx context.Context, filter *MessageListFilter) (*MessageList, error)

	// SendSingle submits one message outside the batch path.
	SendSingle(ctx context.Context, msg Message) (*SingleSendResult, error)

	// SendBatch submits a batch and returns the detailed group response.
	SendBatch(ctx context.Context, req *BatchSendRequest) (*BatchSendResult, error)

	// GetBalance returns the account balance.
	GetBalance(ctx context.Context) (*Balance, error)
}

// Client is the main entry point for dispatching messages.
// Client is safe for concurrent use: the only state it holds is the
// immutable gateway binding captured at construction.
type Client struct {
	gateway   Gateway
	telemetry TelemetryHook
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new Client with the given gateway and options.
func NewClient(gw Gateway, opts ...ClientOption) *Client {
	c := &Client{
		gateway:   gw,
		telemetry: NoopTelemetryHook{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithTelemetry sets the telemetry hook for the client.
func WithTelemetry(h TelemetryHook) ClientOption {
	return func(c *Client) {
		if h != nil {
			c.telemetry = h
		}
	}
}

// Gateway returns the underlying gateway.
func (c *Client) Gateway() Gateway {
	return c.gateway
}

// SendOne submits a single message outside the batch path.
// The outcome is binary: any provider rejection surfaces as an error with
// no accepted/partial distinction. Use Send to get per-message failure
// reasons even for one message.
func (c *Client) SendOne(ctx context.Context, msg Message) (*SingleSendResult, error) {
	start := time.Now()
	c.telemetry.OnRequestStart(RequestStartEvent{Op: OpSendSingle, Messages: 1, Start: start})

	res, err := c.gateway.SendSingle(ctx, msg)

	failed := 0
	if err != nil {
		failed = 1
	}
	c.telemetry.OnRequestEnd(RequestEndEvent{
		Op:       OpSendSingle,
		Messages: 1,
		Start:    start,
		End:      time.Now(),
		Failed:   failed,
		Err:      err,
	})
	return res, err
}

// Send returns a SendBuilder for constructing and executing a batch send.
// SendBuilder is NOT thread-safe and should not be shared across goroutines.
func (c *Client) Send(msgs ...Message) *SendBuilder {
	return &SendBuilder{
		client: c,
		req:    BatchSendRequest{Messages: msgs},
	}
}

// SendBuilder provides a fluent API for building batch send requests.
type SendBuilder struct {
	client *Client
	req    BatchSendRequest
}

// Message appends a message to the batch.
func (b *SendBuilder) Message(m Message) *SendBuilder {
	b.req.Messages = append(b.req.Messages, m)
	return b
}

// ScheduleAt sets the requested dispatch time.
// Unscheduled batches are sent immediately.
func (b *SendBuilder) ScheduleAt(t time.Time) *SendBuilder {
	b.req.ScheduledAt = &t
	return b
}

// validate checks that the request is valid.
func (b *SendBuilder) validate() error {
	if len(b.req.Messages) == 0 {
		return ErrNoMessages
	}
	return nil
}

// Execute submits the batch and reconciles the provider's response.
//
// Even a single message goes through the batch-detailed path, so a full
// rejection comes back as *MessageNotReceivedError carrying the per-message
// reasons. A partial failure is returned as a successful result with a
// non-empty failure list.
func (b *SendBuilder) Execute(ctx context.Context) (*BatchSendResult, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	b.client.telemetry.OnRequestStart(RequestStartEvent{
		Op:       OpSendMany,
		Messages: len(b.req.Messages),
		Start:    start,
	})

	res, err := b.client.gateway.SendBatch(ctx, &b.req)
	if err == nil {
		res, err = Reconcile(OpSendMany, res)
	}

	failed := 0
	if res != nil {
		failed = len(res.FailedMessages)
	}
	var notReceived *MessageNotReceivedError
	if errors.As(err, &notReceived) {
		failed = len(notReceived.Failed)
	}
	b.client.telemetry.OnRequestEnd(RequestEndEvent{
		Op:       OpSendMany,
		Messages: len(b.req.Messages),
		Start:    start,
		End:      time.Now(),
		Failed:   failed,
		Err:      err,
	})
	return res, err
}

// UploadFile encodes raw content as base64 and registers it with the
// provider, returning the file ID to reference from MMS/RCS messages.
// The link parameter is optional and may be empty.
func (c *Client) UploadFile(ctx context.Context, content []byte, typ FileType, link string) (string, error) {
	start := time.Now()
	c.telemetry.OnRequestStart(RequestStartEvent{Op: OpUploadFile, Start: start})

	res, err := c.gateway.UploadFile(ctx, &FileUploadRequest{
		File: base64.StdEncoding.EncodeToString(content),
		Type: typ,
		Link: link,
	})

	c.telemetry.OnRequestEnd(RequestEndEvent{
		Op:    OpUploadFile,
		Start: start,
		End:   time.Now(),
		Err:   err,
	})
	if err != nil {
		return "", err
	}
	return res.FileID, nil
}

// ListMessages returns a page of previously submitted messages.
// A nil filter lists with the provider's defaults.
func (c *Client) ListMessages(ctx context.Context, filter *MessageListFilter) (*MessageList, error) {
	start := time.Now()
	c.telemetry.OnRequestStart(RequestStartEvent{Op: OpListMessages, Start: start})

	res, err := c.gateway.ListMessages(ctx, filter)

	c.telemetry.OnRequestEnd(RequestEndEvent{
		Op:    OpListMessages,
		Start: start,
		End:   time.Now(),
		Err:   err,
	})
	return res, err
}

// Balance returns the account balance.
func (c *Client) Balance(ctx context.Context) (*Balance, error) {
	start := time.Now()
	c.telemetry.OnRequestStart(RequestStartEvent{Op: OpGetBalance, Start: start})

	res, err := c.gateway.GetBalance(ctx)

	c.telemetry.OnRequestEnd(RequestEndEvent{
		Op:    OpGetBalance,
		Start: start,
		End:   time.Now(),
		Err:   err,
	})
	return res, err
}
