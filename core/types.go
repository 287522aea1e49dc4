// Package core provides the Herald SDK client and types.
package core

import "time"

// MessageType identifies the kind of message being dispatched.
type MessageType string

const (
	// MessageTypeSMS is a short text message.
	MessageTypeSMS MessageType = "SMS"
	// MessageTypeLMS is a long text message with an optional subject.
	MessageTypeLMS MessageType = "LMS"
	// MessageTypeMMS is a multimedia message referencing an uploaded file.
	MessageTypeMMS MessageType = "MMS"
	// MessageTypeRCS is a rich communication services message.
	MessageTypeRCS MessageType = "RCS"
)

// FileType identifies the kind of attachment being uploaded.
type FileType string

const (
	FileTypeMMS      FileType = "MMS"
	FileTypeRCS      FileType = "RCS"
	FileTypeDocument FileType = "DOCUMENT"
)

// Message is one addressable unit to send.
// Messages are caller-constructed and treated as immutable once submitted.
type Message struct {
	To      string      `json:"to"`
	From    string      `json:"from"`
	Text    string      `json:"text"`
	Type    MessageType `json:"type,omitempty"`
	Subject string      `json:"subject,omitempty"`
	FileID  string      `json:"fileId,omitempty"`
	Country string      `json:"country,omitempty"`
}

// BatchSendRequest submits one or more messages in a single request.
// A nil ScheduledAt means "send immediately".
type BatchSendRequest struct {
	Messages    []Message  `json:"messages"`
	ScheduledAt *time.Time `json:"scheduledDate,omitempty"`
}

// Count holds the provider's registration counters for a whole batch.
// A zero Count is what an omitted groupInfo decodes to.
type Count struct {
	Total             int `json:"total"`
	RegisteredSuccess int `json:"registeredSuccess"`
	RegisteredFailed  int `json:"registeredFailed"`
}

// GroupInfo describes the message group the provider created for a batch.
type GroupInfo struct {
	GroupID string `json:"groupId,omitempty"`
	Count   Count  `json:"count"`
}

// FailedMessage is a per-message rejection reported by the provider.
type FailedMessage struct {
	To           string      `json:"to"`
	From         string      `json:"from"`
	Type         MessageType `json:"type,omitempty"`
	MessageID    string      `json:"messageId,omitempty"`
	ErrorCode    string      `json:"errorCode"`
	ErrorMessage string      `json:"errorMessage"`
}

// BatchSendResult is the provider's consolidated response to a batch send.
// For a well-formed response len(FailedMessages) <= GroupInfo.Count.Total.
type BatchSendResult struct {
	GroupInfo      GroupInfo       `json:"groupInfo"`
	FailedMessages []FailedMessage `json:"failedMessageList"`
}

// HasFailures reports whether the provider rejected any message in the batch.
func (r *BatchSendResult) HasFailures() bool {
	return len(r.FailedMessages) > 0
}

// SingleSendResult is the provider's receipt for a non-batch send.
type SingleSendResult struct {
	GroupID       string      `json:"groupId"`
	MessageID     string      `json:"messageId"`
	To            string      `json:"to"`
	From          string      `json:"from"`
	Type          MessageType `json:"type"`
	StatusCode    string      `json:"statusCode"`
	StatusMessage string      `json:"statusMessage"`
	Country       string      `json:"country,omitempty"`
	AccountID     string      `json:"accountId,omitempty"`
}

// MessageListFilter narrows a message list query.
// Zero-valued fields are omitted from the query.
type MessageListFilter struct {
	MessageID string
	To        string
	From      string
	Status    string
	StartKey  string
	Limit     int
}

// MessageRecord is one previously submitted message as the provider stores it.
type MessageRecord struct {
	MessageID   string      `json:"messageId"`
	GroupID     string      `json:"groupId,omitempty"`
	To          string      `json:"to"`
	From        string      `json:"from"`
	Text        string      `json:"text"`
	Type        MessageType `json:"type,omitempty"`
	Status      string      `json:"status,omitempty"`
	Reason      string      `json:"reason,omitempty"`
	DateCreated *time.Time  `json:"dateCreated,omitempty"`
}

// MessageList is a page of message records.
type MessageList struct {
	Messages []MessageRecord `json:"messageList"`
	Limit    int             `json:"limit,omitempty"`
	StartKey string          `json:"startKey,omitempty"`
	NextKey  string          `json:"nextKey,omitempty"`
}

// FileUploadRequest registers a base64-encoded attachment with the provider.
type FileUploadRequest struct {
	File string   `json:"file"`
	Type FileType `json:"type"`
	Link string   `json:"link,omitempty"`
}

// FileUploadResult carries the provider-assigned ID for an uploaded file.
type FileUploadResult struct {
	FileID string `json:"fileId"`
}

// Balance is the account balance as the provider reports it.
// Fields beyond Balance and Point are opaque to the SDK.
type Balance struct {
	Balance float64 `json:"balance"`
	Point   float64 `json:"point"`
}
