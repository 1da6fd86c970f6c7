package models

import "time"

// Message kinds.
const (
	MessageKindChat   = "chat"
	MessageKindEvent  = "event"
	MessageKindSystem = "system"
)

// Metadata keys with bridge-level meaning on event messages.
const (
	MetadataEventType          = "event_type"
	MetadataEventVersion       = "event_version"
	MetadataSuppressAutoTrig   = "suppress_auto_trigger"
	MetadataTriggerID          = "trigger_id"
	MetadataTriggerAttemptSeen = "trigger_attempts"
)

// PostMessageRequest is the body of POST /v1/mcp/post_message.
type PostMessageRequest struct {
	ThreadID        string                 `json:"thread_id"`
	SchemaVersion   int                    `json:"schema_version"`
	Kind            string                 `json:"kind"`
	Body            string                 `json:"body"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
	InReplyTo       string                 `json:"in_reply_to,omitempty"`
	IdempotencyKey  string                 `json:"idempotency_key,omitempty"`
	SenderAgentID   string                 `json:"sender_agent_id,omitempty"`
	SenderSessionID string                 `json:"sender_session_id,omitempty"`
}

// PostMessageResponse is returned by post_message.
type PostMessageResponse struct {
	MessageID    string    `json:"message_id"`
	Seq          int       `json:"seq"`
	ThreadStatus string    `json:"thread_status"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReadMessagesRequest is the body of POST /v1/mcp/read_messages.
type ReadMessagesRequest struct {
	ThreadID string `json:"thread_id"`
	SinceSeq int    `json:"since_seq"`
	Limit    int    `json:"limit"`
	AgentID  string `json:"agent_id,omitempty"`
}

// MessageView is a single message in a read_messages response.
type MessageView struct {
	MessageID       string                 `json:"message_id"`
	ThreadID        string                 `json:"thread_id"`
	Seq             int                    `json:"seq"`
	SchemaVersion   int                    `json:"schema_version"`
	SenderAgentID   string                 `json:"sender_agent_id"`
	SenderSessionID string                 `json:"sender_session_id"`
	Kind            string                 `json:"kind"`
	Body            string                 `json:"body"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
	InReplyTo       string                 `json:"in_reply_to,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

// ReadMessagesResponse is returned by read_messages.
type ReadMessagesResponse struct {
	Messages []MessageView `json:"messages"`
	NextSeq  int           `json:"next_seq"`
	HasMore  bool          `json:"has_more"`
}

// AckReadRequest is the body of POST /v1/mcp/ack_read.
type AckReadRequest struct {
	ThreadID    string `json:"thread_id"`
	LastReadSeq int    `json:"last_read_seq"`
	AgentID     string `json:"agent_id,omitempty"`
}

// AckReadResponse is returned by ack_read.
type AckReadResponse struct {
	OK        bool      `json:"ok"`
	UpdatedAt time.Time `json:"updated_at"`
}
