// Package models contains the wire-facing request/response shapes shared by
// the API layer, the services, and the operator CLI.
package models

import (
	"strings"
	"time"
)

// Thread statuses.
const (
	ThreadStatusActive   = "active"
	ThreadStatusBlocked  = "blocked"
	ThreadStatusResolved = "resolved"
	ThreadStatusClosed   = "closed"
)

// Thread types.
const (
	ThreadTypeConversation = "conversation"
	ThreadTypeWorkflow     = "workflow"
	ThreadTypeIncident     = "incident"
)

// Reserved reason prefixes carrying override authority.
const (
	ReasonPrefixHumanOverride       = "human_override:"
	ReasonPrefixCoordinatorOverride = "coordinator_override:"
)

// CreateThreadRequest is the body of POST /v1/mcp/create_thread.
type CreateThreadRequest struct {
	WorkspaceID  string   `json:"workspace_id"`
	Title        string   `json:"title"`
	Type         string   `json:"type"`
	Participants []string `json:"participants"`
	CreatedBy    string   `json:"created_by,omitempty"`
}

// CreateThreadResponse is returned by create_thread.
type CreateThreadResponse struct {
	ThreadID  string    `json:"thread_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// GetThreadRequest is the body of POST /v1/mcp/get_thread.
type GetThreadRequest struct {
	ThreadID string `json:"thread_id"`
}

// ThreadDetail is the full thread view returned by get_thread and bridgectl.
type ThreadDetail struct {
	ThreadID             string     `json:"thread_id"`
	WorkspaceID          string     `json:"workspace_id"`
	Title                string     `json:"title"`
	Type                 string     `json:"type"`
	Status               string     `json:"status"`
	Participants         []string   `json:"participants"`
	EscalationOwner      string     `json:"escalation_owner_agent_id,omitempty"`
	EscalationAssignedBy string     `json:"escalation_assigned_by_agent_id,omitempty"`
	EscalationAssignedAt *time.Time `json:"escalation_assigned_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// UpdateThreadStatusRequest is the body of POST /v1/mcp/update_thread_status.
type UpdateThreadStatusRequest struct {
	ThreadID string `json:"thread_id"`
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`
}

// UpdateThreadStatusResponse is returned by update_thread_status.
type UpdateThreadStatusResponse struct {
	ThreadID  string    `json:"thread_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SummarizeThreadRequest is the body of POST /v1/mcp/summarize_thread.
type SummarizeThreadRequest struct {
	ThreadID    string `json:"thread_id"`
	MaxMessages int    `json:"max_messages,omitempty"`
}

// ThreadSummary is returned by summarize_thread.
type ThreadSummary struct {
	ThreadID     string `json:"thread_id"`
	Status       string `json:"status"`
	MessageCount int    `json:"message_count"`
	Summary      string `json:"summary"`
}

// HasOverridePrefix reports whether the reason carries override authority.
func HasOverridePrefix(reason string) bool {
	return strings.HasPrefix(reason, ReasonPrefixHumanOverride) ||
		strings.HasPrefix(reason, ReasonPrefixCoordinatorOverride)
}
