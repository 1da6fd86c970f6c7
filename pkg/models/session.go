package models

import "time"

// Session statuses in the runtime registry.
const (
	SessionStatusActive  = "active"
	SessionStatusIdle    = "idle"
	SessionStatusOffline = "offline"
)

// Management modes.
const (
	ManagementModeManaged   = "managed"
	ManagementModeUnmanaged = "unmanaged"
)

// HeartbeatRequest is the body of POST /v1/mcp/heartbeat_session.
type HeartbeatRequest struct {
	SessionID      string `json:"session_id"`
	Runtime        string `json:"runtime"`
	ManagementMode string `json:"management_mode"`
	Resumable      bool   `json:"resumable"`
	Status         string `json:"status"`
	AgentID        string `json:"agent_id,omitempty"`
	WorkspaceID    string `json:"workspace_id,omitempty"`
}

// HeartbeatResponse is returned by heartbeat_session.
type HeartbeatResponse struct {
	OK         bool      `json:"ok"`
	RecordedAt time.Time `json:"recorded_at"`
}

// SessionView is the registry entry as seen by trigger decisions and bridgectl.
type SessionView struct {
	AgentID         string    `json:"agent_id"`
	WorkspaceID     string    `json:"workspace_id"`
	SessionID       string    `json:"session_id"`
	Runtime         string    `json:"runtime"`
	ManagementMode  string    `json:"management_mode"`
	Resumable       bool      `json:"resumable"`
	Status          string    `json:"status"`
	LastHeartbeatAt time.Time `json:"last_heartbeat_at"`
}

// Stale reports whether the session heartbeat is older than staleAfter.
func (s *SessionView) Stale(now time.Time, staleAfter time.Duration) bool {
	return now.Sub(s.LastHeartbeatAt) >= staleAfter
}
