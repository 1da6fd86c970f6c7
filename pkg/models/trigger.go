package models

import "time"

// Trigger job statuses.
const (
	TriggerStatusQueued            = "queued"
	TriggerStatusTriggering        = "triggering"
	TriggerStatusDeferred          = "deferred"
	TriggerStatusTimeout           = "timeout"
	TriggerStatusFailed            = "failed"
	TriggerStatusFallbackResume    = "fallback_resume"
	TriggerStatusFallbackSpawn     = "fallback_spawn"
	TriggerStatusFallbackRunning   = "fallback_running"
	TriggerStatusCallbackPending   = "callback_pending"
	TriggerStatusCallbackRetry     = "callback_retry"
	TriggerStatusCallbackDelivered = "callback_delivered"
	TriggerStatusCallbackFailed    = "callback_failed"
)

// Trigger decision actions.
const (
	TriggerActionRuntime          = "trigger_runtime"
	TriggerActionFallbackRequired = "fallback_required"
)

// Fallback actions.
const (
	FallbackActionResume = "resume_session"
	FallbackActionSpawn  = "spawn_session"
)

// Reason used by the auto-trigger scheduler; dedupe keys off it.
const ReasonNewUnreadDormantParticipant = "new_unread_dormant_participant"

// TriggerTerminalStatuses is the set of statuses a job never leaves.
var TriggerTerminalStatuses = []string{
	TriggerStatusFailed,
	TriggerStatusCallbackDelivered,
	TriggerStatusCallbackFailed,
}

// TriggerParticipantRequest is the body of POST /v1/mcp/trigger_participant.
type TriggerParticipantRequest struct {
	ThreadID      string `json:"thread_id"`
	TargetAgentID string `json:"target_agent_id"`
	Reason        string `json:"reason"`
	TriggerPrompt string `json:"trigger_prompt"`
}

// TriggerParticipantResponse is returned by trigger_participant.
type TriggerParticipantResponse struct {
	TriggerID       string    `json:"trigger_id"`
	TargetAgentID   string    `json:"target_agent_id"`
	Action          string    `json:"action"`
	Result          string    `json:"result"`
	JobStatus       string    `json:"job_status"`
	FallbackAction  string    `json:"fallback_action,omitempty"`
	TargetSessionID string    `json:"target_session_id,omitempty"`
	Runtime         string    `json:"runtime,omitempty"`
	ManagementMode  string    `json:"management_mode,omitempty"`
	SessionStatus   string    `json:"session_status,omitempty"`
	StaleSession    bool      `json:"stale_session"`
	TriggeredAt     time.Time `json:"triggered_at"`
}

// FallbackRunView is a fallback run as listed by bridgectl.
type FallbackRunView struct {
	TriggerID  string     `json:"trigger_id"`
	ThreadID   string     `json:"thread_id"`
	PID        int        `json:"pid"`
	LaunchMode string     `json:"launch_mode"`
	Status     string     `json:"status"`
	StartedAt  time.Time  `json:"started_at"`
	DeadlineAt time.Time  `json:"deadline_at"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	ErrorCode  string     `json:"error_code,omitempty"`
}
