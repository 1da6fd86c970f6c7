package runtime

import "context"

// PTY adapter error codes surfaced by the host daemon.
const (
	ErrCodeOperatorBusy       = "OPERATOR_BUSY"
	ErrCodeTargetNotFound     = "TARGET_NOT_FOUND"
	ErrCodePaneDead           = "PANE_DEAD"
	ErrCodeSendKeysError      = "SEND_KEYS_ERROR"
	ErrCodeUnsupportedRuntime = "UNSUPPORTED_RUNTIME"
)

// DeliverInput is a framed payload bound for a live runtime.
type DeliverInput struct {
	Runtime       string
	TriggerID     string
	ThreadID      string
	Reason        string
	Payload       string
	ForceOverride bool
}

// DeliverResult is the adapter's verdict on one delivery.
type DeliverResult struct {
	Delivered bool
	ErrorCode string
	Details   map[string]string
}

// SpawnResult reports a fallback launch. PID is set for detached launches;
// ExitCode is meaningful only for blocking ones.
type SpawnResult struct {
	OK        bool
	PID       int
	ExitCode  int
	ErrorCode string
}

// PTYAdapter injects trigger payloads into live runtimes.
type PTYAdapter interface {
	Deliver(ctx context.Context, in DeliverInput) (DeliverResult, error)
}

// Launcher resumes or spawns fallback sessions.
type Launcher interface {
	Resume(ctx context.Context, workspaceID, agentID, sessionID, runtime string) (bool, string, error)
	Spawn(ctx context.Context, workspaceID, agentID, prompt string, detached bool) (SpawnResult, error)
}
