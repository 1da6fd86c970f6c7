// Package queue runs the supervisor: the unread reconciler, the auto-trigger
// scheduler, the trigger queue workers, and the fallback-run reconciler.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/agentfabric/bridge/ent"
	"github.com/agentfabric/bridge/pkg/runtime"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsDue indicates no claimable trigger jobs are due.
	ErrNoJobsDue = errors.New("no jobs due")
)

// Executor delivers a claimed job to the target's live runtime.
type Executor interface {
	Execute(ctx context.Context, job *ent.TriggerJob) (runtime.Outcome, error)
}

// FallbackRunner resumes or spawns a session when runtime delivery is not
// possible.
type FallbackRunner interface {
	Run(ctx context.Context, job *ent.TriggerJob) (FallbackOutcome, error)
}

// Fallback outcome kinds.
const (
	FallbackResumeSucceeded = "fallback_resume_succeeded"
	FallbackSpawned         = "fallback_spawned"
	FallbackRunning         = "fallback_running"
	FallbackResumeFailed    = "fallback_resume_failed"
)

// FallbackOutcome reports one fallback chain execution.
type FallbackOutcome struct {
	Kind      string
	PID       int
	ErrorCode string
	Details   map[string]interface{}
}

// CallbackSender posts the completion event back onto the job's thread.
type CallbackSender interface {
	Send(ctx context.Context, job *ent.TriggerJob, eventType string) error
}

// PoolHealth contains health information for the supervisor pool.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	InstanceID    string         `json:"instance_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
	LastSchedule  time.Time      `json:"last_schedule"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
