package queue

import (
	"context"
	"fmt"
	"log/slog"
	"syscall"
	"time"

	"github.com/agentfabric/bridge/ent"
	"github.com/agentfabric/bridge/ent/fallbackrun"
	"github.com/agentfabric/bridge/pkg/config"
	"github.com/agentfabric/bridge/pkg/metrics"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/pkg/services"
)

// FallbackReconciler watches detached fallback runs: past-deadline processes
// get SIGTERM, a grace wait, then SIGKILL; dead pids get marked orphaned. In
// both cases the job rolls forward to callback_pending so the completion
// callback still fires.
type FallbackReconciler struct {
	client      *ent.Client
	workspaceID string
	cfg         *config.FallbackConfig
	triggers    *services.TriggerService
}

// NewFallbackReconciler creates a fallback run reconciler.
func NewFallbackReconciler(client *ent.Client, workspaceID string, cfg *config.FallbackConfig, triggers *services.TriggerService) *FallbackReconciler {
	if cfg == nil {
		cfg = config.DefaultFallbackConfig()
	}
	return &FallbackReconciler{
		client:      client,
		workspaceID: workspaceID,
		cfg:         cfg,
		triggers:    triggers,
	}
}

// Tick scans running fallback runs once.
func (r *FallbackReconciler) Tick(ctx context.Context) error {
	runs, err := r.client.FallbackRun.Query().
		Where(
			fallbackrun.WorkspaceIDEQ(r.workspaceID),
			fallbackrun.StatusEQ(fallbackrun.StatusRunning),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query running fallback runs: %w", err)
	}

	now := time.Now()
	for _, run := range runs {
		if now.After(run.DeadlineAt) || now.Equal(run.DeadlineAt) {
			if err := r.terminate(ctx, run, "deadline_exceeded"); err != nil {
				slog.Error("Failed to terminate overdue fallback run",
					"trigger_id", run.ID, "pid", run.Pid, "error", err)
			}
			continue
		}
		if !pidAlive(run.Pid) && now.Sub(run.StartedAt) > r.cfg.OrphanGrace {
			if err := r.markEnded(ctx, run, fallbackrun.StatusOrphaned, "PROCESS_ORPHANED"); err != nil {
				slog.Error("Failed to mark fallback run orphaned",
					"trigger_id", run.ID, "pid", run.Pid, "error", err)
			}
		}
	}
	return nil
}

// Terminate kills a run on operator request (fallback-kill): SIGTERM, grace,
// SIGKILL, then roll the job forward with the given error code.
func (r *FallbackReconciler) Terminate(ctx context.Context, run *ent.FallbackRun, errorCode string) error {
	return r.terminateWithCode(ctx, run, errorCode)
}

func (r *FallbackReconciler) terminate(ctx context.Context, run *ent.FallbackRun, why string) error {
	slog.Warn("Fallback run past deadline, terminating",
		"trigger_id", run.ID, "pid", run.Pid, "reason", why)
	return r.terminateWithCode(ctx, run, "FALLBACK_DEADLINE_EXCEEDED")
}

func (r *FallbackReconciler) terminateWithCode(ctx context.Context, run *ent.FallbackRun, errorCode string) error {
	if !pidAlive(run.Pid) {
		return r.markEnded(ctx, run, fallbackrun.StatusOrphaned, errorCode)
	}

	_ = syscall.Kill(run.Pid, syscall.SIGTERM)

	deadline := time.Now().Add(r.cfg.Grace)
	for time.Now().Before(deadline) {
		if !pidAlive(run.Pid) {
			return r.markEnded(ctx, run, fallbackrun.StatusKilled, errorCode)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}

	if pidAlive(run.Pid) {
		_ = syscall.Kill(run.Pid, syscall.SIGKILL)
		return r.markEnded(ctx, run, fallbackrun.StatusTimedOut, errorCode)
	}
	return r.markEnded(ctx, run, fallbackrun.StatusKilled, errorCode)
}

// markEnded finalizes the run row and rolls the job to callback_pending with
// a terminal attempt row.
func (r *FallbackReconciler) markEnded(ctx context.Context, run *ent.FallbackRun, status fallbackrun.Status, errorCode string) error {
	now := time.Now()
	n, err := r.client.FallbackRun.Update().
		Where(
			fallbackrun.IDEQ(run.ID),
			fallbackrun.StatusEQ(fallbackrun.StatusRunning),
		).
		SetStatus(status).
		SetEndedAt(now).
		SetErrorCode(errorCode).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to finalize fallback run: %w", err)
	}
	if n == 0 {
		// Another replica finalized it first.
		return nil
	}
	metrics.FallbackRunsTotal.WithLabelValues(string(status)).Inc()

	_, err = r.triggers.Transition(ctx, run.ID,
		[]string{models.TriggerStatusFallbackRunning, models.TriggerStatusTriggering},
		models.TriggerStatusCallbackPending, nil,
		services.AttemptRecord{
			Result:    string(status),
			ErrorCode: errorCode,
			Details:   map[string]interface{}{"pid": run.Pid},
		})
	if err != nil && !services.IsCode(err, services.CodeConflict) {
		return err
	}
	return nil
}

// pidAlive probes the pid with signal 0.
func pidAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := syscall.Kill(pid, 0)
	return err == nil || err == syscall.EPERM
}
