package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/agentfabric/bridge/ent"
	"github.com/agentfabric/bridge/ent/fallbackrun"
	"github.com/agentfabric/bridge/pkg/config"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/pkg/runtime"
	"github.com/agentfabric/bridge/pkg/services"
)

// FallbackExecutor resumes a dormant session or spawns a fresh one when the
// runtime delivery path is unavailable. Jobs reach it queue-first: a failed
// delivery parks the job in a fallback_* status and a later tick claims it,
// so the chain runs one tick after the failing attempt rather than inline.
// The crash-loop counter is in-memory; losing it on restart only re-allows
// one resume round.
type FallbackExecutor struct {
	client   *ent.Client
	launcher runtime.Launcher
	registry *services.RegistryService
	threads  *services.ThreadService
	cfg      *config.FallbackConfig

	mu             sync.Mutex
	resumeFailures map[string][]time.Time
}

// NewFallbackExecutor creates a fallback executor.
func NewFallbackExecutor(client *ent.Client, launcher runtime.Launcher, registry *services.RegistryService, threads *services.ThreadService, cfg *config.FallbackConfig) *FallbackExecutor {
	if cfg == nil {
		cfg = config.DefaultFallbackConfig()
	}
	return &FallbackExecutor{
		client:         client,
		launcher:       launcher,
		registry:       registry,
		threads:        threads,
		cfg:            cfg,
		resumeFailures: make(map[string][]time.Time),
	}
}

// Run tries resume first when eligible, then spawn.
func (e *FallbackExecutor) Run(ctx context.Context, job *ent.TriggerJob) (FallbackOutcome, error) {
	log := slog.With("trigger_id", job.ID, "target_agent_id", job.TargetAgentID)

	eligible, skipReason, session, err := e.resumeEligible(ctx, job)
	if err != nil {
		return FallbackOutcome{}, err
	}

	if eligible {
		for attempt := 1; attempt <= e.cfg.ResumeMaxAttempts; attempt++ {
			ok, code, rerr := e.launcher.Resume(ctx, job.WorkspaceID, job.TargetAgentID, session.SessionID, session.Runtime)
			if rerr != nil {
				return FallbackOutcome{}, rerr
			}
			if ok {
				return FallbackOutcome{
					Kind:    FallbackResumeSucceeded,
					Details: map[string]interface{}{"session_id": session.SessionID, "resume_attempt": attempt},
				}, nil
			}
			e.recordResumeFailure(job.WorkspaceID, job.TargetAgentID)
			log.Warn("Fallback resume attempt failed", "attempt", attempt, "error_code", code)
		}
		skipReason = "resume_attempts_exhausted"
	}

	return e.spawn(ctx, job, skipReason)
}

func (e *FallbackExecutor) spawn(ctx context.Context, job *ent.TriggerJob, resumeSkipReason string) (FallbackOutcome, error) {
	prompt, err := e.spawnPrompt(ctx, job)
	if err != nil {
		return FallbackOutcome{}, err
	}

	result, err := e.launcher.Spawn(ctx, job.WorkspaceID, job.TargetAgentID, prompt, true)
	if err != nil {
		return FallbackOutcome{}, err
	}
	if !result.OK {
		code := result.ErrorCode
		if code == "" {
			code = ErrCodeFallbackSpawnFail
		}
		return FallbackOutcome{
			Kind:      FallbackResumeFailed,
			ErrorCode: ErrCodeFallbackSpawnFail,
			Details:   map[string]interface{}{"launch_error": code, "resume_skipped": resumeSkipReason},
		}, nil
	}

	details := map[string]interface{}{"resume_skipped": resumeSkipReason}
	if result.PID > 0 {
		// Detached launch: record the run and let the reconciler watch it.
		deadline := time.Now().Add(e.cfg.Deadline)
		_, cerr := e.client.FallbackRun.Create().
			SetID(job.ID).
			SetWorkspaceID(job.WorkspaceID).
			SetPid(result.PID).
			SetLaunchMode(fallbackrun.LaunchModeSpawn).
			SetStatus(fallbackrun.StatusRunning).
			SetStartedAt(time.Now()).
			SetDeadlineAt(deadline).
			Save(ctx)
		if cerr != nil && !ent.IsConstraintError(cerr) {
			return FallbackOutcome{}, fmt.Errorf("failed to record fallback run: %w", cerr)
		}
		details["pid"] = result.PID
		return FallbackOutcome{Kind: FallbackRunning, PID: result.PID, Details: details}, nil
	}

	return FallbackOutcome{Kind: FallbackSpawned, Details: details}, nil
}

// resumeEligible: target session id present and matching, session not stale,
// crash-loop guard under threshold.
func (e *FallbackExecutor) resumeEligible(ctx context.Context, job *ent.TriggerJob) (bool, string, *models.SessionView, error) {
	if job.TargetSessionID == nil || *job.TargetSessionID == "" {
		return false, "no_target_session", nil, nil
	}

	session, err := e.registry.GetSession(ctx, job.WorkspaceID, job.TargetAgentID)
	if err != nil {
		return false, "", nil, err
	}
	if session == nil {
		return false, "session_missing", nil, nil
	}
	if session.SessionID != *job.TargetSessionID {
		return false, "session_id_mismatch", nil, nil
	}
	if !session.Resumable {
		return false, "not_resumable", nil, nil
	}
	if session.Stale(time.Now(), e.registry.StaleAfter()) {
		return false, "session_stale", nil, nil
	}
	if e.inCrashLoop(job.WorkspaceID, job.TargetAgentID) {
		return false, "crash_loop_guard", session, nil
	}
	return true, "", session, nil
}

func (e *FallbackExecutor) spawnPrompt(ctx context.Context, job *ent.TriggerJob) (string, error) {
	summary, err := e.threads.SummarizeThread(ctx, job.ThreadID, 10)
	if err != nil {
		if services.IsCode(err, services.CodeNotFound) {
			return job.Prompt, nil
		}
		return "", err
	}
	return fmt.Sprintf("%s\n\nThread context:\n%s", job.Prompt, summary.Summary), nil
}

func (e *FallbackExecutor) recordResumeFailure(workspaceID, agentID string) {
	key := workspaceID + "|" + agentID
	now := time.Now()
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resumeFailures[key] = append(e.prune(e.resumeFailures[key], now), now)
}

func (e *FallbackExecutor) inCrashLoop(workspaceID, agentID string) bool {
	key := workspaceID + "|" + agentID
	now := time.Now()
	e.mu.Lock()
	defer e.mu.Unlock()
	kept := e.prune(e.resumeFailures[key], now)
	e.resumeFailures[key] = kept
	return len(kept) >= e.cfg.CrashLoopThreshold
}

func (e *FallbackExecutor) prune(stamps []time.Time, now time.Time) []time.Time {
	cutoff := now.Add(-e.cfg.CrashLoopWindow)
	kept := stamps[:0]
	for _, t := range stamps {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}
