package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentfabric/bridge/ent"
	"github.com/agentfabric/bridge/ent/triggerattempt"
	"github.com/agentfabric/bridge/ent/triggerjob"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/google/uuid"
)

// claimableStatuses are the job statuses a worker may pick up.
var claimableStatuses = []triggerjob.Status{
	triggerjob.StatusQueued,
	triggerjob.StatusTimeout,
	triggerjob.StatusDeferred,
	triggerjob.StatusFallbackResume,
	triggerjob.StatusFallbackSpawn,
	triggerjob.StatusCallbackPending,
	triggerjob.StatusCallbackRetry,
}

// nonTerminalStatuses is everything except failed / callback_delivered /
// callback_failed; pending-job dedupe and backlog counting key off it.
var nonTerminalStatuses = []triggerjob.Status{
	triggerjob.StatusQueued,
	triggerjob.StatusTriggering,
	triggerjob.StatusDeferred,
	triggerjob.StatusTimeout,
	triggerjob.StatusFallbackResume,
	triggerjob.StatusFallbackSpawn,
	triggerjob.StatusFallbackRunning,
	triggerjob.StatusCallbackPending,
	triggerjob.StatusCallbackRetry,
}

// BuildTriggerID derives the deterministic job id for a seed (the HTTP
// request id, or an auto-trigger fingerprint). Replays of the same seed land
// on the same row.
func BuildTriggerID(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return "trg_" + hex.EncodeToString(sum[:])[:32]
}

// AutoTriggerSeed fingerprints an unread-reconciliation candidate so that the
// same (workspace, thread, agent, latest seq) schedules at most one job.
func AutoTriggerSeed(workspaceID, threadID, agentID string, latestSeq int) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s|%d", workspaceID, threadID, agentID, latestSeq)))
	return "auto_unread_" + hex.EncodeToString(sum[:])[:24]
}

// TriggerDecision is the outcome of routing a trigger against the session
// registry.
type TriggerDecision struct {
	Action         string
	InitialStatus  string
	FallbackAction string
	StaleSession   bool
}

// ResolveTriggerDecision routes a trigger based on the target's current
// session record:
//   - no session at all: spawn a fresh runtime;
//   - managed, not offline, not stale: deliver to the live runtime;
//   - resumable and not stale: resume; otherwise spawn.
func ResolveTriggerDecision(session *models.SessionView, now time.Time, staleAfter time.Duration) TriggerDecision {
	if session == nil {
		return TriggerDecision{
			Action:         models.TriggerActionFallbackRequired,
			InitialStatus:  models.TriggerStatusFallbackSpawn,
			FallbackAction: models.FallbackActionSpawn,
		}
	}

	stale := session.Stale(now, staleAfter)
	if session.ManagementMode == models.ManagementModeManaged &&
		session.Status != models.SessionStatusOffline &&
		!stale {
		return TriggerDecision{
			Action:        models.TriggerActionRuntime,
			InitialStatus: models.TriggerStatusQueued,
		}
	}

	if session.Resumable && !stale {
		return TriggerDecision{
			Action:         models.TriggerActionFallbackRequired,
			InitialStatus:  models.TriggerStatusFallbackResume,
			FallbackAction: models.FallbackActionResume,
			StaleSession:   stale,
		}
	}

	return TriggerDecision{
		Action:         models.TriggerActionFallbackRequired,
		InitialStatus:  models.TriggerStatusFallbackSpawn,
		FallbackAction: models.FallbackActionSpawn,
		StaleSession:   stale,
	}
}

// IngestInput is a fully-resolved trigger job to persist.
type IngestInput struct {
	TriggerID       string
	ThreadID        string
	WorkspaceID     string
	TargetAgentID   string
	TargetSessionID string
	Reason          string
	Prompt          string
	InitialStatus   string
	MaxRetries      int
}

// AttemptRecord describes the attempt row accompanying a state transition.
type AttemptRecord struct {
	Result    string
	ErrorCode string
	Details   map[string]interface{}
}

// TriggerService persists trigger jobs and their append-only attempt log.
type TriggerService struct {
	client *ent.Client
}

// NewTriggerService creates a new TriggerService.
func NewTriggerService(client *ent.Client) *TriggerService {
	return &TriggerService{client: client}
}

// Ingest inserts the job if it does not exist; a replay of the same trigger
// id with an identical payload returns the stored job, a replay with a
// different payload fails with IDEMPOTENCY_CONFLICT.
func (s *TriggerService) Ingest(ctx context.Context, in IngestInput) (job *ent.TriggerJob, created bool, err error) {
	now := time.Now()
	builder := s.client.TriggerJob.Create().
		SetID(in.TriggerID).
		SetThreadID(in.ThreadID).
		SetWorkspaceID(in.WorkspaceID).
		SetTargetAgentID(in.TargetAgentID).
		SetReason(in.Reason).
		SetPrompt(in.Prompt).
		SetStatus(triggerjob.Status(in.InitialStatus)).
		SetMaxRetries(in.MaxRetries).
		SetCreatedAt(now).
		SetUpdatedAt(now)
	if in.TargetSessionID != "" {
		builder.SetTargetSessionID(in.TargetSessionID)
	}

	job, err = builder.Save(ctx)
	if err == nil {
		return job, true, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, false, fmt.Errorf("failed to insert trigger job: %w", err)
	}

	stored, err := s.Get(ctx, in.TriggerID)
	if err != nil {
		return nil, false, err
	}
	if stored.ThreadID != in.ThreadID ||
		stored.WorkspaceID != in.WorkspaceID ||
		stored.TargetAgentID != in.TargetAgentID ||
		stored.Reason != in.Reason ||
		stored.Prompt != in.Prompt {
		return nil, false, E(CodeIdempotencyConflict, "trigger id %s was created with a different payload", in.TriggerID)
	}
	return stored, false, nil
}

// Get returns a trigger job by id, or NOT_FOUND.
func (s *TriggerService) Get(ctx context.Context, triggerID string) (*ent.TriggerJob, error) {
	job, err := s.client.TriggerJob.Query().
		Where(triggerjob.IDEQ(triggerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NotFound("trigger job", triggerID)
		}
		return nil, fmt.Errorf("failed to query trigger job: %w", err)
	}
	return job, nil
}

// ClaimedJob is a job marked triggering, paired with the status it was
// claimed from; the processor dispatches by the prior status.
type ClaimedJob struct {
	Job         *ent.TriggerJob
	PriorStatus string
}

// ClaimDue atomically claims up to limit due jobs in the workspace, marking
// them triggering. The select runs FOR UPDATE SKIP LOCKED so concurrent
// workers never claim the same row.
func (s *TriggerService) ClaimDue(ctx context.Context, workspaceID string, limit int, now time.Time) ([]ClaimedJob, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.TriggerJob.Query().
		Where(
			triggerjob.WorkspaceIDEQ(workspaceID),
			triggerjob.StatusIn(claimableStatuses...),
			triggerjob.Or(
				triggerjob.NextRetryAtIsNil(),
				triggerjob.NextRetryAtLTE(now),
			),
		).
		Order(
			triggerjob.ByNextRetryAt(sql.OrderNullsFirst()),
			triggerjob.ByCreatedAt(),
		).
		Limit(limit).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to select due jobs: %w", err)
	}

	claimed := make([]ClaimedJob, 0, len(rows))
	for _, row := range rows {
		updated, uerr := tx.TriggerJob.UpdateOneID(row.ID).
			SetStatus(triggerjob.StatusTriggering).
			SetUpdatedAt(now).
			Save(ctx)
		if uerr != nil {
			return nil, fmt.Errorf("failed to claim job %s: %w", row.ID, uerr)
		}
		claimed = append(claimed, ClaimedJob{Job: updated, PriorStatus: string(row.Status)})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

// ReclaimStaleLeases requeues jobs stuck in triggering longer than the lease
// timeout. Jobs that already have a delivered attempt move to
// callback_pending, everything else returns to queued.
func (s *TriggerService) ReclaimStaleLeases(ctx context.Context, workspaceID string, leaseTimeout time.Duration) (int, error) {
	cutoff := time.Now().Add(-leaseTimeout)
	stuck, err := s.client.TriggerJob.Query().
		Where(
			triggerjob.WorkspaceIDEQ(workspaceID),
			triggerjob.StatusEQ(triggerjob.StatusTriggering),
			triggerjob.UpdatedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stale leases: %w", err)
	}

	reclaimed := 0
	for _, job := range stuck {
		delivered, derr := s.client.TriggerAttempt.Query().
			Where(
				triggerattempt.TriggerIDEQ(job.ID),
				triggerattempt.AttemptResultEQ("delivered"),
			).
			Exist(ctx)
		if derr != nil {
			return reclaimed, fmt.Errorf("failed to check delivered attempts: %w", derr)
		}

		next := triggerjob.StatusQueued
		if delivered {
			next = triggerjob.StatusCallbackPending
		}

		n, uerr := s.client.TriggerJob.Update().
			Where(
				triggerjob.IDEQ(job.ID),
				triggerjob.StatusEQ(triggerjob.StatusTriggering),
				triggerjob.UpdatedAtLT(cutoff),
			).
			SetStatus(next).
			SetUpdatedAt(time.Now()).
			Save(ctx)
		if uerr != nil {
			return reclaimed, fmt.Errorf("failed to reclaim job %s: %w", job.ID, uerr)
		}
		if n > 0 {
			reclaimed++
			slog.Warn("Reclaimed stale trigger lease",
				"trigger_id", job.ID,
				"thread_id", job.ThreadID,
				"requeued_as", next)
		}
	}
	return reclaimed, nil
}

// Transition moves the job from one of the expected statuses to the next one
// and records exactly one attempt row, in a single transaction. The CAS on
// status means two workers racing the same job cannot both succeed.
func (s *TriggerService) Transition(ctx context.Context, triggerID string, from []string, to string, nextRetryAt *time.Time, att AttemptRecord) (int, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	job, err := tx.TriggerJob.Query().
		Where(triggerjob.IDEQ(triggerID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, NotFound("trigger job", triggerID)
		}
		return 0, fmt.Errorf("failed to lock trigger job: %w", err)
	}

	if !statusIn(string(job.Status), from) {
		return 0, Conflict("trigger job %s is %s, expected one of %v", triggerID, job.Status, from)
	}

	attemptNo := job.Attempts + 1
	update := tx.TriggerJob.UpdateOneID(triggerID).
		SetStatus(triggerjob.Status(to)).
		SetAttempts(attemptNo).
		SetUpdatedAt(time.Now())
	if nextRetryAt != nil {
		update.SetNextRetryAt(*nextRetryAt)
	} else {
		update.ClearNextRetryAt()
	}
	if _, err := update.Save(ctx); err != nil {
		return 0, fmt.Errorf("failed to transition trigger job: %w", err)
	}

	attempt := tx.TriggerAttempt.Create().
		SetID("att_" + uuid.New().String()).
		SetTriggerID(triggerID).
		SetAttemptNo(attemptNo).
		SetAttemptResult(att.Result).
		SetCreatedAt(time.Now())
	if att.ErrorCode != "" {
		attempt.SetErrorCode(att.ErrorCode)
	}
	if att.Details != nil {
		attempt.SetDetails(att.Details)
	}
	if _, err := attempt.Save(ctx); err != nil {
		return 0, fmt.Errorf("failed to record attempt: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transition: %w", err)
	}
	return attemptNo, nil
}

// PendingExists reports whether a non-terminal job exists for the
// (workspace, thread, agent, reason) tuple.
func (s *TriggerService) PendingExists(ctx context.Context, workspaceID, threadID, agentID, reason string) (bool, error) {
	exists, err := s.client.TriggerJob.Query().
		Where(
			triggerjob.WorkspaceIDEQ(workspaceID),
			triggerjob.ThreadIDEQ(threadID),
			triggerjob.TargetAgentIDEQ(agentID),
			triggerjob.ReasonEQ(reason),
			triggerjob.StatusIn(nonTerminalStatuses...),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check pending jobs: %w", err)
	}
	return exists, nil
}

// PendingCount returns the workspace's non-terminal job backlog.
func (s *TriggerService) PendingCount(ctx context.Context, workspaceID string) (int, error) {
	n, err := s.client.TriggerJob.Query().
		Where(
			triggerjob.WorkspaceIDEQ(workspaceID),
			triggerjob.StatusIn(nonTerminalStatuses...),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending jobs: %w", err)
	}
	return n, nil
}

// RecentAutoTriggers returns the auto-scheduled jobs for a (thread, agent)
// pair created after since, newest first. The leaky bucket reads these.
func (s *TriggerService) RecentAutoTriggers(ctx context.Context, threadID, agentID string, since time.Time) ([]*ent.TriggerJob, error) {
	rows, err := s.client.TriggerJob.Query().
		Where(
			triggerjob.ThreadIDEQ(threadID),
			triggerjob.TargetAgentIDEQ(agentID),
			triggerjob.ReasonEQ(models.ReasonNewUnreadDormantParticipant),
			triggerjob.CreatedAtGT(since),
		).
		Order(ent.Desc(triggerjob.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent auto triggers: %w", err)
	}
	return rows, nil
}

// RecentAttemptsForThread returns the newest attempt rows across all jobs
// targeting (thread, agent), newest first. The loop guard reads these.
func (s *TriggerService) RecentAttemptsForThread(ctx context.Context, threadID, agentID string, limit int) ([]*ent.TriggerAttempt, error) {
	jobs, err := s.client.TriggerJob.Query().
		Where(
			triggerjob.ThreadIDEQ(threadID),
			triggerjob.TargetAgentIDEQ(agentID),
		).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query thread jobs: %w", err)
	}
	if len(jobs) == 0 {
		return nil, nil
	}

	rows, err := s.client.TriggerAttempt.Query().
		Where(triggerattempt.TriggerIDIn(jobs...)).
		Order(ent.Desc(triggerattempt.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent attempts: %w", err)
	}
	return rows, nil
}

// AttemptsForJob returns a job's attempt rows in attempt order.
func (s *TriggerService) AttemptsForJob(ctx context.Context, triggerID string) ([]*ent.TriggerAttempt, error) {
	rows, err := s.client.TriggerAttempt.Query().
		Where(triggerattempt.TriggerIDEQ(triggerID)).
		Order(ent.Asc(triggerattempt.FieldAttemptNo)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query attempts: %w", err)
	}
	return rows, nil
}

// CallbackAttemptCount counts callback-phase attempts for the job; the
// callback retry bound applies to these only.
func (s *TriggerService) CallbackAttemptCount(ctx context.Context, triggerID string) (int, error) {
	n, err := s.client.TriggerAttempt.Query().
		Where(
			triggerattempt.TriggerIDEQ(triggerID),
			triggerattempt.AttemptResultIn("callback_delivered", "callback_retry", "callback_failed"),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count callback attempts: %w", err)
	}
	return n, nil
}

func statusIn(status string, set []string) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}
