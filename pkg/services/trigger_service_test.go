package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTriggerID(t *testing.T) {
	id := BuildTriggerID("req-123")
	assert.True(t, strings.HasPrefix(id, "trg_"))
	assert.Len(t, id, len("trg_")+32)

	assert.Equal(t, id, BuildTriggerID("req-123"))
	assert.NotEqual(t, id, BuildTriggerID("req-124"))
}

func TestAutoTriggerSeed(t *testing.T) {
	seed := AutoTriggerSeed("ws", "th_1", "agent-a", 7)
	assert.True(t, strings.HasPrefix(seed, "auto_unread_"))
	assert.Equal(t, seed, AutoTriggerSeed("ws", "th_1", "agent-a", 7))
	assert.NotEqual(t, seed, AutoTriggerSeed("ws", "th_1", "agent-a", 8))
}

func TestResolveTriggerDecision(t *testing.T) {
	now := time.Now()
	staleAfter := 12 * time.Hour

	live := func(mode, status string, resumable bool, age time.Duration) *models.SessionView {
		return &models.SessionView{
			ManagementMode:  mode,
			Status:          status,
			Resumable:       resumable,
			LastHeartbeatAt: now.Add(-age),
		}
	}

	tests := []struct {
		name           string
		session        *models.SessionView
		action         string
		initialStatus  string
		fallbackAction string
	}{
		{
			name:           "no session spawns",
			session:        nil,
			action:         models.TriggerActionFallbackRequired,
			initialStatus:  models.TriggerStatusFallbackSpawn,
			fallbackAction: models.FallbackActionSpawn,
		},
		{
			name:          "managed live session delivers to runtime",
			session:       live(models.ManagementModeManaged, models.SessionStatusActive, false, time.Minute),
			action:        models.TriggerActionRuntime,
			initialStatus: models.TriggerStatusQueued,
		},
		{
			name:           "managed offline resumable session resumes",
			session:        live(models.ManagementModeManaged, models.SessionStatusOffline, true, time.Minute),
			action:         models.TriggerActionFallbackRequired,
			initialStatus:  models.TriggerStatusFallbackResume,
			fallbackAction: models.FallbackActionResume,
		},
		{
			name:           "unmanaged resumable session resumes",
			session:        live(models.ManagementModeUnmanaged, models.SessionStatusIdle, true, time.Minute),
			action:         models.TriggerActionFallbackRequired,
			initialStatus:  models.TriggerStatusFallbackResume,
			fallbackAction: models.FallbackActionResume,
		},
		{
			name:           "stale resumable session spawns",
			session:        live(models.ManagementModeManaged, models.SessionStatusActive, true, 13*time.Hour),
			action:         models.TriggerActionFallbackRequired,
			initialStatus:  models.TriggerStatusFallbackSpawn,
			fallbackAction: models.FallbackActionSpawn,
		},
		{
			name:           "unmanaged non-resumable session spawns",
			session:        live(models.ManagementModeUnmanaged, models.SessionStatusActive, false, time.Minute),
			action:         models.TriggerActionFallbackRequired,
			initialStatus:  models.TriggerStatusFallbackSpawn,
			fallbackAction: models.FallbackActionSpawn,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := ResolveTriggerDecision(tc.session, now, staleAfter)
			assert.Equal(t, tc.action, d.Action)
			assert.Equal(t, tc.initialStatus, d.InitialStatus)
			assert.Equal(t, tc.fallbackAction, d.FallbackAction)
		})
	}
}

func triggerInput(triggerID, threadID string) IngestInput {
	return IngestInput{
		TriggerID:     triggerID,
		ThreadID:      threadID,
		WorkspaceID:   "ws-test",
		TargetAgentID: "agent-b",
		Reason:        "manual_trigger",
		Prompt:        "you have new messages",
		InitialStatus: models.TriggerStatusQueued,
		MaxRetries:    3,
	}
}

func TestTriggerService_Ingest(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	threads := NewThreadService(client)
	svc := NewTriggerService(client)
	ctx := context.Background()

	th := newTestThread(t, threads, "agent-a", "agent-b")

	t.Run("creates then replays", func(t *testing.T) {
		in := triggerInput(BuildTriggerID("req-1"), th.ThreadID)

		job, created, err := svc.Ingest(ctx, in)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, in.TriggerID, job.ID)
		assert.Equal(t, models.TriggerStatusQueued, string(job.Status))

		replay, created, err := svc.Ingest(ctx, in)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, job.ID, replay.ID)
		assert.Equal(t, job.CreatedAt.Unix(), replay.CreatedAt.Unix())
	})

	t.Run("replay with a different payload conflicts", func(t *testing.T) {
		in := triggerInput(BuildTriggerID("req-2"), th.ThreadID)
		_, _, err := svc.Ingest(ctx, in)
		require.NoError(t, err)

		in.Prompt = "something else"
		_, _, err = svc.Ingest(ctx, in)
		assert.True(t, IsCode(err, CodeIdempotencyConflict), "got %v", err)
	})

	t.Run("unknown job is NOT_FOUND", func(t *testing.T) {
		_, err := svc.Get(ctx, "trg_missing")
		assert.True(t, IsCode(err, CodeNotFound))
	})
}

func TestTriggerService_ClaimAndTransition(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	threads := NewThreadService(client)
	svc := NewTriggerService(client)
	ctx := context.Background()

	th := newTestThread(t, threads, "agent-a", "agent-b")
	in := triggerInput(BuildTriggerID("req-claim"), th.ThreadID)
	_, _, err := svc.Ingest(ctx, in)
	require.NoError(t, err)

	t.Run("claim marks triggering and reports the prior status", func(t *testing.T) {
		claimed, err := svc.ClaimDue(ctx, "ws-test", 10, time.Now())
		require.NoError(t, err)
		require.Len(t, claimed, 1)
		assert.Equal(t, in.TriggerID, claimed[0].Job.ID)
		assert.Equal(t, models.TriggerStatusQueued, claimed[0].PriorStatus)
		assert.Equal(t, models.TriggerStatusTriggering, string(claimed[0].Job.Status))

		// Already claimed; a second sweep finds nothing.
		again, err := svc.ClaimDue(ctx, "ws-test", 10, time.Now())
		require.NoError(t, err)
		assert.Empty(t, again)
	})

	t.Run("transition records an attempt row", func(t *testing.T) {
		attemptNo, err := svc.Transition(ctx, in.TriggerID,
			[]string{models.TriggerStatusTriggering}, models.TriggerStatusCallbackPending,
			nil, AttemptRecord{Result: "delivered"})
		require.NoError(t, err)
		assert.Equal(t, 1, attemptNo)

		attempts, err := svc.AttemptsForJob(ctx, in.TriggerID)
		require.NoError(t, err)
		require.Len(t, attempts, 1)
		assert.Equal(t, 1, attempts[0].AttemptNo)
		assert.Equal(t, "delivered", attempts[0].AttemptResult)
	})

	t.Run("transition from the wrong status conflicts", func(t *testing.T) {
		_, err := svc.Transition(ctx, in.TriggerID,
			[]string{models.TriggerStatusTriggering}, models.TriggerStatusFailed,
			nil, AttemptRecord{Result: "error", ErrorCode: "RUNTIME_DELIVERY_FAILED"})
		assert.True(t, IsCode(err, CodeConflict), "got %v", err)
	})

	t.Run("next_retry_at defers the claim", func(t *testing.T) {
		deferred := triggerInput(BuildTriggerID("req-deferred"), th.ThreadID)
		deferred.Reason = "retry_later"
		_, _, err := svc.Ingest(ctx, deferred)
		require.NoError(t, err)

		future := time.Now().Add(time.Hour)
		_, err = svc.Transition(ctx, deferred.TriggerID,
			[]string{models.TriggerStatusQueued}, models.TriggerStatusDeferred,
			&future, AttemptRecord{Result: "deferred"})
		require.NoError(t, err)

		claimed, err := svc.ClaimDue(ctx, "ws-test", 10, time.Now())
		require.NoError(t, err)
		assert.Empty(t, claimed)

		claimed, err = svc.ClaimDue(ctx, "ws-test", 10, future.Add(time.Minute))
		require.NoError(t, err)
		require.Len(t, claimed, 1)
		assert.Equal(t, deferred.TriggerID, claimed[0].Job.ID)
	})
}

func TestTriggerService_PendingAndCallbacks(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	threads := NewThreadService(client)
	svc := NewTriggerService(client)
	ctx := context.Background()

	th := newTestThread(t, threads, "agent-a", "agent-b")
	in := triggerInput(BuildTriggerID("req-pending"), th.ThreadID)
	_, _, err := svc.Ingest(ctx, in)
	require.NoError(t, err)

	t.Run("pending exists for non-terminal jobs only", func(t *testing.T) {
		exists, err := svc.PendingExists(ctx, "ws-test", th.ThreadID, "agent-b", in.Reason)
		require.NoError(t, err)
		assert.True(t, exists)

		n, err := svc.PendingCount(ctx, "ws-test")
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		_, err = svc.Transition(ctx, in.TriggerID,
			[]string{models.TriggerStatusQueued}, models.TriggerStatusFailed,
			nil, AttemptRecord{Result: "error", ErrorCode: "MAX_RETRIES_EXCEEDED"})
		require.NoError(t, err)

		exists, err = svc.PendingExists(ctx, "ws-test", th.ThreadID, "agent-b", in.Reason)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("callback attempt count ignores delivery attempts", func(t *testing.T) {
		cb := triggerInput(BuildTriggerID("req-callback"), th.ThreadID)
		cb.Reason = "callback_case"
		_, _, err := svc.Ingest(ctx, cb)
		require.NoError(t, err)

		_, err = svc.Transition(ctx, cb.TriggerID,
			[]string{models.TriggerStatusQueued}, models.TriggerStatusCallbackPending,
			nil, AttemptRecord{Result: "delivered"})
		require.NoError(t, err)
		_, err = svc.Transition(ctx, cb.TriggerID,
			[]string{models.TriggerStatusCallbackPending}, models.TriggerStatusCallbackRetry,
			nil, AttemptRecord{Result: "callback_retry", ErrorCode: "CALLBACK_POST_FAILED"})
		require.NoError(t, err)

		n, err := svc.CallbackAttemptCount(ctx, cb.TriggerID)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestTriggerService_ReclaimStaleLeases(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	threads := NewThreadService(client)
	svc := NewTriggerService(client)
	ctx := context.Background()

	th := newTestThread(t, threads, "agent-a", "agent-b")

	stuck := triggerInput(BuildTriggerID("req-stuck"), th.ThreadID)
	_, _, err := svc.Ingest(ctx, stuck)
	require.NoError(t, err)
	claimed, err := svc.ClaimDue(ctx, "ws-test", 10, time.Now())
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	// A fresh lease is left alone.
	n, err := svc.ReclaimStaleLeases(ctx, "ws-test", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// An expired lease goes back to queued; no delivered attempt exists.
	n, err = svc.ReclaimStaleLeases(ctx, "ws-test", -time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	job, err := svc.Get(ctx, stuck.TriggerID)
	require.NoError(t, err)
	assert.Equal(t, models.TriggerStatusQueued, string(job.Status))
}
