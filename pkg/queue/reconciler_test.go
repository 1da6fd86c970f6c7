package queue

import (
	"context"
	"testing"
	"time"

	"github.com/agentfabric/bridge/ent/fallbackrun"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/pkg/services"
	"github.com/agentfabric/bridge/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A pid far beyond pid_max, so the liveness probe always reports dead.
const deadPID = 99999999

func TestFallbackReconciler_Tick(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	triggers := services.NewTriggerService(client)
	ctx := context.Background()

	cfg := tightFallbackConfig()
	cfg.OrphanGrace = time.Millisecond
	r := NewFallbackReconciler(client, "ws-test", cfg, triggers)

	seedRun := func(t *testing.T, triggerID string, startedAt, deadlineAt time.Time) {
		t.Helper()
		_, _, err := triggers.Ingest(ctx, services.IngestInput{
			TriggerID:     triggerID,
			ThreadID:      "th_reconcile",
			WorkspaceID:   "ws-test",
			TargetAgentID: "agent-b",
			Reason:        "manual_trigger",
			Prompt:        "you have new messages",
			InitialStatus: models.TriggerStatusFallbackRunning,
			MaxRetries:    2,
		})
		require.NoError(t, err)

		_, err = client.FallbackRun.Create().
			SetID(triggerID).
			SetWorkspaceID("ws-test").
			SetPid(deadPID).
			SetLaunchMode(fallbackrun.LaunchModeSpawn).
			SetStatus(fallbackrun.StatusRunning).
			SetStartedAt(startedAt).
			SetDeadlineAt(deadlineAt).
			Save(ctx)
		require.NoError(t, err)
	}

	jobStatus := func(t *testing.T, triggerID string) string {
		t.Helper()
		job, err := triggers.Get(ctx, triggerID)
		require.NoError(t, err)
		return string(job.Status)
	}

	t.Run("dead pid past orphan grace is marked orphaned", func(t *testing.T) {
		seedRun(t, "trg_rec_orphan", time.Now().Add(-time.Minute), time.Now().Add(time.Hour))

		require.NoError(t, r.Tick(ctx))

		run, err := client.FallbackRun.Get(ctx, "trg_rec_orphan")
		require.NoError(t, err)
		assert.Equal(t, fallbackrun.StatusOrphaned, run.Status)
		require.NotNil(t, run.ErrorCode)
		assert.Equal(t, "PROCESS_ORPHANED", *run.ErrorCode)
		require.NotNil(t, run.EndedAt)

		// The job still rolls forward so the completion callback fires.
		assert.Equal(t, models.TriggerStatusCallbackPending, jobStatus(t, "trg_rec_orphan"))
		attempts, err := triggers.AttemptsForJob(ctx, "trg_rec_orphan")
		require.NoError(t, err)
		require.Len(t, attempts, 1)
		require.NotNil(t, attempts[0].ErrorCode)
		assert.Equal(t, "PROCESS_ORPHANED", *attempts[0].ErrorCode)
	})

	t.Run("overdue run is finalized with a deadline error", func(t *testing.T) {
		seedRun(t, "trg_rec_overdue", time.Now().Add(-time.Hour), time.Now().Add(-time.Minute))

		require.NoError(t, r.Tick(ctx))

		run, err := client.FallbackRun.Get(ctx, "trg_rec_overdue")
		require.NoError(t, err)
		assert.Equal(t, fallbackrun.StatusOrphaned, run.Status)
		require.NotNil(t, run.ErrorCode)
		assert.Equal(t, "FALLBACK_DEADLINE_EXCEEDED", *run.ErrorCode)
		assert.Equal(t, models.TriggerStatusCallbackPending, jobStatus(t, "trg_rec_overdue"))
	})

	t.Run("finalized runs are left alone", func(t *testing.T) {
		require.NoError(t, r.Tick(ctx))
		run, err := client.FallbackRun.Get(ctx, "trg_rec_orphan")
		require.NoError(t, err)
		assert.Equal(t, "PROCESS_ORPHANED", *run.ErrorCode)
	})
}
