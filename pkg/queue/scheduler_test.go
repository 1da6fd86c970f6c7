package queue

import (
	"context"
	"testing"
	"time"

	"github.com/agentfabric/bridge/ent"
	"github.com/agentfabric/bridge/pkg/config"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/pkg/runtime"
	"github.com/agentfabric/bridge/pkg/services"
	"github.com/agentfabric/bridge/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type schedulerEnv struct {
	client   *ent.Client
	threads  *services.ThreadService
	messages *services.MessageService
	registry *services.RegistryService
	triggers *services.TriggerService
}

func newSchedulerEnv(t *testing.T) *schedulerEnv {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	return &schedulerEnv{
		client:   client,
		threads:  services.NewThreadService(client),
		messages: services.NewMessageService(client, 3),
		registry: services.NewRegistryService(client, 12*time.Hour),
		triggers: services.NewTriggerService(client),
	}
}

func (e *schedulerEnv) scheduler(cfg *config.SchedulerConfig) *UnreadScheduler {
	return NewUnreadScheduler(e.client, "ws-test", cfg, 2, e.threads, e.messages, e.registry, e.triggers)
}

func (e *schedulerEnv) createThread(t *testing.T, title string, participants ...string) string {
	t.Helper()
	th, err := e.threads.CreateThread(context.Background(), models.CreateThreadRequest{
		WorkspaceID:  "ws-test",
		Title:        title,
		Type:         models.ThreadTypeConversation,
		Participants: participants,
		CreatedBy:    "coordinator-1",
	})
	require.NoError(t, err)
	return th.ThreadID
}

func (e *schedulerEnv) post(t *testing.T, threadID, sender, kind string, metadata map[string]interface{}) {
	t.Helper()
	_, err := e.messages.PostMessage(context.Background(), models.PostMessageRequest{
		ThreadID:      threadID,
		SchemaVersion: 1,
		Kind:          kind,
		Body:          "status update",
		Metadata:      metadata,
		SenderAgentID: sender,
	})
	require.NoError(t, err)
}

func (e *schedulerEnv) autoJobID(threadID, agentID string, seq int) string {
	return services.BuildTriggerID(services.AutoTriggerSeed("ws-test", threadID, agentID, seq))
}

func (e *schedulerEnv) jobExists(t *testing.T, triggerID string) bool {
	t.Helper()
	_, err := e.triggers.Get(context.Background(), triggerID)
	if err != nil {
		require.True(t, services.IsCode(err, services.CodeNotFound), "unexpected error: %v", err)
		return false
	}
	return true
}

func relaxedSchedulerConfig() *config.SchedulerConfig {
	return &config.SchedulerConfig{
		MaxTriggersPerWindow:    3,
		Window:                  5 * time.Minute,
		MinInterval:             0,
		BreakerBacklogThreshold: 50,
		BreakerCooldown:         time.Minute,
	}
}

func TestUnreadScheduler(t *testing.T) {
	env := newSchedulerEnv(t)
	ctx := context.Background()

	thA := env.createThread(t, "deploy review", "agent-a", "agent-b")
	env.post(t, thA, "agent-a", models.MessageKindChat, nil)

	t.Run("schedules dormant unread participant", func(t *testing.T) {
		n, err := env.scheduler(relaxedSchedulerConfig()).Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		job, err := env.triggers.Get(ctx, env.autoJobID(thA, "agent-b", 1))
		require.NoError(t, err)
		assert.Equal(t, models.ReasonNewUnreadDormantParticipant, job.Reason)
		// No session registered: the job routes straight to the fallback chain.
		assert.Equal(t, models.TriggerStatusFallbackSpawn, string(job.Status))
	})

	t.Run("pending job suppresses rescheduling", func(t *testing.T) {
		n, err := env.scheduler(relaxedSchedulerConfig()).Tick(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("live session is not dormant", func(t *testing.T) {
		thB := env.createThread(t, "incident follow-up", "agent-a", "agent-c")
		_, err := env.registry.Heartbeat(ctx, "agent-c", "ws-test", models.HeartbeatRequest{
			SessionID:      "sess-c",
			Runtime:        "tmux:main.1",
			ManagementMode: models.ManagementModeManaged,
			Resumable:      true,
			Status:         models.SessionStatusActive,
		})
		require.NoError(t, err)
		env.post(t, thB, "agent-a", models.MessageKindChat, nil)

		n, err := env.scheduler(relaxedSchedulerConfig()).Tick(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.False(t, env.jobExists(t, env.autoJobID(thB, "agent-c", 1)))
	})

	t.Run("suppressed event messages are not chased", func(t *testing.T) {
		thC := env.createThread(t, "trigger echo", "agent-a", "agent-d")
		env.post(t, thC, "agent-a", models.MessageKindEvent, map[string]interface{}{
			models.MetadataEventType:        EventTriggerCompleted,
			models.MetadataSuppressAutoTrig: true,
		})

		n, err := env.scheduler(relaxedSchedulerConfig()).Tick(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.False(t, env.jobExists(t, env.autoJobID(thC, "agent-d", 1)))
	})

	t.Run("min interval budget holds after the last auto trigger", func(t *testing.T) {
		// Finish the outstanding job so the pending guard no longer applies,
		// then raise fresh unread state.
		_, err := env.triggers.Transition(ctx, env.autoJobID(thA, "agent-b", 1),
			[]string{models.TriggerStatusFallbackSpawn},
			models.TriggerStatusFailed, nil,
			services.AttemptRecord{Result: runtime.ResultFailed, ErrorCode: ErrCodeFallbackSpawnFail})
		require.NoError(t, err)
		env.post(t, thA, "agent-a", models.MessageKindChat, nil)

		cfg := relaxedSchedulerConfig()
		cfg.MinInterval = 10 * time.Minute
		n, err := env.scheduler(cfg).Tick(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.False(t, env.jobExists(t, env.autoJobID(thA, "agent-b", 2)))
	})

	t.Run("window budget exhausted", func(t *testing.T) {
		cfg := relaxedSchedulerConfig()
		cfg.MaxTriggersPerWindow = 1
		n, err := env.scheduler(cfg).Tick(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.False(t, env.jobExists(t, env.autoJobID(thA, "agent-b", 2)))
	})

	t.Run("backlog breaker suppresses scheduling", func(t *testing.T) {
		_, _, err := env.triggers.Ingest(ctx, services.IngestInput{
			TriggerID:     services.BuildTriggerID("backlog-filler"),
			ThreadID:      thA,
			WorkspaceID:   "ws-test",
			TargetAgentID: "agent-a",
			Reason:        "manual_trigger",
			Prompt:        "check the queue",
			InitialStatus: models.TriggerStatusQueued,
			MaxRetries:    2,
		})
		require.NoError(t, err)

		cfg := relaxedSchedulerConfig()
		cfg.Window = time.Millisecond
		cfg.BreakerBacklogThreshold = 1
		n, err := env.scheduler(cfg).Tick(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.False(t, env.jobExists(t, env.autoJobID(thA, "agent-b", 2)))

		// Same pass with headroom schedules the candidate, so the earlier
		// suppression came from the breaker.
		cfg2 := relaxedSchedulerConfig()
		cfg2.Window = time.Millisecond
		n, err = env.scheduler(cfg2).Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.True(t, env.jobExists(t, env.autoJobID(thA, "agent-b", 2)))
	})
}
