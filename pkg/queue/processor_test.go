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

type executorFunc func(ctx context.Context, job *ent.TriggerJob) (runtime.Outcome, error)

func (f executorFunc) Execute(ctx context.Context, job *ent.TriggerJob) (runtime.Outcome, error) {
	return f(ctx, job)
}

type fallbackFunc func(ctx context.Context, job *ent.TriggerJob) (FallbackOutcome, error)

func (f fallbackFunc) Run(ctx context.Context, job *ent.TriggerJob) (FallbackOutcome, error) {
	return f(ctx, job)
}

type callbackFunc func(ctx context.Context, job *ent.TriggerJob, eventType string) error

func (f callbackFunc) Send(ctx context.Context, job *ent.TriggerJob, eventType string) error {
	return f(ctx, job, eventType)
}

type processorEnv struct {
	client   *ent.Client
	threads  *services.ThreadService
	triggers *services.TriggerService
	threadID string
}

func newProcessorEnv(t *testing.T) *processorEnv {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	threads := services.NewThreadService(client)
	triggers := services.NewTriggerService(client)

	th, err := threads.CreateThread(context.Background(), models.CreateThreadRequest{
		WorkspaceID:  "ws-test",
		Title:        "rollout check",
		Type:         models.ThreadTypeConversation,
		Participants: []string{"agent-a", "agent-b"},
		CreatedBy:    "coordinator-1",
	})
	require.NoError(t, err)

	return &processorEnv{client: client, threads: threads, triggers: triggers, threadID: th.ThreadID}
}

func (e *processorEnv) enqueue(t *testing.T, seed, reason string) string {
	t.Helper()
	id := services.BuildTriggerID(seed)
	_, _, err := e.triggers.Ingest(context.Background(), services.IngestInput{
		TriggerID:     id,
		ThreadID:      e.threadID,
		WorkspaceID:   "ws-test",
		TargetAgentID: "agent-b",
		Reason:        reason,
		Prompt:        "you have new messages",
		InitialStatus: models.TriggerStatusQueued,
		MaxRetries:    2,
	})
	require.NoError(t, err)
	return id
}

func (e *processorEnv) jobStatus(t *testing.T, triggerID string) string {
	t.Helper()
	job, err := e.triggers.Get(context.Background(), triggerID)
	require.NoError(t, err)
	return string(job.Status)
}

func (e *processorEnv) lastAttempt(t *testing.T, triggerID string) *ent.TriggerAttempt {
	t.Helper()
	attempts, err := e.triggers.AttemptsForJob(context.Background(), triggerID)
	require.NoError(t, err)
	require.NotEmpty(t, attempts)
	return attempts[len(attempts)-1]
}

func TestProcessor_RateLimit(t *testing.T) {
	env := newProcessorEnv(t)
	ctx := context.Background()

	cfg := config.DefaultTriggerConfig()
	cfg.RateLimitPerMinute = 1

	delivered := executorFunc(func(context.Context, *ent.TriggerJob) (runtime.Outcome, error) {
		return runtime.Outcome{Result: runtime.ResultDelivered}, nil
	})
	p := NewProcessor("ws-test", cfg, env.triggers, env.threads, delivered, nil, nil)

	first := env.enqueue(t, "rate-1", "manual_trigger")
	second := env.enqueue(t, "rate-2", "manual_trigger_2")

	processed, err := p.Tick(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, processed)

	// One of the pair executes, the overage is pushed back.
	statuses := []string{env.jobStatus(t, first), env.jobStatus(t, second)}
	assert.ElementsMatch(t, []string{models.TriggerStatusCallbackPending, models.TriggerStatusDeferred}, statuses)

	deferredID := first
	if env.jobStatus(t, second) == models.TriggerStatusDeferred {
		deferredID = second
	}

	att := env.lastAttempt(t, deferredID)
	assert.Equal(t, runtime.ResultDeferred, att.AttemptResult)
	require.NotNil(t, att.ErrorCode)
	assert.Equal(t, ErrCodeRateLimited, *att.ErrorCode)

	job, err := env.triggers.Get(ctx, deferredID)
	require.NoError(t, err)
	require.NotNil(t, job.NextRetryAt)
	assert.WithinDuration(t, time.Now().Add(60*time.Second), *job.NextRetryAt, 15*time.Second)
}

func TestProcessor_LoopGuardAutoBlock(t *testing.T) {
	env := newProcessorEnv(t)
	ctx := context.Background()

	cfg := config.DefaultTriggerConfig()
	cfg.LoopMaxTurns = 1

	failing := executorFunc(func(context.Context, *ent.TriggerJob) (runtime.Outcome, error) {
		return runtime.Outcome{Result: runtime.ResultFailed, ErrorCode: "SAME_FINDING"}, nil
	})
	fallbackCalls := 0
	fallback := fallbackFunc(func(context.Context, *ent.TriggerJob) (FallbackOutcome, error) {
		fallbackCalls++
		return FallbackOutcome{Kind: FallbackSpawned}, nil
	})
	p := NewProcessor("ws-test", cfg, env.triggers, env.threads, failing, fallback, nil)

	triggerID := env.enqueue(t, "loop-1", "manual_trigger")

	// First pass runs the executor: the failure routes the job to the
	// fallback chain and leaves a SAME_FINDING attempt behind.
	_, err := p.Tick(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, models.TriggerStatusFallbackSpawn, env.jobStatus(t, triggerID))

	// Second pass sees the repeating finding before dispatching.
	_, err = p.Tick(ctx, 10)
	require.NoError(t, err)

	assert.Equal(t, models.TriggerStatusFailed, env.jobStatus(t, triggerID))
	assert.Zero(t, fallbackCalls)

	th, err := env.threads.GetThread(ctx, env.threadID)
	require.NoError(t, err)
	assert.Equal(t, models.ThreadStatusBlocked, th.Status)

	att := env.lastAttempt(t, triggerID)
	require.NotNil(t, att.ErrorCode)
	assert.Equal(t, ErrCodeThreadAutoBlocked, *att.ErrorCode)

	prior, ok := att.Details["prior_outcome"].(map[string]interface{})
	require.True(t, ok, "prior_outcome should be an object, got %T", att.Details["prior_outcome"])
	assert.Equal(t, "SAME_FINDING", prior["error_code"])
	assert.Equal(t, runtime.ResultFailed, prior["result"])
}

func TestProcessor_FallbackAndCallbackPaths(t *testing.T) {
	env := newProcessorEnv(t)
	ctx := context.Background()

	cfg := config.DefaultTriggerConfig()
	executor := executorFunc(func(context.Context, *ent.TriggerJob) (runtime.Outcome, error) {
		return runtime.Outcome{Result: runtime.ResultFailed, ErrorCode: "RUNTIME_NOT_FOUND"}, nil
	})
	fallback := fallbackFunc(func(context.Context, *ent.TriggerJob) (FallbackOutcome, error) {
		return FallbackOutcome{Kind: FallbackSpawned}, nil
	})
	var sentEvents []string
	callback := callbackFunc(func(_ context.Context, _ *ent.TriggerJob, eventType string) error {
		sentEvents = append(sentEvents, eventType)
		return nil
	})
	p := NewProcessor("ws-test", cfg, env.triggers, env.threads, executor, fallback, callback)

	triggerID := env.enqueue(t, "chain-1", "manual_trigger")

	// failed delivery -> fallback_spawn
	_, err := p.Tick(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, models.TriggerStatusFallbackSpawn, env.jobStatus(t, triggerID))

	// fallback spawn -> callback_pending
	_, err = p.Tick(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, models.TriggerStatusCallbackPending, env.jobStatus(t, triggerID))

	// callback delivered -> terminal
	_, err = p.Tick(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, models.TriggerStatusCallbackDelivered, env.jobStatus(t, triggerID))
	assert.Equal(t, []string{EventTriggerCompleted}, sentEvents)

	// Nothing left to claim.
	_, err = p.Tick(ctx, 10)
	assert.ErrorIs(t, err, ErrNoJobsDue)
}
