package queue

import (
	"context"
	"testing"
	"time"

	"github.com/agentfabric/bridge/ent"
	"github.com/agentfabric/bridge/ent/fallbackrun"
	"github.com/agentfabric/bridge/pkg/config"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/pkg/runtime"
	"github.com/agentfabric/bridge/pkg/services"
	"github.com/agentfabric/bridge/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLauncher struct {
	resumeOK    bool
	resumeCode  string
	resumeCalls int
	spawn       runtime.SpawnResult
	spawnCalls  int
	lastPrompt  string
}

func (l *stubLauncher) Resume(_ context.Context, _, _, _, _ string) (bool, string, error) {
	l.resumeCalls++
	return l.resumeOK, l.resumeCode, nil
}

func (l *stubLauncher) Spawn(_ context.Context, _, _, prompt string, _ bool) (runtime.SpawnResult, error) {
	l.spawnCalls++
	l.lastPrompt = prompt
	return l.spawn, nil
}

type fallbackEnv struct {
	client   *ent.Client
	registry *services.RegistryService
	threads  *services.ThreadService
	threadID string
}

func newFallbackEnv(t *testing.T) *fallbackEnv {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	threads := services.NewThreadService(client)
	registry := services.NewRegistryService(client, 12*time.Hour)

	th, err := threads.CreateThread(context.Background(), models.CreateThreadRequest{
		WorkspaceID:  "ws-test",
		Title:        "release readiness",
		Type:         models.ThreadTypeConversation,
		Participants: []string{"agent-a", "agent-b"},
		CreatedBy:    "coordinator-1",
	})
	require.NoError(t, err)

	_, err = registry.Heartbeat(context.Background(), "agent-b", "ws-test", models.HeartbeatRequest{
		SessionID:      "sess-b",
		Runtime:        "tmux:main.1",
		ManagementMode: models.ManagementModeManaged,
		Resumable:      true,
		Status:         models.SessionStatusIdle,
	})
	require.NoError(t, err)

	return &fallbackEnv{client: client, registry: registry, threads: threads, threadID: th.ThreadID}
}

func (e *fallbackEnv) executor(launcher runtime.Launcher, cfg *config.FallbackConfig) *FallbackExecutor {
	return NewFallbackExecutor(e.client, launcher, e.registry, e.threads, cfg)
}

func (e *fallbackEnv) job(triggerID string, sessionID string) *ent.TriggerJob {
	j := &ent.TriggerJob{
		ID:            triggerID,
		WorkspaceID:   "ws-test",
		ThreadID:      e.threadID,
		TargetAgentID: "agent-b",
		Reason:        "manual_trigger",
		Prompt:        "you have new messages",
		CreatedAt:     time.Now(),
	}
	if sessionID != "" {
		j.TargetSessionID = &sessionID
	}
	return j
}

func tightFallbackConfig() *config.FallbackConfig {
	return &config.FallbackConfig{
		ResumeMaxAttempts:  1,
		CrashLoopThreshold: 1,
		CrashLoopWindow:    15 * time.Minute,
		Deadline:           10 * time.Minute,
		Grace:              5 * time.Second,
		OrphanGrace:        30 * time.Second,
	}
}

func TestFallbackExecutor_ResumeSucceeds(t *testing.T) {
	env := newFallbackEnv(t)
	launcher := &stubLauncher{resumeOK: true}
	exec := env.executor(launcher, tightFallbackConfig())

	out, err := exec.Run(context.Background(), env.job("trg_fb_resume", "sess-b"))
	require.NoError(t, err)
	assert.Equal(t, FallbackResumeSucceeded, out.Kind)
	assert.Equal(t, "sess-b", out.Details["session_id"])
	assert.Equal(t, 1, launcher.resumeCalls)
	assert.Zero(t, launcher.spawnCalls)
}

func TestFallbackExecutor_CrashLoopGuard(t *testing.T) {
	env := newFallbackEnv(t)
	launcher := &stubLauncher{
		resumeOK:   false,
		resumeCode: "RESUME_EXIT_NONZERO",
		spawn:      runtime.SpawnResult{OK: true},
	}
	exec := env.executor(launcher, tightFallbackConfig())
	ctx := context.Background()

	out, err := exec.Run(ctx, env.job("trg_fb_loop_1", "sess-b"))
	require.NoError(t, err)
	assert.Equal(t, FallbackSpawned, out.Kind)
	assert.Equal(t, "resume_attempts_exhausted", out.Details["resume_skipped"])
	assert.Equal(t, 1, launcher.resumeCalls)
	assert.Equal(t, 1, launcher.spawnCalls)

	// The recorded failure trips the crash-loop guard, so the next run goes
	// straight to spawn without touching resume.
	out, err = exec.Run(ctx, env.job("trg_fb_loop_2", "sess-b"))
	require.NoError(t, err)
	assert.Equal(t, FallbackSpawned, out.Kind)
	assert.Equal(t, "crash_loop_guard", out.Details["resume_skipped"])
	assert.Equal(t, 1, launcher.resumeCalls)
	assert.Equal(t, 2, launcher.spawnCalls)
}

func TestFallbackExecutor_DetachedSpawnRecordsRun(t *testing.T) {
	env := newFallbackEnv(t)
	launcher := &stubLauncher{spawn: runtime.SpawnResult{OK: true, PID: 4242}}
	exec := env.executor(launcher, tightFallbackConfig())
	ctx := context.Background()

	job := env.job("trg_fb_detached", "")
	out, err := exec.Run(ctx, job)
	require.NoError(t, err)
	assert.Equal(t, FallbackRunning, out.Kind)
	assert.Equal(t, 4242, out.PID)
	assert.Equal(t, "no_target_session", out.Details["resume_skipped"])
	assert.Contains(t, launcher.lastPrompt, job.Prompt)

	run, err := env.client.FallbackRun.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 4242, run.Pid)
	assert.Equal(t, fallbackrun.StatusRunning, run.Status)
	assert.Equal(t, fallbackrun.LaunchModeSpawn, run.LaunchMode)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), run.DeadlineAt, time.Minute)
}

func TestFallbackExecutor_SpawnFailure(t *testing.T) {
	env := newFallbackEnv(t)
	launcher := &stubLauncher{spawn: runtime.SpawnResult{OK: false, ErrorCode: "SPAWN_EXEC_ERROR"}}
	exec := env.executor(launcher, tightFallbackConfig())

	out, err := exec.Run(context.Background(), env.job("trg_fb_spawnfail", ""))
	require.NoError(t, err)
	assert.Equal(t, FallbackResumeFailed, out.Kind)
	assert.Equal(t, ErrCodeFallbackSpawnFail, out.ErrorCode)
	assert.Equal(t, "SPAWN_EXEC_ERROR", out.Details["launch_error"])
	assert.Equal(t, "no_target_session", out.Details["resume_skipped"])
}
