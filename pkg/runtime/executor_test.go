package runtime

import (
	"context"
	"testing"
	"time"

	"github.com/agentfabric/bridge/ent"
	"github.com/agentfabric/bridge/pkg/config"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/pkg/services"
	"github.com/agentfabric/bridge/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adapterFunc func(ctx context.Context, in DeliverInput) (DeliverResult, error)

func (f adapterFunc) Deliver(ctx context.Context, in DeliverInput) (DeliverResult, error) {
	return f(ctx, in)
}

func heartbeat(t *testing.T, registry *services.RegistryService, agentID string, req models.HeartbeatRequest) {
	t.Helper()
	_, err := registry.Heartbeat(context.Background(), agentID, "ws-test", req)
	require.NoError(t, err)
}

func deliveryJob(agentID string) *ent.TriggerJob {
	return &ent.TriggerJob{
		ID:            "trg_exec_test",
		WorkspaceID:   "ws-test",
		ThreadID:      "th_exec_test",
		TargetAgentID: agentID,
		Reason:        "manual_trigger",
		Prompt:        "you have new messages",
		CreatedAt:     time.Now(),
	}
}

func execConfig() *config.RuntimeExecConfig {
	return &config.RuntimeExecConfig{
		QuietWindow:     time.Minute,
		Recheck:         5 * time.Second,
		MaxDefer:        time.Minute,
		MaxPayloadBytes: 8192,
	}
}

func TestDeliveryExecutor_Validation(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	registry := services.NewRegistryService(client, 12*time.Hour)
	ctx := context.Background()

	adapterCalls := 0
	adapter := adapterFunc(func(context.Context, DeliverInput) (DeliverResult, error) {
		adapterCalls++
		return DeliverResult{Delivered: true}, nil
	})
	exec := NewDeliveryExecutor(adapter, registry, execConfig())

	t.Run("no session registered", func(t *testing.T) {
		out, err := exec.Execute(ctx, deliveryJob("agent-ghost"))
		require.NoError(t, err)
		assert.Equal(t, ResultFailed, out.Result)
		assert.Equal(t, ErrCodeRuntimeNotFound, out.ErrorCode)
	})

	t.Run("target session superseded", func(t *testing.T) {
		heartbeat(t, registry, "agent-b", models.HeartbeatRequest{
			SessionID:      "sess-b2",
			Runtime:        "tmux:main.1",
			ManagementMode: models.ManagementModeManaged,
			Status:         models.SessionStatusActive,
		})
		job := deliveryJob("agent-b")
		old := "sess-b1"
		job.TargetSessionID = &old

		out, err := exec.Execute(ctx, job)
		require.NoError(t, err)
		assert.Equal(t, ResultFailed, out.Result)
		assert.Equal(t, ErrCodeRuntimeSessionMismatch, out.ErrorCode)
		assert.Equal(t, "sess-b1", out.Details["expected_session_id"])
		assert.Equal(t, "sess-b2", out.Details["current_session_id"])
	})

	t.Run("unmanaged session", func(t *testing.T) {
		heartbeat(t, registry, "agent-u", models.HeartbeatRequest{
			SessionID:      "sess-u",
			Runtime:        "tmux:main.2",
			ManagementMode: models.ManagementModeUnmanaged,
			Status:         models.SessionStatusActive,
		})
		out, err := exec.Execute(ctx, deliveryJob("agent-u"))
		require.NoError(t, err)
		assert.Equal(t, ResultFailed, out.Result)
		assert.Equal(t, ErrCodeRuntimeUnmanaged, out.ErrorCode)
	})

	t.Run("offline session retries", func(t *testing.T) {
		heartbeat(t, registry, "agent-o", models.HeartbeatRequest{
			SessionID:      "sess-o",
			Runtime:        "tmux:main.3",
			ManagementMode: models.ManagementModeManaged,
			Status:         models.SessionStatusOffline,
		})
		out, err := exec.Execute(ctx, deliveryJob("agent-o"))
		require.NoError(t, err)
		assert.Equal(t, ResultTimeout, out.Result)
		assert.Equal(t, ErrCodeRuntimeOffline, out.ErrorCode)
		assert.True(t, out.Retryable)
	})

	// None of the validation failures reach the adapter.
	assert.Zero(t, adapterCalls)
}

func TestDeliveryExecutor_CollisionGate(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	registry := services.NewRegistryService(client, 12*time.Hour)
	ctx := context.Background()

	heartbeat(t, registry, "agent-b", models.HeartbeatRequest{
		SessionID:      "sess-b",
		Runtime:        "tmux:main.1",
		ManagementMode: models.ManagementModeManaged,
		Status:         models.SessionStatusActive,
	})

	adapterCalls := 0
	busy := true
	adapter := adapterFunc(func(_ context.Context, in DeliverInput) (DeliverResult, error) {
		adapterCalls++
		if busy && !in.ForceOverride {
			return DeliverResult{ErrorCode: ErrCodeOperatorBusy}, nil
		}
		return DeliverResult{Delivered: true, Details: map[string]string{"pane": "main.1"}}, nil
	})
	exec := NewDeliveryExecutor(adapter, registry, execConfig())

	t.Run("busy operator defers with recheck", func(t *testing.T) {
		out, err := exec.Execute(ctx, deliveryJob("agent-b"))
		require.NoError(t, err)
		assert.Equal(t, ResultDeferred, out.Result)
		assert.Equal(t, ErrCodeOperatorBusy, out.ErrorCode)
		assert.True(t, out.Retryable)
		assert.Equal(t, 5*time.Second, out.RetryAfter)
		assert.Equal(t, 1, adapterCalls)
	})

	t.Run("gate holds within quiet window without probing", func(t *testing.T) {
		out, err := exec.Execute(ctx, deliveryJob("agent-b"))
		require.NoError(t, err)
		assert.Equal(t, ResultDeferred, out.Result)
		assert.Equal(t, ErrCodeOperatorBusy, out.ErrorCode)
		assert.NotEmpty(t, out.Details["busy_since"])
		assert.Equal(t, 1, adapterCalls)
	})

	t.Run("defer escalates past the max window", func(t *testing.T) {
		job := deliveryJob("agent-b")
		job.CreatedAt = time.Now().Add(-2 * time.Minute)

		out, err := exec.Execute(ctx, job)
		require.NoError(t, err)
		assert.Equal(t, ResultTimeout, out.Result)
		assert.Equal(t, ErrCodeDeferTimeout, out.ErrorCode)
		assert.False(t, out.Retryable)
	})

	t.Run("override bypasses the gate and is audited", func(t *testing.T) {
		job := deliveryJob("agent-b")
		job.Reason = "human_override: operator asked for immediate delivery"

		out, err := exec.Execute(ctx, job)
		require.NoError(t, err)
		assert.Equal(t, ResultDelivered, out.Result)
		assert.Equal(t, 2, adapterCalls)

		audit, ok := out.Details["force_override_audit"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, true, audit["requested"])
		assert.Equal(t, true, audit["applied"])
		assert.Equal(t, models.ReasonPrefixHumanOverride, audit["reason_prefix"])
		assert.Equal(t, "bypassed", audit["collision_gate"])
	})

	t.Run("delivery clears the busy marker", func(t *testing.T) {
		busy = false
		out, err := exec.Execute(ctx, deliveryJob("agent-b"))
		require.NoError(t, err)
		assert.Equal(t, ResultDelivered, out.Result)
		assert.Equal(t, "main.1", out.Details["pane"])
		assert.Equal(t, 3, adapterCalls)
	})
}
