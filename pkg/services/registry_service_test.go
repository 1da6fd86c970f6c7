package services

import (
	"context"
	"testing"
	"time"

	"github.com/agentfabric/bridge/ent/sessionrecord"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryService_Heartbeat(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewRegistryService(client, 12*time.Hour)
	ctx := context.Background()

	req := models.HeartbeatRequest{
		SessionID:      "sess-1",
		Runtime:        "tmux:main.0",
		ManagementMode: models.ManagementModeManaged,
		Resumable:      true,
		Status:         models.SessionStatusActive,
	}

	t.Run("first heartbeat inserts", func(t *testing.T) {
		resp, err := svc.Heartbeat(ctx, "agent-a", "ws-test", req)
		require.NoError(t, err)
		assert.True(t, resp.OK)

		session, err := svc.GetSession(ctx, "ws-test", "agent-a")
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "sess-1", session.SessionID)
		assert.Equal(t, models.SessionStatusActive, session.Status)
	})

	t.Run("later heartbeat updates", func(t *testing.T) {
		updated := req
		updated.SessionID = "sess-2"
		updated.Status = models.SessionStatusIdle

		_, err := svc.Heartbeat(ctx, "agent-a", "ws-test", updated)
		require.NoError(t, err)

		session, err := svc.GetSession(ctx, "ws-test", "agent-a")
		require.NoError(t, err)
		assert.Equal(t, "sess-2", session.SessionID)
		assert.Equal(t, models.SessionStatusIdle, session.Status)
	})

	t.Run("older heartbeat loses last-writer-wins", func(t *testing.T) {
		// Push the stored heartbeat into the future; the next write must not
		// apply.
		future := time.Now().Add(time.Hour)
		_, err := client.SessionRecord.Update().
			Where(sessionrecord.AgentIDEQ("agent-a")).
			SetLastHeartbeatAt(future).
			Save(ctx)
		require.NoError(t, err)

		stale := req
		stale.SessionID = "sess-stale"
		resp, err := svc.Heartbeat(ctx, "agent-a", "ws-test", stale)
		require.NoError(t, err)
		assert.True(t, resp.OK)

		session, err := svc.GetSession(ctx, "ws-test", "agent-a")
		require.NoError(t, err)
		assert.NotEqual(t, "sess-stale", session.SessionID)
	})

	t.Run("validates fields", func(t *testing.T) {
		bad := req
		bad.ManagementMode = "supervised"
		_, err := svc.Heartbeat(ctx, "agent-b", "ws-test", bad)
		assert.True(t, IsCode(err, CodeInvalidArgument))
	})

	t.Run("unknown agent has no session", func(t *testing.T) {
		session, err := svc.GetSession(ctx, "ws-test", "agent-nobody")
		require.NoError(t, err)
		assert.Nil(t, session)
	})
}

func TestRegistryService_ReconcileOffline(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewRegistryService(client, time.Hour)
	ctx := context.Background()

	base := models.HeartbeatRequest{
		SessionID:      "sess-1",
		Runtime:        "tmux:main.0",
		ManagementMode: models.ManagementModeManaged,
		Status:         models.SessionStatusActive,
	}
	_, err := svc.Heartbeat(ctx, "agent-fresh", "ws-test", base)
	require.NoError(t, err)
	_, err = svc.Heartbeat(ctx, "agent-stale", "ws-test", base)
	require.NoError(t, err)

	// Age agent-stale past the staleness horizon.
	_, err = client.SessionRecord.Update().
		Where(sessionrecord.AgentIDEQ("agent-stale")).
		SetLastHeartbeatAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	checked, transitioned, err := svc.ReconcileOffline(ctx, "ws-test")
	require.NoError(t, err)
	assert.Equal(t, 2, checked)
	assert.Equal(t, 1, transitioned)

	stale, err := svc.GetSession(ctx, "ws-test", "agent-stale")
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusOffline, stale.Status)

	fresh, err := svc.GetSession(ctx, "ws-test", "agent-fresh")
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusActive, fresh.Status)

	// Second pass has nothing left to transition.
	checked, transitioned, err = svc.ReconcileOffline(ctx, "ws-test")
	require.NoError(t, err)
	assert.Equal(t, 1, checked)
	assert.Equal(t, 0, transitioned)
}

func TestSessionView_Stale(t *testing.T) {
	now := time.Now()
	view := &models.SessionView{LastHeartbeatAt: now.Add(-13 * time.Hour)}
	assert.True(t, view.Stale(now, 12*time.Hour))

	view.LastHeartbeatAt = now.Add(-11 * time.Hour)
	assert.False(t, view.Stale(now, 12*time.Hour))
}
