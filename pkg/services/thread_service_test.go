package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestThread(t *testing.T, svc *ThreadService, participants ...string) *models.ThreadDetail {
	t.Helper()
	th, err := svc.CreateThread(context.Background(), models.CreateThreadRequest{
		WorkspaceID:  "ws-test",
		Title:        "triage db migration",
		Type:         models.ThreadTypeConversation,
		Participants: participants,
		CreatedBy:    "coordinator-1",
	})
	require.NoError(t, err)
	return th
}

func TestThreadService_CreateThread(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewThreadService(client)
	ctx := context.Background()

	t.Run("creates active thread with ordered participants", func(t *testing.T) {
		th, err := svc.CreateThread(ctx, models.CreateThreadRequest{
			WorkspaceID:  "ws-test",
			Title:        "rollout review",
			Type:         models.ThreadTypeWorkflow,
			Participants: []string{"agent-b", "agent-a", "agent-b", "agent-c"},
		})
		require.NoError(t, err)
		assert.Equal(t, models.ThreadStatusActive, th.Status)
		assert.Equal(t, []string{"agent-b", "agent-a", "agent-c"}, th.Participants)
		assert.NotEmpty(t, th.ThreadID)

		got, err := svc.GetThread(ctx, th.ThreadID)
		require.NoError(t, err)
		assert.Equal(t, th.Participants, got.Participants)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name string
			req  models.CreateThreadRequest
		}{
			{name: "missing workspace", req: models.CreateThreadRequest{Title: "t", Type: models.ThreadTypeConversation}},
			{name: "missing title", req: models.CreateThreadRequest{WorkspaceID: "ws", Type: models.ThreadTypeConversation}},
			{name: "bad type", req: models.CreateThreadRequest{WorkspaceID: "ws", Title: "t", Type: "broadcast"}},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.CreateThread(ctx, tc.req)
				assert.True(t, IsCode(err, CodeInvalidArgument), "got %v", err)
			})
		}
	})

	t.Run("unknown thread is NOT_FOUND", func(t *testing.T) {
		_, err := svc.GetThread(ctx, "th_missing")
		assert.True(t, IsCode(err, CodeNotFound))
	})
}

func TestThreadService_UpdateThreadStatus(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewThreadService(client)
	ctx := context.Background()

	coordinator := Actor{AgentID: "coordinator-1", Role: "coordinator"}
	participant := Actor{AgentID: "agent-a", Role: "participant"}

	t.Run("walks legal edges", func(t *testing.T) {
		th := newTestThread(t, svc, "agent-a")

		got, err := svc.UpdateThreadStatus(ctx, th.ThreadID, models.ThreadStatusBlocked, participant)
		require.NoError(t, err)
		assert.Equal(t, models.ThreadStatusBlocked, got.Status)

		got, err = svc.UpdateThreadStatus(ctx, th.ThreadID, models.ThreadStatusResolved, participant)
		require.NoError(t, err)
		assert.Equal(t, models.ThreadStatusResolved, got.Status)

		got, err = svc.UpdateThreadStatus(ctx, th.ThreadID, models.ThreadStatusClosed, coordinator)
		require.NoError(t, err)
		assert.Equal(t, models.ThreadStatusClosed, got.Status)
	})

	t.Run("same status is an idempotent no-op", func(t *testing.T) {
		th := newTestThread(t, svc, "agent-a")
		got, err := svc.UpdateThreadStatus(ctx, th.ThreadID, models.ThreadStatusActive, participant)
		require.NoError(t, err)
		assert.Equal(t, models.ThreadStatusActive, got.Status)
	})

	t.Run("illegal edge fails with INVALID_THREAD_TRANSITION", func(t *testing.T) {
		th := newTestThread(t, svc, "agent-a")
		_, err := svc.UpdateThreadStatus(ctx, th.ThreadID, models.ThreadStatusClosed, coordinator)
		assert.True(t, IsCode(err, CodeInvalidThreadTransition), "got %v", err)
	})

	t.Run("closed is terminal", func(t *testing.T) {
		th := newTestThread(t, svc, "agent-a")
		_, err := svc.UpdateThreadStatus(ctx, th.ThreadID, models.ThreadStatusResolved, participant)
		require.NoError(t, err)
		_, err = svc.UpdateThreadStatus(ctx, th.ThreadID, models.ThreadStatusClosed, coordinator)
		require.NoError(t, err)

		_, err = svc.UpdateThreadStatus(ctx, th.ThreadID, models.ThreadStatusActive, coordinator)
		assert.True(t, IsCode(err, CodeInvalidThreadTransition))
	})

	t.Run("participants cannot close", func(t *testing.T) {
		th := newTestThread(t, svc, "agent-a")
		_, err := svc.UpdateThreadStatus(ctx, th.ThreadID, models.ThreadStatusResolved, participant)
		require.NoError(t, err)

		_, err = svc.UpdateThreadStatus(ctx, th.ThreadID, models.ThreadStatusClosed, participant)
		assert.True(t, IsCode(err, CodeForbidden))
	})

	t.Run("leaving blocked requires override prefix", func(t *testing.T) {
		th := newTestThread(t, svc, "agent-a")
		_, err := svc.UpdateThreadStatus(ctx, th.ThreadID, models.ThreadStatusBlocked, participant)
		require.NoError(t, err)

		_, err = svc.UpdateThreadStatus(ctx, th.ThreadID, models.ThreadStatusActive, participant)
		assert.True(t, IsCode(err, CodeForbidden))

		withOverride := Actor{AgentID: "agent-a", Role: "participant",
			Reason: models.ReasonPrefixHumanOverride + " verified out of band"}
		got, err := svc.UpdateThreadStatus(ctx, th.ThreadID, models.ThreadStatusActive, withOverride)
		require.NoError(t, err)
		assert.Equal(t, models.ThreadStatusActive, got.Status)
	})

	t.Run("escalation owner bypasses the override prefix", func(t *testing.T) {
		th := newTestThread(t, svc, "agent-a", "agent-b")
		_, err := svc.UpdateThreadStatus(ctx, th.ThreadID, models.ThreadStatusBlocked, participant)
		require.NoError(t, err)
		_, err = svc.AssignEscalationOwner(ctx, th.ThreadID, "agent-b", "coordinator-1")
		require.NoError(t, err)

		owner := Actor{AgentID: "agent-b", Role: "participant", Reason: "investigated"}
		got, err := svc.UpdateThreadStatus(ctx, th.ThreadID, models.ThreadStatusActive, owner)
		require.NoError(t, err)
		assert.Equal(t, models.ThreadStatusActive, got.Status)
	})

	t.Run("leaving blocked clears escalation fields", func(t *testing.T) {
		th := newTestThread(t, svc, "agent-a", "agent-b")
		_, err := svc.UpdateThreadStatus(ctx, th.ThreadID, models.ThreadStatusBlocked, participant)
		require.NoError(t, err)
		_, err = svc.AssignEscalationOwner(ctx, th.ThreadID, "agent-b", "coordinator-1")
		require.NoError(t, err)

		got, err := svc.UpdateThreadStatus(ctx, th.ThreadID, models.ThreadStatusResolved, coordinator)
		require.NoError(t, err)
		assert.Empty(t, got.EscalationOwner)
		assert.Empty(t, got.EscalationAssignedBy)
		assert.Nil(t, got.EscalationAssignedAt)
	})
}

func TestThreadService_EscalationOwner(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewThreadService(client)
	ctx := context.Background()
	participant := Actor{AgentID: "agent-a", Role: "participant"}

	block := func(t *testing.T, participants ...string) *models.ThreadDetail {
		th := newTestThread(t, svc, participants...)
		_, err := svc.UpdateThreadStatus(ctx, th.ThreadID, models.ThreadStatusBlocked, participant)
		require.NoError(t, err)
		return th
	}

	t.Run("assign on non-blocked thread fails", func(t *testing.T) {
		th := newTestThread(t, svc, "agent-a")
		_, err := svc.AssignEscalationOwner(ctx, th.ThreadID, "agent-a", "coordinator-1")
		assert.True(t, IsCode(err, CodeConflict))
	})

	t.Run("owner must be a participant", func(t *testing.T) {
		th := block(t, "agent-a")
		_, err := svc.AssignEscalationOwner(ctx, th.ThreadID, "outsider", "coordinator-1")
		assert.True(t, IsCode(err, CodeInvalidArgument))
	})

	t.Run("assign twice conflicts, reassign replaces", func(t *testing.T) {
		th := block(t, "agent-a", "agent-b")

		got, err := svc.AssignEscalationOwner(ctx, th.ThreadID, "agent-a", "coordinator-1")
		require.NoError(t, err)
		assert.Equal(t, "agent-a", got.EscalationOwner)
		assert.Equal(t, "coordinator-1", got.EscalationAssignedBy)

		_, err = svc.AssignEscalationOwner(ctx, th.ThreadID, "agent-b", "coordinator-1")
		assert.True(t, IsCode(err, CodeConflict))

		got, err = svc.ReassignEscalationOwner(ctx, th.ThreadID, "agent-b", "coordinator-1")
		require.NoError(t, err)
		assert.Equal(t, "agent-b", got.EscalationOwner)
	})

	t.Run("reassign without owner conflicts", func(t *testing.T) {
		th := block(t, "agent-a")
		_, err := svc.ReassignEscalationOwner(ctx, th.ThreadID, "agent-a", "coordinator-1")
		assert.True(t, IsCode(err, CodeConflict))
	})
}

func TestThreadService_SummarizeThread(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	threads := NewThreadService(client)
	messages := NewMessageService(client, 3)
	ctx := context.Background()

	th := newTestThread(t, threads, "agent-a", "agent-b")
	for i := 1; i <= 5; i++ {
		_, err := messages.PostMessage(ctx, models.PostMessageRequest{
			ThreadID:      th.ThreadID,
			SchemaVersion: 1,
			Kind:          models.MessageKindChat,
			Body:          fmt.Sprintf("message %d", i),
			SenderAgentID: "agent-a",
		})
		require.NoError(t, err)
	}

	summary, err := threads.SummarizeThread(ctx, th.ThreadID, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, summary.MessageCount)
	assert.Contains(t, summary.Summary, "#4")
	assert.Contains(t, summary.Summary, "#5")
	assert.NotContains(t, summary.Summary, "#3")
	// Rendered oldest-first.
	assert.Less(t, strings.Index(summary.Summary, "#4"), strings.Index(summary.Summary, "#5"))
}
