package queue

import (
	"context"
	"testing"

	"github.com/agentfabric/bridge/ent"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/pkg/services"
	"github.com/agentfabric/bridge/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadCallbackSender_Send(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	threads := services.NewThreadService(client)
	messages := services.NewMessageService(client, 3)
	sender := NewThreadCallbackSender(messages)
	ctx := context.Background()

	th, err := threads.CreateThread(ctx, models.CreateThreadRequest{
		WorkspaceID:  "ws-test",
		Title:        "deploy check",
		Type:         models.ThreadTypeConversation,
		Participants: []string{"agent-a"},
		CreatedBy:    "coordinator-1",
	})
	require.NoError(t, err)

	job := &ent.TriggerJob{ID: "trg_cb_test", ThreadID: th.ThreadID, TargetAgentID: "agent-a"}

	require.NoError(t, sender.Send(ctx, job, EventTriggerCompleted))
	// Replaying after a crash hits the idempotency key, not a second row.
	require.NoError(t, sender.Send(ctx, job, EventTriggerCompleted))

	read, err := messages.ReadMessages(ctx, models.ReadMessagesRequest{ThreadID: th.ThreadID})
	require.NoError(t, err)
	require.Len(t, read.Messages, 1)

	msg := read.Messages[0]
	assert.Equal(t, models.MessageKindEvent, msg.Kind)
	assert.Equal(t, "bridge", msg.SenderAgentID)
	assert.Equal(t, EventTriggerCompleted, msg.Metadata[models.MetadataEventType])
	assert.Equal(t, true, msg.Metadata[models.MetadataSuppressAutoTrig])
	assert.Equal(t, "trg_cb_test", msg.Metadata[models.MetadataTriggerID])
	assert.EqualValues(t, 1, msg.Metadata[models.MetadataEventVersion])
}
