package queue

import (
	"context"
	"fmt"

	"github.com/agentfabric/bridge/ent"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/pkg/services"
)

// Identity the bridge posts callbacks under.
const (
	callbackSenderAgentID   = "bridge"
	callbackSenderSessionID = "bridge-supervisor"
)

// ThreadCallbackSender posts the completion event back onto the job's
// thread. The event carries suppress_auto_trigger so the unread reconciler
// does not chase the bridge's own message.
type ThreadCallbackSender struct {
	messages *services.MessageService
}

// NewThreadCallbackSender creates a callback sender.
func NewThreadCallbackSender(messages *services.MessageService) *ThreadCallbackSender {
	return &ThreadCallbackSender{messages: messages}
}

// Send posts the event message. The idempotency key is derived from the
// trigger id, so a crash between post and job transition replays cleanly.
func (s *ThreadCallbackSender) Send(ctx context.Context, job *ent.TriggerJob, eventType string) error {
	_, err := s.messages.PostMessage(ctx, models.PostMessageRequest{
		ThreadID:      job.ThreadID,
		SchemaVersion: 1,
		Kind:          models.MessageKindEvent,
		Body:          fmt.Sprintf("Trigger %s for %s: %s", job.ID, job.TargetAgentID, eventType),
		Metadata: map[string]interface{}{
			models.MetadataEventType:        eventType,
			models.MetadataSuppressAutoTrig: true,
			models.MetadataTriggerID:        job.ID,
		},
		IdempotencyKey:  fmt.Sprintf("cb_%s_%s", job.ID, eventType),
		SenderAgentID:   callbackSenderAgentID,
		SenderSessionID: callbackSenderSessionID,
	})
	return err
}
