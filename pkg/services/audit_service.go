package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/agentfabric/bridge/ent"
	"github.com/agentfabric/bridge/ent/auditevent"
	"github.com/google/uuid"
)

// Audit results.
const (
	AuditResultSuccess  = "success"
	AuditResultRejected = "rejected"
)

// AuditEntry describes one audit trail row.
type AuditEntry struct {
	WorkspaceID  string
	ActorAgentID string
	ActorRole    string
	Operation    string
	ResourceType string
	ResourceID   string
	ThreadID     string
	RequestID    string
	Result       string
	Payload      map[string]interface{}
}

// AuditService writes the append-only audit trail. Audit failures are logged
// and swallowed; they never fail the operation being audited.
type AuditService struct {
	client *ent.Client
}

// NewAuditService creates a new AuditService.
func NewAuditService(client *ent.Client) *AuditService {
	return &AuditService{client: client}
}

// Record writes one audit event.
func (s *AuditService) Record(ctx context.Context, entry AuditEntry) {
	builder := s.client.AuditEvent.Create().
		SetID("aud_" + uuid.New().String()).
		SetWorkspaceID(entry.WorkspaceID).
		SetOperation(entry.Operation).
		SetResourceType(entry.ResourceType).
		SetResourceID(entry.ResourceID).
		SetResult(auditevent.Result(entry.Result)).
		SetCreatedAt(time.Now())
	if entry.ActorAgentID != "" {
		builder.SetActorAgentID(entry.ActorAgentID)
	}
	if entry.ActorRole != "" {
		builder.SetActorRole(entry.ActorRole)
	}
	if entry.ThreadID != "" {
		builder.SetThreadID(entry.ThreadID)
	}
	if entry.RequestID != "" {
		builder.SetRequestID(entry.RequestID)
	}
	if entry.Payload != nil {
		builder.SetPayload(entry.Payload)
	}

	if _, err := builder.Save(ctx); err != nil {
		slog.Error("Failed to write audit event",
			"operation", entry.Operation,
			"resource_id", entry.ResourceID,
			"error", err)
	}
}

// RecentForThread returns the newest audit events touching a thread.
func (s *AuditService) RecentForThread(ctx context.Context, threadID string, limit int) ([]*ent.AuditEvent, error) {
	return s.client.AuditEvent.Query().
		Where(auditevent.ThreadIDEQ(threadID)).
		Order(ent.Desc(auditevent.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}
