package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agentfabric/bridge/ent"
	"github.com/agentfabric/bridge/ent/sessionrecord"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/google/uuid"
)

// RegistryService maintains the per-(agent, workspace) session registry.
// Heartbeat writes are last-writer-wins by last_heartbeat_at; there is no
// row-level locking on this table.
type RegistryService struct {
	client     *ent.Client
	staleAfter time.Duration
}

// NewRegistryService creates a new RegistryService.
func NewRegistryService(client *ent.Client, staleAfter time.Duration) *RegistryService {
	return &RegistryService{client: client, staleAfter: staleAfter}
}

// StaleAfter returns the configured staleness horizon.
func (s *RegistryService) StaleAfter() time.Duration {
	return s.staleAfter
}

// Heartbeat upserts the agent's session record. An update only applies when
// the incoming heartbeat timestamp is newer than the stored one, so two
// concurrent heartbeats converge to the later writer.
func (s *RegistryService) Heartbeat(ctx context.Context, agentID, workspaceID string, req models.HeartbeatRequest) (*models.HeartbeatResponse, error) {
	if req.SessionID == "" {
		return nil, InvalidArgument("session_id is required")
	}
	if req.Runtime == "" {
		return nil, InvalidArgument("runtime is required")
	}
	switch req.ManagementMode {
	case models.ManagementModeManaged, models.ManagementModeUnmanaged:
	default:
		return nil, InvalidArgument("invalid management_mode %q", req.ManagementMode)
	}
	switch req.Status {
	case models.SessionStatusActive, models.SessionStatusIdle, models.SessionStatusOffline:
	default:
		return nil, InvalidArgument("invalid session status %q", req.Status)
	}

	now := time.Now()

	rec, err := s.client.SessionRecord.Query().
		Where(
			sessionrecord.AgentIDEQ(agentID),
			sessionrecord.WorkspaceIDEQ(workspaceID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query session record: %w", err)
	}

	if ent.IsNotFound(err) {
		_, cerr := s.client.SessionRecord.Create().
			SetID("sr_" + uuid.New().String()).
			SetAgentID(agentID).
			SetWorkspaceID(workspaceID).
			SetSessionID(req.SessionID).
			SetRuntime(req.Runtime).
			SetManagementMode(sessionrecord.ManagementMode(req.ManagementMode)).
			SetResumable(req.Resumable).
			SetStatus(sessionrecord.Status(req.Status)).
			SetLastHeartbeatAt(now).
			SetUpdatedAt(now).
			Save(ctx)
		if cerr == nil {
			return &models.HeartbeatResponse{OK: true, RecordedAt: now}, nil
		}
		if !ent.IsConstraintError(cerr) {
			return nil, fmt.Errorf("failed to create session record: %w", cerr)
		}
		// Concurrent first heartbeat won the insert; fall through and apply
		// as an update instead.
		rec, err = s.client.SessionRecord.Query().
			Where(
				sessionrecord.AgentIDEQ(agentID),
				sessionrecord.WorkspaceIDEQ(workspaceID),
			).
			Only(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to re-query session record: %w", err)
		}
	}

	n, err := s.client.SessionRecord.Update().
		Where(
			sessionrecord.IDEQ(rec.ID),
			sessionrecord.LastHeartbeatAtLT(now),
		).
		SetSessionID(req.SessionID).
		SetRuntime(req.Runtime).
		SetManagementMode(sessionrecord.ManagementMode(req.ManagementMode)).
		SetResumable(req.Resumable).
		SetStatus(sessionrecord.Status(req.Status)).
		SetLastHeartbeatAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update session record: %w", err)
	}
	if n == 0 {
		// A newer heartbeat already landed; last-writer-wins means ours is a
		// harmless no-op.
		slog.Debug("Heartbeat superseded by a newer write",
			"agent_id", agentID,
			"workspace_id", workspaceID)
	}

	return &models.HeartbeatResponse{OK: true, RecordedAt: now}, nil
}

// GetSession returns the registry entry for the agent, or nil when the agent
// has never heartbeated.
func (s *RegistryService) GetSession(ctx context.Context, workspaceID, agentID string) (*models.SessionView, error) {
	rec, err := s.client.SessionRecord.Query().
		Where(
			sessionrecord.AgentIDEQ(agentID),
			sessionrecord.WorkspaceIDEQ(workspaceID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query session record: %w", err)
	}
	view := sessionView(rec)
	return &view, nil
}

// ReconcileOffline marks stale non-offline sessions in the workspace as
// offline. Returns the number of sessions checked and transitioned.
func (s *RegistryService) ReconcileOffline(ctx context.Context, workspaceID string) (checked, transitioned int, err error) {
	now := time.Now()
	cutoff := now.Add(-s.staleAfter)

	recs, err := s.client.SessionRecord.Query().
		Where(
			sessionrecord.WorkspaceIDEQ(workspaceID),
			sessionrecord.StatusNEQ(sessionrecord.StatusOffline),
		).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query sessions: %w", err)
	}

	for _, rec := range recs {
		checked++
		if rec.LastHeartbeatAt.After(cutoff) {
			continue
		}
		n, uerr := s.client.SessionRecord.Update().
			Where(
				sessionrecord.IDEQ(rec.ID),
				sessionrecord.StatusNEQ(sessionrecord.StatusOffline),
				sessionrecord.LastHeartbeatAtLTE(cutoff),
			).
			SetStatus(sessionrecord.StatusOffline).
			SetUpdatedAt(now).
			Save(ctx)
		if uerr != nil {
			return checked, transitioned, fmt.Errorf("failed to mark session offline: %w", uerr)
		}
		transitioned += n
	}

	if transitioned > 0 {
		slog.Info("Marked stale sessions offline",
			"workspace_id", workspaceID,
			"checked", checked,
			"transitioned", transitioned)
	}
	return checked, transitioned, nil
}

func sessionView(rec *ent.SessionRecord) models.SessionView {
	return models.SessionView{
		AgentID:         rec.AgentID,
		WorkspaceID:     rec.WorkspaceID,
		SessionID:       rec.SessionID,
		Runtime:         rec.Runtime,
		ManagementMode:  string(rec.ManagementMode),
		Resumable:       rec.Resumable,
		Status:          string(rec.Status),
		LastHeartbeatAt: rec.LastHeartbeatAt,
	}
}
