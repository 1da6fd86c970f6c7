package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/agentfabric/bridge/pkg/auth"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/pkg/services"
)

// Trigger ingestion results.
const (
	triggerResultScheduled = "scheduled"
	triggerResultReplayed  = "replayed"
)

// triggerParticipantHandler handles POST /v1/mcp/trigger_participant.
// The job id is derived from the request id, so retried requests land on the
// same job row.
func (s *Server) triggerParticipantHandler(c *echo.Context) error {
	const op = "trigger_participant"
	claims, err := s.requirePermission(c, op, auth.PermMessageWrite)
	if err != nil {
		return err
	}

	var req models.TriggerParticipantRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}
	if req.TargetAgentID == "" {
		return services.InvalidArgument("target_agent_id is required")
	}
	if req.Reason == "" {
		return services.InvalidArgument("reason is required")
	}
	if _, err := s.loadThreadChecked(c, claims, op, req.ThreadID); err != nil {
		return err
	}

	ctx := c.Request().Context()
	member, err := s.threads.IsParticipant(ctx, req.ThreadID, req.TargetAgentID)
	if err != nil {
		return err
	}
	if !member {
		return services.InvalidArgument("agent %s is not a participant of thread %s",
			req.TargetAgentID, req.ThreadID)
	}

	session, err := s.registry.GetSession(ctx, claims.WorkspaceID, req.TargetAgentID)
	if err != nil {
		return err
	}
	decision := services.ResolveTriggerDecision(session, time.Now(), s.registry.StaleAfter())

	in := services.IngestInput{
		TriggerID:     services.BuildTriggerID(requestIDFrom(c)),
		ThreadID:      req.ThreadID,
		WorkspaceID:   claims.WorkspaceID,
		TargetAgentID: req.TargetAgentID,
		Reason:        req.Reason,
		Prompt:        req.TriggerPrompt,
		InitialStatus: decision.InitialStatus,
		MaxRetries:    s.cfg.Trigger.MaxRetries,
	}
	if session != nil {
		in.TargetSessionID = session.SessionID
	}

	job, created, err := s.triggers.Ingest(ctx, in)
	if err != nil {
		return err
	}

	result := triggerResultReplayed
	if created {
		result = triggerResultScheduled
		s.auditSuccess(c, claims, op, "trigger_job", job.ID, req.ThreadID, map[string]interface{}{
			"target_agent_id": req.TargetAgentID,
			"reason":          req.Reason,
			"action":          decision.Action,
			"initial_status":  decision.InitialStatus,
		})
	}

	resp := &models.TriggerParticipantResponse{
		TriggerID:      job.ID,
		TargetAgentID:  job.TargetAgentID,
		Action:         decision.Action,
		Result:         result,
		JobStatus:      string(job.Status),
		FallbackAction: decision.FallbackAction,
		StaleSession:   decision.StaleSession,
		TriggeredAt:    job.CreatedAt,
	}
	if session != nil {
		resp.TargetSessionID = session.SessionID
		resp.Runtime = session.Runtime
		resp.ManagementMode = session.ManagementMode
		resp.SessionStatus = session.Status
	}
	return c.JSON(http.StatusOK, resp)
}
