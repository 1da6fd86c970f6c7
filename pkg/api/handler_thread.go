package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/agentfabric/bridge/pkg/auth"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/pkg/services"
)

// createThreadHandler handles POST /v1/mcp/create_thread.
func (s *Server) createThreadHandler(c *echo.Context) error {
	const op = "create_thread"
	claims, err := s.requirePermission(c, op, auth.PermMessageWrite)
	if err != nil {
		return err
	}

	var req models.CreateThreadRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}
	if req.WorkspaceID != "" && req.WorkspaceID != claims.WorkspaceID {
		s.auditRejection(c, claims, op, "workspace_id hint does not match token")
		return services.E(services.CodeWorkspaceMismatch,
			"workspace_id %q does not match authenticated workspace", req.WorkspaceID)
	}
	if err := s.checkAgentHint(c, claims, op, req.CreatedBy); err != nil {
		return err
	}
	req.WorkspaceID = claims.WorkspaceID
	if req.CreatedBy == "" {
		req.CreatedBy = claims.AgentID
	}

	th, err := s.threads.CreateThread(c.Request().Context(), req)
	if err != nil {
		return err
	}

	s.auditSuccess(c, claims, op, "thread", th.ThreadID, th.ThreadID, map[string]interface{}{
		"type":         th.Type,
		"participants": th.Participants,
	})
	return c.JSON(http.StatusOK, &models.CreateThreadResponse{
		ThreadID:  th.ThreadID,
		Status:    th.Status,
		CreatedAt: th.CreatedAt,
	})
}

// getThreadHandler handles POST /v1/mcp/get_thread.
func (s *Server) getThreadHandler(c *echo.Context) error {
	const op = "get_thread"
	claims, err := s.requirePermission(c, op, auth.PermThreadRead)
	if err != nil {
		return err
	}

	var req models.GetThreadRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	th, err := s.loadThreadChecked(c, claims, op, req.ThreadID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, th)
}

// updateThreadStatusHandler handles POST /v1/mcp/update_thread_status.
func (s *Server) updateThreadStatusHandler(c *echo.Context) error {
	const op = "update_thread_status"
	claims, err := s.requirePermission(c, op, auth.PermMessageWrite)
	if err != nil {
		return err
	}

	var req models.UpdateThreadStatusRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}
	if _, err := s.loadThreadChecked(c, claims, op, req.ThreadID); err != nil {
		return err
	}

	actor := services.Actor{
		AgentID: claims.AgentID,
		Role:    claims.Role,
		Reason:  req.Reason,
	}
	th, err := s.threads.UpdateThreadStatus(c.Request().Context(), req.ThreadID, req.Status, actor)
	if err != nil {
		if services.IsCode(err, services.CodeForbidden) {
			s.auditRejection(c, claims, op, "transition authority denied")
		}
		return err
	}

	s.auditSuccess(c, claims, op, "thread", th.ThreadID, th.ThreadID, map[string]interface{}{
		"status": th.Status,
		"reason": req.Reason,
	})
	return c.JSON(http.StatusOK, &models.UpdateThreadStatusResponse{
		ThreadID:  th.ThreadID,
		Status:    th.Status,
		UpdatedAt: th.UpdatedAt,
	})
}

// summarizeThreadHandler handles POST /v1/mcp/summarize_thread.
func (s *Server) summarizeThreadHandler(c *echo.Context) error {
	const op = "summarize_thread"
	claims, err := s.requirePermission(c, op, auth.PermThreadRead)
	if err != nil {
		return err
	}

	var req models.SummarizeThreadRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}
	if _, err := s.loadThreadChecked(c, claims, op, req.ThreadID); err != nil {
		return err
	}

	summary, err := s.threads.SummarizeThread(c.Request().Context(), req.ThreadID, req.MaxMessages)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
