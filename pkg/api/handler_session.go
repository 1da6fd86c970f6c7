package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/agentfabric/bridge/pkg/auth"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/pkg/services"
)

// heartbeatHandler handles POST /v1/mcp/heartbeat_session.
func (s *Server) heartbeatHandler(c *echo.Context) error {
	const op = "heartbeat_session"
	claims, err := s.requirePermission(c, op, auth.PermSessionHeartbeat)
	if err != nil {
		return err
	}

	var req models.HeartbeatRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}
	if req.WorkspaceID != "" && req.WorkspaceID != claims.WorkspaceID {
		s.auditRejection(c, claims, op, "workspace_id hint does not match token")
		return services.E(services.CodeWorkspaceMismatch,
			"workspace_id %q does not match authenticated workspace", req.WorkspaceID)
	}
	if err := s.checkAgentHint(c, claims, op, req.AgentID); err != nil {
		return err
	}
	if err := s.checkSessionHint(c, claims, op, req.SessionID); err != nil {
		return err
	}

	resp, err := s.registry.Heartbeat(c.Request().Context(), claims.AgentID, claims.WorkspaceID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
